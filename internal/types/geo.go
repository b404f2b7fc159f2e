// README: Shared identifiers, coordinates and enumerations for routing and pricing.
package types

import "fmt"

type ID string

type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (p Point) String() string {
	return fmt.Sprintf("%g,%g", p.Lat, p.Lng)
}

// Region is the fare jurisdiction a place belongs to.
type Region string

const (
	RegionMacau    Region = "macau"
	RegionHongKong Region = "hong-kong"
)

func (r Region) Valid() bool {
	return r == RegionMacau || r == RegionHongKong
}

type TravelMode string

const (
	ModeWalk    TravelMode = "walk"
	ModeDrive   TravelMode = "drive"
	ModeTransit TravelMode = "transit"
)

func (m TravelMode) Valid() bool {
	switch m {
	case ModeWalk, ModeDrive, ModeTransit:
		return true
	}
	return false
}

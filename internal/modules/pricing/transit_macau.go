// README: Macau public transport estimate: flat bus fare plus LRT fares by hop count.
package pricing

import (
	"explore/internal/maps"
	"explore/internal/modules/station"
)

const DefaultMacauBusFare = 6.0

// DefaultMacauLRTBrackets price LRT rides by hop count.
var DefaultMacauLRTBrackets = []Bracket{
	{MaxCount: 3, Price: 6.0},
	{MaxCount: 6, Price: 8.0},
	{MaxCount: 9, Price: 10.0},
	{MaxCount: 12, Price: 12.0},
}

// lrtRide accumulates consecutive LRT steps into one ride; transfers inside
// the network are not charged again.
type lrtRide struct {
	from  string
	to    string
	stops int
}

// MacauTransit prices walk and transit legs.
type MacauTransit struct {
	busFare  float64
	stations *station.Registry
	lrt      FareTable
}

func NewMacauTransit(busFare float64, lrt FareTable) *MacauTransit {
	return &MacauTransit{busFare: busFare, stations: station.MacauLRT, lrt: lrt}
}

func (t *MacauTransit) Estimate(leg maps.Leg) (float64, bool) {
	var (
		total  float64
		priced bool
		ride   *lrtRide
	)
	closeRide := func() {
		if ride == nil {
			return
		}
		total += t.rideFare(*ride)
		priced = true
		ride = nil
	}

	for _, step := range leg.Steps {
		if step.Transit == nil {
			closeRide()
			continue
		}
		switch step.Transit.VehicleType {
		case maps.VehicleBus:
			closeRide()
			total += t.busFare
			priced = true
		case maps.VehicleTram:
			if ride == nil {
				ride = &lrtRide{from: step.Transit.DepartureStop}
			}
			ride.to = step.Transit.ArrivalStop
			ride.stops += step.Transit.StopCount
		default:
			closeRide()
		}
	}
	closeRide()

	return total, priced
}

func (t *MacauTransit) Fields() []string {
	return []string{maps.FieldStepMode, maps.FieldTransit}
}

// rideFare uses the network hop count when both stations resolve and the
// provider's stop count otherwise.
func (t *MacauTransit) rideFare(r lrtRide) float64 {
	count := r.stops
	if hops, ok := t.stations.HopsBetween(r.from, r.to); ok {
		count = hops
	}
	return t.lrt.Price(count)
}

// README: Waypoints, provider query segments and priced route legs.
package route

import (
	"time"

	"explore/internal/types"
)

// Waypoint is a place on the day's itinerary.
type Waypoint struct {
	ID       types.ID
	Location types.Point
	Region   types.Region
}

// Segment is a run of waypoints answered by one provider request.
// Consecutive segments share their boundary waypoint.
type Segment struct {
	Waypoints []Waypoint
	Mode      types.TravelMode
	Departure time.Time
}

// Vehicle summarises the transit vehicles used on a leg.
type Vehicle string

const (
	VehicleBus   Vehicle = "bus"
	VehicleMetro Vehicle = "metro"
	VehicleTram  Vehicle = "tram"
	VehicleFerry Vehicle = "ferry"
	VehicleMixed Vehicle = "mixed"
)

// Leg is the travel between two consecutive waypoints.
type Leg struct {
	Origin          types.ID         `json:"origin"`
	Destination     types.ID         `json:"destination"`
	Mode            types.TravelMode `json:"mode"`
	DistanceMeters  int              `json:"distance"`
	DurationSeconds int              `json:"duration"`
	Polyline        string           `json:"polyline"`
	Fare            *types.Money     `json:"fare"`
	Vehicle         Vehicle          `json:"vehicle,omitempty"`
}

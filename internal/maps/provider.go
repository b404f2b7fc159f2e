// README: Provider-neutral route request/response shapes consumed by routing and pricing.
package maps

import (
	"time"

	"explore/internal/types"
)

// Field names a routing provider can be asked to return. Callers request
// the union of what they consume.
const (
	FieldDistance      = "routes.legs.distanceMeters"
	FieldDuration      = "routes.legs.duration"
	FieldPolyline      = "routes.legs.polyline.encodedPolyline"
	FieldStartLocation = "routes.legs.startLocation"
	FieldEndLocation   = "routes.legs.endLocation"
	FieldStepMode      = "routes.legs.steps.travelMode"
	FieldTransit       = "routes.legs.steps.transitDetails"
)

// Raw transit vehicle types as reported by the provider.
const (
	VehicleBus    = "BUS"
	VehicleTram   = "TRAM"
	VehicleSubway = "SUBWAY"
	VehicleFerry  = "FERRY"
)

type Request struct {
	Origin        types.Point
	Destination   types.Point
	Intermediates []types.Point
	Mode          types.TravelMode
	Departure     time.Time
	Fields        []string
}

type Route struct {
	Legs []Leg `json:"legs"`
}

// Leg is the path between two consecutive request points.
type Leg struct {
	DistanceMeters  int         `json:"distance_meters"`
	DurationSeconds int         `json:"duration_seconds"`
	Polyline        string      `json:"polyline"`
	StartLocation   types.Point `json:"start_location"`
	EndLocation     types.Point `json:"end_location"`
	Steps           []Step      `json:"steps"`
}

type Step struct {
	TravelMode types.TravelMode `json:"travel_mode"`
	Transit    *TransitDetails  `json:"transit,omitempty"`
}

type TransitDetails struct {
	VehicleType   string `json:"vehicle_type"`
	StopCount     int    `json:"stop_count"`
	DepartureStop string `json:"departure_stop"`
	ArrivalStop   string `json:"arrival_stop"`
}

// StepModes returns the distinct step travel modes of the leg in first-seen
// order.
func (l Leg) StepModes() []types.TravelMode {
	var modes []types.TravelMode
	seen := make(map[types.TravelMode]bool, 3)
	for _, s := range l.Steps {
		if s.TravelMode == "" || seen[s.TravelMode] {
			continue
		}
		seen[s.TravelMode] = true
		modes = append(modes, s.TravelMode)
	}
	return modes
}

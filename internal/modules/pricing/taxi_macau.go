// README: Macau metered taxi estimate: flag fall, distance steps, waiting time and area surcharges.
package pricing

import (
	"math"

	"explore/internal/maps"
	"explore/internal/modules/geofence"
)

// TaxiTariff holds the meter constants. Distances are metres, times seconds.
type TaxiTariff struct {
	BaseFare          float64
	BaseDistance      int
	StepFare          float64
	StepDistance      int
	WaitFare          float64
	WaitStep          int
	ReferenceSpeedKmh float64
}

// DefaultMacauTaxiTariff is the current Macau meter.
func DefaultMacauTaxiTariff() TaxiTariff {
	return TaxiTariff{
		BaseFare:          21.0,
		BaseDistance:      1600,
		StepFare:          2.0,
		StepDistance:      220,
		WaitFare:          2.0,
		WaitStep:          55,
		ReferenceSpeedKmh: 60,
	}
}

// Surcharge applies when the pickup lies in any of Pickup and, if Dropoff is
// set, the dropoff lies in any of Dropoff.
type Surcharge struct {
	Name    string
	Amount  float64
	Pickup  []geofence.Fence
	Dropoff []geofence.Fence
}

func (s Surcharge) applies(leg maps.Leg) bool {
	if !geofence.ContainsAny(leg.StartLocation, s.Pickup...) {
		return false
	}
	return len(s.Dropoff) == 0 || geofence.ContainsAny(leg.EndLocation, s.Dropoff...)
}

// SurchargeGroup is a set of mutually exclusive surcharges; the first one
// that applies is charged. Groups add up.
type SurchargeGroup []Surcharge

// MacauTaxiSurcharges are checked in order. The Taipa to Coloane rate covers
// pickups on the university campus as well.
var MacauTaxiSurcharges = []SurchargeGroup{
	{
		{Name: "taipa-coloane", Amount: 2.0, Pickup: []geofence.Fence{FenceTaipa, FenceUM}, Dropoff: []geofence.Fence{FenceColoane}},
		{Name: "macau-coloane", Amount: 5.0, Pickup: []geofence.Fence{FenceMacau}, Dropoff: []geofence.Fence{FenceColoane}},
	},
	{
		{Name: "port-pickup", Amount: 8.0, Pickup: []geofence.Fence{FenceHZMB, FenceAirport, FenceTaipaFerry, FenceHengqin}},
	},
	{
		{Name: "um-pickup", Amount: 5.0, Pickup: []geofence.Fence{FenceUM}},
	},
}

// MacauTaxi prices driving legs.
type MacauTaxi struct {
	tariff     TaxiTariff
	surcharges []SurchargeGroup
}

func NewMacauTaxi(tariff TaxiTariff, surcharges []SurchargeGroup) *MacauTaxi {
	return &MacauTaxi{tariff: tariff, surcharges: surcharges}
}

func (t *MacauTaxi) Estimate(leg maps.Leg) (float64, bool) {
	fare := t.distanceFare(leg.DistanceMeters) + t.waitingFare(leg.DistanceMeters, leg.DurationSeconds)
	for _, group := range t.surcharges {
		for _, s := range group {
			if s.applies(leg) {
				fare += s.Amount
				break
			}
		}
	}
	return fare, true
}

func (t *MacauTaxi) Fields() []string {
	return []string{maps.FieldDistance, maps.FieldDuration, maps.FieldStartLocation, maps.FieldEndLocation}
}

// distanceFare charges the flag fall plus one step per started StepDistance
// beyond BaseDistance.
func (t *MacauTaxi) distanceFare(meters int) float64 {
	extra := math.Max(0, float64(meters-t.tariff.BaseDistance))
	return t.tariff.BaseFare + math.Ceil(extra/float64(t.tariff.StepDistance))*t.tariff.StepFare
}

// waitingFare charges the time spent beyond driving the distance at the
// reference speed, in started WaitStep increments.
func (t *MacauTaxi) waitingFare(meters, seconds int) float64 {
	if t.tariff.ReferenceSpeedKmh <= 0 {
		return 0
	}
	fastest := float64(meters) * 3.6 / t.tariff.ReferenceSpeedKmh
	excess := math.Max(0, float64(seconds)-fastest)
	return math.Ceil(excess/float64(t.tariff.WaitStep)) * t.tariff.WaitFare
}

// README: Fare dispatch keyed by region and the set of step travel modes of a leg.
package pricing

import (
	"sort"
	"strings"

	"explore/internal/maps"
	"explore/internal/types"
)

type registryKey struct {
	region    types.Region
	signature string
}

// Registry maps (region, mode signature) to an estimator. Walk-only legs are
// free in every region; anything without a registered estimator is unpriced.
type Registry struct {
	estimators map[registryKey]Estimator
	currencies map[types.Region]string
}

func NewRegistry() *Registry {
	return &Registry{
		estimators: make(map[registryKey]Estimator),
		currencies: make(map[types.Region]string),
	}
}

// AddRegion declares a region and the currency its fares are quoted in.
func (r *Registry) AddRegion(region types.Region, currency string) {
	r.currencies[region] = currency
}

// Register binds e to legs in region whose distinct step modes are exactly
// modes.
func (r *Registry) Register(region types.Region, modes []types.TravelMode, e Estimator) {
	r.estimators[registryKey{region: region, signature: Signature(modes...)}] = e
}

// Signature canonicalises a set of travel modes: distinct, sorted, joined
// with "+".
func Signature(modes ...types.TravelMode) string {
	seen := make(map[types.TravelMode]bool, len(modes))
	parts := make([]string, 0, len(modes))
	for _, m := range modes {
		if m == "" || seen[m] {
			continue
		}
		seen[m] = true
		parts = append(parts, string(m))
	}
	sort.Strings(parts)
	return strings.Join(parts, "+")
}

// Compute returns the fare for leg in region, or nil when it cannot be
// estimated.
func (r *Registry) Compute(region types.Region, leg maps.Leg) *types.Money {
	sig := Signature(leg.StepModes()...)
	if sig == "" {
		return nil
	}
	currency := r.currencies[region]
	if sig == string(types.ModeWalk) {
		return &types.Money{Amount: 0, Currency: currency}
	}

	e, ok := r.estimators[registryKey{region: region, signature: sig}]
	if !ok {
		return nil
	}
	amount, ok := e.Estimate(leg)
	if !ok {
		return nil
	}
	fare := types.Money{Amount: amount, Currency: currency}.Rounded()
	return &fare
}

// Fields is the union of provider fields the registered estimators need.
func (r *Registry) Fields() []string {
	set := map[string]bool{maps.FieldStepMode: true}
	for _, e := range r.estimators {
		for _, f := range e.Fields() {
			set[f] = true
		}
	}
	out := make([]string, 0, len(set))
	for f := range set {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Config carries the tunable fare constants.
type Config struct {
	TaxiReferenceSpeedKmh float64
	BusFare               float64
	LRTBrackets           []Bracket
}

// NewDefaultRegistry registers Macau taxi and transit pricing and declares
// Hong Kong without estimators.
func NewDefaultRegistry(cfg Config) (*Registry, error) {
	tariff := DefaultMacauTaxiTariff()
	if cfg.TaxiReferenceSpeedKmh > 0 {
		tariff.ReferenceSpeedKmh = cfg.TaxiReferenceSpeedKmh
	}
	brackets := cfg.LRTBrackets
	if len(brackets) == 0 {
		brackets = DefaultMacauLRTBrackets
	}
	table, err := NewFareTable(brackets)
	if err != nil {
		return nil, err
	}
	busFare := cfg.BusFare
	if busFare <= 0 {
		busFare = DefaultMacauBusFare
	}

	r := NewRegistry()
	r.AddRegion(types.RegionMacau, "MOP")
	r.AddRegion(types.RegionHongKong, "HKD")
	r.Register(types.RegionMacau, []types.TravelMode{types.ModeDrive},
		NewMacauTaxi(tariff, MacauTaxiSurcharges))
	r.Register(types.RegionMacau, []types.TravelMode{types.ModeTransit, types.ModeWalk},
		NewMacauTransit(busFare, table))
	return r, nil
}

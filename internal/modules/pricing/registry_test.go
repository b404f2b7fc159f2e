package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"explore/internal/maps"
	"explore/internal/types"
)

type fixedEstimator struct {
	amount float64
	ok     bool
	fields []string
}

func (f fixedEstimator) Estimate(maps.Leg) (float64, bool) { return f.amount, f.ok }
func (f fixedEstimator) Fields() []string                  { return f.fields }

func stepsOf(modes ...types.TravelMode) []maps.Step {
	steps := make([]maps.Step, len(modes))
	for i, m := range modes {
		steps[i] = maps.Step{TravelMode: m}
	}
	return steps
}

func TestSignature(t *testing.T) {
	assert.Equal(t, "transit+walk", Signature(types.ModeWalk, types.ModeTransit, types.ModeWalk))
	assert.Equal(t, "drive", Signature(types.ModeDrive))
	assert.Equal(t, "", Signature())
}

func TestRegistry_Compute(t *testing.T) {
	r := NewRegistry()
	r.AddRegion(types.RegionMacau, "MOP")
	r.AddRegion(types.RegionHongKong, "HKD")
	r.Register(types.RegionMacau, []types.TravelMode{types.ModeDrive}, fixedEstimator{amount: 40, ok: true})
	r.Register(types.RegionMacau, []types.TravelMode{types.ModeWalk, types.ModeTransit}, fixedEstimator{amount: 6, ok: true})

	tests := []struct {
		name   string
		region types.Region
		modes  []types.TravelMode
		want   *types.Money
	}{
		{"no steps", types.RegionMacau, nil, nil},
		{"walk only", types.RegionMacau, []types.TravelMode{types.ModeWalk, types.ModeWalk}, &types.Money{Amount: 0, Currency: "MOP"}},
		{"walk only elsewhere", types.RegionHongKong, []types.TravelMode{types.ModeWalk}, &types.Money{Amount: 0, Currency: "HKD"}},
		{"drive", types.RegionMacau, []types.TravelMode{types.ModeDrive}, &types.Money{Amount: 40, Currency: "MOP"}},
		{"transit with walking", types.RegionMacau, []types.TravelMode{types.ModeWalk, types.ModeTransit, types.ModeWalk}, &types.Money{Amount: 6, Currency: "MOP"}},
		{"transit without walking", types.RegionMacau, []types.TravelMode{types.ModeTransit}, nil},
		{"mixed drive and walk", types.RegionMacau, []types.TravelMode{types.ModeDrive, types.ModeWalk}, nil},
		{"region without estimators", types.RegionHongKong, []types.TravelMode{types.ModeDrive}, nil},
		{"unknown region", types.Region("taipei"), []types.TravelMode{types.ModeDrive}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Compute(tt.region, maps.Leg{Steps: stepsOf(tt.modes...)})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegistry_EstimatorDeclines(t *testing.T) {
	r := NewRegistry()
	r.AddRegion(types.RegionMacau, "MOP")
	r.Register(types.RegionMacau, []types.TravelMode{types.ModeDrive}, fixedEstimator{ok: false})

	assert.Nil(t, r.Compute(types.RegionMacau, maps.Leg{Steps: stepsOf(types.ModeDrive)}))
}

func TestRegistry_Fields(t *testing.T) {
	r := NewRegistry()
	r.Register(types.RegionMacau, []types.TravelMode{types.ModeDrive}, fixedEstimator{fields: []string{maps.FieldDistance, maps.FieldDuration}})
	r.Register(types.RegionMacau, []types.TravelMode{types.ModeTransit, types.ModeWalk}, fixedEstimator{fields: []string{maps.FieldTransit, maps.FieldDistance}})

	assert.Equal(t, []string{maps.FieldDistance, maps.FieldDuration, maps.FieldTransit, maps.FieldStepMode}, r.Fields())
}

func TestNewDefaultRegistry(t *testing.T) {
	r, err := NewDefaultRegistry(Config{})
	require.NoError(t, err)

	drive := maps.Leg{
		DistanceMeters:  3355,
		DurationSeconds: 569,
		StartLocation:   types.Point{Lat: 22.128, Lng: 113.5464},
		EndLocation:     types.Point{Lat: 22.130, Lng: 113.5632},
		Steps:           stepsOf(types.ModeDrive),
	}
	assert.Equal(t, &types.Money{Amount: 58, Currency: "MOP"}, r.Compute(types.RegionMacau, drive))
	assert.Nil(t, r.Compute(types.RegionHongKong, drive))

	transit := maps.Leg{Steps: []maps.Step{walk(), bus(), bus(), walk()}}
	assert.Equal(t, &types.Money{Amount: 12, Currency: "MOP"}, r.Compute(types.RegionMacau, transit))
}

func TestNewDefaultRegistry_InvalidBrackets(t *testing.T) {
	_, err := NewDefaultRegistry(Config{LRTBrackets: []Bracket{{MaxCount: 5, Price: 8}, {MaxCount: 2, Price: 9}}})
	assert.Error(t, err)
}

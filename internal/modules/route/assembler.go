package route

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"explore/internal/maps"
	"explore/internal/types"
)

// Provider answers route requests.
type Provider interface {
	ComputeRoutes(ctx context.Context, req maps.Request) ([]maps.Route, error)
}

// FareEstimator prices provider legs by region.
type FareEstimator interface {
	Compute(region types.Region, leg maps.Leg) *types.Money
	Fields() []string
}

// ErrIncompleteRoute is returned when the provider answers with fewer legs
// than the segment has waypoint pairs.
var ErrIncompleteRoute = errors.New("provider returned fewer legs than requested")

// ProviderError aborts a computation when a segment request fails.
type ProviderError struct {
	// Segment is the index of the failed segment within AssembleAll.
	Segment     int
	Origin      types.ID
	Destination types.ID
	Err         error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("route segment %d (%s -> %s): %v", e.Segment, e.Origin, e.Destination, e.Err)
}

func withSegment(err error, i int) error {
	var pe *ProviderError
	if errors.As(err, &pe) {
		pe.Segment = i
	}
	return err
}

func (e *ProviderError) Unwrap() error { return e.Err }

var baseFields = []string{
	maps.FieldDistance,
	maps.FieldDuration,
	maps.FieldPolyline,
	maps.FieldStepMode,
	maps.FieldTransit,
}

var vehicleKinds = map[string]Vehicle{
	maps.VehicleBus:    VehicleBus,
	maps.VehicleSubway: VehicleMetro,
	maps.VehicleTram:   VehicleTram,
	maps.VehicleFerry:  VehicleFerry,
}

// Assembler turns segments into priced legs, one provider call per segment.
type Assembler struct {
	provider    Provider
	fares       FareEstimator
	fields      []string
	concurrency int
	logger      *zap.Logger
}

// NewAssembler issues segment requests one at a time when concurrency <= 1.
func NewAssembler(provider Provider, fares FareEstimator, concurrency int, logger *zap.Logger) *Assembler {
	return &Assembler{
		provider:    provider,
		fares:       fares,
		fields:      requestFields(fares),
		concurrency: concurrency,
		logger:      logger,
	}
}

func requestFields(fares FareEstimator) []string {
	set := make(map[string]bool)
	for _, f := range baseFields {
		set[f] = true
	}
	for _, f := range fares.Fields() {
		set[f] = true
	}
	out := make([]string, 0, len(set))
	for f := range set {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// AssembleAll returns the legs of every segment in segment order. Any
// provider failure aborts the whole computation.
func (a *Assembler) AssembleAll(ctx context.Context, segments []Segment) ([]Leg, error) {
	results := make([][]Leg, len(segments))

	if a.concurrency <= 1 || len(segments) < 2 {
		for i, seg := range segments {
			legs, err := a.Assemble(ctx, seg)
			if err != nil {
				return nil, withSegment(err, i)
			}
			results[i] = legs
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(a.concurrency)
		for i, seg := range segments {
			i, seg := i, seg
			g.Go(func() error {
				legs, err := a.Assemble(gctx, seg)
				if err != nil {
					return withSegment(err, i)
				}
				results[i] = legs
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	var out []Leg
	for _, legs := range results {
		out = append(out, legs...)
	}
	return out, nil
}

// Assemble queries the provider for one segment and enriches each returned
// leg with its effective mode, vehicle and fare.
func (a *Assembler) Assemble(ctx context.Context, seg Segment) ([]Leg, error) {
	n := len(seg.Waypoints)
	if n < 2 {
		return nil, ErrTooFewWaypoints
	}
	origin, dest := seg.Waypoints[0], seg.Waypoints[n-1]
	wrap := func(err error) error {
		return &ProviderError{Origin: origin.ID, Destination: dest.ID, Err: err}
	}
	if err := ctx.Err(); err != nil {
		return nil, wrap(err)
	}

	req := maps.Request{
		Origin:      origin.Location,
		Destination: dest.Location,
		Mode:        seg.Mode,
		Departure:   seg.Departure,
		Fields:      a.fields,
	}
	for _, w := range seg.Waypoints[1 : n-1] {
		req.Intermediates = append(req.Intermediates, w.Location)
	}

	start := time.Now()
	routes, err := a.provider.ComputeRoutes(ctx, req)
	if err != nil {
		return nil, wrap(err)
	}
	if len(routes) == 0 {
		a.logger.Debug("no route for segment",
			zap.String("origin", string(origin.ID)),
			zap.String("destination", string(dest.ID)),
			zap.String("mode", string(seg.Mode)),
		)
		return nil, nil
	}

	// Only the first route is used; legs past the last waypoint pair are
	// ignored.
	provided := routes[0].Legs
	if len(provided) > n-1 {
		provided = provided[:n-1]
	}
	if len(provided) < n-1 {
		return nil, wrap(fmt.Errorf("%w: got %d, want %d", ErrIncompleteRoute, len(provided), n-1))
	}

	legs := make([]Leg, len(provided))
	for i, pl := range provided {
		legs[i] = a.enrich(seg.Waypoints[i], seg.Waypoints[i+1], seg.Mode, pl)
	}

	a.logger.Debug("segment assembled",
		zap.String("origin", string(origin.ID)),
		zap.String("destination", string(dest.ID)),
		zap.Int("waypoints", n),
		zap.Time("departure", seg.Departure),
		zap.Int("legs", len(legs)),
		zap.Duration("took", time.Since(start)),
	)
	return legs, nil
}

func (a *Assembler) enrich(from, to Waypoint, requested types.TravelMode, pl maps.Leg) Leg {
	mode := requested
	if modes := pl.StepModes(); len(modes) == 1 && modes[0].Valid() {
		mode = modes[0]
	}

	leg := Leg{
		Origin:          from.ID,
		Destination:     to.ID,
		Mode:            mode,
		DistanceMeters:  pl.DistanceMeters,
		DurationSeconds: pl.DurationSeconds,
		Polyline:        pl.Polyline,
		Fare:            a.fares.Compute(from.Region, pl),
	}
	if mode == types.ModeTransit {
		leg.Vehicle = classifyVehicle(pl.Steps)
	}
	return leg
}

// classifyVehicle maps the distinct vehicle types of the transit steps to a
// single vehicle. Unknown single types yield no vehicle.
func classifyVehicle(steps []maps.Step) Vehicle {
	var kinds []string
	for _, s := range steps {
		if s.TravelMode != types.ModeTransit || s.Transit == nil || s.Transit.VehicleType == "" {
			continue
		}
		if !slices.Contains(kinds, s.Transit.VehicleType) {
			kinds = append(kinds, s.Transit.VehicleType)
		}
	}
	switch len(kinds) {
	case 0:
		return ""
	case 1:
		return vehicleKinds[kinds[0]]
	default:
		return VehicleMixed
	}
}

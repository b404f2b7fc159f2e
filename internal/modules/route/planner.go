package route

import (
	"errors"
	"time"

	"explore/internal/types"
)

var ErrTooFewWaypoints = errors.New("at least two waypoints are required")

// PlannerConfig controls segment sizing and departure scheduling.
type PlannerConfig struct {
	// WindowStart and WindowEnd are offsets from local midnight of the
	// travel date; departures are spread evenly between them.
	WindowStart time.Duration
	WindowEnd   time.Duration
	// Non-transit departures earlier than now+ShiftBuffer move forward in
	// ShiftStepDays steps.
	ShiftBuffer   time.Duration
	ShiftStepDays int
	// Waypoints per provider request, endpoints included.
	TransitChunkSize int
	DefaultChunkSize int
	Location         *time.Location
}

func DefaultPlannerConfig() PlannerConfig {
	return PlannerConfig{
		WindowStart:      9 * time.Hour,
		WindowEnd:        18 * time.Hour,
		ShiftBuffer:      5 * time.Minute,
		ShiftStepDays:    7,
		TransitChunkSize: 2,
		DefaultChunkSize: 10,
		Location:         time.UTC,
	}
}

// Planner splits a waypoint list into provider-sized segments and assigns
// each one a departure time.
type Planner struct {
	cfg PlannerConfig
	now func() time.Time
}

// NewPlanner uses now as the reference clock; nil means time.Now.
func NewPlanner(cfg PlannerConfig, now func() time.Time) *Planner {
	if now == nil {
		now = time.Now
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	defaults := DefaultPlannerConfig()
	if cfg.ShiftStepDays <= 0 {
		cfg.ShiftStepDays = defaults.ShiftStepDays
	}
	if cfg.TransitChunkSize < 2 {
		cfg.TransitChunkSize = defaults.TransitChunkSize
	}
	if cfg.DefaultChunkSize < 2 {
		cfg.DefaultChunkSize = defaults.DefaultChunkSize
	}
	return &Planner{cfg: cfg, now: now}
}

// ChunkSize is the number of waypoints sent per request for mode.
func (p *Planner) ChunkSize(mode types.TravelMode) int {
	if mode == types.ModeTransit {
		return p.cfg.TransitChunkSize
	}
	return p.cfg.DefaultChunkSize
}

// Plan returns the segments covering every consecutive waypoint pair once,
// in order.
func (p *Planner) Plan(waypoints []Waypoint, mode types.TravelMode, date time.Time) ([]Segment, error) {
	if len(waypoints) < 2 {
		return nil, ErrTooFewWaypoints
	}

	chunks := Chunk(waypoints, p.ChunkSize(mode))

	y, m, d := date.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, p.cfg.Location)
	departures := Linspace(midnight.Add(p.cfg.WindowStart), midnight.Add(p.cfg.WindowEnd), len(chunks))

	now := p.now()
	segments := make([]Segment, len(chunks))
	for i, chunk := range chunks {
		dep := departures[i]
		// Transit schedules are taken as requested; the provider rejects
		// past departures for the other modes.
		if mode != types.ModeTransit {
			dep = ShiftToFuture(dep, now, p.cfg.ShiftBuffer, p.cfg.ShiftStepDays)
		}
		segments[i] = Segment{Waypoints: chunk, Mode: mode, Departure: dep}
	}
	return segments, nil
}

// Chunk splits waypoints into windows of at most size elements where each
// window starts at the previous window's last element.
func Chunk(waypoints []Waypoint, size int) [][]Waypoint {
	if size < 2 {
		size = 2
	}
	var chunks [][]Waypoint
	for start := 0; start < len(waypoints)-1; start += size - 1 {
		end := min(start+size, len(waypoints))
		chunk := make([]Waypoint, end-start)
		copy(chunk, waypoints[start:end])
		chunks = append(chunks, chunk)
	}
	return chunks
}

// Linspace returns n evenly spaced times from start to stop inclusive. A
// single time is the midpoint.
func Linspace(start, stop time.Time, n int) []time.Time {
	if n <= 0 {
		return nil
	}
	span := stop.Sub(start)
	if n == 1 {
		return []time.Time{start.Add(span / 2)}
	}
	out := make([]time.Time, n)
	for i := range out {
		out[i] = start.Add(span * time.Duration(i) / time.Duration(n-1))
	}
	return out
}

// ShiftToFuture moves t forward by whole multiples of stepDays, keeping the
// weekday and wall-clock time, until it is no earlier than now+buffer.
func ShiftToFuture(t, now time.Time, buffer time.Duration, stepDays int) time.Time {
	target := now.Add(buffer)
	if !t.Before(target) {
		return t
	}
	step := time.Duration(stepDays) * 24 * time.Hour
	weeks := int((target.Sub(t) + step - 1) / step)
	shifted := t.AddDate(0, 0, stepDays*weeks)
	for shifted.Before(target) {
		shifted = shifted.AddDate(0, 0, stepDays)
	}
	return shifted
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"explore/internal/modules/place"
	"explore/internal/modules/route"
	"explore/internal/types"
)

// Travel dates are accepted from a week back to a little over three months
// ahead of today.
const (
	DefaultPastDays   = 7
	DefaultFutureDays = 100
)

var (
	ErrBadRequest     = errors.New("bad request")
	ErrMixedRegions   = errors.New("places span more than one region")
	ErrDateOutOfRange = errors.New("travel date outside the accepted window")
	ErrPlacesNotFound = errors.New("places not found")
)

// MissingPlacesError lists requested place IDs that do not exist.
type MissingPlacesError struct {
	IDs []types.ID
}

func (e *MissingPlacesError) Error() string {
	return fmt.Sprintf("places not found: %v", e.IDs)
}

func (e *MissingPlacesError) Unwrap() error { return ErrPlacesNotFound }

type PlaceLookup interface {
	GetMany(ctx context.Context, ids []types.ID) ([]place.Place, []types.ID, error)
}

type RouteComputer interface {
	Compute(ctx context.Context, waypoints []route.Waypoint, mode types.TravelMode, date time.Time) ([]route.Leg, error)
}

type DayRouteRequest struct {
	Date     time.Time
	Mode     types.TravelMode
	PlaceIDs []types.ID
}

// DayRoutePlanner resolves an ordered list of places for one day and returns
// the priced legs between them.
type DayRoutePlanner struct {
	places     PlaceLookup
	routes     RouteComputer
	loc        *time.Location
	now        func() time.Time
	pastDays   int
	futureDays int
	logger     *zap.Logger
}

// NewDayRoutePlanner judges travel dates against today in loc.
func NewDayRoutePlanner(places PlaceLookup, routes RouteComputer, loc *time.Location, logger *zap.Logger) *DayRoutePlanner {
	if loc == nil {
		loc = time.UTC
	}
	return &DayRoutePlanner{
		places:     places,
		routes:     routes,
		loc:        loc,
		now:        time.Now,
		pastDays:   DefaultPastDays,
		futureDays: DefaultFutureDays,
		logger:     logger,
	}
}

// WithClock replaces the reference clock used for the date window.
func (p *DayRoutePlanner) WithClock(now func() time.Time) *DayRoutePlanner {
	p.now = now
	return p
}

func (p *DayRoutePlanner) Plan(ctx context.Context, req DayRouteRequest) ([]route.Leg, error) {
	mode := req.Mode
	if mode == "" {
		mode = types.ModeTransit
	}
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: unknown mode %q", ErrBadRequest, mode)
	}
	if len(req.PlaceIDs) < 2 {
		return nil, fmt.Errorf("%w: at least two places are required", ErrBadRequest)
	}
	if err := p.checkDate(req.Date); err != nil {
		return nil, err
	}

	places, missing, err := p.places.GetMany(ctx, req.PlaceIDs)
	if err != nil {
		return nil, fmt.Errorf("load places: %w", err)
	}
	if len(missing) > 0 {
		return nil, &MissingPlacesError{IDs: missing}
	}

	waypoints := make([]route.Waypoint, len(places))
	for i, pl := range places {
		if pl.Region != places[0].Region {
			return nil, fmt.Errorf("%w: %s and %s", ErrMixedRegions, places[0].Region, pl.Region)
		}
		waypoints[i] = route.Waypoint{ID: pl.ID, Location: pl.Location, Region: pl.Region}
	}

	p.logger.Debug("planning day route",
		zap.String("date", req.Date.Format(time.DateOnly)),
		zap.String("mode", string(mode)),
		zap.String("region", string(places[0].Region)),
		zap.Int("places", len(places)),
	)
	return p.routes.Compute(ctx, waypoints, mode, req.Date)
}

func (p *DayRoutePlanner) checkDate(date time.Time) error {
	y, m, d := p.now().In(p.loc).Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, p.loc)
	y, m, d = date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, p.loc)

	earliest := today.AddDate(0, 0, -p.pastDays)
	latest := today.AddDate(0, 0, p.futureDays)
	if day.Before(earliest) || day.After(latest) {
		return fmt.Errorf("%w: %s not between %s and %s", ErrDateOutOfRange,
			day.Format(time.DateOnly), earliest.Format(time.DateOnly), latest.Format(time.DateOnly))
	}
	return nil
}

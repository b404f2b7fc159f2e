package maps

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	gmaps "googlemaps.github.io/maps"

	"explore/internal/types"
)

// Options tunes the Directions requests issued by RouteService.
type Options struct {
	Language string
	Region   string
	// BaseURL overrides the Maps API endpoint; used against local fakes.
	BaseURL string
}

// RouteService computes routes through the Google Maps Directions API.
type RouteService struct {
	client *gmaps.Client
	opts   Options
	logger *zap.Logger
}

// NewRouteService creates a new RouteService with the given API Key.
func NewRouteService(apiKey string, opts Options, logger *zap.Logger) (*RouteService, error) {
	clientOpts := []gmaps.ClientOption{gmaps.WithAPIKey(apiKey)}
	if opts.BaseURL != "" {
		clientOpts = append(clientOpts, gmaps.WithBaseURL(opts.BaseURL))
	}
	client, err := gmaps.NewClient(clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &RouteService{client: client, opts: opts, logger: logger}, nil
}

var directionModes = map[types.TravelMode]gmaps.Mode{
	types.ModeDrive:   gmaps.TravelModeDriving,
	types.ModeWalk:    gmaps.TravelModeWalking,
	types.ModeTransit: gmaps.TravelModeTransit,
}

var stepModes = map[string]types.TravelMode{
	"DRIVING": types.ModeDrive,
	"WALKING": types.ModeWalk,
	"TRANSIT": types.ModeTransit,
}

// ComputeRoutes issues one Directions request covering origin, intermediates
// and destination. An empty slice means the provider found no route.
func (s *RouteService) ComputeRoutes(ctx context.Context, req Request) ([]Route, error) {
	mode, ok := directionModes[req.Mode]
	if !ok {
		return nil, fmt.Errorf("unsupported travel mode %q", req.Mode)
	}

	r := &gmaps.DirectionsRequest{
		Origin:      req.Origin.String(),
		Destination: req.Destination.String(),
		Mode:        mode,
		Language:    s.opts.Language,
		Region:      s.opts.Region,
	}
	for _, p := range req.Intermediates {
		r.Waypoints = append(r.Waypoints, p.String())
	}
	if !req.Departure.IsZero() {
		r.DepartureTime = strconv.FormatInt(req.Departure.Unix(), 10)
		if mode == gmaps.TravelModeDriving {
			r.TrafficModel = gmaps.TrafficModelBestGuess
		}
	}

	start := time.Now()
	routes, _, err := s.client.Directions(ctx, r)
	if err != nil {
		s.logger.Error("directions request failed",
			zap.String("mode", string(req.Mode)),
			zap.Int("waypoints", len(req.Intermediates)+2),
			zap.Error(err),
		)
		return nil, fmt.Errorf("maps api error: %w", err)
	}
	s.logger.Debug("directions request",
		zap.String("mode", string(req.Mode)),
		zap.Int("waypoints", len(req.Intermediates)+2),
		zap.Strings("fields", req.Fields),
		zap.Int("routes", len(routes)),
		zap.Duration("took", time.Since(start)),
	)

	out := make([]Route, 0, len(routes))
	for _, rt := range routes {
		out = append(out, convertRoute(rt))
	}
	return out, nil
}

func convertRoute(rt gmaps.Route) Route {
	legs := make([]Leg, 0, len(rt.Legs))
	for _, l := range rt.Legs {
		if l == nil {
			continue
		}
		legs = append(legs, convertLeg(l))
	}
	return Route{Legs: legs}
}

func convertLeg(l *gmaps.Leg) Leg {
	duration := l.Duration
	if l.DurationInTraffic > 0 {
		duration = l.DurationInTraffic
	}
	leg := Leg{
		DistanceMeters:  l.Meters,
		DurationSeconds: int(duration / time.Second),
		StartLocation:   types.Point{Lat: l.StartLocation.Lat, Lng: l.StartLocation.Lng},
		EndLocation:     types.Point{Lat: l.EndLocation.Lat, Lng: l.EndLocation.Lng},
		Steps:           make([]Step, 0, len(l.Steps)),
	}

	var path []gmaps.LatLng
	for _, st := range l.Steps {
		if st == nil {
			continue
		}
		leg.Steps = append(leg.Steps, convertStep(st))
		points, err := st.Polyline.Decode()
		if err != nil {
			continue
		}
		for _, p := range points {
			if n := len(path); n > 0 && path[n-1] == p {
				continue
			}
			path = append(path, p)
		}
	}
	if len(path) > 0 {
		leg.Polyline = gmaps.Encode(path)
	}
	return leg
}

func convertStep(st *gmaps.Step) Step {
	mode, ok := stepModes[st.TravelMode]
	if !ok {
		mode = types.TravelMode(strings.ToLower(st.TravelMode))
	}
	step := Step{TravelMode: mode}
	if td := st.TransitDetails; td != nil {
		step.Transit = &TransitDetails{
			VehicleType:   td.Line.Vehicle.Type,
			StopCount:     int(td.NumStops),
			DepartureStop: td.DepartureStop.Name,
			ArrivalStop:   td.ArrivalStop.Name,
		}
	}
	return step
}

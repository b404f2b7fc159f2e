package maps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	gmaps "googlemaps.github.io/maps"

	"explore/internal/types"
)

func fakeDirections(t *testing.T, body string, check func(r *http.Request)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			check(r)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestRouteService(t *testing.T, baseURL string) *RouteService {
	t.Helper()
	s, err := NewRouteService("test-key", Options{Language: "en", BaseURL: baseURL}, zap.NewNop())
	require.NoError(t, err)
	return s
}

func TestRouteService_ComputeRoutes(t *testing.T) {
	a := gmaps.LatLng{Lat: 22.128, Lng: 113.5464}
	b := gmaps.LatLng{Lat: 22.129, Lng: 113.555}
	c := gmaps.LatLng{Lat: 22.13, Lng: 113.5632}
	first := gmaps.Encode([]gmaps.LatLng{a, b})
	second := gmaps.Encode([]gmaps.LatLng{b, c})

	body := fmt.Sprintf(`{
	  "status": "OK",
	  "routes": [{
	    "legs": [
	      {
	        "distance": {"text": "3.4 km", "value": 3355},
	        "duration": {"text": "9 mins", "value": 569},
	        "duration_in_traffic": {"text": "10 mins", "value": 600},
	        "start_location": {"lat": 22.128, "lng": 113.5464},
	        "end_location": {"lat": 22.13, "lng": 113.5632},
	        "steps": [
	          {"travel_mode": "DRIVING", "polyline": {"points": %q}, "duration": {"value": 300}},
	          {"travel_mode": "DRIVING", "polyline": {"points": %q}, "duration": {"value": 269}}
	        ]
	      },
	      {
	        "distance": {"text": "5 km", "value": 5000},
	        "duration": {"text": "20 mins", "value": 1200},
	        "start_location": {"lat": 22.13, "lng": 113.5632},
	        "end_location": {"lat": 22.15, "lng": 113.56},
	        "steps": [
	          {"travel_mode": "WALKING", "polyline": {"points": ""}},
	          {
	            "travel_mode": "TRANSIT",
	            "polyline": {"points": ""},
	            "transit_details": {
	              "num_stops": 4,
	              "departure_stop": {"name": "Barra"},
	              "arrival_stop": {"name": "Estádio"},
	              "line": {"vehicle": {"type": "TRAM"}}
	            }
	          }
	        ]
	      }
	    ]
	  }]
	}`, first, second)

	departure := time.Date(2026, 10, 20, 9, 0, 0, 0, time.UTC)
	srv := fakeDirections(t, body, func(r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/maps/api/directions/json", r.URL.Path)
		assert.Equal(t, "driving", q.Get("mode"))
		assert.Equal(t, "22.128,113.5464", q.Get("origin"))
		assert.Equal(t, "22.15,113.56", q.Get("destination"))
		assert.Equal(t, "22.13,113.5632", q.Get("waypoints"))
		assert.Equal(t, fmt.Sprint(departure.Unix()), q.Get("departure_time"))
		assert.Equal(t, "best_guess", q.Get("traffic_model"))
	})

	routes, err := newTestRouteService(t, srv.URL).ComputeRoutes(context.Background(), Request{
		Origin:        types.Point{Lat: 22.128, Lng: 113.5464},
		Intermediates: []types.Point{{Lat: 22.13, Lng: 113.5632}},
		Destination:   types.Point{Lat: 22.15, Lng: 113.56},
		Mode:          types.ModeDrive,
		Departure:     departure,
	})
	require.NoError(t, err)
	require.Len(t, routes, 1)
	require.Len(t, routes[0].Legs, 2)

	drive := routes[0].Legs[0]
	assert.Equal(t, 3355, drive.DistanceMeters)
	assert.Equal(t, 600, drive.DurationSeconds, "traffic-aware duration preferred")
	assert.Equal(t, types.Point{Lat: 22.128, Lng: 113.5464}, drive.StartLocation)
	assert.Equal(t, []types.TravelMode{types.ModeDrive}, drive.StepModes())

	path, err := gmaps.DecodePolyline(drive.Polyline)
	require.NoError(t, err)
	assert.Len(t, path, 3, "shared step boundary appears once")

	transit := routes[0].Legs[1]
	assert.Equal(t, 1200, transit.DurationSeconds)
	assert.Empty(t, transit.Polyline)
	require.Len(t, transit.Steps, 2)
	assert.Nil(t, transit.Steps[0].Transit)
	assert.Equal(t, &TransitDetails{
		VehicleType:   VehicleTram,
		StopCount:     4,
		DepartureStop: "Barra",
		ArrivalStop:   "Estádio",
	}, transit.Steps[1].Transit)
	assert.Equal(t, []types.TravelMode{types.ModeWalk, types.ModeTransit}, transit.StepModes())
}

func TestRouteService_ZeroResults(t *testing.T) {
	srv := fakeDirections(t, `{"status": "ZERO_RESULTS", "routes": []}`, nil)

	routes, err := newTestRouteService(t, srv.URL).ComputeRoutes(context.Background(), Request{
		Origin:      types.Point{Lat: 22.1, Lng: 113.5},
		Destination: types.Point{Lat: 22.2, Lng: 113.6},
		Mode:        types.ModeTransit,
	})
	require.NoError(t, err)
	assert.Empty(t, routes)
}

func TestRouteService_ProviderError(t *testing.T) {
	srv := fakeDirections(t, `{"status": "REQUEST_DENIED", "error_message": "bad key"}`, nil)

	_, err := newTestRouteService(t, srv.URL).ComputeRoutes(context.Background(), Request{
		Origin:      types.Point{Lat: 22.1, Lng: 113.5},
		Destination: types.Point{Lat: 22.2, Lng: 113.6},
		Mode:        types.ModeWalk,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REQUEST_DENIED")
}

func TestRouteService_UnsupportedMode(t *testing.T) {
	s := newTestRouteService(t, "http://127.0.0.1:1")
	_, err := s.ComputeRoutes(context.Background(), Request{Mode: "bicycle"})
	assert.Error(t, err)
}

func TestConvertStep_UnknownMode(t *testing.T) {
	step := convertStep(&gmaps.Step{TravelMode: "BICYCLING"})
	assert.Equal(t, types.TravelMode("bicycling"), step.TravelMode)
}

package maps

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"explore/internal/types"
)

type mockComputer struct {
	mock.Mock
}

func (m *mockComputer) ComputeRoutes(ctx context.Context, req Request) ([]Route, error) {
	args := m.Called(ctx, req)
	routes, _ := args.Get(0).([]Route)
	return routes, args.Error(1)
}

func setupCache(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func sampleRequest() Request {
	return Request{
		Origin:      types.Point{Lat: 22.19, Lng: 113.54},
		Destination: types.Point{Lat: 22.15, Lng: 113.56},
		Mode:        types.ModeTransit,
		Departure:   time.Date(2026, 10, 20, 9, 0, 0, 0, time.UTC),
		Fields:      []string{FieldDistance},
	}
}

func TestCachedRouteService_HitAfterMiss(t *testing.T) {
	mr, client := setupCache(t)
	next := new(mockComputer)
	want := []Route{{Legs: []Leg{{DistanceMeters: 1200, DurationSeconds: 900, Steps: []Step{{TravelMode: types.ModeWalk}}}}}}
	next.On("ComputeRoutes", mock.Anything, mock.Anything).Return(want, nil).Once()

	svc := NewCachedRouteService(next, client, time.Hour, zap.NewNop())
	ctx := context.Background()

	got, err := svc.ComputeRoutes(ctx, sampleRequest())
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = svc.ComputeRoutes(ctx, sampleRequest())
	require.NoError(t, err)
	assert.Equal(t, want, got)

	next.AssertNumberOfCalls(t, "ComputeRoutes", 1)
	assert.Len(t, mr.Keys(), 1)

	key := mr.Keys()[0]
	assert.Equal(t, time.Hour, mr.TTL(key))
}

func TestCachedRouteService_DistinctRequests(t *testing.T) {
	_, client := setupCache(t)
	next := new(mockComputer)
	next.On("ComputeRoutes", mock.Anything, mock.Anything).Return([]Route{}, nil)

	svc := NewCachedRouteService(next, client, time.Hour, zap.NewNop())
	ctx := context.Background()

	req := sampleRequest()
	_, err := svc.ComputeRoutes(ctx, req)
	require.NoError(t, err)

	req.Departure = req.Departure.Add(7 * 24 * time.Hour)
	_, err = svc.ComputeRoutes(ctx, req)
	require.NoError(t, err)

	next.AssertNumberOfCalls(t, "ComputeRoutes", 2)
}

func TestCachedRouteService_ProviderErrorNotCached(t *testing.T) {
	mr, client := setupCache(t)
	next := new(mockComputer)
	next.On("ComputeRoutes", mock.Anything, mock.Anything).Return(nil, errors.New("quota exceeded"))

	svc := NewCachedRouteService(next, client, time.Hour, zap.NewNop())
	_, err := svc.ComputeRoutes(context.Background(), sampleRequest())
	require.Error(t, err)
	assert.Empty(t, mr.Keys())
}

func TestCachedRouteService_RedisDown(t *testing.T) {
	mr, client := setupCache(t)
	mr.Close()

	next := new(mockComputer)
	want := []Route{{Legs: []Leg{{DistanceMeters: 10}}}}
	next.On("ComputeRoutes", mock.Anything, mock.Anything).Return(want, nil)

	svc := NewCachedRouteService(next, client, time.Hour, zap.NewNop())
	got, err := svc.ComputeRoutes(context.Background(), sampleRequest())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// README: Redis-backed memoization of provider route responses.
package maps

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const routeKeyPrefix = "routes:"

// RouteComputer is anything that answers route requests.
type RouteComputer interface {
	ComputeRoutes(ctx context.Context, req Request) ([]Route, error)
}

// CachedRouteService answers repeated requests from Redis. Cache failures
// fall through to the wrapped provider; they never fail a request.
type CachedRouteService struct {
	next   RouteComputer
	redis  *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedRouteService(next RouteComputer, redis *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedRouteService {
	return &CachedRouteService{next: next, redis: redis, ttl: ttl, logger: logger}
}

func (s *CachedRouteService) ComputeRoutes(ctx context.Context, req Request) ([]Route, error) {
	key, err := cacheKey(req)
	if err != nil {
		return s.next.ComputeRoutes(ctx, req)
	}

	raw, err := s.redis.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var routes []Route
		if err := json.Unmarshal(raw, &routes); err == nil {
			s.logger.Debug("route cache hit", zap.String("key", key))
			return routes, nil
		}
		s.logger.Warn("route cache entry corrupt", zap.String("key", key))
	case errors.Is(err, redis.Nil):
		s.logger.Debug("route cache miss", zap.String("key", key))
	default:
		s.logger.Warn("route cache read failed", zap.String("key", key), zap.Error(err))
	}

	routes, err := s.next.ComputeRoutes(ctx, req)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(routes)
	if err == nil {
		err = s.redis.Set(ctx, key, payload, s.ttl).Err()
	}
	if err != nil {
		s.logger.Warn("route cache write failed", zap.String("key", key), zap.Error(err))
	}
	return routes, nil
}

type cacheKeyFields struct {
	Request
	Departure int64
}

func cacheKey(req Request) (string, error) {
	b, err := json.Marshal(cacheKeyFields{Request: req, Departure: req.Departure.Unix()})
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(b)
	return routeKeyPrefix + hex.EncodeToString(sum[:]), nil
}

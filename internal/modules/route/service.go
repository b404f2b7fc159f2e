// README: Route service plans segments for a day and assembles their priced legs.
package route

import (
	"context"
	"time"

	"go.uber.org/zap"

	"explore/internal/types"
)

type Service struct {
	planner   *Planner
	assembler *Assembler
	logger    *zap.Logger
}

func NewService(planner *Planner, assembler *Assembler, logger *zap.Logger) *Service {
	return &Service{planner: planner, assembler: assembler, logger: logger}
}

// Compute returns one leg per consecutive waypoint pair for travel on date,
// or the first error encountered.
func (s *Service) Compute(ctx context.Context, waypoints []Waypoint, mode types.TravelMode, date time.Time) ([]Leg, error) {
	segments, err := s.planner.Plan(waypoints, mode, date)
	if err != nil {
		return nil, err
	}
	legs, err := s.assembler.AssembleAll(ctx, segments)
	if err != nil {
		s.logger.Warn("route computation aborted",
			zap.String("mode", string(mode)),
			zap.Int("segments", len(segments)),
			zap.Error(err),
		)
		return nil, err
	}
	s.logger.Info("routes computed",
		zap.String("mode", string(mode)),
		zap.Int("waypoints", len(waypoints)),
		zap.Int("segments", len(segments)),
		zap.Int("legs", len(legs)),
	)
	return legs, nil
}

// README: Entry point; loads config, wires the routing stack, serves HTTP until SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"explore/internal/config"
	httptransport "explore/internal/http"
	"explore/internal/infra"
	"explore/internal/maps"
	"explore/internal/modules/place"
	"explore/internal/modules/pricing"
	"explore/internal/modules/route"
	"explore/internal/pkg/logger"
	"explore/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logg, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer func() { _ = logg.Sync() }()

	if err := run(cfg, logg); err != nil {
		logg.Fatal("explore-api stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, logg *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Maps.APIKey == "" {
		return errors.New("GOOGLE_MAPS_API_KEY is required")
	}

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		return err
	}
	defer dbPool.Close()

	directions, err := maps.NewRouteService(cfg.Maps.APIKey, maps.Options{
		Language: cfg.Maps.Language,
		Region:   cfg.Maps.Region,
	}, logg.Named("maps"))
	if err != nil {
		return err
	}
	var provider route.Provider = directions
	if cfg.Redis.Addr != "" {
		redisClient, err := infra.NewRedis(ctx, cfg.Redis.Addr)
		if err != nil {
			return err
		}
		defer redisClient.Close()
		provider = maps.NewCachedRouteService(directions, redisClient, cfg.Redis.CacheTTL, logg.Named("route-cache"))
	}

	fares, err := pricing.NewDefaultRegistry(cfg.Pricing())
	if err != nil {
		return err
	}

	planner := route.NewPlanner(cfg.Planner(), nil)
	assembler := route.NewAssembler(provider, fares, cfg.Routing.Concurrency, logg.Named("assembler"))
	routeSvc := route.NewService(planner, assembler, logg.Named("route"))

	placeStore := place.NewStore(dbPool)
	dayRoutes := service.NewDayRoutePlanner(placeStore, routeSvc, cfg.Location, logg.Named("day-route"))

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Routes: dayRoutes,
		Logger: logg.Named("http"),
	})
	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logg.Info("http server listening", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logg.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"profiles/internal/platform/config"
	"profiles/internal/platform/httpserver"
	"profiles/internal/platform/kafka"
	"profiles/internal/platform/logger"
	platformmetrics "profiles/internal/platform/metrics"
	"profiles/internal/platform/postgres"
	platformredis "profiles/internal/platform/redis"
	"profiles/internal/profile/domain/shared"
	"profiles/internal/profile/events"
	profilehandler "profiles/internal/profile/handler"
	profilemetrics "profiles/internal/profile/metrics"
	"profiles/internal/profile/ports"
	"profiles/internal/profile/service"
	profilestore "profiles/internal/profile/store/profile"
	httptransport "profiles/internal/transport/http"
	"profiles/pkg/platform/validation"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(log)

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// infra holds the backing connections opened at startup.
type infra struct {
	repo    ports.Repository
	health  map[string]httptransport.HealthCheck
	closers []func() error
}

func (i *infra) close(log *slog.Logger) {
	for n := len(i.closers) - 1; n >= 0; n-- {
		if err := i.closers[n](); err != nil {
			log.Warn("failed to close resource", "error", err)
		}
	}
}

func run(ctx context.Context, cfg config.Server, log *slog.Logger) error {
	deps, err := buildInfra(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer deps.close(log)

	reg := platformmetrics.NewRegistry()
	m := profilemetrics.New(reg)

	opts := []service.Option{
		service.WithLogger(log),
		service.WithMetrics(m),
		service.WithParser(shared.NewParser(validation.Default())),
	}

	kafkaClient, err := kafka.NewClient(ctx, cfg.Kafka)
	if err != nil {
		return err
	}
	if kafkaClient != nil {
		deps.closers = append(deps.closers, func() error { kafkaClient.Close(); return nil })
		if err := kafka.EnsureTopic(ctx, kafkaClient, cfg.Kafka); err != nil {
			return err
		}
		deps.health["kafka"] = kafkaClient.Ping
		opts = append(opts, service.WithPublisher(events.NewPublisher(kafkaClient, cfg.Kafka.ProfileTopic)))
		log.Info("profile events enabled", "topic", cfg.Kafka.ProfileTopic, "brokers", cfg.Kafka.Brokers)
	}

	profiles, err := service.New(deps.repo, opts...)
	if err != nil {
		return fmt.Errorf("init profile service: %w", err)
	}

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Logger:       log,
		Handlers:     []httptransport.Registrar{profilehandler.New(profiles, log)},
		Metrics:      platformmetrics.Handler(reg),
		HealthChecks: deps.health,
	})
	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting profiles server", "addr", cfg.Addr, "store", cfg.Store)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		return nil
	})
	return g.Wait()
}

func buildInfra(ctx context.Context, cfg config.Server, log *slog.Logger) (*infra, error) {
	deps := &infra{health: map[string]httptransport.HealthCheck{}}

	switch cfg.Store {
	case config.StorePostgres:
		db, err := postgres.Open(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		deps.closers = append(deps.closers, db.Close)
		if cfg.Database.Migrate {
			if err := postgres.Migrate(db); err != nil {
				deps.close(log)
				return nil, err
			}
			log.Info("database migrations applied")
		}
		deps.health["postgres"] = db.PingContext
		deps.repo = profilestore.NewPostgres(db)
	case config.StoreRedis:
		client, err := platformredis.New(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		deps.closers = append(deps.closers, client.Close)
		deps.health["redis"] = client.Health
		deps.repo = profilestore.NewRedis(client.Client)
	default:
		deps.repo = profilestore.NewInMemoryStore()
	}
	log.Info("profile store ready", "store", cfg.Store)
	return deps, nil
}

package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/headmetal/headware-backend/internal/adapter/filestore"
	"github.com/headmetal/headware-backend/internal/adapter/postgres"
	accidentrepo "github.com/headmetal/headware-backend/internal/adapter/postgres/accident"
	workrepo "github.com/headmetal/headware-backend/internal/adapter/postgres/work"
	workerrepo "github.com/headmetal/headware-backend/internal/adapter/postgres/worker"
	"github.com/headmetal/headware-backend/internal/adapter/push"
	"github.com/headmetal/headware-backend/internal/config"
	"github.com/headmetal/headware-backend/internal/live"
	"github.com/headmetal/headware-backend/internal/service/accident"
	"github.com/headmetal/headware-backend/internal/transport/rest"
	"github.com/headmetal/headware-backend/internal/transport/ws"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires the services and transports, and serves HTTP until
// the context is canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	accidents := accidentrepo.New(pool)
	workers := workerrepo.New(pool)
	works := workrepo.New(pool)

	images := filestore.New(cfg.Storage.ImageDir)

	svc := accident.NewService(logger, accidents, workers, works, nil, images)
	if cfg.Push.Enabled {
		svc = accident.NewService(logger, accidents, workers, works, push.NewClient(cfg.Push, logger), images)
	} else {
		logger.Warn("topic push notifications disabled")
	}

	registry := live.NewRegistry()
	relay := live.NewRelay(registry, logger)

	accidentHandler := rest.NewAccidentHandler(svc, cfg.Storage.MaxUploadBytes, logger)
	healthHandler := rest.NewHealthHandler(pool, BuildVersion())
	liveHandler := ws.NewHandler(relay, cfg.Live, logger)

	router := rest.NewRouter(accidentHandler, healthHandler, liveHandler, cfg.CORS, logger)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down",
			slog.Duration("timeout", cfg.Server.ShutdownTimeout),
		)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("stopped")
	return nil
}

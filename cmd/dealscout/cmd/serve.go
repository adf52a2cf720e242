package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/dealscout/dealscout/internal/api/handlers"
	"github.com/dealscout/dealscout/internal/api/middleware"
	"github.com/dealscout/dealscout/internal/config"
	"github.com/dealscout/dealscout/internal/engine"
	"github.com/dealscout/dealscout/internal/notify"
	"github.com/dealscout/dealscout/internal/store"
	"github.com/dealscout/dealscout/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx := context.Background()

	// Backend selection happens exactly once, here. Everything downstream
	// sees only the Store interface.
	var st store.Store
	if cfg.Database.Enabled() {
		pg, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer pg.Close()

		if err := pg.Migrate(ctx); err != nil {
			return fmt.Errorf("applying migrations: %w", err)
		}

		log.Info("using postgres store")
		st = pg
	} else {
		log.Info("using in-memory store")
		st = store.NewMemoryStore()
	}

	eng := engine.New(st, engine.WithLogger(log))

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.Recovery(log))
	e.Use(middleware.RequestLog(log))
	e.Use(middleware.Metrics())
	if cfg.Server.RateLimit > 0 {
		e.Use(middleware.RateLimit(cfg.Server.RateLimit, cfg.Server.RateBurst))
	}
	// CORS for the local front end.
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowCredentials: true,
	}))

	// Operational endpoints stay on plain echo.
	health := handlers.NewHealthHandler(st)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// API operations go through Huma, which owns request schema validation
	// and the generated OpenAPI document at /openapi.json.
	api := humaecho.New(e, huma.DefaultConfig("dealscout API", version))
	handlers.RegisterIngestRoutes(api, handlers.NewIngestHandler(eng))
	handlers.RegisterListingRoutes(api, handlers.NewListingsHandler(st))
	handlers.RegisterScoreRoutes(api, handlers.NewScoreHandler(eng))
	handlers.RegisterNotifyRoutes(api, handlers.NewNotifyHandler(notify.NewRecorder()))

	if cfg.Scoring.RescoreInterval > 0 {
		sched, err := engine.NewScheduler(eng, cfg.Scoring.RescoreInterval, log)
		if err != nil {
			return fmt.Errorf("creating scheduler: %w", err)
		}
		sched.Start()
		defer func() { <-sched.Stop().Done() }()
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr)

	// Start server in a goroutine.
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "err", err)
		}
	}()

	// Wait for interrupt signal.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}

// loadConfig reads the config file when present and otherwise falls back to
// defaults (in-memory store, or postgres when DATABASE_URL is set).
func loadConfig() (*config.Config, error) {
	if _, err := os.Stat(cfgFile); err != nil {
		return config.Default(), nil
	}
	return config.Load(cfgFile)
}

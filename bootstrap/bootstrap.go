// Package bootstrap wires all dependencies and starts the application.
package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/devboost/leaderboard/adapters/clock"
	apihttp "github.com/devboost/leaderboard/adapters/http"
	"github.com/devboost/leaderboard/adapters/idgen"
	"github.com/devboost/leaderboard/adapters/litellm"
	"github.com/devboost/leaderboard/adapters/metrics"
	"github.com/devboost/leaderboard/app"
	"github.com/devboost/leaderboard/config"
	"github.com/rs/zerolog"
)

// App represents the running application.
type App struct {
	Logger     zerolog.Logger
	Config     *config.Holder
	HTTPServer *http.Server
	Metrics    *metrics.Collector

	gateway   *litellm.Client
	dashboard *app.Dashboard
	directory *app.TeamDirectory
	catalog   *app.ModelCatalog
}

// New creates and initializes the application from a loaded config.
func New(cfg *config.Config) (*App, error) {
	logger := setupLogger(cfg.Logging)

	logger.Info().Msg("initializing leaderboard")

	a := &App{
		Logger: logger,
	}

	if cfg.Metrics.Enabled {
		a.Metrics = metrics.New()
		logger.Info().Msg("prometheus metrics enabled")
	}

	if err := a.initServices(cfg); err != nil {
		return nil, err
	}
	if err := a.initHTTPServer(cfg); err != nil {
		return nil, fmt.Errorf("init http server: %w", err)
	}

	return a, nil
}

// NewWithHotReload creates the application with config file watching
// and SIGHUP reload support. Reloads adjust the log level; server and
// gateway addresses require a restart.
func NewWithHotReload(path string) (*App, error) {
	bootLogger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	holder, err := config.NewHolder(path, bootLogger)
	if err != nil {
		return nil, err
	}

	a, err := New(holder.Get())
	if err != nil {
		holder.Stop()
		return nil, err
	}
	a.Config = holder

	holder.OnChange(func(newCfg *config.Config) {
		applyLogLevel(newCfg.Logging.Level)
		if a.Metrics != nil {
			a.Metrics.ConfigReloads.Inc()
			a.Metrics.ConfigLastReload.SetToCurrentTime()
		}
	})

	if err := holder.WatchFile(); err != nil {
		a.Logger.Warn().Err(err).Msg("config file watching disabled")
	}
	holder.WatchSignals()

	return a, nil
}

func (a *App) initServices(cfg *config.Config) error {
	gateway, err := litellm.New(litellm.Config{
		BaseURL:  cfg.Gateway.URL,
		APIKey:   cfg.Gateway.APIKey,
		Timeout:  cfg.Gateway.Timeout,
		PageSize: cfg.Gateway.PageSize,
		MaxPages: cfg.Gateway.MaxPages,
	}, a.Logger)
	if err != nil {
		return fmt.Errorf("init gateway client: %w", err)
	}
	if a.Metrics != nil {
		gateway.SetMetrics(a.Metrics)
	}
	a.gateway = gateway

	a.directory = app.NewTeamDirectory(gateway, a.Logger)
	a.catalog = app.NewModelCatalog(gateway, clock.Real{}, cfg.Catalog.RefreshInterval, a.Logger)
	a.dashboard = app.NewDashboard(gateway, a.directory, a.catalog, a.Logger)

	a.Logger.Info().Str("gateway", cfg.Gateway.URL).Msg("services initialized")
	return nil
}

func (a *App) initHTTPServer(cfg *config.Config) error {
	dashboardHandler := apihttp.NewDashboardHandler(a.dashboard, clock.Real{}, a.Logger)
	healthHandler := apihttp.NewHealthHandler(a.gateway)

	router := apihttp.NewRouter(dashboardHandler, healthHandler, a.Logger, apihttp.RouterConfig{
		Metrics:       a.Metrics,
		MetricsPath:   cfg.Metrics.Path,
		EnableOpenAPI: cfg.OpenAPI.Enabled,
		CORSOrigins:   cfg.CORS.Origins,
		RequestIDs:    idgen.UUID{},
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	a.HTTPServer = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	a.Logger.Info().Str("addr", addr).Msg("http server configured")
	return nil
}

// Run starts the HTTP server and blocks until shutdown.
func (a *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info().
			Str("addr", a.HTTPServer.Addr).
			Msg("starting http server")
		if err := a.HTTPServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		a.Logger.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	return a.Shutdown()
}

// Shutdown gracefully stops the application.
func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if a.HTTPServer != nil {
		if err := a.HTTPServer.Shutdown(ctx); err != nil {
			a.Logger.Error().Err(err).Msg("http server shutdown error")
		}
	}

	if a.Config != nil {
		a.Config.Stop()
	}

	a.Logger.Info().Msg("shutdown complete")
	return nil
}

// setupLogger builds the root logger from config.
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	applyLogLevel(cfg.Level)

	if cfg.Format == "console" {
		output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
		return zerolog.New(output).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}

func applyLogLevel(levelStr string) {
	level, err := zerolog.ParseLevel(levelStr)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}

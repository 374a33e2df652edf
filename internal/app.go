package internal

import (
	"context"
	"drinkdays/internal/controllers"
	"drinkdays/internal/providers"
	"drinkdays/internal/services"
	"drinkdays/internal/storage/interfaces"
	"drinkdays/internal/structures"
	"errors"
	"fmt"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"
)

type App struct {
	WebServer  *http.Server
	journal    services.JournalServiceInterface
	compressor interfaces.CompressorInterface
	logger     providers.Logger
	conf       *structures.Config
}

func NewApp(apiController *controllers.ApiController, healthController *controllers.HealthController, journal services.JournalServiceInterface, compressor interfaces.CompressorInterface, conf *structures.Config, logger providers.Logger, router providers.RouterProviderInterface, metrics providers.MetricsProviderInterface) *App {
	// Inner mux: API routes
	routes := router.GetRoutes()
	apiMux := http.NewServeMux()
	for _, route := range routes {
		apiMux.Handle(route.Url, route.Handler)
	}

	// Wrap API routes with metrics middleware
	instrumentedAPI := providers.MetricsMiddleware(metrics, logger, routes, apiMux)

	// Outer mux: infrastructure + instrumented API
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", healthController.Health)
	if conf.Metrics.Enabled {
		mux.Handle("GET /metrics", promhttp.Handler())
	}
	mux.Handle("/", instrumentedAPI)

	return &App{
		WebServer: &http.Server{
			Addr:         net.JoinHostPort(conf.WebServer.Host, strconv.Itoa(conf.WebServer.Port)),
			Handler:      mux,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		journal:    journal,
		compressor: compressor,
		logger:     logger,
		conf:       conf,
	}
}

// Run restores the journal, serves until ctx is done or SIGINT/SIGTERM
// arrives, then shuts down. A journal that fails to restore is served
// read-only instead of aborting.
func (app *App) Run(ctx context.Context) error {
	app.logger.Infof(providers.TypeApp, "Starting %s", app.conf.AppName)
	if err := app.journal.Restore(); err != nil {
		app.logger.Errorf(providers.TypeApp, "Restore error, serving read-only: %s", err)
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		app.logger.Infof(providers.TypeApp, "Listening HTTP clients on %s", app.WebServer.Addr)
		if err := app.WebServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		app.logger.Infof(providers.TypeApp, "Shutdown signal received")
	case err := <-serverErr:
		app.compressor.Close()
		return fmt.Errorf("server error: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.WebServer.Shutdown(shutdownCtx); err != nil {
		return err
	}
	app.compressor.Close()
	app.logger.Infof(providers.TypeApp, "gracefully stopped")
	return nil
}

package internal

import (
	"context"
	"fmt"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"
	"urlchecker/internal/controllers"
	"urlchecker/internal/events"
	"urlchecker/internal/persistence/interfaces"
	"urlchecker/internal/providers"
	"urlchecker/internal/services"
	"urlchecker/internal/structures"
)

type App struct {
	WebServer *http.Server
}

// NewHandler assembles the outer mux: infrastructure endpoints plus the
// instrumented API routes.
func NewHandler(router providers.RouterProviderInterface, healthController *controllers.HealthController, conf *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface) http.Handler {
	instrumentedAPI := providers.MetricsMiddleware(metrics, router.Mux())

	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthController.Health)
	if conf.Metrics.Enabled {
		mux.Handle("/metrics", promhttp.Handler())
	}
	mux.Handle("/", instrumentedAPI)

	return providers.RequestLogMiddleware(logger, mux)
}

func NewApp(
	router providers.RouterProviderInterface,
	healthController *controllers.HealthController,
	scheduler interfaces.SchedulerInterface,
	service services.ScanOrchestratorInterface,
	conf *structures.Config,
	logger providers.Logger,
	metrics providers.MetricsProviderInterface,
	store interfaces.SnapshotStoreInterface,
	compressor interfaces.CompressorInterface,
	publisher events.PublisherInterface,
) (*App, error) {
	defer logger.Close()
	defer compressor.Close()
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Warnf(providers.TypeApp, "Error closing event publisher: %s", err)
		}
	}()
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warnf(providers.TypeStorage, "Error closing snapshot store: %s", err)
		}
	}()

	logger.Infof(providers.TypeApp, "Starting %s", conf.AppName)
	err := scheduler.Restore()
	if err != nil {
		logger.Errorf(providers.TypeApp, "Restore error: %s", err)
	}
	metrics.SetHistoryEntries(service.HistorySize())

	app := &App{
		WebServer: &http.Server{
			Addr:         conf.WebServer.Host + ":" + strconv.Itoa(conf.WebServer.Port),
			Handler:      NewHandler(router, healthController, conf, logger, metrics),
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second + conf.Scanner.Latency,
			IdleTimeout:  60 * time.Second,
		},
	}

	scheduler.Init()

	serverErr := make(chan error, 1)
	go func() {
		logger.Infof(providers.TypeApp, "Listening HTTP clients on %s:%d", conf.WebServer.Host, conf.WebServer.Port)
		if err := app.WebServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		logger.Infof(providers.TypeApp, "Shutdown signal received")
	case err := <-serverErr:
		scheduler.Stop()
		return nil, fmt.Errorf("server error: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second+conf.Scanner.Latency)
	defer cancel()

	if err = app.WebServer.Shutdown(ctx); err != nil {
		scheduler.Stop()
		return nil, err
	}
	scheduler.Stop()
	err = scheduler.Persist()
	if err != nil {
		return nil, err
	}
	logger.Infof(providers.TypeApp, "gracefully stopped")
	return app, nil
}

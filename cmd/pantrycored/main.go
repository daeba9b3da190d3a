// Command pantrycored serves the grocery-list API. Configuration is
// environment-only; see internal/config for the PANTRYCORE_ variables.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"pantrycore/internal/blob"
	"pantrycore/internal/config"
	"pantrycore/internal/core"
	"pantrycore/internal/export"
	"pantrycore/internal/httpapi"
	"pantrycore/internal/logging"
)

func main() {
	logger := logging.NewWithService("pantrycored")
	config.LoadEnv(logger)
	logger.SetLevel(config.GetLogLevel())

	if err := run(logger); err != nil {
		logger.WithError(err).Fatal("pantrycored exited")
	}
}

func run(logger *logrus.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine := core.NewDefaultRulesEngine()
	store, err := core.OpenPersistentStore(engine)
	if err != nil {
		return fmt.Errorf("open persistent store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.WithError(err).Warn("Closing persistent store failed")
		}
	}()

	blobs, err := blob.Open(ctx)
	if err != nil {
		return fmt.Errorf("open blob store: %w", err)
	}

	coreLogger := logging.Adapt(logger)
	audit := core.NewLogAuditRecorder(coreLogger)
	registry := prometheus.NewRegistry()
	metrics := core.MultiMetricsRecorder(
		core.NewPrometheusMetricsRecorder(registry),
		core.NewExpvarMetricsRecorder("pantrycore_service_metrics"),
	)

	service := core.NewService(store,
		core.WithLogger(coreLogger),
		core.WithMetricsRecorder(metrics),
		core.WithAuditRecorder(audit),
	)

	loc := exportTimezone(logger)
	worker := export.NewWorker(service, blobs,
		export.WithLogger(coreLogger),
		export.WithAuditRecorder(audit),
		export.WithTimezone(loc),
	)
	worker.Start()

	api := httpapi.New(httpapi.Config{
		Service:  service,
		Exports:  worker,
		Logger:   logger,
		Metrics:  registry,
		Timezone: loc,
	})

	addr := config.GetEnv("PANTRYCORE_HTTP_ADDR", ":8080")
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      api.Router(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		logger.WithFields(logrus.Fields{
			"addr":        addr,
			"blob_driver": string(blobs.Driver()),
			"export_zone": loc.String(),
		}).Info("Starting HTTP server")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutting down")

		grace := time.Duration(config.GetEnvInt("PANTRYCORE_SHUTDOWN_GRACE_SECONDS", 10)) * time.Second
		shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
		defer cancel()

		var errs []error
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("http shutdown: %w", err))
		}
		if err := worker.Stop(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("stop export worker: %w", err))
		}
		return errors.Join(errs...)
	})

	return group.Wait()
}

// exportTimezone resolves PANTRYCORE_EXPORT_TIMEZONE, falling back to the
// worker default and then UTC when the zone name cannot be loaded.
func exportTimezone(logger *logrus.Logger) *time.Location {
	name := config.GetEnv("PANTRYCORE_EXPORT_TIMEZONE", "")
	if name == "" {
		return export.DefaultLocation()
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		logger.WithError(err).Warnf("Unknown export timezone %q, using UTC", name)
		return time.UTC
	}
	return loc
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/narwhalmedia/catalog/internal/catalog/domain"
	"github.com/narwhalmedia/catalog/internal/catalog/importer"
	"github.com/narwhalmedia/catalog/pkg/config"
	"github.com/narwhalmedia/catalog/pkg/events"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
	"github.com/narwhalmedia/catalog/pkg/logger"
)

func main() {
	// A missing .env is fine; real environment variables still apply
	_ = godotenv.Load()

	cfg := config.MustLoadServiceConfig(config.ServiceName, config.GetDefaultCatalogConfig())

	var (
		manifestPath = flag.String("manifest", cfg.Import.ManifestPath, "Path to the catalog manifest (yaml or json)")
		failFast     = flag.Bool("fail-fast", cfg.Import.FailFast, "Abort at the first rejected entry")
		year         = flag.Int("reference-year", cfg.Import.ReferenceYear, "Pin the current year used for year-launched checks (0 uses the clock)")
	)
	flag.Parse()

	log, err := logger.NewFromConfig(cfg.Logger.ToLoggerConfig())
	if err != nil {
		// Unusable output path or encoding; keep going on the environment preset
		log = logger.New()
		log.Warn("Falling back to default logger", interfaces.Error(err))
	}
	defer log.Sync()

	log.Info("Catalog import starting",
		interfaces.String("version", config.GetServiceVersion(&cfg.Service)),
		interfaces.String("environment", cfg.Service.Environment),
		interfaces.String("manifest", *manifestPath))

	if err := run(log, *manifestPath, *failFast, *year); err != nil {
		log.Error("Catalog import failed", interfaces.Error(err))
		log.Sync()
		os.Exit(1)
	}
}

func run(log interfaces.Logger, manifestPath string, failFast bool, year int) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	eventBus := events.NewInMemoryEventBus(log)
	if err := eventBus.Start(ctx); err != nil {
		return fmt.Errorf("failed to start event bus: %w", err)
	}
	defer eventBus.Stop()

	if err := eventBus.Subscribe(events.WildcardEventType, events.NewLoggingHandler(log)); err != nil {
		return fmt.Errorf("failed to subscribe logging handler: %w", err)
	}

	manifest, err := importer.LoadManifest(manifestPath)
	if err != nil {
		return err
	}

	opts := []importer.Option{importer.WithFailFast(failFast)}
	if year != 0 {
		opts = append(opts, importer.WithClock(domain.YearClock(year)))
	}

	result, err := importer.NewImporter(eventBus, log, opts...).Import(ctx, manifest)
	if err != nil {
		return err
	}
	if result.HasRejections() {
		return fmt.Errorf("%d of %d manifest entries rejected",
			len(result.Rejections), len(result.Rejections)+result.Accepted())
	}
	return nil
}

package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"odooseed/internal/config"
	"odooseed/internal/dataset"
	"odooseed/internal/exporter"
	"odooseed/internal/files"
	"odooseed/internal/infrastructure"
	"odooseed/internal/validation"
)

// Dataset names used in logs, spans and metrics
const (
	DatasetClients  = "clients"
	DatasetProducts = "products"
)

// DotEnvFile is loaded into the environment before configuration, if present
const DotEnvFile = ".env"

// StaleTempAge is how old a leftover temporary export file must be before
// startup removes it
const StaleTempAge = time.Hour

// Application holds the components shared by the export commands
type Application struct {
	Config        *config.Config
	Paths         *config.Paths
	Logger        *slog.Logger
	OTelProviders *infrastructure.OTelProviders
	Exporter      *exporter.Exporter
	RunID         string

	validator *validation.FileValidator
}

// LoadConfig loads DotEnvFile, then the application configuration.
// Variables already set in the environment win over the .env file.
func LoadConfig() (*config.Config, error) {
	if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", DotEnvFile, err)
	}
	return config.Load()
}

// NewApplication initializes the process logger from cfg and builds the
// application around it
func NewApplication(cfg *config.Config) (*Application, error) {
	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return newApplication(cfg, logger)
}

func newApplication(cfg *config.Config, logger *slog.Logger) (*Application, error) {
	paths, err := config.GetPaths(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to get paths: %w", err)
	}

	runID := infrastructure.GenerateRunID()
	logger.Info("Application starting",
		slog.String("name", config.AppName),
		slog.String("version", config.AppVersion),
		slog.String("run_id", runID))
	paths.LogPathResolution(logger)
	sweepStaleTempFiles(logger, paths.OutputDir)

	providers, err := infrastructure.InitializeOTel(infrastructure.NewOTelConfig(cfg.Telemetry), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OpenTelemetry: %w", err)
	}

	tracer, err := exporter.NewExportTracer(providers)
	if err != nil {
		providers.Shutdown(context.Background())
		return nil, fmt.Errorf("failed to initialize export tracer: %w", err)
	}

	return &Application{
		Config:        cfg,
		Paths:         paths,
		Logger:        infrastructure.WithComponent(logger, "app"),
		OTelProviders: providers,
		Exporter:      exporter.New(exporter.WithLogger(logger), exporter.WithTracer(tracer)),
		RunID:         runID,
		validator:     validation.NewFileValidator(logger),
	}, nil
}

// sweepStaleTempFiles removes temporary files left by interrupted runs
func sweepStaleTempFiles(logger *slog.Logger, dir string) {
	removed, err := files.NewDiscovery(dir).RemoveStaleTempFiles(".", StaleTempAge)
	if err != nil {
		logger.Warn("Failed to remove stale temporary files",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
	}
	for _, f := range removed {
		logger.Info("Removed stale temporary file",
			slog.String("path", f.Path),
			slog.Time("modified", f.ModTime))
	}
}

// withRun tags ctx with the application's run ID unless it already has one
func (a *Application) withRun(ctx context.Context) context.Context {
	if infrastructure.GetRunID(ctx) != "" {
		return ctx
	}
	return infrastructure.WithRunID(ctx, a.RunID)
}

// ExportClients writes the contact import file: the seed contacts padded
// with filler companies to the configured minimum
func (a *Application) ExportClients(ctx context.Context) (*exporter.Result, error) {
	ctx = a.withRun(ctx)

	seed := dataset.SeedContacts()
	contacts := dataset.PadContacts(seed, a.Config.Export.MinClientRows)
	table, err := dataset.ContactsTable(contacts)
	if err != nil {
		return nil, fmt.Errorf("failed to build clients table: %w", err)
	}

	individuals := 0
	for _, c := range contacts {
		if c.IsIndividual() {
			individuals++
		}
	}
	a.Logger.DebugContext(ctx, "Clients table built",
		slog.Int("seed_contacts", len(seed)),
		slog.Int("filler_contacts", len(contacts)-len(seed)),
		slog.Int("individual_contacts", individuals))

	return a.Exporter.Export(ctx, DatasetClients, table, a.Paths.OutputPath(a.Config.Export.ClientsFile))
}

// ExportProducts writes the product import file with a barcode drawn for
// every catalog item
func (a *Application) ExportProducts(ctx context.Context) (*exporter.Result, error) {
	ctx = a.withRun(ctx)

	gen := dataset.NewBarcodeGenerator(a.Config.Export.BarcodeSeed)
	a.Logger.DebugContext(ctx, "Barcode generator seeded",
		slog.Uint64("seed", gen.Seed()))

	products := dataset.BuildProducts(dataset.Catalog(), gen)
	table, err := dataset.ProductsTable(products)
	if err != nil {
		return nil, fmt.Errorf("failed to build products table: %w", err)
	}

	result, err := a.Exporter.Export(ctx, DatasetProducts, table, a.Paths.OutputPath(a.Config.Export.ProductsFile))
	if err != nil {
		return nil, err
	}

	if summary, err := dataset.SummarizeCatalog(products); err == nil {
		a.Logger.InfoContext(ctx, "Catalog summary", slog.Any("catalog", summary))
	}
	return result, nil
}

// ExportAll writes both files concurrently. Results are returned in
// clients, products order; on error the results of exports that finished
// are still returned.
func (a *Application) ExportAll(ctx context.Context) ([]*exporter.Result, error) {
	ctx = a.withRun(ctx)

	if err := a.validator.ValidateOutputDirectory(a.Paths.OutputDir); err != nil {
		return nil, err
	}

	results := make([]*exporter.Result, 2)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		result, err := a.ExportClients(gctx)
		results[0] = result
		return err
	})
	g.Go(func() error {
		result, err := a.ExportProducts(gctx)
		results[1] = result
		return err
	})
	err := g.Wait()

	written := make([]*exporter.Result, 0, len(results))
	for _, r := range results {
		if r != nil {
			written = append(written, r)
		}
	}
	if err != nil {
		return written, err
	}

	attrs := []any{
		slog.Int("files", len(written)),
		slog.String("output_dir", a.Paths.OutputDir),
	}
	if found, err := files.NewDiscovery(a.Paths.OutputDir).FindSpreadsheets("."); err == nil {
		attrs = append(attrs, slog.Int("spreadsheets_in_dir", len(found)))
	}
	a.Logger.InfoContext(ctx, "All exports written", attrs...)
	return written, nil
}

// Shutdown flushes telemetry and closes the log file
func (a *Application) Shutdown(ctx context.Context) error {
	var errs []error
	if a.OTelProviders != nil {
		if err := a.OTelProviders.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to shutdown OpenTelemetry: %w", err))
		}
	}
	if err := infrastructure.CloseLogFile(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close log file: %w", err))
	}
	return errors.Join(errs...)
}

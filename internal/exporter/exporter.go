package exporter

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"odooseed/internal/config"
	"odooseed/internal/infrastructure"
	"odooseed/internal/validation"
)

// Format is an output file format
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// SupportedExtensions lists the destination extensions Export accepts
var SupportedExtensions = []string{".xlsx", ".csv"}

// FormatFromPath picks the output format from the destination extension
func FormatFromPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return FormatXLSX, true
	case ".csv":
		return FormatCSV, true
	default:
		return "", false
	}
}

// TableWriter renders a Table into a byte stream
type TableWriter interface {
	WriteTable(w io.Writer, t *Table) error
}

// Result describes a written export file
type Result struct {
	Dataset  string
	Path     string
	Format   Format
	Rows     int // data rows, header excluded
	Columns  int
	Duration time.Duration
}

// Message is the confirmation printed after a successful export
func (r *Result) Message() string {
	return fmt.Sprintf("File %s generated successfully.", filepath.Base(r.Path))
}

// Exporter writes Tables to spreadsheet files
type Exporter struct {
	logger    *slog.Logger
	validator *validation.FileValidator
	tracer    *ExportTracer
	writers   map[Format]TableWriter
}

// Option configures an Exporter
type Option func(*Exporter)

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(e *Exporter) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithTracer records spans and metrics for each export
func WithTracer(tracer *ExportTracer) Option {
	return func(e *Exporter) {
		if tracer != nil {
			e.tracer = tracer
		}
	}
}

// WithSheetName names the worksheet of .xlsx exports
func WithSheetName(name string) Option {
	return func(e *Exporter) {
		e.writers[FormatXLSX] = NewXLSXWriter(name)
	}
}

// New creates an Exporter
func New(opts ...Option) *Exporter {
	e := &Exporter{
		logger: infrastructure.GetLogger(),
		tracer: NewNoopExportTracer(),
		writers: map[Format]TableWriter{
			FormatXLSX: NewXLSXWriter(DefaultSheetName),
			FormatCSV:  NewCSVWriter(),
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = infrastructure.WithComponent(e.logger, "exporter")
	e.validator = validation.NewFileValidator(e.logger)
	return e
}

// Export writes table to path: the header in the first row, then one row
// per record in order. An existing file is replaced. The table is checked
// for shape before anything touches the disk.
func (e *Exporter) Export(ctx context.Context, dataset string, table *Table, path string) (*Result, error) {
	start := time.Now()
	ctx, span := e.tracer.TraceExport(ctx, dataset, path)

	result, err := e.export(ctx, dataset, table, path)
	duration := time.Since(start)
	if result != nil {
		result.Duration = duration
	}
	e.tracer.RecordExport(ctx, span, dataset, result, err, duration)

	logger := e.logger
	if traceID := infrastructure.TraceIDFromContext(ctx); traceID != "" {
		logger = logger.With(slog.String("trace_id", traceID))
	}

	if err != nil {
		infrastructure.WithError(logger, err).ErrorContext(ctx, "Export failed",
			slog.String("dataset", dataset),
			slog.String("path", path))
		return nil, err
	}

	logger.InfoContext(ctx, "Export written",
		slog.String("dataset", dataset),
		slog.String("path", result.Path),
		slog.String("format", string(result.Format)),
		slog.Int("rows", result.Rows),
		slog.Int("columns", result.Columns),
		slog.Duration("duration", duration))
	return result, nil
}

func (e *Exporter) export(ctx context.Context, dataset string, table *Table, path string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("export %s cancelled: %w", dataset, err)
	}

	if err := table.Validate(); err != nil {
		return nil, err
	}

	if err := e.validator.ValidateOutputFile(path, SupportedExtensions...); err != nil {
		return nil, err
	}

	format, _ := FormatFromPath(path)
	writer := e.writers[format]

	e.logger.DebugContext(ctx, "Writing export file",
		slog.String("dataset", dataset),
		slog.String("path", path),
		slog.Int("record_count", table.Len()))
	if config.FileExists(path) {
		e.logger.InfoContext(ctx, "Replacing existing export file",
			slog.String("path", path))
	}

	if err := writeFileAtomic(path, func(w io.Writer) error {
		return writer.WriteTable(w, table)
	}); err != nil {
		return nil, err
	}

	return &Result{
		Dataset: dataset,
		Path:    path,
		Format:  format,
		Rows:    table.Len(),
		Columns: len(table.Columns),
	}, nil
}

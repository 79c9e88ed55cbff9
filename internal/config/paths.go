package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Paths contains the resolved locations used by a run.
// Relative settings resolve against the working directory, so a bare file
// name lands next to where the command was started.
type Paths struct {
	WorkDir   string
	OutputDir string
	LogsDir   string
}

// GetPaths resolves the output directory and log location
func GetPaths(cfg *Config) (*Paths, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	outputDir := cfg.Export.OutputDir
	if outputDir == "" {
		outputDir = "."
	}
	if !filepath.IsAbs(outputDir) {
		outputDir = filepath.Join(wd, outputDir)
	}

	logFile := cfg.Logging.FilePath
	if logFile == "" {
		logFile = DefaultLogFile
	}
	if !filepath.IsAbs(logFile) {
		logFile = filepath.Join(wd, logFile)
	}

	return &Paths{
		WorkDir:   wd,
		OutputDir: filepath.Clean(outputDir),
		LogsDir:   filepath.Dir(logFile),
	}, nil
}

// OutputPath returns where an export file lands. Absolute names are kept.
func (p *Paths) OutputPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(p.OutputDir, name)
}

// LogPath returns a path inside the log directory
func (p *Paths) LogPath(name string) string {
	return filepath.Join(p.LogsDir, name)
}

// LogPathResolution logs all resolved paths for debugging
func (p *Paths) LogPathResolution(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Debug("Resolved paths",
		slog.String("work_dir", p.WorkDir),
		slog.String("output_dir", p.OutputDir),
		slog.String("logs_dir", p.LogsDir))
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

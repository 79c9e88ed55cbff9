package validation

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	apperrors "odooseed/internal/errors"
)

// FileValidator provides the file checks shared by the export commands
type FileValidator struct {
	logger *slog.Logger
}

// NewFileValidator creates a new file validator
func NewFileValidator(logger *slog.Logger) *FileValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileValidator{
		logger: logger,
	}
}

// ValidateOutputDirectory checks that dir exists, is a directory and accepts
// new files. It never creates the directory.
func (v *FileValidator) ValidateOutputDirectory(dir string) error {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		v.logger.Error("Output directory does not exist",
			slog.String("directory", dir))
		return apperrors.NewWriteError(dir, fmt.Errorf("directory does not exist: %w", err))
	}
	if err != nil {
		v.logger.Error("Failed to stat output directory",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return apperrors.NewWriteError(dir, err)
	}
	if !info.IsDir() {
		v.logger.Error("Output path is not a directory",
			slog.String("path", dir))
		return apperrors.NewWriteError(dir, fmt.Errorf("%s is not a directory", dir))
	}

	// Verify it's writable by creating a probe file
	probe, err := os.CreateTemp(dir, ".write_test_*")
	if err != nil {
		v.logger.Error("Output directory is not writable",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return apperrors.NewWriteError(dir, fmt.Errorf("directory is not writable: %w", err))
	}
	probe.Close()
	os.Remove(probe.Name())

	v.logger.Debug("Output directory validated",
		slog.String("directory", dir))
	return nil
}

// ValidateOutputFile checks that path can be written as an export: its
// extension is one of allowedExts (case-insensitive, with leading dot), its
// parent directory exists and it is not itself a directory.
func (v *FileValidator) ValidateOutputFile(path string, allowedExts ...string) error {
	if strings.TrimSpace(path) == "" {
		return apperrors.NewWriteError(path, fmt.Errorf("empty output path"))
	}

	ext := strings.ToLower(filepath.Ext(path))
	if len(allowedExts) > 0 && !containsFold(allowedExts, ext) {
		v.logger.Error("Unsupported output format",
			slog.String("file", path),
			slog.String("extension", ext))
		return apperrors.NewWriteError(path, fmt.Errorf("unsupported file extension %q", ext)).
			WithContext("allowed", allowedExts)
	}

	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		v.logger.Error("Output directory is not accessible",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return apperrors.NewWriteError(path, err)
	}
	if !info.IsDir() {
		return apperrors.NewWriteError(path, fmt.Errorf("%s is not a directory", dir))
	}

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		v.logger.Error("Output path is a directory",
			slog.String("path", path))
		return apperrors.NewWriteError(path, fmt.Errorf("%s is a directory", path))
	}

	return nil
}

// ValidateFile checks if a specific file exists and is readable
func (v *FileValidator) ValidateFile(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		v.logger.Error("File does not exist",
			slog.String("file", path))
		return fmt.Errorf("file %s does not exist", path)
	}
	if err != nil {
		v.logger.Error("Failed to stat file",
			slog.String("file", path),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to stat file %s: %w", path, err)
	}
	if info.IsDir() {
		v.logger.Error("Path is a directory, not a file",
			slog.String("path", path))
		return fmt.Errorf("%s is a directory, not a file", path)
	}

	file, err := os.Open(path)
	if err != nil {
		v.logger.Error("File is not readable",
			slog.String("file", path),
			slog.String("error", err.Error()))
		return fmt.Errorf("file %s is not readable: %w", path, err)
	}
	file.Close()

	v.logger.Debug("File validated",
		slog.String("file", path),
		slog.Int64("size", info.Size()))
	return nil
}

// ValidateSpreadsheetFile checks that path is a readable .xlsx or .csv file
// and not an Excel lock file
func (v *FileValidator) ValidateSpreadsheetFile(path string) error {
	if err := v.ValidateFile(path); err != nil {
		return err
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".xlsx" && ext != ".csv" {
		v.logger.Error("File is not a spreadsheet",
			slog.String("file", path),
			slog.String("extension", ext))
		return fmt.Errorf("file %s is not a spreadsheet (extension: %s)", path, ext)
	}

	if strings.HasPrefix(filepath.Base(path), "~$") {
		v.logger.Warn("Skipping temporary Excel file",
			slog.String("file", path))
		return fmt.Errorf("file %s is a temporary Excel file", path)
	}

	return nil
}

func containsFold(values []string, s string) bool {
	for _, v := range values {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}

package exporter

import (
	"io"
	"os"
	"path/filepath"

	"odooseed/internal/config"
	apperrors "odooseed/internal/errors"
	"odooseed/internal/files"
)

// writeFileAtomic streams write's output into a temporary file next to path
// and renames it into place. A failed write leaves any existing file at path
// untouched and no partial file behind.
func writeFileAtomic(path string, write func(io.Writer) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), files.TempPattern(path))
	if err != nil {
		return apperrors.NewWriteError(path, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	if err = write(tmp); err != nil {
		return apperrors.NewWriteError(path, err)
	}
	if err = tmp.Sync(); err != nil {
		return apperrors.NewWriteError(path, err)
	}
	if err = tmp.Close(); err != nil {
		return apperrors.NewWriteError(path, err)
	}
	if err = os.Chmod(tmpName, config.FilePermission); err != nil {
		return apperrors.NewWriteError(path, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return apperrors.NewWriteError(path, err)
	}
	return nil
}

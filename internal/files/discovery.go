package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// tempSuffix ends every temporary export file name
const tempSuffix = ".tmp"

// FileInfo represents information about a discovered file
type FileInfo struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// Discovery provides file discovery operations rooted at a base path
type Discovery struct {
	basePath string
}

// NewDiscovery creates a new file discovery instance
func NewDiscovery(basePath string) *Discovery {
	return &Discovery{basePath: basePath}
}

// TempPattern returns the os.CreateTemp pattern used while writing target
func TempPattern(target string) string {
	return "." + filepath.Base(target) + ".*" + tempSuffix
}

// IsTempFile reports whether name looks like a temporary export file
func IsTempFile(name string) bool {
	return strings.HasPrefix(name, ".") && strings.HasSuffix(name, tempSuffix) && len(name) > len(tempSuffix)+1
}

func (d *Discovery) resolve(dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(d.basePath, dir)
}

// find lists the regular files in dir accepted by match, oldest first
func (d *Discovery) find(dir string, match func(name string) bool) ([]FileInfo, error) {
	fullPath := d.resolve(dir)

	entries, err := os.ReadDir(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", fullPath, err)
	}

	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir() || !match(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, FileInfo{
			Path:    filepath.Join(fullPath, entry.Name()),
			Name:    entry.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].ModTime.Before(files[j].ModTime)
	})
	return files, nil
}

// FindSpreadsheets finds the .xlsx and .csv files in dir, skipping Excel
// lock files
func (d *Discovery) FindSpreadsheets(dir string) ([]FileInfo, error) {
	return d.find(dir, func(name string) bool {
		if strings.HasPrefix(name, "~$") {
			return false
		}
		ext := strings.ToLower(filepath.Ext(name))
		return ext == ".xlsx" || ext == ".csv"
	})
}

// FindTempFiles finds temporary export files in dir
func (d *Discovery) FindTempFiles(dir string) ([]FileInfo, error) {
	return d.find(dir, IsTempFile)
}

// RemoveStaleTempFiles deletes temporary export files in dir last modified
// more than maxAge ago and returns the ones removed. A missing directory
// has nothing to remove.
func (d *Discovery) RemoveStaleTempFiles(dir string, maxAge time.Duration) ([]FileInfo, error) {
	if _, err := os.Stat(d.resolve(dir)); os.IsNotExist(err) {
		return nil, nil
	}

	temps, err := d.FindTempFiles(dir)
	if err != nil {
		return nil, err
	}

	cutoff := time.Now().Add(-maxAge)
	var removed []FileInfo
	for _, f := range temps {
		if f.ModTime.After(cutoff) {
			continue
		}
		if err := os.Remove(f.Path); err != nil && !os.IsNotExist(err) {
			return removed, fmt.Errorf("failed to remove %s: %w", f.Path, err)
		}
		removed = append(removed, f)
	}
	return removed, nil
}

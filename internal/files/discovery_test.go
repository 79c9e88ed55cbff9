package files

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string, modTime time.Time) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	require.NoError(t, os.Chtimes(path, modTime, modTime))
}

func names(files []FileInfo) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		out = append(out, f.Name)
	}
	return out
}

func TestTempPattern(t *testing.T) {
	pattern := TempPattern("/out/odoo_clients.xlsx")
	assert.Equal(t, ".odoo_clients.xlsx.*.tmp", pattern)

	f, err := os.CreateTemp(t.TempDir(), pattern)
	require.NoError(t, err)
	defer f.Close()
	assert.True(t, IsTempFile(filepath.Base(f.Name())))
}

func TestIsTempFile(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{".odoo_clients.xlsx.123456.tmp", true},
		{".pharmaceutical_products.xlsx.9.tmp", true},
		{"odoo_clients.xlsx", false},
		{"notes.tmp", false},
		{".tmp", false},
		{".hidden", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTempFile(tt.name))
		})
	}
}

func TestFindSpreadsheets(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	touch(t, filepath.Join(dir, "b.csv"), now)
	touch(t, filepath.Join(dir, "a.xlsx"), now.Add(-time.Hour))
	touch(t, filepath.Join(dir, "~$a.xlsx"), now)
	touch(t, filepath.Join(dir, "notes.txt"), now)
	touch(t, filepath.Join(dir, ".a.xlsx.1.tmp"), now)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "dir.xlsx"), 0755))

	found, err := NewDiscovery(dir).FindSpreadsheets(".")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.xlsx", "b.csv"}, names(found), "oldest first")
}

func TestFindSpreadsheets_AbsoluteAndMissing(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.xlsx"), time.Now())

	found, err := NewDiscovery("/elsewhere").FindSpreadsheets(dir)
	require.NoError(t, err)
	assert.Len(t, found, 1)

	_, err = NewDiscovery(dir).FindSpreadsheets("missing")
	assert.Error(t, err)
}

func TestRemoveStaleTempFiles(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	touch(t, filepath.Join(dir, ".odoo_clients.xlsx.1.tmp"), now.Add(-2*time.Hour))
	touch(t, filepath.Join(dir, ".odoo_clients.xlsx.2.tmp"), now)
	touch(t, filepath.Join(dir, "odoo_clients.xlsx"), now.Add(-2*time.Hour))

	removed, err := NewDiscovery(dir).RemoveStaleTempFiles(".", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, []string{".odoo_clients.xlsx.1.tmp"}, names(removed))

	assert.NoFileExists(t, filepath.Join(dir, ".odoo_clients.xlsx.1.tmp"))
	assert.FileExists(t, filepath.Join(dir, ".odoo_clients.xlsx.2.tmp"))
	assert.FileExists(t, filepath.Join(dir, "odoo_clients.xlsx"))
}

func TestRemoveStaleTempFiles_MissingDir(t *testing.T) {
	removed, err := NewDiscovery(t.TempDir()).RemoveStaleTempFiles("missing", time.Hour)
	assert.NoError(t, err)
	assert.Empty(t, removed)
}

package testutil

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferedSlogHandler(t *testing.T) {
	t.Run("captures log records", func(t *testing.T) {
		logger, handler := NewTestLogger(t)

		logger.Info("Export written", slog.String("dataset", "clients"))
		logger.Error("Export failed", slog.Int("rows", 20))

		require.Equal(t, 2, handler.Count())
		assert.True(t, handler.ContainsMessage("Export written"))
		assert.True(t, handler.ContainsAttr("dataset", "clients"))
		assert.True(t, handler.ContainsAttr("rows", int64(20)))
	})

	t.Run("filters by level", func(t *testing.T) {
		logger, handler := NewTestLogger(t)

		logger.Debug("debug msg")
		logger.Info("info msg")
		logger.Warn("warn msg")
		logger.Error("error msg")

		assert.Len(t, handler.GetRecordsByLevel(slog.LevelDebug), 1)
		assert.Len(t, handler.GetRecordsByLevel(slog.LevelInfo), 1)
		assert.Len(t, handler.GetRecordsByLevel(slog.LevelError), 1)
	})

	t.Run("derived loggers keep attributes and share records", func(t *testing.T) {
		logger, handler := NewTestLogger(t)
		component := logger.With(slog.String("component", "exporter"))

		component.Info("Writing export file")
		logger.WithGroup("export").Info("grouped", slog.String("path", "a.xlsx"))

		record, ok := handler.FindRecord("Writing export file")
		require.True(t, ok)
		value, ok := record.Attr("component")
		require.True(t, ok)
		assert.Equal(t, "exporter", value)
		assert.True(t, handler.ContainsAttr("export.path", "a.xlsx"))
		assert.Equal(t, 2, handler.Count())
	})

	t.Run("clear", func(t *testing.T) {
		logger, handler := NewTestLogger(t)
		logger.Info("one")
		handler.Clear()
		assert.Zero(t, handler.Count())
		assert.False(t, handler.ContainsMessage("one"))
	})
}

func TestAssertHelpers(t *testing.T) {
	logger, handler := NewTestLogger(t)
	logger.Info("File odoo_clients.xlsx generated successfully.", slog.String("component", "app"))

	AssertLogContains(t, handler, slog.LevelInfo, "generated successfully")
	AssertLogAttr(t, handler, "component", "app")
	AssertNoErrors(t, handler)
}

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuredLogger(t *testing.T) {
	t.Run("creates JSON logger with proper configuration", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		logger.Info("patterns fetched",
			Component("catalog"),
			slog.Int("count", 42))

		output := buf.String()
		assert.Contains(t, output, `"level":"INFO"`)
		assert.Contains(t, output, `"msg":"patterns fetched"`)
		assert.Contains(t, output, `"component":"catalog"`)
		assert.Contains(t, output, `"count":42`)
		assert.Contains(t, output, `"time":`)
	})

	t.Run("respects log level configuration", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelWarn)

		logger.Debug("debug message")
		logger.Info("info message")
		logger.Warn("warning message")

		output := buf.String()
		assert.NotContains(t, output, "debug message")
		assert.NotContains(t, output, "info message")
		assert.Contains(t, output, "warning message")
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestLoggerHelpers(t *testing.T) {
	t.Run("LogError creates structured error log", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		LogError(logger, "failed to fetch shape", assert.AnError,
			slog.String("shape_id", "shp_1"),
			Component("catalog"))

		output := buf.String()
		assert.Contains(t, output, `"level":"ERROR"`)
		assert.Contains(t, output, `"msg":"failed to fetch shape"`)
		assert.Contains(t, output, `"error":"assert.AnError general error for testing"`)
		assert.Contains(t, output, `"shape_id":"shp_1"`)
		assert.Contains(t, output, `"component":"catalog"`)
	})

	t.Run("LogError tolerates nil error and nil logger", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		LogError(logger, "no shape", nil)
		LogError(nil, "ignored", assert.AnError)

		output := buf.String()
		assert.Contains(t, output, `"msg":"no shape"`)
		assert.NotContains(t, output, `"error":`)
	})

	t.Run("LogOperation logs structured operation info", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		LogOperation(logger, "gtfs_catalog_loaded",
			slog.String("source", "feed.zip"),
			slog.Int("patterns_count", 150),
			slog.Duration("duration", 0))

		output := buf.String()
		assert.Contains(t, output, `"level":"INFO"`)
		assert.Contains(t, output, `"msg":"gtfs_catalog_loaded"`)
		assert.Contains(t, output, `"source":"feed.zip"`)
		assert.Contains(t, output, `"patterns_count":150`)
		assert.NotContains(t, output, `"duration"`)
	})

	t.Run("LogHTTPRequest logs request details", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		LogHTTPRequest(logger, "GET", "/api/lines.json", 200, 1.5,
			slog.String("user_agent", "test-client"))

		output := buf.String()
		assert.Contains(t, output, `"msg":"http_request"`)
		assert.Contains(t, output, `"method":"GET"`)
		assert.Contains(t, output, `"path":"/api/lines.json"`)
		assert.Contains(t, output, `"status":200`)
		assert.Contains(t, output, `"duration_ms":1.5`)
		assert.Contains(t, output, `"user_agent":"test-client"`)
	})
}

func TestContextLogger(t *testing.T) {
	t.Run("stores and retrieves logger from context", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		ctx := WithLogger(context.Background(), logger)

		retrievedLogger := FromContext(ctx)
		require.NotNil(t, retrievedLogger)

		retrievedLogger.Info("test from context")
		assert.Contains(t, buf.String(), "test from context")
	})

	t.Run("returns default logger when not in context", func(t *testing.T) {
		logger := FromContext(context.Background())
		require.NotNil(t, logger)
		logger.Info("test message")
	})
}

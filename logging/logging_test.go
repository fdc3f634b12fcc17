package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/0xalexb/hjarta-config/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_JSONOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := logging.NewLogger(logging.LoggerConfig{Level: "INFO"}, &buf)

	logger.Info("max filter loop count reached", slog.String("key", "db.url"), slog.Int("iterations", 10))

	var logEntry map[string]any

	err := json.Unmarshal(buf.Bytes(), &logEntry)
	require.NoError(t, err, "output should be valid JSON")
	assert.Equal(t, "max filter loop count reached", logEntry["msg"])
	assert.Equal(t, "db.url", logEntry["key"])
	assert.InDelta(t, 10, logEntry["iterations"], 0)
	assert.Equal(t, "INFO", logEntry["level"])
}

func TestNewLogger_TextOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := logging.NewLogger(logging.LoggerConfig{Format: "TEXT"}, &buf)

	logger.Warn("refreshing watched file failed", slog.String("path", "/etc/app.yaml"))

	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), `msg="refreshing watched file failed"`)
	assert.Contains(t, buf.String(), "path=/etc/app.yaml")
}

func TestNewLogger_AddSource(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := logging.NewLogger(logging.LoggerConfig{AddSource: true}, &buf)

	logger.Info("with source")

	var logEntry map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))
	assert.Contains(t, logEntry, slog.SourceKey)
}

func TestNewLogger_Levels(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		configLevel string
		logLevel    slog.Level
		shouldLog   bool
	}{
		{name: "debug level logs debug", configLevel: "DEBUG", logLevel: slog.LevelDebug, shouldLog: true},
		{name: "warning alias", configLevel: "warning", logLevel: slog.LevelWarn, shouldLog: true},
		{name: "info level drops debug", configLevel: "INFO", logLevel: slog.LevelDebug, shouldLog: false},
		{name: "error level drops warn", configLevel: "ERROR", logLevel: slog.LevelWarn, shouldLog: false},
		{name: "empty level defaults to info", configLevel: "", logLevel: slog.LevelInfo, shouldLog: true},
		{name: "invalid level defaults to info", configLevel: "loud", logLevel: slog.LevelDebug, shouldLog: false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			logger := logging.NewLogger(logging.LoggerConfig{Level: testCase.configLevel}, &buf)

			logger.Log(context.Background(), testCase.logLevel, "test message")

			if testCase.shouldLog {
				assert.NotEmpty(t, buf.String(), "log should be written")
			} else {
				assert.Empty(t, buf.String(), "log should not be written")
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.LevelDebug, logging.ParseLevel(" debug "))
	assert.Equal(t, slog.LevelWarn, logging.ParseLevel("WARN"))
	assert.Equal(t, slog.LevelError, logging.ParseLevel("Error"))
	assert.Equal(t, slog.LevelInfo, logging.ParseLevel("verbose"))
}

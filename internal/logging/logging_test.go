package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := New("debug", FormatJSON, &buf)

	logger.Debug("created page", zap.String("slug", "about"))
	require.NoError(t, logger.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "created page", entry["msg"])
	assert.Equal(t, "about", entry["slug"])
	assert.Equal(t, "debug", entry["level"])
}

func TestNewConsoleLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New("warn", "", &buf)

	logger.Info("hidden")
	logger.Warn("partner not found", zap.String("brand", "Rani"))
	require.NoError(t, logger.Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.True(t, strings.Contains(out, "WARN"), out)
	assert.Contains(t, out, "partner not found")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.ErrorLevel, ParseLevel("ERROR"))
	assert.Equal(t, zapcore.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("verbose"))
}

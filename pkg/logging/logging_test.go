package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getmockd/mockd-appsync/pkg/appsync"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},

		{"DEBUG", LevelDebug},
		{"WARNING", LevelWarn},
		{"Error", LevelError},
		{"dEbUg", LevelDebug},

		// Empty and unrecognized default to Info
		{"", LevelInfo},
		{"trace", LevelInfo},
		{"fatal", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected Format
	}{
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{"Json", FormatJSON},
		{"text", FormatText},
		{"", FormatText},
		{"yaml", FormatText},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, ParseFormat(tt.input))
		})
	}
}

func TestNew_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(Config{Level: LevelInfo, Format: FormatJSON, Output: &buf})
	logger.Debug("hidden")
	logger.Info("resolved", "resolvers", 3)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "resolved", entry["msg"])
	assert.Equal(t, float64(3), entry["resolvers"])
}

func TestMultiHandler(t *testing.T) {
	t.Parallel()

	var text, js bytes.Buffer
	logger := slog.New(NewMultiHandler(
		NewHandler(Config{Level: LevelWarn, Format: FormatText, Output: &text}),
		NewHandler(Config{Level: LevelDebug, Format: FormatJSON, Output: &js}),
	)).With("component", "test")

	logger.Debug("debug only")
	logger.Warn("both")

	assert.NotContains(t, text.String(), "debug only")
	assert.Contains(t, text.String(), "both")
	assert.Contains(t, text.String(), "component=test")
	assert.Contains(t, js.String(), `"msg":"debug only"`)
	assert.Contains(t, js.String(), `"msg":"both"`)
}

func TestPluginLogger(t *testing.T) {
	t.Parallel()

	var out, structured bytes.Buffer
	logger := NewPluginLogger(&out, New(Config{Level: LevelDebug, Format: FormatJSON, Output: &structured}))

	logger.Log("fn does not have a functionName", appsync.LogOptions{Color: appsync.ColorOrange})
	logger.Log("ready", appsync.LogOptions{})

	assert.Contains(t, out.String(), "AppSync Simulator: fn does not have a functionName")
	assert.Contains(t, out.String(), "AppSync Simulator: ready")

	lines := strings.Split(strings.TrimSpace(structured.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"level":"WARN"`)
	assert.Contains(t, lines[1], `"level":"INFO"`)
}

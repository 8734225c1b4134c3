package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/fatih/color"

	"github.com/getmockd/mockd-appsync/pkg/appsync"
)

// PluginPrefix starts every line printed by PluginLogger.
const PluginPrefix = "AppSync Simulator: "

// PluginLogger prints simulator messages for humans. It implements
// appsync.Logger.
type PluginLogger struct {
	out    io.Writer
	logger *slog.Logger
	mu     sync.Mutex
}

// NewPluginLogger creates a PluginLogger writing to out (os.Stderr when nil)
// and mirroring messages into logger (discarded when nil).
func NewPluginLogger(out io.Writer, logger *slog.Logger) *PluginLogger {
	if out == nil {
		out = os.Stderr
	}
	if logger == nil {
		logger = Nop()
	}
	return &PluginLogger{out: out, logger: logger}
}

// Log prints message in the colour named by opts.
func (l *PluginLogger) Log(message string, opts appsync.LogOptions) {
	l.mu.Lock()
	_, _ = colorFor(opts.Color).Fprintln(l.out, PluginPrefix+message)
	l.mu.Unlock()

	level := LevelInfo
	if opts.Color == appsync.ColorOrange || opts.Color == appsync.ColorRed {
		level = LevelWarn
	}
	l.logger.Log(context.Background(), level, message, "component", "appsync-simulator")
}

func colorFor(name string) *color.Color {
	switch name {
	case appsync.ColorOrange:
		return color.New(color.FgHiYellow)
	case appsync.ColorRed:
		return color.New(color.FgRed)
	case appsync.ColorGreen:
		return color.New(color.FgGreen)
	default:
		return color.New(color.Reset)
	}
}

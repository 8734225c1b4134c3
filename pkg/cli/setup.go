package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/getmockd/mockd-appsync/pkg/appsync"
	"github.com/getmockd/mockd-appsync/pkg/config"
	"github.com/getmockd/mockd-appsync/pkg/invoke"
	"github.com/getmockd/mockd-appsync/pkg/logging"
)

// project is a loaded project file with everything a command needs to
// resolve it.
type project struct {
	cfg    *config.ProjectConfig
	env    *appsync.Environment
	logger *slog.Logger

	closers []io.Closer
}

// Close releases the log file, if any.
func (p *project) Close() {
	for _, c := range p.closers {
		_ = c.Close()
	}
}

// loadProject reads the project file named by --config (or discovered in the
// working directory) and builds the resolution environment.
func loadProject(cmd *cobra.Command) (*project, error) {
	if envFile != "" {
		if err := config.LoadEnvFile(envFile); err != nil {
			return nil, err
		}
	}

	path := configPath
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		if path, err = config.Discover(wd); err != nil {
			return nil, err
		}
	}

	cfg, err := config.LoadFromFile(path)
	if err != nil {
		return nil, err
	}

	p := &project{cfg: cfg}
	if p.logger, err = p.newLogger(cmd.ErrOrStderr(), cfg.Custom.Simulator.LogLevel); err != nil {
		return nil, err
	}
	p.logger.Debug("project loaded", "path", cfg.Path, "service", cfg.Service)

	// Function output is echoed to stderr so stdout carries only the command's result.
	plugin := logging.NewPluginLogger(cmd.ErrOrStderr(), p.logger)
	p.env = cfg.Environment(plugin, p.logger, invoke.WithEcho(cmd.ErrOrStderr()))
	return p, nil
}

// newLogger builds the diagnostic logger. --log-level wins over the project's
// logLevel; the default is error because simulator warnings are already
// printed by the plugin logger.
func (p *project) newLogger(stderr io.Writer, configured string) (*slog.Logger, error) {
	level := logging.LevelError
	switch {
	case logLevel != "":
		level = logging.ParseLevel(logLevel)
	case configured != "":
		level = logging.ParseLevel(configured)
	}

	console := logging.NewHandler(logging.Config{
		Level:  level,
		Format: logging.ParseFormat(logFormat),
		Output: stderr,
	})
	if logFile == "" {
		return slog.New(console), nil
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	p.closers = append(p.closers, f)

	file := logging.NewHandler(logging.Config{
		Level:  logging.LevelDebug,
		Format: logging.FormatJSON,
		Output: f,
	})
	return slog.New(logging.NewMultiHandler(console, file)), nil
}

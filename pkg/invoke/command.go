package invoke

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"time"
)

// DefaultCommand is the framework executable used when none is configured.
var DefaultCommand = []string{"serverless"}

// DefaultWaitDelay bounds how long Run waits for a finished command's output
// to drain when a descendant process still holds it open.
const DefaultWaitDelay = 2 * time.Second

// CommandManager is a PluginManager backed by the framework's executable.
// Run appends the commands and the current options as flags to Command.
type CommandManager struct {
	// Command is the executable and any leading arguments, e.g. {"npx", "serverless"}.
	Command []string
	// Dir is the working directory, normally the service path.
	Dir string
	// Env is appended to the process environment of every run.
	Env []string
	// Stderr receives the command's stderr. Defaults to os.Stderr.
	Stderr io.Writer
	// Functions limits OptionFunction to known names when non-nil.
	Functions map[string]bool
	// WaitDelay is passed to exec.Cmd. Zero means DefaultWaitDelay.
	WaitDelay time.Duration

	mu      sync.Mutex
	options Options
}

// NewCommandManager creates a CommandManager running command in dir.
func NewCommandManager(command []string, dir string) *CommandManager {
	if len(command) == 0 {
		command = DefaultCommand
	}
	return &CommandManager{Command: command, Dir: dir, options: Options{}}
}

// CLIOptions returns a copy of the current option state.
func (m *CommandManager) CLIOptions() Options {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.options.Clone()
}

// SetCLIOptions replaces the option state.
func (m *CommandManager) SetCLIOptions(opts Options) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.options = opts.Clone()
}

// Run executes the framework with commands and the current options.
func (m *CommandManager) Run(ctx context.Context, commands []string) error {
	if len(m.Command) == 0 {
		return errors.New("no framework command configured")
	}

	opts := m.CLIOptions()
	if fn, ok := opts[OptionFunction]; ok && m.Functions != nil && !m.Functions[fn] {
		return fmt.Errorf("%w: %s", ErrUnknownFunction, fn)
	}

	args := make([]string, 0, len(m.Command)-1+len(commands)+2*len(opts))
	args = append(args, m.Command[1:]...)
	args = append(args, commands...)
	args = append(args, opts.Flags()...)

	cmd := exec.CommandContext(ctx, m.Command[0], args...)
	cmd.Dir = m.Dir
	// Wrapped so exec copies through its own pipe: a descendant that inherits
	// the child's stdout then holds that pipe, not os.Stdout, and WaitDelay
	// can cut it off.
	cmd.Stdout = struct{ io.Writer }{os.Stdout}
	cmd.WaitDelay = m.WaitDelay
	if cmd.WaitDelay == 0 {
		cmd.WaitDelay = DefaultWaitDelay
	}
	cmd.Stderr = m.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
	if len(m.Env) > 0 {
		cmd.Env = append(os.Environ(), m.Env...)
	}

	if err := cmd.Run(); err != nil && !errors.Is(err, exec.ErrWaitDelay) {
		return fmt.Errorf("%s %v: %w", m.Command[0], commands, err)
	}
	return nil
}

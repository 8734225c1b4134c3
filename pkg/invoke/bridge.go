package invoke

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/getmockd/mockd-appsync/pkg/logging"
	"github.com/getmockd/mockd-appsync/pkg/util"
)

// maxLoggedOutput caps payloads and output in debug logs.
const maxLoggedOutput = 2048

// ErrUnknownFunction is returned by PluginManager implementations asked to run
// a function the service does not define.
var ErrUnknownFunction = errors.New("function is not defined")

// PluginManager is the slice of the serverless framework the bridge drives.
type PluginManager interface {
	// CLIOptions returns the current option state.
	CLIOptions() Options
	// SetCLIOptions replaces the option state.
	SetCLIOptions(Options)
	// Run executes a framework command such as {"invoke", "local"}, writing
	// its output to os.Stdout as it is at call time.
	Run(ctx context.Context, commands []string) error
}

// Bridge invokes service functions through a PluginManager. It implements
// appsync.Invoker.
type Bridge struct {
	manager PluginManager
	logger  *slog.Logger
	echo    io.Writer
	mu      sync.Mutex
}

// BridgeOption configures a Bridge.
type BridgeOption func(*Bridge)

// WithEcho sends a copy of everything a function prints to w instead of the
// process's stdout. Commands that print their own result to stdout point this
// at stderr.
func WithEcho(w io.Writer) BridgeOption {
	return func(b *Bridge) {
		b.echo = w
	}
}

// NewBridge creates a Bridge. A nil logger disables logging.
func NewBridge(manager PluginManager, logger *slog.Logger, opts ...BridgeOption) *Bridge {
	if logger == nil {
		logger = logging.Nop()
	}
	b := &Bridge{manager: manager, logger: logger}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Invoke runs functionName with event as its JSON payload and returns what the
// function printed, decoded as JSON when possible and as a string otherwise.
// The manager's option state is restored before Invoke returns, also when the
// run fails.
func (b *Bridge) Invoke(ctx context.Context, functionName string, event any) (any, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload for %s: %w", functionName, err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	requestID := uuid.NewString()
	log := b.logger.With("function", functionName, "requestId", requestID)
	log.Debug("invoking function", "payload", util.TruncateBody(string(payload), maxLoggedOutput))
	start := time.Now()

	output, err := b.run(ctx, functionName, string(payload))
	if err != nil {
		log.Debug("function invocation failed", "error", err, "duration", time.Since(start))
		return nil, fmt.Errorf("invoke %s: %w", functionName, err)
	}

	log.Debug("function invoked",
		"duration", time.Since(start),
		"outputBytes", len(output),
		"output", util.TruncateBody(output, maxLoggedOutput),
	)
	return ParseOutput(output), nil
}

func (b *Bridge) run(ctx context.Context, functionName, payload string) (output string, err error) {
	saved := b.manager.CLIOptions().Clone()
	defer b.manager.SetCLIOptions(saved)

	opts := make(Options, len(saved)+2)
	for k, v := range saved {
		opts[k] = v
	}
	opts[OptionFunction] = functionName
	opts[OptionData] = payload
	b.manager.SetCLIOptions(opts)

	capture, err := StartCapture(b.echo)
	if err != nil {
		return "", err
	}
	defer func() { output = capture.Stop() }()

	return "", b.manager.Run(ctx, []string{"invoke", "local"})
}

// ParseOutput decodes output as JSON, returning the text unchanged when it is
// not valid JSON.
func ParseOutput(output string) any {
	var result any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		return output
	}
	return result
}

package invoke

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tests in this package replace os.Stdout and must not run in parallel.

type fakeManager struct {
	options Options
	seen    []Options
	print   func(opts Options) string
	err     error
	panics  bool
}

func (f *fakeManager) CLIOptions() Options     { return f.options }
func (f *fakeManager) SetCLIOptions(o Options) { f.options = o }

func (f *fakeManager) Run(_ context.Context, commands []string) error {
	if strings.Join(commands, " ") != "invoke local" {
		return fmt.Errorf("unexpected commands %v", commands)
	}
	f.seen = append(f.seen, f.options.Clone())
	if f.print != nil {
		fmt.Fprint(os.Stdout, f.print(f.options))
	}
	if f.panics {
		panic("framework crashed")
	}
	return f.err
}

func TestBridge_Invoke_ParsesJSON(t *testing.T) {
	manager := &fakeManager{
		options: Options{"stage": "dev"},
		print: func(opts Options) string {
			return fmt.Sprintf(`{"function":%q,"payload":%s}`, opts[OptionFunction], opts[OptionData])
		},
	}
	bridge := NewBridge(manager, nil)

	result, err := bridge.Invoke(context.Background(), "getUser", map[string]any{"id": "1"})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"function": "getUser",
		"payload":  map[string]any{"id": "1"},
	}, result)

	require.Len(t, manager.seen, 1)
	assert.Equal(t, Options{"stage": "dev", "f": "getUser", "d": `{"id":"1"}`}, manager.seen[0])
	assert.Equal(t, Options{"stage": "dev"}, manager.options)
}

func TestBridge_Invoke_RawTextFallback(t *testing.T) {
	manager := &fakeManager{print: func(Options) string { return "hello from lambda\n" }}
	bridge := NewBridge(manager, nil)

	result, err := bridge.Invoke(context.Background(), "greet", nil)
	require.NoError(t, err)
	assert.Equal(t, "hello from lambda\n", result)
}

func TestBridge_Invoke_EmptyOutput(t *testing.T) {
	bridge := NewBridge(&fakeManager{}, nil)

	result, err := bridge.Invoke(context.Background(), "quiet", nil)
	require.NoError(t, err)
	assert.Equal(t, "", result)
}

func TestBridge_Invoke_RestoresOptionsOnFailure(t *testing.T) {
	before := Options{"stage": "dev", "f": "previous", "region": "eu-west-1"}
	manager := &fakeManager{
		options: before.Clone(),
		print:   func(Options) string { return "partial" },
		err:     errors.New("exit status 1"),
	}
	bridge := NewBridge(manager, nil)
	stdout := os.Stdout

	result, err := bridge.Invoke(context.Background(), "broken", map[string]any{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invoke broken")
	assert.Nil(t, result)

	assert.Equal(t, before, manager.options)
	assert.Same(t, stdout, os.Stdout)
}

func TestBridge_Invoke_RestoresOptionsOnPanic(t *testing.T) {
	manager := &fakeManager{options: nil, panics: true}
	bridge := NewBridge(manager, nil)
	stdout := os.Stdout

	assert.Panics(t, func() {
		_, _ = bridge.Invoke(context.Background(), "crash", nil)
	})
	assert.Nil(t, manager.options)
	assert.Same(t, stdout, os.Stdout)

	// The capture lock was released, so another invocation can run.
	manager.panics = false
	_, err := bridge.Invoke(context.Background(), "again", nil)
	assert.NoError(t, err)
}

func TestBridge_Invoke_BadPayload(t *testing.T) {
	manager := &fakeManager{}
	bridge := NewBridge(manager, nil)

	_, err := bridge.Invoke(context.Background(), "fn", make(chan int))
	require.Error(t, err)
	assert.Empty(t, manager.seen)
}

func TestBridge_Invoke_Serialized(t *testing.T) {
	manager := &fakeManager{
		print: func(opts Options) string { return opts[OptionData] },
	}
	bridge := NewBridge(manager, nil)

	const n = 20
	results := make([]any, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			result, err := bridge.Invoke(context.Background(), "echo", i)
			assert.NoError(t, err)
			results[i] = result
		}(i)
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		assert.Equal(t, float64(i), results[i])
	}
	assert.Nil(t, manager.options)
}

func TestParseOutput(t *testing.T) {
	assert.Equal(t, map[string]any{"a": float64(1)}, ParseOutput(`  {"a": 1}  `))
	assert.Equal(t, []any{"x"}, ParseOutput(`["x"]`))
	assert.Equal(t, "not json", ParseOutput("not json"))
	assert.Equal(t, `{"a": 1} trailing`, ParseOutput(`{"a": 1} trailing`))
}

func TestBridge_CommandManager(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	manager := NewCommandManager([]string{"sh", "-c", `printf '%s' "$*"`, "sh"}, t.TempDir())
	manager.SetCLIOptions(Options{"stage": "dev"})
	bridge := NewBridge(manager, nil)

	result, err := bridge.Invoke(context.Background(), "hello", map[string]string{"k": "v"})
	require.NoError(t, err)
	assert.Equal(t, `invoke local -d {"k":"v"} -f hello --stage dev`, result)
	assert.Equal(t, Options{"stage": "dev"}, manager.CLIOptions())
}

func TestBridge_Invoke_WithEcho(t *testing.T) {
	var echo bytes.Buffer
	manager := &fakeManager{print: func(Options) string { return `{"ok":true}` }}
	bridge := NewBridge(manager, nil, WithEcho(&echo))

	result, err := bridge.Invoke(context.Background(), "fn", nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"ok": true}, result)
	assert.Equal(t, `{"ok":true}`, echo.String())
}

func TestBridge_CommandManager_DescendantHoldsStdout(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	manager := NewCommandManager([]string{"sh", "-c", `printf done; sleep 30 &`, "sh"}, t.TempDir())
	manager.WaitDelay = 100 * time.Millisecond
	bridge := NewBridge(manager, nil, WithEcho(&bytes.Buffer{}))

	type outcome struct {
		result any
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		result, err := bridge.Invoke(context.Background(), "fn", nil)
		done <- outcome{result, err}
	}()

	select {
	case got := <-done:
		require.NoError(t, got.err)
		assert.Equal(t, "done", got.result)
	case <-time.After(10 * time.Second):
		t.Fatal("invocation did not return while a descendant held stdout")
	}
}

package appsync

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const testServicePath = "/srv/api"

type recordedLog struct {
	message string
	opts    LogOptions
}

type recordingLogger struct {
	mu      sync.Mutex
	entries []recordedLog
}

func (l *recordingLogger) Log(message string, opts LogOptions) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, recordedLog{message: message, opts: opts})
}

type invocation struct {
	functionName string
	event        any
}

type fakeInvoker struct {
	calls  []invocation
	result any
	err    error
}

func (f *fakeInvoker) Invoke(_ context.Context, functionName string, event any) (any, error) {
	f.calls = append(f.calls, invocation{functionName: functionName, event: event})
	return f.result, f.err
}

// writeFiles creates files relative to the test service path on a fresh in-memory filesystem.
func writeFiles(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fsys, filepath.Join(testServicePath, name), []byte(content), 0o644))
	}
	return fsys
}

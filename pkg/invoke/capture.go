package invoke

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
)

// stdoutMu guards os.Stdout while a Capture is installed.
var stdoutMu sync.Mutex

// Capture tees everything written to os.Stdout into a buffer while it is
// installed. Every byte is also forwarded to the echo writer, the original
// stdout unless another is given.
type Capture struct {
	orig *os.File
	echo io.Writer
	w    *os.File
	buf  bytes.Buffer
	done chan struct{}
}

// StartCapture installs a Capture forwarding to echo, or to the current
// os.Stdout when echo is nil. It blocks while another Capture is active.
// Callers must call Stop, typically deferred.
func StartCapture(echo io.Writer) (*Capture, error) {
	stdoutMu.Lock()

	r, w, err := os.Pipe()
	if err != nil {
		stdoutMu.Unlock()
		return nil, fmt.Errorf("failed to create stdout pipe: %w", err)
	}

	c := &Capture{orig: os.Stdout, echo: echo, w: w, done: make(chan struct{})}
	if c.echo == nil {
		c.echo = c.orig
	}
	os.Stdout = w

	go func() {
		defer close(c.done)
		_, _ = io.Copy(passthrough{buf: &c.buf, out: c.echo}, r)
		_ = r.Close()
	}()
	return c, nil
}

// Stop restores os.Stdout, waits for pending output to drain and returns
// everything captured. Draining ends once every writer of the pipe is closed,
// so child processes must not hand the pipe to long-lived descendants;
// CommandManager never passes it to a child directly.
func (c *Capture) Stop() string {
	os.Stdout = c.orig
	_ = c.w.Close()
	<-c.done
	stdoutMu.Unlock()
	return c.buf.String()
}

// passthrough records into buf and forwards to out. Forwarding failures are
// ignored so the capture itself never stalls.
type passthrough struct {
	buf *bytes.Buffer
	out io.Writer
}

func (p passthrough) Write(b []byte) (int, error) {
	p.buf.Write(b)
	_, _ = p.out.Write(b)
	return len(b), nil
}

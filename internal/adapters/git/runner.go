// Package git implements the VCS backend on top of the git command line client.
package git

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/creack/pty"
	"go.trai.ch/zerr"

	"github.com/scribibble/dpnd/internal/core/ports"
)

// PTYRunner implements ports.Runner. Commands run attached to a pty so git
// keeps emitting progress output, which is streamed line by line to the log.
type PTYRunner struct {
	logger ports.Logger
}

// NewRunner creates a runner that streams subprocess output to the logger.
func NewRunner(logger ports.Logger) *PTYRunner {
	return &PTYRunner{logger: logger}
}

// Run executes the command in dir and waits for it to complete.
func (r *PTYRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // backend-constructed git invocation
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")

	sink := &logWriter{logger: r.logger}

	ptmx, err := pty.Start(cmd)
	if err != nil {
		return zerr.Wrap(err, "failed to start command")
	}

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		defer func() { _ = ptmx.Close() }()
		defer func() { _ = sink.Close() }()
		// The pty merges stdout and stderr into one stream.
		_, _ = io.Copy(sink, ptmx)
	}()

	err = cmd.Wait()
	<-ioDone

	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode)
	}
	return nil
}

// Output executes the command in dir and returns its trimmed stdout.
// Used for read-only queries where the result matters, not the stream.
func (r *PTYRunner) Output(ctx context.Context, dir, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // backend-constructed git invocation
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")

	out, err := cmd.Output()
	if err != nil {
		return "", zerr.Wrap(err, "command failed")
	}
	return strings.TrimSpace(string(out)), nil
}

// logWriter buffers subprocess output and forwards complete lines to the
// logger. Partial lines flush on Close.
type logWriter struct {
	logger ports.Logger
	buf    []byte
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}
	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	msg := strings.TrimSuffix(string(line), "\r")
	if msg == "" {
		return
	}
	w.logger.Info(msg)
}

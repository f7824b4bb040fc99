// Package cli implements the pcollections command-line demo and benchmark
// tool.
//
// This package provides commands for building a PSequence or PHeap from
// stdin or generated input, applying a chain of operations, and printing
// the resulting tree/forest diagram, plus a bench command that times the
// core operations across a range of input sizes and renders the result as
// a plot. The CLI is built using cobra and supports verbose logging via
// the charmbracelet/log library, the same stack and shape
// matzehuels-stacktower's cmd/stacktower uses for its own command-line
// tool (the core packages' teacher, gaissmai/interval, is a pure library
// with no CLI of its own).
//
// # Commands
//
// The main commands are:
//   - seq: build and transform a PSequence
//   - heap: build and drain a PHeap
//   - bench: benchmark the core packages and plot the result
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context, mirroring how the core packages stay
// free of any ambient logging of their own.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with
// elapsed duration. Safe for sequential use by a single goroutine only.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() if none
// was attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

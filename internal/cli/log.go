package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger writing to w at the given level.
// Timestamps use "HH:MM:SS.ms" (e.g. "14:32:01.45") so frame timing is
// readable in verbose output.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start of an operation and logs its completion with
// the elapsed time. It is meant for a single goroutine.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress starts a progress tracker at the current time.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time rounded to the millisecond,
// e.g. "Laid out 3 charts (4ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is the type of context keys defined in this package.
type ctxKey int

// loggerKey stores the command logger in a context.
const loggerKey ctxKey = 0

// withLogger returns a copy of ctx carrying l, retrievable with
// loggerFromContext.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached by withLogger, or
// log.Default() when there is none, so commands run from tests without the
// root pre-run still have a logger.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

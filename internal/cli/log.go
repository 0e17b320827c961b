// Package cli wires the toplangs commands together.
//
// Every command reads a language stats file (JSON, TOML or YAML), merges the
// config file with its flags into options.RenderOptions and hands both to
// pkg/pipeline. The commands differ only in what they do with the result:
//
//	render   write the card as SVG, PNG or PDF
//	serve    answer /api/top-langs requests
//	preview  draw the bars in the terminal
//	stats    print the selected languages
//	themes   list the color themes
//
// Status output goes through a charmbracelet/log logger that travels in the
// command context; --verbose lowers its level to debug.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns a logger on w that drops records below level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})
}

// progress reports how long a command step took once it finishes.
type progress struct {
	logger  *log.Logger
	started time.Time
}

func newProgress(l *log.Logger) progress {
	return progress{logger: l, started: time.Now()}
}

// done logs "msg (elapsed)", e.g. "Wrote card.svg (4ms)".
func (p progress) done(msg string) {
	elapsed := time.Since(p.started).Round(time.Millisecond)
	p.logger.Infof("%s (%s)", msg, elapsed)
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext falls back to log.Default when ctx carries no logger.
func loggerFromContext(ctx context.Context) *log.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
			return l
		}
	}
	return log.Default()
}

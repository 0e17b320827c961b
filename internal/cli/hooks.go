package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/toplangs/pkg/observability"
)

// logHooks reports pipeline events as debug log lines.
type logHooks struct {
	logger *log.Logger
}

var _ observability.PipelineHooks = logHooks{}

func (h logHooks) OnRender(_ context.Context, layout string, languages int, d time.Duration) {
	h.logger.Debug("Rendered card", "layout", layout, "languages", languages, "took", d.Round(time.Microsecond))
}

func (h logHooks) OnConvertStart(_ context.Context, format string) {
	h.logger.Debug("Converting", "format", format)
}

func (h logHooks) OnConvertComplete(_ context.Context, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("Conversion failed", "format", format, "err", err)
		return
	}
	h.logger.Debug("Converted", "format", format, "bytes", size, "took", d.Round(time.Millisecond))
}

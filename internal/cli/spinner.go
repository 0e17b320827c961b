package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-runewidth"
)

const spinnerInterval = 80 * time.Millisecond

var spinnerFrames = [...]string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// spinner animates a label on w while rsvg-convert runs. It ends on stop or
// when the context it was started with is cancelled.
type spinner struct {
	w      io.Writer
	label  string
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

func startSpinner(ctx context.Context, w io.Writer, label string) *spinner {
	ctx, cancel := context.WithCancel(ctx)
	s := &spinner{w: w, label: label, cancel: cancel, done: make(chan struct{})}
	go s.run(ctx)
	return s
}

func (s *spinner) run(ctx context.Context) {
	defer close(s.done)
	tick := time.NewTicker(spinnerInterval)
	defer tick.Stop()

	for frame := 0; ; frame++ {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			glyph := spinnerFrames[frame%len(spinnerFrames)]
			fmt.Fprintf(s.w, "\r%s %s", styleSpinner.Render(glyph), StyleDim.Render(s.label))
		}
	}
}

// stop halts the animation and blanks its line. Only the first call has an
// effect.
func (s *spinner) stop() {
	s.once.Do(func() {
		s.cancel()
		<-s.done
		blank := strings.Repeat(" ", runewidth.StringWidth(s.label)+2)
		fmt.Fprintf(s.w, "\r%s\r", blank)
	})
}

// fail stops the spinner and leaves msg as a failure line.
func (s *spinner) fail(msg string) {
	s.stop()
	report(s.w, statusFail, "%s", msg)
}

package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Terminal palette (ANSI 256).
var (
	colorAccent = lipgloss.Color("36")
	colorOK     = lipgloss.Color("35")
	colorWarn   = lipgloss.Color("220")
	colorFail   = lipgloss.Color("167")
	colorBright = lipgloss.Color("255")
	colorLabel  = lipgloss.Color("245")
	colorMuted  = lipgloss.Color("240")
	colorTrack  = lipgloss.Color("238")
)

var (
	// StyleTitle is used for headings such as the preview card title.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	// StyleDim is used for help text and secondary columns.
	StyleDim = lipgloss.NewStyle().Foreground(colorMuted)
	// StyleNumber is used for percentages and sizes.
	StyleNumber = lipgloss.NewStyle().Foreground(colorAccent)

	styleValue   = lipgloss.NewStyle().Foreground(colorBright)
	styleLabel   = lipgloss.NewStyle().Foreground(colorLabel).Width(14)
	styleSpinner = lipgloss.NewStyle().Foreground(colorAccent)
	styleTrack   = lipgloss.NewStyle().Foreground(colorTrack)
)

type statusKind int

const (
	statusOK statusKind = iota
	statusWarn
	statusFail
	statusNote
)

var statusMarks = [...]struct {
	mark  string
	style lipgloss.Style
}{
	statusOK:   {"✓", lipgloss.NewStyle().Foreground(colorOK)},
	statusWarn: {"!", lipgloss.NewStyle().Foreground(colorWarn)},
	statusFail: {"✗", lipgloss.NewStyle().Foreground(colorFail)},
	statusNote: {"›", lipgloss.NewStyle().Foreground(colorLabel)},
}

// report writes one marked line, e.g. "✓ Generated compact card".
func report(w io.Writer, kind statusKind, format string, args ...any) {
	m := statusMarks[kind]
	msg := fmt.Sprintf(format, args...)
	if kind == statusWarn {
		msg = m.style.Render(msg)
	}
	fmt.Fprintln(w, m.style.Render(m.mark)+" "+msg)
}

// pathLine writes an indented "→ path" line below a report line.
func pathLine(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+StyleDim.Render("→")+" "+styleValue.Render(path))
}

// field writes a key column followed by its value.
func field(w io.Writer, key, value string) {
	fmt.Fprintln(w, styleLabel.Render(key)+" "+styleValue.Render(value))
}

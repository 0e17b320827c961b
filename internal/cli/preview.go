package cli

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/matzehuels/toplangs/pkg/langs"
	"github.com/matzehuels/toplangs/pkg/options"
	"github.com/matzehuels/toplangs/pkg/pipeline"
	"github.com/matzehuels/toplangs/pkg/render/card/layout"
	"github.com/matzehuels/toplangs/pkg/themes"
)

const (
	defaultTermWidth = 80
	maxBarCells      = 60
	barGlyph         = "█"
	trackGlyph       = "░"
	dotGlyph         = "●"
)

// previewCommand creates the preview command that draws a card in the terminal.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		flags       cardFlags
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "preview <stats-file|->",
		Short: "Preview a card's bars in the terminal",
		Long: `Preview a card's bars in the terminal.

With --interactive, tab switches between the normal and compact layouts,
+ and - change the number of languages and q quits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, _, err := c.baseOptions()
			if err != nil {
				return err
			}
			ro := flags.apply(cmd, base)
			if err := ro.Validate(); err != nil {
				return err
			}
			set, err := readStats(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			if interactive {
				m := newPreviewModel(set, ro, flags.layoutOptions())
				_, err := tea.NewProgram(m, tea.WithContext(cmd.Context())).Run()
				return err
			}

			result := pipeline.RunContext(cmd.Context(), set, ro, themes.Resolver{}, flags.layoutOptions()...)
			fmt.Fprint(cmd.OutOrStdout(), renderPreview(result, ro.Title(), terminalWidth()))
			return nil
		},
	}

	addCardFlags(cmd, &flags)
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "interactive preview")
	return cmd
}

// terminalWidth returns the width of stdout, or 80 when it is not a terminal.
func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultTermWidth
	}
	return w
}

// renderPreview draws the fragment of result as terminal text.
func renderPreview(result pipeline.Result, title string, width int) string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render(title) + "\n\n")

	if len(result.Fragment.Bars) == 0 {
		b.WriteString(StyleDim.Render("no languages to show") + "\n")
		return b.String()
	}

	if result.Fragment.Mode == layout.ModeCompact {
		writeCompactPreview(&b, result.Fragment, width)
	} else {
		writeNormalPreview(&b, result.Fragment, width)
	}
	return b.String()
}

func writeNormalPreview(b *strings.Builder, f layout.Fragment, width int) {
	labels := make([]string, len(f.Bars))
	labelWidth := 0
	for i, bar := range f.Bars {
		labels[i] = layout.Label(bar)
		labelWidth = max(labelWidth, runewidth.StringWidth(labels[i]))
	}
	cells := barCells(width - labelWidth - 2)

	for i, bar := range f.Bars {
		filled := cellsFor(bar.Width, 100, cells)
		b.WriteString(runewidth.FillRight(labels[i], labelWidth) + "  ")
		b.WriteString(colorStyle(bar.Color).Render(strings.Repeat(barGlyph, filled)))
		b.WriteString(styleTrack.Render(strings.Repeat(trackGlyph, cells-filled)))
		b.WriteString("\n")
	}
}

func writeCompactPreview(b *strings.Builder, f layout.Fragment, width int) {
	cells := barCells(width)
	track := f.Width - 50

	used := 0
	for _, bar := range f.Bars {
		n := min(cellsFor(bar.Width, track, cells), cells-used)
		b.WriteString(colorStyle(bar.Color).Render(strings.Repeat(barGlyph, n)))
		used += n
	}
	b.WriteString(styleTrack.Render(strings.Repeat(trackGlyph, max(0, cells-used))))
	b.WriteString("\n\n")

	colWidth := 0
	labels := make([]string, len(f.Bars))
	for i, bar := range f.Bars {
		labels[i] = fmt.Sprintf("%s %.2f%%", bar.Name, bar.Percent)
		colWidth = max(colWidth, runewidth.StringWidth(labels[i]))
	}
	for i, bar := range f.Bars {
		dot := colorStyle(bar.Color).Render(dotGlyph)
		if x, _ := layout.LabelPosition(i); x == 0 {
			b.WriteString(dot + " " + runewidth.FillRight(labels[i], colWidth) + "   ")
			if i == len(f.Bars)-1 {
				b.WriteString("\n")
			}
			continue
		}
		b.WriteString(dot + " " + labels[i] + "\n")
	}
}

func barCells(available int) int {
	return max(10, min(available, maxBarCells))
}

func cellsFor(value, whole float64, cells int) int {
	if whole <= 0 {
		return 0
	}
	n := int(math.Round(value / whole * float64(cells)))
	return max(0, min(n, cells))
}

func colorStyle(hex string) lipgloss.Style {
	rgb, ok := themes.ToRGB(hex)
	if !ok {
		rgb, _ = themes.ToRGB(layout.DefaultColor)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(rgb))
}

// =============================================================================
// Interactive preview
// =============================================================================

// previewKeys are the key bindings of the interactive preview.
type previewKeys struct {
	Layout key.Binding
	More   key.Binding
	Fewer  key.Binding
	Quit   key.Binding
}

func (k previewKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Layout, k.More, k.Fewer, k.Quit}
}

func (k previewKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultPreviewKeys() previewKeys {
	return previewKeys{
		Layout: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "layout")),
		More:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "more")),
		Fewer:  key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "fewer")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// previewModel is the bubbletea model for the interactive preview.
type previewModel struct {
	set        langs.Set
	opts       options.RenderOptions
	layoutOpts []layout.Option
	width      int
	keys       previewKeys
	help       help.Model
}

func newPreviewModel(set langs.Set, opts options.RenderOptions, layoutOpts []layout.Option) previewModel {
	return previewModel{
		set:        set,
		opts:       opts,
		layoutOpts: layoutOpts,
		width:      defaultTermWidth,
		keys:       defaultPreviewKeys(),
		help:       help.New(),
	}
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Layout):
			if m.opts.Mode() == layout.ModeCompact {
				m.opts.Layout = string(layout.ModeNormal)
			} else {
				m.opts.Layout = string(layout.ModeCompact)
			}
		case key.Matches(msg, m.keys.More):
			m.opts.LanguageCount = m.opts.Count() + 1
		case key.Matches(msg, m.keys.Fewer):
			m.opts.LanguageCount = max(1, m.opts.Count()-1)
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m previewModel) View() string {
	result := pipeline.Run(m.set, m.opts, themes.Resolver{}, m.layoutOpts...)
	status := StyleDim.Render(fmt.Sprintf("%s layout · %d languages", m.opts.Mode(), m.opts.Count()))
	return renderPreview(result, m.opts.Title(), m.width) + "\n" + status + "\n" + m.help.View(m.keys) + "\n"
}

package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/toplangs/pkg/langs"
	"github.com/matzehuels/toplangs/pkg/options"
	"github.com/matzehuels/toplangs/pkg/pipeline"
	"github.com/matzehuels/toplangs/pkg/render/card/layout"
)

func previewSet() langs.Set {
	return langs.Set{
		"Go":    {Name: "Go", Size: 75, Color: "#00ADD8", RecentSize: 80},
		"Shell": {Name: "Shell", Size: 25},
	}
}

func TestRenderPreviewNormal(t *testing.T) {
	result := pipeline.Run(previewSet(), options.Defaults(), nil)
	out := renderPreview(result, "Langs", 80)

	for _, want := range []string{"Langs", "Go 75% + 5%", "Shell 25%", barGlyph, trackGlyph} {
		if !strings.Contains(out, want) {
			t.Errorf("preview missing %q:\n%s", want, out)
		}
	}
}

func TestRenderPreviewCompact(t *testing.T) {
	opts := options.Defaults()
	opts.Layout = "compact"
	out := renderPreview(pipeline.Run(previewSet(), opts, nil), "Langs", 80)

	for _, want := range []string{"Go 75.00%", "Shell 25.00%", dotGlyph} {
		if !strings.Contains(out, want) {
			t.Errorf("preview missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "+ 5%") {
		t.Error("compact preview shows recent delta")
	}
}

func TestRenderPreviewEmpty(t *testing.T) {
	out := renderPreview(pipeline.Run(langs.Set{}, options.Defaults(), nil), "Langs", 80)
	if !strings.Contains(out, "no languages to show") {
		t.Errorf("empty preview = %q", out)
	}
}

func TestPreviewCommand(t *testing.T) {
	out, err := execute(t, `{"Go": 3, "C": 1}`, "preview", "-")
	if err != nil {
		t.Fatalf("preview error = %v", err)
	}
	if !strings.Contains(out, "Go 75%") || !strings.Contains(out, "C 25%") {
		t.Errorf("preview output:\n%s", out)
	}
}

func TestCellsFor(t *testing.T) {
	tests := []struct {
		value, whole float64
		cells        int
		want         int
	}{
		{50, 100, 40, 20},
		{100, 100, 40, 40},
		{2, 100, 40, 1},
		{0, 100, 40, 0},
		{150, 100, 40, 40},
		{5, 0, 40, 0},
	}

	for _, tt := range tests {
		if got := cellsFor(tt.value, tt.whole, tt.cells); got != tt.want {
			t.Errorf("cellsFor(%v, %v, %d) = %d, want %d", tt.value, tt.whole, tt.cells, got, tt.want)
		}
	}
}

func TestBarCells(t *testing.T) {
	tests := map[int]int{-5: 10, 3: 10, 30: 30, 200: maxBarCells}
	for in, want := range tests {
		if got := barCells(in); got != want {
			t.Errorf("barCells(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestPreviewModel(t *testing.T) {
	m := newPreviewModel(previewSet(), options.Defaults(), nil)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(previewModel)
	if m.opts.Mode() != layout.ModeCompact {
		t.Errorf("tab: mode = %q, want compact", m.opts.Mode())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}})
	m = next.(previewModel)
	if m.opts.Count() != 6 {
		t.Errorf("+: count = %d, want 6", m.opts.Count())
	}

	for range 10 {
		next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'-'}})
		m = next.(previewModel)
	}
	if m.opts.Count() != 1 {
		t.Errorf("-: count = %d, want floor 1", m.opts.Count())
	}

	next, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(previewModel)
	if m.width != 120 {
		t.Errorf("width = %d, want 120", m.width)
	}

	view := m.View()
	if !strings.Contains(view, "compact layout") || !strings.Contains(view, "1 languages") || !strings.Contains(view, "quit") {
		t.Errorf("view help line missing:\n%s", view)
	}

	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}); cmd == nil {
		t.Error("q did not quit")
	}
}

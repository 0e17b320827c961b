package layout

import (
	"math"
	"strings"
	"testing"

	"github.com/matzehuels/toplangs/pkg/langs"
)

func TestNormal(t *testing.T) {
	stats := []langs.Stat{
		{Name: "A", Size: 80, Color: "#fff"},
		{Name: "B", Size: 20, Color: "#000"},
	}
	f := Normal(stats, 100, 300)

	if f.Mode != ModeNormal {
		t.Errorf("Mode = %q, want normal", f.Mode)
	}
	if f.Width != 300 {
		t.Errorf("Width = %v, want 300", f.Width)
	}
	if want := 45.0 + 3*40; f.Height != want {
		t.Errorf("Height = %v, want %v", f.Height, want)
	}
	if len(f.Bars) != 2 {
		t.Fatalf("len(Bars) = %d, want 2", len(f.Bars))
	}

	a, b := f.Bars[0], f.Bars[1]
	if a.Percent != 80 || b.Percent != 20 {
		t.Errorf("percents = %v, %v, want 80, 20", a.Percent, b.Percent)
	}
	if a.Width+b.Width != 100 {
		t.Errorf("bar widths sum to %v%%, want 100%%", a.Width+b.Width)
	}
	if a.Y != 0 || b.Y != 40 {
		t.Errorf("rows at y = %v, %v, want 0, 40", a.Y, b.Y)
	}

	body := string(f.Body)
	for _, want := range []string{
		`<text data-testid="lang-name" x="2" y="15" class="lang-name">A 80%</text>`,
		`<svg width="240">`,
		`width="240" height="8" fill="#ddd"`,
		`fill="#fff" rx="5" ry="5" x="0" y="25" data-testid="lang-progress" width="80%"`,
		`fill="#000" rx="5" ry="5" x="0" y="25" data-testid="lang-progress" width="20%"`,
		`<g transform="translate(0, 40)">`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q\n%s", want, body)
		}
	}
}

func TestNormalOverlayDrawnFirst(t *testing.T) {
	f := Normal([]langs.Stat{{Name: "Go", Size: 1, Color: "#00ADD8"}}, 1, 300)
	body := string(f.Body)
	overlay := strings.Index(body, recentColor)
	primary := strings.Index(body, `data-testid="lang-progress"`)
	if overlay < 0 || primary < 0 || overlay > primary {
		t.Errorf("overlay at %d, primary at %d; overlay must come first", overlay, primary)
	}
}

func TestNormalVisualFloor(t *testing.T) {
	stats := []langs.Stat{
		{Name: "Big", Size: 999},
		{Name: "Tiny", Size: 1},
	}
	f := Normal(stats, 1000, 300)
	tiny := f.Bars[1]
	if tiny.Percent != 0.1 {
		t.Errorf("label percent = %v, want unclamped 0.1", tiny.Percent)
	}
	if tiny.Width != 2 {
		t.Errorf("bar width = %v, want floor 2", tiny.Width)
	}
	if !strings.Contains(string(f.Body), `width="calc(2% - 1px)"`) {
		t.Errorf("missing floored overlay width:\n%s", f.Body)
	}
}

func TestNormalDefaultColor(t *testing.T) {
	f := Normal([]langs.Stat{{Name: "Go", Size: 1}}, 1, 300)
	if f.Bars[0].Color != DefaultColor {
		t.Errorf("Color = %q, want %q", f.Bars[0].Color, DefaultColor)
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		name string
		bar  Bar
		want string
	}{
		{"plain", Bar{Name: "Go", Percent: 80}, "Go 80%"},
		{"decimals", Bar{Name: "Go", Percent: 33.33}, "Go 33.33%"},
		{"recent larger", Bar{Name: "Go", Percent: 80, Recent: 90}, "Go 80% + 10%"},
		{"recent delta rounded", Bar{Name: "Go", Percent: 10.1, Recent: 10.3}, "Go 10.1% + 0.2%"},
		{"recent smaller", Bar{Name: "Go", Percent: 80, Recent: 40}, "Go 80%"},
		{"recent equal", Bar{Name: "Go", Percent: 50, Recent: 50}, "Go 50%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Label(tt.bar); got != tt.want {
				t.Errorf("Label() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalRecent(t *testing.T) {
	f := Normal([]langs.Stat{
		{Name: "Go", Size: 80, RecentSize: 90},
		{Name: "C", Size: 20},
	}, 100, 300)

	if got := f.Bars[0].Recent; got != 90 {
		t.Errorf("Recent = %v, want 90", got)
	}
	if !strings.Contains(string(f.Body), "Go 80% + 10%") {
		t.Errorf("body missing recent delta:\n%s", f.Body)
	}
	if got := f.Bars[1].Recent; got != 0 {
		t.Errorf("absent recent = %v, want 0", got)
	}
}

func TestNormalEmpty(t *testing.T) {
	f := Normal(nil, 0, 300)
	if len(f.Bars) != 0 || len(f.Body) != 0 {
		t.Errorf("empty layout produced %d bars, %d bytes", len(f.Bars), len(f.Body))
	}
	if f.Height != 85 {
		t.Errorf("Height = %v, want 85", f.Height)
	}
}

func TestNormalPercentagesSumToHundred(t *testing.T) {
	stats := []langs.Stat{
		{Name: "A", Size: 1}, {Name: "B", Size: 1}, {Name: "C", Size: 1},
		{Name: "D", Size: 7}, {Name: "E", Size: 13},
	}
	f := Normal(stats, langs.Total(stats), 300)

	var sum float64
	for _, b := range f.Bars {
		sum += b.Percent
	}
	if tol := 0.01 * float64(len(stats)); math.Abs(sum-100) > tol {
		t.Errorf("sum of percents = %v, want 100 ± %v", sum, tol)
	}
}

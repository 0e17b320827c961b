package card

import (
	"strings"
	"testing"

	"github.com/matzehuels/toplangs/pkg/langs"
	"github.com/matzehuels/toplangs/pkg/render/card/layout"
)

func sampleFragment() layout.Fragment {
	return layout.Normal([]langs.Stat{
		{Name: "Go", Size: 80, Color: "#00ADD8"},
		{Name: "Shell", Size: 20},
	}, 100, 300)
}

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	if cfg.Title != DefaultTitle {
		t.Errorf("Title = %q, want %q", cfg.Title, DefaultTitle)
	}
	if cfg.Animations {
		t.Error("Animations enabled by default")
	}
	if cfg.Colors.Border != "#e4e2e2" {
		t.Errorf("Border = %q, want #e4e2e2", cfg.Colors.Border)
	}

	custom := NewConfig(WithTitle("Langs"), WithHideBorder(true))
	if custom.Title != "Langs" || !custom.HideBorder {
		t.Errorf("options not applied: %+v", custom)
	}
	if cfg.Title != DefaultTitle {
		t.Error("building a second config changed the first")
	}
}

func TestRender(t *testing.T) {
	svg := string(Render(NewConfig(WithCSS(LanguageCSS("#434d58"))), sampleFragment()))

	for _, want := range []string{
		`<svg width="300" height="165" viewBox="0 0 300 165"`,
		`data-testid="header">Most Used Languages</text>`,
		`<g data-testid="main-card-body" transform="translate(0, 55)">`,
		`<svg data-testid="lang-items" x="25">`,
		`rx="4.5"`,
		`stroke="#e4e2e2"`,
		`stroke-opacity="1"`,
		`.lang-name { font: 400 11px 'Segoe UI', Ubuntu, Sans-Serif; fill: #434d58 }`,
		`animation-duration: 0s`,
		"Go 80%",
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("svg missing %q\n%s", want, svg)
		}
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("svg not closed")
	}
}

func TestRenderHideTitle(t *testing.T) {
	svg := string(Render(NewConfig(WithHideTitle(true)), sampleFragment()))

	if strings.Contains(svg, "card-title") {
		t.Error("hidden title still rendered")
	}
	if !strings.Contains(svg, `height="135"`) {
		t.Errorf("height not reduced by 30:\n%s", svg)
	}
	if !strings.Contains(svg, `transform="translate(0, 25)"`) {
		t.Errorf("body not shifted up:\n%s", svg)
	}
}

func TestRenderHideBorder(t *testing.T) {
	svg := string(Render(NewConfig(WithHideBorder(true)), sampleFragment()))
	if !strings.Contains(svg, `stroke-opacity="0"`) {
		t.Errorf("border still visible:\n%s", svg)
	}
}

func TestRenderColors(t *testing.T) {
	colors := Colors{Title: "#fff", Text: "#9f9f9f", Background: "#151515"}
	svg := string(Render(NewConfig(WithColors(colors)), sampleFragment()))

	if !strings.Contains(svg, `.header { font: 600 18px 'Segoe UI', Ubuntu, Sans-Serif; fill: #fff; }`) {
		t.Errorf("title color not applied:\n%s", svg)
	}
	if !strings.Contains(svg, `fill="#151515"`) {
		t.Error("background not applied")
	}
	if !strings.Contains(svg, `stroke="#e4e2e2"`) {
		t.Error("empty border color did not fall back to default")
	}
}

func TestRenderAnimations(t *testing.T) {
	svg := string(Render(NewConfig(WithAnimations(true)), sampleFragment()))
	if strings.Contains(svg, "animation-duration") {
		t.Error("animations disabled although enabled in config")
	}
}

func TestRenderEscapesTitle(t *testing.T) {
	svg := string(Render(NewConfig(WithTitle(`<b>"Langs"</b>`)), sampleFragment()))
	if strings.Contains(svg, "<b>") {
		t.Errorf("title not escaped:\n%s", svg)
	}
	if !strings.Contains(svg, "&lt;b&gt;") {
		t.Error("escaped title missing")
	}
}

func TestRenderCompactWidth(t *testing.T) {
	frag := layout.Compact([]langs.Stat{{Name: "Go", Size: 1}}, 1, 300)
	svg := string(Render(NewConfig(), frag))
	if !strings.Contains(svg, `<svg width="350"`) {
		t.Errorf("compact card width not extended:\n%s", svg)
	}
}

func TestRenderEmpty(t *testing.T) {
	svg := string(Render(NewConfig(), layout.Normal(nil, 0, 300)))
	if strings.Contains(svg, "lang-progress") {
		t.Error("empty card drew bars")
	}
	if !strings.Contains(svg, "lang-items") {
		t.Error("empty card missing body container")
	}
}

func TestRenderError(t *testing.T) {
	svg := string(RenderError("no stats <here>", "NOT_FOUND"))
	if !strings.Contains(svg, "Something went wrong!") {
		t.Error("missing heading")
	}
	if !strings.Contains(svg, "no stats &lt;here&gt;") || !strings.Contains(svg, "NOT_FOUND") {
		t.Errorf("message not rendered:\n%s", svg)
	}
}

package card

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/matzehuels/toplangs/pkg/fonts"
	"github.com/matzehuels/toplangs/pkg/render/card/layout"
)

const (
	// DefaultTitle is the heading of a top-languages card.
	DefaultTitle = "Most Used Languages"

	paddingX      = 25.0
	paddingY      = 35.0
	titleHeight   = 30.0
	borderRadius  = 4.5
	defaultBorder = "#e4e2e2"
)

const disableAnimationsCSS = `* { animation-duration: 0s !important; animation-delay: 0s !important; }`

// Colors are the resolved colors of a card.
type Colors struct {
	Title      string
	Text       string
	Background string
	Border     string
}

// ColorOptions carries user color overrides and a theme name.
type ColorOptions struct {
	Title      string
	Text       string
	Background string
	Border     string
	Theme      string
}

// ColorResolver turns user overrides into concrete card colors.
type ColorResolver interface {
	Resolve(opts ColorOptions) Colors
}

// Config describes the chrome of a card. Build it with [NewConfig]; it is
// a value and is never mutated by [Render].
type Config struct {
	Title      string
	HideTitle  bool
	HideBorder bool
	Animations bool
	Colors     Colors
	CSS        string
}

// ConfigOption configures a [Config].
type ConfigOption func(*Config)

func WithTitle(title string) ConfigOption   { return func(c *Config) { c.Title = title } }
func WithHideTitle(hide bool) ConfigOption  { return func(c *Config) { c.HideTitle = hide } }
func WithHideBorder(hide bool) ConfigOption { return func(c *Config) { c.HideBorder = hide } }
func WithColors(colors Colors) ConfigOption { return func(c *Config) { c.Colors = colors } }
func WithCSS(css string) ConfigOption       { return func(c *Config) { c.CSS = css } }
func WithAnimations(on bool) ConfigOption   { return func(c *Config) { c.Animations = on } }

// NewConfig returns a Config with the default title and light colors.
func NewConfig(opts ...ConfigOption) Config {
	c := Config{
		Title: DefaultTitle,
		Colors: Colors{
			Title:      "#2f80ed",
			Text:       "#434d58",
			Background: "#fffefe",
			Border:     defaultBorder,
		},
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// LanguageCSS returns the `.lang-name` class used by layout labels.
func LanguageCSS(textColor string) string {
	return fmt.Sprintf(".lang-name { font: %s; fill: %s }", fonts.Shorthand(fonts.WeightRegular, 11), textColor)
}

// Render wraps body in the card document described by cfg.
func Render(cfg Config, body layout.Fragment) []byte {
	width, height := body.Width, body.Height
	if cfg.HideTitle {
		height -= titleHeight
	}

	border := cfg.Colors.Border
	if border == "" {
		border = defaultBorder
	}
	borderOpacity := 1
	if cfg.HideBorder {
		borderOpacity = 0
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg width="%s" height="%s" viewBox="0 0 %s %s" fill="none" xmlns="http://www.w3.org/2000/svg">`+"\n",
		num(width), num(height), num(width), num(height))

	buf.WriteString("  <style>\n")
	fmt.Fprintf(&buf, "    .header { font: %s; fill: %s; }\n", fonts.Shorthand(fonts.WeightSemibold, 18), escape(cfg.Colors.Title))
	if cfg.CSS != "" {
		fmt.Fprintf(&buf, "    %s\n", cfg.CSS)
	}
	if !cfg.Animations {
		fmt.Fprintf(&buf, "    %s\n", disableAnimationsCSS)
	}
	buf.WriteString("  </style>\n")

	fmt.Fprintf(&buf, `  <rect data-testid="card-bg" x="0.5" y="0.5" rx="%s" height="99%%" stroke="%s" width="%s" fill="%s" stroke-opacity="%d"/>`+"\n",
		num(borderRadius), escape(border), num(width-1), escape(cfg.Colors.Background), borderOpacity)

	offset := paddingY + 20
	if cfg.HideTitle {
		offset = paddingX
	} else {
		fmt.Fprintf(&buf, `  <g data-testid="card-title" transform="translate(%s, %s)">`+"\n", num(paddingX), num(paddingY))
		fmt.Fprintf(&buf, `    <text x="0" y="0" class="header" data-testid="header">%s</text>`+"\n", escape(cfg.Title))
		buf.WriteString("  </g>\n")
	}

	fmt.Fprintf(&buf, `  <g data-testid="main-card-body" transform="translate(0, %s)">`+"\n", num(offset))
	fmt.Fprintf(&buf, `    <svg data-testid="lang-items" x="%s">`+"\n", num(paddingX))
	buf.Write(body.Body)
	buf.WriteString("    </svg>\n")
	buf.WriteString("  </g>\n")
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// RenderError renders a small card reporting a failure. The HTTP endpoint
// serves it instead of an error status so README images still load.
func RenderError(message, detail string) []byte {
	var buf bytes.Buffer
	buf.WriteString(`<svg width="495" height="120" viewBox="0 0 495 120" fill="none" xmlns="http://www.w3.org/2000/svg">` + "\n")
	buf.WriteString("  <style>\n")
	fmt.Fprintf(&buf, "    .text { font: %s; fill: #2F80ED }\n", fonts.Shorthand(fonts.WeightSemibold, 16))
	fmt.Fprintf(&buf, "    .small { font: %s; fill: #252525 }\n", fonts.Shorthand(fonts.WeightSemibold, 12))
	buf.WriteString("    .gray { fill: #858585 }\n")
	buf.WriteString("  </style>\n")
	buf.WriteString(`  <rect x="0.5" y="0.5" width="494" height="99%" rx="4.5" fill="#FFFEFE" stroke="#E4E2E2"/>` + "\n")
	buf.WriteString(`  <text x="25" y="45" class="text">Something went wrong!</text>` + "\n")
	fmt.Fprintf(&buf, `  <text data-testid="message" x="25" y="55" class="text small"><tspan x="25" dy="18">%s</tspan><tspan x="25" dy="18" class="gray">%s</tspan></text>`+"\n",
		escape(message), escape(detail))
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func escape(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

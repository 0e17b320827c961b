// Package options defines the render options of a top-languages card and
// parses them from query strings.
//
// Parsing is lenient: malformed values fall back to defaults instead of
// failing, so a README image never breaks because of a typo. Strict
// surfaces such as the CLI call [RenderOptions.Validate] afterwards.
package options

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/matzehuels/toplangs/pkg/errors"
	"github.com/matzehuels/toplangs/pkg/langs"
	"github.com/matzehuels/toplangs/pkg/render/card"
	"github.com/matzehuels/toplangs/pkg/render/card/layout"
	"github.com/matzehuels/toplangs/pkg/themes"
)

const (
	// DefaultCardWidth is the card width when none, or an invalid one, is given.
	DefaultCardWidth = 300.0

	// DefaultLanguageCount caps the number of languages shown.
	DefaultLanguageCount = langs.DefaultCount

	// DefaultLayout is the layout used unless "compact" is requested.
	DefaultLayout = string(layout.ModeNormal)

	// DefaultCacheSeconds is the Cache-Control max-age of served cards.
	DefaultCacheSeconds = 14400

	minCacheSeconds = 1800
	maxCacheSeconds = 86400
)

// RenderOptions configures a top-languages card.
type RenderOptions struct {
	Hide          []string `json:"hide,omitempty" toml:"hide"`
	HideTitle     bool     `json:"hide_title,omitempty" toml:"hide_title"`
	HideBorder    bool     `json:"hide_border,omitempty" toml:"hide_border"`
	CardWidth     float64  `json:"card_width,omitempty" toml:"card_width"`
	LanguageCount int      `json:"language_count,omitempty" toml:"language_count"`
	Layout        string   `json:"layout,omitempty" toml:"layout"`
	CustomTitle   string   `json:"custom_title,omitempty" toml:"custom_title"`

	// Colors, consumed by the card chrome only.
	TitleColor  string `json:"title_color,omitempty" toml:"title_color"`
	TextColor   string `json:"text_color,omitempty" toml:"text_color"`
	BgColor     string `json:"bg_color,omitempty" toml:"bg_color"`
	BorderColor string `json:"border_color,omitempty" toml:"border_color"`
	Theme       string `json:"theme,omitempty" toml:"theme"`

	CacheSeconds int `json:"cache_seconds,omitempty" toml:"cache_seconds"`
}

// Defaults returns options with every documented default applied.
func Defaults() RenderOptions {
	return RenderOptions{
		CardWidth:     DefaultCardWidth,
		LanguageCount: DefaultLanguageCount,
		Layout:        DefaultLayout,
		Theme:         themes.Default,
		CacheSeconds:  DefaultCacheSeconds,
	}
}

// FromQuery parses the query parameters of the top-languages endpoint:
//
//	hide=javascript,html&card_width=400&layout=compact&theme=dark
//
// Unknown parameters are ignored and malformed values keep their default.
func FromQuery(q url.Values) RenderOptions {
	o := Defaults()
	o.Hide = ParseList(q.Get("hide"))
	o.HideTitle = ParseBool(q.Get("hide_title"))
	o.HideBorder = ParseBool(q.Get("hide_border"))
	o.CardWidth = ParseWidth(q.Get("card_width"))
	o.LanguageCount = ParseCount(q.Get("language_count"))
	o.Layout = string(layout.ParseMode(q.Get("layout")))
	o.CustomTitle = q.Get("custom_title")
	o.TitleColor = q.Get("title_color")
	o.TextColor = q.Get("text_color")
	o.BgColor = q.Get("bg_color")
	o.BorderColor = q.Get("border_color")
	if t := q.Get("theme"); t != "" {
		o.Theme = t
	}
	o.CacheSeconds = ParseCacheSeconds(q.Get("cache_seconds"))
	return o
}

// ParseList splits a comma separated list, dropping empty entries.
func ParseList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ParseBool reports whether s is "true". Anything else is false.
func ParseBool(s string) bool {
	return s == "true"
}

// ParseWidth parses a card width. Non-numeric, non-finite and non-positive
// values fall back to [DefaultCardWidth].
func ParseWidth(s string) float64 {
	w, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return NormalizeWidth(w, err == nil)
}

// NormalizeWidth applies the width fallback to an already parsed value.
func NormalizeWidth(w float64, ok bool) float64 {
	if !ok || math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
		return DefaultCardWidth
	}
	return w
}

// ParseCount parses language_count; anything but a positive integer gives
// [DefaultLanguageCount].
func ParseCount(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return DefaultLanguageCount
	}
	return n
}

// ParseCacheSeconds parses cache_seconds and clamps it to [1800, 86400].
func ParseCacheSeconds(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return DefaultCacheSeconds
	}
	return max(minCacheSeconds, min(n, maxCacheSeconds))
}

// Merge overlays the non-zero fields of override onto base.
func Merge(base, override RenderOptions) RenderOptions {
	out := base
	if len(override.Hide) > 0 {
		out.Hide = append(append([]string(nil), base.Hide...), override.Hide...)
	}
	out.HideTitle = base.HideTitle || override.HideTitle
	out.HideBorder = base.HideBorder || override.HideBorder
	if override.CardWidth != 0 {
		out.CardWidth = override.CardWidth
	}
	if override.LanguageCount != 0 {
		out.LanguageCount = override.LanguageCount
	}
	setString(&out.Layout, override.Layout)
	setString(&out.CustomTitle, override.CustomTitle)
	setString(&out.TitleColor, override.TitleColor)
	setString(&out.TextColor, override.TextColor)
	setString(&out.BgColor, override.BgColor)
	setString(&out.BorderColor, override.BorderColor)
	setString(&out.Theme, override.Theme)
	if override.CacheSeconds != 0 {
		out.CacheSeconds = override.CacheSeconds
	}
	return out
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// Validate reports option values a strict caller should reject. Rendering
// itself never needs it: every field has a fallback.
func (o RenderOptions) Validate() error {
	if o.Layout != "" && o.Layout != string(layout.ModeNormal) && o.Layout != string(layout.ModeCompact) {
		return errors.New(errors.ErrCodeInvalidLayout, "invalid layout: %q (must be 'normal' or 'compact')", o.Layout)
	}
	if o.Theme != "" {
		if _, ok := themes.Lookup(o.Theme); !ok {
			return errors.New(errors.ErrCodeInvalidTheme, "unknown theme: %q", o.Theme)
		}
	}
	if o.LanguageCount < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "language count must be positive, got %d", o.LanguageCount)
	}
	if o.CardWidth < 0 || math.IsNaN(o.CardWidth) || math.IsInf(o.CardWidth, 0) {
		return errors.New(errors.ErrCodeInvalidInput, "invalid card width: %v", o.CardWidth)
	}
	for _, c := range []string{o.TitleColor, o.TextColor, o.BgColor, o.BorderColor} {
		if c == "" {
			continue
		}
		if _, ok := themes.NormalizeHex(c); !ok {
			return errors.New(errors.ErrCodeInvalidInput, "invalid hex color: %q", c)
		}
	}
	return nil
}

// Width returns the card width with the fallback applied.
func (o RenderOptions) Width() float64 {
	return NormalizeWidth(o.CardWidth, true)
}

// Count returns the language count with the fallback applied.
func (o RenderOptions) Count() int {
	if o.LanguageCount <= 0 {
		return DefaultLanguageCount
	}
	return o.LanguageCount
}

// Mode returns the layout mode.
func (o RenderOptions) Mode() layout.Mode {
	return layout.ParseMode(o.Layout)
}

// Colors returns the color overrides for a card.ColorResolver.
func (o RenderOptions) Colors() card.ColorOptions {
	return card.ColorOptions{
		Title:      o.TitleColor,
		Text:       o.TextColor,
		Background: o.BgColor,
		Border:     o.BorderColor,
		Theme:      o.Theme,
	}
}

// Title returns the custom title or the default card title.
func (o RenderOptions) Title() string {
	if o.CustomTitle != "" {
		return o.CustomTitle
	}
	return card.DefaultTitle
}

// Package themes provides named card color themes and the default
// [card.ColorResolver].
//
// Colors are resolved with the precedence explicit override, then the
// selected theme, then the default theme. Overrides are hex strings with or
// without a leading '#'; invalid values are ignored.
//
// [card.ColorResolver]: github.com/matzehuels/toplangs/pkg/render/card.ColorResolver
package themes

import (
	"slices"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/toplangs/pkg/render/card"
)

// Default is the theme used when none, or an unknown one, is requested.
const Default = "default"

// Theme is a named set of hex colors, stored without the leading '#'.
type Theme struct {
	Title  string
	Icon   string
	Text   string
	Bg     string
	Border string
}

var builtin = map[string]Theme{
	"default":      {Title: "2f80ed", Icon: "4c71f2", Text: "434d58", Bg: "fffefe", Border: "e4e2e2"},
	"dark":         {Title: "fff", Icon: "79ff97", Text: "9f9f9f", Bg: "151515"},
	"radical":      {Title: "fe428e", Icon: "f8d847", Text: "a9fef7", Bg: "141321"},
	"merko":        {Title: "abd200", Icon: "b7d364", Text: "68b587", Bg: "0a0f0b"},
	"gruvbox":      {Title: "fabd2f", Icon: "fe8019", Text: "8ec07c", Bg: "282828"},
	"tokyonight":   {Title: "70a5fd", Icon: "bf91f3", Text: "38bdae", Bg: "1a1b27"},
	"onedark":      {Title: "e4bf7a", Icon: "8eb573", Text: "df6d74", Bg: "282c34"},
	"cobalt":       {Title: "e683d9", Icon: "0480ef", Text: "75eeb2", Bg: "193549"},
	"synthwave":    {Title: "e2e9ec", Icon: "ef8539", Text: "e5289e", Bg: "2b213a"},
	"highcontrast": {Title: "e7f216", Icon: "00ffff", Text: "fff", Bg: "000"},
	"dracula":      {Title: "ff6e96", Icon: "79dafa", Text: "f8f8f2", Bg: "282a36"},
	"vue":          {Title: "41b883", Icon: "41b883", Text: "273849", Bg: "fffefe"},
	"nord":         {Title: "81a1c1", Icon: "88c0d0", Text: "d8dee9", Bg: "2e3440"},
	"github_dark":  {Title: "58a6ff", Icon: "1f6feb", Text: "c3d1d9", Bg: "0d1117"},
}

// Lookup returns the named theme.
func Lookup(name string) (Theme, bool) {
	t, ok := builtin[name]
	return t, ok
}

// Names returns all theme names, sorted.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Resolver resolves card colors from the built-in theme table.
type Resolver struct{}

// Resolve implements card.ColorResolver.
func (Resolver) Resolve(opts card.ColorOptions) card.Colors {
	def := builtin[Default]
	theme, ok := builtin[opts.Theme]
	if !ok {
		theme = def
	}
	return card.Colors{
		Title:      pick(opts.Title, theme.Title, def.Title),
		Text:       pick(opts.Text, theme.Text, def.Text),
		Background: pick(opts.Background, theme.Bg, def.Bg),
		Border:     pick(opts.Border, theme.Border, def.Border),
	}
}

func pick(candidates ...string) string {
	for _, c := range candidates {
		if hex, ok := NormalizeHex(c); ok {
			return hex
		}
	}
	return ""
}

// NormalizeHex validates a 3, 4, 6 or 8 digit hex color, with or without a
// leading '#', and returns it with the '#' prefix. Alpha digits are kept.
func NormalizeHex(s string) (string, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	var rgb, alpha string
	switch len(s) {
	case 3, 6:
		rgb = s
	case 4, 8:
		rgb, alpha = s[:len(s)*3/4], s[len(s)*3/4:]
	default:
		return "", false
	}
	if _, err := colorful.Hex("#" + rgb); err != nil {
		return "", false
	}
	if alpha != "" {
		if _, err := strconv.ParseUint(alpha, 16, 8); err != nil {
			return "", false
		}
	}
	return "#" + s, true
}

// ToRGB expands a valid hex color to the 6 digit "#rrggbb" form, dropping
// alpha. Terminal renderers use it since they do not understand short hex.
func ToRGB(s string) (string, bool) {
	hex, ok := NormalizeHex(s)
	if !ok {
		return "", false
	}
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) == 4 || len(digits) == 8 {
		digits = digits[:len(digits)*3/4]
	}
	c, err := colorful.Hex("#" + digits)
	if err != nil {
		return "", false
	}
	return c.Hex(), true
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/toplangs/pkg/options"
	"github.com/matzehuels/toplangs/pkg/render/card/layout"
)

// cardFlags holds the card options shared by render, preview and stats.
// Only flags set on the command line override the config file.
type cardFlags struct {
	hide           []string
	hideTitle      bool
	hideBorder     bool
	width          float64
	count          int
	layout         string
	theme          string
	title          string
	titleColor     string
	textColor      string
	bgColor        string
	borderColor    string
	boostedOffsets bool
}

func addCardFlags(cmd *cobra.Command, f *cardFlags) {
	fs := cmd.Flags()
	fs.StringSliceVar(&f.hide, "hide", nil, "languages to hide (comma-separated, case-insensitive)")
	fs.BoolVar(&f.hideTitle, "hide-title", false, "hide the card title")
	fs.BoolVar(&f.hideBorder, "hide-border", false, "hide the card border")
	fs.Float64Var(&f.width, "width", options.DefaultCardWidth, "card width")
	fs.IntVarP(&f.count, "count", "n", options.DefaultLanguageCount, "number of languages to show")
	fs.StringVarP(&f.layout, "layout", "l", options.DefaultLayout, "layout: normal, compact")
	fs.StringVar(&f.theme, "theme", "", "color theme (see 'toplangs themes')")
	fs.StringVar(&f.title, "title", "", "custom card title")
	fs.StringVar(&f.titleColor, "title-color", "", "title color (hex)")
	fs.StringVar(&f.textColor, "text-color", "", "text color (hex)")
	fs.StringVar(&f.bgColor, "bg-color", "", "background color (hex)")
	fs.StringVar(&f.borderColor, "border-color", "", "border color (hex)")
	fs.BoolVar(&f.boostedOffsets, "boosted-offsets", false, "compact: advance segments by their displayed width so they never overlap")
}

// apply overlays the flags the user set on base.
func (f *cardFlags) apply(cmd *cobra.Command, base options.RenderOptions) options.RenderOptions {
	changed := cmd.Flags().Changed
	o := base
	if changed("hide") {
		o.Hide = append(append([]string(nil), base.Hide...), f.hide...)
	}
	if changed("hide-title") {
		o.HideTitle = f.hideTitle
	}
	if changed("hide-border") {
		o.HideBorder = f.hideBorder
	}
	if changed("width") {
		o.CardWidth = f.width
	}
	if changed("count") {
		o.LanguageCount = f.count
	}
	if changed("layout") {
		o.Layout = f.layout
	}
	if changed("theme") {
		o.Theme = f.theme
	}
	if changed("title") {
		o.CustomTitle = f.title
	}
	if changed("title-color") {
		o.TitleColor = f.titleColor
	}
	if changed("text-color") {
		o.TextColor = f.textColor
	}
	if changed("bg-color") {
		o.BgColor = f.bgColor
	}
	if changed("border-color") {
		o.BorderColor = f.borderColor
	}
	return o
}

func (f *cardFlags) layoutOptions() []layout.Option {
	if f.boostedOffsets {
		return []layout.Option{layout.WithBoostedOffsets()}
	}
	return nil
}

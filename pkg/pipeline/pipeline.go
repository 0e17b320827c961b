// Package pipeline renders top-languages cards end to end.
//
// This package chains the stages shared by the CLI and the HTTP endpoint so
// both produce identical cards:
//
//  1. Select: order, filter and truncate the language set ([langs.Select])
//  2. Aggregate: sum the selected sizes ([langs.Total])
//  3. Layout: compute the normal or compact body ([layout.Build])
//  4. Assemble: wrap the body with the card chrome ([card.Render])
//  5. Convert: optionally turn the SVG into PNG or PDF ([render.ToPNG])
//
// # Usage
//
//	result := pipeline.Run(set, opts, themes.Resolver{})
//	os.WriteFile("langs.svg", result.SVG, 0o644)
//
// The first four stages are pure and never fail. Only [Convert] returns
// errors, since it shells out to rsvg-convert.
//
// [render.ToPNG]: github.com/matzehuels/toplangs/pkg/render.ToPNG
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/toplangs/pkg/errors"
	"github.com/matzehuels/toplangs/pkg/langs"
	"github.com/matzehuels/toplangs/pkg/observability"
	"github.com/matzehuels/toplangs/pkg/options"
	"github.com/matzehuels/toplangs/pkg/render"
	"github.com/matzehuels/toplangs/pkg/render/card"
	"github.com/matzehuels/toplangs/pkg/render/card/layout"
)

// Format constants for output formats.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
	FormatPDF = "pdf"
)

// DefaultPNGScale renders PNG output at twice the SVG resolution.
const DefaultPNGScale = 2.0

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG: true,
	FormatPNG: true,
	FormatPDF: true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf)", format)
	}
	return nil
}

// Result holds every intermediate value of a run, for callers that want
// more than the final SVG (the terminal preview, tests).
type Result struct {
	Selected []langs.Stat
	Total    float64
	Fragment layout.Fragment
	Colors   card.Colors
	SVG      []byte
}

// Run renders set with opts. A nil resolver leaves the card's default
// colors in place.
func Run(set langs.Set, opts options.RenderOptions, resolver card.ColorResolver, layoutOpts ...layout.Option) Result {
	selected := langs.Select(set, opts.Hide, opts.Count())
	total := langs.Total(selected)
	frag := layout.Build(opts.Mode(), selected, total, opts.Width(), layoutOpts...)

	colors := card.NewConfig().Colors
	if resolver != nil {
		colors = resolver.Resolve(opts.Colors())
	}
	cfg := card.NewConfig(
		card.WithTitle(opts.Title()),
		card.WithHideTitle(opts.HideTitle),
		card.WithHideBorder(opts.HideBorder),
		card.WithColors(colors),
		card.WithCSS(card.LanguageCSS(colors.Text)),
	)

	return Result{
		Selected: selected,
		Total:    total,
		Fragment: frag,
		Colors:   colors,
		SVG:      card.Render(cfg, frag),
	}
}

// RunContext is Run reporting the rendered card to the registered
// [observability.PipelineHooks].
func RunContext(ctx context.Context, set langs.Set, opts options.RenderOptions, resolver card.ColorResolver, layoutOpts ...layout.Option) Result {
	start := time.Now()
	result := Run(set, opts, resolver, layoutOpts...)
	observability.Pipeline().OnRender(ctx, string(result.Fragment.Mode), len(result.Selected), time.Since(start))
	return result
}

// Render is Run without the intermediate values.
func Render(set langs.Set, opts options.RenderOptions, resolver card.ColorResolver) []byte {
	return Run(set, opts, resolver).SVG
}

// Convert turns a rendered SVG into format.
func Convert(ctx context.Context, svg []byte, format string) ([]byte, error) {
	hooks := observability.Pipeline()
	hooks.OnConvertStart(ctx, format)
	start := time.Now()
	out, err := convert(ctx, svg, format)
	hooks.OnConvertComplete(ctx, format, len(out), time.Since(start), err)
	return out, err
}

func convert(ctx context.Context, svg []byte, format string) ([]byte, error) {
	switch format {
	case FormatSVG:
		return svg, nil
	case FormatPNG:
		return render.ToPNG(ctx, svg, DefaultPNGScale)
	case FormatPDF:
		return render.ToPDF(ctx, svg)
	default:
		return nil, ValidateFormat(format)
	}
}

// ContentType returns the MIME type of format.
func ContentType(format string) string {
	switch format {
	case FormatPNG:
		return "image/png"
	case FormatPDF:
		return "application/pdf"
	case FormatSVG:
		return "image/svg+xml"
	default:
		return fmt.Sprintf("application/x-%s", format)
	}
}

package layout

import (
	"bytes"
	"encoding/xml"
	"math"
	"strconv"

	"github.com/matzehuels/toplangs/pkg/langs"
)

const (
	// DefaultColor fills bars and dots of languages without a color.
	DefaultColor = "#858585"

	// DefaultMaskID is the id of the compact layout clipping mask.
	DefaultMaskID = "rect-mask"
)

// Mode selects one of the two card layouts.
type Mode string

const (
	ModeNormal  Mode = "normal"
	ModeCompact Mode = "compact"
)

// ParseMode maps an option value to a Mode. Anything but "compact" is normal.
func ParseMode(s string) Mode {
	if Mode(s) == ModeCompact {
		return ModeCompact
	}
	return ModeNormal
}

// Fragment is a laid out card body.
type Fragment struct {
	Mode   Mode
	Width  float64 // card width including the compact extension
	Height float64 // card height before title adjustments
	Bars   []Bar   // one entry per language, in draw order
	Body   []byte  // SVG elements, without a root <svg>
}

// Bar is the computed geometry of one language.
type Bar struct {
	Name    string
	Color   string
	Percent float64 // label percentage, rounded to 2 decimals
	Recent  float64 // recent-activity percentage (normal layout only)
	X, Y    float64 // offset of the bar or segment
	Width   float64 // displayed length in units (compact) or percent (normal)
}

// Option configures the compact layout.
type Option func(*config)

type config struct {
	boostedOffsets bool
	maskID         string
}

// WithBoostedOffsets advances compact segment offsets by the displayed
// (boosted) width instead of the raw width, so segments never overlap.
func WithBoostedOffsets() Option { return func(c *config) { c.boostedOffsets = true } }

// WithMaskID overrides the compact mask id, for embedding several cards in
// one document.
func WithMaskID(id string) Option { return func(c *config) { c.maskID = id } }

func newConfig(opts ...Option) config {
	c := config{maskID: DefaultMaskID}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Build dispatches to [Normal] or [Compact]. Options only affect the compact
// layout.
func Build(mode Mode, stats []langs.Stat, total, width float64, opts ...Option) Fragment {
	if mode == ModeCompact {
		return Compact(stats, total, width, opts...)
	}
	return Normal(stats, total, width)
}

// Percent returns part/total*100, or 0 when total is zero.
func Percent(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return part / total * 100
}

// RawPercentage rounds a percentage to two decimals for labels. NaN and
// infinities become 0.
func RawPercentage(value float64) float64 {
	return round2(value)
}

// VisualFloor clamps value into [lo, hi]. It only affects drawn lengths.
func VisualFloor(value, lo, hi float64) float64 {
	if math.IsNaN(value) {
		return lo
	}
	return max(lo, min(value, hi))
}

func round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	return r
}

func colorOf(s langs.Stat) string {
	if s.Color == "" {
		return DefaultColor
	}
	return s.Color
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func escape(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

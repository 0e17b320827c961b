package layout

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/toplangs/pkg/langs"
)

const (
	compactExtraWidth = 50.0
	compactBaseHeight = 30.0
	compactRowHeight  = 40.0
	boostThreshold    = 10.0
	boostAmount       = 10.0
	labelGridY        = 25.0
	labelRowStep      = 12.5
	labelColumnX      = 150.0
)

// Compact lays out a single stacked bar across the track plus a two-column
// label grid. The card grows by 50 units; the track keeps the requested
// width.
func Compact(stats []langs.Stat, total, width float64, opts ...Option) Fragment {
	c := newConfig(opts...)
	cardWidth := width + compactExtraWidth
	track := cardWidth - compactExtraWidth

	f := Fragment{
		Mode:   ModeCompact,
		Width:  cardWidth,
		Height: compactBaseHeight + (float64(len(stats))/2+1)*compactRowHeight,
		Bars:   make([]Bar, 0, len(stats)),
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<mask id="%s">`+"\n", escape(c.maskID))
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%s" height="8" fill="white" rx="5"/>`+"\n", num(track))
	buf.WriteString("</mask>\n")

	// offset stays on the 2-decimal grid so x never carries float noise.
	var offset float64
	for _, s := range stats {
		raw := SegmentWidth(s.Size, total, track)
		b := Bar{
			Name:    s.Name,
			Color:   colorOf(s),
			Percent: RawPercentage(Percent(s.Size, total)),
			X:       offset,
			Width:   Boost(raw),
		}
		f.Bars = append(f.Bars, b)

		fmt.Fprintf(&buf, `<rect mask="url(#%s)" data-testid="lang-progress" x="%s" y="0" width="%s" height="8" fill="%s"/>`+"\n",
			escape(c.maskID), num(b.X), num(b.Width), escape(b.Color))

		if c.boostedOffsets {
			offset = round2(offset + b.Width)
		} else {
			offset = round2(offset + raw)
		}
	}

	for i, b := range f.Bars {
		x, y := LabelPosition(i)
		writeCompactLabel(&buf, b, x, y)
	}

	f.Body = buf.Bytes()
	return f
}

// SegmentWidth is a language's share of the track, rounded to 2 decimals.
func SegmentWidth(size, total, track float64) float64 {
	if total == 0 {
		return 0
	}
	return round2(size / total * track)
}

// Boost applies the boost floor: widths under 10 units gain 10 units so thin
// slivers stay visible. Wider segments are returned unchanged.
func Boost(width float64) float64 {
	if width < boostThreshold {
		return round2(width + boostAmount)
	}
	return width
}

// LabelPosition returns the grid position of the i-th compact label. Even
// indices fill the left column and odd indices the right one, so each pair
// shares a row.
func LabelPosition(i int) (x, y float64) {
	if i%2 == 0 {
		return 0, labelRowStep*float64(i) + labelGridY
	}
	return labelColumnX, labelRowStep + labelRowStep*float64(i)
}

func writeCompactLabel(buf *bytes.Buffer, b Bar, x, y float64) {
	fmt.Fprintf(buf, `<g transform="translate(%s, %s)">`+"\n", num(x), num(y))
	fmt.Fprintf(buf, `  <circle cx="5" cy="6" r="5" fill="%s"/>`+"\n", escape(b.Color))
	fmt.Fprintf(buf, `  <text data-testid="lang-name" x="15" y="10" class="lang-name">%s %.2f%%</text>`+"\n", escape(b.Name), b.Percent)
	buf.WriteString("</g>\n")
}

package layout

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/toplangs/pkg/langs"
)

const (
	normalPaddingRight = 60.0
	normalGap          = 40.0
	normalBaseHeight   = 45.0
	minBarPercent      = 2.0
	maxBarPercent      = 100.0
	trackColor         = "#ddd"
	recentColor        = "#f2b866"
)

// Normal lays out one progress bar per language. The bar track is width
// minus a 60 unit right padding; each bar shows the primary percentage on
// top of the recent-activity overlay.
func Normal(stats []langs.Stat, total, width float64) Fragment {
	track := width - normalPaddingRight

	f := Fragment{
		Mode:   ModeNormal,
		Width:  width,
		Height: normalBaseHeight + float64(len(stats)+1)*normalGap,
		Bars:   make([]Bar, 0, len(stats)),
	}

	var buf bytes.Buffer
	for i, s := range stats {
		b := Bar{
			Name:    s.Name,
			Color:   colorOf(s),
			Percent: RawPercentage(Percent(s.Size, total)),
			Recent:  RawPercentage(Percent(s.RecentSize, total)),
			Y:       float64(i) * normalGap,
		}
		b.Width = VisualFloor(b.Percent, minBarPercent, maxBarPercent)
		f.Bars = append(f.Bars, b)

		fmt.Fprintf(&buf, `<g transform="translate(0, %s)">`+"\n", num(b.Y))
		writeProgressNode(&buf, b, track)
		buf.WriteString("</g>\n")
	}
	f.Body = buf.Bytes()
	return f
}

func writeProgressNode(buf *bytes.Buffer, b Bar, track float64) {
	recent := VisualFloor(b.Recent, minBarPercent, maxBarPercent)

	fmt.Fprintf(buf, `  <text data-testid="lang-name" x="2" y="15" class="lang-name">%s</text>`+"\n", escape(Label(b)))
	fmt.Fprintf(buf, `  <svg width="%s">`+"\n", num(track))
	fmt.Fprintf(buf, `    <rect rx="5" ry="5" x="0" y="25" width="%s" height="8" fill="%s"/>`+"\n", num(track), trackColor)
	fmt.Fprintf(buf, `    <rect height="8" fill="%s" rx="5" ry="5" x="1" y="25" width="calc(%s%% - 1px)"/>`+"\n", recentColor, num(recent))
	fmt.Fprintf(buf, `    <rect height="8" fill="%s" rx="5" ry="5" x="0" y="25" data-testid="lang-progress" width="%s%%"/>`+"\n", escape(b.Color), num(b.Width))
	buf.WriteString("  </svg>\n")
}

// Label formats the text shown above a normal-layout bar: the name and
// percentage, followed by the recent-activity delta when it is larger.
func Label(b Bar) string {
	label := fmt.Sprintf("%s %s%%", b.Name, num(b.Percent))
	if b.Recent > b.Percent {
		label += fmt.Sprintf(" + %s%%", num(round2(b.Recent-b.Percent)))
	}
	return label
}

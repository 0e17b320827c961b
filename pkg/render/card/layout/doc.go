// Package layout computes the body of a top-languages card.
//
// # Overview
//
// The layout engine turns an ordered slice of [langs.Stat] and their total
// size into an SVG [Fragment]. Two layouts exist:
//
//   - [Normal]: one proportional progress bar per language, stacked
//     vertically with a fixed 40 unit gap
//   - [Compact]: a single stacked bar with one segment per language, plus a
//     two-column label grid
//
// A fragment is not a standalone document. It carries the card dimensions
// and the SVG elements; [card.Render] wraps it with title, border, theme
// colors and the `.lang-name` CSS class.
//
// # Percentages
//
// Label percentages come from [RawPercentage], which rounds to two decimals
// and maps NaN and infinities to 0, so an empty or zero-sized selection
// renders 0% instead of NaN. Bar lengths additionally go through
// [VisualFloor] so a tiny language still shows a sliver.
//
// # Compact Segments
//
// Segments narrower than 10 units are widened by 10 (the boost floor).
// Offsets accumulate the unboosted widths, which can make many small
// segments overlap slightly. [WithBoostedOffsets] accumulates the displayed
// width instead.
//
// [card.Render]: github.com/matzehuels/toplangs/pkg/render/card.Render
package layout

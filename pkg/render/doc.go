// Package render converts rendered cards into raster and print formats.
//
// Cards are produced as SVG by the [card] package. [ToPNG] and [ToPDF]
// pipe that SVG through rsvg-convert, which must be installed:
//
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// Both honor context cancellation by killing the converter process.
//
// [card]: github.com/matzehuels/toplangs/pkg/render/card
package render

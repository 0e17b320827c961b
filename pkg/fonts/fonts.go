// Package fonts provides the font stacks used by card CSS.
//
// Cards are embedded in README files and rendered by browsers, so they rely
// on system fonts instead of embedding font files.
package fonts

import "fmt"

// FontFamily is the CSS font-family stack for card text.
const FontFamily = `'Segoe UI', Ubuntu, Sans-Serif`

// Weights used by card text.
const (
	WeightRegular  = 400
	WeightSemibold = 600
)

// Shorthand returns a CSS font shorthand, e.g. "400 11px 'Segoe UI', ...".
func Shorthand(weight, size int) string {
	return fmt.Sprintf("%d %dpx %s", weight, size, FontFamily)
}

// Package card wraps a laid out card body with the card chrome.
//
// # Overview
//
// The [layout] package produces only the language bars. This package owns
// everything around them: the outer <svg> document, background, border,
// title, theme colors and CSS. A card is rendered in one call from an
// immutable [Config]:
//
//	cfg := card.NewConfig(
//	    card.WithTitle("Most Used Languages"),
//	    card.WithColors(resolver.Resolve(card.ColorOptions{Theme: "dark"})),
//	    card.WithHideBorder(true),
//	)
//	svg := card.Render(cfg, fragment)
//
// # Colors
//
// Color lookup is injected through [ColorResolver] so the layout never
// depends on a theme table. The themes package provides the default
// implementation.
//
// [layout]: github.com/matzehuels/toplangs/pkg/render/card/layout
package card

// Package pkg provides the core libraries for toplangs card rendering.
//
// # Overview
//
// toplangs turns per-language byte sizes into a "Most Used Languages" SVG
// card. The pkg directory is organized into four main areas:
//
//  1. [langs] - Language statistics (normalize, select, aggregate)
//  2. [render] - Card layout and assembly, plus PNG/PDF conversion
//  3. [pipeline] - Orchestration (select → layout → render → convert)
//  4. [server] - HTTP endpoint serving cards
//
// # Architecture
//
// The typical data flow through toplangs:
//
//	Stats file / request body
//	         ↓
//	    [io] package (decode JSON, TOML or YAML)
//	         ↓
//	    [langs] package (hide, sort, truncate, total)
//	         ↓
//	    [render/card/layout] package (normal or compact body)
//	         ↓
//	    [render/card] package (title, border, colors)
//	         ↓
//	    SVG/PNG/PDF output
//
// # Quick Start
//
// Render a card from a stats file:
//
//	import (
//	    "github.com/matzehuels/toplangs/pkg/io"
//	    "github.com/matzehuels/toplangs/pkg/options"
//	    "github.com/matzehuels/toplangs/pkg/pipeline"
//	    "github.com/matzehuels/toplangs/pkg/themes"
//	)
//
//	set, _ := io.ImportFile("langs.json")
//	opts := options.Defaults()
//	opts.Layout = "compact"
//	svg := pipeline.Render(set, opts, themes.Resolver{})
//
// # Support Packages
//
//   - [options] - Render options and query-string parsing
//   - [themes] - Named color themes and the default color resolver
//   - [errors] - Error codes and input validation
//   - [observability] - Hooks for metrics and tracing
//   - [fonts] - Card font constants
//   - [buildinfo] - Version information set via ldflags
//
// [langs]: github.com/matzehuels/toplangs/pkg/langs
// [render]: github.com/matzehuels/toplangs/pkg/render
// [pipeline]: github.com/matzehuels/toplangs/pkg/pipeline
// [server]: github.com/matzehuels/toplangs/pkg/server
// [io]: github.com/matzehuels/toplangs/pkg/io
// [render/card/layout]: github.com/matzehuels/toplangs/pkg/render/card/layout
// [render/card]: github.com/matzehuels/toplangs/pkg/render/card
// [options]: github.com/matzehuels/toplangs/pkg/options
// [themes]: github.com/matzehuels/toplangs/pkg/themes
// [errors]: github.com/matzehuels/toplangs/pkg/errors
// [observability]: github.com/matzehuels/toplangs/pkg/observability
// [fonts]: github.com/matzehuels/toplangs/pkg/fonts
// [buildinfo]: github.com/matzehuels/toplangs/pkg/buildinfo
package pkg

// Package io reads and writes language statistics files.
//
// # Overview
//
// Statistics come from an external fetcher (for example a GitHub GraphQL
// query summing repository language sizes). This package loads the result
// from disk or a request body so it can be rendered.
//
// # Formats
//
// The format is chosen by file extension: .json, .toml, .yaml or .yml.
// All three share one shape, an object keyed by language name:
//
//	{
//	  "Go":     {"size": 81920, "color": "#00ADD8", "recentSize": 4096},
//	  "Python": {"size": 20480, "color": "#3572A5"},
//	  "Shell":  512
//	}
//
// A bare number is shorthand for {"size": n}. A missing "name" is taken
// from the key. "recent_size" is accepted as an alias of "recentSize".
//
// # Validation
//
// Names must pass [errors.ValidateLanguageName] and sizes must be finite
// and non-negative. Violations return [errors.ErrCodeInvalidInput] or
// [errors.ErrCodeInvalidLanguage]; malformed syntax returns
// [errors.ErrCodeInvalidFormat].
//
// [errors.ValidateLanguageName]: github.com/matzehuels/toplangs/pkg/errors.ValidateLanguageName
// [errors.ErrCodeInvalidInput]: github.com/matzehuels/toplangs/pkg/errors.ErrCodeInvalidInput
// [errors.ErrCodeInvalidLanguage]: github.com/matzehuels/toplangs/pkg/errors.ErrCodeInvalidLanguage
// [errors.ErrCodeInvalidFormat]: github.com/matzehuels/toplangs/pkg/errors.ErrCodeInvalidFormat
package io

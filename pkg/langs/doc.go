// Package langs selects and aggregates per-language usage statistics.
//
// # Overview
//
// A [Set] maps language names to [Stat] values, usually produced by an
// external fetcher that sums repository byte sizes per language. This package
// turns that raw map into the ordered, filtered slice that the card layout
// consumes:
//
//  1. [Normalize] lowercases and trims names for hide-list matching
//  2. [Select] sorts by size, removes hidden languages and truncates
//  3. [Total] sums the selected sizes into the percentage denominator
//
// Basic usage:
//
//	set := langs.Set{
//	    "Go":     {Name: "Go", Size: 8000, Color: "#00ADD8"},
//	    "Python": {Name: "Python", Size: 2000, Color: "#3572A5"},
//	}
//	selected := langs.Select(set, []string{"python"}, 5)
//	total := langs.Total(selected)
//
// # Ordering
//
// Languages are ordered by size, descending. Equal sizes keep the order of
// their keys, so a given [Set] always yields the same selection even though
// Go map iteration order is random.
//
// # Hidden Languages
//
// Hide-list entries are matched case-insensitively and ignore surrounding
// whitespace: " PYTHON " hides "Python". Keys that differ only by case are
// distinct entries and are not deduplicated.
//
// All functions are pure and safe for concurrent use.
package langs

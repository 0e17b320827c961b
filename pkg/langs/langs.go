package langs

import (
	"cmp"
	"slices"
	"strings"
)

// DefaultCount is the number of languages shown when no count is requested.
const DefaultCount = 5

// Stat is one language's footprint.
type Stat struct {
	Name       string  `json:"name" toml:"name" yaml:"name"`
	Size       float64 `json:"size" toml:"size" yaml:"size"`
	Color      string  `json:"color,omitempty" toml:"color" yaml:"color,omitempty"`
	RecentSize float64 `json:"recentSize,omitempty" toml:"recentSize" yaml:"recentSize,omitempty"`
}

// Set maps a language name, as provided by the caller, to its statistics.
type Set map[string]Stat

// Normalize lowercases and trims a language name for hide-list matching.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Select returns the count largest languages of set, excluding any whose
// normalized name appears in hide. A count <= 0 selects [DefaultCount].
// The result is sorted by size, descending. An empty set or a hide list
// covering everything yields an empty slice.
func Select(set Set, hide []string, count int) []Stat {
	if count <= 0 {
		count = DefaultCount
	}

	hidden := make(map[string]struct{}, len(hide))
	for _, h := range hide {
		hidden[Normalize(h)] = struct{}{}
	}

	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	stats := make([]Stat, 0, len(keys))
	for _, k := range keys {
		s := set[k]
		if s.Name == "" {
			s.Name = k
		}
		stats = append(stats, s)
	}
	slices.SortStableFunc(stats, func(a, b Stat) int {
		return cmp.Compare(b.Size, a.Size)
	})

	selected := make([]Stat, 0, min(count, len(stats)))
	for _, s := range stats {
		if _, ok := hidden[Normalize(s.Name)]; ok {
			continue
		}
		selected = append(selected, s)
		if len(selected) == count {
			break
		}
	}
	return selected
}

// Total sums the sizes of stats. It is the denominator for every percentage
// on the card; zero is a valid result.
func Total(stats []Stat) float64 {
	var total float64
	for _, s := range stats {
		total += s.Size
	}
	return total
}

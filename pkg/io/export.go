package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/toplangs/pkg/errors"
	"github.com/matzehuels/toplangs/pkg/langs"
)

// Entry is one selected language with its computed share, as written by
// [WriteJSON].
type Entry struct {
	Name       string  `json:"name"`
	Size       float64 `json:"size"`
	RecentSize float64 `json:"recentSize,omitempty"`
	Color      string  `json:"color,omitempty"`
	Percent    float64 `json:"percent"`
}

// WriteJSON encodes entries as an indented JSON array.
func WriteJSON(w io.Writer, entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

// WriteSet encodes a language set in the object form read by [Decode].
// The output can be re-imported for round-trip processing.
func WriteSet(w io.Writer, set langs.Set) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(set)
}

// ExportSet writes set to a JSON file at path.
func ExportSet(path string, set langs.Set) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	if err := WriteSet(f, set); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

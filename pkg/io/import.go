package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/toplangs/pkg/errors"
	"github.com/matzehuels/toplangs/pkg/langs"
)

// Supported input formats.
const (
	FormatJSON = "json"
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// FormatFromPath maps a file extension to an input format. Unknown
// extensions are read as JSON.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// ImportFile reads the statistics file at path.
func ImportFile(path string) (langs.Set, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "stats file %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()

	set, err := Decode(f, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// Decode reads a statistics document in the given format from r.
// Decode does not close r.
func Decode(r io.Reader, format string) (langs.Set, error) {
	raw := map[string]any{}
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&raw); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode json")
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&raw); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode toml")
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&raw); err != nil && err != io.EOF {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode yaml")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported stats format: %q", format)
	}
	return fromRaw(raw)
}

func fromRaw(raw map[string]any) (langs.Set, error) {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	set := make(langs.Set, len(raw))
	for _, key := range keys {
		stat, err := toStat(key, raw[key])
		if err != nil {
			return nil, err
		}
		set[key] = stat
	}
	return set, nil
}

func toStat(key string, v any) (langs.Stat, error) {
	stat := langs.Stat{Name: key}

	switch val := v.(type) {
	case map[string]any:
		if name, ok := val["name"].(string); ok && name != "" {
			stat.Name = name
		}
		if color, ok := val["color"].(string); ok {
			stat.Color = color
		}
		size, ok := toFloat(val["size"])
		if !ok {
			return stat, errors.New(errors.ErrCodeInvalidInput, "%s: missing or non-numeric size", key)
		}
		stat.Size = size
		for _, field := range []string{"recentSize", "recent_size"} {
			if rv, present := val[field]; present && rv != nil {
				recent, ok := toFloat(rv)
				if !ok {
					return stat, errors.New(errors.ErrCodeInvalidInput, "%s: non-numeric %s", key, field)
				}
				stat.RecentSize = recent
			}
		}
	default:
		size, ok := toFloat(v)
		if !ok {
			return stat, errors.New(errors.ErrCodeInvalidInput, "%s: expected a number or an object, got %T", key, v)
		}
		stat.Size = size
	}

	if err := errors.ValidateLanguageName(stat.Name); err != nil {
		return stat, err
	}
	if err := errors.ValidateSize(stat.Name, stat.Size); err != nil {
		return stat, err
	}
	if err := errors.ValidateSize(stat.Name, stat.RecentSize); err != nil {
		return stat, err
	}
	return stat, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

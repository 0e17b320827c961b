package io

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/toplangs/pkg/errors"
	"github.com/matzehuels/toplangs/pkg/langs"
)

func TestFormatFromPath(t *testing.T) {
	tests := map[string]string{
		"stats.json":      FormatJSON,
		"stats.TOML":      FormatTOML,
		"dir/stats.yaml":  FormatYAML,
		"stats.yml":       FormatYAML,
		"stats":           FormatJSON,
		"stats.unknown":   FormatJSON,
		"/tmp/x.toml.bak": FormatJSON,
	}
	for path, want := range tests {
		if got := FormatFromPath(path); got != want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestDecode(t *testing.T) {
	want := langs.Set{
		"Go":    {Name: "Go", Size: 8000, Color: "#00ADD8", RecentSize: 500},
		"Shell": {Name: "Shell", Size: 512},
	}

	tests := []struct {
		name   string
		format string
		input  string
	}{
		{
			name:   "json",
			format: FormatJSON,
			input:  `{"Go": {"size": 8000, "color": "#00ADD8", "recentSize": 500}, "Shell": 512}`,
		},
		{
			name:   "json snake case recent",
			format: FormatJSON,
			input:  `{"Go": {"name": "Go", "size": 8000, "color": "#00ADD8", "recent_size": 500}, "Shell": {"size": 512}}`,
		},
		{
			name:   "toml",
			format: FormatTOML,
			input: `Shell = 512

[Go]
size = 8000
color = "#00ADD8"
recentSize = 500
`,
		},
		{
			name:   "yaml",
			format: FormatYAML,
			input: `Go:
  size: 8000
  color: "#00ADD8"
  recentSize: 500
Shell: 512
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(strings.NewReader(tt.input), tt.format)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if len(got) != len(want) {
				t.Fatalf("Decode() = %+v, want %+v", got, want)
			}
			for k, w := range want {
				if got[k] != w {
					t.Errorf("Decode()[%q] = %+v, want %+v", k, got[k], w)
				}
			}
		})
	}
}

func TestDecodeNameOverride(t *testing.T) {
	got, err := Decode(strings.NewReader(`{"cpp": {"name": "C++", "size": 10}}`), FormatJSON)
	if err != nil {
		t.Fatal(err)
	}
	if got["cpp"].Name != "C++" {
		t.Errorf("Name = %q, want C++", got["cpp"].Name)
	}
}

func TestDecodeEmpty(t *testing.T) {
	for _, tt := range []struct{ format, input string }{
		{FormatJSON, "{}"},
		{FormatTOML, ""},
		{FormatYAML, ""},
	} {
		got, err := Decode(strings.NewReader(tt.input), tt.format)
		if err != nil {
			t.Errorf("Decode(%s, empty) error = %v", tt.format, err)
		}
		if len(got) != 0 {
			t.Errorf("Decode(%s, empty) = %v", tt.format, got)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		format string
		input  string
		code   errors.Code
	}{
		{"bad json", FormatJSON, `{"Go": `, errors.ErrCodeInvalidFormat},
		{"json array", FormatJSON, `[1, 2]`, errors.ErrCodeInvalidFormat},
		{"bad toml", FormatTOML, `Go = `, errors.ErrCodeInvalidFormat},
		{"bad yaml", FormatYAML, "Go: [1,\n", errors.ErrCodeInvalidFormat},
		{"unknown format", "xml", `<x/>`, errors.ErrCodeInvalidFormat},
		{"negative size", FormatJSON, `{"Go": -1}`, errors.ErrCodeInvalidInput},
		{"negative recent", FormatJSON, `{"Go": {"size": 1, "recentSize": -4}}`, errors.ErrCodeInvalidInput},
		{"string size", FormatJSON, `{"Go": "big"}`, errors.ErrCodeInvalidInput},
		{"missing size", FormatJSON, `{"Go": {"color": "#fff"}}`, errors.ErrCodeInvalidInput},
		{"control char name", FormatJSON, `{"Go": {"name": "G\u0007o", "size": 1}}`, errors.ErrCodeInvalidLanguage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input), tt.format)
			if !errors.Is(err, tt.code) {
				t.Errorf("Decode() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestImportFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "langs.yaml")
	if err := os.WriteFile(path, []byte("Go: 3\nRust: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	set, err := ImportFile(path)
	if err != nil {
		t.Fatalf("ImportFile() error = %v", err)
	}
	if set["Go"].Size != 3 || set["Rust"].Size != 1 {
		t.Errorf("ImportFile() = %+v", set)
	}
}

func TestImportFileMissing(t *testing.T) {
	_, err := ImportFile(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("ImportFile(missing) error = %v, want %s", err, errors.ErrCodeFileNotFound)
	}
}

func TestImportFileBadContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := ImportFile(path)
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("ImportFile() error = %v, want %s", err, errors.ErrCodeInvalidFormat)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q does not mention the path", err)
	}
}

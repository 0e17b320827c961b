package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/toplangs/pkg/errors"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
	if cfg.Card.Theme != "" || cfg.Server.Addr != "" {
		t.Errorf("Load() = %+v, want zero config", cfg)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	if _, err := Load(""); !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("Load(\"\") error = %v, want %s", err, errors.ErrCodeInvalidPath)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[card]
theme = "dark"
layout = "compact"
hide = ["HTML", "css"]
card_width = 420.0
language_count = 8
hide_border = true

[server]
addr = ":9090"
stats = "langs.json"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Card.Theme != "dark" || cfg.Card.Layout != "compact" {
		t.Errorf("theme/layout = %q/%q, want dark/compact", cfg.Card.Theme, cfg.Card.Layout)
	}
	if len(cfg.Card.Hide) != 2 || cfg.Card.Hide[0] != "HTML" {
		t.Errorf("hide = %v, want [HTML css]", cfg.Card.Hide)
	}
	if cfg.Card.CardWidth != 420 || cfg.Card.LanguageCount != 8 || !cfg.Card.HideBorder {
		t.Errorf("card = %+v", cfg.Card)
	}
	if cfg.Server.Addr != ":9090" || cfg.Server.Stats != "langs.json" {
		t.Errorf("server = %+v", cfg.Server)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    errors.Code
	}{
		{"syntax", "[card\ntheme = ", errors.ErrCodeInvalidFormat},
		{"unknown key", "[card]\ncolour = \"red\"\n", errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); !errors.Is(err, tt.code) {
				t.Errorf("Load() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestDefaultPathUsesXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	want := filepath.Join(dir, "toplangs", "config.toml")
	if got := DefaultPath(); got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}
}

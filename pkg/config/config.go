// Package config loads the optional configuration file.
//
// The file is YAML. All fields are optional; absent fields keep their
// default values:
//
//	width: 70
//	max-rows: 10000
//	palette:
//	  background: " "
//	  foreground: "*"
//	  cursor: "X"
//	symbols:
//	  north: "n8"
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
	"src.pendraw.sh/pkg/asm"
	"src.pendraw.sh/pkg/canvas"
	"src.pendraw.sh/pkg/env"
	"src.pendraw.sh/pkg/strutil"
)

// Config keeps all configurable aspects of a session.
type Config struct {
	Width   int     `yaml:"width"`
	MaxRows int     `yaml:"max-rows"`
	Palette Palette `yaml:"palette"`
	// Symbols maps instruction names to replacement symbol sets.
	Symbols map[string]string `yaml:"symbols"`
}

// Palette is the textual form of canvas.Palette. Each field must be exactly
// one character.
type Palette struct {
	Background string `yaml:"background"`
	Foreground string `yaml:"foreground"`
	Cursor     string `yaml:"cursor"`
}

// Default returns the built-in configuration.
func Default() Config {
	p := canvas.DefaultPalette
	return Config{
		Width:   canvas.DefaultWidth,
		MaxRows: canvas.DefaultMaxRows,
		Palette: Palette{
			Background: string(p.Background),
			Foreground: string(p.Foreground),
			Cursor:     string(p.Cursor),
		},
	}
}

// Parse decodes YAML data on top of base. Unknown fields are errors. Empty
// data leaves base unchanged.
func Parse(data []byte, base Config) (Config, error) {
	cfg := base
	if base.Symbols != nil {
		// Do not share the map with base.
		cfg.Symbols = make(map[string]string, len(base.Symbols))
		for k, v := range base.Symbols {
			cfg.Symbols[k] = v
		}
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	err := dec.Decode(&cfg)
	if err != nil && err != io.EOF {
		return base, err
	}
	return cfg, nil
}

// Load reads and parses the file at path on top of base.
func Load(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, err
	}
	cfg, err := Parse(data, base)
	if err != nil {
		return base, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault is like Load, but reads the file at DefaultPath and treats a
// missing file as empty.
func LoadDefault(base Config) (Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return base, err
	}
	cfg, err := Load(path, base)
	if errors.Is(err, os.ErrNotExist) {
		return base, nil
	}
	return cfg, err
}

// DefaultPath returns the path of the configuration file used when none is
// given explicitly: $XDG_CONFIG_HOME/pendraw/config.yaml, falling back to
// ~/.config/pendraw/config.yaml.
func DefaultPath() (string, error) {
	if dir := os.Getenv(env.XDG_CONFIG_HOME); dir != "" {
		return filepath.Join(dir, "pendraw", "config.yaml"), nil
	}
	home := os.Getenv(env.HOME)
	if home == "" {
		var err error
		home, err = os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot locate config file: %w", err)
		}
	}
	return filepath.Join(home, ".config", "pendraw", "config.yaml"), nil
}

// CanvasPalette converts the palette to a canvas.Palette.
func (cfg Config) CanvasPalette() (canvas.Palette, error) {
	var p canvas.Palette
	for _, glyph := range []struct {
		name string
		s    string
		dst  *rune
	}{
		{"background", cfg.Palette.Background, &p.Background},
		{"foreground", cfg.Palette.Foreground, &p.Foreground},
		{"cursor", cfg.Palette.Cursor, &p.Cursor},
	} {
		r, ok := strutil.OneRune(glyph.s)
		if !ok {
			return p, fmt.Errorf("%s glyph must be one character, got %q", glyph.name, glyph.s)
		}
		*glyph.dst = r
	}
	return p, nil
}

// NewCanvas creates a canvas as configured. A non-positive width results in
// a construction error from canvas.New.
func (cfg Config) NewCanvas() (*canvas.Canvas, error) {
	p, err := cfg.CanvasPalette()
	if err != nil {
		return nil, err
	}
	return canvas.New(cfg.Width, canvas.WithPalette(p), canvas.WithMaxRows(cfg.MaxRows))
}

// Table applies the symbol overrides to base. Overrides are applied in the
// order of instruction names so that errors are deterministic.
func (cfg Config) Table(base asm.Table) (asm.Table, error) {
	names := make([]string, 0, len(cfg.Symbols))
	for name := range cfg.Symbols {
		names = append(names, name)
	}
	sort.Strings(names)
	table := base
	for _, name := range names {
		var err error
		table, err = table.WithSymbols(name, []rune(cfg.Symbols[name]))
		if err != nil {
			return nil, fmt.Errorf("symbols: %w", err)
		}
	}
	return table, nil
}

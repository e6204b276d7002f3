package config

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
)

// Flags are the command-line overrides shared by the entrypoints.
type Flags struct {
	ConfigPath string
	Level      string
	Size       string // "WIDTHxHEIGHT"
	Workers    int
	Flat       bool
	List       bool
}

// BindFlags registers the shared flags on fs.
func BindFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.ConfigPath, "config", "raycaster.yaml", "Config file (defaults are used if it does not exist)")
	fs.StringVar(&f.Level, "level", "", "Level file to load (empty for the built-in level)")
	fs.StringVar(&f.Size, "size", "", "Screen size as WIDTHxHEIGHT, e.g. 1280x720")
	fs.IntVar(&f.Workers, "workers", 0, "Concurrent column bands (0 keeps the config value)")
	fs.BoolVar(&f.Flat, "flat", false, "Draw flat colours instead of textures")
	fs.BoolVar(&f.List, "list", false, "List the levels in the data directory and exit")
	return f
}

// Load reads the config file and applies the flag overrides.
func (f *Flags) Load() (*Config, error) {
	cfg, err := LoadConfig(f.ConfigPath)
	if err != nil {
		return nil, err
	}
	if err := f.Apply(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Apply copies set flags over cfg and revalidates it.
func (f *Flags) Apply(cfg *Config) error {
	if f.Level != "" {
		cfg.Level.Path = f.Level
	}
	if f.Size != "" {
		w, h, err := ParseSize(f.Size)
		if err != nil {
			return err
		}
		cfg.Screen.Width, cfg.Screen.Height = w, h
	}
	if f.Workers > 0 {
		cfg.Render.Workers = f.Workers
	}
	return cfg.Validate()
}

// ParseSize parses "WIDTHxHEIGHT".
func ParseSize(s string) (width, height int, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q: want WIDTHxHEIGHT", s)
	}
	width, err = strconv.Atoi(ws)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid width in %q: %w", s, err)
	}
	height, err = strconv.Atoi(hs)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid height in %q: %w", s, err)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("invalid size %q: must be positive", s)
	}
	return width, height, nil
}

// Package config holds the raycaster's runtime settings. Settings are loaded
// from a YAML file layered over DefaultConfig, so a file only needs the keys
// it changes.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"chosenoffset.com/raycaster/internal/render/material"
)

// Config holds all settings for a run.
type Config struct {
	Screen    ScreenConfig     `yaml:"screen"`
	Camera    CameraConfig     `yaml:"camera"`
	Render    RenderConfig     `yaml:"render"`
	Level     LevelConfig      `yaml:"level"`
	Materials []MaterialConfig `yaml:"materials"`
}

// ScreenConfig defines the window.
type ScreenConfig struct {
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	Title         string `yaml:"title"`
	Resizable     bool   `yaml:"resizable"`
	CaptureCursor bool   `yaml:"capture_cursor"` // Mouse-look with a hidden pointer
}

// CameraConfig defines the view and how input moves it.
type CameraConfig struct {
	PlaneLength      float64 `yaml:"plane_length"`      // 0.66 gives a ~66 degree FOV
	MoveSpeed        float64 `yaml:"move_speed"`        // Grid units per frame
	RotateSpeed      float64 `yaml:"rotate_speed"`      // Radians per unit of turn
	MouseSensitivity float64 `yaml:"mouse_sensitivity"` // Turn units per pixel of horizontal motion
	KeyTurnRate      float64 `yaml:"key_turn_rate"`     // Turn units per frame while a turn key is held
}

// RenderConfig defines how frames are drawn.
type RenderConfig struct {
	Workers    int     `yaml:"workers"`    // Concurrent column bands, 1 = sequential
	Background string  `yaml:"background"` // Colour behind the walls
	SideShade  float64 `yaml:"side_shade"` // Darkening of north/south wall faces
}

// LevelConfig selects the map.
type LevelConfig struct {
	Path    string `yaml:"path"`     // Level JSON, empty for the built-in map
	DataDir string `yaml:"data_dir"` // Where to look for levels when listing
}

// MaterialConfig defines one wall material.
type MaterialConfig struct {
	Tag     int    `yaml:"tag"`
	Name    string `yaml:"name"`
	Texture string `yaml:"texture"`
	Color   string `yaml:"color"` // "#rrggbb" or an SVG colour name
}

// DefaultConfig returns the settings of the classic 1280x720 view.
func DefaultConfig() *Config {
	return &Config{
		Screen: ScreenConfig{
			Width:         1280,
			Height:        720,
			Title:         "Raycast",
			Resizable:     false,
			CaptureCursor: true,
		},
		Camera: CameraConfig{
			PlaneLength:      0.66,
			MoveSpeed:        0.05,
			RotateSpeed:      0.025,
			MouseSensitivity: -0.1,
			KeyTurnRate:      1.0,
		},
		Render: RenderConfig{
			Workers:    1,
			Background: "#181818",
			SideShade:  0.3,
		},
		Level: LevelConfig{
			DataDir: "data",
		},
		Materials: []MaterialConfig{
			{Tag: 1, Name: "wood", Texture: "pics/wood.png", Color: "saddlebrown"},
			{Tag: 2, Name: "redbrick", Texture: "pics/redbrick.png", Color: "firebrick"},
			{Tag: 3, Name: "bluestone", Texture: "pics/bluestone.png", Color: "steelblue"},
		},
	}
}

// LoadConfig loads settings from a YAML file. A missing file yields the
// defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return config, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	config := DefaultConfig() // Start with defaults
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	var errs []error

	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height))
	}
	if c.Camera.PlaneLength <= 0 {
		errs = append(errs, fmt.Errorf("camera.plane_length must be positive, got %v", c.Camera.PlaneLength))
	}
	if c.Camera.MoveSpeed <= 0 || c.Camera.MoveSpeed >= 1 {
		errs = append(errs, fmt.Errorf("camera.move_speed must be in (0, 1), got %v", c.Camera.MoveSpeed))
	}
	if c.Camera.RotateSpeed <= 0 {
		errs = append(errs, fmt.Errorf("camera.rotate_speed must be positive, got %v", c.Camera.RotateSpeed))
	}
	if c.Render.Workers < 1 {
		errs = append(errs, fmt.Errorf("render.workers must be at least 1, got %d", c.Render.Workers))
	}
	if c.Render.SideShade < 0 || c.Render.SideShade > 1 {
		errs = append(errs, fmt.Errorf("render.side_shade must be in [0, 1], got %v", c.Render.SideShade))
	}
	if _, err := ParseColor(c.Render.Background); err != nil {
		errs = append(errs, fmt.Errorf("render.background: %w", err))
	}

	seen := make(map[int]bool)
	for i, m := range c.Materials {
		if m.Tag < 1 || m.Tag > 255 {
			errs = append(errs, fmt.Errorf("materials[%d]: tag %d out of range 1-255", i, m.Tag))
		}
		if seen[m.Tag] {
			errs = append(errs, fmt.Errorf("materials[%d]: duplicate tag %d", i, m.Tag))
		}
		seen[m.Tag] = true
		if m.Texture == "" && m.Color == "" {
			errs = append(errs, fmt.Errorf("materials[%d]: needs a texture or a color", i))
		}
		if m.Color != "" {
			if _, err := ParseColor(m.Color); err != nil {
				errs = append(errs, fmt.Errorf("materials[%d]: %w", i, err))
			}
		}
	}

	return errors.Join(errs...)
}

// BackgroundColor returns the parsed background colour.
func (c *Config) BackgroundColor() color.RGBA {
	clr, err := ParseColor(c.Render.Background)
	if err != nil {
		return color.RGBA{A: 255}
	}
	return clr
}

// MaterialSpecs converts the material table for the registry. With flat
// set, textures are dropped and only colours are used.
func (c *Config) MaterialSpecs(flat bool) ([]material.Spec, error) {
	specs := make([]material.Spec, 0, len(c.Materials))
	for _, m := range c.Materials {
		spec := material.Spec{
			Tag:     uint8(m.Tag),
			Name:    m.Name,
			Texture: m.Texture,
			Color:   color.RGBA{128, 128, 128, 255},
		}
		if m.Color != "" {
			clr, err := ParseColor(m.Color)
			if err != nil {
				return nil, fmt.Errorf("material %d: %w", m.Tag, err)
			}
			spec.Color = clr
		}
		if flat {
			spec.Texture = ""
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// ParseColor accepts "#rrggbb" or an SVG colour name such as "firebrick".
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return color.RGBA{}, fmt.Errorf("empty color")
	}

	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 255}, nil
	}

	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("unknown color name %q", s)
}

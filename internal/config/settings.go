package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// maxFileSize caps the config file we are willing to parse
const maxFileSize = 1 << 20

// Settings is the per-demo configuration. Every field may be overridden by
// an optional YAML file; anything left out keeps the demo's default.
type Settings struct {
	Window     WindowSettings  `yaml:"window"`
	Assets     AssetSettings   `yaml:"assets"`
	Texture    TextureSettings `yaml:"texture"`
	ClearColor [4]float32      `yaml:"clear_color"`
	FPSLimit   int             `yaml:"fps_limit"`
	VSync      bool            `yaml:"vsync"`
	LogLevel   string          `yaml:"log_level"`
}

type WindowSettings struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// AssetSettings lists the files loaded at startup, relative to the working directory
type AssetSettings struct {
	ShadersDir   string `yaml:"shaders_dir"`
	VertexShader string `yaml:"vertex_shader"`
	FragShader   string `yaml:"fragment_shader"`
	Texture      string `yaml:"texture"`
}

type TextureSettings struct {
	Wrap   string `yaml:"wrap"`   // repeat, clamp or mirror
	Filter string `yaml:"filter"` // linear or nearest
	FlipY  bool   `yaml:"flip_y"`
}

// QuadrantDefaults returns the defaults of the quadrant clear demo
func QuadrantDefaults() Settings {
	return Settings{
		Window:     WindowSettings{Width: 500, Height: 500, Title: "Quadrant clear"},
		ClearColor: [4]float32{0, 0, 0, 1},
		VSync:      true,
		LogLevel:   "info",
	}
}

// TexcoordDefaults returns the defaults of the textured rectangle demo
func TexcoordDefaults() Settings {
	return Settings{
		Window: WindowSettings{Width: 700, Height: 700, Title: "Texture coordinates"},
		Assets: AssetSettings{
			ShadersDir:   "assets/shaders",
			VertexShader: "texcoord/texcoord.vert",
			FragShader:   "texcoord/texcoord.frag",
			Texture:      "assets/textures/balloon.png",
		},
		Texture:    TextureSettings{Wrap: "repeat", Filter: "linear", FlipY: true},
		ClearColor: [4]float32{0.1, 0.2, 0.3, 1.0},
		VSync:      true,
		LogLevel:   "info",
	}
}

// Load reads the YAML file at path on top of defaults.
// An empty path or a missing file returns defaults unchanged.
func Load(path string, defaults Settings) (Settings, error) {
	if path == "" {
		return defaults, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaults, nil
		}
		return defaults, fmt.Errorf("stat config: %w", err)
	}
	if info.Size() > maxFileSize {
		return defaults, fmt.Errorf("config file %s too large (%d bytes)", path, info.Size())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return defaults, fmt.Errorf("read config: %w", err)
	}

	s := defaults
	if err := yaml.Unmarshal(data, &s); err != nil {
		return defaults, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return defaults, err
	}
	return s, nil
}

// Validate rejects settings no demo can run with
func (s Settings) Validate() error {
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", s.Window.Width, s.Window.Height)
	}
	switch s.Texture.Wrap {
	case "", "repeat", "clamp", "mirror":
	default:
		return fmt.Errorf("unknown texture wrap mode %q", s.Texture.Wrap)
	}
	switch s.Texture.Filter {
	case "", "linear", "nearest":
	default:
		return fmt.Errorf("unknown texture filter %q", s.Texture.Filter)
	}
	for i, c := range s.ClearColor {
		if c < 0 || c > 1 {
			return fmt.Errorf("clear_color[%d] = %v out of range [0,1]", i, c)
		}
	}
	return nil
}

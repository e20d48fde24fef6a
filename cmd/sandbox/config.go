package main

import (
	"os"

	"github.com/hubastard/tint/engine/colors"
	"github.com/hubastard/tint/engine/core"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidConfig is returned when the sandbox config has unusable values.
	ErrInvalidConfig = zerr.New("invalid sandbox config")

	// ErrDuplicateMarkID is returned when two senior shaders share a mark ID.
	ErrDuplicateMarkID = zerr.New("duplicate senior mark id")
)

type seniorShader struct {
	MarkID   int    `yaml:"mark_id"`
	Fragment string `yaml:"fragment"`
}

type sandboxConfig struct {
	Window       core.Config    `yaml:"window"`
	VertexShader string         `yaml:"vertex_shader"`
	Columns      int            `yaml:"columns"`
	Swatches     []colors.Color `yaml:"swatches"`
	Senior       []seniorShader `yaml:"senior"`
}

func defaultConfig() sandboxConfig {
	return sandboxConfig{
		Window: core.Config{
			Title:      "tint shader cache",
			Width:      1280,
			Height:     720,
			VSync:      true,
			ClearColor: colors.DarkGray,
		},
		Columns: 4,
		Swatches: []colors.Color{
			colors.Red, colors.Green, colors.Blue, colors.Yellow,
			colors.Magenta, colors.Cyan, colors.White, colors.Gray,
		},
	}
}

// loadConfig overlays the YAML file at path onto the defaults.
// An empty path returns the defaults.
func loadConfig(path string) (sandboxConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, zerr.With(zerr.Wrap(err, "read sandbox config"), "path", path)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, zerr.With(zerr.Wrap(err, "parse sandbox config"), "path", path)
	}
	if err := cfg.validate(); err != nil {
		return cfg, zerr.With(err, "path", path)
	}
	return cfg, nil
}

func (c sandboxConfig) validate() error {
	if c.Columns < 1 {
		return zerr.With(zerr.Wrap(ErrInvalidConfig, "columns must be positive"), "columns", c.Columns)
	}
	if c.Window.Width < 1 || c.Window.Height < 1 {
		err := zerr.Wrap(ErrInvalidConfig, "window size must be positive")
		return zerr.With(zerr.With(err, "width", c.Window.Width), "height", c.Window.Height)
	}
	// Reusing a mark ID would replace a cached program without releasing it.
	seen := make(map[int]struct{}, len(c.Senior))
	for _, s := range c.Senior {
		if _, dup := seen[s.MarkID]; dup {
			return zerr.With(zerr.Wrap(ErrDuplicateMarkID, "validate senior shaders"), "mark_id", s.MarkID)
		}
		seen[s.MarkID] = struct{}{}
		if s.Fragment == "" {
			return zerr.With(zerr.Wrap(ErrInvalidConfig, "senior shader needs a fragment file"), "mark_id", s.MarkID)
		}
	}
	return nil
}

// Package config loads render settings from a JSON file, with CLI flags
// taking priority and sensible defaults filling the rest.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	TextureDir string `json:"texture_dir"`
	SceneFile  string `json:"scene_file"` // empty = built-in still life
	OutputPath string `json:"output_path"`

	// Render settings
	RenderSize  int    `json:"render_size"`
	Supersample int    `json:"supersample"`
	Format      string `json:"format"` // "webp" or "png"
	Workers     int    `json:"workers"`
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	TextureDir string
	SceneFile  string
	OutputPath string
	Size       int
	Format     string
	Workers    int
}

// Load reads a JSON config file. Fields not set in the file keep their
// zero values until Resolve fills them.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve applies CLI flag overrides, then defaults for anything still unset.
func (c *Config) Resolve(flags Flags) {
	if flags.TextureDir != "" {
		c.TextureDir = flags.TextureDir
	}
	if flags.SceneFile != "" {
		c.SceneFile = flags.SceneFile
	}
	if flags.OutputPath != "" {
		c.OutputPath = flags.OutputPath
	}
	if flags.Size > 0 {
		c.RenderSize = flags.Size
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.TextureDir == "" {
		c.TextureDir = "textures"
	}
	if c.OutputPath == "" {
		c.OutputPath = "stillife.webp"
	}
	if c.RenderSize <= 0 {
		c.RenderSize = 800
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Format == "" {
		c.Format = "webp"
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

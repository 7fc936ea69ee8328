package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stillife-renderer/internal/config"
)

func TestLoadAndResolve(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"texture_dir": "/assets/tex",
		"render_size": 512,
		"format": "png"
	}`), 0644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	cfg.Resolve(config.Flags{})

	assert.Equal(t, "/assets/tex", cfg.TextureDir)
	assert.Equal(t, 512, cfg.RenderSize)
	assert.Equal(t, "png", cfg.Format)
	assert.Equal(t, 2, cfg.Supersample, "default fills unset fields")
	assert.Positive(t, cfg.Workers)
}

func TestFlagsOverrideFile(t *testing.T) {
	cfg := config.Config{RenderSize: 512, Format: "png"}
	cfg.Resolve(config.Flags{Size: 256, Format: "webp", OutputPath: "out.webp"})

	assert.Equal(t, 256, cfg.RenderSize)
	assert.Equal(t, "webp", cfg.Format)
	assert.Equal(t, "out.webp", cfg.OutputPath)
}

func TestDefaults(t *testing.T) {
	var cfg config.Config
	cfg.Resolve(config.Flags{})

	assert.Equal(t, "textures", cfg.TextureDir)
	assert.Equal(t, "stillife.webp", cfg.OutputPath)
	assert.Equal(t, 800, cfg.RenderSize)
	assert.Equal(t, "webp", cfg.Format)
	assert.Empty(t, cfg.SceneFile, "empty scene file means built-in composition")
}

func TestLoadBadJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{nope"), 0644))

	_, err := config.Load(path)
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

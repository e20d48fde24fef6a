package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hubastard/tint/engine/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

func TestLoadConfig_OverlaysDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "sandbox.yaml", `
window:
  title: swatches
columns: 2
vertex_shader: squash.vert
swatches:
  - [1, 0, 0]
  - [0, 0, 1, 0.5]
senior:
  - mark_id: 42
    fragment: stripes.frag
`)

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "swatches", cfg.Window.Title)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, colors.DarkGray, cfg.Window.ClearColor)
	assert.Equal(t, 2, cfg.Columns)
	assert.Equal(t, "squash.vert", cfg.VertexShader)
	assert.Equal(t, []colors.Color{colors.Red, colors.RGBA(0, 0, 1, 0.5)}, cfg.Swatches)
	assert.Equal(t, []seniorShader{{MarkID: 42, Fragment: "stripes.frag"}}, cfg.Senior)
}

func TestLoadConfig_RepoSandboxConfig(t *testing.T) {
	cfg, err := loadConfig(filepath.Join("..", "..", "assets", "sandbox.yaml"))
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.Swatches)
	assert.Len(t, cfg.Senior, 2)
}

func TestLoadConfig_DuplicateMarkID(t *testing.T) {
	path := writeFile(t, t.TempDir(), "sandbox.yaml", `
senior:
  - mark_id: 1
    fragment: a.frag
  - mark_id: 1
    fragment: b.frag
`)
	_, err := loadConfig(path)
	assert.ErrorIs(t, err, ErrDuplicateMarkID)
}

func TestLoadConfig_Invalid(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"zero columns":     "columns: 0\n",
		"negative width":   "window:\n  width: -1\n",
		"missing fragment": "senior:\n  - mark_id: 3\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := loadConfig(writeFile(t, dir, "c.yaml", body))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadConfig_BadColor(t *testing.T) {
	path := writeFile(t, t.TempDir(), "sandbox.yaml", "swatches:\n  - [1, 0]\n")
	_, err := loadConfig(path)
	assert.ErrorIs(t, err, colors.ErrInvalidColor)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

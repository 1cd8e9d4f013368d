package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	// Create a temporary config file
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")

	configContent := `
atlas:
  max_page_width: 1024
  max_page_height: 512
  padding: 1
ui:
  window:
    width: 1024
    height: 768
render:
  camera_step: 24
`

	err := os.WriteFile(configFile, []byte(configContent), 0644)
	require.NoError(t, err)

	// Reset global state
	cfg = nil
	v = nil

	err = Init(configFile)
	require.NoError(t, err)

	c := Get()
	assert.Equal(t, 1024, c.Atlas.MaxPageWidth)
	assert.Equal(t, 512, c.Atlas.MaxPageHeight)
	assert.Equal(t, 1, c.Atlas.Padding)
	assert.Equal(t, 48, c.Atlas.TileSize, "unset keys fall back to defaults")
	assert.Equal(t, 1024, c.UI.Window.Width)
	assert.Equal(t, 768, c.UI.Window.Height)
	assert.Equal(t, 24, c.Render.CameraStep)
}

func TestInitWithDefaults(t *testing.T) {
	// Reset global state
	cfg = nil
	v = nil

	err := Init(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.NoError(t, err)

	c := Get()
	assert.Equal(t, 2048, c.Atlas.MaxPageWidth)
	assert.Equal(t, 2048, c.Atlas.MaxPageHeight)
	assert.Equal(t, 0, c.Atlas.Padding)
	assert.Equal(t, 48, c.Atlas.TileSize)
	assert.False(t, c.Atlas.DumpPages)
	assert.Equal(t, 800, c.UI.Window.Width)
	assert.Equal(t, "Tile", c.UI.Window.Title)
	assert.True(t, c.Render.WatchShaders)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Atlas: AtlasConfig{
				MaxPageWidth:  2048,
				MaxPageHeight: 2048,
				TileSize:      48,
			},
			UI:     UIConfig{Window: WindowConfig{Width: 800, Height: 600}},
			Render: RenderConfig{CameraStep: 48},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"zero page width", func(c *Config) { c.Atlas.MaxPageWidth = 0 }, true},
		{"negative padding", func(c *Config) { c.Atlas.Padding = -1 }, true},
		{"odd tile size", func(c *Config) { c.Atlas.TileSize = 47 }, true},
		{"page smaller than a tile", func(c *Config) { c.Atlas.MaxPageWidth = 32 }, true},
		{"zero window height", func(c *Config) { c.UI.Window.Height = 0 }, true},
		{"zero camera step", func(c *Config) { c.Render.CameraStep = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := Validate(c)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigFromEnvironment(t *testing.T) {
	cfg = nil
	v = nil

	t.Setenv("AUTOTILE_ATLAS_PADDING", "2")

	err := Init(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 2, Get().Atlas.Padding)
}

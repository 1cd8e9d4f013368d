package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Atlas  AtlasConfig  `mapstructure:"atlas"`
	UI     UIConfig     `mapstructure:"ui"`
	Render RenderConfig `mapstructure:"render"`
	Assets AssetsConfig `mapstructure:"assets"`
}

// AtlasConfig holds texture packing settings. Rotation is intentionally
// not configurable; autotile sheets are orientation-sensitive.
type AtlasConfig struct {
	MaxPageWidth  int    `mapstructure:"max_page_width"`
	MaxPageHeight int    `mapstructure:"max_page_height"`
	Padding       int    `mapstructure:"padding"`
	TileSize      int    `mapstructure:"tile_size"`
	DumpPages     bool   `mapstructure:"dump_pages"`
	DumpDir       string `mapstructure:"dump_dir"`
}

// UIConfig holds UI/client configuration
type UIConfig struct {
	Window WindowConfig `mapstructure:"window"`
}

// WindowConfig holds window settings
type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

// RenderConfig holds frame-loop and shader settings
type RenderConfig struct {
	BackgroundShader string `mapstructure:"background_shader"`
	WatchShaders     bool   `mapstructure:"watch_shaders"`
	CameraStep       int    `mapstructure:"camera_step"`
}

// AssetsConfig holds source image locations
type AssetsConfig struct {
	TextureDir string `mapstructure:"texture_dir"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	// Atlas defaults
	v.SetDefault("atlas.max_page_width", 2048)
	v.SetDefault("atlas.max_page_height", 2048)
	v.SetDefault("atlas.padding", 0)
	v.SetDefault("atlas.tile_size", 48)
	v.SetDefault("atlas.dump_pages", false)
	v.SetDefault("atlas.dump_dir", "data")

	// UI defaults
	v.SetDefault("ui.window.width", 800)
	v.SetDefault("ui.window.height", 600)
	v.SetDefault("ui.window.title", "Tile")

	// Render defaults
	v.SetDefault("render.background_shader", "data/shaders/bg.kage")
	v.SetDefault("render.watch_shaders", true)
	v.SetDefault("render.camera_step", 48)

	// Asset defaults
	v.SetDefault("assets.texture_dir", "data/texture")
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()

	// Set defaults before loading any config
	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Default config locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("AUTOTILE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if configPath != "" {
			// Specific file requested but not found - that's ok, use defaults
		} else if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// For default locations, only ignore ConfigFileNotFoundError
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// WatchConfig enables hot-reloading of config file
func WatchConfig(onChange func()) {
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		v.Unmarshal(cfg)
		if onChange != nil {
			onChange()
		}
	})
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// Validate validates the configuration values
func Validate(c *Config) error {
	if c.Atlas.MaxPageWidth <= 0 || c.Atlas.MaxPageHeight <= 0 {
		return fmt.Errorf("atlas page dimensions must be positive")
	}
	if c.Atlas.Padding < 0 {
		return fmt.Errorf("atlas.padding must be non-negative")
	}
	if c.Atlas.TileSize <= 0 {
		return fmt.Errorf("atlas.tile_size must be positive")
	}
	if c.Atlas.TileSize%2 != 0 {
		return fmt.Errorf("atlas.tile_size must be even (quadrants are half a tile)")
	}
	if c.Atlas.MaxPageWidth < c.Atlas.TileSize || c.Atlas.MaxPageHeight < c.Atlas.TileSize {
		return fmt.Errorf("atlas page must fit at least one tile")
	}

	if c.UI.Window.Width <= 0 || c.UI.Window.Height <= 0 {
		return fmt.Errorf("ui.window dimensions must be positive")
	}

	if c.Render.CameraStep <= 0 {
		return fmt.Errorf("render.camera_step must be positive")
	}

	return nil
}

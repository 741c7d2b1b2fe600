// Package config loads the sandbox configuration from a YAML file,
// environment variables and defaults.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"glsb/gpu"
)

// Config represents the sandbox configuration
type Config struct {
	Window  WindowConfig  `mapstructure:"window"`
	GL      GLConfig      `mapstructure:"gl"`
	Vulkan  VulkanConfig  `mapstructure:"vulkan"`
	Texture TextureConfig `mapstructure:"texture"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
	VSync  bool   `mapstructure:"vsync"`
}

type GLConfig struct {
	Major int  `mapstructure:"major"`
	Minor int  `mapstructure:"minor"`
	Debug bool `mapstructure:"debug"`
	// MaxTransferSize caps single buffer uploads. Zero means the platform
	// limit.
	MaxTransferSize uint64 `mapstructure:"max_transfer_size"`
}

type VulkanConfig struct {
	Validation bool `mapstructure:"validation"`
}

type TextureConfig struct {
	Filter     string `mapstructure:"filter"`
	Mipmaps    bool   `mapstructure:"mipmaps"`
	Wrapping   string `mapstructure:"wrapping"`
	Anisotropy bool   `mapstructure:"anisotropy"`
	// MaxSize scales textures down to at most this many pixels per side.
	// Zero keeps the source size.
	MaxSize int `mapstructure:"max_size"`
}

type LoggingConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

var (
	filters = map[string]gpu.Filter{
		"nearest":   gpu.Nearest,
		"linear":    gpu.Linear,
		"trilinear": gpu.Trilinear,
	}
	wrappings = map[string]gpu.Wrapping{
		"clamp_to_border": gpu.ClampToBorder,
		"clamp_to_edge":   gpu.ClampToEdge,
		"repeat":          gpu.Repeat,
		"mirrored_repeat": gpu.MirroredRepeat,
	}
	levels = []string{"debug", "info", "warn", "error"}
)

// DefaultConfig returns configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "OpenGL sandbox",
			VSync:  true,
		},
		GL: GLConfig{
			Major: 4,
			Minor: 1,
		},
		Texture: TextureConfig{
			Filter:     "linear",
			Mipmaps:    true,
			Wrapping:   "clamp_to_border",
			Anisotropy: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from file, environment, and defaults. Without
// cfgFile, config.yaml is looked up in $HOME/.glsb and the working
// directory and may be absent.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	cfg := DefaultConfig()
	setDefaults(v, cfg)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("finding home directory: %w", err)
		}

		v.AddConfigPath(filepath.Join(home, ".glsb"))
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("GLSB")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.New("window.width and window.height must be positive")
	}

	if version := c.GL.Major*10 + c.GL.Minor; c.GL.Minor < 0 || c.GL.Minor > 9 || version < 33 || version > 46 {
		return fmt.Errorf("gl version %d.%d must be between 3.3 and 4.6", c.GL.Major, c.GL.Minor)
	}

	if c.GL.MaxTransferSize > math.MaxInt {
		return fmt.Errorf("gl.max_transfer_size must be at most %d", uint64(math.MaxInt))
	}

	if _, ok := filters[c.Texture.Filter]; !ok {
		return fmt.Errorf("texture.filter must be one of: %v", sortedKeys(filters))
	}

	if _, ok := wrappings[c.Texture.Wrapping]; !ok {
		return fmt.Errorf("texture.wrapping must be one of: %v", sortedKeys(wrappings))
	}

	if c.Texture.MaxSize < 0 {
		return errors.New("texture.max_size must not be negative")
	}

	if !slices.Contains(levels, c.Logging.Level) {
		return fmt.Errorf("logging.level must be one of: %v", levels)
	}

	return nil
}

// FilterMode returns the texture filter. The configuration must be valid.
func (c TextureConfig) FilterMode() gpu.Filter {
	return filters[c.Filter]
}

// WrapMode returns the texture wrap mode. The configuration must be valid.
func (c TextureConfig) WrapMode() gpu.Wrapping {
	return wrappings[c.Wrapping]
}

// ContextOptions returns the gpu.Context options the configuration asks
// for.
func (c GLConfig) ContextOptions() []gpu.ContextOption {
	if c.MaxTransferSize == 0 {
		return nil
	}
	return []gpu.ContextOption{gpu.WithMaxTransferSize(c.MaxTransferSize)}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("window.width", cfg.Window.Width)
	v.SetDefault("window.height", cfg.Window.Height)
	v.SetDefault("window.title", cfg.Window.Title)
	v.SetDefault("window.vsync", cfg.Window.VSync)

	v.SetDefault("gl.major", cfg.GL.Major)
	v.SetDefault("gl.minor", cfg.GL.Minor)
	v.SetDefault("gl.debug", cfg.GL.Debug)
	v.SetDefault("gl.max_transfer_size", cfg.GL.MaxTransferSize)

	v.SetDefault("vulkan.validation", cfg.Vulkan.Validation)

	v.SetDefault("texture.filter", cfg.Texture.Filter)
	v.SetDefault("texture.mipmaps", cfg.Texture.Mipmaps)
	v.SetDefault("texture.wrapping", cfg.Texture.Wrapping)
	v.SetDefault("texture.anisotropy", cfg.Texture.Anisotropy)
	v.SetDefault("texture.max_size", cfg.Texture.MaxSize)

	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.development", cfg.Logging.Development)
}

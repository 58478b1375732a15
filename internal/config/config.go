// Package config loads the game configuration: embedded YAML defaults, an
// optional YAML override file, then environment variables (a .env file in the
// working directory is honored).
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"chosenoffset.com/makeescape/internal/simulation"
)

//go:embed defaults/makeescape.yaml
var defaultYAML []byte

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Environment overrides.
const (
	EnvAssetsDir = "MAKEESCAPE_ASSETS_DIR"
	EnvLogLevel  = "MAKEESCAPE_LOG_LEVEL"
)

// Config is the full configuration.
type Config struct {
	Window     WindowConfig      `yaml:"window"`
	Assets     AssetsConfig      `yaml:"assets"`
	Simulation simulation.Config `yaml:"simulation"`
	Log        LogConfig         `yaml:"log"`
}

// WindowConfig sizes the game window.
type WindowConfig struct {
	Title  string `yaml:"title" validate:"required"`
	Width  int    `yaml:"width" validate:"gte=160,lte=3840"`
	Height int    `yaml:"height" validate:"gte=120,lte=2160"`
}

// AssetsConfig locates the atlas image and its sprite table.
type AssetsConfig struct {
	Dir         string `yaml:"dir" validate:"required"`
	Atlas       string `yaml:"atlas" validate:"required"`
	Sprites     string `yaml:"sprites" validate:"required"`
	AtlasWidth  int    `yaml:"atlas_width" validate:"gt=0"`
	AtlasHeight int    `yaml:"atlas_height" validate:"gt=0"`
}

// AtlasPath is the atlas image path.
func (a AssetsConfig) AtlasPath() string {
	return filepath.Join(a.Dir, a.Atlas)
}

// SpritesPath is the sprite table path.
func (a AssetsConfig) SpritesPath() string {
	return filepath.Join(a.Dir, a.Sprites)
}

// LogConfig sets the root logger.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

// DefaultConfig returns the embedded defaults.
func DefaultConfig() *Config {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultYAML, cfg); err != nil {
		panic(fmt.Sprintf("embedded defaults: %v", err))
	}
	return cfg
}

// Load builds the configuration. An empty path skips the override file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	// A missing .env is fine.
	_ = godotenv.Load()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvAssetsDir); v != "" {
		c.Assets.Dir = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
}

var validate = validator.New()

// Validate checks every field against its tags.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	e := verrs[0]
	return fmt.Errorf("%w: %s failed %q (got %v)", ErrInvalid, e.Namespace(), e.Tag(), e.Value())
}

// Package config loads wordspin configuration from TOML files.
//
// A config file lets users pin canvas dimensions, theming, and engine
// tuning once instead of repeating flags. Flags always win over file
// values; file values win over defaults.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"

	"github.com/matzehuels/wordspin/pkg/errors"
)

// Limits applied after loading. Values outside these ranges are clamped
// rather than rejected so a hand-edited file never breaks the CLI.
const (
	MinMaxWords = 10
	MaxMaxWords = 500

	DefaultWidth    = 800
	DefaultHeight   = 600
	DefaultMaxWords = 100
	DefaultSeed     = 42
)

// Config holds all file-configurable settings.
type Config struct {
	Canvas CanvasConfig `toml:"canvas"`
	Words  WordsConfig  `toml:"words"`
	Style  StyleConfig  `toml:"style"`
	Engine EngineConfig `toml:"engine"`
	Cache  CacheConfig  `toml:"cache"`
}

// CanvasConfig sets the output dimensions.
type CanvasConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// WordsConfig tunes tokenization and ranking.
type WordsConfig struct {
	MaxWords  int      `toml:"max_words"`
	StopWords []string `toml:"stop_words"`
}

// StyleConfig selects theme, fonts, and color handling.
type StyleConfig struct {
	Theme      string `toml:"theme"`
	FontPath   string `toml:"font_path"`
	Monochrome bool   `toml:"monochrome"`
	NoRotate   bool   `toml:"no_rotate"`
}

// EngineConfig exposes placement tuning knobs. Zero values mean
// "use the engine defaults".
type EngineConfig struct {
	Seed         int64   `toml:"seed"`
	RotateProb   float64 `toml:"rotate_prob"`
	Granularity  int     `toml:"granularity"`
	DistanceStep int     `toml:"distance_step"`
	CarryDivisor int     `toml:"carry_divisor"`
}

// CacheConfig selects the artifact cache backend.
type CacheConfig struct {
	Disabled  bool   `toml:"disabled"`
	Dir       string `toml:"dir"`
	RedisAddr string `toml:"redis_addr"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Canvas: CanvasConfig{Width: DefaultWidth, Height: DefaultHeight},
		Words:  WordsConfig{MaxWords: DefaultMaxWords},
		Style:  StyleConfig{Theme: "classic"},
		Engine: EngineConfig{Seed: DefaultSeed},
	}
}

// DefaultPath returns the per-user config file location, following the
// XDG base-directory convention.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "wordspin", "config.toml")
}

// Load reads a TOML config from path, layered over Default.
// An empty path tries DefaultPath; a missing file at the default
// location is not an error, a missing explicit path is.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if explicit {
			return nil, errors.New(errors.ErrCodeFileNotFound, "config file not found: %s", path)
		}
		return Default(), nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read config")
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config")
	}
	cfg.clamp()
	return cfg, nil
}

// clamp pulls out-of-range values back into bounds.
func (c *Config) clamp() {
	if c.Words.MaxWords < MinMaxWords {
		c.Words.MaxWords = MinMaxWords
	}
	if c.Words.MaxWords > MaxMaxWords {
		c.Words.MaxWords = MaxMaxWords
	}
	if c.Canvas.Width <= 0 {
		c.Canvas.Width = DefaultWidth
	}
	if c.Canvas.Height <= 0 {
		c.Canvas.Height = DefaultHeight
	}
}

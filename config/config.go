package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the runtime knobs. Everything has a default so the app runs
// with no environment set; there are no config files.
type Config struct {
	OutputDir      string  `envconfig:"HEXAPICTURES_OUTPUT_DIR" default:"frames"`
	ScreenFraction float64 `envconfig:"HEXAPICTURES_SCREEN_FRACTION" default:"0.75"`
	WindowTitle    string  `envconfig:"HEXAPICTURES_TITLE" default:"HexaPictures"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	if cfg.ScreenFraction <= 0 || cfg.ScreenFraction > 1 {
		return Config{}, fmt.Errorf("screen fraction %v out of range (0, 1]", cfg.ScreenFraction)
	}
	return cfg, nil
}

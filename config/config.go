package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/viper"

	"github.com/domino14/heapsolver/game"
)

// Config holds the runtime configuration for the solver. Values come
// from defaults, then an optional heapsolver.yaml in the working
// directory, then HEAPSOLVER_-prefixed environment variables.
type Config struct {
	// Debug enables solver progress logging.
	Debug bool
	// Evolution prints the full table after every solver round.
	Evolution bool
	// Bounds are the inclusive per-heap maxima. Always four heaps.
	Bounds []int
}

func DefaultConfig() *Config {
	b := game.DefaultBounds()
	return &Config{
		Bounds: []int{int(b[0]), int(b[1]), int(b[2]), int(b[3])},
	}
}

// Load populates the config. A missing config file is not an error;
// anything else (unreadable file, malformed yaml) is.
func (c *Config) Load() error {
	v := viper.New()

	defaults := game.DefaultBounds()
	v.SetDefault("debug", false)
	v.SetDefault("evolution", false)
	v.SetDefault("bounds", []int{
		int(defaults[0]), int(defaults[1]), int(defaults[2]), int(defaults[3]),
	})

	v.SetEnvPrefix("heapsolver")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("heapsolver")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}

	return v.Unmarshal(c)
}

// GameBounds validates the configured bounds and converts them to the
// game's bounds type.
func (c *Config) GameBounds() (game.Bounds, error) {
	if len(c.Bounds) != game.NumHeaps {
		return game.Bounds{}, fmt.Errorf("expected %d heap bounds, got %d", game.NumHeaps, len(c.Bounds))
	}
	var b game.Bounds
	for i, max := range c.Bounds {
		if max < 0 || max > math.MaxUint8 {
			return game.Bounds{}, fmt.Errorf("heap %d bound %d out of range", i, max)
		}
		b[i] = uint8(max)
	}
	return b, nil
}

package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration for the game
type Config struct {
	Width          int           `json:"width"`
	Height         int           `json:"height"`
	CellSize       int           `json:"cell_size"`
	CellColor      string        `json:"cell_color"`
	ShowGrid       bool          `json:"show_grid"`
	FrameRate      time.Duration `json:"frame_rate"`
	UseMemoryPool  bool          `json:"use_memory_pool"`
	RandomDensity  float64       `json:"random_density"`
	MaxGenerations int           `json:"max_generations"`
	Seed           int64         `json:"seed"`
	Interactive    bool          `json:"interactive"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:          10,
		Height:         10,
		CellSize:       20,
		CellColor:      "#000000",
		ShowGrid:       true,
		FrameRate:      100 * time.Millisecond,
		UseMemoryPool:  true,
		RandomDensity:  0.3,
		MaxGenerations: 1000,
		Seed:           0,
		Interactive:    false,
	}
}

// Validate reports the first setting that cannot drive an engine
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("[Validate] grid must be at least 1x1, got %dx%d", c.Width, c.Height)
	}
	if c.CellSize <= 0 {
		return errors.Errorf("[Validate] cell_size must be positive, got %d", c.CellSize)
	}
	if c.FrameRate < 0 {
		return errors.Errorf("[Validate] frame_rate must not be negative, got %s", c.FrameRate)
	}
	if c.RandomDensity < 0 || c.RandomDensity > 1 {
		return errors.Errorf("[Validate] random_density must be within [0,1], got %v", c.RandomDensity)
	}
	if _, err := ParseHexColor(c.CellColor); err != nil {
		return errors.Wrap(err, "[Validate] cell_color")
	}
	return nil
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid config in file: %+v", filename)
	}

	return config, nil
}

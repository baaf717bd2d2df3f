package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol3d/rules"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the configuration for the simulation and its terminal driver
type Config struct {
	WorldSize       int           `json:"world_size"`
	Width           int           `json:"width"`
	Height          int           `json:"height"`
	Depth           int           `json:"depth"`
	StartPercentage int           `json:"start_percentage"`
	WrapAround      bool          `json:"wrap_around"`
	Rules           rules.Config  `json:"rules"`
	FrameRate       time.Duration `json:"frame_rate"`
	TPS             int           `json:"tps"`
	AnimationOn     bool          `json:"animation_on"`
	StopWhenStalled bool          `json:"stop_when_stalled"`
	DetectCycles    bool          `json:"detect_cycles"`
	CycleWindow     int           `json:"cycle_window"`
	Workers         int           `json:"workers"`
	Seed            int64         `json:"seed"`
	MaxGenerations  int           `json:"max_generations"`
	ShowLayers      int           `json:"show_layers"`
	Interactive     bool          `json:"interactive"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		WorldSize:       20,
		StartPercentage: 30,
		WrapAround:      true,
		Rules:           rules.DefaultConfig(),
		FrameRate:       100 * time.Millisecond,
		TPS:             10,
		AnimationOn:     true,
		StopWhenStalled: true,
		DetectCycles:    true,
		CycleWindow:     5,
		Workers:         0, // One per CPU
		Seed:            0, // Time based
		MaxGenerations:  1000,
		ShowLayers:      4,
		Interactive:     false,
	}
}

// LoadConfig loads configuration from JSON file on top of the defaults
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
		return config, errors.Wrapf(err, "[LoadConfig] invalid values in file: %+v", filename)
	}

	return config, nil
}

// Dimensions returns the grid extents, falling back to WorldSize for unset axes
func (c Config) Dimensions() (width, height, depth int) {
	width, height, depth = c.Width, c.Height, c.Depth
	if width == 0 {
		width = c.WorldSize
	}
	if height == 0 {
		height = c.WorldSize
	}
	if depth == 0 {
		depth = c.WorldSize
	}
	return
}

// Validate clamps tunable values into range and rejects unusable grid shapes
func (c *Config) Validate() error {
	w, h, d := c.Dimensions()
	if w <= 0 || h <= 0 || d <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] grid %dx%dx%d", w, h, d)
	}
	if c.FrameRate < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative frame_rate %v", c.FrameRate)
	}

	c.Rules = c.Rules.Clamp()
	c.StartPercentage = min(max(c.StartPercentage, 0), 100)
	if c.TPS <= 0 {
		c.TPS = DefaultConfig().TPS
	}
	if c.CycleWindow <= 0 {
		c.CycleWindow = DefaultConfig().CycleWindow
	}
	return nil
}

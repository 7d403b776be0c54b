package collide

import (
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/akmonengine/collide/epa"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Config.Validate
var ErrInvalidConfig = errors.New("collide: invalid config")

// Config holds the tunables of a Detector
type Config struct {
	// Workers bounds the goroutines used by CollidePairs
	Workers  int          `yaml:"workers"`
	LogLevel string       `yaml:"log_level"`
	EPA      epa.Settings `yaml:"epa"`
}

// DefaultConfig uses one worker per CPU and the default EPA settings
func DefaultConfig() Config {
	return Config{
		Workers:  runtime.NumCPU(),
		LogLevel: "info",
		EPA:      epa.DefaultSettings(),
	}
}

// LoadConfig decodes a YAML document on top of DefaultConfig and validates the result.
// Unknown keys are rejected. An empty document yields the defaults.
func LoadConfig(r io.Reader) (Config, error) {
	config := DefaultConfig()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// Validate checks every field and reports the first invalid one.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidConfig, c.Workers)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrInvalidConfig, err)
	}
	if c.EPA.MaxIterations < 1 {
		return fmt.Errorf("%w: epa.max_iterations must be at least 1, got %d", ErrInvalidConfig, c.EPA.MaxIterations)
	}
	if c.EPA.Tolerance <= 0 {
		return fmt.Errorf("%w: epa.tolerance must be positive, got %v", ErrInvalidConfig, c.EPA.Tolerance)
	}
	if c.EPA.DepthBias <= 0 {
		return fmt.Errorf("%w: epa.depth_bias must be positive, got %v", ErrInvalidConfig, c.EPA.DepthBias)
	}

	return nil
}

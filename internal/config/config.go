package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/sortviz/internal/sorting"
)

// Config captures the tunables of a sortviz session.
type Config struct {
	ArraySize  int
	MinValue   int
	ValueRange int
	Delay      time.Duration
	FrameEvery time.Duration
	Algorithm  sorting.Algorithm
	LogFile    string

	// AlgorithmSet reports whether the file named an algorithm, as opposed
	// to Algorithm holding the default.
	AlgorithmSet bool
}

const (
	defaultConfigPath = "~/.config/sortviz/config.toml"
	defaultLogFile    = "~/.local/state/sortviz/sortviz.log"
	defaultArraySize  = 50
	defaultMinValue   = 10
	defaultValueRange = 300
	defaultDelayMS    = 50
	defaultFrameMS    = 33

	maxArraySize = 500
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		ArraySize:  defaultArraySize,
		MinValue:   defaultMinValue,
		ValueRange: defaultValueRange,
		Delay:      defaultDelayMS * time.Millisecond,
		FrameEvery: defaultFrameMS * time.Millisecond,
		Algorithm:  sorting.Bubble,
		LogFile:    mustExpand(defaultLogFile),
	}
}

// Load locates and parses the config file, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		ArraySize  *int    `toml:"array_size"`
		MinValue   *int    `toml:"min_value"`
		ValueRange *int    `toml:"value_range"`
		DelayMS    *int    `toml:"delay_ms"`
		FrameMS    *int    `toml:"frame_ms"`
		Algorithm  *string `toml:"algorithm"`
		LogFile    string  `toml:"log_file"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if raw.ArraySize != nil {
		cfg.ArraySize = *raw.ArraySize
	}
	if raw.MinValue != nil {
		cfg.MinValue = *raw.MinValue
	}
	if raw.ValueRange != nil {
		cfg.ValueRange = *raw.ValueRange
	}
	if raw.DelayMS != nil {
		cfg.Delay = time.Duration(*raw.DelayMS) * time.Millisecond
	}
	if raw.FrameMS != nil {
		cfg.FrameEvery = time.Duration(*raw.FrameMS) * time.Millisecond
	}
	if raw.Algorithm != nil {
		if name := strings.TrimSpace(*raw.Algorithm); name != "" {
			alg, err := sorting.ParseAlgorithm(name)
			if err != nil {
				return Config{}, fmt.Errorf("parse config: %w", err)
			}
			cfg.Algorithm = alg
			cfg.AlgorithmSet = true
		}
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", resolved, err)
	}
	return cfg, nil
}

// Validate reports the first out-of-range value.
func (c Config) Validate() error {
	if c.ArraySize < 2 || c.ArraySize > maxArraySize {
		return fmt.Errorf("array_size must be between 2 and %d, got %d", maxArraySize, c.ArraySize)
	}
	if c.ValueRange < 1 {
		return fmt.Errorf("value_range must be at least 1, got %d", c.ValueRange)
	}
	if c.Delay < 0 {
		return fmt.Errorf("delay_ms must not be negative, got %d", c.Delay.Milliseconds())
	}
	if c.FrameEvery <= 0 {
		return fmt.Errorf("frame_ms must be positive, got %d", c.FrameEvery.Milliseconds())
	}
	return nil
}

// MaxValue returns the exclusive upper bound of generated values.
func (c Config) MaxValue() int {
	return c.MinValue + c.ValueRange
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}

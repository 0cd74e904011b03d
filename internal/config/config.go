// Package config loads lagfit run configurations from YAML files.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-lagfit/dsp/conv"
	"github.com/cwbudde/algo-lagfit/dsp/signal"
	"github.com/cwbudde/algo-lagfit/model"
)

// RunConfig describes one model evaluation run.
type RunConfig struct {
	// Params is the parameter tuple to evaluate.
	Params model.Params `json:"params" yaml:"params"`

	// Method is the convolution algorithm: "fft" or "discrete".
	Method string `json:"method" yaml:"method"`

	// BlockSize switches the fft method to overlap-add when > 0.
	BlockSize int `json:"block_size" yaml:"block_size"`

	// Length is the number of samples of the generated probe input.
	Length int `json:"length" yaml:"length"`

	// Probe selects the probe input: "step", "impulse", "ones" or "noise".
	Probe string `json:"probe" yaml:"probe"`

	// Seed seeds the noise probe.
	Seed int64 `json:"seed" yaml:"seed"`

	// Logging configures the command's stderr logger.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	// Level is "info", "debug" or "trace".
	Level string `json:"level" yaml:"level"`
}

// Default returns a RunConfig with sensible defaults.
func Default() *RunConfig {
	return &RunConfig{
		Params: model.Params{
			A:         1,
			N:         -1,
			C:         0,
			TrimRatio: 100,
		},
		Method: conv.MethodFFT.String(),
		Length: 64,
		Probe:  signal.ProbeStep.String(),
		Seed:   1,
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load returns the defaults, overlaid with path when it is non-empty, then
// with environment variables.
func Load(path string) (*RunConfig, error) {
	config := Default()

	if path != "" {
		fileConfig, err := LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
		config = fileConfig
	}

	applyEnvOverrides(config)

	return config, nil
}

// LoadFromFile loads configuration from a specific YAML file.
func LoadFromFile(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return config, nil
}

// ConvMethod parses the configured method.
func (c *RunConfig) ConvMethod() (conv.Method, error) {
	return conv.ParseMethod(c.Method)
}

// SignalProbe parses the configured probe.
func (c *RunConfig) SignalProbe() (signal.Probe, error) {
	return signal.ParseProbe(c.Probe)
}

// Validate checks that the configuration is valid.
func (c *RunConfig) Validate() error {
	if err := c.Params.Validate(); err != nil {
		return err
	}

	if _, err := c.ConvMethod(); err != nil {
		return err
	}

	if c.BlockSize < 0 {
		return fmt.Errorf("block_size must be non-negative, got %d", c.BlockSize)
	}

	if c.Length < 1 {
		return fmt.Errorf("length must be at least 1, got %d", c.Length)
	}

	if _, err := c.SignalProbe(); err != nil {
		return err
	}

	validLevels := map[string]bool{"info": true, "debug": true, "trace": true}
	if c.Logging.Level != "" && !validLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, or empty for default)", c.Logging.Level)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(config *RunConfig) {
	if v := os.Getenv("LAGFIT_METHOD"); v != "" {
		config.Method = v
	}

	if v := os.Getenv("LAGFIT_BLOCK_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.BlockSize = n
		}
	}

	if v := os.Getenv("LAGFIT_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}
}

package model

import "github.com/cwbudde/algo-lagfit/dsp/conv"

// Config defines how a Model convolves.
type Config struct {
	Method    conv.Method
	BlockSize int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig uses a single FFT per evaluation.
func DefaultConfig() Config {
	return Config{
		Method: conv.MethodFFT,
	}
}

// WithMethod selects the convolution algorithm.
func WithMethod(m conv.Method) Option {
	return func(cfg *Config) {
		cfg.Method = m
	}
}

// WithBlockSize makes MethodFFT use overlap-add with the given block size.
// Non-positive sizes keep the single-transform path.
func WithBlockSize(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.BlockSize = n
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

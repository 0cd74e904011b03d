package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-lagfit/dsp/signal"
	"github.com/cwbudde/algo-lagfit/internal/config"
	"github.com/cwbudde/algo-lagfit/internal/logging"
	"github.com/cwbudde/algo-lagfit/model"
)

// addParamFlags registers the parameter flags shared by the model commands.
func addParamFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("a", 0, "Kernel scale a")
	cmd.Flags().Float64("n", 0, "Kernel exponent n")
	cmd.Flags().Float64("c", 0, "Background constant c")
	cmd.Flags().Float64("trim-ratio", 0, "Truncate the kernel at max/trim-ratio (> 1)")
	cmd.Flags().Int("length", 0, "Number of samples")
	cmd.Flags().String("method", "", "Convolution method: fft or discrete")
	cmd.Flags().Int("block-size", 0, "Overlap-add block size for the fft method (0 = exact sum)")
}

// addProbeFlags registers the probe input flags.
func addProbeFlags(cmd *cobra.Command) {
	cmd.Flags().String("probe", "", "Probe input: step, impulse, ones or noise")
	cmd.Flags().Int64("seed", 0, "Seed for the noise probe")
}

// loadRunConfig resolves defaults, the --config file, the environment and the
// explicitly set flags into a validated RunConfig and a logger.
func loadRunConfig(cmd *cobra.Command) (*config.RunConfig, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}

	flags := cmd.Flags()
	floatFlags := map[string]*float64{
		"a":          &cfg.Params.A,
		"n":          &cfg.Params.N,
		"c":          &cfg.Params.C,
		"trim-ratio": &cfg.Params.TrimRatio,
	}
	for name, dst := range floatFlags {
		if flags.Changed(name) {
			*dst, _ = flags.GetFloat64(name)
		}
	}
	if flags.Changed("length") {
		cfg.Length, _ = flags.GetInt("length")
	}
	if flags.Changed("block-size") {
		cfg.BlockSize, _ = flags.GetInt("block-size")
	}
	if flags.Changed("method") {
		cfg.Method, _ = flags.GetString("method")
	}
	if flags.Changed("probe") {
		cfg.Probe, _ = flags.GetString("probe")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level, _ = flags.GetString("log-level")
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr())
	logger.Debug("configuration resolved",
		"a", cfg.Params.A,
		"n", cfg.Params.N,
		"c", cfg.Params.C,
		"trim_ratio", cfg.Params.TrimRatio,
		"method", cfg.Method,
		"length", cfg.Length,
	)

	return cfg, logger, nil
}

// newModel builds the model the configuration describes.
func newModel(cfg *config.RunConfig) (*model.Model, error) {
	method, err := cfg.ConvMethod()
	if err != nil {
		return nil, err
	}
	return model.New(model.WithMethod(method), model.WithBlockSize(cfg.BlockSize)), nil
}

// probeInput generates the configured probe series.
func probeInput(cfg *config.RunConfig) ([]float64, error) {
	probe, err := cfg.SignalProbe()
	if err != nil {
		return nil, err
	}
	return signal.NewGenerator(signal.WithSeed(cfg.Seed)).Generate(probe, cfg.Length)
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// jsonFloat encodes NaN and ±Inf as the strings "NaN", "+Inf" and "-Inf".
// Overflowing kernels are valid model input and encoding/json rejects them.
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	case math.IsInf(v, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Inf"`), nil
	}
	return json.Marshal(v)
}

// jsonFloats is a series encoded element-wise like jsonFloat.
type jsonFloats []float64

func (s jsonFloats) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}
	out := make([]jsonFloat, len(s))
	for i, v := range s {
		out[i] = jsonFloat(v)
	}
	return json.Marshal(out)
}

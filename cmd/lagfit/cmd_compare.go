package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-lagfit/dsp/conv"
	"github.com/cwbudde/algo-lagfit/model"
)

type compareReport struct {
	KernelLength int       `json:"kernel_length"`
	MaxAbsDiff   jsonFloat `json:"max_abs_diff"`
	MaxRelDiff   jsonFloat `json:"max_rel_diff"`
	Agree        bool      `json:"agree"`
}

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Check that discrete and fft convolution agree for a parameter tuple",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadRunConfig(cmd)
			if err != nil {
				return err
			}
			tol, _ := cmd.Flags().GetFloat64("tolerance")

			input, err := probeInput(cfg)
			if err != nil {
				return err
			}
			discrete, err := model.New(model.WithMethod(conv.MethodDiscrete)).Evaluate(input, cfg.Params)
			if err != nil {
				return fmt.Errorf("discrete evaluation: %w", err)
			}
			fft, err := model.New(model.WithBlockSize(cfg.BlockSize)).Evaluate(input, cfg.Params)
			if err != nil {
				return fmt.Errorf("fft evaluation: %w", err)
			}

			report := compareReport{
				KernelLength: len(model.New().Kernel(len(input), cfg.Params)),
			}
			maxAbs, maxRel := maxDiffs(fft, discrete)
			report.MaxAbsDiff = jsonFloat(maxAbs)
			report.MaxRelDiff = jsonFloat(maxRel)
			report.Agree = maxRel <= tol
			logger.Info("methods compared", "max_abs_diff", report.MaxAbsDiff, "agree", report.Agree)

			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				if err := writeJSON(cmd, report); err != nil {
					return err
				}
			} else if _, err := fmt.Fprintf(cmd.OutOrStdout(),
				"kernel length %d: max abs diff %.3g, max rel diff %.3g\n",
				report.KernelLength, report.MaxAbsDiff, report.MaxRelDiff); err != nil {
				return err
			}

			if !report.Agree {
				return fmt.Errorf("methods disagree: relative difference %.3g exceeds %.3g", report.MaxRelDiff, tol)
			}
			return nil
		},
	}

	addParamFlags(cmd)
	addProbeFlags(cmd)
	cmd.Flags().Float64("tolerance", 1e-9, "Maximum relative difference")

	return cmd
}

// maxDiffs returns the largest absolute and the largest per-sample relative
// difference of got from want. A sample whose wanted value is zero counts
// its absolute difference. Samples that are NaN in both count as equal.
func maxDiffs(got, want []float64) (maxAbs, maxRel float64) {
	for i := range want {
		if math.IsNaN(got[i]) && math.IsNaN(want[i]) {
			continue
		}
		d := math.Abs(got[i] - want[i])
		if got[i] == want[i] {
			d = 0
		}
		rel := d
		if want[i] != 0 {
			rel = d / math.Abs(want[i])
		}
		maxAbs = math.Max(maxAbs, d)
		maxRel = math.Max(maxRel, rel)
	}
	return maxAbs, maxRel
}

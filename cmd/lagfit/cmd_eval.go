package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-lagfit/internal/logging"
)

type evalReport struct {
	Method string     `json:"method"`
	Probe  string     `json:"probe"`
	Input  jsonFloats `json:"input"`
	Output jsonFloats `json:"output"`
}

func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate the model on a generated probe input",
		Long: `Evaluate y = Conv(a*t^n, input) + c on a probe input.

Probes:
  step     zero for the first sample, ones afterwards
  impulse  a single one at the first sample
  ones     ones everywhere
  noise    seeded white noise in [-1, 1]`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadRunConfig(cmd)
			if err != nil {
				return err
			}

			m, err := newModel(cfg)
			if err != nil {
				return err
			}

			input, err := probeInput(cfg)
			if err != nil {
				return err
			}
			y, err := m.Evaluate(input, cfg.Params)
			if err != nil {
				return fmt.Errorf("evaluating model: %w", err)
			}
			logger.Info("model evaluated", "method", m.Method(), "probe", cfg.Probe, "length", len(y))
			logger.Log(context.Background(), logging.LevelTrace, "prediction", "values", y)

			report := evalReport{
				Method: m.Method().String(),
				Probe:  cfg.Probe,
				Input:  input,
				Output: y,
			}
			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				return writeJSON(cmd, report)
			}
			return printEvalReport(cmd, report)
		},
	}

	addParamFlags(cmd)
	addProbeFlags(cmd)

	return cmd
}

func printEvalReport(cmd *cobra.Command, r evalReport) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Index\tInput\tOutput\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "-----\t-----\t------\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	for i := range r.Output {
		if _, err := fmt.Fprintf(tw, "%d\t%g\t%.9g\n", i, r.Input[i], r.Output[i]); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-lagfit/dsp/kernel"
	"github.com/cwbudde/algo-lagfit/internal/logging"
)

type kernelReport struct {
	Length    int        `json:"length"`
	RawLength int        `json:"raw_length"`
	Truncated bool       `json:"truncated"`
	Peak      jsonFloat  `json:"peak"`
	PeakIndex int        `json:"peak_index"`
	Area      jsonFloat  `json:"area"`
	Threshold jsonFloat  `json:"threshold"`
	Values    jsonFloats `json:"values,omitempty"`
}

func newKernelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kernel",
		Short: "Summarize the truncated power-law kernel for a parameter tuple",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadRunConfig(cmd)
			if err != nil {
				return err
			}

			p := cfg.Params
			stats, g := kernel.Describe(cfg.Length, p.A, p.N, p.TrimRatio)
			logger.Info("kernel built", "length", stats.Length, "raw_length", stats.RawLength)
			logger.Log(context.Background(), logging.LevelTrace, "kernel values", "values", g)

			report := kernelReport{
				Length:    stats.Length,
				RawLength: stats.RawLength,
				Truncated: stats.Truncated(),
				Peak:      jsonFloat(stats.Peak),
				PeakIndex: stats.PeakIndex,
				Area:      jsonFloat(stats.Area),
				Threshold: jsonFloat(stats.Threshold),
			}
			if showValues, _ := cmd.Flags().GetBool("values"); showValues {
				report.Values = g
			}

			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				return writeJSON(cmd, report)
			}
			return printKernelReport(cmd, report)
		},
	}

	addParamFlags(cmd)
	cmd.Flags().Bool("values", false, "Include the kernel samples")

	return cmd
}

func printKernelReport(cmd *cobra.Command, r kernelReport) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Length\tRaw\tTruncated\tPeak\tPeak idx\tArea\tThreshold\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "------\t---\t---------\t----\t--------\t----\t---------\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "%d\t%d\t%t\t%.6g\t%d\t%.6g\t%.6g\n",
		r.Length,
		r.RawLength,
		r.Truncated,
		r.Peak,
		r.PeakIndex,
		r.Area,
		r.Threshold,
	); err != nil {
		return fmt.Errorf("failed to write output row: %w", err)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	if len(r.Values) > 0 {
		out := cmd.OutOrStdout()
		for i, v := range r.Values {
			if _, err := fmt.Fprintf(out, "%d\t%.9g\n", i+1, v); err != nil {
				return fmt.Errorf("failed to write kernel values: %w", err)
			}
		}
	}
	return nil
}

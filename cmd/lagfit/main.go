// Command lagfit inspects power-law lag-response kernels and evaluates the
// model y = Conv(a*x^n, input) + c on generated probe inputs.
//
// Usage:
//
//	lagfit kernel  [flags]   summarize the kernel for a parameter tuple
//	lagfit eval    [flags]   evaluate the model on a generated probe input
//	lagfit compare [flags]   check discrete and fft convolution agree
//	lagfit version
//
// Parameters come from defaults, an optional YAML file (--config), LAGFIT_*
// environment variables and finally explicit flags, in that order.
//
// Examples:
//
//	lagfit kernel --a 1 --n -1.5 --trim-ratio 200 --length 512
//	lagfit eval --config run.yaml --probe impulse --json
//	lagfit compare --length 4096 --n -0.8
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lagfit",
		Short: "Power-law lag-response kernels and convolution models",
		Long: `lagfit builds truncated power-law kernels a*t^n and evaluates the
lag-response model y = Conv(a*t^n, input) + c.

It is a companion to external least-squares fitting: use it to inspect the
kernel a parameter tuple produces and the response it predicts.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("config", "", "YAML run configuration file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: info, debug or trace")

	rootCmd.AddCommand(
		newVersionCmd(),
		newKernelCmd(),
		newEvalCmd(),
		newCompareCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return writeJSON(cmd, map[string]string{"version": version})
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "lagfit version %s\n", version)
			return err
		},
	}
}

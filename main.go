package main

import (
	"fmt"
	"os"

	"github.com/helmcode/fmea-ai/cmd"
	"github.com/spf13/cobra"
)

var (
	version = "v0.1.0" // Overwritten at build time
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fmea-ai",
		Short: "AI-powered Design FMEA",
		Long: `fmea-ai performs a Design Failure Mode and Effects Analysis (DFMEA) on an
engineering system using AI, validating every returned entry against the
IEC 60812:2018 rating scales and RPN thresholds.`,
		SilenceUsage: true,
	}

	// Disable automatic 'completion' command added by cobra
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Add subcommands
	rootCmd.AddCommand(
		cmd.NewAnalyzeCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("fmea-ai version %s\n", version)
		},
	}
}

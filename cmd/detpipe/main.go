package main

import (
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "detpipe",
	Short: "Deterministic fixed-point data pipeline for safety-critical ML",
	Long: `detpipe drives the bit-reproducible data pipeline: permutation,
augmentation, normalization, Merkle commitment and provenance chaining,
all over Q16.16 fixed-point arithmetic with sticky fault tracking.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.AddCommand(runEpochCmd)
	rootCmd.AddCommand(verifyBatchCmd)
	rootCmd.AddCommand(showProvenanceCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

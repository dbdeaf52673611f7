package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "derivkit",
	Short: "Step-tracked symbolic derivations",
	Long: `derivkit wraps symbolic expressions and equations so every
transformation is recorded as a readable derivation step and can be
rendered as annotated mathematical notation.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"trace every recorded step")
}

// newLogger builds the session logger, honoring --verbose.
func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewNop(), nil
}

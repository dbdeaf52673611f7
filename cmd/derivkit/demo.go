package main

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/derivkit/derivkit/derive"
	"github.com/derivkit/derivkit/output"
	"github.com/derivkit/derivkit/symbol"
)

var (
	demoRaw bool
	demoOut string
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a sample equation derivation",
	Long: `Runs a canned derivation session against the equation

    x^2 + 3 = y*(y - 2) + 4

doubling both sides, factoring the right, moving it to the left,
scaling, expanding, and finally swapping the sides. The recorded
history renders as a markdown derivation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		x, y := symbol.Var("x"), symbol.Var("y")
		eq, err := derive.NewEquation(
			symbol.Add(symbol.Pow(x, symbol.Int(2)), symbol.Int(3)),
			symbol.Add(symbol.Mul(y, symbol.Sub(y, symbol.Int(2))), symbol.Int(4)),
			derive.WithLogger(logger),
		)
		if err != nil {
			return err
		}

		md := output.NewMarkdown(output.WithFile(demoOut))
		if err := eq.AttachSink(md, false); err != nil {
			return err
		}

		session := []func() error{
			func() error { return eq.MultiplyBy(2) },
			func() error { return eq.Right().Factor() },
			func() error { return eq.Subtract(eq.Right()) },
			func() error { return eq.MultiplyBy(symbol.Add(symbol.Mul(symbol.Int(5), y), symbol.Int(1))) },
			func() error { return eq.Expand() },
			func() error { return eq.SwapSides() },
		}
		for _, op := range session {
			if err := op(); err != nil {
				return err
			}
		}

		if demoOut != "" {
			if err := md.Close(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "wrote", demoOut)
		}

		if demoRaw {
			fmt.Fprintln(cmd.OutOrStdout(), md.Text())
			return nil
		}

		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err != nil {
			return err
		}
		rendered, err := renderer.Render(md.Text())
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), rendered)
		return nil
	},
}

func init() {
	demoCmd.Flags().BoolVar(&demoRaw, "raw", false, "print the raw markdown instead of rendering it")
	demoCmd.Flags().StringVarP(&demoOut, "out", "o", "", "also write the markdown to a file")
	rootCmd.AddCommand(demoCmd)
}

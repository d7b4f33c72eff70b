package main

import (
	"os"

	"github.com/spf13/cobra"

	"reckon/internal/diagfmt"
	"reckon/internal/driver"
)

var rpnCmd = &cobra.Command{
	Use:   "rpn \"expression\"",
	Short: "Show the postfix form of an expression",
	Long:  `Rpn converts an expression to reverse Polish notation and prints the operator order`,
	Args:  cobra.ExactArgs(1),
	RunE:  runRpn,
}

func runRpn(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(".")
	if err != nil {
		return err
	}

	res := driver.Run(args[0])
	if res.Bag.HasErrors() {
		opts := diagfmt.PrettyOpts{Color: useColor(cmd, cfg, os.Stderr)}
		diagfmt.Pretty(os.Stderr, res.Bag, res.FileSet, opts)
		if res.Postfix == nil {
			return res.Err()
		}
	}
	return diagfmt.FormatPostfixPretty(cmd.OutOrStdout(), res.Postfix)
}

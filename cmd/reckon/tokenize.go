package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"reckon/internal/diagfmt"
	"reckon/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] \"expression\"",
	Short: "Tokenize an arithmetic expression",
	Long:  `Tokenize breaks down an expression into its constituent tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	cfg, err := loadConfig(".")
	if err != nil {
		return err
	}

	res := driver.Run(args[0])
	if res.Bag.HasErrors() {
		opts := diagfmt.PrettyOpts{Color: useColor(cmd, cfg, os.Stderr)}
		diagfmt.Pretty(os.Stderr, res.Bag, res.FileSet, opts)
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), res.Tokens)
	case "json":
		return diagfmt.FormatTokensJSON(cmd.OutOrStdout(), res.Tokens)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

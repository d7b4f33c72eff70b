package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"reckon/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "reckon",
	Short: "Reckon arithmetic expression calculator",
	Long:  `Reckon evaluates arithmetic expressions with operator precedence, parentheses and math functions`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(rpnCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the color setting: the --color flag wins, then
// reckon.toml, then terminal detection.
func useColor(cmd *cobra.Command, cfg appConfig, out *os.File) bool {
	mode, _ := cmd.Root().PersistentFlags().GetString("color")
	if mode == "" {
		mode = cfg.Output.Color
	}
	switch mode {
	case "on":
		return true
	case "off":
		return false
	}
	return isTerminal(out)
}

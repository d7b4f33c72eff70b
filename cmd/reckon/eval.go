package main

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"reckon/internal/diagfmt"
	"reckon/internal/driver"
	"reckon/internal/history"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] \"expression\"",
	Short: "Evaluate an arithmetic expression",
	Long:  `Eval computes the value of an arithmetic expression and prints the result`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runEval,
}

func init() {
	evalCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	evalCmd.Flags().StringP("file", "f", "", "evaluate each line of a file")
	evalCmd.Flags().Int("workers", runtime.NumCPU(), "parallel workers for file evaluation")
}

func runEval(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	filePath, err := cmd.Flags().GetString("file")
	if err != nil {
		return fmt.Errorf("failed to get file flag: %w", err)
	}
	if filePath != "" {
		return runEvalFile(cmd, filePath, format)
	}
	if len(args) != 1 {
		return fmt.Errorf("expected an expression or --file")
	}
	return runEvalExpr(cmd, args[0], format)
}

func runEvalExpr(cmd *cobra.Command, expr string, format string) error {
	cfg, err := loadConfig(".")
	if err != nil {
		return err
	}

	res := driver.Run(expr)
	recordHistory(cfg, res)

	if format == "json" {
		return writeEvalJSON(cmd, res)
	}

	if res.Bag.HasErrors() {
		opts := diagfmt.PrettyOpts{Color: useColor(cmd, cfg, os.Stderr)}
		diagfmt.Pretty(os.Stderr, res.Bag, res.FileSet, opts)
		return res.Err()
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.Output)
	return nil
}

func runEvalFile(cmd *cobra.Command, path string, format string) error {
	workers, err := cmd.Flags().GetInt("workers")
	if err != nil {
		return fmt.Errorf("failed to get workers flag: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")

	results, err := driver.EvaluateLines(cmd.Context(), lines, workers)
	if err != nil {
		return err
	}

	failed := 0
	for _, lr := range results {
		if lr.Skip {
			continue
		}
		if format == "json" {
			if err := writeEvalJSON(cmd, lr.Res); err != nil {
				return err
			}
			if lr.Res.Bag.HasErrors() {
				failed++
			}
			continue
		}
		if evalErr := lr.Res.Err(); evalErr != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "%s = error: %s\n", lr.Expr, evalErr)
			failed++
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", lr.Expr, lr.Res.Output)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d expressions failed", failed, len(results))
	}
	return nil
}

type evalPayload struct {
	Expr   string `json:"expr"`
	Result string `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
	Code   string `json:"code,omitempty"`
}

func writeEvalJSON(cmd *cobra.Command, res *driver.Result) error {
	payload := evalPayload{Expr: res.Expr}
	if d, ok := res.Bag.FirstError(); ok {
		payload.Error = d.Message
		payload.Code = d.Code.ID()
	} else {
		payload.Result = res.Output
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	return enc.Encode(payload)
}

func recordHistory(cfg appConfig, res *driver.Result) {
	store := openHistory(cfg)
	if store == nil {
		return
	}
	rec := history.Record{Expr: res.Expr, Result: res.Output, At: time.Now()}
	if err := res.Err(); err != nil {
		rec.ErrMsg = err.Error()
	}
	// Best effort: history failures never affect the evaluation result.
	_ = store.Append(rec)
}

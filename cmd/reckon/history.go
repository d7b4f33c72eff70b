package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show previously evaluated expressions",
	Long:  `History lists recorded expressions with their results, newest last`,
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().Bool("clear", false, "erase the history file")
	historyCmd.Flags().IntP("last", "n", 0, "show only the last n records")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(".")
	if err != nil {
		return err
	}
	store := openHistory(cfg)
	if store == nil {
		return fmt.Errorf("history is disabled")
	}

	clear, err := cmd.Flags().GetBool("clear")
	if err != nil {
		return fmt.Errorf("failed to get clear flag: %w", err)
	}
	if clear {
		return store.Clear()
	}

	records, err := store.Load()
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	last, err := cmd.Flags().GetInt("last")
	if err != nil {
		return fmt.Errorf("failed to get last flag: %w", err)
	}
	if last > 0 && last < len(records) {
		records = records[len(records)-last:]
	}

	for _, rec := range records {
		if rec.Failed() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s = error: %s\n",
				rec.At.Format("2006-01-02 15:04:05"), rec.Expr, rec.ErrMsg)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s = %s\n",
			rec.At.Format("2006-01-02 15:04:05"), rec.Expr, rec.Result)
	}
	return nil
}

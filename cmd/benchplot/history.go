package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List benchmark summaries saved with plot --save",
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum entries to list")
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := newHistoryStore(viper.GetString("history_path"))
	if err != nil {
		return fmt.Errorf("open history store: %w", err)
	}
	defer store.Close()

	entries, err := store.List(historyLimit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No saved summaries. Run 'benchplot plot --save' first.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tSAVED AT\tCSV\tTARGET\tRUNS\tREDUCTION %\tSPEEDUP\tINCREASE %")
	for _, e := range entries {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%.2f\t%.2f×\t%.2f\n",
			e.ID,
			e.SavedAt.Format("2006-01-02 15:04"),
			e.CSVPath,
			e.TargetID,
			e.Runs,
			e.MeanTimeReductionPct,
			e.MeanSpeedupX,
			e.MeanSpeedIncreasePct)
	}
	return w.Flush()
}

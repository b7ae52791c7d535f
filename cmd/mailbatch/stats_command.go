package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newBatchesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "batches",
		Short: "Show the number of batches and entries in each",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openStore()
			if err != nil {
				return err
			}

			stats := store.Stats()
			out := cmd.OutOrStdout()
			if len(stats.BatchCounts) == 0 {
				fmt.Fprintln(out, "No batches in the database")
				return nil
			}

			rows := make([][]string, 0, len(stats.BatchCounts))
			for i, count := range stats.BatchCounts {
				rows = append(rows, []string{strconv.Itoa(i + 1), strconv.Itoa(count)})
			}
			fmt.Fprintln(out, renderTable([]string{"Batch", "Entries"}, rows, 1))
			fmt.Fprintf(out, "%d %s, %d %s\n",
				len(stats.BatchCounts), plural(len(stats.BatchCounts), "batch", "batches"),
				stats.TotalEntries, plural(stats.TotalEntries, "entry", "entries"))
			return nil
		},
	}
}

func newStatCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stat",
		Short: "Show database statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := ctx.openStore()
			if err != nil {
				return err
			}

			stats := store.Stats()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Database: %s\n", stats.Name)
			fmt.Fprintf(out, "File: %s\n", cfg.ActiveDatabasePath())
			fmt.Fprintf(out, "Last modified: %s\n", stats.LastModified)
			fmt.Fprintf(out, "Batch capacity: %d\n", store.Limit())
			fmt.Fprintf(out, "Total entries: %d in %d %s\n",
				stats.TotalEntries, len(stats.BatchCounts), plural(len(stats.BatchCounts), "batch", "batches"))

			if len(stats.BatchCounts) > 0 {
				rows := make([][]string, 0, len(stats.BatchCounts))
				for i, count := range stats.BatchCounts {
					free := store.Limit() - count
					rows = append(rows, []string{
						strconv.Itoa(i + 1), strconv.Itoa(count), strconv.Itoa(free),
					})
				}
				fmt.Fprintln(out, renderTable([]string{"Batch", "Entries", "Free"}, rows, 1, 2))
			}
			return nil
		},
	}
}

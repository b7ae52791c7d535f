package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newOptimizeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "optimize",
		Short: "Repack all entries into the minimum number of full batches",
		Long: `Rebalance the database so every batch except possibly the last holds
exactly the configured capacity. Entry order is preserved; only batch
boundaries move. Running it twice in a row is a no-op.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openStore()
			if err != nil {
				return err
			}

			before, after := store.Optimize()
			if err := store.Save(); err != nil {
				return fmt.Errorf("save database: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Optimized from %d to %d %s\n",
				before, after, plural(after, "batch", "batches"))
			return nil
		},
	}
}

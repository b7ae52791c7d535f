package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "rem <email>",
		Aliases: []string{"remove"},
		Short:   "Remove an entry from the active database",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openStore()
			if err != nil {
				return err
			}

			removed, err := store.Remove(args[0])
			if err != nil {
				return err
			}
			if err := store.Save(); err != nil {
				return fmt.Errorf("save database: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", removed.FullEntry)
			return nil
		},
	}
}

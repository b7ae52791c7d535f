package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check <pattern>",
		Short: "Find entries matching a regular expression",
		Long: `Search every batch for entries whose email address or canonical text
matches the pattern. Matching is case-insensitive.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openStore()
			if err != nil {
				return err
			}

			pattern := strings.Join(args, " ")
			matches, err := store.Search(pattern)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(matches) == 0 {
				fmt.Fprintf(out, "No entries match %q\n", pattern)
				return nil
			}
			for _, entry := range matches {
				fmt.Fprintf(out, "  %s\n", entry.FullEntry)
			}
			fmt.Fprintf(out, "%d %s matched %q\n",
				len(matches), plural(len(matches), "entry", "entries"), pattern)
			return nil
		},
	}
}

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mailbatch/internal/list"
	"mailbatch/internal/parse"
)

func newAddCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "add <entry>...",
		Short: "Add one or more entries to the active database",
		Long: `Add entries to the active database.

Accepted formats, mixed freely and separated by semicolons:
  mailbatch add 'jane@example.com'
  mailbatch add 'Jane Q. Public <jane@example.com>'
  mailbatch add '"Jane Q. Public" <jane@x.com>; <bob@y.com>; carol@z.com'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			result := parse.Entries(strings.Join(args, " "), logger)
			if len(result.Entries) == 0 {
				if len(result.Skipped) > 0 {
					return fmt.Errorf("no valid entries in input; skipped %d unparseable %s",
						len(result.Skipped), plural(len(result.Skipped), "fragment", "fragments"))
				}
				return errors.New("no entries found in input")
			}

			store, err := ctx.openStore()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			added, duplicates := 0, 0
			for _, entry := range result.Entries {
				outcome, err := store.Insert(entry)
				if err != nil {
					return err
				}
				if outcome == list.InsertDuplicate {
					duplicates++
					fmt.Fprintf(out, "Skipping duplicate: %s\n", entry.Email)
					continue
				}
				added++
				fmt.Fprintf(out, "Added %s\n", entry.FullEntry)
			}

			if added > 0 {
				if err := store.Save(); err != nil {
					return fmt.Errorf("save database: %w", err)
				}
			}

			fmt.Fprintf(out, "Added %d %s (%d duplicate, %d unparseable)\n",
				added, plural(added, "entry", "entries"), duplicates, len(result.Skipped))
			return nil
		},
	}
}

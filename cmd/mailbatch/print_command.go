package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"mailbatch/internal/list"
)

func newPrintCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "print all|<batch> [file]",
		Short: "Print batches in the email client's recipient format",
		Long: `Print entries as recipient lines (First Last <email>;). The trailing
semicolon is omitted on the last entry of each batch so the output can be
pasted directly into a recipient field. With a file argument the output is
written to the file instead of the terminal.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openStore()
			if err != nil {
				return err
			}

			batches, err := selectBatches(store.Collection(), args[0])
			if err != nil {
				return err
			}

			if len(args) == 2 {
				file, err := os.Create(args[1])
				if err != nil {
					return fmt.Errorf("create output file: %w", err)
				}
				if err := writeBatches(file, batches); err != nil {
					file.Close()
					return err
				}
				if err := file.Close(); err != nil {
					return fmt.Errorf("close output file: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d %s to %s\n",
					len(batches), plural(len(batches), "batch", "batches"), args[1])
				return nil
			}

			return writeBatches(cmd.OutOrStdout(), batches)
		},
	}
}

func selectBatches(col *list.Collection, selector string) ([]list.Batch, error) {
	if len(col.Batches) == 0 {
		return nil, fmt.Errorf("database %q has no batches", col.Name)
	}
	if selector == "all" {
		return col.Batches, nil
	}

	number, err := strconv.Atoi(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid batch selector %q (use a batch number or \"all\")", selector)
	}
	if number < 1 || number > len(col.Batches) {
		return nil, fmt.Errorf("batch %d does not exist (available: 1 to %d)", number, len(col.Batches))
	}
	return col.Batches[number-1 : number], nil
}

func writeBatches(w io.Writer, batches []list.Batch) error {
	for i, batch := range batches {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := list.WriteRecipients(w, batch); err != nil {
			return err
		}
	}
	return nil
}

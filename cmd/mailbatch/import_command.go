package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"mailbatch/internal/importer"
)

func newImportCommand(ctx *commandContext) *cobra.Command {
	var sheet string
	var idColumn string
	var nameColumn string
	var emailDomain string
	var dryRun bool
	var preview int

	cmd := &cobra.Command{
		Use:   "import <spreadsheet>",
		Short: "Import entries from a spreadsheet",
		Long: `Import contacts from an .xlsx or .csv export. Each row's id column is
reduced to digits and combined with the email domain into <id>@<domain>;
the name column feeds the entry's name components. Columns can be given as
a header name, an Excel letter, or a zero-based index.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			opts := importer.Options{
				IDColumn:    cfg.Import.IDColumn,
				NameColumn:  cfg.Import.NameColumn,
				EmailDomain: cfg.Import.EmailDomain,
			}
			if cmd.Flags().Changed("id-column") {
				opts.IDColumn = idColumn
			}
			if cmd.Flags().Changed("name-column") {
				opts.NameColumn = nameColumn
			}
			if cmd.Flags().Changed("email-domain") {
				opts.EmailDomain = emailDomain
			}
			if !cmd.Flags().Changed("preview") {
				preview = cfg.Import.PreviewRows
			}

			headers, rows, err := importer.LoadRows(args[0], sheet)
			if err != nil {
				return err
			}
			candidates, err := importer.BuildEntries(headers, rows, opts, logger)
			if err != nil {
				return err
			}
			if len(candidates) == 0 {
				return errors.New("no usable rows found in the spreadsheet")
			}

			store, err := ctx.openStore()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if dryRun {
				fmt.Fprintf(out, "[dry run] Prepared %d unique %s\n",
					len(candidates), plural(len(candidates), "entry", "entries"))
				for i, candidate := range candidates {
					if i >= preview {
						break
					}
					fmt.Fprintf(out, "  Row %d: %s <%s>\n",
						candidate.Row, candidate.Entry.Name, candidate.Entry.Email)
				}
				existing := importer.CountExisting(store, candidates)
				fmt.Fprintf(out, "Already present: %d | new after import: %d\n",
					existing, len(candidates)-existing)
				return nil
			}

			report, err := importer.Apply(store, candidates)
			if err != nil {
				return err
			}
			if report.Added > 0 {
				if err := store.Save(); err != nil {
					return fmt.Errorf("save database: %w", err)
				}
			}

			fmt.Fprintf(out, "Import complete. Added %d new %s; skipped %d already present\n",
				report.Added, plural(report.Added, "contact", "contacts"), report.Skipped)
			return nil
		},
	}

	cmd.Flags().StringVar(&sheet, "sheet", "", "Worksheet name or 0-based index (default: first sheet)")
	cmd.Flags().StringVar(&idColumn, "id-column", "", "Column holding the id (header, letter, or index)")
	cmd.Flags().StringVar(&nameColumn, "name-column", "", "Column holding the full name (header, letter, or index)")
	cmd.Flags().StringVar(&emailDomain, "email-domain", "", "Domain used when synthesizing email addresses")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would be imported without modifying the database")
	cmd.Flags().IntVar(&preview, "preview", 0, "Number of sample rows to display in dry-run mode")
	return cmd
}

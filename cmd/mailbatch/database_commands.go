package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"mailbatch/internal/config"
	"mailbatch/internal/list"
)

func newNewCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "new <name>",
		Short: "Create a new, empty database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			fileName := config.DatabaseFileName(args[0])
			if fileName == "" {
				return fmt.Errorf("invalid database name %q", args[0])
			}
			if err := list.Create(cfg.DatabasePath(fileName), strings.TrimSuffix(fileName, ".json"), time.Now()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created database %s in %s\n", fileName, cfg.Paths.DatabaseDir)
			return nil
		},
	}
}

func newActivateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "activate <name>",
		Short: "Make an existing database the active one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			fileName := config.DatabaseFileName(args[0])
			if fileName == "" {
				return fmt.Errorf("invalid database name %q", args[0])
			}
			if _, err := os.Stat(cfg.DatabasePath(fileName)); err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					return fmt.Errorf("database %s not found in %s; create it with `mailbatch new %s`",
						fileName, cfg.Paths.DatabaseDir, strings.TrimSuffix(fileName, ".json"))
				}
				return fmt.Errorf("stat database: %w", err)
			}

			cfg.List.ActiveDatabase = fileName
			if err := config.Save(cfg, ctx.configFile()); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Database %s is now active\n", fileName)
			return nil
		},
	}
}

// newDelCommand deletes a database after confirmation. The confirm callback
// is injectable so tests can run without a terminal; nil selects the
// interactive TTY prompt.
func newDelCommand(ctx *commandContext, confirm confirmFunc) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "del <name>",
		Short: "Delete a database (asks for confirmation)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			fileName := config.DatabaseFileName(args[0])
			if fileName == "" {
				return fmt.Errorf("invalid database name %q", args[0])
			}
			path := cfg.DatabasePath(fileName)
			if _, err := os.Stat(path); err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					return fmt.Errorf("database %s not found in %s", fileName, cfg.Paths.DatabaseDir)
				}
				return fmt.Errorf("stat database: %w", err)
			}

			out := cmd.OutOrStdout()
			if !yes {
				ask := confirm
				if ask == nil {
					ask = stdinConfirmer(cmd.InOrStdin(), out)
				}
				prompt := fmt.Sprintf("Permanently delete database %s? This cannot be undone. Type 'yes' to confirm: ", fileName)
				if !ask(prompt) {
					fmt.Fprintln(out, "Deletion cancelled")
					return nil
				}
			}

			if err := os.Remove(path); err != nil {
				return fmt.Errorf("delete database: %w", err)
			}
			fmt.Fprintf(out, "Deleted database %s\n", fileName)

			if cfg.List.ActiveDatabase != fileName {
				return nil
			}

			// The active database is gone; fall back to the configured
			// default and make sure it exists.
			defaultFile := config.DatabaseFileName(cfg.List.DefaultDatabase)
			cfg.List.ActiveDatabase = defaultFile
			if err := list.Create(cfg.DatabasePath(defaultFile), cfg.List.DefaultDatabase, time.Now()); err != nil && !errors.Is(err, list.ErrExists) {
				return fmt.Errorf("create default database: %w", err)
			}
			if err := config.Save(cfg, ctx.configFile()); err != nil {
				return err
			}
			fmt.Fprintf(out, "Active database reset to %s\n", defaultFile)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

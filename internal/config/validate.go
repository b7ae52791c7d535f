package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateList(); err != nil {
		return err
	}
	if err := c.validateImport(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateList() error {
	if c.List.MaxBatchSize < 1 {
		return fmt.Errorf("list.max_batch_size must be at least 1, got %d", c.List.MaxBatchSize)
	}
	if c.List.ActiveDatabase == "" {
		return errors.New("list.active_database must name a database file")
	}
	return nil
}

func (c *Config) validateImport() error {
	if c.Import.PreviewRows < 0 {
		return fmt.Errorf("import.preview_rows must not be negative, got %d", c.Import.PreviewRows)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}

package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeList()
	c.normalizeImport()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DatabaseDir) == "" {
		c.Paths.DatabaseDir = defaultDatabaseDir
	}
	if c.Paths.DatabaseDir, err = expandPath(c.Paths.DatabaseDir); err != nil {
		return fmt.Errorf("paths.database_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeList() {
	c.List.ActiveDatabase = strings.TrimSpace(c.List.ActiveDatabase)
	if c.List.ActiveDatabase == "" {
		c.List.ActiveDatabase = defaultDatabaseName + ".json"
	}
	c.List.ActiveDatabase = DatabaseFileName(c.List.ActiveDatabase)

	c.List.DefaultDatabase = strings.TrimSpace(c.List.DefaultDatabase)
	if c.List.DefaultDatabase == "" {
		c.List.DefaultDatabase = defaultDatabaseName
	}
	c.List.DefaultDatabase = strings.TrimSuffix(c.List.DefaultDatabase, ".json")

	if c.List.MaxBatchSize == 0 {
		c.List.MaxBatchSize = defaultMaxBatchSize
	}
}

func (c *Config) normalizeImport() {
	c.Import.EmailDomain = strings.TrimSpace(c.Import.EmailDomain)
	c.Import.IDColumn = strings.TrimSpace(c.Import.IDColumn)
	if c.Import.IDColumn == "" {
		c.Import.IDColumn = defaultImportIDColumn
	}
	c.Import.NameColumn = strings.TrimSpace(c.Import.NameColumn)
	if c.Import.NameColumn == "" {
		c.Import.NameColumn = defaultImportNameCol
	}
	if c.Import.PreviewRows == 0 {
		c.Import.PreviewRows = defaultImportPreview
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

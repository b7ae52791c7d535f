package config

const (
	defaultDatabaseDir     = "~/.local/share/mailbatch/databases"
	defaultLogDir          = "~/.local/share/mailbatch/logs"
	defaultDatabaseName    = "MailingList"
	defaultMaxBatchSize    = 57
	defaultImportIDColumn  = "D"
	defaultImportNameCol   = "E"
	defaultImportPreview   = 10
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

// Default returns a Config populated with repository defaults. The batch
// capacity of 57 matches the recipient-field limit of the email client the
// export format targets; deployments with a different limit override it in
// the config file.
func Default() Config {
	return Config{
		Paths: Paths{
			DatabaseDir: defaultDatabaseDir,
			LogDir:      defaultLogDir,
		},
		List: List{
			ActiveDatabase:  defaultDatabaseName + ".json",
			DefaultDatabase: defaultDatabaseName,
			MaxBatchSize:    defaultMaxBatchSize,
		},
		Import: Import{
			IDColumn:    defaultImportIDColumn,
			NameColumn:  defaultImportNameCol,
			PreviewRows: defaultImportPreview,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

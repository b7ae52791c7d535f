package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"mailbatch/internal/config"
	"mailbatch/internal/list"
	"mailbatch/internal/logging"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolved
	})
	return c.config, c.configErr
}

// configFile returns the path the configuration is saved to when a command
// changes it (activate, del).
func (c *commandContext) configFile() string {
	return c.configPath
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg)
	})
	return c.logger, c.loggerErr
}

// openStore loads the active database with the configured batch capacity.
// A missing database is reported with remediation hints rather than being
// created implicitly.
func (c *commandContext) openStore() (*list.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}

	store, err := list.Open(cfg.ActiveDatabasePath(), cfg.List.MaxBatchSize, logger)
	if err != nil {
		if errors.Is(err, list.ErrNotFound) {
			return nil, c.missingDatabaseError(cfg)
		}
		return nil, err
	}
	return store, nil
}

func (c *commandContext) missingDatabaseError(cfg *config.Config) error {
	base := strings.TrimSuffix(cfg.List.ActiveDatabase, ".json")
	hint := fmt.Sprintf("create it with `mailbatch new %s`", base)
	if names, err := cfg.ListDatabases(); err == nil && len(names) > 0 {
		hint = fmt.Sprintf("activate one of %s with `mailbatch activate <name>`, or %s",
			strings.Join(names, ", "), hint)
	}
	return fmt.Errorf("active database %s does not exist; %s", cfg.List.ActiveDatabase, hint)
}

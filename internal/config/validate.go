package config

import (
	"errors"
	"fmt"
)

var validTemplates = map[string]struct{}{
	"ct2022": {},
	"it2023": {},
	"auto":   {},
}

var validLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateDefaults(); err != nil {
		return err
	}
	if err := c.validateSource(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.OutputDir == "" {
		return errors.New("paths.output_dir must be set")
	}
	if c.Paths.StateDir == "" {
		return errors.New("paths.state_dir must be set")
	}
	if c.History.JSONFiles && c.Paths.HistoryDir == "" {
		return errors.New("paths.history_dir must be set when history.json_files is true")
	}
	return nil
}

func (c *Config) validateDefaults() error {
	if _, ok := validTemplates[c.Defaults.Template]; !ok {
		return fmt.Errorf("defaults.template must be one of ct2022, it2023, auto (got %q)", c.Defaults.Template)
	}
	return nil
}

func (c *Config) validateSource() error {
	if c.Source.FetchTimeout <= 0 {
		return errors.New("source.fetch_timeout must be positive (seconds)")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if _, ok := validLevels[c.Logging.Level]; !ok {
		return fmt.Errorf("logging.level must be one of debug, info, warn, error (got %q)", c.Logging.Level)
	}
	return nil
}

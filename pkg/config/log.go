package config

import (
	"fmt"
	"slices"
)

var logLevels = []string{"", "debug", "info", "warn", "error"}

type LogConfig struct {
	Level string `koanf:"level"`
}

func (c *LogConfig) Validate() error {
	if !slices.Contains(logLevels, c.Level) {
		return fmt.Errorf("unknown log level: %q", c.Level)
	}
	return nil
}

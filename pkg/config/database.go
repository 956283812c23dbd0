package config

import (
	"fmt"
	"strings"
	"time"
)

// DatabaseConfig configures the optional PostgreSQL-backed catalog store.
// An empty URL selects the built-in in-memory catalog.
type DatabaseConfig struct {
	URL     string        `koanf:"url"`
	Timeout time.Duration `koanf:"timeout"`
}

// Enabled reports whether a database URL is configured.
func (c *DatabaseConfig) Enabled() bool {
	return c.URL != ""
}

func (c *DatabaseConfig) Validate() error {
	if !c.Enabled() {
		return nil
	}
	if !strings.HasPrefix(c.URL, "postgres://") && !strings.HasPrefix(c.URL, "postgresql://") {
		return fmt.Errorf("database URL must start with 'postgres://': %s", c.URL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("database connect timeout is not configured")
	}
	return nil
}

package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	return nil
}

func (d *DatabaseConfig) validate() error {
	d.Driver = strings.ToLower(strings.TrimSpace(d.Driver))

	switch d.Driver {
	case DriverSQLite:
		if strings.TrimSpace(d.SQLite.Path) == "" {
			return fmt.Errorf("sqlite.path is required")
		}
		if d.SQLite.BusyTimeout < 0 {
			return fmt.Errorf("sqlite.busy_timeout must be >= 0 (got %v)", d.SQLite.BusyTimeout)
		}
	case DriverPostgres:
		if strings.TrimSpace(d.Postgres.DSN) == "" {
			return fmt.Errorf("postgres.dsn is required when driver is %q", DriverPostgres)
		}
		if d.Postgres.MaxConns <= 0 {
			return fmt.Errorf("postgres.max_conns must be > 0 (got %d)", d.Postgres.MaxConns)
		}
		if d.Postgres.MinConns < 0 || d.Postgres.MinConns > d.Postgres.MaxConns {
			return fmt.Errorf("postgres.min_conns must be within [0, max_conns] (got %d)", d.Postgres.MinConns)
		}
	default:
		return fmt.Errorf("driver must be %q or %q (got %q)", DriverSQLite, DriverPostgres, d.Driver)
	}

	return nil
}

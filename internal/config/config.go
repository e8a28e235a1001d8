package config

import "time"

// Supported storage drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
}

// DatabaseConfig selects the record store backend and holds its settings.
type DatabaseConfig struct {
	Driver   string         `yaml:"driver"   env:"DATABASE_DRIVER" env-default:"sqlite"`
	SQLite   SQLiteConfig   `yaml:"sqlite"`
	Postgres PostgresConfig `yaml:"postgres"`
}

// SQLiteConfig holds settings for the embedded on-device database.
type SQLiteConfig struct {
	Path        string        `yaml:"path"         env:"DATABASE_PATH"         env-default:"maintenance.db"`
	BusyTimeout time.Duration `yaml:"busy_timeout" env:"DATABASE_BUSY_TIMEOUT" env-default:"5s"`
}

// PostgresConfig holds PostgreSQL connection settings.
type PostgresConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Storage selects the snapshot storage backend.
type Storage string

const (
	StorageSQLite   Storage = "sqlite"
	StoragePostgres Storage = "postgres"
	StorageMySQL    Storage = "mysql"
	StorageMemory   Storage = "memory"
)

// PostgresDriver selects the client library used for PostgreSQL.
type PostgresDriver string

const (
	PostgresDriverPGX  PostgresDriver = "pgx"
	PostgresDriverSQL  PostgresDriver = "sql"
	PostgresDriverSQLX PostgresDriver = "sqlx"
)

// Environment variables read by FromEnv.
const (
	EnvStorage        = "BIBLIOTECH_STORAGE"
	EnvSQLitePath     = "BIBLIOTECH_SQLITE_PATH"
	EnvPostgresDSN    = "BIBLIOTECH_POSTGRES_DSN"
	EnvPostgresDriver = "BIBLIOTECH_POSTGRES_DRIVER"
	EnvMySQLDSN       = "BIBLIOTECH_MYSQL_DSN"
	EnvTable          = "BIBLIOTECH_TABLE"
	EnvLogLevel       = "BIBLIOTECH_LOG_LEVEL"
	EnvOTLPEndpoint   = "BIBLIOTECH_OTLP_ENDPOINT"
)

const (
	defaultSQLitePath = "bibliotech.db"
	defaultLogLevel   = "info"
)

var (
	// ErrUnknownStorage is returned for a storage backend name FromEnv does not know.
	ErrUnknownStorage = errors.New("unknown storage backend")

	// ErrUnknownPostgresDriver is returned for a Postgres driver name FromEnv does not know.
	ErrUnknownPostgresDriver = errors.New("unknown postgres driver")

	// ErrMissingDSN is returned when a database backend is selected without a DSN.
	ErrMissingDSN = errors.New("missing database dsn")

	// ErrUnknownLogLevel is returned for a log level slog cannot parse.
	ErrUnknownLogLevel = errors.New("unknown log level")
)

// Config is the resolved application configuration.
type Config struct {
	Storage        Storage
	SQLitePath     string
	PostgresDSN    string
	PostgresDriver PostgresDriver
	MySQLDSN       string
	Table          string
	LogLevel       slog.Level
	OTLPEndpoint   string
}

// FromEnv reads the configuration from the process environment.
func FromEnv() (Config, error) {
	return FromLookup(os.Getenv)
}

// FromLookup reads the configuration through getenv, which returns "" for unset variables.
func FromLookup(getenv func(string) string) (Config, error) {
	cfg := Config{
		Storage:        Storage(strings.ToLower(valueOr(getenv(EnvStorage), string(StorageSQLite)))),
		SQLitePath:     valueOr(getenv(EnvSQLitePath), defaultSQLitePath),
		PostgresDSN:    strings.TrimSpace(getenv(EnvPostgresDSN)),
		PostgresDriver: PostgresDriver(strings.ToLower(valueOr(getenv(EnvPostgresDriver), string(PostgresDriverPGX)))),
		MySQLDSN:       strings.TrimSpace(getenv(EnvMySQLDSN)),
		Table:          strings.TrimSpace(getenv(EnvTable)),
		OTLPEndpoint:   strings.TrimSpace(getenv(EnvOTLPEndpoint)),
	}

	level, err := ParseLogLevel(valueOr(getenv(EnvLogLevel), defaultLogLevel))
	if err != nil {
		return Config{}, err
	}

	cfg.LogLevel = level

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks that the selected backend has what it needs to connect.
func (c Config) Validate() error {
	switch c.Storage {
	case StorageSQLite, StorageMemory:
	case StoragePostgres:
		if c.PostgresDSN == "" {
			return fmt.Errorf("%w: %s is required for %s", ErrMissingDSN, EnvPostgresDSN, c.Storage)
		}

		switch c.PostgresDriver {
		case PostgresDriverPGX, PostgresDriverSQL, PostgresDriverSQLX:
		default:
			return fmt.Errorf("%w: %q", ErrUnknownPostgresDriver, c.PostgresDriver)
		}
	case StorageMySQL:
		if c.MySQLDSN == "" {
			return fmt.Errorf("%w: %s is required for %s", ErrMissingDSN, EnvMySQLDSN, c.Storage)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStorage, c.Storage)
	}

	return nil
}

// ParseLogLevel accepts the slog level names (debug, info, warn, error), case-insensitively.
func ParseLogLevel(raw string) (slog.Level, error) {
	var level slog.Level

	if err := level.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
		return 0, errors.Join(ErrUnknownLogLevel, err)
	}

	return level, nil
}

func valueOr(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}

	return fallback
}

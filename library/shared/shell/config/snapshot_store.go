package config

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bibliotech-pro/bibliotech-go/snapshotstore"
	"github.com/bibliotech-pro/bibliotech-go/snapshotstore/memoryengine"
	"github.com/bibliotech-pro/bibliotech-go/snapshotstore/sqlengine"
)

// SnapshotEngine is what the application needs from a storage engine.
type SnapshotEngine interface {
	EnsureSchema(ctx context.Context) error
	Save(ctx context.Context, snapshot snapshotstore.Snapshot) error
	Load(ctx context.Context, key string) (snapshotstore.Snapshot, error)
}

// CloseFunc releases the database connection behind an engine.
type CloseFunc func() error

func noopClose() error { return nil }

// OpenSnapshotStore opens the backend selected by cfg, creates its schema and returns it
// together with the function that closes its connection.
func OpenSnapshotStore(ctx context.Context, cfg Config, options ...sqlengine.Option) (SnapshotEngine, CloseFunc, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	if cfg.Table != "" {
		options = append(options, sqlengine.WithTableName(cfg.Table))
	}

	engine, closeFn, err := openEngine(ctx, cfg, options)
	if err != nil {
		return nil, nil, err
	}

	if schemaErr := engine.EnsureSchema(ctx); schemaErr != nil {
		_ = closeFn()
		return nil, nil, fmt.Errorf("ensuring snapshot schema: %w", schemaErr)
	}

	return engine, closeFn, nil
}

func openEngine(ctx context.Context, cfg Config, options []sqlengine.Option) (SnapshotEngine, CloseFunc, error) {
	switch cfg.Storage {
	case StorageMemory:
		return memoryengine.NewSnapshotStore(), noopClose, nil

	case StorageSQLite:
		db, err := SQLiteDBConfig(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}

		return sqlDBEngine(db, sqlengine.DialectSQLite, options)

	case StorageMySQL:
		db, err := MySQLDBConfig(ctx, cfg.MySQLDSN)
		if err != nil {
			return nil, nil, err
		}

		return sqlDBEngine(db, sqlengine.DialectMySQL, options)

	case StoragePostgres:
		return openPostgresEngine(ctx, cfg, options)

	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownStorage, cfg.Storage)
	}
}

func openPostgresEngine(ctx context.Context, cfg Config, options []sqlengine.Option) (SnapshotEngine, CloseFunc, error) {
	switch cfg.PostgresDriver {
	case PostgresDriverSQL:
		db, err := PostgresSQLDBConfig(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}

		return sqlDBEngine(db, sqlengine.DialectPostgres, options)

	case PostgresDriverSQLX:
		db, err := PostgresSQLXConfig(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}

		engine, err := sqlengine.NewSnapshotStoreFromSQLX(db, sqlengine.DialectPostgres, options...)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}

		return engine, db.Close, nil

	default:
		pool, err := OpenPostgresPGXPool(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}

		engine, err := sqlengine.NewSnapshotStoreFromPGXPool(pool, options...)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}

		return engine, func() error { pool.Close(); return nil }, nil
	}
}

func sqlDBEngine(db *sql.DB, dialect sqlengine.Dialect, options []sqlengine.Option) (SnapshotEngine, CloseFunc, error) {
	engine, err := sqlengine.NewSnapshotStoreFromSQLDB(db, dialect, options...)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	return engine, db.Close, nil
}

package sqlengine

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	goqumysql "github.com/doug-martin/goqu/v9/dialect/mysql"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"  // dialect registration
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/bibliotech-pro/bibliotech-go/snapshotstore"
	"github.com/bibliotech-pro/bibliotech-go/snapshotstore/sqlengine/internal/adapters"
)

// Dialect names the SQL flavor the statements are built for.
type Dialect string

const (
	// DialectPostgres builds statements for PostgreSQL.
	DialectPostgres Dialect = "postgres"

	// DialectSQLite builds statements for SQLite 3.
	DialectSQLite Dialect = "sqlite3"

	// DialectMySQL builds statements for MySQL and MariaDB.
	DialectMySQL Dialect = "mysql"
)

const (
	defaultTableName = "library_snapshots"
	colKey           = "snapshot_key"
	colVersion       = "version"
	colData          = "data"
	colSavedAt       = "saved_at"

	mysqlDateTimeLayout = "2006-01-02 15:04:05.999999"

	// mysqlUpsertDialect is MySQL without INSERT IGNORE, so failed writes stay errors.
	mysqlUpsertDialect = "mysql-upsert"
)

func init() {
	opts := goqumysql.DialectOptions()
	opts.SupportsInsertIgnoreSyntax = false
	goqu.RegisterDialect(mysqlUpsertDialect, opts)
}

// ErrInvalidTableName is returned when a table name is not a plain SQL identifier.
var ErrInvalidTableName = errors.New("table name must be a plain sql identifier")

type sqlQueryString = string

// SnapshotStore persists snapshots in one row per key.
type SnapshotStore struct {
	db               adapters.DBAdapter
	dialect          Dialect
	tableName        string
	logger           snapshotstore.Logger
	contextualLogger snapshotstore.ContextualLogger
	metricsCollector snapshotstore.MetricsCollector
	tracingCollector snapshotstore.TracingCollector
}

// NewSnapshotStoreFromPGXPool creates a PostgreSQL SnapshotStore on a pgx pool.
func NewSnapshotStoreFromPGXPool(pool *pgxpool.Pool, options ...Option) (*SnapshotStore, error) {
	if pool == nil {
		return nil, snapshotstore.ErrNilDatabaseConnection
	}

	return newSnapshotStore(adapters.NewPGXAdapter(pool), DialectPostgres, options...)
}

// NewSnapshotStoreFromSQLDB creates a SnapshotStore on a *sql.DB for the given dialect.
func NewSnapshotStoreFromSQLDB(db *sql.DB, dialect Dialect, options ...Option) (*SnapshotStore, error) {
	if db == nil {
		return nil, snapshotstore.ErrNilDatabaseConnection
	}

	return newSnapshotStore(adapters.NewSQLAdapter(db), dialect, options...)
}

// NewSnapshotStoreFromSQLX creates a SnapshotStore on a *sqlx.DB for the given dialect.
func NewSnapshotStoreFromSQLX(db *sqlx.DB, dialect Dialect, options ...Option) (*SnapshotStore, error) {
	if db == nil {
		return nil, snapshotstore.ErrNilDatabaseConnection
	}

	return newSnapshotStore(adapters.NewSQLXAdapter(db), dialect, options...)
}

func newSnapshotStore(db adapters.DBAdapter, dialect Dialect, options ...Option) (*SnapshotStore, error) {
	switch dialect {
	case DialectPostgres, DialectSQLite, DialectMySQL:
	default:
		return nil, fmt.Errorf("%w: %q", snapshotstore.ErrUnsupportedDialect, dialect)
	}

	store := &SnapshotStore{
		db:        db,
		dialect:   dialect,
		tableName: defaultTableName,
	}

	for _, option := range options {
		if err := option(store); err != nil {
			return nil, err
		}
	}

	return store, nil
}

// EnsureSchema creates the snapshot table if it does not exist yet.
func (s *SnapshotStore) EnsureSchema(ctx context.Context) error {
	ctx, span := s.startSpan(ctx, operationEnsureSchema)
	start := time.Now()

	ddl := s.buildCreateTableStatement()
	_, err := s.db.Exec(ctx, ddl)
	s.logQueryWithDuration(ddl, operationEnsureSchema, time.Since(start))

	if err != nil {
		s.logError(ctx, logMsgEnsureSchemaFailed, err)
		s.finishSpan(ctx, span, operationEnsureSchema, statusError, time.Since(start))

		return errors.Join(ErrEnsuringSchemaFailed, err)
	}

	s.finishSpan(ctx, span, operationEnsureSchema, statusSuccess, time.Since(start))

	return nil
}

// Save writes the snapshot, replacing whatever was stored under its key.
func (s *SnapshotStore) Save(ctx context.Context, snapshot snapshotstore.Snapshot) error {
	if err := snapshot.Validate(); err != nil {
		return err
	}

	ctx, span := s.startSpan(ctx, operationSave)
	start := time.Now()

	err := s.upsert(ctx, snapshot)
	if err != nil {
		s.logError(ctx, logMsgSaveFailed, err, logAttrKey, snapshot.Key)
		s.finishSpan(ctx, span, operationSave, statusError, time.Since(start))

		return errors.Join(snapshotstore.ErrSavingSnapshotFailed, err)
	}

	duration := time.Since(start)
	s.recordSnapshotSize(ctx, operationSave, len(snapshot.Data))
	s.logOperation(ctx, logMsgSnapshotSaved,
		logAttrKey, snapshot.Key,
		logAttrVersion, snapshot.Version,
		logAttrBytes, len(snapshot.Data),
		logAttrDurationMS, toMilliseconds(duration),
	)
	s.finishSpan(ctx, span, operationSave, statusSuccess, duration)

	return nil
}

// upsert uses the native conflict clause where goqu supports it and update-then-insert otherwise.
func (s *SnapshotStore) upsert(ctx context.Context, snapshot snapshotstore.Snapshot) error {
	if s.dialect == DialectSQLite {
		return s.updateThenInsert(ctx, snapshot)
	}

	sqlQuery, err := s.buildUpsertQuery(snapshot)
	if err != nil {
		return err
	}

	return s.exec(ctx, sqlQuery, operationSave)
}

func (s *SnapshotStore) updateThenInsert(ctx context.Context, snapshot snapshotstore.Snapshot) error {
	updateQuery, err := s.buildUpdateQuery(snapshot)
	if err != nil {
		return err
	}

	start := time.Now()
	result, err := s.db.Exec(ctx, updateQuery)
	s.logQueryWithDuration(updateQuery, operationSave, time.Since(start))

	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected > 0 {
		return nil
	}

	insertQuery, err := s.buildInsertQuery(snapshot)
	if err != nil {
		return err
	}

	return s.exec(ctx, insertQuery, operationSave)
}

// Load reads the snapshot stored under key.
// It returns snapshotstore.ErrSnapshotNotFound when there is none.
func (s *SnapshotStore) Load(ctx context.Context, key string) (snapshotstore.Snapshot, error) {
	if key == "" {
		return snapshotstore.Snapshot{}, snapshotstore.ErrEmptySnapshotKey
	}

	ctx, span := s.startSpan(ctx, operationLoad)
	start := time.Now()

	snapshot, err := s.selectSnapshot(ctx, key)

	switch {
	case errors.Is(err, snapshotstore.ErrSnapshotNotFound):
		s.finishSpan(ctx, span, operationLoad, statusNotFound, time.Since(start))
		return snapshotstore.Snapshot{}, err

	case err != nil:
		s.logError(ctx, logMsgLoadFailed, err, logAttrKey, key)
		s.finishSpan(ctx, span, operationLoad, statusError, time.Since(start))

		return snapshotstore.Snapshot{}, errors.Join(snapshotstore.ErrLoadingSnapshotFailed, err)
	}

	duration := time.Since(start)
	s.recordSnapshotSize(ctx, operationLoad, len(snapshot.Data))
	s.logOperation(ctx, logMsgSnapshotLoaded,
		logAttrKey, key,
		logAttrVersion, snapshot.Version,
		logAttrBytes, len(snapshot.Data),
		logAttrDurationMS, toMilliseconds(duration),
	)
	s.finishSpan(ctx, span, operationLoad, statusSuccess, duration)

	return snapshot, nil
}

func (s *SnapshotStore) selectSnapshot(ctx context.Context, key string) (snapshotstore.Snapshot, error) {
	sqlQuery, err := s.buildSelectQuery(key)
	if err != nil {
		return snapshotstore.Snapshot{}, err
	}

	start := time.Now()
	rows, err := s.db.Query(ctx, sqlQuery)
	s.logQueryWithDuration(sqlQuery, operationLoad, time.Since(start))

	if err != nil {
		return snapshotstore.Snapshot{}, err
	}
	defer s.closeRows(ctx, rows)

	if !rows.Next() {
		if iterErr := rows.Err(); iterErr != nil {
			return snapshotstore.Snapshot{}, iterErr
		}

		return snapshotstore.Snapshot{}, snapshotstore.ErrSnapshotNotFound
	}

	snapshot := snapshotstore.Snapshot{Key: key}

	var data []byte
	if scanErr := rows.Scan(&snapshot.Version, &data, &snapshot.SavedAt); scanErr != nil {
		return snapshotstore.Snapshot{}, scanErr
	}

	snapshot.Data = append([]byte(nil), data...)
	snapshot.SavedAt = snapshot.SavedAt.UTC()

	return snapshot, nil
}

// Delete removes the snapshot stored under key. Deleting a missing key is not an error.
func (s *SnapshotStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return snapshotstore.ErrEmptySnapshotKey
	}

	ctx, span := s.startSpan(ctx, operationDelete)
	start := time.Now()

	sqlQuery, err := s.buildDeleteQuery(key)
	if err == nil {
		err = s.exec(ctx, sqlQuery, operationDelete)
	}

	if err != nil {
		s.logError(ctx, logMsgDeleteFailed, err, logAttrKey, key)
		s.finishSpan(ctx, span, operationDelete, statusError, time.Since(start))

		return errors.Join(snapshotstore.ErrDeletingSnapshotFailed, err)
	}

	s.finishSpan(ctx, span, operationDelete, statusSuccess, time.Since(start))

	return nil
}

func (s *SnapshotStore) exec(ctx context.Context, sqlQuery string, operation string) error {
	start := time.Now()
	_, err := s.db.Exec(ctx, sqlQuery)
	s.logQueryWithDuration(sqlQuery, operation, time.Since(start))

	return err
}

func (s *SnapshotStore) closeRows(ctx context.Context, rows adapters.DBRows) {
	if closeErr := rows.Close(); closeErr != nil {
		s.logWarn(ctx, logMsgCloseRowsFailed, closeErr)
	}
}

/*** Statement builders ***/

func (s *SnapshotStore) buildCreateTableStatement() sqlQueryString {
	switch s.dialect {
	case DialectPostgres:
		return fmt.Sprintf(
			`CREATE TABLE IF NOT EXISTS %s (%s TEXT PRIMARY KEY, %s BIGINT NOT NULL, %s JSONB NOT NULL, %s TIMESTAMPTZ NOT NULL)`,
			s.tableName, colKey, colVersion, colData, colSavedAt,
		)

	case DialectMySQL:
		return fmt.Sprintf(
			"CREATE TABLE IF NOT EXISTS `%s` (`%s` VARCHAR(191) PRIMARY KEY, `%s` BIGINT UNSIGNED NOT NULL, `%s` JSON NOT NULL, `%s` DATETIME(6) NOT NULL)",
			s.tableName, colKey, colVersion, colData, colSavedAt,
		)

	default:
		return fmt.Sprintf(
			`CREATE TABLE IF NOT EXISTS %s (%s TEXT PRIMARY KEY, %s INTEGER NOT NULL, %s TEXT NOT NULL, %s TIMESTAMP NOT NULL)`,
			s.tableName, colKey, colVersion, colData, colSavedAt,
		)
	}
}

func (s *SnapshotStore) builder() goqu.DialectWrapper {
	return goqu.Dialect(string(s.dialect))
}

// upsertBuilder differs from builder only for MySQL, where goqu would render INSERT IGNORE.
func (s *SnapshotStore) upsertBuilder() goqu.DialectWrapper {
	if s.dialect == DialectMySQL {
		return goqu.Dialect(mysqlUpsertDialect)
	}

	return s.builder()
}

func (s *SnapshotStore) record(snapshot snapshotstore.Snapshot) goqu.Record {
	var savedAt any = snapshot.SavedAt.UTC()
	if s.dialect == DialectMySQL {
		savedAt = snapshot.SavedAt.UTC().Format(mysqlDateTimeLayout)
	}

	return goqu.Record{
		colVersion: snapshot.Version,
		colData:    string(snapshot.Data),
		colSavedAt: savedAt,
	}
}

func (s *SnapshotStore) buildUpsertQuery(snapshot snapshotstore.Snapshot) (sqlQueryString, error) {
	row := s.record(snapshot)
	row[colKey] = snapshot.Key

	sqlQuery, _, err := s.upsertBuilder().
		Insert(s.tableName).
		Rows(row).
		OnConflict(goqu.DoUpdate(colKey, s.record(snapshot))).
		ToSQL()
	if err != nil {
		return "", errors.Join(ErrBuildingQueryFailed, err)
	}

	return sqlQuery, nil
}

func (s *SnapshotStore) buildUpdateQuery(snapshot snapshotstore.Snapshot) (sqlQueryString, error) {
	sqlQuery, _, err := s.builder().
		Update(s.tableName).
		Set(s.record(snapshot)).
		Where(goqu.C(colKey).Eq(snapshot.Key)).
		ToSQL()
	if err != nil {
		return "", errors.Join(ErrBuildingQueryFailed, err)
	}

	return sqlQuery, nil
}

func (s *SnapshotStore) buildInsertQuery(snapshot snapshotstore.Snapshot) (sqlQueryString, error) {
	row := s.record(snapshot)
	row[colKey] = snapshot.Key

	sqlQuery, _, err := s.builder().
		Insert(s.tableName).
		Rows(row).
		ToSQL()
	if err != nil {
		return "", errors.Join(ErrBuildingQueryFailed, err)
	}

	return sqlQuery, nil
}

func (s *SnapshotStore) buildSelectQuery(key string) (sqlQueryString, error) {
	sqlQuery, _, err := s.builder().
		From(s.tableName).
		Select(colVersion, colData, colSavedAt).
		Where(goqu.C(colKey).Eq(key)).
		Limit(1).
		ToSQL()
	if err != nil {
		return "", errors.Join(ErrBuildingQueryFailed, err)
	}

	return sqlQuery, nil
}

func (s *SnapshotStore) buildDeleteQuery(key string) (sqlQueryString, error) {
	sqlQuery, _, err := s.builder().
		Delete(s.tableName).
		Where(goqu.C(colKey).Eq(key)).
		ToSQL()
	if err != nil {
		return "", errors.Join(ErrBuildingQueryFailed, err)
	}

	return sqlQuery, nil
}

// Package sqlengine stores library snapshots in a single SQL table.
//
// Statements are built with goqu for the postgres, sqlite3 and mysql dialects and run
// through a small adapter layer, so the same engine works on pgxpool.Pool, *sql.DB and
// *sqlx.DB connections.
//
// Usage examples:
//
//	pool, _ := pgxpool.New(ctx, dsn)
//	store, _ := sqlengine.NewSnapshotStoreFromPGXPool(pool)
//
//	db, _ := sql.Open("sqlite3", "file:bibliotech.db")
//	store, _ := sqlengine.NewSnapshotStoreFromSQLDB(db, sqlengine.DialectSQLite,
//		sqlengine.WithTableName("library_snapshots"),
//		sqlengine.WithLogger(logger),
//	)
//
//	_ = store.EnsureSchema(ctx)
//	_ = store.Save(ctx, snapshot)
//	snapshot, err := store.Load(ctx, "biblioteca-data")
package sqlengine

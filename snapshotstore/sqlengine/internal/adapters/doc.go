// Package adapters hides the differences between pgxpool.Pool, *sql.DB and *sqlx.DB
// behind one small interface, so the SQL engine can build its statements once and run
// them on any of those connection types.
package adapters

// Package config provides environment-driven configuration for the library application.
//
// It resolves which snapshot storage backend to use, opens the database connection
// for it with pool settings (pgx, database/sql with lib/pq, sqlx, SQLite, MySQL),
// builds the slog logger and sets up OpenTelemetry providers exporting via OTLP gRPC.
//
// This package is part of the shell (infrastructure) layer.
package config

package store

import (
	"database/sql"
	"strings"

	"github.com/mhenke/logbuch/internal/logger"
	"github.com/mhenke/logbuch/migrations"
)

// DB wraps a database/sql connection together with the goose dialect it was
// opened with, so that migrations and error classification can stay
// backend-aware.
type DB struct {
	*sql.DB
	dialect string
	logger  *logger.Logger
}

// Migrate applies all pending schema migrations for the connection's
// dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// isPostgresDSN reports whether the DSN selects the PostgreSQL backend.
// Anything else is treated as a SQLite file path.
func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

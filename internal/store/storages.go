package store

import (
	"context"
	"fmt"

	"github.com/mhenke/logbuch/internal/config"
	"github.com/mhenke/logbuch/internal/logger"
)

// Storages bundles all repositories over one database connection.
type Storages struct {
	Users      UserRepository
	Categories CategoryRepository
	Entries    EntryRepository

	db *DB
}

// NewStorages opens the database selected by the DSN (PostgreSQL for
// "postgres://" URIs, a SQLite file otherwise), applies pending migrations,
// and wires up all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var db *DB
	var err error

	if isPostgresDSN(cfg.DB.DSN) {
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	} else {
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	}
	if err != nil {
		return nil, fmt.Errorf("error connecting database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return &Storages{
		Users:      NewUserRepository(db, log),
		Categories: NewCategoryRepository(db, log),
		Entries:    NewEntryRepository(db, log),
		db:         db,
	}, nil
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	return s.db.Close()
}

package store

import (
	"context"

	"github.com/mhenke/logbuch/models"
)

// UserRepository handles user account persistence.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields populated. Returns ErrLoginAlreadyExists on a duplicate login.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByLogin looks an account up by its login.
	// Returns ErrNoUserWasFound when it does not exist.
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// CategoryRepository handles category schema persistence. Categories are
// immutable: there is no update operation.
type CategoryRepository interface {
	// CreateCategory persists a new category and returns it with the
	// server-assigned ID.
	CreateCategory(ctx context.Context, cat models.Category) (models.Category, error)

	// GetCategories returns all categories of the user in creation order.
	GetCategories(ctx context.Context, userID int64) ([]models.Category, error)

	// CountCategories returns the number of categories the user owns.
	// Used to decide whether defaults must be seeded.
	CountCategories(ctx context.Context, userID int64) (int64, error)

	// DeleteAllCategories removes every category of the user (reset).
	DeleteAllCategories(ctx context.Context, userID int64) error
}

// EntryRepository handles entry persistence. Entries are append-only;
// deletion by ID is the only other operation.
type EntryRepository interface {
	// CreateEntry persists a new entry and returns it with the
	// server-assigned ID.
	CreateEntry(ctx context.Context, entry models.Entry) (models.Entry, error)

	// GetEntries returns the user's entries, newest first, optionally
	// filtered by category reference key.
	GetEntries(ctx context.Context, userID int64, categoryRef string) ([]models.Entry, error)

	// DeleteEntry removes one entry by ID. Returns ErrEntryNotFound when
	// no row matches.
	DeleteEntry(ctx context.Context, userID, entryID int64) error

	// DeleteAllEntries removes every entry of the user (reset).
	DeleteAllEntries(ctx context.Context, userID int64) error
}

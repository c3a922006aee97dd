package service

import (
	"context"

	"github.com/mhenke/logbuch/models"
)

// AuthService handles account registration, credential verification and the
// JWT token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// CategoryService manages a user's tracking categories, including seeding
// the starter set for fresh accounts.
type CategoryService interface {
	GetCategories(ctx context.Context, userID int64) ([]models.Category, error)
	CreateCategory(ctx context.Context, cat models.Category) (models.Category, error)
	DeleteAllCategories(ctx context.Context, userID int64) error
}

// EntryService manages a user's recorded entries.
type EntryService interface {
	CreateEntry(ctx context.Context, entry models.Entry) (models.Entry, error)
	GetEntries(ctx context.Context, userID int64, categoryRef string) ([]models.Entry, error)
	DeleteEntry(ctx context.Context, userID, entryID int64) error
	DeleteAllEntries(ctx context.Context, userID int64) error
}

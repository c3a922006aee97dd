// Package adapter provides transport-layer abstractions for communicating
// with the logbuch server and with the public OpenFoodFacts API.
//
// The primary abstraction is [ServerAdapter], which decouples the TUI client
// from the underlying protocol. [ProductCatalog] covers the nutrition lookup
// used to prefill entry forms.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/mhenke/logbuch/models"
)

// ServerAdapter defines transport-agnostic communication with the logbuch
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account with the provided credentials. On
	// success it stores the returned bearer token via SetToken.
	Register(ctx context.Context, user models.User) (models.LoginResponse, error)

	// Login authenticates the user with the server. On success it stores the
	// returned bearer token via SetToken and returns the login response body.
	Login(ctx context.Context, user models.User) (models.LoginResponse, error)

	// Categories lists all categories of the authenticated user in creation
	// order. A fresh account receives the server-seeded starter set.
	Categories(ctx context.Context) ([]models.Category, error)

	// CreateCategory creates a user-defined category and returns it with the
	// server-assigned ID.
	CreateCategory(ctx context.Context, cat models.Category) (models.Category, error)

	// Entries lists the authenticated user's entries, newest first,
	// optionally filtered by a category reference key ("" for all).
	Entries(ctx context.Context, categoryRef string) ([]models.Entry, error)

	// CreateEntry records a new entry and returns it with the server-assigned
	// ID.
	CreateEntry(ctx context.Context, entry models.Entry) (models.Entry, error)

	// DeleteEntry removes one entry by ID.
	DeleteEntry(ctx context.Context, entryID int64) error

	// Reset wipes all entries and categories of the authenticated user.
	Reset(ctx context.Context) error
}

// ProductCatalog looks up food products by free-text search.
type ProductCatalog interface {
	// SearchProduct returns the best match for the query. Returns
	// [ErrProductNotFound] when the catalog has no match.
	SearchProduct(ctx context.Context, query string) (models.Product, error)
}

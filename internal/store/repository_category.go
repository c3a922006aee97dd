package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mhenke/logbuch/internal/logger"
	"github.com/mhenke/logbuch/models"
)

// categoryRepository is the SQL-backed implementation of
// [CategoryRepository]. The ordered field list is stored as a JSON document
// in the fields column, mirroring how entries carry their details.
type categoryRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCategoryRepository constructs a [CategoryRepository] backed by the
// provided database connection and logger.
func NewCategoryRepository(db *DB, logger *logger.Logger) CategoryRepository {
	logger.Debug().Msg("creating category repository")
	return &categoryRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCategory persists a new category and returns it with the
// server-assigned ID. The field list is serialized to JSON verbatim; its
// non-emptiness is the service layer's concern.
func (r *categoryRepository) CreateCategory(ctx context.Context, cat models.Category) (models.Category, error) {
	log := logger.FromContext(ctx)

	fields, err := json.Marshal(cat.Fields)
	if err != nil {
		return models.Category{}, fmt.Errorf("error serializing category fields: %w", err)
	}

	row := r.db.QueryRowContext(ctx, createCategory, cat.UserID, cat.Name, cat.SpecialType, string(fields))
	if err := row.Scan(&cat.ID); err != nil {
		log.Err(err).Str("func", "*categoryRepository.CreateCategory").Msg("error creating category")
		return models.Category{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return cat, nil
}

// GetCategories returns all categories of the user in creation order.
func (r *categoryRepository) GetCategories(ctx context.Context, userID int64) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getCategories, userID)
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.GetCategories").Msg("error querying categories")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var cat models.Category
		var fields string

		if err := rows.Scan(&cat.ID, &cat.UserID, &cat.Name, &cat.SpecialType, &fields); err != nil {
			log.Err(err).Str("func", "*categoryRepository.GetCategories").Msg("error scanning category row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if err := json.Unmarshal([]byte(fields), &cat.Fields); err != nil {
			return nil, fmt.Errorf("error deserializing category fields: %w", err)
		}

		categories = append(categories, cat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return categories, nil
}

// CountCategories returns the number of categories the user owns.
func (r *categoryRepository) CountCategories(ctx context.Context, userID int64) (int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, countCategories, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// DeleteAllCategories removes every category of the user.
func (r *categoryRepository) DeleteAllCategories(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteAllCategories, userID); err != nil {
		log.Err(err).Str("func", "*categoryRepository.DeleteAllCategories").Msg("error deleting categories")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/mhenke/logbuch/internal/logger"
	"github.com/mhenke/logbuch/internal/store"
	"github.com/mhenke/logbuch/models"
)

// categoryService is the concrete implementation of CategoryService.
// Fresh accounts receive a seeded starter set of categories on their first
// listing so the client never renders an empty sidebar.
type categoryService struct {
	categoryRepository store.CategoryRepository
	logger             *logger.Logger
}

// NewCategoryService constructs a CategoryService wired to the given
// CategoryRepository.
func NewCategoryService(categoryRepository store.CategoryRepository, logger *logger.Logger) CategoryService {
	return &categoryService{
		categoryRepository: categoryRepository,
		logger:             logger,
	}
}

// GetCategories returns all categories of the user in creation order.
// If the user owns none yet, the default starter categories are created
// first and returned.
func (c *categoryService) GetCategories(ctx context.Context, userID int64) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	count, err := c.categoryRepository.CountCategories(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("counting categories failed")
		return nil, fmt.Errorf("counting categories failed: %w", err)
	}

	if count == 0 {
		if err := c.seedDefaults(ctx, userID); err != nil {
			return nil, err
		}
	}

	categories, err := c.categoryRepository.GetCategories(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("listing categories failed")
		return nil, fmt.Errorf("listing categories failed: %w", err)
	}

	return categories, nil
}

// CreateCategory validates and persists a user-defined category.
//
// The name must be non-empty and at least one field with a non-empty label
// must remain after blank rows are dropped. User-created categories always
// carry the custom special type; clients cannot claim the built-in ones.
func (c *categoryService) CreateCategory(ctx context.Context, cat models.Category) (models.Category, error) {
	log := logger.FromContext(ctx)

	cat.Name = strings.TrimSpace(cat.Name)
	if cat.Name == "" {
		return models.Category{}, ErrValidationEmptyCategoryName
	}

	fields := cat.Fields[:0:0]
	for _, field := range cat.Fields {
		if strings.TrimSpace(field.Label) == "" {
			continue
		}
		fields = append(fields, field)
	}
	if len(fields) == 0 {
		return models.Category{}, ErrValidationNoFieldsProvided
	}
	cat.Fields = fields
	cat.SpecialType = models.SpecialTypeCustom

	created, err := c.categoryRepository.CreateCategory(ctx, cat)
	if err != nil {
		log.Err(err).Str("name", cat.Name).Msg("category creation ended with error")
		return models.Category{}, fmt.Errorf("category creation ended with error: %w", err)
	}

	return created, nil
}

// DeleteAllCategories removes every category of the user. The next listing
// re-seeds the starter set.
func (c *categoryService) DeleteAllCategories(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if err := c.categoryRepository.DeleteAllCategories(ctx, userID); err != nil {
		log.Err(err).Int64("userID", userID).Msg("deleting categories failed")
		return fmt.Errorf("deleting categories failed: %w", err)
	}

	return nil
}

// seedDefaults creates the starter categories for a fresh account.
func (c *categoryService) seedDefaults(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	for _, cat := range defaultCategories(userID) {
		if _, err := c.categoryRepository.CreateCategory(ctx, cat); err != nil {
			log.Err(err).Str("name", cat.Name).Msg("seeding default category failed")
			return fmt.Errorf("seeding default category failed: %w", err)
		}
	}

	log.Info().Int64("userID", userID).Msg("seeded default categories")
	return nil
}

// defaultCategories returns the starter set every fresh account begins with.
// The nutrition category annotates its fields with roles so the product
// lookup knows where to place search results.
func defaultCategories(userID int64) []models.Category {
	return []models.Category{
		{
			UserID:      userID,
			Name:        "Fitness",
			SpecialType: models.SpecialTypeFitness,
			Fields: []models.Field{
				{Label: "Aktivität", Unit: ""},
				{Label: "Verbrannt", Unit: "kcal"},
			},
		},
		{
			UserID:      userID,
			Name:        "Ernährung",
			SpecialType: models.SpecialTypeNutrition,
			Fields: []models.Field{
				{Label: "Produkt", Unit: "", Role: models.RoleProductName},
				{Label: "Menge", Unit: "g", Role: models.RoleAmount},
				{Label: "Kalorien", Unit: "kcal", Role: models.RoleCalorieValue},
			},
		},
		{
			UserID:      userID,
			Name:        "Stimmung",
			SpecialType: models.SpecialTypeMood,
			Fields: []models.Field{
				{Label: "Gefühl", Unit: "1-10"},
				{Label: "Notiz", Unit: ""},
			},
		},
	}
}

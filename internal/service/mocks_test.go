package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mhenke/logbuch/models"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *mockUserRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	args := m.Called(ctx, login)
	return args.Get(0).(models.User), args.Error(1)
}

type mockCategoryRepository struct {
	mock.Mock
}

func (m *mockCategoryRepository) CreateCategory(ctx context.Context, cat models.Category) (models.Category, error) {
	args := m.Called(ctx, cat)
	return args.Get(0).(models.Category), args.Error(1)
}

func (m *mockCategoryRepository) GetCategories(ctx context.Context, userID int64) ([]models.Category, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *mockCategoryRepository) CountCategories(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCategoryRepository) DeleteAllCategories(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type mockEntryRepository struct {
	mock.Mock
}

func (m *mockEntryRepository) CreateEntry(ctx context.Context, entry models.Entry) (models.Entry, error) {
	args := m.Called(ctx, entry)
	return args.Get(0).(models.Entry), args.Error(1)
}

func (m *mockEntryRepository) GetEntries(ctx context.Context, userID int64, categoryRef string) ([]models.Entry, error) {
	args := m.Called(ctx, userID, categoryRef)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Entry), args.Error(1)
}

func (m *mockEntryRepository) DeleteEntry(ctx context.Context, userID, entryID int64) error {
	args := m.Called(ctx, userID, entryID)
	return args.Error(0)
}

func (m *mockEntryRepository) DeleteAllEntries(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mhenke/logbuch/internal/logger"
	"github.com/mhenke/logbuch/internal/store"
	"github.com/mhenke/logbuch/models"
)

func TestEntryService_CreateEntry_Success(t *testing.T) {
	repo := new(mockEntryRepository)
	repo.
		On("CreateEntry", mock.Anything, mock.Anything).
		Return(models.Entry{ID: 5, CategoryRef: "cat_1"}, nil)

	svc := NewEntryService(repo, logger.Nop())
	created, err := svc.CreateEntry(context.Background(), models.Entry{
		UserID:      1,
		CategoryRef: "cat_1",
		DisplayText: "Laufen",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(5), created.ID)
}

func TestEntryService_CreateEntry_AcceptsEmptyFormValues(t *testing.T) {
	repo := new(mockEntryRepository)
	repo.
		On("CreateEntry", mock.Anything, mock.MatchedBy(func(e models.Entry) bool {
			return e.DisplayText == "" && e.PrimaryValue == 0
		})).
		Return(models.Entry{ID: 6, CategoryRef: "cat_1"}, nil)

	svc := NewEntryService(repo, logger.Nop())
	_, err := svc.CreateEntry(context.Background(), models.Entry{UserID: 1, CategoryRef: "cat_1"})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestEntryService_CreateEntry_MissingCategoryRef(t *testing.T) {
	svc := NewEntryService(new(mockEntryRepository), logger.Nop())

	_, err := svc.CreateEntry(context.Background(), models.Entry{UserID: 1, DisplayText: "Laufen"})

	require.ErrorIs(t, err, ErrValidationNoCategoryRef)
}

func TestEntryService_DeleteEntry_NotFound(t *testing.T) {
	repo := new(mockEntryRepository)
	repo.
		On("DeleteEntry", mock.Anything, int64(1), int64(99)).
		Return(store.ErrEntryNotFound)

	svc := NewEntryService(repo, logger.Nop())
	err := svc.DeleteEntry(context.Background(), 1, 99)

	require.ErrorIs(t, err, store.ErrEntryNotFound)
}

func TestEntryService_GetEntries_PassesFilterThrough(t *testing.T) {
	repo := new(mockEntryRepository)
	repo.
		On("GetEntries", mock.Anything, int64(1), "cat_2").
		Return([]models.Entry{{ID: 1, CategoryRef: "cat_2"}}, nil)

	svc := NewEntryService(repo, logger.Nop())
	entries, err := svc.GetEntries(context.Background(), 1, "cat_2")

	require.NoError(t, err)
	require.Len(t, entries, 1)
	repo.AssertExpectations(t)
}

package service

import (
	"context"
	"fmt"

	"github.com/mhenke/logbuch/internal/logger"
	"github.com/mhenke/logbuch/internal/store"
	"github.com/mhenke/logbuch/models"
)

// entryService is the concrete implementation of EntryService. Entries are
// stored exactly as the client submits them; display text and primary value
// are computed client-side and never re-derived here.
type entryService struct {
	entryRepository store.EntryRepository
	logger          *logger.Logger
}

// NewEntryService constructs an EntryService wired to the given
// EntryRepository.
func NewEntryService(entryRepository store.EntryRepository, logger *logger.Logger) EntryService {
	return &entryService{
		entryRepository: entryRepository,
		logger:          logger,
	}
}

// CreateEntry persists a new entry. Only the category reference is required;
// an entry with empty display text and zero value is accepted as submitted.
func (e *entryService) CreateEntry(ctx context.Context, entry models.Entry) (models.Entry, error) {
	log := logger.FromContext(ctx)

	if entry.CategoryRef == "" {
		return models.Entry{}, ErrValidationNoCategoryRef
	}

	created, err := e.entryRepository.CreateEntry(ctx, entry)
	if err != nil {
		log.Err(err).Str("categoryRef", entry.CategoryRef).Msg("entry creation ended with error")
		return models.Entry{}, fmt.Errorf("entry creation ended with error: %w", err)
	}

	return created, nil
}

// GetEntries returns the user's entries, newest first, optionally filtered
// by category reference key.
func (e *entryService) GetEntries(ctx context.Context, userID int64, categoryRef string) ([]models.Entry, error) {
	log := logger.FromContext(ctx)

	entries, err := e.entryRepository.GetEntries(ctx, userID, categoryRef)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("listing entries failed")
		return nil, fmt.Errorf("listing entries failed: %w", err)
	}

	return entries, nil
}

// DeleteEntry removes one entry by ID, scoped to the owning user.
func (e *entryService) DeleteEntry(ctx context.Context, userID, entryID int64) error {
	log := logger.FromContext(ctx)

	if err := e.entryRepository.DeleteEntry(ctx, userID, entryID); err != nil {
		log.Err(err).Int64("entryID", entryID).Msg("deleting entry failed")
		return fmt.Errorf("deleting entry failed: %w", err)
	}

	return nil
}

// DeleteAllEntries removes every entry of the user.
func (e *entryService) DeleteAllEntries(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if err := e.entryRepository.DeleteAllEntries(ctx, userID); err != nil {
		log.Err(err).Int64("userID", userID).Msg("deleting entries failed")
		return fmt.Errorf("deleting entries failed: %w", err)
	}

	return nil
}

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mhenke/logbuch/internal/logger"
	"github.com/mhenke/logbuch/models"
)

// entryRepository is the SQL-backed implementation of [EntryRepository].
// Entries are append-only; the details map is stored as a JSON document.
type entryRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewEntryRepository constructs an [EntryRepository] backed by the provided
// database connection and logger.
func NewEntryRepository(db *DB, logger *logger.Logger) EntryRepository {
	logger.Debug().Msg("creating entry repository")
	return &entryRepository{
		db:     db,
		logger: logger,
	}
}

// CreateEntry persists a new entry and returns it with the server-assigned
// ID. The timestamp is stored as provided by the client; the server never
// stamps entries itself.
func (r *entryRepository) CreateEntry(ctx context.Context, entry models.Entry) (models.Entry, error) {
	log := logger.FromContext(ctx)

	details := entry.Details
	if details == nil {
		details = map[string]string{}
	}
	rawDetails, err := json.Marshal(details)
	if err != nil {
		return models.Entry{}, fmt.Errorf("error serializing entry details: %w", err)
	}

	row := r.db.QueryRowContext(ctx, createEntry,
		entry.UserID,
		entry.CategoryRef,
		entry.DisplayText,
		entry.PrimaryValue,
		string(rawDetails),
		entry.Timestamp,
	)
	if err := row.Scan(&entry.ID); err != nil {
		log.Err(err).Str("func", "*entryRepository.CreateEntry").Msg("error creating entry")
		return models.Entry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return entry, nil
}

// GetEntries returns the user's entries, newest first, optionally filtered
// by category reference key.
func (r *entryRepository) GetEntries(ctx context.Context, userID int64, categoryRef string) ([]models.Entry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectEntriesQuery(userID, categoryRef)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.GetEntries").Msg("error querying entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var entries []models.Entry
	for rows.Next() {
		var entry models.Entry
		var rawDetails string

		if err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.CategoryRef,
			&entry.DisplayText,
			&entry.PrimaryValue,
			&rawDetails,
			&entry.Timestamp,
		); err != nil {
			log.Err(err).Str("func", "*entryRepository.GetEntries").Msg("error scanning entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if err := json.Unmarshal([]byte(rawDetails), &entry.Details); err != nil {
			return nil, fmt.Errorf("error deserializing entry details: %w", err)
		}

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return entries, nil
}

// DeleteEntry removes one entry by ID, scoped to the owning user.
// Returns [ErrEntryNotFound] when no row was affected.
func (r *entryRepository) DeleteEntry(ctx context.Context, userID, entryID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteEntry, userID, entryID)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.DeleteEntry").Msg("error deleting entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrEntryNotFound
	}

	return nil
}

// DeleteAllEntries removes every entry of the user.
func (r *entryRepository) DeleteAllEntries(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteAllEntries, userID); err != nil {
		log.Err(err).Str("func", "*entryRepository.DeleteAllEntries").Msg("error deleting entries")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

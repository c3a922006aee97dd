package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhenke/logbuch/internal/logger"
	"github.com/mhenke/logbuch/models"
)

func newTestEntryRepo(t *testing.T) (*entryRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &entryRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestCreateEntry_Success(t *testing.T) {
	repo, mock, db := newTestEntryRepo(t)
	defer db.Close()

	entry := models.Entry{
		UserID:       1,
		CategoryRef:  "cat_2",
		DisplayText:  "Laufen",
		PrimaryValue: 5,
		Details:      map[string]string{"Dauer": "30"},
		Timestamp:    1700000000000,
	}

	mock.ExpectQuery("INSERT INTO entries").
		WithArgs(int64(1), "cat_2", "Laufen", 5.0, `{"Dauer":"30"}`, int64(1700000000000)).
		WillReturnRows(sqlmock.NewRows([]string{"entry_id"}).AddRow(11))

	created, err := repo.CreateEntry(context.Background(), entry)

	require.NoError(t, err)
	assert.Equal(t, int64(11), created.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateEntry_NilDetailsStoredAsEmptyObject(t *testing.T) {
	repo, mock, db := newTestEntryRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO entries").
		WithArgs(int64(1), "cat_2", "Laufen", 0.0, `{}`, int64(0)).
		WillReturnRows(sqlmock.NewRows([]string{"entry_id"}).AddRow(1))

	_, err := repo.CreateEntry(context.Background(), models.Entry{
		UserID:      1,
		CategoryRef: "cat_2",
		DisplayText: "Laufen",
	})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetEntries_DeserializesDetails(t *testing.T) {
	repo, mock, db := newTestEntryRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"entry_id", "user_id", "category_ref", "display_text", "primary_value", "details", "recorded_at"}).
		AddRow(2, 1, "cat_2", "Apfel: 52 kcal", 52, `{"Produkt":"Apfel","Kalorien (kcal)":"52"}`, 1700000001000).
		AddRow(1, 1, "cat_1", "Laufen", 5, `{}`, 1700000000000)

	mock.ExpectQuery("SELECT (.+) FROM entries").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	entries, err := repo.GetEntries(context.Background(), 1, "")

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Apfel", entries[0].Details["Produkt"])
	assert.Equal(t, map[string]string{}, entries[1].Details)
}

func TestDeleteEntry_NotFound(t *testing.T) {
	repo, mock, db := newTestEntryRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM entries").
		WithArgs(int64(1), int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteEntry(context.Background(), 1, 99)

	require.ErrorIs(t, err, ErrEntryNotFound)
}

func TestDeleteEntry_Success(t *testing.T) {
	repo, mock, db := newTestEntryRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM entries").
		WithArgs(int64(1), int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DeleteEntry(context.Background(), 1, 11)

	require.NoError(t, err)
}

package store

import sq "github.com/Masterminds/squirrel"

const (
	createUser = `INSERT INTO users (login, password_hash)
    VALUES ($1, $2)
    RETURNING user_id, login, password_hash, created_at;`

	findUserByLogin = `SELECT user_id, login, password_hash, created_at
    FROM users
    WHERE login = $1;`

	createCategory = `INSERT INTO categories (user_id, name, special_type, fields)
		VALUES ($1, $2, $3, $4)
		RETURNING id;`

	getCategories = `SELECT id, user_id, name, special_type, fields
		FROM categories
		WHERE user_id = $1
		ORDER BY id;`

	countCategories = `SELECT COUNT(*)
		FROM categories
		WHERE user_id = $1;`

	deleteAllCategories = `DELETE FROM categories
		WHERE user_id = $1;`

	createEntry = `INSERT INTO entries (user_id, category_ref, display_text, primary_value, details, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;`

	deleteEntry = `DELETE FROM entries
		WHERE user_id = $1 AND id = $2;`

	deleteAllEntries = `DELETE FROM entries
		WHERE user_id = $1;`
)

// entryColumns is the scan order shared by every entries SELECT.
var entryColumns = []string{
	"id",
	"user_id",
	"category_ref",
	"display_text",
	"primary_value",
	"details",
	"recorded_at",
}

// buildSelectEntriesQuery builds the entries listing query: always scoped to
// one user, newest first, optionally narrowed to one category reference.
// Dollar placeholders are used by both backends.
func buildSelectEntriesQuery(userID int64, categoryRef string) (string, []any, error) {
	builder := sq.Select(entryColumns...).
		From("entries").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("recorded_at DESC").
		PlaceholderFormat(sq.Dollar)

	if categoryRef != "" {
		builder = builder.Where(sq.Eq{"category_ref": categoryRef})
	}

	return builder.ToSql()
}

package models

import "time"

// Entry is one persisted, timestamped record instance of a category schema.
// Entries are created once and never mutated; deletion by ID is the only
// other state transition.
type Entry struct {
	// ID is the unique identifier assigned by the server on creation.
	// Required for deletion.
	ID int64 `json:"id"`

	// UserID is the owner of the entry.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// CategoryRef identifies the owning category via its derived key
	// ("cat_" + id), see [Category.Ref].
	CategoryRef string `json:"type"`

	// DisplayText is the category name at the time of creation.
	// Denormalized on purpose: it is the grouping key for the summary chart
	// and is never re-synced if the category is later renamed.
	DisplayText string `json:"text"`

	// PrimaryValue is the single numeric figure extracted from the filled
	// fields, used for cross-category summation and charting.
	PrimaryValue float64 `json:"val"`

	// Details maps field labels to formatted "<value> <unit>" strings.
	// Only fields the user actually filled in are present.
	Details map[string]string `json:"details"`

	// Timestamp is the creation instant in unix milliseconds, set by the
	// client at submission time, not by the server.
	Timestamp int64 `json:"timestamp"`
}

// Time returns the entry's timestamp as a time.Time.
func (e Entry) Time() time.Time {
	return time.UnixMilli(e.Timestamp)
}

// TableName returns the name of the database table
// associated with the Entry model.
func (e Entry) TableName() string {
	return "entries"
}

package models

import "time"

// Note is a user-owned text record. Every note references exactly one owner
// and may only be read or mutated by that owner.
type Note struct {
	// ID is the server-assigned note identifier.
	ID int64 `json:"id"`

	// Title is the short note heading.
	Title string `json:"title"`

	// Content is the unbounded note body.
	Content string `json:"content"`

	// Owner references users.username. It is fixed at creation time and
	// never changes afterwards.
	Owner string `json:"owner"`

	// CreatedAt is the timestamp when the note was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last title/content mutation.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}

// NoteUpdate describes a partial mutation of a note. Nil fields are left
// untouched; the owner cannot be updated through this type.
type NoteUpdate struct {
	// ID identifies the note to mutate.
	ID int64

	// Title, when non-nil, replaces the note title.
	Title *string

	// Content, when non-nil, replaces the note body.
	Content *string
}

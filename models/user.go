package models

import "time"

// User represents an account entity used for authentication and authorization.
// The username doubles as the primary key and as the owner reference on notes.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// Username is the unique user identifier, chosen at registration.
	// It is the primary key of the users table.
	Username string `json:"username"`

	// Email is the unique contact address of the user.
	Email string `json:"email"`

	// FirstName is the user's given name. Non-sensitive, shown in UI.
	FirstName string `json:"first_name"`

	// LastName is the user's family name. Non-sensitive, shown in UI.
	LastName string `json:"last_name"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a one-way salted hash, never plaintext.
	// It is never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

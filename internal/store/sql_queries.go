package store

import (
	"time"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// Column lists shared by queries and their RETURNING clauses. Keeping them in
// one place guards the Scan call sites against column-order drift.
const (
	userColumns    = "username, email, first_name, last_name, password_hash, created_at"
	noteColumns    = "id, title, content, owner, created_at, updated_at"
	sessionColumns = "token, username, created_at, expires_at"
)

// All queries are built through the DB's squirrel builder so that the active
// backend's placeholder format is applied ($n for PostgreSQL, ? for SQLite).

func (db *DB) insertUserQuery(user models.User) (string, []any, error) {
	return db.builder.
		Insert(user.TableName()).
		Columns("username", "email", "first_name", "last_name", "password_hash").
		Values(user.Username, user.Email, user.FirstName, user.LastName, user.PasswordHash).
		Suffix("RETURNING " + userColumns).
		ToSql()
}

func (db *DB) selectUserQuery(username string) (string, []any, error) {
	return db.builder.
		Select("username", "email", "first_name", "last_name", "password_hash", "created_at").
		From(models.User{}.TableName()).
		Where(map[string]any{"username": username}).
		ToSql()
}

func (db *DB) deleteUserQuery(username string) (string, []any, error) {
	return db.builder.
		Delete(models.User{}.TableName()).
		Where(map[string]any{"username": username}).
		ToSql()
}

func (db *DB) insertNoteQuery(note models.Note) (string, []any, error) {
	return db.builder.
		Insert(note.TableName()).
		Columns("title", "content", "owner").
		Values(note.Title, note.Content, note.Owner).
		Suffix("RETURNING " + noteColumns).
		ToSql()
}

func (db *DB) selectNoteQuery(id int64) (string, []any, error) {
	return db.builder.
		Select("id", "title", "content", "owner", "created_at", "updated_at").
		From(models.Note{}.TableName()).
		Where(map[string]any{"id": id}).
		ToSql()
}

func (db *DB) selectNotesByOwnerQuery(owner string) (string, []any, error) {
	return db.builder.
		Select("id", "title", "content", "owner", "created_at", "updated_at").
		From(models.Note{}.TableName()).
		Where(map[string]any{"owner": owner}).
		OrderBy("id ASC").
		ToSql()
}

// updateNoteQuery builds a partial UPDATE: only the non-nil fields of update
// are written, updated_at is always touched, and the owner column is never
// part of the SET list.
func (db *DB) updateNoteQuery(update models.NoteUpdate, now time.Time) (string, []any, error) {
	q := db.builder.
		Update(models.Note{}.TableName()).
		Set("updated_at", now)

	if update.Title != nil {
		q = q.Set("title", *update.Title)
	}
	if update.Content != nil {
		q = q.Set("content", *update.Content)
	}

	return q.
		Where(map[string]any{"id": update.ID}).
		Suffix("RETURNING " + noteColumns).
		ToSql()
}

func (db *DB) deleteNoteQuery(id int64) (string, []any, error) {
	return db.builder.
		Delete(models.Note{}.TableName()).
		Where(map[string]any{"id": id}).
		ToSql()
}

func (db *DB) deleteNotesByOwnerQuery(owner string) (string, []any, error) {
	return db.builder.
		Delete(models.Note{}.TableName()).
		Where(map[string]any{"owner": owner}).
		ToSql()
}

func (db *DB) insertSessionQuery(session models.Session) (string, []any, error) {
	return db.builder.
		Insert(session.TableName()).
		Columns("token", "username", "created_at", "expires_at").
		Values(session.Token, session.Username, session.CreatedAt, session.ExpiresAt).
		ToSql()
}

func (db *DB) selectSessionQuery(token string) (string, []any, error) {
	return db.builder.
		Select("token", "username", "created_at", "expires_at").
		From(models.Session{}.TableName()).
		Where(map[string]any{"token": token}).
		ToSql()
}

func (db *DB) deleteSessionQuery(token string) (string, []any, error) {
	return db.builder.
		Delete(models.Session{}.TableName()).
		Where(map[string]any{"token": token}).
		ToSql()
}

func (db *DB) deleteSessionsByUserQuery(username string) (string, []any, error) {
	return db.builder.
		Delete(models.Session{}.TableName()).
		Where(map[string]any{"username": username}).
		ToSql()
}

func (db *DB) deleteExpiredSessionsQuery(now time.Time) (string, []any, error) {
	return db.builder.
		Delete(models.Session{}.TableName()).
		Where("expires_at < ?", now).
		ToSql()
}

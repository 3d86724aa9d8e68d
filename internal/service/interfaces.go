package service

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User, password string) (models.User, error)
	Login(ctx context.Context, username string, password string) (models.User, error)
	CreateSession(ctx context.Context, username string) (models.Session, error)
	ValidateSession(ctx context.Context, token string) (models.Session, error)
	Logout(ctx context.Context, token string) error
}

type NotesService interface {
	AddNote(ctx context.Context, owner string, title string, content string) (models.Note, error)
	NoteForEdit(ctx context.Context, id int64) (models.Note, error)
	EditNote(ctx context.Context, id int64, title string, content string) (models.Note, error)
	DeleteNote(ctx context.Context, id int64) error
}

type UsersService interface {
	Profile(ctx context.Context, username string) (models.User, []models.Note, error)
	DeleteUser(ctx context.Context, username string) error
}

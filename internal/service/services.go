package service

import (
	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
)

type Services struct {
	AuthService  AuthService
	NotesService NotesService
	UsersService UsersService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:  NewAuthService(storages.UserRepository, storages.SessionRepository, cfg.App, logger),
		NotesService: NewNotesService(storages.NoteRepository, logger),
		UsersService: NewUsersService(storages.UserRepository, storages.NoteRepository, logger),
	}
}

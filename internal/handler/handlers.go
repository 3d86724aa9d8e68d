package handler

import (
	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/handler/http"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.App, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	httpHandler, err := http.NewHandler(services, cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Handlers{HTTP: httpHandler}, nil
}

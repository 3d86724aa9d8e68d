package workers

import (
	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles all background workers of the application.
func NewWorkers(storages *store.Storages, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewSessionSweeper(storages.SessionRepository, cfg, logger),
		},
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/mock"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount int
}

func (m *mockWorker) Run() {
	m.runCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := &Workers{workers: []Worker{w1, w2, w3}}
	ws.Run()

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{workers: []Worker{}}

	// Should not panic on empty workers list
	ws.Run()
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run()
}

func TestSessionSweeper_SweepDeletesExpiredRows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sessions := mock.NewMockSessionRepository(ctrl)
	sessions.EXPECT().DeleteExpiredSessions(gomock.Any(), gomock.Any()).Return(int64(3), nil)

	sweeper := NewSessionSweeper(sessions, config.Workers{SessionSweepInterval: time.Minute}, logger.Nop()).(*sessionSweeper)
	sweeper.sweep()
}

func TestSessionSweeper_SweepSurvivesStorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sessions := mock.NewMockSessionRepository(ctrl)
	sessions.EXPECT().DeleteExpiredSessions(gomock.Any(), gomock.Any()).
		Return(int64(0), errors.New("storage unavailable"))

	sweeper := NewSessionSweeper(sessions, config.Workers{SessionSweepInterval: time.Minute}, logger.Nop()).(*sessionSweeper)

	// must not panic; the next tick simply tries again
	sweeper.sweep()
}

package app

import (
	"context"

	"go.trai.ch/freeze/internal/core/domain"
	"go.trai.ch/zerr"
)

// History returns the recorded builds, newest first.
func (a *App) History(_ context.Context) ([]domain.BuildRecord, error) {
	records, err := a.store.List()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read build history")
	}
	return records, nil
}

// RunLog returns the step journal of a run. An empty runID selects the most recent run,
// including runs that were aborted and never reached the history.
func (a *App) RunLog(_ context.Context, runID string) (domain.RunLog, error) {
	log, err := a.runLogs.Read(runID)
	if err != nil {
		return domain.RunLog{}, zerr.Wrap(err, "failed to read run log")
	}
	return log, nil
}

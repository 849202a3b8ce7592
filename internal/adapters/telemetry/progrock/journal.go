package progrock

import (
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vito/progrock"
	"go.trai.ch/freeze/internal/core/domain"
	"go.trai.ch/freeze/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RunLogStore = (*JournalStore)(nil)

// JournalStore implements ports.RunLogStore by replaying the journals a Recorder wrote.
type JournalStore struct {
	dir string
}

// NewJournalStore creates a JournalStore reading journals from dir.
func NewJournalStore(dir string) *JournalStore {
	return &JournalStore{dir: dir}
}

// Read replays the journal of runID, or of the most recently written run when runID is empty.
func (s *JournalStore) Read(runID string) (domain.RunLog, error) {
	if runID == "" {
		latest, err := s.latest()
		if err != nil {
			return domain.RunLog{}, err
		}
		runID = latest
	}

	path := filepath.Join(s.dir, runID+journalExt)
	//nolint:gosec // Path is built from the run log directory and a run ID
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.RunLog{}, zerr.With(zerr.Wrap(domain.ErrRunLogNotFound, "no journal for run"), "run_id", runID)
		}
		return domain.RunLog{}, zerr.With(zerr.Wrap(err, "failed to open run journal"), "path", path)
	}
	defer func() { _ = f.Close() }()

	steps, err := replay(f)
	if err != nil {
		return domain.RunLog{}, zerr.With(err, "path", path)
	}
	return domain.RunLog{RunID: runID, Steps: steps}, nil
}

// Reset removes every journal.
func (s *JournalStore) Reset() error {
	if err := os.RemoveAll(s.dir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove run logs"), "dir", s.dir)
	}
	return nil
}

func (s *JournalStore) latest() (string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", zerr.With(zerr.Wrap(err, "failed to list run logs"), "dir", s.dir)
	}

	var (
		newest  string
		newestT time.Time
	)
	for _, e := range entries {
		name, ok := strings.CutSuffix(e.Name(), journalExt)
		if !ok || e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if newest == "" || info.ModTime().After(newestT) {
			newest, newestT = name, info.ModTime()
		}
	}

	if newest == "" {
		return "", zerr.Wrap(domain.ErrRunLogNotFound, "no runs recorded")
	}
	return newest, nil
}

// replay folds the status updates of a journal into one StepLog per vertex.
// Later updates of a vertex overwrite earlier ones; log chunks are concatenated.
func replay(r io.Reader) ([]domain.StepLog, error) {
	var (
		order  []string
		steps  = map[string]*domain.StepLog{}
		output = map[string]*strings.Builder{}
	)
	step := func(id string) *domain.StepLog {
		s, ok := steps[id]
		if !ok {
			s = &domain.StepLog{}
			steps[id] = s
			output[id] = &strings.Builder{}
			order = append(order, id)
		}
		return s
	}

	dec := json.NewDecoder(r)
	for {
		var update progrock.StatusUpdate
		if err := dec.Decode(&update); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, zerr.Wrap(err, "failed to decode run journal")
		}

		for _, v := range update.GetVertexes() {
			s := step(v.GetId())
			s.Name = v.GetName()
			if ts := v.GetStarted(); ts != nil {
				s.Started = ts.AsTime()
			}
			if ts := v.GetCompleted(); ts != nil {
				s.Completed = ts.AsTime()
			}
			s.Error = v.GetError()
			if v.GetCanceled() && s.Error == "" {
				s.Error = "canceled"
			}
		}
		for _, l := range update.GetLogs() {
			step(l.GetVertex())
			output[l.GetVertex()].Write(l.GetData())
		}
	}

	out := make([]domain.StepLog, 0, len(order))
	for _, id := range order {
		s := steps[id]
		if s.Name == "" {
			// Log lines for a vertex the journal never described.
			continue
		}
		s.Output = output[id].String()
		out = append(out, *s)
	}
	return out, nil
}

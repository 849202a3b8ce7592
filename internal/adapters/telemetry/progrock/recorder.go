// Package progrock records build steps as progrock vertices and keeps one
// progrock journal per run.
package progrock

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/freeze/internal/core/ports"
	"go.trai.ch/zerr"
)

// journalExt is the file suffix of a run journal: one JSON status update per line.
const journalExt = ".jsonl"

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements ports.Telemetry by writing each run to its own journal file.
// Vertices recorded outside Begin and End are discarded.
type Recorder struct {
	dir    string
	create func(path string) (progrock.Writer, error)

	mu  sync.Mutex
	rec *progrock.Recorder
	seq int
}

// New creates a Recorder that keeps journals in dir.
func New(dir string) *Recorder {
	return NewWithWriter(dir, progrock.CreateJournal)
}

// NewWithWriter creates a Recorder that opens each run's writer with create.
func NewWithWriter(dir string, create func(path string) (progrock.Writer, error)) *Recorder {
	return &Recorder{
		dir:    dir,
		create: create,
	}
}

// Begin opens the journal for runID. A recording still in progress is ended first.
func (r *Recorder) Begin(runID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.endLocked(); err != nil {
		return err
	}

	if err := os.MkdirAll(r.dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create run log directory"), "dir", r.dir)
	}

	path := filepath.Join(r.dir, runID+journalExt)
	w, err := r.create(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create run journal"), "path", path)
	}

	r.rec = progrock.NewRecorder(w)
	r.seq = 0
	return nil
}

// Record starts a vertex for the named step.
// Each call gets its own digest, so a step recorded twice in one run yields two vertices.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	r.mu.Lock()
	if r.rec == nil {
		r.rec = progrock.NewRecorder(progrock.Discard{})
	}
	r.seq++
	d := digest.FromString(strconv.Itoa(r.seq) + "/" + name)
	rec := r.rec
	r.mu.Unlock()

	vertex := &Vertex{vertex: rec.Vertex(d, name)}
	return ports.ContextWithVertex(ctx, vertex), vertex
}

// End completes the run's root group and closes its journal.
func (r *Recorder) End() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.endLocked()
}

func (r *Recorder) endLocked() error {
	if r.rec == nil {
		return nil
	}
	rec := r.rec
	r.rec = nil

	rec.Complete()
	if err := rec.Close(); err != nil {
		return zerr.Wrap(err, "failed to close run journal")
	}
	return nil
}

package ports

import (
	"context"
	"io"

	"go.trai.ch/freeze/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records the steps of a run.
type Telemetry interface {
	// Begin starts the recording of the run with the given ID.
	Begin(runID string) error
	// Record starts a new vertex and returns a context carrying it.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// End finishes the current recording and flushes it.
	End() error
}

// Vertex is a single recorded unit of work.
type Vertex interface {
	Stdout() io.Writer
	Stderr() io.Writer
	Log(level domain.LogLevel, msg string)
	Complete(err error)
}

// RunLogStore reads back the recordings written by Telemetry.
type RunLogStore interface {
	// Read returns the recording of the given run, or of the most recent run when runID is empty.
	Read(runID string) (domain.RunLog, error)
	// Reset deletes every recording.
	Reset() error
}

type vertexKey struct{}

// ContextWithVertex returns a copy of ctx carrying v.
func ContextWithVertex(ctx context.Context, v Vertex) context.Context {
	return context.WithValue(ctx, vertexKey{}, v)
}

// VertexFromContext returns the vertex carried by ctx, if any.
func VertexFromContext(ctx context.Context) (Vertex, bool) {
	v, ok := ctx.Value(vertexKey{}).(Vertex)
	return v, ok
}

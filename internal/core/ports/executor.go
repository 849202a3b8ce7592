package ports

import (
	"context"

	"go.trai.ch/freeze/internal/core/domain"
)

// ProcessRunner runs external tools.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type ProcessRunner interface {
	// Run executes the command synchronously and blocks until it exits.
	//
	// The returned result is populated even when err is non-nil, so callers can
	// inspect the exit status and the captured output of a failed process.
	Run(ctx context.Context, cmd domain.Command) (domain.ProcessResult, error)
}

package ports

import "go.trai.ch/freeze/internal/core/domain"

// Console is the user-facing output of a run.
//
//go:generate go run go.uber.org/mock/mockgen -source=console.go -destination=mocks/mock_console.go -package=mocks
type Console interface {
	// Print writes one message line.
	Print(level domain.MessageLevel, msg string)

	// Pause waits for the operator to acknowledge the result.
	// It returns immediately when no operator can answer.
	Pause()
}

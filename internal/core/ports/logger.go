// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/freeze/internal/core/domain"

// Logger defines the interface for logging.
//
//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(err error)

	// SetLevel changes the lowest level that is written.
	SetLevel(level domain.LogLevel)
}

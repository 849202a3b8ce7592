package ports

import "go.trai.ch/freeze/internal/core/domain"

// BuildRecordStore defines the interface for persisting the build history.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type BuildRecordStore interface {
	// Append adds a record to the history.
	Append(record domain.BuildRecord) error

	// List returns all records, newest first.
	List() ([]domain.BuildRecord, error)

	// Reset deletes the history.
	Reset() error
}

package ports

import (
	"context"

	"go.trai.ch/freeze/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks

// Prober checks that the interpreter is available.
type Prober interface {
	// Probe queries the interpreter's version and returns it.
	// It returns an error wrapping domain.ErrMissingPrerequisite when the interpreter is unusable.
	Probe(ctx context.Context, interpreter string) (string, error)
}

// PackageManager installs the packages the build depends on.
type PackageManager interface {
	// Install installs the packages into the interpreter's environment in quiet mode.
	Install(ctx context.Context, interpreter string, packages []string) error
}

// Packager turns the entry script into a single executable.
type Packager interface {
	// Package invokes the packaging tool once with the configuration's fixed flags.
	Package(ctx context.Context, cfg domain.BuildConfig) error
}

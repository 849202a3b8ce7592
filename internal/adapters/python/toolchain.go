// Package python drives the Python interpreter, pip and PyInstaller.
package python

import (
	"go.trai.ch/freeze/internal/core/ports"
)

var (
	_ ports.Prober         = (*Toolchain)(nil)
	_ ports.PackageManager = (*Toolchain)(nil)
	_ ports.Packager       = (*Toolchain)(nil)
)

// Toolchain implements the interpreter probe, the package installer and the
// packager on top of a ports.ProcessRunner.
type Toolchain struct {
	runner ports.ProcessRunner
	logger ports.Logger
}

// NewToolchain creates a Toolchain that runs every tool through runner.
func NewToolchain(runner ports.ProcessRunner, logger ports.Logger) *Toolchain {
	return &Toolchain{
		runner: runner,
		logger: logger,
	}
}

package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidConfig is returned when the build configuration is missing a required setting.
	ErrInvalidConfig = zerr.New("invalid build configuration")

	// ErrMissingPrerequisite is returned when the interpreter cannot be found or does not run.
	ErrMissingPrerequisite = zerr.New("missing prerequisite")

	// ErrDependencyInstall is returned when the package installer exits unsuccessfully.
	ErrDependencyInstall = zerr.New("dependency installation failed")

	// ErrInputMissing is returned when the entry script or resource is not on disk.
	ErrInputMissing = zerr.New("build input missing")

	// ErrPackagerFailed is returned when the packaging tool exits unsuccessfully.
	ErrPackagerFailed = zerr.New("packager failed")

	// ErrArtifactMissing is returned when no file exists at the expected artifact path.
	ErrArtifactMissing = zerr.New("artifact missing")

	// ErrBuildFailed is returned after a completed run whose artifact check failed.
	ErrBuildFailed = zerr.New("build failed")

	// ErrBuildAborted is returned when a fail-fast step stopped the run early.
	ErrBuildAborted = zerr.New("build aborted")

	// ErrHistoryCorrupt is returned when the build history file cannot be parsed.
	ErrHistoryCorrupt = zerr.New("build history is corrupt")

	// ErrRunLogNotFound is returned when no step journal exists for the requested run.
	ErrRunLogNotFound = zerr.New("run log not found")

	// ErrCommandFailed is returned when an external process exits with a non-zero status.
	ErrCommandFailed = zerr.New("command failed")
)

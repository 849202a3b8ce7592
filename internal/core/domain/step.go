package domain

import "time"

// Step names used by the packaging pipeline.
const (
	StepPrerequisite = "check-prerequisite"
	StepInstall      = "install-dependencies"
	StepInputs       = "check-inputs"
	StepBuild        = "run-build"
	StepVerify       = "verify-artifact"
)

// StepResult records how a single pipeline step finished.
type StepResult struct {
	Name     string
	OK       bool
	Abort    bool
	Err      error
	Duration time.Duration
}

// Report summarises a packaging run.
type Report struct {
	RunID    string
	Steps    []StepResult
	Outcome  Outcome
	Artifact string
	Stale    bool
}

// Step returns the result of the named step, if it ran.
func (r *Report) Step(name string) (StepResult, bool) {
	for _, s := range r.Steps {
		if s.Name == name {
			return s, true
		}
	}
	return StepResult{}, false
}

// Aborted reports whether a fail-fast step stopped the run.
func (r *Report) Aborted() bool {
	for _, s := range r.Steps {
		if s.Abort {
			return true
		}
	}
	return false
}

package domain

// Outcome is the overall result of a packaging run.
type Outcome int

const (
	// OutcomeSuccess means a file exists at the artifact path after the build.
	OutcomeSuccess Outcome = iota
	// OutcomeFailure means the run completed but no artifact was found.
	OutcomeFailure
	// OutcomeAborted means the prerequisite check failed and nothing else ran.
	OutcomeAborted
)

// Exit codes returned by the freeze CLI.
const (
	// ExitSuccess indicates the artifact was produced.
	ExitSuccess = 0
	// ExitFailure indicates a runtime failure (build failed, store unreadable, etc.).
	ExitFailure = 1
	// ExitEnvError indicates the environment lacks a prerequisite such as the interpreter.
	ExitEnvError = 3
)

// String returns the lower-case name of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	case OutcomeAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// ExitCode maps the outcome to the process exit status.
func (o Outcome) ExitCode() int {
	switch o {
	case OutcomeSuccess:
		return ExitSuccess
	case OutcomeAborted:
		return ExitEnvError
	default:
		return ExitFailure
	}
}

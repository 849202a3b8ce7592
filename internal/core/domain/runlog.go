package domain

import "time"

// StepLog is the recorded trace of one pipeline step.
type StepLog struct {
	Name      string
	Started   time.Time
	Completed time.Time
	Error     string
	Output    string
}

// Duration is how long the step ran. A step that never completed has no duration.
func (s StepLog) Duration() time.Duration {
	if s.Started.IsZero() || s.Completed.IsZero() {
		return 0
	}
	return s.Completed.Sub(s.Started)
}

// Failed reports whether the step ended with an error.
func (s StepLog) Failed() bool {
	return s.Error != ""
}

// RunLog is the step journal of one run, in the order the steps started.
type RunLog struct {
	RunID string
	Steps []StepLog
}

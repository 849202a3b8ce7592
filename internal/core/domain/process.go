package domain

import (
	"strings"
	"time"
)

// Command describes one invocation of an external tool.
type Command struct {
	Name string
	Args []string

	// Quiet suppresses pass-through of the process output to the console.
	// The output is still captured in the ProcessResult.
	Quiet bool
}

// String renders the command line for logs.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// ProcessResult captures the outcome of executing a Command.
type ProcessResult struct {
	ExitCode int
	Output   string
	Duration time.Duration
}

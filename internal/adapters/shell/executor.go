// Package shell provides the process runner adapter.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"time"

	"go.trai.ch/freeze/internal/core/domain"
	"go.trai.ch/freeze/internal/core/ports"
	"go.trai.ch/zerr"
)

// maxCapturedOutput bounds the output kept in a ProcessResult.
const maxCapturedOutput = 64 * 1024

var _ ports.ProcessRunner = (*Executor)(nil)

// Executor implements ports.ProcessRunner using os/exec.
type Executor struct {
	logger ports.Logger
	stdout io.Writer
	stderr io.Writer
}

// NewExecutor creates an Executor that passes process output through to the console.
func NewExecutor(logger ports.Logger) *Executor {
	return NewExecutorWithOutput(logger, os.Stdout, os.Stderr)
}

// NewExecutorWithOutput creates an Executor that passes process output through to the given writers.
func NewExecutorWithOutput(logger ports.Logger, stdout, stderr io.Writer) *Executor {
	return &Executor{
		logger: logger,
		stdout: stdout,
		stderr: stderr,
	}
}

// Run executes the command and waits for it to exit.
//
// Output is captured for the result and, unless the command is quiet, written
// unmodified to the executor's stdout/stderr. When the context carries a
// telemetry vertex the output is also recorded on it.
func (e *Executor) Run(ctx context.Context, c domain.Command) (domain.ProcessResult, error) {
	if c.Name == "" {
		return domain.ProcessResult{ExitCode: -1}, zerr.Wrap(domain.ErrCommandFailed, "empty command")
	}

	cmd := exec.CommandContext(ctx, c.Name, c.Args...) //nolint:gosec // command comes from build configuration

	capture := newTailBuffer(maxCapturedOutput)
	stdout := []io.Writer{capture}
	stderr := []io.Writer{capture}
	if !c.Quiet {
		stdout = append(stdout, e.stdout)
		stderr = append(stderr, e.stderr)
	}
	if v, ok := ports.VertexFromContext(ctx); ok {
		v.Log(domain.LogLevelInfo, "running "+c.String())
		stdout = append(stdout, v.Stdout())
		stderr = append(stderr, v.Stderr())
	}
	cmd.Stdout = io.MultiWriter(stdout...)
	cmd.Stderr = io.MultiWriter(stderr...)

	e.logger.Debug("running " + c.String())

	start := time.Now()
	err := cmd.Run()
	result := domain.ProcessResult{
		Output:   capture.String(),
		Duration: time.Since(start),
	}
	if err == nil {
		return result, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
	} else {
		result.ExitCode = -1 // not started, or killed by a signal
	}

	failure := zerr.Wrap(domain.ErrCommandFailed, c.Name)
	failure = zerr.With(failure, "exit_code", result.ExitCode)
	failure = zerr.With(failure, "reason", err.Error())
	return result, failure
}

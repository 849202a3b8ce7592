package python

import (
	"context"
	"strings"

	"go.trai.ch/freeze/internal/core/domain"
	"go.trai.ch/zerr"
)

// Probe runs "<interpreter> --version" without echoing its output.
// Any failure to start or a non-zero exit means the interpreter is unavailable.
func (t *Toolchain) Probe(ctx context.Context, interpreter string) (string, error) {
	res, err := t.runner.Run(ctx, domain.Command{
		Name:  interpreter,
		Args:  []string{"--version"},
		Quiet: true,
	})
	if err != nil {
		probeErr := zerr.Wrap(domain.ErrMissingPrerequisite, "interpreter unavailable")
		probeErr = zerr.With(probeErr, "interpreter", interpreter)
		probeErr = zerr.With(probeErr, "exit_code", res.ExitCode)
		return "", zerr.With(probeErr, "reason", err.Error())
	}

	// Python 2 printed the version on stderr; the runner captures both streams.
	version := strings.TrimSpace(res.Output)
	t.logger.Debug("found " + version)
	return version, nil
}

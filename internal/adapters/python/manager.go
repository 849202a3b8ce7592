package python

import (
	"context"
	"strings"

	"go.trai.ch/freeze/internal/core/domain"
	"go.trai.ch/zerr"
)

// InstallArgs returns the interpreter arguments that install packages with pip.
func InstallArgs(packages []string) []string {
	args := make([]string, 0, len(packages)+4)
	args = append(args, "-m", "pip", "install", "--quiet")
	return append(args, packages...)
}

// Install runs pip once for the whole package list. Versions are not pinned
// and nothing is rolled back when pip fails part way.
func (t *Toolchain) Install(ctx context.Context, interpreter string, packages []string) error {
	res, err := t.runner.Run(ctx, domain.Command{
		Name: interpreter,
		Args: InstallArgs(packages),
	})
	if err != nil {
		installErr := zerr.Wrap(domain.ErrDependencyInstall, "pip install failed")
		installErr = zerr.With(installErr, "packages", strings.Join(packages, " "))
		installErr = zerr.With(installErr, "exit_code", res.ExitCode)
		return zerr.With(installErr, "reason", err.Error())
	}
	return nil
}

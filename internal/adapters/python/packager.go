package python

import (
	"context"
	"os"

	"go.trai.ch/freeze/internal/core/domain"
	"go.trai.ch/zerr"
)

// PackagerArgs returns the interpreter arguments for the PyInstaller invocation.
// The flags come from cfg.Flags; output and work directories are only passed
// when they differ from PyInstaller's own defaults.
func PackagerArgs(cfg domain.BuildConfig) []string {
	args := []string{"-m", "PyInstaller"}
	if cfg.Flags.OneFile {
		args = append(args, "--onefile")
	}
	if cfg.Flags.Windowed {
		args = append(args, "--noconsole")
	}
	args = append(args, "--add-data", cfg.Resource+string(os.PathListSeparator)+cfg.Flags.DataDest)
	if cfg.OutputDir != domain.DefaultOutputDir {
		args = append(args, "--distpath", cfg.OutputDir)
	}
	if cfg.WorkDir != "" && cfg.WorkDir != domain.DefaultWorkDir {
		args = append(args, "--workpath", cfg.WorkDir)
	}
	return append(args, cfg.Script)
}

// Package invokes PyInstaller once and waits for it. Its output goes straight
// to the console.
func (t *Toolchain) Package(ctx context.Context, cfg domain.BuildConfig) error {
	res, err := t.runner.Run(ctx, domain.Command{
		Name: cfg.Interpreter,
		Args: PackagerArgs(cfg),
	})
	if err != nil {
		packErr := zerr.Wrap(domain.ErrPackagerFailed, "pyinstaller failed")
		packErr = zerr.With(packErr, "script", cfg.Script)
		packErr = zerr.With(packErr, "exit_code", res.ExitCode)
		return zerr.With(packErr, "reason", err.Error())
	}
	t.logger.Debug("packager finished in " + res.Duration.String())
	return nil
}

package app

import (
	"context"
	"os"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	ConfigPath string
	// All also clears the build history.
	All bool
}

// Clean removes the packager's output directory, work directory and spec file.
// Paths that do not exist are ignored.
func (a *App) Clean(ctx context.Context, opts CleanOptions) error {
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	g, _ := errgroup.WithContext(ctx)

	for _, path := range []string{cfg.OutputDir, cfg.WorkDir, cfg.SpecFile()} {
		if path == "" {
			continue
		}
		g.Go(func() error {
			a.logger.Info("removing " + path)
			if err := os.RemoveAll(path); err != nil {
				return zerr.With(zerr.Wrap(err, "failed to remove"), "path", path)
			}
			return nil
		})
	}

	if opts.All {
		g.Go(func() error {
			a.logger.Info("removing build history")
			return zerr.Wrap(a.store.Reset(), "failed to reset build history")
		})
		g.Go(func() error {
			a.logger.Info("removing run logs")
			return zerr.Wrap(a.runLogs.Reset(), "failed to reset run logs")
		})
	}

	return g.Wait()
}

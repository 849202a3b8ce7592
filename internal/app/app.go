// Package app implements the application layer for freeze.
package app

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/freeze/internal/core/domain"
	"go.trai.ch/freeze/internal/core/ports"
	"go.trai.ch/freeze/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	console      ports.Console
	prober       ports.Prober
	installer    ports.PackageManager
	packager     ports.Packager
	verifier     ports.Verifier
	hasher       ports.Hasher
	store        ports.BuildRecordStore
	runLogs      ports.RunLogStore
	pipeline     *pipeline.Pipeline
	now          func() time.Time
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	console ports.Console,
	prober ports.Prober,
	installer ports.PackageManager,
	packager ports.Packager,
	verifier ports.Verifier,
	hasher ports.Hasher,
	store ports.BuildRecordStore,
	runLogs ports.RunLogStore,
	pipe *pipeline.Pipeline,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		console:      console,
		prober:       prober,
		installer:    installer,
		packager:     packager,
		verifier:     verifier,
		hasher:       hasher,
		store:        store,
		runLogs:      runLogs,
		pipeline:     pipe,
		now:          time.Now,
	}
}

// SetVerbose switches the diagnostic log lines on or off.
func (a *App) SetVerbose(verbose bool) {
	if verbose {
		a.logger.SetLevel(domain.LogLevelDebug)
		return
	}
	a.logger.SetLevel(domain.LogLevelInfo)
}

// BuildOptions configuration for the Build method.
type BuildOptions struct {
	ConfigPath string
	NoPause    bool
}

// Build runs the packaging pipeline and reports its outcome.
//
// An aborted run returns ErrBuildAborted without pausing or recording history.
// A run whose artifact is missing returns ErrBuildFailed after the pause.
// A run interrupted before the artifact check returns ErrBuildFailed without pausing.
// The report is returned whenever the configuration could be loaded.
func (a *App) Build(ctx context.Context, opts BuildOptions) (*domain.Report, error) {
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	report := &domain.Report{
		RunID:    uuid.NewString(),
		Artifact: cfg.ArtifactPath(),
	}

	run := &buildRun{app: a, cfg: cfg, report: report}
	report.Steps = a.pipeline.Run(ctx, report.RunID, run.steps())

	if _, verified := report.Step(domain.StepVerify); !verified && ctx.Err() != nil {
		return a.interrupted(ctx, cfg, report, run.artifactHash)
	}

	if report.Aborted() {
		report.Outcome = domain.OutcomeAborted
		return report, zerr.With(zerr.Wrap(domain.ErrBuildAborted, "prerequisite check failed"), "run_id", report.RunID)
	}

	report.Outcome = domain.OutcomeFailure
	if verify, ok := report.Step(domain.StepVerify); ok && verify.OK {
		report.Outcome = domain.OutcomeSuccess
	}

	a.recordHistory(cfg, report, run.artifactHash)

	if !opts.NoPause {
		a.console.Pause()
	}

	if report.Outcome != domain.OutcomeSuccess {
		return report, zerr.With(zerr.Wrap(domain.ErrBuildFailed, "artifact not produced"), "artifact", report.Artifact)
	}
	return report, nil
}

// interrupted reports a run the operator stopped before the artifact was checked.
func (a *App) interrupted(ctx context.Context, cfg domain.BuildConfig, report *domain.Report, artifactHash string) (*domain.Report, error) {
	report.Outcome = domain.OutcomeFailure
	a.console.Print(domain.MessageFailure, domain.MsgBuildFailed)
	a.recordHistory(cfg, report, artifactHash)

	failure := zerr.With(zerr.Wrap(domain.ErrBuildFailed, "build interrupted"), "reason", context.Cause(ctx).Error())
	return report, zerr.With(failure, "run_id", report.RunID)
}

func (a *App) recordHistory(cfg domain.BuildConfig, report *domain.Report, artifactHash string) {
	record := domain.BuildRecord{
		RunID:        report.RunID,
		Script:       cfg.Script,
		Artifact:     report.Artifact,
		ArtifactHash: artifactHash,
		Outcome:      report.Outcome.String(),
		Stale:        report.Stale,
		Timestamp:    a.now(),
	}
	if err := a.store.Append(record); err != nil {
		a.logger.Error(zerr.Wrap(err, "failed to record build history"))
	}
}

package app

import (
	"context"

	"go.trai.ch/freeze/internal/core/domain"
	"go.trai.ch/freeze/internal/core/ports"
	"go.trai.ch/freeze/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// buildRun carries the state shared between the steps of one Build call.
type buildRun struct {
	app    *App
	cfg    domain.BuildConfig
	report *domain.Report

	priorHash    string
	packagerErr  error
	artifactHash string
}

func (r *buildRun) steps() []pipeline.Step {
	return []pipeline.Step{
		{Name: domain.StepPrerequisite, AbortOnFailure: true, Run: r.checkPrerequisite},
		{Name: domain.StepInstall, Run: r.installDependencies},
		{Name: domain.StepInputs, Run: r.checkInputs},
		{Name: domain.StepBuild, Run: r.runBuild},
		{Name: domain.StepVerify, Run: r.verifyArtifact},
	}
}

func (r *buildRun) checkPrerequisite(ctx context.Context) error {
	if _, err := r.app.prober.Probe(ctx, r.cfg.Interpreter); err != nil {
		// An interrupted version check says nothing about the interpreter.
		if ctx.Err() != nil {
			return zerr.Wrap(ctx.Err(), "prerequisite check interrupted")
		}
		r.app.console.Print(domain.MessageFailure, domain.MsgPythonMissing)
		return err
	}
	return nil
}

// installDependencies never fails the run. A broken install shows up later as a failed build.
func (r *buildRun) installDependencies(ctx context.Context) error {
	r.app.console.Print(domain.MessageInfo, domain.MsgInstalling)
	if err := r.app.installer.Install(ctx, r.cfg.Interpreter, r.cfg.Packages); err != nil {
		r.warn(ctx, "package installation failed, continuing: "+err.Error())
		return err
	}
	return nil
}

func (r *buildRun) checkInputs(_ context.Context) error {
	missing, err := r.app.verifier.MissingInputs(r.cfg.Inputs())
	if err != nil {
		return err
	}
	if len(missing) == 0 {
		return nil
	}

	for _, path := range missing {
		r.app.console.Print(domain.MessageWarning, domain.MsgInputMissing+path)
	}
	return zerr.With(zerr.Wrap(domain.ErrInputMissing, "inputs missing"), "paths", missing)
}

func (r *buildRun) runBuild(ctx context.Context) error {
	r.app.console.Print(domain.MessageInfo, domain.MsgBuilding)

	prior, err := r.app.hasher.HashFile(r.report.Artifact)
	if err != nil {
		r.warn(ctx, "could not fingerprint existing artifact: "+err.Error())
	}
	r.priorHash = prior

	r.packagerErr = r.app.packager.Package(ctx, r.cfg)
	return r.packagerErr
}

// verifyArtifact decides the outcome by existence alone. An artifact left over from an
// earlier run therefore counts as success; it is flagged as stale when the packager
// failed and the file is byte-identical to what was there before the build.
func (r *buildRun) verifyArtifact(ctx context.Context) error {
	path := r.report.Artifact

	exists, err := r.app.verifier.Exists(path)
	if err != nil {
		r.app.console.Print(domain.MessageFailure, domain.MsgBuildFailed)
		return err
	}
	if !exists {
		r.app.console.Print(domain.MessageFailure, domain.MsgBuildFailed)
		return zerr.With(zerr.Wrap(domain.ErrArtifactMissing, "artifact not found"), "path", path)
	}

	hash, err := r.app.hasher.HashFile(path)
	if err != nil {
		r.warn(ctx, "could not fingerprint artifact: "+err.Error())
	}
	r.artifactHash = hash

	if r.packagerErr != nil && r.priorHash != "" && hash == r.priorHash {
		r.report.Stale = true
		r.warn(ctx, "artifact "+path+" predates this run")
		r.app.console.Print(domain.MessageWarning, domain.MsgStaleArtifact)
	}

	r.app.console.Print(domain.MessageSuccess, domain.MsgBuildSucceeded)
	return nil
}

// warn reports msg in the log and in the step's recording.
func (r *buildRun) warn(ctx context.Context, msg string) {
	r.app.logger.Warn(msg)
	if v, ok := ports.VertexFromContext(ctx); ok {
		v.Log(domain.LogLevelWarn, msg)
	}
}

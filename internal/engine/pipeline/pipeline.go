// Package pipeline runs the packaging steps in order.
package pipeline

import (
	"context"
	"time"

	"go.trai.ch/freeze/internal/core/domain"
	"go.trai.ch/freeze/internal/core/ports"
	"go.trai.ch/zerr"
)

// Step is a single unit of the pipeline.
type Step struct {
	Name string
	// AbortOnFailure stops the run when the step fails. Other failures are recorded and the run goes on.
	AbortOnFailure bool
	Run            func(ctx context.Context) error
}

// Pipeline executes steps sequentially, recording each one as a telemetry vertex.
type Pipeline struct {
	telemetry ports.Telemetry
	logger    ports.Logger
}

// New creates a Pipeline.
func New(telemetry ports.Telemetry, logger ports.Logger) *Pipeline {
	return &Pipeline{
		telemetry: telemetry,
		logger:    logger,
	}
}

// Run executes steps in order and returns one result per step that ran.
// A failing step with AbortOnFailure set, or a cancelled context, ends the run;
// the remaining steps are skipped and have no result.
//
// The run is recorded under runID. A recording that cannot be opened or
// flushed is reported as a warning and never fails the run.
func (p *Pipeline) Run(ctx context.Context, runID string, steps []Step) []domain.StepResult {
	if err := p.telemetry.Begin(runID); err != nil {
		p.logger.Warn("run log unavailable: " + err.Error())
	}
	defer func() {
		if err := p.telemetry.End(); err != nil {
			p.logger.Warn("run log incomplete: " + err.Error())
		}
	}()

	results := make([]domain.StepResult, 0, len(steps))
	for i, step := range steps {
		if ctx.Err() != nil {
			p.skip(steps[i:])
			break
		}

		res := p.runStep(ctx, step)
		results = append(results, res)

		if res.Abort {
			p.skip(steps[i+1:])
			break
		}
	}

	return results
}

func (p *Pipeline) runStep(ctx context.Context, step Step) domain.StepResult {
	stepCtx, vertex := p.telemetry.Record(ctx, step.Name)
	start := time.Now()
	err := step.Run(stepCtx)
	duration := time.Since(start)
	vertex.Complete(err)

	p.logger.Debug(step.Name + " finished in " + duration.Round(time.Millisecond).String())

	res := domain.StepResult{
		Name:     step.Name,
		OK:       err == nil,
		Duration: duration,
	}
	if err != nil {
		res.Err = zerr.With(zerr.Wrap(err, "step failed"), "step", step.Name)
		res.Abort = step.AbortOnFailure
	}
	return res
}

func (p *Pipeline) skip(steps []Step) {
	for _, s := range steps {
		p.logger.Debug("skipping " + s.Name)
	}
}

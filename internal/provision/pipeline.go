package provision

import (
	"fmt"
	"time"
)

// Pipeline is an ordered, fail-fast sequence of steps. Steps run strictly
// sequentially; the first failure aborts the remaining steps and is
// surfaced with the failing step's name.
type Pipeline struct {
	Steps []Step
}

// NewPipeline creates a pipeline from the given steps.
func NewPipeline(steps ...Step) *Pipeline {
	return &Pipeline{Steps: steps}
}

// Run executes the pipeline against the given context.
func (p *Pipeline) Run(ctx *Context) error {
	start := time.Now()
	ctx.Observer.Printf("Starting pipeline with %d steps...", len(p.Steps))

	for i, step := range p.Steps {
		stepStart := time.Now()
		LogStepStart(ctx.Observer, step.Name(), i+1, len(p.Steps))

		if err := step.Run(ctx); err != nil {
			LogStepFailed(ctx.Observer, step.Name(), err)
			return fmt.Errorf("%s step failed: %w", step.Name(), err)
		}

		LogStepComplete(ctx.Observer, step.Name(), time.Since(stepStart))
	}

	ctx.Observer.Printf("Pipeline completed in %v", time.Since(start).Round(time.Millisecond))
	return nil
}

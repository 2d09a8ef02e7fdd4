package pipeline

import (
	"context"
	"fmt"

	"github.com/huxley-labs/nearkit-cli/pkg/common/iface"
)

// Stage is one step of a composite command. Run returns nil on success;
// any error halts the pipeline.
type Stage struct {
	Name string
	Run  func(ctx context.Context) error
}

// Pipeline executes stages strictly in order. A later stage never starts
// before an earlier one completes successfully, and the first failure
// aborts the run, wrapped with the failing stage's name. There is no
// rollback: interrupting a run leaves whatever the last completed stage
// produced.
type Pipeline struct {
	logger  iface.Logger
	tracker iface.ProgressTracker
	stages  []Stage
}

func New(logger iface.Logger, tracker iface.ProgressTracker, stages ...Stage) *Pipeline {
	return &Pipeline{
		logger:  logger,
		tracker: tracker,
		stages:  stages,
	}
}

func (p *Pipeline) Run(ctx context.Context) error {
	total := len(p.stages)
	for i, stage := range p.stages {
		if err := ctx.Err(); err != nil {
			return err
		}

		p.logger.Debug("Running stage %s (%d/%d)", stage.Name, i+1, total)
		p.tracker.Set(stage.Name, 1, fmt.Sprintf("stage %s running", stage.Name))
		p.tracker.Render()

		if err := stage.Run(ctx); err != nil {
			return fmt.Errorf("stage %s failed: %w", stage.Name, err)
		}

		p.tracker.Set(stage.Name, 100, fmt.Sprintf("stage %s complete", stage.Name))
		p.tracker.Render()
	}
	return nil
}

// StageNames returns the ordered names of the configured stages.
func (p *Pipeline) StageNames() []string {
	names := make([]string, 0, len(p.stages))
	for _, s := range p.stages {
		names = append(names, s.Name)
	}
	return names
}

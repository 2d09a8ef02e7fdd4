package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/huxley-labs/nearkit-cli/pkg/common/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipelineRunsStagesInOrder(t *testing.T) {
	var order []string
	stage := func(name string) Stage {
		return Stage{Name: name, Run: func(ctx context.Context) error {
			order = append(order, name)
			return nil
		}}
	}

	p := New(logger.NewNoopLogger(), logger.NewNoopProgressTracker(),
		stage("compile"), stage("collect"), stage("deploy"))
	require.NoError(t, p.Run(context.Background()))
	assert.Equal(t, []string{"compile", "collect", "deploy"}, order)
}

func TestPipelineAbortsAtFirstFailure(t *testing.T) {
	boom := errors.New("linker blew up")
	var deployed bool

	p := New(logger.NewNoopLogger(), logger.NewNoopProgressTracker(),
		Stage{Name: "compile", Run: func(ctx context.Context) error { return boom }},
		Stage{Name: "deploy", Run: func(ctx context.Context) error {
			deployed = true
			return nil
		}},
	)

	err := p.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "stage compile failed")
	assert.False(t, deployed, "a later stage must never start after an earlier failure")
}

func TestPipelineStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var ran bool
	p := New(logger.NewNoopLogger(), logger.NewNoopProgressTracker(),
		Stage{Name: "compile", Run: func(ctx context.Context) error {
			ran = true
			return nil
		}},
	)

	err := p.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, ran)
}

func TestStageNames(t *testing.T) {
	p := New(logger.NewNoopLogger(), logger.NewNoopProgressTracker(),
		Stage{Name: "a"}, Stage{Name: "b"})
	assert.Equal(t, []string{"a", "b"}, p.StageNames())
}

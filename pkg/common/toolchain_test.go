package common

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/huxley-labs/nearkit-cli/pkg/common/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunToolCapturesStdout(t *testing.T) {
	out, err := RunTool(context.Background(), logger.NewNoopLogger(), "", nil,
		"sh", "-c", "echo hello from tool")
	require.NoError(t, err)
	assert.Equal(t, "hello from tool", out)
}

func TestRunToolPassesEnvironment(t *testing.T) {
	out, err := RunTool(context.Background(), logger.NewNoopLogger(), "",
		map[string]string{EnvNetwork: "testnet"},
		"sh", "-c", "echo $NEAR_ENV")
	require.NoError(t, err)
	assert.Equal(t, "testnet", out)
}

func TestRunToolReportsExitCode(t *testing.T) {
	_, err := RunTool(context.Background(), logger.NewNoopLogger(), "", nil,
		"sh", "-c", "exit 3")
	require.Error(t, err)

	var toolErr *ToolError
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, 3, toolErr.Code)
	assert.Contains(t, toolErr.Error(), "exited with code 3")
}

func TestRunToolMissingBinary(t *testing.T) {
	_, err := RunTool(context.Background(), logger.NewNoopLogger(), "", nil,
		"definitely-not-a-binary-on-path")
	assert.Error(t, err)
}

func TestRunToolRunsInDir(t *testing.T) {
	dir := t.TempDir()
	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)

	out, err := RunTool(context.Background(), logger.NewNoopLogger(), dir, nil, "sh", "-c", "pwd -P")
	require.NoError(t, err)
	assert.Equal(t, resolved, out)
}

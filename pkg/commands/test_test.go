package commands

import (
	"os"
	"testing"

	"github.com/huxley-labs/nearkit-cli/pkg/common"
	"github.com/huxley-labs/nearkit-cli/pkg/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestCommandRunsFullSuite(t *testing.T) {
	workspace := testutils.CreateTempWorkspace(t)
	cargoLog := testutils.StubCargo(t, workspace)
	t.Setenv(common.EnvTestDatabaseURL, "")
	t.Setenv(common.EnvTestFilter, "")

	err := runApp(t, testutils.WithTestConfigAndNoopLogger(TestCommand), "test")
	require.NoError(t, err)

	log, err := os.ReadFile(cargoLog)
	require.NoError(t, err)
	assert.Contains(t, string(log), "test -- --nocapture")
}

func TestTestCommandFilterFlag(t *testing.T) {
	workspace := testutils.CreateTempWorkspace(t)
	cargoLog := testutils.StubCargo(t, workspace)
	t.Setenv(common.EnvTestFilter, "")

	err := runApp(t, testutils.WithTestConfigAndNoopLogger(TestCommand), "test", "--filter", "transfer_")
	require.NoError(t, err)

	log, err := os.ReadFile(cargoLog)
	require.NoError(t, err)
	assert.Contains(t, string(log), "test transfer_ -- --nocapture")
}

func TestTestCommandFilterFromEnv(t *testing.T) {
	workspace := testutils.CreateTempWorkspace(t)
	cargoLog := testutils.StubCargo(t, workspace)
	t.Setenv(common.EnvTestFilter, "metadata_")

	err := runApp(t, testutils.WithTestConfigAndNoopLogger(TestCommand), "test")
	require.NoError(t, err)

	log, err := os.ReadFile(cargoLog)
	require.NoError(t, err)
	assert.Contains(t, string(log), "test metadata_ -- --nocapture")
}

func TestTestCommandWarnsWhenDatabaseUnprovisioned(t *testing.T) {
	workspace := testutils.CreateTempWorkspace(t)
	testutils.StubCargo(t, workspace)
	t.Setenv(common.EnvTestDatabaseURL, "")

	cmd, noopLogger := testutils.WithTestConfigAndNoopLoggerAndAccess(TestCommand)
	err := runApp(t, cmd, "test")
	require.NoError(t, err)

	assert.True(t, noopLogger.ContainsMessage("database-backed tests are unprovisioned"),
		"the unprovisioned database gap must stay visible")
}

func TestTestCommandFailurePropagates(t *testing.T) {
	testutils.CreateTempWorkspace(t)
	testutils.StubTool(t, common.CargoBin, "exit 1")

	err := runApp(t, testutils.WithTestConfigAndNoopLogger(TestCommand), "test")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tests failed")
}

package deploy

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/huxley-labs/nearkit-cli/pkg/artifact"
	"github.com/huxley-labs/nearkit-cli/pkg/common"
	"github.com/huxley-labs/nearkit-cli/pkg/common/logger"
	"github.com/huxley-labs/nearkit-cli/pkg/devaccount"
	"github.com/huxley-labs/nearkit-cli/pkg/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDeployer(t *testing.T, workspace string) *Deployer {
	t.Helper()
	d := New(logger.NewNoopLogger(), common.DefaultNetwork)
	d.ReceiptsDir = filepath.Join(workspace, "receipts")
	return d
}

func writeWasm(t *testing.T, workspace string) string {
	t.Helper()
	path := filepath.Join(workspace, "huxley_token.wasm")
	require.NoError(t, os.WriteFile(path, []byte("wasm-bytes"), 0644))
	return path
}

func TestDeployNamedWithoutArtifact(t *testing.T) {
	workspace := t.TempDir()
	nearLog := testutils.StubNear(t, workspace)
	d := testDeployer(t, workspace)

	_, err := d.DeployNamed(context.Background(), filepath.Join(workspace, "missing.wasm"), "huxley.testnet")
	assert.ErrorIs(t, err, ErrArtifactMissing)

	// precondition failure must not reach the network
	_, statErr := os.Stat(nearLog)
	assert.True(t, os.IsNotExist(statErr), "near must not be invoked without an artifact")
}

func TestDeployNamedInvokesNearWithNetwork(t *testing.T) {
	workspace := t.TempDir()
	nearLog := testutils.StubNear(t, workspace)
	d := testDeployer(t, workspace)
	wasm := writeWasm(t, workspace)

	receipt, err := d.DeployNamed(context.Background(), wasm, "huxley.testnet")
	require.NoError(t, err)

	data, err := os.ReadFile(nearLog)
	require.NoError(t, err)
	assert.Contains(t, string(data), "NEAR_ENV=testnet deploy --wasmFile "+wasm+" --accountId huxley.testnet")

	assert.Equal(t, "huxley.testnet", receipt.AccountID)
	assert.Equal(t, ModeNamed, receipt.Mode)

	sum, err := artifact.SHA256File(wasm)
	require.NoError(t, err)
	assert.Equal(t, sum, receipt.ArtifactSHA256)

	// receipt is persisted and parseable
	loaded, err := LoadReceipt(filepath.Join(d.ReceiptsDir, receipt.ID+".yaml"))
	require.NoError(t, err)
	assert.Equal(t, receipt.AccountID, loaded.AccountID)
	assert.Equal(t, receipt.ArtifactSHA256, loaded.ArtifactSHA256)
}

func TestDeployDevAllocatesThenReuses(t *testing.T) {
	workspace := t.TempDir()
	testutils.StubNear(t, workspace)
	d := testDeployer(t, workspace)
	wasm := writeWasm(t, workspace)
	devDir := filepath.Join(workspace, common.DevAccountDir)

	rec, err := devaccount.Load(devDir)
	require.ErrorIs(t, err, devaccount.ErrRecordMissing)

	first, err := d.DeployDev(context.Background(), wasm, rec)
	require.NoError(t, err)
	require.NotEmpty(t, first.AccountID)
	assert.Equal(t, ModeDev, first.Mode)

	// second deploy with the record present targets the same account
	rec2, err := devaccount.Load(devDir)
	require.NoError(t, err)
	second, err := d.DeployDev(context.Background(), wasm, rec2)
	require.NoError(t, err)
	assert.Equal(t, first.AccountID, second.AccountID)
}

func TestDeployDevAfterClearAllocatesFreshAccount(t *testing.T) {
	workspace := t.TempDir()
	testutils.StubNear(t, workspace)
	d := testDeployer(t, workspace)
	wasm := writeWasm(t, workspace)
	devDir := filepath.Join(workspace, common.DevAccountDir)

	rec, _ := devaccount.Load(devDir)
	first, err := d.DeployDev(context.Background(), wasm, rec)
	require.NoError(t, err)

	require.NoError(t, devaccount.Clear(devDir))

	rec, recErr := devaccount.Load(devDir)
	require.ErrorIs(t, recErr, devaccount.ErrRecordMissing)
	second, err := d.DeployDev(context.Background(), wasm, rec)
	require.NoError(t, err)

	assert.NotEqual(t, first.AccountID, second.AccountID,
		"a cleared record must force allocation of a brand-new account")
}

func TestDeployFailurePropagates(t *testing.T) {
	workspace := t.TempDir()
	testutils.StubTool(t, common.NearBin, "exit 7")
	d := testDeployer(t, workspace)
	wasm := writeWasm(t, workspace)

	_, err := d.DeployNamed(context.Background(), wasm, "huxley.testnet")
	require.Error(t, err)

	var toolErr *common.ToolError
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, 7, toolErr.Code)
}

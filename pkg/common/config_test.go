package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(oldWd); err != nil {
			t.Logf("Failed to restore original directory: %v", err)
		}
	})
}

func TestLoadProjectConfigDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := LoadProjectConfig()
	require.NoError(t, err)

	assert.Equal(t, DefaultAccountID, cfg.Deploy.Account)
	assert.Equal(t, DefaultNetwork, cfg.Deploy.Network)
}

func TestLoadProjectConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	content := `project:
  name: huxley_token
deploy:
  account: fundraiser.huxley.testnet
  network: testnet
test:
  filter: internal_
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ProjectConfigFile), []byte(content), 0644))

	cfg, err := LoadProjectConfig()
	require.NoError(t, err)
	assert.Equal(t, "huxley_token", cfg.Project.Name)
	assert.Equal(t, "fundraiser.huxley.testnet", cfg.Deploy.Account)
	assert.Equal(t, "internal_", cfg.Test.Filter)
}

func TestLoadProjectConfigNameFallsBackToCrate(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	manifest := `[package]
name = "huxley-token"
version = "0.1.0"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, CargoManifest), []byte(manifest), 0644))

	cfg, err := LoadProjectConfig()
	require.NoError(t, err)
	assert.Equal(t, "huxley_token", cfg.Project.Name)
}

func TestSetProjectUUIDPreservesOtherKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ProjectConfigFile)

	content := `# workspace config
project:
  name: huxley_token
deploy:
  account: huxley.testnet
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	require.NoError(t, SetProjectUUID(path, "11111111-2222-3333-4444-555555555555"))

	cfg, err := LoadProjectConfigFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "11111111-2222-3333-4444-555555555555", cfg.Project.ProjectUUID)
	assert.Equal(t, "huxley_token", cfg.Project.Name)
	assert.Equal(t, "huxley.testnet", cfg.Deploy.Account)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# workspace config")
}

func TestSaveAndReloadProjectConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), ProjectConfigFile)

	cfg := &ProjectConfig{}
	cfg.Project.Name = "huxley_token"
	cfg.Deploy.Account = "huxley.testnet"
	cfg.Deploy.Network = "testnet"
	require.NoError(t, SaveProjectConfig(path, cfg))

	loaded, err := LoadProjectConfigFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Project.Name, loaded.Project.Name)
	assert.Equal(t, cfg.Deploy.Account, loaded.Deploy.Account)
}

package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrateNameReplacesDashes(t *testing.T) {
	path := filepath.Join(t.TempDir(), CargoManifest)
	manifest := `[package]
name = "huxley-fundraising-token"
version = "0.2.0"
edition = "2018"

[lib]
crate-type = ["cdylib", "rlib"]
`
	require.NoError(t, os.WriteFile(path, []byte(manifest), 0644))

	name, err := CrateName(path)
	require.NoError(t, err)
	assert.Equal(t, "huxley_fundraising_token", name)
}

func TestCrateNameMissingManifest(t *testing.T) {
	_, err := CrateName(filepath.Join(t.TempDir(), CargoManifest))
	assert.Error(t, err)
}

func TestCrateNameMissingPackageName(t *testing.T) {
	path := filepath.Join(t.TempDir(), CargoManifest)
	require.NoError(t, os.WriteFile(path, []byte("[workspace]\nmembers = []\n"), 0644))

	_, err := CrateName(path)
	assert.Error(t, err)
}

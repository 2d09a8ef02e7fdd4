package devaccount

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingRecord(t *testing.T) {
	rec, err := Load(t.TempDir())
	assert.ErrorIs(t, err, ErrRecordMissing)
	assert.Empty(t, rec.AccountID)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "neardev")

	rec := &Record{Dir: dir, AccountID: "dev-1652443719261-87596318"}
	require.NoError(t, rec.Save())

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "dev-1652443719261-87596318", loaded.AccountID)

	// env companion carries the same identity
	data, err := os.ReadFile(filepath.Join(dir, envFile))
	require.NoError(t, err)
	assert.Equal(t, "CONTRACT_NAME=dev-1652443719261-87596318\n", string(data))
}

func TestLoadFallsBackToEnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, envFile),
		[]byte("CONTRACT_NAME=dev-123-456\n"), 0644))

	rec, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "dev-123-456", rec.AccountID)
}

func TestSaveRejectsEmptyAccount(t *testing.T) {
	rec := &Record{Dir: t.TempDir()}
	assert.Error(t, rec.Save())
}

func TestClearRemovesOnlyIdentityFiles(t *testing.T) {
	dir := t.TempDir()
	rec := &Record{Dir: dir, AccountID: "dev-777-888"}
	require.NoError(t, rec.Save())

	// receipts and anything else in the directory must survive a reset
	receiptsDir := filepath.Join(dir, "receipts")
	require.NoError(t, os.MkdirAll(receiptsDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(receiptsDir, "r1.yaml"), []byte("id: r1"), 0644))

	require.NoError(t, Clear(dir))

	assert.False(t, Exists(dir))
	_, err := os.Stat(filepath.Join(receiptsDir, "r1.yaml"))
	assert.NoError(t, err)
}

func TestClearIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Clear(dir))
	require.NoError(t, Clear(dir))
}

package logger

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopLoggerBuffersEntries(t *testing.T) {
	l := NewNoopLogger()

	l.Info("collected %d artifacts", 1)
	l.Warn("stale artifact %s", "old.wasm")
	l.Error("deploy failed")
	l.Debug("exec: near deploy")

	entries := l.Entries()
	require.Len(t, entries, 4)
	assert.Equal(t, "INFO", entries[0].Level)
	assert.Equal(t, "collected 1 artifacts", entries[0].Message)
	assert.Equal(t, "WARN", entries[1].Level)
	assert.Equal(t, "ERROR", entries[2].Level)
	assert.Equal(t, "DEBUG", entries[3].Level)
}

func TestNoopLoggerSkipsEmptyMessages(t *testing.T) {
	l := NewNoopLogger()

	l.Info("")
	l.Info("\n")
	l.Warn("")

	assert.Empty(t, l.Entries())
}

func TestNoopLoggerEntriesWithLevel(t *testing.T) {
	l := NewNoopLogger()

	l.Info("one")
	l.Warn("two")
	l.Info("three")

	infos := l.EntriesWithLevel("INFO")
	require.Len(t, infos, 2)
	assert.Equal(t, "one", infos[0].Message)
	assert.Equal(t, "three", infos[1].Message)
}

func TestNoopLoggerContainsMessage(t *testing.T) {
	l := NewNoopLogger()
	l.Warn("database-backed tests are unprovisioned")

	assert.True(t, l.ContainsMessage("unprovisioned"))
	assert.False(t, l.ContainsMessage("provisioned and ready"))
}

func TestNoopLoggerReset(t *testing.T) {
	l := NewNoopLogger()
	l.Info("something")
	l.Reset()
	assert.Empty(t, l.Entries())
}

func TestNoopLoggerConcurrentUse(t *testing.T) {
	l := NewNoopLogger()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				l.Info("message %d", j)
			}
		}()
	}
	wg.Wait()

	assert.Len(t, l.Entries(), 1000)
}

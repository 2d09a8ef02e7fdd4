// Package devaccount manages the persisted development-account identity
// the near CLI allocates on first dev-deploy. The record is a single
// account identifier, stored as a plain line in neardev/dev-account with
// a CONTRACT_NAME= companion in dev-account.env, matching what the near
// CLI itself writes and reads.
//
// The record is the only mutable deployment state this tool keeps.
// Callers load it explicitly and pass it by reference into the deployer,
// so the read-modify-write cycle is visible rather than ambient.
package devaccount

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrRecordMissing is returned when no dev-account identity has been
// persisted yet.
var ErrRecordMissing = errors.New("no dev-account record")

const (
	recordFile = "dev-account"
	envFile    = "dev-account.env"
)

// Record is the persisted dev-account identity.
type Record struct {
	// Dir is the directory holding the identity files (usually "neardev")
	Dir string
	// AccountID is the allocated account identifier; empty until first deploy
	AccountID string
}

// Load reads the persisted record from dir. A missing record returns a
// Record with an empty AccountID and ErrRecordMissing, so callers can
// distinguish fresh-allocation from reuse.
func Load(dir string) (*Record, error) {
	rec := &Record{Dir: dir}

	data, err := os.ReadFile(filepath.Join(dir, recordFile))
	if err == nil {
		rec.AccountID = strings.TrimSpace(string(data))
		if rec.AccountID != "" {
			return rec, nil
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read dev-account record: %w", err)
	}

	// fall back to the env-format companion
	data, err = os.ReadFile(filepath.Join(dir, envFile))
	if err == nil {
		for _, line := range strings.Split(string(data), "\n") {
			if v, ok := strings.CutPrefix(strings.TrimSpace(line), "CONTRACT_NAME="); ok && v != "" {
				rec.AccountID = v
				return rec, nil
			}
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read dev-account env record: %w", err)
	}

	return rec, ErrRecordMissing
}

// Save persists the record, writing both the plain identifier file and
// the env-format companion.
func (r *Record) Save() error {
	if r.AccountID == "" {
		return fmt.Errorf("refusing to save empty dev-account record")
	}
	if err := os.MkdirAll(r.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", r.Dir, err)
	}
	if err := os.WriteFile(filepath.Join(r.Dir, recordFile), []byte(r.AccountID+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write dev-account record: %w", err)
	}
	env := fmt.Sprintf("CONTRACT_NAME=%s\n", r.AccountID)
	if err := os.WriteFile(filepath.Join(r.Dir, envFile), []byte(env), 0644); err != nil {
		return fmt.Errorf("failed to write dev-account env record: %w", err)
	}
	return nil
}

// Exists reports whether a persisted identity is present in dir.
func Exists(dir string) bool {
	_, err := Load(dir)
	return err == nil
}

// Clear deletes the persisted identity files, forcing the next dev-deploy
// to allocate a brand-new account. The previously deployed network account
// is abandoned, not deleted on-chain. Anything else under dir (deploy
// receipts in particular) is retained.
func Clear(dir string) error {
	for _, name := range []string{recordFile, envFile} {
		if err := os.Remove(filepath.Join(dir, name)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to clear dev-account record %s: %w", name, err)
		}
	}
	return nil
}

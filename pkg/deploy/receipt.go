package deploy

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"sigs.k8s.io/yaml"

	"github.com/huxley-labs/nearkit-cli/pkg/artifact"
)

// Receipt records one successful deploy. Receipts survive dev-account
// resets, so the history of abandoned dev accounts stays auditable.
type Receipt struct {
	ID             string    `json:"id"`
	AccountID      string    `json:"accountId"`
	Network        string    `json:"network"`
	Mode           Mode      `json:"mode"`
	ArtifactName   string    `json:"artifactName"`
	ArtifactSHA256 string    `json:"artifactSha256"`
	Timestamp      time.Time `json:"timestamp"`
}

func (d *Deployer) writeReceipt(mode Mode, accountID, wasmPath string) (*Receipt, error) {
	sum, err := artifact.SHA256File(wasmPath)
	if err != nil {
		return nil, fmt.Errorf("failed to hash deployed artifact: %w", err)
	}

	r := &Receipt{
		ID:             uuid.New().String(),
		AccountID:      accountID,
		Network:        d.Network,
		Mode:           mode,
		ArtifactName:   filepath.Base(wasmPath),
		ArtifactSHA256: sum,
		Timestamp:      time.Now().UTC(),
	}

	if d.ReceiptsDir == "" {
		return r, nil
	}
	if err := os.MkdirAll(d.ReceiptsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create receipts dir: %w", err)
	}

	data, err := yaml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal receipt: %w", err)
	}
	path := filepath.Join(d.ReceiptsDir, r.ID+".yaml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write receipt: %w", err)
	}

	d.Logger.Debug("Wrote deploy receipt %s", path)
	return r, nil
}

// LoadReceipt reads a receipt back from disk.
func LoadReceipt(path string) (*Receipt, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var r Receipt
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to parse receipt %s: %w", path, err)
	}
	return &r, nil
}

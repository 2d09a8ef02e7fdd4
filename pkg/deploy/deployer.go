// Package deploy submits collected wasm artifacts to a NEAR network
// through the near CLI, targeting either a fixed named account or a
// locally recorded development account.
package deploy

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/huxley-labs/nearkit-cli/pkg/common"
	"github.com/huxley-labs/nearkit-cli/pkg/common/iface"
	"github.com/huxley-labs/nearkit-cli/pkg/devaccount"
)

// ErrArtifactMissing is returned when a deploy is attempted without a
// collected artifact at the expected resource path. No network submission
// happens in that case.
var ErrArtifactMissing = errors.New("artifact missing")

// Mode distinguishes fixed-account upgrades from dev-account deploys.
type Mode string

const (
	ModeNamed Mode = "named"
	ModeDev   Mode = "dev"
)

// Deployer pushes an artifact to one account on one network. The network
// selector is exported as NEAR_ENV for every invocation so a single deploy
// sequence can never mix networks.
type Deployer struct {
	Logger      iface.Logger
	Network     string
	ReceiptsDir string
}

func New(logger iface.Logger, network string) *Deployer {
	return &Deployer{
		Logger:      logger,
		Network:     network,
		ReceiptsDir: common.ReceiptsDir,
	}
}

// DeployNamed upgrades the code of an existing, caller-controlled account.
// On-chain state of the account is preserved; a failed submission leaves
// prior code unchanged (network-level atomicity).
func (d *Deployer) DeployNamed(ctx context.Context, wasmPath, accountID string) (*Receipt, error) {
	if err := d.checkArtifact(wasmPath); err != nil {
		return nil, err
	}

	d.Logger.Info("Deploying %s to %s on %s", filepath.Base(wasmPath), accountID, d.Network)

	_, err := common.RunTool(ctx, d.Logger, "", d.env(),
		common.NearBin, "deploy", "--wasmFile", wasmPath, "--accountId", accountID)
	if err != nil {
		return nil, fmt.Errorf("deploy to %s failed: %w", accountID, err)
	}

	return d.writeReceipt(ModeNamed, accountID, wasmPath)
}

// DeployDev deploys to the development account held in rec. When the
// record carries no identity yet the near CLI allocates a fresh account
// and persists it under rec.Dir; the allocated identifier is read back
// into rec. When an identity exists it is reused, so repeated dev-deploys
// upgrade the same account.
func (d *Deployer) DeployDev(ctx context.Context, wasmPath string, rec *devaccount.Record) (*Receipt, error) {
	if err := d.checkArtifact(wasmPath); err != nil {
		return nil, err
	}

	if rec.AccountID != "" {
		d.Logger.Info("Reusing dev account %s on %s", rec.AccountID, d.Network)
	} else {
		d.Logger.Info("No dev account recorded, a fresh one will be allocated on %s", d.Network)
	}

	_, err := common.RunTool(ctx, d.Logger, "", d.env(),
		common.NearBin, "dev-deploy", "--wasmFile", wasmPath)
	if err != nil {
		return nil, fmt.Errorf("dev-deploy failed: %w", err)
	}

	// the near CLI writes the allocated identity under rec.Dir
	reloaded, err := devaccount.Load(rec.Dir)
	if err != nil {
		return nil, fmt.Errorf("dev-deploy succeeded but no dev-account record found: %w", err)
	}
	rec.AccountID = reloaded.AccountID

	return d.writeReceipt(ModeDev, rec.AccountID, wasmPath)
}

func (d *Deployer) checkArtifact(wasmPath string) error {
	info, err := os.Stat(wasmPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s not found, run build first", ErrArtifactMissing, wasmPath)
		}
		return fmt.Errorf("failed to stat artifact %s: %w", wasmPath, err)
	}
	if info.IsDir() || info.Size() == 0 {
		return fmt.Errorf("%w: %s is not a usable artifact", ErrArtifactMissing, wasmPath)
	}
	return nil
}

func (d *Deployer) env() map[string]string {
	return map[string]string{common.EnvNetwork: d.Network}
}

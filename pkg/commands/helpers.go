package commands

import (
	"path/filepath"

	"github.com/huxley-labs/nearkit-cli/pkg/common"
	"github.com/huxley-labs/nearkit-cli/pkg/testutils"

	"github.com/urfave/cli/v2"
)

// loadConfig returns the project config, preferring one injected into the
// context by tests.
func loadConfig(cCtx *cli.Context) (*common.ProjectConfig, error) {
	if v := cCtx.Context.Value(testutils.ConfigContextKey); v != nil {
		return v.(*common.ProjectConfig), nil
	}
	return common.LoadProjectConfig()
}

// networkFor resolves the network selector: flag first, then config.
func networkFor(cCtx *cli.Context, cfg *common.ProjectConfig) string {
	if n := cCtx.String("network"); n != "" {
		return n
	}
	return cfg.Deploy.Network
}

// collectedWasmPath is where the collected artifact for this workspace's
// crate must sit before any deploy.
func collectedWasmPath(cfg *common.ProjectConfig) string {
	return filepath.Join(common.ResourceDir, cfg.Project.Name+".wasm")
}

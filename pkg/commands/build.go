package commands

import (
	"context"
	"fmt"

	"github.com/huxley-labs/nearkit-cli/pkg/artifact"
	"github.com/huxley-labs/nearkit-cli/pkg/common"
	"github.com/huxley-labs/nearkit-cli/pkg/common/iface"
	"github.com/huxley-labs/nearkit-cli/pkg/pipeline"

	"github.com/urfave/cli/v2"
)

// BuildCommand defines the "build" command
var BuildCommand = &cli.Command{
	Name:  "build",
	Usage: "Compile the contract workspace to wasm and collect artifacts into the resource dir",
	Flags: append([]cli.Flag{}, common.GlobalFlags...),
	Action: func(cCtx *cli.Context) error {
		logger := common.LoggerFromContext(cCtx.Context)
		tracker := common.ProgressTrackerFromContext(cCtx.Context)

		cfg, err := loadConfig(cCtx)
		if err != nil {
			return err
		}

		logger.Debug("Project: %s", cfg.Project.Name)

		p := pipeline.New(logger, tracker, buildStages(logger, networkFor(cCtx, cfg))...)
		if err := p.Run(cCtx.Context); err != nil {
			return fmt.Errorf("build failed: %w", err)
		}

		logger.Info("Build completed successfully")
		return nil
	},
}

// buildStages returns the compile and collect stages every composite
// command sequences first. The network selector is exported to the
// compiler too, so one release never mixes selectors between build and
// deploy.
func buildStages(logger iface.Logger, network string) []pipeline.Stage {
	return []pipeline.Stage{
		{
			Name: "compile",
			Run: func(ctx context.Context) error {
				env := map[string]string{
					// size-optimizing link flag for the wasm target
					"RUSTFLAGS":       "-C link-arg=-s",
					common.EnvNetwork: network,
				}
				_, err := common.RunTool(ctx, logger, "", env,
					common.CargoBin, "build", "--target", common.WasmTarget, "--release", "--all")
				return err
			},
		},
		{
			Name: "collect",
			Run: func(ctx context.Context) error {
				_, err := artifact.Collect(logger, common.BuildOutputDir, common.ResourceDir)
				return err
			},
		},
	}
}

package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/huxley-labs/nearkit-cli/pkg/common"
	"github.com/huxley-labs/nearkit-cli/pkg/pipeline"

	"github.com/urfave/cli/v2"
)

// IntegrationCommand defines the "integration" command
var IntegrationCommand = &cli.Command{
	Name:  "integration",
	Usage: "Build the contract, then run the external integration-test script against it",
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:  "script",
			Usage: "Path to the integration-test entry point",
			Value: "tests/integration.sh",
		},
	}, common.GlobalFlags...),
	Action: func(cCtx *cli.Context) error {
		logger := common.LoggerFromContext(cCtx.Context)
		tracker := common.ProgressTrackerFromContext(cCtx.Context)

		cfg, err := loadConfig(cCtx)
		if err != nil {
			return err
		}

		script := cCtx.String("script")
		network := networkFor(cCtx, cfg)

		stages := append(buildStages(logger, network), pipeline.Stage{
			Name: "integration",
			Run: func(ctx context.Context) error {
				if _, err := os.Stat(script); err != nil {
					return fmt.Errorf("integration script %s not found: %w", script, err)
				}
				env := map[string]string{common.EnvNetwork: network}
				_, err := common.RunTool(ctx, logger, "", env, script)
				return err
			},
		})

		if err := pipeline.New(logger, tracker, stages...).Run(cCtx.Context); err != nil {
			return fmt.Errorf("integration failed: %w", err)
		}

		logger.Info("Integration tests passed")
		return nil
	},
}

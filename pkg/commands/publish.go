package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/huxley-labs/nearkit-cli/pkg/common"
	"github.com/huxley-labs/nearkit-cli/pkg/deploy"
	"github.com/huxley-labs/nearkit-cli/pkg/devaccount"
	"github.com/huxley-labs/nearkit-cli/pkg/pipeline"

	"github.com/urfave/cli/v2"
)

var accountFlag = &cli.StringFlag{
	Name:  "account",
	Usage: "Named account to deploy to (defaults to the configured deploy account)",
}

// PublishCommand deploys the collected artifact to the fixed named
// account. The account must already exist; the deploy is an upgrade that
// preserves its on-chain state.
var PublishCommand = &cli.Command{
	Name:  "publish",
	Usage: "Build and deploy the contract to the configured named account",
	Flags: append([]cli.Flag{accountFlag}, common.GlobalFlags...),
	Action: func(cCtx *cli.Context) error {
		logger := common.LoggerFromContext(cCtx.Context)
		tracker := common.ProgressTrackerFromContext(cCtx.Context)

		cfg, err := loadConfig(cCtx)
		if err != nil {
			return err
		}

		account := cCtx.String("account")
		if account == "" {
			account = cfg.Deploy.Account
		}
		network := networkFor(cCtx, cfg)
		deployer := deploy.New(logger, network)

		stages := append(buildStages(logger, network), pipeline.Stage{
			Name: "deploy",
			Run: func(ctx context.Context) error {
				receipt, err := deployer.DeployNamed(ctx, collectedWasmPath(cfg), account)
				if err != nil {
					return err
				}
				logger.Info("Deployed %s to %s (receipt %s)", receipt.ArtifactName, receipt.AccountID, receipt.ID)
				return nil
			},
		})

		if err := pipeline.New(logger, tracker, stages...).Run(cCtx.Context); err != nil {
			return fmt.Errorf("publish failed: %w", err)
		}
		return nil
	},
}

// PublishDevCommand deploys to the recorded development account, or lets
// the network allocate a fresh one when no record exists yet.
var PublishDevCommand = &cli.Command{
	Name:  "publish-dev",
	Usage: "Build and deploy the contract to the dev account (reuse-or-create)",
	Flags: append([]cli.Flag{}, common.GlobalFlags...),
	Action: func(cCtx *cli.Context) error {
		return runPublishDev(cCtx, false)
	},
}

// PublishDevInitCommand wipes the persisted dev-account record first,
// forcing a brand-new account to be allocated. The previously deployed
// account is abandoned, not deleted on-chain.
var PublishDevInitCommand = &cli.Command{
	Name:  "publish-dev-init",
	Usage: "Delete the persisted dev-account record, then deploy to a freshly allocated dev account",
	Flags: append([]cli.Flag{}, common.GlobalFlags...),
	Action: func(cCtx *cli.Context) error {
		return runPublishDev(cCtx, true)
	},
}

func runPublishDev(cCtx *cli.Context, reset bool) error {
	logger := common.LoggerFromContext(cCtx.Context)
	tracker := common.ProgressTrackerFromContext(cCtx.Context)

	cfg, err := loadConfig(cCtx)
	if err != nil {
		return err
	}

	network := networkFor(cCtx, cfg)
	deployer := deploy.New(logger, network)

	var stages []pipeline.Stage
	if reset {
		stages = append(stages, pipeline.Stage{
			Name: "reset-dev-account",
			Run: func(ctx context.Context) error {
				if devaccount.Exists(common.DevAccountDir) {
					logger.Info("Clearing persisted dev-account record")
				}
				return devaccount.Clear(common.DevAccountDir)
			},
		})
	}

	stages = append(stages, buildStages(logger, network)...)
	stages = append(stages, pipeline.Stage{
		Name: "deploy",
		Run: func(ctx context.Context) error {
			rec, err := devaccount.Load(common.DevAccountDir)
			if err != nil && !errors.Is(err, devaccount.ErrRecordMissing) {
				return err
			}
			receipt, err := deployer.DeployDev(ctx, collectedWasmPath(cfg), rec)
			if err != nil {
				return err
			}
			logger.Info("Deployed %s to dev account %s (receipt %s)", receipt.ArtifactName, receipt.AccountID, receipt.ID)
			return nil
		},
	})

	if err := pipeline.New(logger, tracker, stages...).Run(cCtx.Context); err != nil {
		return fmt.Errorf("publish-dev failed: %w", err)
	}
	return nil
}

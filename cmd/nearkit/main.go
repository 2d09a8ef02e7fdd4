package main

import (
	"context"
	"fmt"
	"os"

	"github.com/huxley-labs/nearkit-cli/pkg/commands"
	"github.com/huxley-labs/nearkit-cli/pkg/commands/version"
	"github.com/huxley-labs/nearkit-cli/pkg/common"
	"github.com/huxley-labs/nearkit-cli/pkg/hooks"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "nearkit",
		Usage: "Build, test and deploy orchestration for NEAR contract workspaces",
		Flags: common.GlobalFlags,
		Commands: []*cli.Command{
			commands.LintCommand,
			commands.FormatCommand,
			commands.BuildCommand,
			commands.TestCommand,
			commands.PublishCommand,
			commands.PublishDevCommand,
			commands.PublishDevInitCommand,
			commands.IntegrationCommand,
			commands.InstallCommand,
			commands.DocCommand,
			commands.CleanCommand,
			version.VersionCommand,
		},
		Before: func(cCtx *cli.Context) error {
			if err := hooks.LoadEnvFile(cCtx); err != nil {
				return fmt.Errorf("failed to load %s: %w", hooks.EnvFile, err)
			}

			log, tracker := common.GetLoggerFromCLIContext(cCtx)
			ctx := common.WithLogger(cCtx.Context, log)
			ctx = common.WithProgressTracker(ctx, tracker)
			cCtx.Context = ctx

			common.WithAppEnvironment(cCtx)

			return hooks.WithCommandMetricsContext(cCtx)
		},
	}

	chain := hooks.NewActionChain()
	chain.Use(hooks.WithMetricEmission)
	hooks.ApplyMiddleware(app.Commands, chain)

	ctx := common.WithShutdown(context.Background())
	if err := app.RunContext(ctx, os.Args); err != nil {
		log := common.LoggerFromContext(ctx)
		log.Error("%v", err)
		os.Exit(1)
	}
}

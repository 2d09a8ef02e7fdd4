package commands

import (
	"fmt"

	"github.com/huxley-labs/nearkit-cli/pkg/common"

	"github.com/urfave/cli/v2"
)

// CleanCommand deletes build output only. Artifacts already collected
// into the resource directory stay untouched until the next collect.
var CleanCommand = &cli.Command{
	Name:  "clean",
	Usage: "Delete build output, forcing a full recompilation on the next build",
	Flags: append([]cli.Flag{}, common.GlobalFlags...),
	Action: func(cCtx *cli.Context) error {
		logger := common.LoggerFromContext(cCtx.Context)

		_, err := common.RunTool(cCtx.Context, logger, "", nil, common.CargoBin, "clean")
		if err != nil {
			return fmt.Errorf("clean failed: %w", err)
		}

		logger.Info("Build output removed; collected artifacts in %s are untouched", common.ResourceDir)
		return nil
	},
}

package commands

import (
	"fmt"

	"github.com/huxley-labs/nearkit-cli/pkg/common"

	"github.com/urfave/cli/v2"
)

// LintCommand defines the "lint" command
var LintCommand = &cli.Command{
	Name:  "lint",
	Usage: "Run clippy across all targets and features, treating every warning as an error",
	Flags: append([]cli.Flag{}, common.GlobalFlags...),
	Action: func(cCtx *cli.Context) error {
		logger := common.LoggerFromContext(cCtx.Context)

		logger.Debug("Linting contract workspace...")

		_, err := common.RunTool(cCtx.Context, logger, "", nil,
			common.CargoBin, "clippy", "--all-targets", "--all-features", "--", "-D", "warnings")
		if err != nil {
			return fmt.Errorf("lint failed: %w", err)
		}

		logger.Info("Lint passed with no findings")
		return nil
	},
}

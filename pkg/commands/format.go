package commands

import (
	"fmt"

	"github.com/huxley-labs/nearkit-cli/pkg/common"

	"github.com/urfave/cli/v2"
)

// FormatCommand defines the "format" command. It verifies formatting only
// and never rewrites source.
var FormatCommand = &cli.Command{
	Name:  "format",
	Usage: "Check that source formatting matches the canonical rustfmt style",
	Flags: append([]cli.Flag{}, common.GlobalFlags...),
	Action: func(cCtx *cli.Context) error {
		logger := common.LoggerFromContext(cCtx.Context)

		logger.Debug("Checking source formatting...")

		_, err := common.RunTool(cCtx.Context, logger, "", nil,
			common.CargoBin, "fmt", "--all", "--", "--check")
		if err != nil {
			return fmt.Errorf("format check failed: %w", err)
		}

		logger.Info("Formatting is clean")
		return nil
	},
}

package commands

import (
	"fmt"

	"github.com/huxley-labs/nearkit-cli/pkg/common"

	"github.com/urfave/cli/v2"
)

// DocCommand defines the "doc" command
var DocCommand = &cli.Command{
	Name:  "doc",
	Usage: "Generate reference documentation from in-source annotations",
	Flags: append([]cli.Flag{}, common.GlobalFlags...),
	Action: func(cCtx *cli.Context) error {
		logger := common.LoggerFromContext(cCtx.Context)

		logger.Debug("Generating documentation...")

		_, err := common.RunTool(cCtx.Context, logger, "", nil,
			common.CargoBin, "doc", "--no-deps")
		if err != nil {
			return fmt.Errorf("doc generation failed: %w", err)
		}

		logger.Info("Documentation generated")
		return nil
	},
}

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/huxley-labs/nearkit-cli/pkg/artifact"
	"github.com/huxley-labs/nearkit-cli/pkg/common"

	"github.com/urfave/cli/v2"
)

// InstallCommand copies the compiled native shared library into a system
// library path, for hosts that embed the contract logic directly.
var InstallCommand = &cli.Command{
	Name:  "install",
	Usage: "Copy the compiled native shared library to the system library path",
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:  "libdir",
			Usage: "Destination directory for the shared library",
			Value: common.DefaultLibDir,
		},
	}, common.GlobalFlags...),
	Action: func(cCtx *cli.Context) error {
		logger := common.LoggerFromContext(cCtx.Context)

		cfg, err := loadConfig(cCtx)
		if err != nil {
			return err
		}

		libName := sharedLibraryName(cfg.Project.Name)
		src := filepath.Join(common.NativeOutputDir, libName)
		if _, err := os.Stat(src); err != nil {
			return fmt.Errorf("native library %s not found, run a native release build first: %w", src, err)
		}

		dst := filepath.Join(cCtx.String("libdir"), libName)
		if err := artifact.CopyFile(src, dst); err != nil {
			return fmt.Errorf("failed to install %s: %w", libName, err)
		}

		logger.Info("Installed %s -> %s", libName, dst)
		return nil
	},
}

func sharedLibraryName(crate string) string {
	if runtime.GOOS == "darwin" {
		return "lib" + crate + ".dylib"
	}
	return "lib" + crate + ".so"
}

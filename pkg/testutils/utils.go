package testutils

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/huxley-labs/nearkit-cli/pkg/common"
	"github.com/huxley-labs/nearkit-cli/pkg/common/logger"

	"github.com/urfave/cli/v2"
)

type ctxKey string

// ConfigContextKey identifies an injected ProjectConfig in context
const ConfigContextKey ctxKey = "ProjectConfig"

// TestCrateName is the crate every temp workspace pretends to build
const TestCrateName = "huxley_token"

// TestConfig returns the canned project config commands run against in tests
func TestConfig() *common.ProjectConfig {
	cfg := &common.ProjectConfig{}
	cfg.Project.Name = TestCrateName
	cfg.Deploy.Account = common.DefaultAccountID
	cfg.Deploy.Network = common.DefaultNetwork
	return cfg
}

// WithTestConfigAndNoopLogger sets up a test configuration and no-op logger for silent testing
func WithTestConfigAndNoopLogger(cmd *cli.Command) *cli.Command {
	wrapped, _ := WithTestConfigAndNoopLoggerAndAccess(cmd)
	return wrapped
}

// WithTestConfigAndNoopLoggerAndAccess sets up test config and no-op logger, returning both command and logger
func WithTestConfigAndNoopLoggerAndAccess(cmd *cli.Command) (*cli.Command, *logger.NoopLogger) {
	noopLogger := logger.NewNoopLogger()
	noopProgressTracker := logger.NewNoopProgressTracker()
	cmd.Before = func(cCtx *cli.Context) error {
		ctx := context.WithValue(cCtx.Context, ConfigContextKey, TestConfig())
		ctx = common.WithLogger(ctx, noopLogger)
		ctx = common.WithProgressTracker(ctx, noopProgressTracker)
		cCtx.Context = ctx
		return nil
	}
	return cmd, noopLogger
}

// CreateTempWorkspace creates a temp contract workspace with a Cargo.toml
// for TestCrateName and chdirs into it for the duration of the test.
func CreateTempWorkspace(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	manifest := `[package]
name = "huxley-token"
version = "0.1.0"

[lib]
crate-type = ["cdylib", "rlib"]
`
	if err := os.WriteFile(filepath.Join(tmpDir, common.CargoManifest), []byte(manifest), 0644); err != nil {
		t.Fatal(err)
	}

	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldWd); err != nil {
			t.Logf("Failed to restore original directory: %v", err)
		}
	})

	return tmpDir
}

// StubTool installs a fake executable with the given script body on PATH,
// shadowing the real binary for the duration of the test.
func StubTool(t *testing.T, tool, script string) string {
	t.Helper()

	binDir := t.TempDir()
	path := filepath.Join(binDir, tool)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return path
}

// StubCargo installs a fake cargo that records its invocation and, for
// build, drops a wasm artifact where the collector expects one.
func StubCargo(t *testing.T, workspace string) string {
	t.Helper()

	logPath := filepath.Join(workspace, "cargo-invocations.log")
	script := `echo "$@" >> ` + logPath + `
case "$1" in
build)
	mkdir -p ` + filepath.Join(workspace, common.BuildOutputDir) + `
	printf 'wasm-bytes' > ` + filepath.Join(workspace, common.BuildOutputDir, TestCrateName+".wasm") + `
	;;
esac
exit 0`
	StubTool(t, common.CargoBin, script)
	return logPath
}

// StubNear installs a fake near CLI that emulates deploy and dev-deploy,
// including allocating and persisting a dev-account record on first use.
func StubNear(t *testing.T, workspace string) string {
	t.Helper()

	logPath := filepath.Join(workspace, "near-invocations.log")
	devDir := filepath.Join(workspace, common.DevAccountDir)
	recordPath := filepath.Join(devDir, common.DevAccountFile)
	script := `echo "NEAR_ENV=$NEAR_ENV $@" >> ` + logPath + `
case "$1" in
dev-deploy)
	mkdir -p ` + devDir + `
	if [ ! -f ` + recordPath + ` ]; then
		echo "dev-$$-$(date +%s%N)" > ` + recordPath + `
	fi
	;;
esac
exit 0`
	StubTool(t, common.NearBin, script)
	return logPath
}

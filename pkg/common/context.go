package common

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/urfave/cli/v2"
)

// WithShutdown creates a new context that will be cancelled on SIGTERM/SIGINT
func WithShutdown(ctx context.Context) context.Context {
	ctx, cancel := context.WithCancel(ctx)
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		<-sigChan
		signal.Stop(sigChan)
		cancel()
		_, _ = fmt.Fprintln(os.Stderr, "caught interrupt, shutting down gracefully.")
	}()

	return ctx
}

type appEnvironmentContextKey struct{}

type AppEnvironment struct {
	CLIVersion  string
	OS          string
	Arch        string
	ProjectUUID string
}

func NewAppEnvironment(os, arch, projectUuid string) *AppEnvironment {
	return &AppEnvironment{
		CLIVersion:  embeddedReleaseVersion,
		OS:          os,
		Arch:        arch,
		ProjectUUID: projectUuid,
	}
}

// Embedded nearkit version from release
var embeddedReleaseVersion = "Development"

// WithAppEnvironment attaches environment details (and the persisted project
// UUID, generating one on first use) to the CLI context.
func WithAppEnvironment(ctx *cli.Context) {
	withAppEnvironmentFromLocation(ctx, ProjectConfigFile)
}

func withAppEnvironmentFromLocation(ctx *cli.Context, location string) {
	id := getProjectUUIDFromLocation(location)
	ctx.Context = withAppEnvironment(ctx.Context, NewAppEnvironment(
		runtime.GOOS,
		runtime.GOARCH,
		id,
	))
}

func withAppEnvironment(ctx context.Context, appEnvironment *AppEnvironment) context.Context {
	return context.WithValue(ctx, appEnvironmentContextKey{}, appEnvironment)
}

func AppEnvironmentFromContext(ctx context.Context) (*AppEnvironment, bool) {
	env, ok := ctx.Value(appEnvironmentContextKey{}).(*AppEnvironment)
	return env, ok
}

package common

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"

	"github.com/huxley-labs/nearkit-cli/pkg/common/iface"
)

// ToolError reports a toolchain binary that ran but exited non-zero.
type ToolError struct {
	Tool string
	Code int
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("%s exited with code %d", e.Tool, e.Code)
}

// RunTool executes an external toolchain binary (cargo, near) with the
// given extra environment, streaming its output as it is produced so test
// and compiler diagnostics interleave visibly with progress. Stdout is
// additionally captured and returned trimmed.
//
// The child runs in its own process group; cancelling the context forwards
// SIGINT to the whole group, which matters for cargo's rustc children.
func RunTool(cmdCtx context.Context, logger iface.Logger, dir string, env map[string]string, tool string, args ...string) (string, error) {
	var stdout bytes.Buffer

	cmd := exec.CommandContext(cmdCtx, tool, args...)
	cmd.Dir = dir
	cmd.Stdout = io.MultiWriter(os.Stdout, &stdout)
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin

	cmd.Env = os.Environ()
	for k, v := range env {
		cmd.Env = append(cmd.Env, k+"="+v)
	}

	// Run the command in its own group
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	// When context is canceled, forward SIGINT (but only if the process is running)
	go func() {
		<-cmdCtx.Done()
		if cmd.Process != nil {
			_ = syscall.Kill(-cmd.Process.Pid, syscall.SIGINT)
		}
	}()

	logger.Debug("exec: %s %v", tool, args)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if ws, ok := exitErr.ProcessState.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
				// killed by signal -> treat as cancellation
				return "", cmdCtx.Err()
			}
			return "", &ToolError{Tool: tool, Code: exitErr.ExitCode()}
		}
		return "", fmt.Errorf("failed to run %s: %w", tool, err)
	}

	return string(bytes.TrimSpace(stdout.Bytes())), nil
}

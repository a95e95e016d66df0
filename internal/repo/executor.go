package repo

import (
	"context"
	"os"
	"os/exec"
	"strings"
)

// Runner executes a version-control command in a directory and returns its stdout.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands as subprocesses.
type ExecRunner struct{}

// Run blocks until the command exits or ctx is done. Stderr is discarded.
func (ExecRunner) Run(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	// Keep the inherited environment but stop git from taking the index lock
	// and from localizing the porcelain header.
	var env []string
	for _, e := range os.Environ() {
		if strings.HasPrefix(e, "GIT_OPTIONAL_LOCKS=") || strings.HasPrefix(e, "LC_ALL=") {
			continue
		}
		env = append(env, e)
	}
	env = append(env, "GIT_OPTIONAL_LOCKS=0", "LC_ALL=C")
	cmd.Env = env

	return cmd.Output()
}

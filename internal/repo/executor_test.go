package repo

import (
	"context"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"powerline-go/internal/model"
)

func requireTool(t *testing.T, name string) {
	t.Helper()
	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s not on PATH", name)
	}
}

func TestExecRunner_GitStatusInFreshRepository(t *testing.T) {
	requireTool(t, "git")
	dir := t.TempDir()
	ctx := context.Background()
	r := ExecRunner{}

	_, err := r.Run(ctx, dir, "git", "init", "-q")
	require.NoError(t, err)

	out, err := r.Run(ctx, dir, "git", "status", "-sb", "--ignore-submodules", "--porcelain")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "## "), "got %q", out)

	res, handled := NewGit(r, []string{"master", "main"}).Query(ctx, dir)
	require.True(t, handled)
	assert.Equal(t, model.RepoCleanStyle, res.Style)
}

func TestExecRunner_OverridesLocaleAndLocks(t *testing.T) {
	requireTool(t, "sh")
	t.Setenv("GIT_OPTIONAL_LOCKS", "1")
	t.Setenv("LC_ALL", "de_DE.UTF-8")

	out, err := ExecRunner{}.Run(context.Background(), t.TempDir(), "sh", "-c", `echo "$GIT_OPTIONAL_LOCKS $LC_ALL"`)
	require.NoError(t, err)
	assert.Equal(t, "0 C", strings.TrimSpace(string(out)))
}

func TestExecRunner_ContextKillsCommand(t *testing.T) {
	requireTool(t, "sleep")
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := ExecRunner{}.Run(ctx, t.TempDir(), "sleep", "5")
	require.Error(t, err)
	assert.Less(t, time.Since(start), 3*time.Second)
}

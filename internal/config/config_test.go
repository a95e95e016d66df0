package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every config lookup at an empty temp directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", filepath.Join(dir, "home"))
	t.Setenv(EnvConfigPath, "")
	t.Setenv("POWERLINE_DEBUG", "")
	return dir
}

func parse(t *testing.T, args ...string) (Options, error) {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	f := BindFlags(fs)
	require.NoError(t, f.Parse(args))
	return f.Resolve(fs.Args())
}

func TestDefault_MatchesDocumentedDefaults(t *testing.T) {
	opts := Default()
	assert.Equal(t, "zsh", opts.Shell)
	assert.Equal(t, "ansi", opts.Color)
	assert.Equal(t, "patched", opts.Mode)
	assert.Equal(t, 3, opts.Depth)
	assert.True(t, opts.ShowPath)
	assert.True(t, opts.ShowRepo)
	assert.True(t, opts.ShowRoot)
	assert.False(t, opts.ShowContext)
	assert.False(t, opts.Error)
	assert.Equal(t, []string{"master"}, opts.DefaultBranches)
}

func TestResolve_EmptyArgsGiveDefaults(t *testing.T) {
	isolate(t)
	opts, err := parse(t)
	require.NoError(t, err)
	assert.Equal(t, Default(), opts)
}

func TestResolve_TypicalArguments(t *testing.T) {
	isolate(t)
	opts, err := parse(t, "--shell", "bash", "--depth", "3", "2")
	require.NoError(t, err)
	assert.Equal(t, "bash", opts.Shell)
	assert.Equal(t, 3, opts.Depth)
	assert.True(t, opts.Error)
}

func TestResolve_ExitStatusArgument(t *testing.T) {
	isolate(t)

	opts, err := parse(t, "0")
	require.NoError(t, err)
	assert.False(t, opts.Error)

	opts, err = parse(t, "127")
	require.NoError(t, err)
	assert.True(t, opts.Error)

	opts, err = parse(t, "--error")
	require.NoError(t, err)
	assert.True(t, opts.Error)
}

func TestResolve_UnknownFlagsAreIgnored(t *testing.T) {
	isolate(t)
	opts, err := parse(t, "--frobnicate", "--no-root")
	require.NoError(t, err)
	assert.False(t, opts.ShowRoot)
	assert.False(t, opts.Error)
}

func TestResolve_UnknownFlagDoesNotSwallowExitStatus(t *testing.T) {
	isolate(t)

	for _, args := range [][]string{
		{"--frobnicate", "1"},
		{"--frobnicate=x", "1"},
		{"-q", "1"},
		{"--shell", "bash", "--frobnicate", "127"},
	} {
		opts, err := parse(t, args...)
		require.NoError(t, err)
		assert.True(t, opts.Error, "%v", args)
	}

	opts, err := parse(t, "--frobnicate", "0")
	require.NoError(t, err)
	assert.False(t, opts.Error)
}

func TestResolve_Toggles(t *testing.T) {
	isolate(t)

	tests := []struct {
		args             []string
		path, repo, root bool
	}{
		{[]string{"--repo-only"}, false, true, false},
		{[]string{"--no-repo"}, true, false, true},
		{[]string{"--no-root"}, true, true, false},
		{[]string{"--no-path"}, false, true, true},
		{[]string{"--no-repo", "--repo-only"}, false, true, false},
		{[]string{"--repo-only", "--no-repo"}, false, false, false},
		{[]string{"--repo-only", "--no-root=false"}, false, true, true},
		{[]string{"--no-path", "--no-path=false"}, true, true, true},
	}

	for _, tt := range tests {
		opts, err := parse(t, tt.args...)
		require.NoError(t, err)
		assert.Equal(t, tt.path, opts.ShowPath, "%v show path", tt.args)
		assert.Equal(t, tt.repo, opts.ShowRepo, "%v show repo", tt.args)
		assert.Equal(t, tt.root, opts.ShowRoot, "%v show root", tt.args)
	}
}

func TestResolve_ZeroDepthFallsBackToDefault(t *testing.T) {
	isolate(t)
	opts, err := parse(t, "--depth", "0")
	require.NoError(t, err)
	assert.Equal(t, DefaultDepth, opts.Depth)

	opts, err = parse(t, "--depth", "-1")
	require.NoError(t, err)
	assert.Equal(t, -1, opts.Depth)

	opts, err = parse(t, "--depth=-2", "1")
	require.NoError(t, err)
	assert.Equal(t, -2, opts.Depth)
	assert.True(t, opts.Error)

	opts, err = parse(t, "--depth", "1")
	require.NoError(t, err)
	assert.Equal(t, 1, opts.Depth)
}

func TestResolve_RejectsUnknownMode(t *testing.T) {
	isolate(t)
	_, err := parse(t, "--mode", "fancy")
	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestResolve_YAMLFileThenFlags(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "prompt.yaml")
	yamlContent := "" +
		"shell: bash\n" +
		"color: dos\n" +
		"mode: compatible\n" +
		"depth: 5\n" +
		"show_repo: false\n" +
		"default_branches: [main, trunk]\n" +
		"timeout: 750ms\n"
	require.NoError(t, os.WriteFile(path, []byte(yamlContent), 0o600))

	opts, err := parse(t, "--config", path, "--color", "ansi")
	require.NoError(t, err)
	assert.Equal(t, "bash", opts.Shell)
	assert.Equal(t, "ansi", opts.Color, "flag overrides file")
	assert.Equal(t, "compatible", opts.Mode)
	assert.Equal(t, 5, opts.Depth)
	assert.False(t, opts.ShowRepo)
	assert.True(t, opts.ShowPath, "keys absent from the file keep their defaults")
	assert.Equal(t, []string{"main", "trunk"}, opts.DefaultBranches)
	assert.Equal(t, 750*time.Millisecond, opts.Timeout)
}

func TestResolve_TOMLFileFromEnvironment(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "prompt.toml")
	tomlContent := "" +
		"shell = \"bash\"\n" +
		"depth = 2\n" +
		"show_context = true\n" +
		"timeout = \"2s\"\n"
	require.NoError(t, os.WriteFile(path, []byte(tomlContent), 0o600))
	t.Setenv(EnvConfigPath, path)

	opts, err := parse(t)
	require.NoError(t, err)
	assert.Equal(t, "bash", opts.Shell)
	assert.Equal(t, 2, opts.Depth)
	assert.True(t, opts.ShowContext)
	assert.Equal(t, 2*time.Second, opts.Timeout)
}

func TestResolve_DiscoversUserConfigFile(t *testing.T) {
	isolate(t)
	configHome, err := os.UserConfigDir()
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Join(configHome, "powerline-go"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configHome, "powerline-go", "config.yml"), []byte("depth: 4\n"), 0o600))

	opts, err := parse(t)
	require.NoError(t, err)
	assert.Equal(t, 4, opts.Depth)
}

func TestResolve_MissingExplicitFileIsAnError(t *testing.T) {
	dir := isolate(t)
	_, err := parse(t, "--config", filepath.Join(dir, "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestResolve_MalformedFileIsAnError(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("depth: [unterminated\n"), 0o600))

	_, err := parse(t, "--config", path)
	assert.Error(t, err)
}

func TestResolve_DebugFromEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("POWERLINE_DEBUG", "1")
	opts, err := parse(t)
	require.NoError(t, err)
	assert.True(t, opts.Debug)
}

package model

import (
	"os"
	"path/filepath"
	"runtime"
)

// Env is a read-only snapshot of the process environment a prompt is rendered for.
type Env struct {
	Cwd        string // Absolute working directory, forward slashes
	Home       string // Home directory, forward slashes
	VirtualEnv string // Value of VIRTUAL_ENV, empty when no environment is active
	IsRoot     bool   // Running with superuser identity
}

// CurrentEnv captures the environment of the running process.
func CurrentEnv() (Env, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return Env{}, err
	}

	home := os.Getenv("HOME")
	if home == "" {
		// No home directory is not fatal: paths are shown without the ~ marker.
		if h, err := os.UserHomeDir(); err == nil {
			home = h
		}
	}

	return Env{
		Cwd:        filepath.ToSlash(cwd),
		Home:       filepath.ToSlash(home),
		VirtualEnv: os.Getenv("VIRTUAL_ENV"),
		// Geteuid is -1 on Windows
		IsRoot: runtime.GOOS != "windows" && os.Geteuid() == 0,
	}, nil
}

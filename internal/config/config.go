// Package config resolves prompt options from defaults, an optional config file and command-line flags.
package config

import (
	"errors"
	"fmt"
	"time"

	"powerline-go/internal/model"
	"powerline-go/internal/shell"
)

// ErrInvalidMode is returned for an unknown glyph mode.
var ErrInvalidMode = errors.New("glyph mode not supported")

// Constants for default values.
const (
	DefaultShell = "zsh"
	DefaultColor = shell.ColorANSI
	DefaultMode  = model.ModePatched
	DefaultDepth = 3
)

// Options is the finished configuration consumed by the prompt pipeline.
// It is not modified once the pipeline has been built.
type Options struct {
	Shell string
	Color string
	Mode  string
	Depth int

	ShowPath    bool
	ShowRepo    bool
	ShowRoot    bool
	ShowContext bool

	// Error is set when the previous command failed.
	Error bool

	DefaultBranches []string
	Timeout         time.Duration // Repository query limit, 0 waits indefinitely
	Debug           bool
}

// Default returns the built-in options.
func Default() Options {
	return Options{
		Shell:           DefaultShell,
		Color:           DefaultColor,
		Mode:            DefaultMode,
		Depth:           DefaultDepth,
		ShowPath:        true,
		ShowRepo:        true,
		ShowRoot:        true,
		DefaultBranches: []string{"master"},
	}
}

// Validate checks the fields the renderer does not check itself and
// replaces an unset (zero) depth with the default.
func (o *Options) Validate() error {
	if _, ok := model.GlyphSets[o.Mode]; !ok {
		return fmt.Errorf("mode %q: %w", o.Mode, ErrInvalidMode)
	}
	if o.Depth == 0 {
		o.Depth = DefaultDepth
	}
	if o.Timeout < 0 {
		o.Timeout = 0
	}
	return nil
}

// RepoOnly hides everything but the repository segment.
func (o *Options) RepoOnly() {
	o.ShowRepo = true
	o.ShowPath = false
	o.ShowRoot = false
	o.ShowContext = false
}

package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// toggle is one occurrence of a visibility flag on the command line.
type toggle struct {
	name string
	on   bool
}

// orderedBool is a boolean flag that records every occurrence, so that
// visibility flags can be replayed left to right.
type orderedBool struct {
	name string
	val  bool
	seen *[]toggle
}

func (b *orderedBool) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	b.val = v
	*b.seen = append(*b.seen, toggle{name: b.name, on: v})
	return nil
}

func (b *orderedBool) String() string { return strconv.FormatBool(b.val) }

func (b *orderedBool) Type() string { return "bool" }

// Flags holds the command-line flags that map onto Options.
type Flags struct {
	fs      *pflag.FlagSet
	toggles []toggle

	Shell   string
	Color   string
	Mode    string
	Depth   int
	Context bool
	Error   bool
	Timeout time.Duration
	Config  string
	Debug   bool
}

// BindFlags registers the prompt flags on fs.
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	fs.StringVar(&f.Shell, "shell", DefaultShell, "Shell dialect to escape for: bash or zsh")
	fs.StringVar(&f.Color, "color", DefaultColor, "Color encoding: ansi (256 colors) or dos (16 colors)")
	fs.StringVar(&f.Mode, "mode", DefaultMode, "Glyphs: patched (powerline font) or compatible")
	fs.IntVar(&f.Depth, "depth", DefaultDepth, "Number of path components to keep; 1 or less shows only the current directory")
	f.visibility("repo-only", "Show only the repository segment")
	f.visibility("no-repo", "Hide the repository segment")
	f.visibility("no-root", "Hide the root/error indicator")
	f.visibility("no-path", "Hide the working directory")
	fs.BoolVar(&f.Context, "show-context", false, "Show a context segment naming the root user")
	fs.BoolVar(&f.Error, "error", false, "Mark the previous command as failed")
	fs.DurationVar(&f.Timeout, "timeout", 0, "Give up on repository status after this long (e.g. 500ms)")
	fs.StringVar(&f.Config, "config", "", "Config file (YAML or TOML); default $"+EnvConfigPath+" or the user config dir")
	fs.BoolVar(&f.Debug, "debug", false, "Log pipeline decisions to stderr")
	return f
}

func (f *Flags) visibility(name, usage string) {
	fl := f.fs.VarPF(&orderedBool{name: name, seen: &f.toggles}, name, "", usage)
	fl.NoOptDefVal = "true"
}

// Parse parses args, dropping flags the set does not define. Dropping them
// up front keeps pflag from taking the next token as their value, so
// "--unknown 1" still reports exit status 1.
func (f *Flags) Parse(args []string) error {
	return f.fs.Parse(f.withoutUnknown(args))
}

func (f *Flags) withoutUnknown(args []string) []string {
	kept := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			return append(kept, args[i:]...)
		}
		fl, known := f.lookup(a)
		if !known {
			continue
		}
		kept = append(kept, a)
		// "--depth -1": the next token is a value, not a flag.
		if fl != nil && fl.NoOptDefVal == "" && !strings.Contains(a, "=") && i+1 < len(args) {
			i++
			kept = append(kept, args[i])
		}
	}
	return kept
}

// lookup reports the flag arg names, and false for flags the set does not
// define. Positional arguments are known with a nil flag.
func (f *Flags) lookup(arg string) (*pflag.Flag, bool) {
	switch {
	case strings.HasPrefix(arg, "--"):
		name, _, _ := strings.Cut(arg[2:], "=")
		fl := f.fs.Lookup(name)
		return fl, fl != nil
	case len(arg) == 2 && arg[0] == '-':
		fl := f.fs.ShorthandLookup(arg[1:])
		return fl, fl != nil
	}
	return nil, true
}

// Apply overlays flags the user set explicitly. Visibility flags apply in
// command-line order. Positional arguments carry the previous command's exit
// status: anything other than "0" marks an error.
func (f *Flags) Apply(opts *Options, args []string) {
	changed := f.fs.Changed

	if changed("shell") {
		opts.Shell = f.Shell
	}
	if changed("color") {
		opts.Color = f.Color
	}
	if changed("mode") {
		opts.Mode = f.Mode
	}
	if changed("depth") {
		opts.Depth = f.Depth
	}
	if changed("show-context") {
		opts.ShowContext = f.Context
	}
	for _, t := range f.toggles {
		switch t.name {
		case "repo-only":
			if t.on {
				opts.RepoOnly()
			}
		case "no-path":
			opts.ShowPath = !t.on
		case "no-repo":
			opts.ShowRepo = !t.on
		case "no-root":
			opts.ShowRoot = !t.on
		}
	}
	if changed("timeout") {
		opts.Timeout = f.Timeout
	}
	if changed("debug") {
		opts.Debug = f.Debug
	}

	if changed("error") {
		opts.Error = f.Error
	}
	for _, a := range args {
		opts.Error = a != "0"
	}
}

// Resolve builds Options from defaults, the config file and the parsed flags, in that order.
func (f *Flags) Resolve(args []string) (Options, error) {
	opts := Default()

	path, explicit := f.Config, f.Config != ""
	if !explicit {
		if p := os.Getenv(EnvConfigPath); p != "" {
			path, explicit = p, true
		} else {
			path = FindConfigPath()
		}
	}
	if err := loadInto(&opts, path, explicit); err != nil {
		return Options{}, err
	}

	if os.Getenv("POWERLINE_DEBUG") != "" {
		opts.Debug = true
	}
	f.Apply(&opts, args)
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

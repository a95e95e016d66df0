package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
	"go.uber.org/zap"
	"golang.org/x/term"

	"powerline-go/internal/config"
	"powerline-go/internal/logging"
	"powerline-go/internal/model"
	"powerline-go/internal/preview"
	"powerline-go/internal/prompt"
)

func checkUpdate(w io.Writer, currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "powerline-go",
		Repository: "powerline-go",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		fmt.Fprintf(w, "Could not check for updates: %v\n", err)
		return
	}

	if res.Outdated {
		fmt.Fprintf(w, "A new version is available: %s (you have %s)\n", res.Current, currentVer)
	} else {
		fmt.Fprintf(w, "You are using the latest version: %s\n", currentVer)
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("powerline-go", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	// Unknown flags are ignored; only positional arguments carry the exit status.
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: powerline-go [options] [exit-status]\n\n")
		fmt.Fprintf(stderr, "powerline-go prints a powerline-style prompt for bash or zsh.\n")
		fmt.Fprintf(stderr, "Pass the previous command's exit status ($?) as the last argument.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  PS1='$(powerline-go --shell bash $?)'\n")
		fmt.Fprintf(stderr, "  PROMPT='$(powerline-go --shell zsh $?)'   # needs setopt promptsubst\n")
		fmt.Fprintf(stderr, "  powerline-go --palette                   # show the colors\n")
	}

	flags := config.BindFlags(fs)
	paletteFlag := fs.Bool("palette", false, "Print the color palette and exit")
	versionFlag := fs.BoolP("version", "V", false, "Print version information")
	updateFlag := fs.BoolP("update", "u", false, "Check for a newer release")
	helpFlag := fs.BoolP("help", "h", false, "Show this help message")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if *helpFlag {
		fs.Usage()
		return 0
	}

	if *versionFlag {
		fmt.Fprintf(stdout, "powerline-go version %s\n", model.Version)
		return 0
	}

	if *updateFlag {
		checkUpdate(stdout, model.Version)
		return 0
	}

	opts, err := flags.Resolve(fs.Args())
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if *paletteFlag {
		tty := false
		if f, ok := stdout.(*os.File); ok {
			tty = term.IsTerminal(int(f.Fd()))
		}
		if err := preview.Palette(stdout, opts.Color, tty); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	return runPrompt(opts, stdout, stderr)
}

func runPrompt(opts config.Options, stdout, stderr io.Writer) int {
	logger, err := logging.New(opts.Debug)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	env, err := model.CurrentEnv()
	if err != nil {
		fmt.Fprintf(stderr, "Error reading environment: %v\n", err)
		return 1
	}
	logger.Debug("Environment", zap.String("cwd", env.Cwd), zap.Bool("root", env.IsRoot))

	p, err := prompt.New(opts, env, prompt.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if _, err := io.WriteString(stdout, p.Render(context.Background())); err != nil {
		logger.Error("Write prompt", zap.Error(err))
		return 1
	}
	return 0
}

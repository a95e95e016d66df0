package shell

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/muesli/termenv"
)

// ErrUnsupportedShell is returned when a prompt is requested for an unknown shell dialect.
var ErrUnsupportedShell = errors.New("shell not supported")

// Shell defines the interface for shell-specific prompt escaping.
type Shell interface {
	// Wrap encloses a raw SGR parameter string (e.g. "38;5;250") in the
	// delimiters the shell needs to treat it as zero-width.
	Wrap(sgr string) string
	// PromptChar is the placeholder that expands to the usual user/root prompt character.
	PromptChar() string
	Name() string
}

// BashShell implements Shell for Bash.
type BashShell struct{}

func (s *BashShell) Wrap(sgr string) string {
	// Format: \[\e[<sgr>m\], decoded by bash when it expands PS1
	return `\[\e[` + sgr + `m\]`
}

func (s *BashShell) PromptChar() string {
	return `\$`
}

func (s *BashShell) Name() string {
	return "bash"
}

// ZshShell implements Shell for Zsh.
type ZshShell struct{}

func (s *ZshShell) Wrap(sgr string) string {
	// Format: %{ESC[<sgr>m%}
	return "%{" + termenv.CSI + sgr + "m%}"
}

func (s *ZshShell) PromptChar() string {
	return "%#"
}

func (s *ZshShell) Name() string {
	return "zsh"
}

var shells = map[string]Shell{
	"bash": &BashShell{},
	"zsh":  &ZshShell{},
}

// Lookup returns the Shell for a dialect name.
func Lookup(name string) (Shell, error) {
	s, ok := shells[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("shell %q: %w", name, ErrUnsupportedShell)
	}
	return s, nil
}

// Names lists the supported dialects.
func Names() []string {
	names := make([]string, 0, len(shells))
	for n := range shells {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

package shell

import (
	"errors"
	"fmt"

	"github.com/muesli/termenv"

	"powerline-go/internal/model"
)

// Color encodings.
const (
	ColorANSI = "ansi" // xterm 256-color, uses ColorPair.ANSI
	ColorDOS  = "dos"  // 16-color, uses ColorPair.DOS
)

// ErrUnsupportedColor is returned for an unknown color encoding.
var ErrUnsupportedColor = errors.New("color encoding not supported")

// Renderer produces shell-escaped color codes for one dialect and encoding.
type Renderer struct {
	shell Shell
	color string
	reset string
}

// NewRenderer fails when either the dialect or the encoding is unknown.
func NewRenderer(dialect, color string) (*Renderer, error) {
	s, err := Lookup(dialect)
	if err != nil {
		return nil, err
	}
	if color != ColorANSI && color != ColorDOS {
		return nil, fmt.Errorf("color %q: %w", color, ErrUnsupportedColor)
	}
	return &Renderer{
		shell: s,
		color: color,
		reset: s.Wrap(termenv.ResetSeq),
	}, nil
}

func (r *Renderer) Foreground(c model.ColorPair) string {
	return r.shell.Wrap(r.sequence(c, false))
}

func (r *Renderer) Background(c model.ColorPair) string {
	return r.shell.Wrap(r.sequence(c, true))
}

// Reset clears both colors.
func (r *Renderer) Reset() string {
	return r.reset
}

// Shell returns the dialect the renderer escapes for.
func (r *Renderer) Shell() Shell {
	return r.shell
}

func (r *Renderer) sequence(c model.ColorPair, bg bool) string {
	if r.color == ColorDOS {
		return termenv.ANSIColor(c.DOS).Sequence(bg)
	}
	return termenv.ANSI256Color(c.ANSI).Sequence(bg)
}

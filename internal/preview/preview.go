// Package preview prints the prompt palette for inspection in a terminal.
package preview

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"powerline-go/internal/model"
	"powerline-go/internal/shell"
)

const swatchText = " powerline "

// Palette writes one line per palette role. On a terminal each line carries a
// swatch in the given encoding; otherwise a plain table is written.
func Palette(w io.Writer, color string, tty bool) error {
	if color != shell.ColorANSI && color != shell.ColorDOS {
		return fmt.Errorf("color %q: %w", color, shell.ErrUnsupportedColor)
	}
	if !tty {
		return plain(w)
	}

	r := lipgloss.NewRenderer(w)
	titleStyle := r.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FAFAFA")).
		Background(lipgloss.Color("#7D56F4")).
		Padding(0, 1)
	nameStyle := r.NewStyle().Width(18)

	var b strings.Builder
	b.WriteString(titleStyle.Render("palette (" + color + ")"))
	b.WriteString("\n\n")
	for _, role := range model.Roles() {
		c := lipgloss.Color(strconv.Itoa(index(role.Pair, color)))
		swatch := r.NewStyle().Background(c)
		if strings.HasSuffix(role.Name, "_fg") {
			swatch = r.NewStyle().Foreground(c).Bold(true)
		}
		b.WriteString(nameStyle.Render(role.Name))
		b.WriteString(swatch.Render(swatchText))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func plain(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%-18s %4s %5s\n", "ROLE", "DOS", "ANSI")
	for _, role := range model.Roles() {
		fmt.Fprintf(&b, "%-18s %4d %5d\n", role.Name, role.Pair.DOS, role.Pair.ANSI)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func index(c model.ColorPair, color string) int {
	if color == shell.ColorDOS {
		return c.DOS
	}
	return c.ANSI
}

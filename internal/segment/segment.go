// Package segment holds the colored prompt blocks and joins them into the final prompt string.
package segment

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"powerline-go/internal/model"
)

// Colorizer produces escape codes for palette entries.
// *shell.Renderer implements it.
type Colorizer interface {
	Foreground(c model.ColorPair) string
	Background(c model.ColorPair) string
	Reset() string
}

// Segment is one colored block of prompt text followed by its separator glyph.
// Segments are values; a stage creates one and never touches it again.
type Segment struct {
	Content     string
	Fg          model.ColorPair
	Bg          model.ColorPair
	Separator   string
	SeparatorFg model.ColorPair // Bg unless the separator is a thin in-path one
}

// New creates a segment whose separator blends with its own background.
func New(content string, style model.Style, separator string) Segment {
	return Segment{
		Content:     content,
		Fg:          style.Fg,
		Bg:          style.Bg,
		Separator:   separator,
		SeparatorFg: style.Bg,
	}
}

// NewThin creates a segment whose separator is drawn in its own color.
func NewThin(content string, style model.Style, separator string, separatorFg model.ColorPair) Segment {
	s := New(content, style, separator)
	s.SeparatorFg = separatorFg
	return s
}

// Draw renders the segment against the one that follows it. The separator sits
// on next's background, or on the terminal default when next is nil.
func (s Segment) Draw(c Colorizer, next *Segment) string {
	transition := c.Reset()
	if next != nil {
		transition = c.Background(next.Bg)
	}

	var b strings.Builder
	b.WriteString(c.Foreground(s.Fg))
	b.WriteString(c.Background(s.Bg))
	b.WriteString(s.Content)
	b.WriteString(transition)
	b.WriteString(c.Foreground(s.SeparatorFg))
	b.WriteString(s.Separator)
	return b.String()
}

// Draw joins segments in order and terminates the prompt with a reset.
// An empty list yields the reset code alone.
func Draw(c Colorizer, segments []Segment) string {
	var b strings.Builder
	for i, s := range segments {
		var next *Segment
		if i+1 < len(segments) {
			next = &segments[i+1]
		}
		b.WriteString(s.Draw(c, next))
	}
	b.WriteString(c.Reset())
	return b.String()
}

// Width is the number of terminal cells the segments occupy once escapes are hidden.
func Width(segments []Segment) int {
	w := 0
	for _, s := range segments {
		w += runewidth.StringWidth(s.Content) + runewidth.StringWidth(s.Separator)
	}
	return w
}

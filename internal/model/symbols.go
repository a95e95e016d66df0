package model

// Glyphs holds the separators drawn between segments for one glyph mode.
type Glyphs struct {
	Separator     string // Between segments of different categories
	SeparatorThin string // Between breadcrumbs of the same path
}

// Glyph modes.
const (
	ModePatched    = "patched"
	ModeCompatible = "compatible"
)

// GlyphSets maps a glyph mode to its separators.
// Patched glyphs need a powerline-patched font; compatible ones are plain Unicode arrows.
var GlyphSets = map[string]Glyphs{
	ModeCompatible: {
		Separator:     "\u25b6", // ▶
		SeparatorThin: "\u276f", // ❯
	},
	ModePatched: {
		Separator:     "\ue0b0",
		SeparatorThin: "\ue0b1",
	},
}

// Centralized symbols used inside segment content
const (
	SymbolHome         = "~"
	SymbolEllipsis     = "\u2026"  // … elided path components
	SymbolBranch       = "\u2b60 " // ⭠ non-default branch
	SymbolRoot         = "\u26a1"  // ⚡ superuser
	SymbolError        = "\u2718"  // ✘ previous command failed
	SymbolContextRoot  = "root"
	SymbolAheadPrefix  = "+"
	SymbolBehindPrefix = "-"
)

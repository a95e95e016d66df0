package prompt

import (
	"path"
	"strings"

	"powerline-go/internal/model"
)

// Breadcrumbs splits cwd into the components shown in the prompt. A cwd at or
// under home starts with "~". When there are more components than depth, a run
// of them is replaced by a single ellipsis; deeper settings keep two leading
// components instead of one. A depth of 1 or less never elides.
func Breadcrumbs(cwd, home string, depth int) []string {
	cwd = path.Clean(cwd)
	if home != "" && home != "/" {
		home = path.Clean(home)
		switch {
		case cwd == home:
			cwd = model.SymbolHome
		case strings.HasPrefix(cwd, home+"/"):
			cwd = model.SymbolHome + cwd[len(home):]
		}
	}
	cwd = strings.TrimPrefix(cwd, "/")

	names := strings.Split(cwd, "/")
	if depth <= 1 || len(names) <= depth {
		return names
	}

	start := 1
	if depth > 4 {
		start = 2
	}
	elided := len(names) - depth

	out := make([]string, 0, depth+1)
	out = append(out, names[:start]...)
	out = append(out, model.SymbolEllipsis)
	out = append(out, names[start+elided:]...)
	return out
}

package repo

import (
	"context"
	"regexp"
	"strings"

	"powerline-go/internal/model"
)

// GitStatus is what the prompt needs from `git status -sb --porcelain`.
type GitStatus struct {
	Branch   string
	Ahead    string
	Behind   string
	Pending  bool // Something is staged
	Unstaged bool // Something in the work tree is modified or untracked
}

// Style ranks the tree state: unstaged > pending > clean.
func (s GitStatus) Style() model.Style {
	switch {
	case s.Unstaged:
		return model.RepoUnstagedStyle
	case s.Pending:
		return model.RepoPendingStyle
	default:
		return model.RepoCleanStyle
	}
}

// Git is the primary repository provider.
type Git struct {
	runner          Runner
	defaultBranches map[string]bool
	branchRe        *regexp.Regexp
	aheadRe         *regexp.Regexp
	behindRe        *regexp.Regexp
}

// NewGit creates a git provider. Branches in defaultBranches are shown without the branch marker.
func NewGit(runner Runner, defaultBranches []string) *Git {
	defaults := make(map[string]bool, len(defaultBranches))
	for _, b := range defaultBranches {
		defaults[b] = true
	}
	return &Git{
		runner:          runner,
		defaultBranches: defaults,
		// Header: ## master...origin/master [ahead 1, behind 2]
		branchRe: regexp.MustCompile(`^## ([^.\s]*)`),
		aheadRe:  regexp.MustCompile(`ahead\s+(\d+)`),
		behindRe: regexp.MustCompile(`behind\s+(\d+)`),
	}
}

func (g *Git) Name() string {
	return "git"
}

// Query runs git status in dir. Any failure or empty output means "not a git repository".
func (g *Git) Query(ctx context.Context, dir string) (*Result, bool) {
	out, err := g.runner.Run(ctx, dir, "git", "status", "-sb", "--ignore-submodules", "--porcelain")
	if err != nil || len(out) == 0 {
		return nil, false
	}

	status, ok := g.Parse(string(out))
	if !ok {
		return nil, false
	}
	return &Result{Content: g.content(status), Style: status.Style()}, true
}

// Parse reads porcelain output. ok is false when there is no header line.
func (g *Git) Parse(out string) (GitStatus, bool) {
	lines := strings.Split(strings.TrimRight(out, "\r\n"), "\n")
	header := strings.TrimSpace(lines[0])
	if header == "" {
		return GitStatus{}, false
	}

	var st GitStatus
	if m := g.branchRe.FindStringSubmatch(header); m != nil {
		st.Branch = m[1]
	}
	if m := g.aheadRe.FindStringSubmatch(header); m != nil {
		st.Ahead = m[1]
	}
	if m := g.behindRe.FindStringSubmatch(header); m != nil {
		st.Behind = m[1]
	}

	for _, line := range lines[1:] {
		line = strings.TrimRight(line, "\r")
		if len(line) < 2 {
			continue
		}
		if line[0] != ' ' {
			st.Pending = true
		}
		if line[1] != ' ' {
			st.Unstaged = true
		}
		if st.Pending && st.Unstaged {
			break
		}
	}
	return st, true
}

func (g *Git) content(st GitStatus) string {
	var b strings.Builder
	b.WriteString(" ")
	if !g.defaultBranches[st.Branch] {
		b.WriteString(model.SymbolBranch)
	}
	b.WriteString(st.Branch)
	if st.Ahead != "" {
		b.WriteString(model.SymbolAheadPrefix + st.Ahead)
	}
	if st.Behind != "" {
		b.WriteString(model.SymbolBehindPrefix + st.Behind)
	}
	b.WriteString(" ")
	return b.String()
}

package repo

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"powerline-go/internal/model"
)

// svnChangeCodes are the first-column status codes counted as changes.
const svnChangeCodes = "ACDIMRX!~"

// Svn is the fallback repository provider.
type Svn struct {
	runner Runner
}

func NewSvn(runner Runner) *Svn {
	return &Svn{runner: runner}
}

func (s *Svn) Name() string {
	return "svn"
}

// Query reports handled whenever dir holds a .svn directory, even when there is nothing to show.
func (s *Svn) Query(ctx context.Context, dir string) (*Result, bool) {
	info, err := os.Stat(filepath.Join(dir, ".svn"))
	if err != nil || !info.IsDir() {
		return nil, false
	}

	out, err := s.runner.Run(ctx, dir, "svn", "status")
	if err != nil || len(out) == 0 {
		return nil, true
	}

	changes := CountSvnChanges(string(out))
	if changes <= 0 {
		return nil, true
	}
	return &Result{
		Content: " " + strconv.Itoa(changes) + " ",
		Style:   model.SvnChangesStyle,
	}, true
}

// CountSvnChanges counts `svn status` lines whose first column is a change code.
func CountSvnChanges(out string) int {
	n := 0
	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		line := scanner.Text()
		if line != "" && strings.IndexByte(svnChangeCodes, line[0]) >= 0 {
			n++
		}
	}
	return n
}

package model

// ColorPair is one palette entry in both supported encodings:
// DOS is the 16-color index, ANSI is the xterm-256 index.
type ColorPair struct {
	DOS  int
	ANSI int
}

// Style is a foreground/background combination for one segment.
type Style struct {
	Fg ColorPair
	Bg ColorPair
}

// Palette roles. These are never reassigned.
var (
	PathBg      = ColorPair{4, 237}
	PathFg      = ColorPair{0, 250}
	CwdFg       = ColorPair{0, 254}
	SeparatorFg = ColorPair{0, 244}

	RepoCleanBg    = ColorPair{2, 148}
	RepoCleanFg    = ColorPair{0, 0}
	RepoPendingBg  = ColorPair{3, 161}
	RepoPendingFg  = ColorPair{0, 15}
	RepoUnstagedBg = ColorPair{1, 161}
	RepoUnstagedFg = ColorPair{0, 15}

	CmdPassedBg = ColorPair{7, 236}
	CmdPassedFg = ColorPair{0, 15}
	CmdFailedBg = ColorPair{7, 161}
	CmdFailedFg = ColorPair{0, 15}

	SvnChangesBg = ColorPair{7, 148}
	SvnChangesFg = ColorPair{0, 22}

	VirtualEnvBg = ColorPair{7, 35}
	VirtualEnvFg = ColorPair{0, 22}
)

// Composite styles selected as a whole by the segment stages.
var (
	RepoCleanStyle    = Style{Fg: RepoCleanFg, Bg: RepoCleanBg}
	RepoPendingStyle  = Style{Fg: RepoPendingFg, Bg: RepoPendingBg}
	RepoUnstagedStyle = Style{Fg: RepoUnstagedFg, Bg: RepoUnstagedBg}
	SvnChangesStyle   = Style{Fg: SvnChangesFg, Bg: SvnChangesBg}
	VirtualEnvStyle   = Style{Fg: VirtualEnvFg, Bg: VirtualEnvBg}
	CmdPassedStyle    = Style{Fg: CmdPassedFg, Bg: CmdPassedBg}
	CmdFailedStyle    = Style{Fg: CmdFailedFg, Bg: CmdFailedBg}
)

// Role names a palette entry, used for listing the palette.
type Role struct {
	Name string
	Pair ColorPair
}

// Roles returns every palette entry in a stable order.
func Roles() []Role {
	return []Role{
		{"path_bg", PathBg},
		{"path_fg", PathFg},
		{"cwd_fg", CwdFg},
		{"separator_fg", SeparatorFg},
		{"repo_clean_bg", RepoCleanBg},
		{"repo_clean_fg", RepoCleanFg},
		{"repo_pending_bg", RepoPendingBg},
		{"repo_pending_fg", RepoPendingFg},
		{"repo_unstaged_bg", RepoUnstagedBg},
		{"repo_unstaged_fg", RepoUnstagedFg},
		{"cmd_passed_bg", CmdPassedBg},
		{"cmd_passed_fg", CmdPassedFg},
		{"cmd_failed_bg", CmdFailedBg},
		{"cmd_failed_fg", CmdFailedFg},
		{"svn_changes_bg", SvnChangesBg},
		{"svn_changes_fg", SvnChangesFg},
		{"virtual_env_bg", VirtualEnvBg},
		{"virtual_env_fg", VirtualEnvFg},
	}
}

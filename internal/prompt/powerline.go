// Package prompt builds the ordered segment list for one prompt and draws it.
package prompt

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"powerline-go/internal/config"
	"powerline-go/internal/model"
	"powerline-go/internal/repo"
	"powerline-go/internal/segment"
	"powerline-go/internal/shell"
)

// Option customizes a Powerline.
type Option func(*Powerline)

// WithRunner sets the command runner used by the default repository providers.
func WithRunner(r repo.Runner) Option {
	return func(p *Powerline) { p.runner = r }
}

// WithProviders replaces the default git/svn providers.
func WithProviders(providers ...repo.Provider) Option {
	return func(p *Powerline) { p.providers = providers }
}

// WithLogger sets the logger that records stage decisions. The default
// discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(p *Powerline) { p.logger = l }
}

// Powerline renders one prompt. Build runs the stages in a fixed order:
// context, virtual env, working directory, repository, root indicator.
type Powerline struct {
	opts      config.Options
	env       model.Env
	renderer  *shell.Renderer
	glyphs    model.Glyphs
	runner    repo.Runner
	providers []repo.Provider
	logger    *zap.Logger

	segments []segment.Segment
}

// New validates opts and prepares the renderer. An unsupported shell, color
// encoding or glyph mode fails here, before any segment exists.
func New(opts config.Options, env model.Env, options ...Option) (*Powerline, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	renderer, err := shell.NewRenderer(opts.Shell, opts.Color)
	if err != nil {
		return nil, fmt.Errorf("renderer: %w", err)
	}
	opts.DefaultBranches = append([]string(nil), opts.DefaultBranches...)

	p := &Powerline{
		opts:     opts,
		env:      env,
		renderer: renderer,
		glyphs:   model.GlyphSets[opts.Mode],
		runner:   repo.ExecRunner{},
		logger:   zap.NewNop(),
	}
	for _, o := range options {
		o(p)
	}
	if p.providers == nil {
		p.providers = repo.Defaults(p.runner, opts.DefaultBranches)
	}
	return p, nil
}

// Build runs every enabled stage in order. It returns once the repository
// query, the only stage that waits on a subprocess, has finished.
func (p *Powerline) Build(ctx context.Context) {
	p.segments = nil

	if p.opts.ShowContext {
		p.addContext()
	}
	p.addVirtualEnv()
	if p.opts.ShowPath {
		p.addCwd()
	}
	if p.opts.ShowRepo {
		p.addRepo(ctx)
	}
	if p.opts.ShowRoot {
		p.addRootIndicator()
	}

	p.logger.Debug("Prompt built",
		zap.Int("segments", len(p.segments)),
		zap.Int("width", segment.Width(p.segments)))
}

// Segments returns a copy of the segments built so far.
func (p *Powerline) Segments() []segment.Segment {
	return append([]segment.Segment(nil), p.segments...)
}

// Draw renders the built segments and the trailing reset.
func (p *Powerline) Draw() string {
	return segment.Draw(p.renderer, p.segments)
}

// Render is Build followed by Draw.
func (p *Powerline) Render(ctx context.Context) string {
	p.Build(ctx)
	return p.Draw()
}

func (p *Powerline) add(s segment.Segment) {
	p.segments = append(p.segments, s)
}

func (p *Powerline) addContext() {
	ctx := ""
	if p.env.IsRoot {
		ctx = model.SymbolContextRoot
	}
	p.add(segment.New(" "+ctx+" ", model.VirtualEnvStyle, p.glyphs.Separator))
}

func (p *Powerline) addVirtualEnv() {
	if p.env.VirtualEnv == "" {
		return
	}
	name := filepath.Base(p.env.VirtualEnv)
	p.logger.Debug("Virtual env", zap.String("stage", "virtualenv"), zap.String("name", name))
	p.add(segment.New(" "+name+" ", model.VirtualEnvStyle, p.glyphs.Separator))
}

func (p *Powerline) addCwd() {
	names := Breadcrumbs(p.env.Cwd, p.env.Home, p.opts.Depth)
	p.logger.Debug("Breadcrumbs", zap.String("stage", "cwd"), zap.Strings("names", names))

	if p.opts.Depth > 1 {
		crumb := model.Style{Fg: model.PathFg, Bg: model.PathBg}
		for _, name := range names[:len(names)-1] {
			p.add(segment.NewThin(" "+name+" ", crumb, p.glyphs.SeparatorThin, model.SeparatorFg))
		}
	}

	last := names[len(names)-1]
	p.add(segment.New(" "+last+" ", model.Style{Fg: model.CwdFg, Bg: model.PathBg}, p.glyphs.Separator))
}

func (p *Powerline) addRepo(ctx context.Context) {
	if p.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.opts.Timeout)
		defer cancel()
	}

	res := repo.Status(ctx, p.logger, p.env.Cwd, p.providers...)
	if res == nil {
		return
	}
	p.add(segment.New(res.Content, res.Style, p.glyphs.Separator))
}

func (p *Powerline) addRootIndicator() {
	style := model.CmdPassedStyle
	if p.opts.Error {
		style = model.CmdFailedStyle
	}

	symbol := ""
	if p.env.IsRoot {
		symbol += model.SymbolRoot
	}
	if p.opts.Error {
		symbol += model.SymbolError
	}
	if symbol == "" {
		symbol = p.renderer.Shell().PromptChar()
	}
	p.add(segment.New(" "+symbol+" ", style, p.glyphs.Separator))
}

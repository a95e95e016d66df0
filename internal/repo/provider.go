// Package repo queries version-control systems for the prompt's repository segment.
package repo

import (
	"context"

	"go.uber.org/zap"

	"powerline-go/internal/model"
)

// Result is the content and colors of a repository segment.
type Result struct {
	Content string
	Style   model.Style
}

// Provider reports the status of the repository containing dir.
// handled is false when dir is not a repository of this kind, which lets the
// next provider try. A handled query may still have nothing to show (nil Result).
type Provider interface {
	Name() string
	Query(ctx context.Context, dir string) (res *Result, handled bool)
}

// Defaults returns git followed by svn, both backed by runner.
func Defaults(runner Runner, defaultBranches []string) []Provider {
	return []Provider{
		NewGit(runner, defaultBranches),
		NewSvn(runner),
	}
}

// Status asks each provider in turn and stops at the first that handles dir.
func Status(ctx context.Context, logger *zap.Logger, dir string, providers ...Provider) *Result {
	for _, p := range providers {
		res, handled := p.Query(ctx, dir)
		if handled {
			logger.Debug("Repository handled", zap.String("provider", p.Name()), zap.Bool("segment", res != nil))
			return res
		}
		logger.Debug("Not a repository", zap.String("provider", p.Name()))
	}
	return nil
}

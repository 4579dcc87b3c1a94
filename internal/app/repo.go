package app

import (
	"context"
	"path/filepath"

	"github.com/solforge/solforge/internal/fsutil"
	"github.com/solforge/solforge/internal/git"
	"github.com/solforge/solforge/internal/scaffold"
)

// workflowRelPath is the CI workflow file path relative to the root.
var workflowRelPath = filepath.Join(".github", "workflows", "test.yml")

// initGitRepo establishes version control at the root: initializes a
// repository if none exists, writes .gitignore and the CI workflow file only
// if absent, and commits everything when commit is requested.
//
// Re-running against an existing repository with existing files performs only
// the commit step.
func initGitRepo(ctx context.Context, g *git.Git, variant scaffold.Variant, commit bool) error {
	in, err := g.IsInRepo(ctx)
	if err != nil {
		return NewGitError("failed to inspect repository state", err)
	}
	if !in {
		if err := g.Init(ctx); err != nil {
			return NewGitError("failed to initialize repository", err)
		}
	}

	if _, err := fsutil.WriteIfAbsent(filepath.Join(g.Root(), ".gitignore"), scaffold.Gitignore()); err != nil {
		return NewGitError("failed to write .gitignore", err)
	}

	if _, err := fsutil.WriteIfAbsent(filepath.Join(g.Root(), workflowRelPath), scaffold.Workflow(variant)); err != nil {
		return NewGitError("failed to write CI workflow", err)
	}

	if commit {
		if err := g.Add(ctx, "--all"); err != nil {
			return NewGitError("failed to stage files", err)
		}
		if err := g.Commit(ctx, "chore: solforge init"); err != nil {
			return NewGitError("failed to create init commit", err)
		}
	}

	return nil
}

package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/solforge/solforge/internal/debug"
	"github.com/solforge/solforge/internal/git"
)

// ResolveTemplateURL normalizes a user-supplied template reference into a
// fully qualified URL. Rules, in priority order:
//   - a reference containing "://" is already a URL and passes through
//   - a reference starting with "github.com/" gets an https:// prefix
//   - anything else is treated as an org/repo shorthand on GitHub
//
// No reachability check happens here; a bad reference fails during fetch.
func ResolveTemplateURL(template string) string {
	switch {
	case strings.Contains(template, "://"):
		return template
	case strings.HasPrefix(template, "github.com/"):
		return "https://" + template
	default:
		return "https://github.com/" + template
	}
}

// initFromTemplate materializes the template repository's tree into the root
// as a single commit.
//
// The protocol: initialize a repository, fetch the template shallow
// (template history is collapsed anyway, so full history is never needed),
// create a parentless commit carrying the fetched head's tree and a message
// recording provenance, and hard-reset HEAD to it. Submodules are then
// initialized, and updated recursively unless shallow mode was requested.
func initFromTemplate(ctx context.Context, g *git.Git, opts InitOptions, url string) error {
	if err := confirmHistoryDiscard(ctx, g, opts); err != nil {
		return err
	}

	if err := g.Init(ctx); err != nil {
		return NewGitError("failed to initialize repository", err)
	}

	if err := g.Fetch(ctx, true, url, opts.Branch); err != nil {
		return NewTemplateFetchError(fmt.Sprintf("failed to fetch template %s", url), err)
	}

	commitHash, err := g.CommitHash(ctx, true, "FETCH_HEAD")
	if err != nil {
		return NewGitError("failed to read fetched commit hash", err)
	}
	debug.DebugValue("template.fetched_commit", commitHash)

	commitMsg := fmt.Sprintf("chore: init from %s at %s", url, commitHash)
	newCommitHash, err := g.CommitTree(ctx, "FETCH_HEAD^{tree}", commitMsg)
	if err != nil {
		return NewGitError("failed to collapse template history", err)
	}

	if err := g.Reset(ctx, true, newCommitHash); err != nil {
		return NewGitError("failed to reset to collapsed commit", err)
	}

	if g.IsShallow() {
		if err := g.SubmoduleInit(ctx); err != nil {
			return NewGitError("failed to initialize submodules", err)
		}
	} else {
		if err := g.SubmoduleUpdate(ctx, true, true, true); err != nil {
			return NewGitError("failed to update submodules", err)
		}
	}

	return nil
}

// confirmHistoryDiscard guards the surprising case of template mode running
// inside an existing repository: re-initialization discards whatever history
// is there. The caller supplies a confirmation hook; without one the run
// refuses rather than guessing.
func confirmHistoryDiscard(ctx context.Context, g *git.Git, opts InitOptions) error {
	in, err := g.IsInRepo(ctx)
	if err != nil {
		return NewGitError("failed to inspect repository state", err)
	}
	if !in {
		return nil
	}

	if opts.Confirm == nil {
		return NewPreconditionError(
			"target directory is already a git repository; initializing from a template discards its history\n"+
				"rerun interactively to confirm, or remove the existing repository first", nil)
	}
	ok, err := opts.Confirm(fmt.Sprintf(
		"%s is already a git repository; initializing from a template discards its history. Continue?", g.Root()))
	if err != nil {
		return NewPreconditionError("confirmation failed", err)
	}
	if !ok {
		return NewPreconditionError("aborted: existing repository history would be discarded", nil)
	}
	return nil
}

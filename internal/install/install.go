// Package install installs library dependencies into a project's lib
// directory, as git submodules when the project is a repository and as plain
// shallow clones otherwise.
package install

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/solforge/solforge/internal/debug"
	"github.com/solforge/solforge/internal/git"
)

// LibDirName is the dependency directory at the project root.
const LibDirName = "lib"

// Dependency identifies an installable library.
type Dependency struct {
	// URL is the clone URL.
	URL string
	// Name is the directory name under lib/.
	Name string
}

// ForgeStd is the standard library installed into every new project.
var ForgeStd = Dependency{
	URL:  "https://github.com/foundry-rs/forge-std",
	Name: "forge-std",
}

// Options contains options for installing dependencies.
type Options struct {
	// NoGit disables submodule bookkeeping; dependencies are plain clones.
	NoGit bool
	// Commit records an install commit per dependency.
	Commit bool
}

// Install installs deps into the lib directory under g's root.
//
// Called with an empty dependency set, it performs only idempotent
// reconciliation of whatever submodules are already recorded; reconciliation
// failures are logged and ignored so a pre-existing checkout never fails the
// run.
func Install(ctx context.Context, g *git.Git, opts Options, deps []Dependency) error {
	if len(deps) == 0 {
		return reconcile(ctx, g, opts)
	}

	for _, dep := range deps {
		if err := installOne(ctx, g, opts, dep); err != nil {
			return fmt.Errorf("failed to install %s: %w", dep.Name, err)
		}
	}
	return nil
}

func installOne(ctx context.Context, g *git.Git, opts Options, dep Dependency) error {
	relPath := filepath.ToSlash(filepath.Join(LibDirName, dep.Name))

	if opts.NoGit {
		return g.Clone(ctx, true, dep.URL, filepath.Join(g.Root(), LibDirName, dep.Name))
	}

	in, err := g.IsInRepo(ctx)
	if err != nil {
		return err
	}
	if !in {
		return g.Clone(ctx, true, dep.URL, filepath.Join(g.Root(), LibDirName, dep.Name))
	}

	if err := g.SubmoduleAdd(ctx, true, dep.URL, relPath); err != nil {
		return err
	}
	if err := g.SubmoduleUpdate(ctx, true, true, false, relPath); err != nil {
		return err
	}

	if opts.Commit {
		if err := g.Add(ctx, "--all"); err != nil {
			return err
		}
		if err := g.Commit(ctx, fmt.Sprintf("chore: install %s", dep.Name)); err != nil {
			return err
		}
	}
	return nil
}

// reconcile syncs already-recorded submodules without adding anything new.
func reconcile(ctx context.Context, g *git.Git, opts Options) error {
	if opts.NoGit {
		return nil
	}
	in, err := g.IsInRepo(ctx)
	if err != nil || !in {
		return nil
	}
	if err := g.SubmoduleUpdate(ctx, true, false, false); err != nil {
		debug.Debug("[install] submodule reconciliation skipped: %v", err)
	}
	return nil
}

// Package app implements the initialization workflows: a new project is
// either cloned from a remote template with its history collapsed, or built
// from the local file skeleton with version control, the standard library
// dependency, and optional editor configuration.
package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/solforge/solforge/internal/debug"
	"github.com/solforge/solforge/internal/fsutil"
	"github.com/solforge/solforge/internal/git"
	"github.com/solforge/solforge/internal/install"
	"github.com/solforge/solforge/internal/scaffold"
	"github.com/solforge/solforge/internal/vscode"
)

// InitOptions contains options for project initialization.
type InitOptions struct {
	// Root is the project root directory.
	Root string
	// Template is an optional template reference; template mode replaces the
	// local skeleton entirely.
	Template string
	// Branch is the template branch to fetch; only valid with Template.
	Branch string
	// Offline disables dependency installation from the network.
	Offline bool
	// Force overrides the non-empty directory and clean-tree guards.
	Force bool
	// VSCode generates editor configuration.
	VSCode bool
	// Vyper selects the alternate-language template set.
	Vyper bool
	// Shallow controls how submodules are materialized.
	Shallow bool
	// NoGit leaves version control entirely to the caller.
	NoGit bool
	// Commit records an initial commit after scaffolding.
	Commit bool
	// Confirm, when set, is asked before destructive template-mode
	// re-initialization of an existing repository. A nil Confirm refuses
	// instead.
	Confirm func(prompt string) (bool, error)
}

// InitResult contains the results of project initialization.
type InitResult struct {
	// Root is the canonicalized project root.
	Root string
	// TemplateURL is the resolved template URL, if template mode ran.
	TemplateURL string
	// Warnings are non-fatal conditions encountered during the run.
	Warnings []string
}

// Init initializes a project at opts.Root.
//
// Execution is strictly sequential and fail-fast: scaffold, config write,
// version-control init, dependency install, editor config. A failure aborts
// the remaining steps; completed steps are not rolled back.
func Init(ctx context.Context, opts InitOptions) (*InitResult, error) {
	if err := validateInitOptions(opts); err != nil {
		return nil, NewValidationError("invalid init options", err)
	}

	if err := fsutil.EnsureDir(opts.Root); err != nil {
		return nil, err
	}
	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root path: %w", err)
	}
	opts.Root = root
	debug.DebugValue("init.root", root)

	g := git.New(root).Shallow(opts.Shallow)
	result := &InitResult{Root: root}

	if opts.Template != "" {
		url := ResolveTemplateURL(opts.Template)
		result.TemplateURL = url
		debug.DebugValue("init.template_url", url)
		if err := initFromTemplate(ctx, g, opts, url); err != nil {
			return nil, err
		}
		return result, nil
	}

	if err := initDefault(ctx, g, opts, result); err != nil {
		return nil, err
	}
	return result, nil
}

// initDefault runs the default-mode sequence against the root.
func initDefault(ctx context.Context, g *git.Git, opts InitOptions, result *InitResult) error {
	// Guards run before any mutation: non-empty directory first, clean tree
	// second.
	empty, err := fsutil.IsEmptyDir(opts.Root)
	if err != nil {
		return err
	}
	if !empty && !opts.Force {
		return NewPreconditionError(fmt.Sprintf("cannot initialize a non-empty directory: %s\n"+
			"run with --force to initialize regardless", opts.Root), nil)
	}

	// A requested commit needs a clean tree; checked before any mutation.
	if !opts.NoGit && opts.Commit && !opts.Force {
		in, err := g.IsInRepo(ctx)
		if err != nil {
			return NewGitError("failed to inspect repository state", err)
		}
		if in {
			if err := g.EnsureClean(ctx); err != nil {
				return NewPreconditionError("commit requested on an unclean working tree", err)
			}
		}
	}

	buildResult, err := scaffold.Build(scaffold.Options{
		Root:  opts.Root,
		Force: opts.Force,
		Vyper: opts.Vyper,
	})
	if err != nil {
		return err
	}
	result.Warnings = append(result.Warnings, buildResult.Warnings...)

	variant := scaffold.Solidity
	if opts.Vyper {
		variant = scaffold.Vyper
	}

	if !opts.NoGit {
		if err := initGitRepo(ctx, g, variant, opts.Commit); err != nil {
			return err
		}
	}

	if !opts.Offline {
		if err := installForgeStd(ctx, g, opts, result); err != nil {
			return err
		}
	}

	if opts.VSCode {
		if err := vscode.Generate(opts.Root); err != nil {
			return NewEditorConfigError("failed to generate editor configuration", err)
		}
	}

	return nil
}

// installForgeStd installs the standard library, or reconciles an existing
// checkout with an empty install call.
func installForgeStd(ctx context.Context, g *git.Git, opts InitOptions, result *InitResult) error {
	installOpts := install.Options{NoGit: opts.NoGit, Commit: opts.Commit}

	deps := []install.Dependency{install.ForgeStd}
	if fsutil.Exists(filepath.Join(opts.Root, install.LibDirName, install.ForgeStd.Name)) {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%q already exists, skipping install", filepath.Join(install.LibDirName, install.ForgeStd.Name)))
		deps = nil
	}

	if err := install.Install(ctx, g, installOpts, deps); err != nil {
		return NewInstallError("failed to install forge-std", err)
	}
	return nil
}

// validateInitOptions validates init options, including the request-level
// exclusivity of template mode with the default-mode flags.
func validateInitOptions(opts InitOptions) error {
	if opts.Root == "" {
		return fmt.Errorf("root directory cannot be empty")
	}

	if opts.Branch != "" && opts.Template == "" {
		return fmt.Errorf("branch can only be used together with a template")
	}

	if opts.Template != "" {
		switch {
		case opts.Offline:
			return fmt.Errorf("offline cannot be used together with a template")
		case opts.Force:
			return fmt.Errorf("force cannot be used together with a template")
		case opts.VSCode:
			return fmt.Errorf("vscode cannot be used together with a template")
		case opts.Vyper:
			return fmt.Errorf("vyper cannot be used together with a template")
		}
	}

	return nil
}

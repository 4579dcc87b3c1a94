// Package git wraps the git binary with the primitives the initialization
// workflows need. A Git value is bound to a repository root and carries
// explicit configuration (shallow mode); it holds no global state.
package git

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/solforge/solforge/internal/debug"
)

// Git runs git commands against a fixed root directory.
type Git struct {
	root    string
	shallow bool
}

// New creates a Git bound to root.
func New(root string) *Git {
	return &Git{root: root}
}

// Shallow returns a copy of g with shallow mode set.
// Shallow mode controls how submodules are materialized, not template
// fetches, which are always shallow.
func (g *Git) Shallow(shallow bool) *Git {
	cp := *g
	cp.shallow = shallow
	return &cp
}

// Root returns the repository root path.
func (g *Git) Root() string {
	return g.root
}

// IsShallow reports whether shallow mode is set.
func (g *Git) IsShallow() bool {
	return g.shallow
}

// run executes a git command in the root directory and returns stdout.
func (g *Git) run(ctx context.Context, args ...string) (string, error) {
	debug.Debug("[git] git -C %s %s", g.root, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, "git", append([]string{"-C", g.root}, args...)...)
	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("git %s failed: %s", args[0], msg)
	}
	return stdout.String(), nil
}

// Init initializes a repository at the root. Running it on an existing
// repository is safe but resets nothing.
func (g *Git) Init(ctx context.Context) error {
	_, err := g.run(ctx, "init")
	return err
}

// IsInRepo reports whether the root is inside a git work tree.
func (g *Git) IsInRepo(ctx context.Context) (bool, error) {
	cmd := exec.CommandContext(ctx, "git", "-C", g.root, "rev-parse", "--is-inside-work-tree")
	out, err := cmd.Output()
	if err != nil {
		// Non-zero exit means "not a repository", not a failure.
		if _, ok := err.(*exec.ExitError); ok {
			return false, nil
		}
		return false, fmt.Errorf("failed to run git rev-parse: %w", err)
	}
	return strings.TrimSpace(string(out)) == "true", nil
}

// EnsureClean fails unless the working and staging areas are clean,
// including no untracked files.
func (g *Git) EnsureClean(ctx context.Context) error {
	out, err := g.run(ctx, "status", "--porcelain")
	if err != nil {
		return err
	}
	if strings.TrimSpace(out) != "" {
		return fmt.Errorf("the target directory is an already initialized git repository and it " +
			"requires clean working and staging areas, including no untracked files")
	}
	return nil
}

// Fetch fetches remote into the repository, optionally shallow and at a
// named branch. The fetched head is available afterwards as FETCH_HEAD.
func (g *Git) Fetch(ctx context.Context, shallow bool, remote string, branch string) error {
	args := []string{"fetch"}
	if shallow {
		args = append(args, "--depth", "1")
	}
	args = append(args, remote)
	if branch != "" {
		args = append(args, branch)
	}
	_, err := g.run(ctx, args...)
	return err
}

// CommitHash resolves rev to a commit hash, abbreviated when short is set.
func (g *Git) CommitHash(ctx context.Context, short bool, rev string) (string, error) {
	args := []string{"rev-parse"}
	if short {
		args = append(args, "--short")
	}
	args = append(args, rev)
	out, err := g.run(ctx, args...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// CommitTree creates a parentless commit object for tree with the given
// message and returns its hash.
func (g *Git) CommitTree(ctx context.Context, tree string, message string) (string, error) {
	out, err := g.run(ctx, "commit-tree", tree, "-m", message)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// Reset moves HEAD to rev, discarding local changes when hard is set.
func (g *Git) Reset(ctx context.Context, hard bool, rev string) error {
	args := []string{"reset"}
	if hard {
		args = append(args, "--hard")
	}
	args = append(args, rev)
	_, err := g.run(ctx, args...)
	return err
}

// Add stages the given pathspec.
func (g *Git) Add(ctx context.Context, pathspec string) error {
	_, err := g.run(ctx, "add", pathspec)
	return err
}

// Commit records a commit with the given message.
func (g *Git) Commit(ctx context.Context, message string) error {
	_, err := g.run(ctx, "commit", "-m", message)
	return err
}

// Clone clones url into dest (relative to the root's parent handling is the
// caller's concern; dest may be absolute), optionally shallow.
func (g *Git) Clone(ctx context.Context, shallow bool, url string, dest string) error {
	args := []string{"clone"}
	if shallow {
		args = append(args, "--depth", "1")
	}
	args = append(args, url, dest)
	_, err := g.run(ctx, args...)
	return err
}

// SubmoduleInit initializes recorded submodules without fetching content.
func (g *Git) SubmoduleInit(ctx context.Context) error {
	_, err := g.run(ctx, "submodule", "init")
	return err
}

// SubmoduleUpdate initializes and updates submodules. With recursive set,
// nested submodules are updated as well; noFetch suppresses fetching new
// objects from the remote. Paths limit the update to specific submodules.
func (g *Git) SubmoduleUpdate(ctx context.Context, init bool, recursive bool, noFetch bool, paths ...string) error {
	args := []string{"submodule", "update"}
	if init {
		args = append(args, "--init")
	}
	if recursive {
		args = append(args, "--recursive")
	}
	if noFetch {
		args = append(args, "--no-fetch")
	}
	if g.shallow {
		args = append(args, "--depth", "1")
	}
	args = append(args, paths...)
	_, err := g.run(ctx, args...)
	return err
}

// SubmoduleAdd records url as a submodule at relPath.
func (g *Git) SubmoduleAdd(ctx context.Context, force bool, url string, relPath string) error {
	args := []string{"submodule", "add"}
	if force {
		args = append(args, "--force")
	}
	args = append(args, url, relPath)
	_, err := g.run(ctx, args...)
	return err
}

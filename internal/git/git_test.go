package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// requireGit skips the test when the git binary is not installed.
func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
}

func setGitIdentity(t *testing.T) {
	t.Helper()
	t.Setenv("GIT_AUTHOR_NAME", "test")
	t.Setenv("GIT_AUTHOR_EMAIL", "test@example.com")
	t.Setenv("GIT_COMMITTER_NAME", "test")
	t.Setenv("GIT_COMMITTER_EMAIL", "test@example.com")
}

func TestInitAndIsInRepo(t *testing.T) {
	requireGit(t)
	ctx := context.Background()

	dir := t.TempDir()
	g := New(dir)

	in, err := g.IsInRepo(ctx)
	if err != nil {
		t.Fatalf("IsInRepo() error = %v", err)
	}
	if in {
		t.Fatal("empty directory should not be a repository")
	}

	if err := g.Init(ctx); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	in, err = g.IsInRepo(ctx)
	if err != nil {
		t.Fatalf("IsInRepo() error = %v", err)
	}
	if !in {
		t.Error("directory should be a repository after Init")
	}
}

func TestEnsureClean(t *testing.T) {
	requireGit(t)
	ctx := context.Background()

	dir := t.TempDir()
	g := New(dir)
	if err := g.Init(ctx); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	// Empty repository is clean
	if err := g.EnsureClean(ctx); err != nil {
		t.Errorf("EnsureClean() on empty repo error = %v", err)
	}

	// Untracked file makes the tree unclean
	if err := os.WriteFile(filepath.Join(dir, "untracked.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := g.EnsureClean(ctx); err == nil {
		t.Error("EnsureClean() should fail with an untracked file present")
	}
}

func TestCommitAndCommitHash(t *testing.T) {
	requireGit(t)
	setGitIdentity(t)
	ctx := context.Background()

	dir := t.TempDir()
	g := New(dir)
	if err := g.Init(ctx); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := g.Add(ctx, "--all"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := g.Commit(ctx, "initial"); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}

	full, err := g.CommitHash(ctx, false, "HEAD")
	if err != nil {
		t.Fatalf("CommitHash() error = %v", err)
	}
	short, err := g.CommitHash(ctx, true, "HEAD")
	if err != nil {
		t.Fatalf("CommitHash(short) error = %v", err)
	}
	if len(short) >= len(full) {
		t.Errorf("short hash %q should be shorter than full hash %q", short, full)
	}
}

func TestShallowCopiesValue(t *testing.T) {
	g := New("/tmp/repo")
	s := g.Shallow(true)

	if g.IsShallow() {
		t.Error("original Git should be unchanged")
	}
	if !s.IsShallow() {
		t.Error("Shallow(true) copy should report shallow")
	}
	if s.Root() != g.Root() {
		t.Error("Shallow copy should keep the root")
	}
}

package testhelpers

import (
	"os"
	"path/filepath"
	"testing"
)

// Scene is a local repository cloned from an upstream, the shape every sync
// test needs: upstream plays the remote, the clone is the repository under
// test.
type Scene struct {
	Dir      string
	Upstream *GitRepo
	Local    *GitRepo
	oldDir   string
}

// NewScene creates an upstream repository with one commit on main and a
// local clone of it, then changes into the clone. Cleanup is registered with
// t.Cleanup().
func NewScene(t *testing.T) *Scene {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "hubsync-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	oldDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get current directory: %v", err)
	}

	upstream, err := NewGitRepo(filepath.Join(tmpDir, "upstream"))
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("Failed to create upstream repo: %v", err)
	}
	if err := upstream.CreateChangeAndCommit("1", "1"); err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("Failed to seed upstream repo: %v", err)
	}

	local, err := NewClonedRepo(filepath.Join(tmpDir, "local"), upstream)
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("Failed to clone repo: %v", err)
	}

	scene := &Scene{
		Dir:      tmpDir,
		Upstream: upstream,
		Local:    local,
		oldDir:   oldDir,
	}

	if err := os.Chdir(local.Dir); err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("Failed to change directory: %v", err)
	}

	t.Cleanup(func() {
		os.Chdir(oldDir)
		if os.Getenv("DEBUG") == "" {
			os.RemoveAll(tmpDir)
		}
	})

	return scene
}

// AdvanceUpstream adds a commit to an upstream branch and returns to the
// branch that was checked out there before.
func (s *Scene) AdvanceUpstream(t *testing.T, branch, change string) {
	t.Helper()

	previous, err := s.Upstream.CurrentBranch()
	if err != nil {
		t.Fatalf("Failed to read upstream branch: %v", err)
	}
	if previous != branch {
		if err := s.Upstream.CheckoutBranch(branch); err != nil {
			t.Fatalf("Failed to checkout %s upstream: %v", branch, err)
		}
	}
	if err := s.Upstream.CreateChangeAndCommit(change, change); err != nil {
		t.Fatalf("Failed to commit upstream: %v", err)
	}
	if previous != branch {
		if err := s.Upstream.CheckoutBranch(previous); err != nil {
			t.Fatalf("Failed to restore upstream branch: %v", err)
		}
	}
}

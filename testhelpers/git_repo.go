// Package testhelpers builds throwaway git repositories for tests. Fixture
// setup drives the real git CLI; the code under test never does.
package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const textFileName = "test.txt"

// GitRepo represents a Git repository for testing purposes.
type GitRepo struct {
	Dir string
}

// NewGitRepo initializes a new Git repository in the specified directory.
func NewGitRepo(dir string) (*GitRepo, error) {
	repo := &GitRepo{Dir: dir}

	cmd := exec.Command("git", "-c", "init.defaultBranch=main", "-c", "core.autocrlf=false", "init", dir, "-b", "main")
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("failed to init repo: %w", err)
	}

	if err := repo.configureUser(); err != nil {
		return nil, err
	}
	return repo, nil
}

// NewClonedRepo clones an upstream repository, giving the clone an "origin"
// remote and a remote HEAD, the way real clones come into the world.
func NewClonedRepo(dir string, upstream *GitRepo) (*GitRepo, error) {
	cmd := exec.Command("git", "clone", upstream.Dir, dir)
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("failed to clone repo: %w", err)
	}

	repo := &GitRepo{Dir: dir}
	if err := repo.configureUser(); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *GitRepo) configureUser() error {
	if err := r.runGitCommand("config", "user.name", "Test User"); err != nil {
		return err
	}
	return r.runGitCommand("config", "user.email", "test@example.com")
}

// runGitCommand executes a git command in the repository directory.
// GIT_CONFIG_GLOBAL=/dev/null keeps the user's global config out of tests.
func (r *GitRepo) runGitCommand(args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	if os.Getenv("DEBUG") == "" {
		cmd.Stdout = nil
		cmd.Stderr = nil
	}
	return cmd.Run()
}

// RunGitCommand executes a git command and returns an error if it fails.
func (r *GitRepo) RunGitCommand(args ...string) error {
	return r.runGitCommand(args...)
}

// RunGitCommandAndGetOutput executes a git command and returns its trimmed output.
func (r *GitRepo) RunGitCommandAndGetOutput(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_CONFIG_GLOBAL=/dev/null")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git command failed: %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// CreateChangeAndCommit creates a file change and commits it.
func (r *GitRepo) CreateChangeAndCommit(textValue string, prefix string) error {
	fileName := textFileName
	if prefix != "" {
		fileName = prefix + "_" + fileName
	}
	filePath := filepath.Join(r.Dir, fileName)
	if err := os.WriteFile(filePath, []byte(textValue), 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := r.runGitCommand("add", "."); err != nil {
		return err
	}
	return r.runGitCommand("commit", "-m", textValue)
}

// CreateBranch creates a new branch without checking it out.
func (r *GitRepo) CreateBranch(name string) error {
	return r.runGitCommand("branch", name)
}

// CreateAndCheckoutBranch creates and checks out a new branch.
func (r *GitRepo) CreateAndCheckoutBranch(name string) error {
	return r.runGitCommand("checkout", "-b", name)
}

// CheckoutBranch checks out a branch.
func (r *GitRepo) CheckoutBranch(name string) error {
	return r.runGitCommand("checkout", name)
}

// DeleteBranch force-deletes a branch.
func (r *GitRepo) DeleteBranch(name string) error {
	return r.runGitCommand("branch", "-D", name)
}

// CurrentBranch returns the checked-out branch name.
func (r *GitRepo) CurrentBranch() (string, error) {
	return r.RunGitCommandAndGetOutput("symbolic-ref", "--short", "HEAD")
}

// RevParse resolves a revision to its full hash.
func (r *GitRepo) RevParse(rev string) (string, error) {
	return r.RunGitCommandAndGetOutput("rev-parse", rev)
}

// BranchExists reports whether a local branch exists.
func (r *GitRepo) BranchExists(name string) bool {
	return r.runGitCommand("show-ref", "--verify", "--quiet", "refs/heads/"+name) == nil
}

// SetConfig sets a repository-local config value.
func (r *GitRepo) SetConfig(key, value string) error {
	return r.runGitCommand("config", key, value)
}

// Fetch fetches a remote with pruning, refreshing remote-tracking refs.
func (r *GitRepo) Fetch(remote string) error {
	return r.runGitCommand("fetch", "--prune", remote)
}

// Push pushes a branch to a remote and sets it as the branch's upstream.
func (r *GitRepo) Push(remote, branch string) error {
	return r.runGitCommand("push", "-u", remote, branch)
}

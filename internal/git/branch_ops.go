package git

import (
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// UpdateRef moves a local branch ref to the given commit. The working tree is
// untouched, so this must not be used for the checked-out branch.
func (r *Repository) UpdateRef(branch string, to plumbing.Hash) error {
	name := plumbing.NewBranchReferenceName(branch)
	if err := r.repo.Storer.SetReference(plumbing.NewHashReference(name, to)); err != nil {
		return fmt.Errorf("failed to update %s: %w", branch, err)
	}
	return nil
}

// ResetCurrent fast-forwards the checked-out branch and the working tree to
// the given commit. Uncommitted changes to tracked files are refused rather
// than clobbered; untracked files are not in the way of a reset.
func (r *Repository) ResetCurrent(to plumbing.Hash) error {
	w, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to open worktree: %w", err)
	}
	status, err := w.Status()
	if err != nil {
		return fmt.Errorf("failed to read worktree status: %w", err)
	}
	for file, s := range status {
		if s.Worktree == gogit.Untracked {
			continue
		}
		if s.Worktree != gogit.Unmodified || s.Staging != gogit.Unmodified {
			return fmt.Errorf("uncommitted changes to %s", file)
		}
	}
	if err := w.Reset(&gogit.ResetOptions{Commit: to, Mode: gogit.HardReset}); err != nil {
		return fmt.Errorf("failed to reset worktree: %w", err)
	}
	return nil
}

// DeleteRef removes a local branch ref. Deleting the ref HEAD points at is
// refused; callers must check out another branch first.
func (r *Repository) DeleteRef(branch string) error {
	name := plumbing.NewBranchReferenceName(branch)
	if head, err := r.repo.Head(); err == nil && head.Name() == name {
		return fmt.Errorf("refusing to delete checked-out branch %s", branch)
	}
	if err := r.repo.Storer.RemoveReference(name); err != nil {
		return fmt.Errorf("failed to delete %s: %w", branch, err)
	}
	return nil
}

// Checkout switches the working tree and HEAD to the named local branch.
func (r *Repository) Checkout(branch string) error {
	w, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("failed to open worktree: %w", err)
	}
	opts := &gogit.CheckoutOptions{Branch: plumbing.NewBranchReferenceName(branch)}
	if err := w.Checkout(opts); err != nil {
		return fmt.Errorf("failed to checkout %s: %w", branch, err)
	}
	return nil
}

package git

import (
	"fmt"

	"github.com/go-git/go-git/v5/plumbing"
)

// IsAncestor reports whether commit a is an ancestor of commit b. A commit
// counts as an ancestor of itself.
func (r *Repository) IsAncestor(a, b plumbing.Hash) (bool, error) {
	if a == b {
		return true, nil
	}

	commitA, err := r.repo.CommitObject(a)
	if err != nil {
		return false, fmt.Errorf("failed to get commit %s: %w", a, err)
	}
	commitB, err := r.repo.CommitObject(b)
	if err != nil {
		return false, fmt.Errorf("failed to get commit %s: %w", b, err)
	}

	return commitA.IsAncestor(commitB)
}

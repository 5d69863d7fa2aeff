package git

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"
)

// RemoteHead returns the branch name the remote's stored HEAD symbolic ref
// (refs/remotes/<remote>/HEAD) points at. This is the authoritative default
// branch when present.
func (r *Repository) RemoteHead(remote string) (string, bool, error) {
	ref, err := r.repo.Reference(plumbing.NewRemoteHEADReferenceName(remote), false)
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s/HEAD: %w", remote, err)
	}
	if ref.Type() != plumbing.SymbolicReference {
		return "", false, nil
	}
	prefix := "refs/remotes/" + remote + "/"
	target := ref.Target().String()
	if !strings.HasPrefix(target, prefix) {
		return "", false, nil
	}
	return strings.TrimPrefix(target, prefix), true, nil
}

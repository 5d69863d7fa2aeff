package git

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5/plumbing"

	hserrors "hubsync.dev/hubsync/internal/errors"
)

// resolveBranchRemote returns the remote a branch belongs to, in git's own
// precedence order: branch.<name>.remote, then branch.<name>.pushremote,
// then remote.pushdefault. Empty when none are configured.
func (r *Repository) resolveBranchRemote(name string) string {
	if bc, ok := r.cfg.Branches[name]; ok && bc.Remote != "" {
		return bc.Remote
	}
	if pushRemote := r.cfg.Raw.Section("branch").Subsection(name).Option("pushremote"); pushRemote != "" {
		return pushRemote
	}
	return r.cfg.Raw.Section("remote").Option("pushdefault")
}

// MainRemote resolves the single remote a run reconciles against, from the
// current branch's configuration. It fails when nothing resolves or when the
// resolved remote is not actually configured.
func (r *Repository) MainRemote(currentBranch string) (string, error) {
	remote := r.resolveBranchRemote(currentBranch)
	if remote == "" {
		return "", hserrors.ErrNoRemote
	}
	if !r.HasRemote(remote) {
		return "", fmt.Errorf("remote %q is configured for branch %q but does not exist: %w",
			remote, currentBranch, hserrors.ErrNoRemote)
	}
	return remote, nil
}

// RemoteTrackingTarget returns the target of refs/remotes/<remote>/<branch>,
// with false when the ref does not exist.
func (r *Repository) RemoteTrackingTarget(remote, branch string) (plumbing.Hash, bool, error) {
	ref, err := r.repo.Reference(plumbing.NewRemoteReferenceName(remote, branch), true)
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return plumbing.ZeroHash, false, nil
	}
	if err != nil {
		return plumbing.ZeroHash, false, fmt.Errorf("failed to resolve %s/%s: %w", remote, branch, err)
	}
	return ref.Hash(), true, nil
}

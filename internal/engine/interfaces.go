package engine

import (
	"context"

	"github.com/go-git/go-git/v5/plumbing"
)

// RepositoryStore is the surface the engine needs from repository storage.
// internal/git implements it on top of go-git; tests substitute fakes.
type RepositoryStore interface {
	// RemoteTrackingTarget returns the target of refs/remotes/<remote>/<branch>.
	// The bool is false when the ref does not exist.
	RemoteTrackingTarget(remote, branch string) (plumbing.Hash, bool, error)

	// UpdateRef moves a local branch ref to the given commit without
	// touching the working tree.
	UpdateRef(branch string, to plumbing.Hash) error

	// ResetCurrent fast-forwards the currently checked-out branch and the
	// working tree to the given commit.
	ResetCurrent(to plumbing.Hash) error

	// DeleteRef removes a local branch ref. It must never be called for the
	// branch HEAD points at.
	DeleteRef(branch string) error

	// Checkout switches the working tree and HEAD to the named local branch.
	Checkout(branch string) error
}

// HistoryGraph answers ancestry queries over the commit graph.
type HistoryGraph interface {
	// IsAncestor reports whether a is an ancestor of b. A commit is an
	// ancestor of itself.
	IsAncestor(a, b plumbing.Hash) (bool, error)
}

// FetchTransport refreshes the remote-tracking refs for a remote, including
// pruning refs whose upstream branch no longer exists.
type FetchTransport interface {
	Fetch(ctx context.Context, remote string) ([]RefChange, error)
}

// Reporter receives the run's event stream. Implementations format or record
// events; the engine itself never produces text.
type Reporter interface {
	Emit(Event)
}

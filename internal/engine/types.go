package engine

import (
	"github.com/go-git/go-git/v5/plumbing"
)

// BranchState is a point-in-time snapshot of a local branch, taken after the
// fetch so that classification sees a consistent view.
type BranchState struct {
	// Name is the short branch name ("feature", not "refs/heads/feature").
	Name string

	// Head is the commit the branch currently points at.
	Head plumbing.Hash

	// IsCurrent is true for the branch HEAD points at. At most one branch
	// in a snapshot has this set.
	IsCurrent bool

	// Remote is the remote the branch resolves to via
	// branch.<name>.remote, branch.<name>.pushremote or remote.pushdefault.
	// Empty when none of those are configured.
	Remote string

	// MergeBranch is the branch name on the remote this branch tracks.
	// Defaults to the branch's own name when branch.<name>.merge is unset.
	MergeBranch string
}

// Resolution holds the per-run remote and default-branch decisions. It is
// computed once, before any branch is classified.
type Resolution struct {
	// MainRemote is the single remote this run reconciles against.
	MainRemote string

	// AlternateRemote is set only when the default branch was found via the
	// local main/master heuristic and that branch tracks a different remote.
	// It widens the ownership filter; it is never fetched.
	AlternateRemote string

	// DefaultName is the remote's default branch name, or "" when no
	// default could be determined.
	DefaultName string

	// DefaultHead is the tip of the default branch used for mergeability
	// checks. Zero when DefaultName is "".
	DefaultHead plumbing.Hash

	// LocalDefault is the local branch tracking the default branch, used as
	// the checkout target when the current branch is deleted. Empty when no
	// such local branch exists.
	LocalDefault string
}

// OwnedBy reports whether a branch resolving to remote belongs to this run.
func (r Resolution) OwnedBy(remote string) bool {
	if remote == "" {
		return false
	}
	return remote == r.MainRemote || (r.AlternateRemote != "" && remote == r.AlternateRemote)
}

// RefChange describes one remote-tracking ref moved by the fetch.
// A zero Old means the ref is new; a zero New means it was pruned.
type RefChange struct {
	Branch string
	Old    plumbing.Hash
	New    plumbing.Hash
}

// IsNew reports whether the ref appeared with this fetch.
func (c RefChange) IsNew() bool { return c.Old.IsZero() }

// IsDeleted reports whether the ref was pruned by this fetch.
func (c RefChange) IsDeleted() bool { return c.New.IsZero() }

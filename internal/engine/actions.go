package engine

import (
	"github.com/go-git/go-git/v5/plumbing"
)

// SkipReason explains why a branch was left alone.
type SkipReason string

const (
	// SkipNotOwned means the branch does not resolve to the main or
	// alternate remote.
	SkipNotOwned SkipReason = "not tracking this remote"
	// SkipUpToDate means the branch already matches its remote-tracking ref.
	SkipUpToDate SkipReason = "up to date"
	// SkipUnfetched means the branch resolves to the alternate remote and
	// has no tracking ref. That remote is never fetched, so the absence
	// says nothing about the branch's fate upstream.
	SkipUnfetched SkipReason = "remote not fetched"
)

// WarnReason explains why a branch needs attention but was not touched.
type WarnReason string

const (
	// WarnDiverged means local and upstream have diverged; nothing is safe
	// to fast-forward.
	WarnDiverged WarnReason = "seems to contain unpushed commits"
	// WarnUnmerged means the upstream branch was deleted but the local
	// branch is not merged into the default branch.
	WarnUnmerged WarnReason = "deleted on remote but not merged"
	// WarnNoDefault means the upstream branch was deleted but there is no
	// default branch to compare against or switch to.
	WarnNoDefault WarnReason = "no default branch"
)

// Action is the single decision the classifier produces for a branch.
// Exactly one concrete type applies per branch per run.
type Action interface {
	act()
}

// Skip leaves the branch untouched without a warning.
type Skip struct {
	Branch string
	Reason SkipReason
}

// FastForward moves the branch ref to the remote-tracking target. When the
// branch is current the working tree moves with it.
type FastForward struct {
	Branch    string
	Remote    string
	Old       plumbing.Hash
	New       plumbing.Hash
	IsCurrent bool
}

// DeleteBranch removes a local branch whose upstream was deleted and whose
// commits are merged into the default branch.
type DeleteBranch struct {
	Branch string
	Remote string
	Old    plumbing.Hash
}

// SwitchAndDelete checks out To, then deletes the branch that was current.
// The two steps are one action so the ordering cannot be lost: the delete
// must never run while HEAD still points at the branch.
type SwitchAndDelete struct {
	To     string
	Delete DeleteBranch
}

// Warn reports a branch that needs the user's attention and is left as-is.
type Warn struct {
	Branch string
	Remote string
	Reason WarnReason
}

func (Skip) act()            {}
func (FastForward) act()     {}
func (DeleteBranch) act()    {}
func (SwitchAndDelete) act() {}
func (Warn) act()            {}

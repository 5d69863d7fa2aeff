package engine

import (
	"github.com/go-git/go-git/v5/plumbing"
)

// EventKind identifies what happened to a branch.
type EventKind int

const (
	// EventUpdated indicates a branch was fast-forwarded
	EventUpdated EventKind = iota
	// EventDeleted indicates a branch was deleted
	EventDeleted
	// EventSwitchedAndDeleted indicates the current branch was deleted after
	// switching to the default branch
	EventSwitchedAndDeleted
	// EventSkipped indicates a branch needed no action
	EventSkipped
	// EventWarning indicates a branch was left alone and needs attention
	EventWarning
	// EventNewRemoteBranch indicates a branch appeared on the remote that has
	// no local counterpart; informational only
	EventNewRemoteBranch
	// EventBranchError indicates the repository store rejected an action for
	// a single branch
	EventBranchError
)

// Event is one entry in the run's report stream.
type Event struct {
	Kind   EventKind
	Branch string
	Remote string
	Old    plumbing.Hash
	New    plumbing.Hash
	// Reason carries the skip/warn reason or the per-branch error text.
	Reason string
	// SwitchedTo is set on EventSwitchedAndDeleted.
	SwitchedTo string
}

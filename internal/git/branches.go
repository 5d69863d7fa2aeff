package git

import (
	"fmt"
	"sort"

	"github.com/go-git/go-git/v5/plumbing"

	"hubsync.dev/hubsync/internal/engine"
	hserrors "hubsync.dev/hubsync/internal/errors"
)

// CurrentBranch returns the snapshot of the branch HEAD points at.
// A detached HEAD is a fatal precondition failure for a sync run.
func (r *Repository) CurrentBranch() (engine.BranchState, error) {
	head, err := r.repo.Head()
	if err != nil {
		return engine.BranchState{}, fmt.Errorf("failed to read HEAD: %w", err)
	}
	if !head.Name().IsBranch() {
		return engine.BranchState{}, hserrors.ErrDetachedHead
	}
	return r.branchState(head.Name().Short(), head.Hash(), true), nil
}

// LocalBranches returns snapshots of every local branch, sorted by name.
func (r *Repository) LocalBranches() ([]engine.BranchState, error) {
	var current string
	if head, err := r.repo.Head(); err == nil && head.Name().IsBranch() {
		current = head.Name().Short()
	}

	iter, err := r.repo.Branches()
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	defer iter.Close()

	var states []engine.BranchState
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().Short()
		states = append(states, r.branchState(name, ref.Hash(), name == current))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate branches: %w", err)
	}

	sort.Slice(states, func(i, j int) bool { return states[i].Name < states[j].Name })
	return states, nil
}

// branchState assembles one branch snapshot from the ref and the branch's
// configuration.
func (r *Repository) branchState(name string, head plumbing.Hash, current bool) engine.BranchState {
	merge := name
	if bc, ok := r.cfg.Branches[name]; ok && bc.Merge != "" {
		merge = bc.Merge.Short()
	}
	return engine.BranchState{
		Name:        name,
		Head:        head,
		IsCurrent:   current,
		Remote:      r.resolveBranchRemote(name),
		MergeBranch: merge,
	}
}

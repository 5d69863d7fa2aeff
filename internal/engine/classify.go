package engine

// Engine classifies branch snapshots and applies the resulting actions.
type Engine struct {
	store  RepositoryStore
	graph  HistoryGraph
	report Reporter
	dryRun bool
}

// New creates an engine over the given collaborators.
func New(store RepositoryStore, graph HistoryGraph, report Reporter) *Engine {
	return &Engine{store: store, graph: graph, report: report}
}

// SetDryRun makes Apply emit events without mutating the repository.
func (e *Engine) SetDryRun(dryRun bool) {
	e.dryRun = dryRun
}

// Classify decides what to do with one branch. It reads only the frozen
// snapshot and the history graph; it never mutates anything, so branches can
// be classified in any order.
func (e *Engine) Classify(b BranchState, res Resolution) (Action, error) {
	if !res.OwnedBy(b.Remote) {
		return Skip{Branch: b.Name, Reason: SkipNotOwned}, nil
	}

	target, exists, err := e.store.RemoteTrackingTarget(b.Remote, b.MergeBranch)
	if err != nil {
		return nil, err
	}
	if !exists {
		// Only the main remote is fetched and pruned. A missing tracking
		// ref for an alternate-remote branch means it was never fetched,
		// not that the upstream branch was deleted.
		if b.Remote != res.MainRemote {
			return Skip{Branch: b.Name, Reason: SkipUnfetched}, nil
		}
		return e.classifyDeleted(b, res)
	}

	if target == b.Head {
		return Skip{Branch: b.Name, Reason: SkipUpToDate}, nil
	}

	fastForwardable, err := e.graph.IsAncestor(b.Head, target)
	if err != nil {
		return nil, err
	}
	if !fastForwardable {
		return Warn{Branch: b.Name, Remote: b.Remote, Reason: WarnDiverged}, nil
	}
	return FastForward{
		Branch:    b.Name,
		Remote:    b.Remote,
		Old:       b.Head,
		New:       target,
		IsCurrent: b.IsCurrent,
	}, nil
}

// classifyDeleted handles branches whose remote-tracking ref vanished with
// the fetch: the upstream branch was deleted.
func (e *Engine) classifyDeleted(b BranchState, res Resolution) (Action, error) {
	if res.DefaultName == "" {
		return Warn{Branch: b.Name, Remote: b.Remote, Reason: WarnNoDefault}, nil
	}

	merged, err := e.graph.IsAncestor(b.Head, res.DefaultHead)
	if err != nil {
		return nil, err
	}
	if !merged {
		return Warn{Branch: b.Name, Remote: b.Remote, Reason: WarnUnmerged}, nil
	}

	del := DeleteBranch{Branch: b.Name, Remote: b.Remote, Old: b.Head}
	if !b.IsCurrent {
		return del, nil
	}
	// HEAD points here, so there must be somewhere to switch to first.
	if res.LocalDefault == "" || res.LocalDefault == b.Name {
		return Warn{Branch: b.Name, Remote: b.Remote, Reason: WarnNoDefault}, nil
	}
	return SwitchAndDelete{To: res.LocalDefault, Delete: del}, nil
}

package engine

import (
	hserrors "hubsync.dev/hubsync/internal/errors"
)

// Apply performs exactly one action and emits the matching event. A failure
// from the repository store is returned as a *errors.BranchError and also
// reported, so the caller can continue with the remaining branches.
func (e *Engine) Apply(a Action) error {
	switch act := a.(type) {
	case Skip:
		e.report.Emit(Event{
			Kind:   EventSkipped,
			Branch: act.Branch,
			Reason: string(act.Reason),
		})
		return nil

	case Warn:
		e.report.Emit(Event{
			Kind:   EventWarning,
			Branch: act.Branch,
			Remote: act.Remote,
			Reason: string(act.Reason),
		})
		return nil

	case FastForward:
		if !e.dryRun {
			var err error
			if act.IsCurrent {
				err = e.store.ResetCurrent(act.New)
			} else {
				err = e.store.UpdateRef(act.Branch, act.New)
			}
			if err != nil {
				return e.branchError(act.Branch, "update", err)
			}
		}
		e.report.Emit(Event{
			Kind:   EventUpdated,
			Branch: act.Branch,
			Remote: act.Remote,
			Old:    act.Old,
			New:    act.New,
		})
		return nil

	case DeleteBranch:
		if !e.dryRun {
			if err := e.store.DeleteRef(act.Branch); err != nil {
				return e.branchError(act.Branch, "delete", err)
			}
		}
		e.report.Emit(Event{
			Kind:   EventDeleted,
			Branch: act.Branch,
			Remote: act.Remote,
			Old:    act.Old,
		})
		return nil

	case SwitchAndDelete:
		// Checkout must land before the delete; aborting between the two
		// steps leaves the branch alive, never HEAD dangling.
		if !e.dryRun {
			if err := e.store.Checkout(act.To); err != nil {
				return e.branchError(act.Delete.Branch, "checkout", err)
			}
			if err := e.store.DeleteRef(act.Delete.Branch); err != nil {
				return e.branchError(act.Delete.Branch, "delete", err)
			}
		}
		e.report.Emit(Event{
			Kind:       EventSwitchedAndDeleted,
			Branch:     act.Delete.Branch,
			Remote:     act.Delete.Remote,
			Old:        act.Delete.Old,
			SwitchedTo: act.To,
		})
		return nil
	}
	return nil
}

func (e *Engine) branchError(branch, op string, err error) error {
	berr := hserrors.NewBranchError(branch, op, err)
	e.report.Emit(Event{
		Kind:   EventBranchError,
		Branch: branch,
		Reason: berr.Error(),
	})
	return berr
}

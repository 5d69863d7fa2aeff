// Package sync implements the reconciliation run: fetch the main remote and
// bring every local branch it owns into a consistent state.
package sync

import (
	"errors"

	"hubsync.dev/hubsync/internal/config"
	"hubsync.dev/hubsync/internal/engine"
	hserrors "hubsync.dev/hubsync/internal/errors"
	"hubsync.dev/hubsync/internal/runtime"
)

// Options contains options for the sync command
type Options struct {
	// DryRun reports what would happen without mutating the repository.
	DryRun bool
	// Quiet suppresses everything below warnings.
	Quiet bool
	// Interactive asks for confirmation before each branch deletion.
	Interactive bool
}

// Action performs the sync run. The order is fixed: validate names, resolve
// the main remote, fetch, detect the default branch, then classify and apply
// one branch at a time.
func Action(ctx *runtime.Context, opts Options) error {
	repo := ctx.Repo
	splog := ctx.Splog
	if opts.Quiet {
		splog.SetQuiet(true)
	}

	// Nothing may be mutated once an undecodable name is in play.
	if err := repo.ValidateNames(); err != nil {
		return err
	}

	cfg, err := config.GetRepoConfig(repo.Root())
	if err != nil {
		return err
	}

	current, err := repo.CurrentBranch()
	if err != nil {
		return err
	}
	splog.Info("current branch: %s", current.Name)

	mainRemote, err := repo.MainRemote(current.Name)
	if err != nil {
		return err
	}
	splog.Info("default remote: %s", mainRemote)

	changes, err := repo.Fetch(ctx.Context, mainRemote)
	if err != nil {
		return err
	}
	ctx.Formatter.FetchReport(mainRemote, changes)

	// Snapshot local branches after the fetch so classification sees the
	// refreshed remote-tracking state.
	branches, err := repo.LocalBranches()
	if err != nil {
		return err
	}

	res, err := resolveRun(ctx, cfg, mainRemote, branches)
	if err != nil {
		return err
	}
	if res.DefaultName != "" {
		owner := mainRemote
		if res.AlternateRemote != "" {
			owner = res.AlternateRemote
		}
		splog.Info("remote default: %s/%s", owner, res.DefaultName)
	}
	ctx.Formatter.SetRun(mainRemote, res.DefaultName)
	splog.Newline()

	eng := engine.New(repo, repo, ctx.Formatter)
	eng.SetDryRun(opts.DryRun)

	reportNewRemoteBranches(ctx, mainRemote, changes, branches)

	// Checkout changes which branch is current mid-run, so each branch is
	// classified right before it is applied, against the live current name.
	currentName := current.Name
	for _, b := range branches {
		b.IsCurrent = b.Name == currentName

		action, err := eng.Classify(b, res)
		if err != nil {
			return err
		}

		if target, deletes := deletionTarget(action); deletes && cfg.IsProtected(target) {
			ctx.Formatter.Emit(engine.Event{
				Kind:   engine.EventSkipped,
				Branch: target,
				Reason: "protected branch",
			})
			continue
		}

		if opts.Interactive && !opts.DryRun {
			if target, deletes := deletionTarget(action); deletes {
				confirmed, err := confirmDelete(target)
				if err != nil {
					return err
				}
				if !confirmed {
					ctx.Formatter.Emit(engine.Event{
						Kind:   engine.EventSkipped,
						Branch: target,
						Reason: "deletion declined",
					})
					continue
				}
			}
		}

		if err := eng.Apply(action); err != nil {
			// Store failures for one branch never abort the rest.
			var branchErr *hserrors.BranchError
			if errors.As(err, &branchErr) {
				continue
			}
			return err
		}

		if switched, ok := action.(engine.SwitchAndDelete); ok {
			currentName = switched.To
		}
	}

	return nil
}

// reportNewRemoteBranches surfaces branches that appeared on the remote and
// have no local counterpart. Informational only; no local branch is created.
func reportNewRemoteBranches(ctx *runtime.Context, remote string, changes []engine.RefChange, branches []engine.BranchState) {
	local := make(map[string]bool, len(branches))
	for _, b := range branches {
		local[b.Name] = true
	}
	for _, c := range changes {
		if c.IsNew() && !local[c.Branch] {
			ctx.Formatter.Emit(engine.Event{
				Kind:   engine.EventNewRemoteBranch,
				Branch: c.Branch,
				Remote: remote,
				New:    c.New,
			})
		}
	}
}

// deletionTarget returns the branch an action would delete, if any.
func deletionTarget(a engine.Action) (string, bool) {
	switch act := a.(type) {
	case engine.DeleteBranch:
		return act.Branch, true
	case engine.SwitchAndDelete:
		return act.Delete.Branch, true
	}
	return "", false
}

package tui

import (
	"fmt"

	"hubsync.dev/hubsync/internal/engine"
)

// Formatter renders the engine's event stream for the console. It implements
// engine.Reporter; the engine itself never produces text.
type Formatter struct {
	splog         *Splog
	graph         engine.HistoryGraph
	remote        string
	defaultBranch string
}

// NewFormatter creates a formatter writing through splog. The history graph
// is only consulted to mark forced updates in the fetch report.
func NewFormatter(splog *Splog, graph engine.HistoryGraph) *Formatter {
	return &Formatter{splog: splog, graph: graph}
}

// SetRun records the resolved remote and default branch so warnings can
// reference them.
func (f *Formatter) SetRun(remote, defaultBranch string) {
	f.remote = remote
	f.defaultBranch = defaultBranch
}

// Emit renders one event.
func (f *Formatter) Emit(ev engine.Event) {
	switch ev.Kind {
	case engine.EventUpdated:
		f.splog.Info("Updated branch %s %s", ColorBranch(ev.Branch), f.wasTip(ev))

	case engine.EventDeleted:
		f.splog.Info("Deleted branch %s %s", ColorBranch(ev.Branch), f.wasTip(ev))

	case engine.EventSwitchedAndDeleted:
		f.splog.Info("Switched to branch '%s'", ev.SwitchedTo)
		f.splog.Info("Deleted branch %s %s", ColorBranch(ev.Branch), f.wasTip(ev))

	case engine.EventSkipped:
		f.splog.Debug("skipping '%s': %s", ev.Branch, ev.Reason)

	case engine.EventWarning:
		f.splog.Warn("%s", ColorWarning(f.warningText(ev)))

	case engine.EventNewRemoteBranch:
		f.splog.Debug("new remote branch %s/%s", ev.Remote, ev.Branch)

	case engine.EventBranchError:
		f.splog.Error("%s", ColorError("error: "+ev.Reason))
	}
}

func (f *Formatter) wasTip(ev engine.Event) string {
	return ColorFaint(fmt.Sprintf("(was %.7s)", ev.Old))
}

func (f *Formatter) warningText(ev engine.Event) string {
	switch engine.WarnReason(ev.Reason) {
	case engine.WarnDiverged:
		return fmt.Sprintf("warning: '%s' seems to contain unpushed commits", ev.Branch)
	case engine.WarnUnmerged:
		return fmt.Sprintf("warning: '%s' was deleted on %s, but appears not merged into '%s'",
			ev.Branch, ev.Remote, f.defaultBranch)
	case engine.WarnNoDefault:
		return fmt.Sprintf("warning: no default branch, skipping to delete '%s'", ev.Branch)
	}
	return fmt.Sprintf("warning: '%s': %s", ev.Branch, ev.Reason)
}

// FetchReport renders the remote-tracking ref changes a fetch produced, in
// the style of git's own fetch output.
func (f *Formatter) FetchReport(remote string, changes []engine.RefChange) {
	if len(changes) == 0 {
		return
	}
	f.splog.Info("From %s", remote)
	for _, c := range changes {
		tracking := fmt.Sprintf("%s/%s", remote, c.Branch)
		switch {
		case c.IsDeleted():
			f.splog.Info(" - %-24s %-14s -> %s", "[deleted]", "(none)", tracking)
		case c.IsNew():
			f.splog.Info(" * %-24s %-14s -> %s", "[new branch]", c.Branch, tracking)
		default:
			fastForward := false
			if f.graph != nil {
				fastForward, _ = f.graph.IsAncestor(c.Old, c.New)
			}
			span := fmt.Sprintf("%.10s..%.10s", c.Old, c.New)
			if fastForward {
				f.splog.Info("   %-24s %-14s -> %s", span, c.Branch, tracking)
			} else {
				f.splog.Info(" + %-24s %-14s -> %s (forced update)", span, c.Branch, tracking)
			}
		}
	}
}

package sync

import (
	"hubsync.dev/hubsync/internal/config"
	"hubsync.dev/hubsync/internal/engine"
	"hubsync.dev/hubsync/internal/github"
	"hubsync.dev/hubsync/internal/runtime"
)

// heuristicDefaults are tried, in order, when the remote does not advertise
// a default branch.
var heuristicDefaults = []string{"main", "master"}

// resolveRun determines the default branch and the optional alternate remote
// for this run. Resolution order: the repository config override, then the
// remote's stored HEAD ref, then the GitHub API (best-effort, only for GitHub
// remotes with a token), then a local branch literally named main or master.
// An unresolved default is not fatal; it only disables deleting the current
// branch.
func resolveRun(ctx *runtime.Context, cfg *config.RepoConfig, mainRemote string, branches []engine.BranchState) (engine.Resolution, error) {
	repo := ctx.Repo
	res := engine.Resolution{MainRemote: mainRemote}

	name := cfg.DefaultBranchName()
	found := name != ""
	if !found {
		var err error
		name, found, err = repo.RemoteHead(mainRemote)
		if err != nil {
			return res, err
		}
	}
	if !found {
		name, found = githubDefaultBranch(ctx, mainRemote)
	}

	if found {
		res.DefaultName = name
		target, ok, err := repo.RemoteTrackingTarget(mainRemote, name)
		if err != nil {
			return res, err
		}
		if !ok {
			// Advertised default has no tracking ref; nothing to compare
			// against, so the run proceeds without a default.
			res.DefaultName = ""
			return res, nil
		}
		res.DefaultHead = target
		res.LocalDefault = localBranchTracking(branches, mainRemote, name)
		return res, nil
	}

	// Fallback heuristic over local branch names. The matched branch's own
	// remote becomes the alternate remote so the branch is not misclassified
	// as foreign later.
	for _, candidate := range heuristicDefaults {
		b, ok := findBranch(branches, candidate)
		if !ok {
			continue
		}
		res.DefaultName = candidate
		res.LocalDefault = candidate
		owner := mainRemote
		if b.Remote != "" && b.Remote != mainRemote {
			res.AlternateRemote = b.Remote
			owner = b.Remote
		}
		if target, ok, err := repo.RemoteTrackingTarget(owner, b.MergeBranch); err != nil {
			return res, err
		} else if ok {
			res.DefaultHead = target
		} else {
			res.DefaultHead = b.Head
		}
		return res, nil
	}

	return res, nil
}

// githubDefaultBranch asks the GitHub API for the remote's default branch.
// Every failure (non-GitHub URL, no token, network) just means "not found".
func githubDefaultBranch(ctx *runtime.Context, remote string) (string, bool) {
	client, err := github.NewClient(ctx.Context, ctx.Repo.RemoteURL(remote))
	if err != nil {
		ctx.Splog.Debug("github lookup skipped: %v", err)
		return "", false
	}
	name, err := client.DefaultBranch(ctx.Context)
	if err != nil {
		ctx.Splog.Debug("github lookup failed: %v", err)
		return "", false
	}
	return name, true
}

func findBranch(branches []engine.BranchState, name string) (engine.BranchState, bool) {
	for _, b := range branches {
		if b.Name == name {
			return b, true
		}
	}
	return engine.BranchState{}, false
}

// localBranchTracking finds the local branch tracking <remote>/<name>, used
// as the checkout target when the current branch gets deleted.
func localBranchTracking(branches []engine.BranchState, remote, name string) string {
	for _, b := range branches {
		if b.Remote == remote && b.MergeBranch == name {
			return b.Name
		}
	}
	return ""
}

package git

import (
	"context"
	"errors"
	"sort"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"hubsync.dev/hubsync/internal/engine"
	hserrors "hubsync.dev/hubsync/internal/errors"
)

// Fetch refreshes the remote-tracking refs for a remote, pruning refs whose
// upstream branch no longer exists, and returns one RefChange per moved ref.
// The changes are derived by snapshotting refs/remotes/<remote>/* around the
// fetch, since go-git has no per-ref update callback.
func (r *Repository) Fetch(ctx context.Context, remote string) ([]engine.RefChange, error) {
	rem, err := r.repo.Remote(remote)
	if err != nil {
		return nil, hserrors.NewFetchError(remote, err)
	}

	before, err := r.remoteTrackingSnapshot(remote)
	if err != nil {
		return nil, err
	}

	err = rem.FetchContext(ctx, &gogit.FetchOptions{
		RemoteName: remote,
		Prune:      true,
		Tags:       gogit.NoTags,
		Auth:       authFor(r.RemoteURL(remote)),
	})
	if err != nil && !errors.Is(err, gogit.NoErrAlreadyUpToDate) {
		return nil, hserrors.NewFetchError(remote, err)
	}

	after, err := r.remoteTrackingSnapshot(remote)
	if err != nil {
		return nil, err
	}

	return diffSnapshots(before, after), nil
}

// remoteTrackingSnapshot maps remote branch name to target for every
// refs/remotes/<remote>/* hash ref except HEAD.
func (r *Repository) remoteTrackingSnapshot(remote string) (map[string]plumbing.Hash, error) {
	refs, err := r.repo.References()
	if err != nil {
		return nil, err
	}
	defer refs.Close()

	prefix := "refs/remotes/" + remote + "/"
	snapshot := make(map[string]plumbing.Hash)
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		if ref.Type() != plumbing.HashReference {
			return nil
		}
		name := ref.Name().String()
		if !strings.HasPrefix(name, prefix) {
			return nil
		}
		branch := strings.TrimPrefix(name, prefix)
		if branch == "HEAD" {
			return nil
		}
		snapshot[branch] = ref.Hash()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

func diffSnapshots(before, after map[string]plumbing.Hash) []engine.RefChange {
	var changes []engine.RefChange
	for branch, old := range before {
		now, ok := after[branch]
		if !ok {
			changes = append(changes, engine.RefChange{Branch: branch, Old: old})
			continue
		}
		if now != old {
			changes = append(changes, engine.RefChange{Branch: branch, Old: old, New: now})
		}
	}
	for branch, now := range after {
		if _, ok := before[branch]; !ok {
			changes = append(changes, engine.RefChange{Branch: branch, New: now})
		}
	}
	sort.Slice(changes, func(i, j int) bool { return changes[i].Branch < changes[j].Branch })
	return changes
}

package git

import (
	"unicode/utf8"

	"github.com/go-git/go-git/v5/plumbing"

	hserrors "hubsync.dev/hubsync/internal/errors"
)

// ValidateNames checks that every branch ref name and every configured remote
// name is valid UTF-8. The first violation aborts the whole run, before any
// mutation; later steps assume names compare and display safely.
func (r *Repository) ValidateNames() error {
	for name := range r.cfg.Remotes {
		if !utf8.ValidString(name) {
			return hserrors.NewInvalidNameError(name)
		}
	}

	refs, err := r.repo.References()
	if err != nil {
		return err
	}
	defer refs.Close()

	return refs.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name()
		if !name.IsBranch() && !name.IsRemote() {
			return nil
		}
		if !utf8.ValidString(name.String()) {
			return hserrors.NewInvalidNameError(name.String())
		}
		return nil
	})
}

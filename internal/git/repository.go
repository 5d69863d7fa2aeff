package git

import (
	"fmt"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
)

// Repository wraps a go-git repository together with its parsed config.
type Repository struct {
	repo *gogit.Repository
	cfg  *config.Config
	path string
}

// OpenRepository opens the git repository containing path, searching parent
// directories the way git itself does.
func OpenRepository(path string) (*Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := gogit.PlainOpenWithOptions(absPath, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	cfg, err := repo.Config()
	if err != nil {
		return nil, fmt.Errorf("failed to read repository config: %w", err)
	}

	return &Repository{
		repo: repo,
		cfg:  cfg,
		path: absPath,
	}, nil
}

// Path returns the directory the repository was opened from.
func (r *Repository) Path() string {
	return r.path
}

// Root returns the worktree root, which may be above the opened path.
func (r *Repository) Root() string {
	wt, err := r.repo.Worktree()
	if err != nil {
		return r.path
	}
	return wt.Filesystem.Root()
}

// RemoteURL returns the first configured URL of a remote, or "" when the
// remote has no URL.
func (r *Repository) RemoteURL(remote string) string {
	rc, ok := r.cfg.Remotes[remote]
	if !ok || len(rc.URLs) == 0 {
		return ""
	}
	return rc.URLs[0]
}

// HasRemote reports whether a remote with the given name is configured.
func (r *Repository) HasRemote(remote string) bool {
	_, ok := r.cfg.Remotes[remote]
	return ok
}

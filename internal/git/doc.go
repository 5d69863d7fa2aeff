// Package git provides low-level Git operations on top of go-git.
//
// It implements the engine's collaborator interfaces directly against the
// repository's object and ref storage:
//   - Branch snapshots (current branch, local branches, upstream config)
//   - Remote resolution and default-branch detection
//   - Fetch with prune and credential handling
//   - Ref updates, deletions and worktree checkout
//   - Ancestry queries over the commit graph
//
// No external git executable is ever invoked by this package.
package git

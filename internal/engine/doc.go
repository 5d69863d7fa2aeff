// Package engine decides what happens to each local branch when syncing
// against a remote.
//
// It is the core of hubsync, responsible for:
//   - Classifying every local branch into exactly one action
//     (skip, fast-forward, delete, switch-and-delete, warn)
//   - Applying actions in order and reporting each one as an event
//
// Which remote a run reconciles against is decided before the engine runs,
// by internal/git's config resolution, and arrives here as a Resolution.
//
// The engine never touches git storage directly; it works through the
// collaborator interfaces in interfaces.go, which internal/git implements
// on top of go-git.
package engine

package engine_test

import (
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"

	"hubsync.dev/hubsync/internal/engine"
)

// hash builds a distinct fake object id from a single character.
func hash(c byte) plumbing.Hash {
	return plumbing.NewHash(strings.Repeat(string(c), 40))
}

// fakeRepo implements engine.RepositoryStore and engine.HistoryGraph in
// memory and records every mutation in order.
type fakeRepo struct {
	tracking  map[string]plumbing.Hash // "remote/branch" -> target
	ancestors map[string]bool          // "a->b" -> a is ancestor of b
	ops       []string
	failOp    string // op name that should fail, e.g. "checkout"
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		tracking:  make(map[string]plumbing.Hash),
		ancestors: make(map[string]bool),
	}
}

func (f *fakeRepo) setTracking(remote, branch string, h plumbing.Hash) {
	f.tracking[remote+"/"+branch] = h
}

func (f *fakeRepo) setAncestor(a, b plumbing.Hash) {
	f.ancestors[a.String()+"->"+b.String()] = true
}

func (f *fakeRepo) RemoteTrackingTarget(remote, branch string) (plumbing.Hash, bool, error) {
	h, ok := f.tracking[remote+"/"+branch]
	return h, ok, nil
}

func (f *fakeRepo) IsAncestor(a, b plumbing.Hash) (bool, error) {
	if a == b {
		return true, nil
	}
	return f.ancestors[a.String()+"->"+b.String()], nil
}

func (f *fakeRepo) do(op string) error {
	if f.failOp != "" && strings.HasPrefix(op, f.failOp) {
		return fmt.Errorf("storage rejected %s", op)
	}
	f.ops = append(f.ops, op)
	return nil
}

func (f *fakeRepo) UpdateRef(branch string, to plumbing.Hash) error {
	return f.do(fmt.Sprintf("update %s to %.7s", branch, to))
}

func (f *fakeRepo) ResetCurrent(to plumbing.Hash) error {
	return f.do(fmt.Sprintf("reset to %.7s", to))
}

func (f *fakeRepo) DeleteRef(branch string) error {
	return f.do("delete " + branch)
}

func (f *fakeRepo) Checkout(branch string) error {
	return f.do("checkout " + branch)
}

// recordingReporter collects the emitted event stream.
type recordingReporter struct {
	events []engine.Event
}

func (r *recordingReporter) Emit(ev engine.Event) {
	r.events = append(r.events, ev)
}

func (r *recordingReporter) kinds() []engine.EventKind {
	kinds := make([]engine.EventKind, len(r.events))
	for i, ev := range r.events {
		kinds[i] = ev.Kind
	}
	return kinds
}

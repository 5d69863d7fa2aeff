package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"hubsync.dev/hubsync/internal/engine"
)

type fixedGraph struct {
	ancestor bool
}

func (g fixedGraph) IsAncestor(plumbing.Hash, plumbing.Hash) (bool, error) {
	return g.ancestor, nil
}

func testFormatter(t *testing.T, graph engine.HistoryGraph) (*Formatter, *bytes.Buffer) {
	t.Helper()
	lipgloss.SetColorProfile(termenv.Ascii)

	var buf bytes.Buffer
	f := NewFormatter(NewSplogWithWriter(&buf), graph)
	f.SetRun("origin", "main")
	return f, &buf
}

func TestEmit(t *testing.T) {
	oldHash := plumbing.NewHash("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")

	t.Run("updated", func(t *testing.T) {
		f, buf := testFormatter(t, nil)
		f.Emit(engine.Event{Kind: engine.EventUpdated, Branch: "feature", Old: oldHash})
		require.Equal(t, "Updated branch feature (was aaaaaaa)\n", buf.String())
	})

	t.Run("deleted", func(t *testing.T) {
		f, buf := testFormatter(t, nil)
		f.Emit(engine.Event{Kind: engine.EventDeleted, Branch: "feature", Old: oldHash})
		require.Equal(t, "Deleted branch feature (was aaaaaaa)\n", buf.String())
	})

	t.Run("switched and deleted", func(t *testing.T) {
		f, buf := testFormatter(t, nil)
		f.Emit(engine.Event{
			Kind:       engine.EventSwitchedAndDeleted,
			Branch:     "feature",
			Old:        oldHash,
			SwitchedTo: "main",
		})
		require.Equal(t, "Switched to branch 'main'\nDeleted branch feature (was aaaaaaa)\n", buf.String())
	})

	t.Run("warnings", func(t *testing.T) {
		tests := []struct {
			reason engine.WarnReason
			want   string
		}{
			{engine.WarnDiverged, "warning: 'feature' seems to contain unpushed commits"},
			{engine.WarnUnmerged, "warning: 'feature' was deleted on origin, but appears not merged into 'main'"},
			{engine.WarnNoDefault, "warning: no default branch, skipping to delete 'feature'"},
		}
		for _, tt := range tests {
			f, buf := testFormatter(t, nil)
			f.Emit(engine.Event{
				Kind:   engine.EventWarning,
				Branch: "feature",
				Remote: "origin",
				Reason: string(tt.reason),
			})
			require.Equal(t, tt.want+"\n", buf.String())
		}
	})

	t.Run("branch error", func(t *testing.T) {
		f, buf := testFormatter(t, nil)
		f.Emit(engine.Event{Kind: engine.EventBranchError, Branch: "feature", Reason: "delete failed"})
		require.Equal(t, "error: delete failed\n", buf.String())
	})

	t.Run("skips are debug-only", func(t *testing.T) {
		f, buf := testFormatter(t, nil)
		f.Emit(engine.Event{Kind: engine.EventSkipped, Branch: "feature", Reason: "up to date"})
		require.Empty(t, buf.String())
	})
}

func TestFetchReport(t *testing.T) {
	oldHash := plumbing.NewHash("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	newHash := plumbing.NewHash("bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")

	t.Run("silent when nothing changed", func(t *testing.T) {
		f, buf := testFormatter(t, fixedGraph{})
		f.FetchReport("origin", nil)
		require.Empty(t, buf.String())
	})

	t.Run("renders each kind of change", func(t *testing.T) {
		f, buf := testFormatter(t, fixedGraph{ancestor: true})
		f.FetchReport("origin", []engine.RefChange{
			{Branch: "gone", Old: oldHash},
			{Branch: "fresh", New: newHash},
			{Branch: "main", Old: oldHash, New: newHash},
		})

		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		require.Len(t, lines, 4)
		require.Equal(t, "From origin", lines[0])
		require.Contains(t, lines[1], "[deleted]")
		require.Contains(t, lines[1], "origin/gone")
		require.Contains(t, lines[2], "[new branch]")
		require.Contains(t, lines[2], "origin/fresh")
		require.Contains(t, lines[3], "aaaaaaaaaa..bbbbbbbbbb")
		require.NotContains(t, lines[3], "forced update")
	})

	t.Run("marks forced updates", func(t *testing.T) {
		f, buf := testFormatter(t, fixedGraph{ancestor: false})
		f.FetchReport("origin", []engine.RefChange{
			{Branch: "main", Old: oldHash, New: newHash},
		})
		require.Contains(t, buf.String(), "(forced update)")
		require.Contains(t, buf.String(), " + ")
	})
}

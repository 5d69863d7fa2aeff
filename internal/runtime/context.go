package runtime

import (
	"context"
	"fmt"

	"hubsync.dev/hubsync/internal/git"
	"hubsync.dev/hubsync/internal/tui"
)

// Context provides access to the repository and output for commands
type Context struct {
	Context   context.Context
	Repo      *git.Repository
	Splog     *tui.Splog
	Formatter *tui.Formatter
}

// GetContext opens the repository in the current directory and wires up
// output. Callers must Close the returned context when the run ends.
func GetContext(ctx context.Context) (*Context, error) {
	repo, err := git.OpenRepository(".")
	if err != nil {
		return nil, fmt.Errorf("not a git repository: %w", err)
	}

	splog, err := tui.NewSplogWithConfig(tui.LogFilePath())
	if err != nil {
		// File logging is best-effort; fall back to console only.
		splog = tui.NewSplog()
	}

	return &Context{
		Context:   ctx,
		Repo:      repo,
		Splog:     splog,
		Formatter: tui.NewFormatter(splog, repo),
	}, nil
}

// Close releases resources held for the run (the rotating log file).
func (c *Context) Close() {
	if c.Splog != nil {
		_ = c.Splog.Close()
	}
}

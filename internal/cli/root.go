// Package cli wires the cobra command surface for git-hubsync.
package cli

import (
	"github.com/spf13/cobra"

	"hubsync.dev/hubsync/internal/actions/sync"
	"hubsync.dev/hubsync/internal/runtime"
	"hubsync.dev/hubsync/internal/tui"
)

// NewRootCmd creates the root cobra command. Running the command performs
// the sync; there is exactly one primary operation.
func NewRootCmd(version, commit, date string) *cobra.Command {
	var opts sync.Options

	rootCmd := &cobra.Command{
		Use:   "git-hubsync",
		Short: "Sync local branches with their remote without a git executable",
		Long: `git-hubsync fetches the remote of the current branch and brings every local
branch tracking that remote into a consistent state: fast-forwards branches
that are behind, deletes branches whose upstream was deleted and merged, and
warns about anything it will not touch. It operates directly on the
repository's object and ref storage; no git executable is invoked.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tui.ConfigureColors()

			ctx, err := runtime.GetContext(cmd.Context())
			if err != nil {
				return err
			}
			defer ctx.Close()

			return sync.Action(ctx, opts)
		},
	}

	rootCmd.Flags().BoolVarP(&opts.DryRun, "dry-run", "n", false, "Report what would be done without changing anything")
	rootCmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Only print warnings and errors")
	rootCmd.Flags().BoolVarP(&opts.Interactive, "interactive", "i", false, "Ask for confirmation before deleting a branch")

	rootCmd.AddCommand(newVersionCmd(version, commit, date))
	rootCmd.AddCommand(newProtectCmd())
	rootCmd.AddCommand(newUnprotectCmd())

	return rootCmd
}

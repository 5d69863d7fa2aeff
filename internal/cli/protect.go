package cli

import (
	"github.com/spf13/cobra"

	"hubsync.dev/hubsync/internal/config"
	"hubsync.dev/hubsync/internal/runtime"
)

func newProtectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "protect <branch>",
		Short: "Mark a branch as protected so sync never deletes it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := runtime.GetContext(cmd.Context())
			if err != nil {
				return err
			}
			defer ctx.Close()

			if err := config.Protect(ctx.Repo.Root(), args[0]); err != nil {
				return err
			}
			ctx.Splog.Info("protected branch %s", args[0])
			return nil
		},
	}
}

func newUnprotectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unprotect <branch>",
		Short: "Remove a branch's protection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := runtime.GetContext(cmd.Context())
			if err != nil {
				return err
			}
			defer ctx.Close()

			if err := config.Unprotect(ctx.Repo.Root(), args[0]); err != nil {
				return err
			}
			ctx.Splog.Info("unprotected branch %s", args[0])
			return nil
		},
	}
}

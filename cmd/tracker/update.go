package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/esports-tracker/internal/appstate"
	"github.com/ytget/esports-tracker/internal/model"
	"github.com/ytget/esports-tracker/internal/update"
)

func updateCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Check for and download new releases",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Check the release feed for a newer version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := openSession(ctx, flags)
			if err != nil {
				return err
			}
			defer s.close()

			if err := s.store.CheckForUpdates(ctx); err != nil {
				return err
			}
			status, info, err := settledStatus(s.store)
			if err != nil {
				return err
			}
			cmd.Printf("Running %s: %s\n", s.store.AppVersion(), status)
			if info != nil && info.Version != "" {
				cmd.Printf("Latest %s\n%s\n", info.Version, info.ReleaseNotes)
			}
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "download",
		Short: "Download the newest release into the download directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := openSession(ctx, flags)
			if err != nil {
				return err
			}
			defer s.close()

			if err := s.store.CheckForUpdates(ctx); err != nil {
				return err
			}
			if err := s.store.DownloadUpdate(ctx); err != nil {
				return err
			}
			_, info, err := settledStatus(s.store)
			if err != nil {
				return err
			}
			if info != nil {
				cmd.Println(info.Asset)
			}
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "compare <candidate> <current>",
		Short: "Report whether candidate is newer than current",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			newer, err := update.IsNewer(args[0], args[1])
			if err != nil {
				return err
			}
			cmd.Println(newer)
			return nil
		},
	})
	return cmd
}

// settledStatus returns the final update status, failing when the updater
// left it running or reported an error.
func settledStatus(store *appstate.Store) (model.UpdateStatus, *model.ReleaseInfo, error) {
	status, info := store.UpdateStatus()
	if !status.IsFinished() {
		return status, info, fmt.Errorf("update did not finish, status %q", status)
	}
	if status == model.UpdateStatusError {
		msg := "unknown error"
		if info != nil && info.Error != "" {
			msg = info.Error
		}
		return status, info, fmt.Errorf("update failed: %s", msg)
	}
	return status, info, nil
}

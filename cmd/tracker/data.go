package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ytget/esports-tracker/internal/export"
)

func showCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the whole tracker state as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(context.Background(), flags)
			if err != nil {
				return err
			}
			defer s.close()
			return printJSON(cmd.OutOrStdout(), s.store.Snapshot())
		},
	}
}

func clearCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Reset teams, players and matches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(context.Background(), flags)
			if err != nil {
				return err
			}
			defer s.close()
			report(cmd, s.store.ClearAllData(), "All data cleared.")
			return nil
		},
	}
}

func exportCmd(flags *globalFlags) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write players, teams, matches and views as JSON files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := openSession(ctx, flags)
			if err != nil {
				return err
			}
			defer s.close()

			target := dir
			if target == "" {
				target = s.store.JSONSavePath()
			}
			paths, err := export.Export(ctx, s.store.Snapshot(), target)
			if err != nil {
				return err
			}
			for _, p := range paths {
				cmd.Println(p)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "Target directory (defaults to the save path)")
	return cmd
}

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/esports-tracker/internal/model"
)

func matchCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Manage today's matches",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(context.Background(), flags)
			if err != nil {
				return err
			}
			defer s.close()
			return printJSON(cmd.OutOrStdout(), s.store.Matches())
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "date <date>",
		Short: "Set the match day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(context.Background(), flags)
			if err != nil {
				return err
			}
			defer s.close()
			report(cmd, s.store.UpdateMatches(model.MatchesUpdate{Date: &args[0]}), "Date updated.")
			return nil
		},
	})
	cmd.AddCommand(matchSlotCmd(flags))
	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Reset the schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(context.Background(), flags)
			if err != nil {
				return err
			}
			defer s.close()
			report(cmd, s.store.ClearMatches(), "Matches cleared.")
			return nil
		},
	})
	return cmd
}

func matchSlotCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "slot <first|second>",
		Short:     "Update one match slot; only the given fields change",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(model.FirstMatch), string(model.SecondMatch)},
		RunE: func(cmd *cobra.Command, args []string) error {
			u := model.MatchSlotUpdate{
				MatchTime:     stringFlag(cmd, "time"),
				LeftTeamName:  stringFlag(cmd, "left"),
				RightTeamName: stringFlag(cmd, "right"),
			}
			var err error
			if u.LeftTeamLogo, err = imageFlag(cmd, "left-logo"); err != nil {
				return err
			}
			if u.RightTeamLogo, err = imageFlag(cmd, "right-logo"); err != nil {
				return err
			}
			if u.LeftTeamFlag, err = imageFlag(cmd, "left-flag"); err != nil {
				return err
			}
			if u.RightTeamFlag, err = imageFlag(cmd, "right-flag"); err != nil {
				return err
			}

			s, err := openSession(context.Background(), flags)
			if err != nil {
				return err
			}
			defer s.close()

			p, err := s.store.UpdateMatchSlot(model.MatchSlotName(args[0]), u)
			if err != nil {
				return err
			}
			report(cmd, p, fmt.Sprintf("Match %s updated.", args[0]))
			return nil
		},
	}
	cmd.Flags().String("time", "", "Match time")
	cmd.Flags().String("left", "", "Left team name")
	cmd.Flags().String("right", "", "Right team name")
	addImageFlags(cmd, "left-logo", "Left team logo")
	addImageFlags(cmd, "right-logo", "Right team logo")
	addImageFlags(cmd, "left-flag", "Left team flag")
	addImageFlags(cmd, "right-flag", "Right team flag")
	return cmd
}

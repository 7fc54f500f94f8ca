package main

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ytget/esports-tracker/internal/model"
)

func teamCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Manage the bracket teams",
	}
	cmd.AddCommand(teamListCmd(flags))
	cmd.AddCommand(teamSetCmd(flags))
	cmd.AddCommand(teamClearCmd(flags))
	return cmd
}

func teamListCmd(flags *globalFlags) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List teams in bracket order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(context.Background(), flags)
			if err != nil {
				return err
			}
			defer s.close()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tSCORE")
			for _, team := range s.store.Teams().Sorted() {
				if !all && team.TeamName == "" && team.Score == 0 {
					continue
				}
				fmt.Fprintf(w, "%d\t%s\t%d\n", team.ID, team.TeamName, team.Score)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "Include empty slots")
	return cmd
}

func teamSetCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <id>",
		Short: "Update a team; only the given fields change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil || !model.ValidTeamID(id) {
				return fmt.Errorf("team id must be between 1 and %d", model.TeamCount)
			}

			u := model.TeamUpdate{
				TeamName: stringFlag(cmd, "name"),
				Score:    intFlag(cmd, "score"),
			}
			if u.TeamImage, err = imageFlag(cmd, "image"); err != nil {
				return err
			}
			if u.FlagImage, err = imageFlag(cmd, "flag"); err != nil {
				return err
			}

			s, err := openSession(context.Background(), flags)
			if err != nil {
				return err
			}
			defer s.close()

			report(cmd, s.store.UpdateTeam(id, u), fmt.Sprintf("Team %d updated.", id))
			return nil
		},
	}
	cmd.Flags().String("name", "", "Team name")
	cmd.Flags().Int("score", 0, "Score")
	addImageFlags(cmd, "image", "Team logo")
	addImageFlags(cmd, "flag", "Team flag")
	return cmd
}

func teamClearCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Reset all 32 teams",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(context.Background(), flags)
			if err != nil {
				return err
			}
			defer s.close()

			report(cmd, s.store.ClearTeams(), "Teams cleared.")
			return nil
		},
	}
}

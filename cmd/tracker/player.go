package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ytget/esports-tracker/internal/model"
)

func playerCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Manage the player card",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the player card",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(context.Background(), flags)
			if err != nil {
				return err
			}
			defer s.close()
			p := s.store.Players()
			return printJSON(cmd.OutOrStdout(), playerCard{Player: p, KDA: p.KDA()})
		},
	})
	cmd.AddCommand(playerSetCmd(flags))
	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Reset the player card",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(context.Background(), flags)
			if err != nil {
				return err
			}
			defer s.close()
			report(cmd, s.store.ClearPlayers(), "Player cleared.")
			return nil
		},
	})
	return cmd
}

type playerCard struct {
	model.Player
	KDA float64 `json:"kda"`
}

func playerSetCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update the player card; only the given fields change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			u := model.PlayerUpdate{
				PlayerName:      stringFlag(cmd, "name"),
				TeamName:        stringFlag(cmd, "team"),
				FavouriteWeapon: stringFlag(cmd, "weapon"),
				EconomyScore:    floatFlag(cmd, "economy"),
				Kills:           intFlag(cmd, "kills"),
				Deaths:          intFlag(cmd, "deaths"),
				Assists:         intFlag(cmd, "assists"),
			}
			var err error
			if u.HeroImage, err = imageFlag(cmd, "hero"); err != nil {
				return err
			}

			s, err := openSession(context.Background(), flags)
			if err != nil {
				return err
			}
			defer s.close()

			report(cmd, s.store.UpdatePlayers(u), "Player updated.")
			return nil
		},
	}
	f := cmd.Flags()
	f.String("name", "", "Player name")
	f.String("team", "", "Team name")
	f.String("weapon", "", "Favourite weapon")
	f.Float64("economy", 0, "Economy score")
	f.Int("kills", 0, "Kills")
	f.Int("deaths", 0, "Deaths")
	f.Int("assists", 0, "Assists")
	addImageFlags(cmd, "hero", "Hero image")
	return cmd
}

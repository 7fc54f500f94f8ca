package main

import (
	"context"
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ytget/esports-tracker/internal/appstate"
)

func presetCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Save and apply view visibility presets",
	}
	cmd.AddCommand(presetListCmd(flags))
	cmd.AddCommand(presetSaveCmd(flags))
	cmd.AddCommand(presetActionCmd(flags, "apply", "Apply a preset", (*appstate.Store).ApplyPreset))
	cmd.AddCommand(presetActionCmd(flags, "update", "Overwrite a preset with the current visibility", (*appstate.Store).UpdatePreset))
	cmd.AddCommand(presetActionCmd(flags, "delete", "Delete a preset and show every view", (*appstate.Store).DeletePreset))
	return cmd
}

func presetListCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(context.Background(), flags)
			if err != nil {
				return err
			}
			defer s.close()

			presets := s.store.Presets()
			names := make([]string, 0, len(presets))
			for name := range presets {
				names = append(names, name)
			}
			sort.Strings(names)

			selected := s.store.SelectedPreset()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tACTIVE\tHIDDEN")
			for _, name := range names {
				hidden := 0
				for _, shown := range presets[name] {
					if !shown {
						hidden++
					}
				}
				fmt.Fprintf(w, "%s\t%t\t%d\n", name, name == selected, hidden)
			}
			return w.Flush()
		},
	}
}

func presetSaveCmd(flags *globalFlags) *cobra.Command {
	var overwrite bool
	cmd := &cobra.Command{
		Use:   "save <name>",
		Short: "Save the current visibility as a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(context.Background(), flags)
			if err != nil {
				return err
			}
			defer s.close()

			if !overwrite {
				if err := appstate.ValidatePresetName(args[0], s.store.Presets()); err != nil {
					return err
				}
			}
			if _, err := s.store.SavePreset(args[0]); err != nil {
				return err
			}
			cmd.Printf("Preset %q saved.\n", args[0])
			return nil
		},
	}
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace an existing preset with the same name")
	return cmd
}

func presetActionCmd(flags *globalFlags, use, short string, action func(*appstate.Store, string) *appstate.Pending) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <name>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(context.Background(), flags)
			if err != nil {
				return err
			}
			defer s.close()

			if !action(s.store, args[0]).Applied() {
				return fmt.Errorf("preset %q not found", args[0])
			}
			cmd.Printf("Preset %q: %s done.\n", args[0], use)
			return nil
		},
	}
}

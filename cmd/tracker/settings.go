package main

import (
	"context"
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/ytget/esports-tracker/internal/platform"
	"github.com/ytget/esports-tracker/internal/ui"
)

const (
	pickerWidth  = 800
	pickerHeight = 600
)

func settingsCmd(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show and change app settings",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(context.Background(), flags)
			if err != nil {
				return err
			}
			defer s.close()

			return printJSON(cmd.OutOrStdout(), map[string]any{
				"isDarkMode":       s.store.IsDarkMode(),
				"isNavigationMini": s.store.IsNavigationMini(),
				"jsonSavePath":     s.store.JSONSavePath(),
				"lastRoute":        s.store.LastRoute(),
				"selectedPreset":   s.store.SelectedPreset(),
				"viewVisibility":   s.store.ViewVisibility(),
			})
		},
	})
	cmd.AddCommand(settingsThemeCmd(flags))
	cmd.AddCommand(settingsNavCmd(flags))
	cmd.AddCommand(settingsRouteCmd(flags))
	cmd.AddCommand(settingsSavePathCmd(flags))
	cmd.AddCommand(&cobra.Command{
		Use:   "open",
		Short: "Open the export directory in the file manager",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(context.Background(), flags)
			if err != nil {
				return err
			}
			defer s.close()

			dir := s.store.JSONSavePath()
			if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
				return err
			}
			return platform.OpenDirectory(dir)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Restore default settings; data and presets are kept",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(context.Background(), flags)
			if err != nil {
				return err
			}
			defer s.close()
			report(cmd, s.store.ResetSettings(context.Background()), "Settings reset.")
			return nil
		},
	})
	return cmd
}

func settingsThemeCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:       "theme <dark|light>",
		Short:     "Switch between dark and light mode",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"dark", "light"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var dark bool
			switch args[0] {
			case "dark":
				dark = true
			case "light":
			default:
				return fmt.Errorf("unknown theme %q", args[0])
			}

			s, err := openSession(context.Background(), flags)
			if err != nil {
				return err
			}
			defer s.close()
			report(cmd, s.store.ToggleTheme(dark), "Theme set to "+args[0]+".")
			return nil
		},
	}
}

func settingsNavCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:       "nav <mini|full>",
		Short:     "Collapse or expand the navigation drawer",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"mini", "full"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var mini bool
			switch args[0] {
			case "mini":
				mini = true
			case "full":
			default:
				return fmt.Errorf("unknown navigation mode %q", args[0])
			}

			s, err := openSession(context.Background(), flags)
			if err != nil {
				return err
			}
			defer s.close()
			report(cmd, s.store.ToggleNavigationMode(mini), "Navigation set to "+args[0]+".")
			return nil
		},
	}
}

func settingsRouteCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "route <path>",
		Short: "Record the route to open on start",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(context.Background(), flags)
			if err != nil {
				return err
			}
			defer s.close()
			report(cmd, s.store.SetLastRoute(args[0]), "Route saved.")
			return nil
		},
	}
}

func settingsSavePathCmd(flags *globalFlags) *cobra.Command {
	var useDialog bool
	cmd := &cobra.Command{
		Use:   "save-path [directory]",
		Short: "Choose the export directory; ViewsData is appended",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if useDialog {
				return selectSavePathWithDialog(cmd, flags)
			}
			if len(args) == 0 {
				return errors.New("give a directory or use --dialog")
			}

			s, err := openSession(context.Background(), flags,
				withSelector(platform.StaticSelector{Dir: args[0]}))
			if err != nil {
				return err
			}
			defer s.close()

			report(cmd, s.store.SelectSavePath(context.Background()), "Save path: "+s.store.JSONSavePath())
			return nil
		},
	}
	cmd.Flags().BoolVar(&useDialog, "dialog", false, "Pick the directory with a folder dialog")
	return cmd
}

// selectSavePathWithDialog runs a Fyne window on the main goroutine while the
// store work happens on another one.
func selectSavePathWithDialog(cmd *cobra.Command, flags *globalFlags) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	a := app.NewWithID(cfg.AppID)
	w := a.NewWindow(cfg.AppName)
	w.Resize(fyne.NewSize(pickerWidth, pickerHeight))
	picker := ui.NewFolderPicker(w, cfg.AppName)

	done := make(chan error, 1)
	go func() {
		defer fyne.Do(a.Quit)
		done <- pickSavePath(cmd, flags, a, picker)
	}()

	w.ShowAndRun()
	select {
	case err := <-done:
		return err
	default:
		return errors.New("window closed before a folder was chosen")
	}
}

func pickSavePath(cmd *cobra.Command, flags *globalFlags, a fyne.App, picker *ui.FolderPicker) error {
	ctx := context.Background()
	s, err := openSession(ctx, flags, withApp(a), withSelector(picker))
	if err != nil {
		return err
	}
	defer s.close()

	dark := s.store.IsDarkMode()
	fyne.Do(func() { a.Settings().SetTheme(ui.NewTrackerTheme(dark)) })

	p := s.store.SelectSavePath(ctx)
	if err := p.Wait(ctx); err != nil {
		return err
	}
	report(cmd, p, "Save path: "+s.store.JSONSavePath())
	return nil
}

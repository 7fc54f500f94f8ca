package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "0.0.0-dev"

type globalFlags struct {
	configPath string
	backend    string
	storePath  string
	dataDir    string
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var flags globalFlags
	root := &cobra.Command{
		Use:          "tracker",
		Short:        "Esports tournament tracker",
		SilenceUsage: true,
	}
	root.Version = version
	root.SetVersionTemplate("{{.Version}}\n")

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "Path to the YAML config file")
	pf.StringVar(&flags.backend, "backend", "", "Store backend: file, sqlite, preferences or memory")
	pf.StringVar(&flags.storePath, "store", "", "Store file path or sqlite DSN")
	pf.StringVar(&flags.dataDir, "data-dir", "", "Application data directory")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(teamCmd(&flags))
	root.AddCommand(playerCmd(&flags))
	root.AddCommand(matchCmd(&flags))
	root.AddCommand(viewCmd(&flags))
	root.AddCommand(presetCmd(&flags))
	root.AddCommand(settingsCmd(&flags))
	root.AddCommand(showCmd(&flags))
	root.AddCommand(clearCmd(&flags))
	root.AddCommand(exportCmd(&flags))
	root.AddCommand(updateCmd(&flags))
	root.AddCommand(watchCmd(&flags))
	root.AddCommand(versionCmd())
	return root
}

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ytget/esports-tracker/internal/kvstore"
	"github.com/ytget/esports-tracker/internal/logfields"
	"github.com/ytget/esports-tracker/internal/platform"
)

func watchCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Print the stored keys whenever another process changes the store file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			if cfg.Backend != kvstore.BackendFile {
				return errors.New("watch needs the file backend")
			}
			logger := newLogger(cfg, flags.verbose)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			backend, err := kvstore.Open(ctx, cfg.StoreOptions())
			if err != nil {
				return err
			}
			fs := backend.(*kvstore.FileStore)
			defer fs.Close()
			if err := platform.CreateDirectoryIfNotExists(filepath.Dir(fs.Path())); err != nil {
				return err
			}

			logger.Info("Watching store", logfields.Path(fs.Path()))
			err = fs.Watch(ctx, logger, func() {
				all, err := fs.GetAll(ctx)
				if err != nil {
					logger.Error("Failed to read store", logfields.Error(err))
					return
				}
				keys := make([]string, 0, len(all))
				for k := range all {
					keys = append(keys, k)
				}
				sort.Strings(keys)
				cmd.Printf("changed: %v\n", keys)
			})
			return err
		},
	}
}

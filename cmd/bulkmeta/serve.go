package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/fsdevblog/bulkmeta/internal/app"
	"github.com/fsdevblog/bulkmeta/internal/config"
	"github.com/spf13/cobra"
)

func newServeCmd(_ *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			appConf, err := config.LoadConfig(cmd.Flags())
			if err != nil {
				return err //nolint:wrapcheck
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := app.New(ctx, *appConf)
			if err != nil {
				return err //nolint:wrapcheck
			}
			defer a.Close()

			a.Logger.WithField("storage", appConf.DBType).Info("Starting bulkmeta")
			if err = a.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err //nolint:wrapcheck
			}
			return nil
		},
	}
}

package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	baboo "github.com/Baboo7/baboo.dev"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var (
		addr  string
		watch bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := baboo.ConfigFromEnv()
			cfg.ContentDir = opts.contentDir()
			if addr != "" {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("watch") {
				cfg.WatchContent = watch
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app := baboo.New(cfg, baboo.DefaultViews(), baboo.WithLogger(slog.Default()))
			slog.Info("starting server", "addr", app.Config.Addr, "content", app.Config.ContentDir, "url", app.Config.URL)
			return app.Start(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default $ADDR or :3000)")
	cmd.Flags().BoolVar(&watch, "watch", false, "Invalidate the article cache when content changes")
	return cmd
}

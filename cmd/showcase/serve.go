package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/eringen/showcase"
	"github.com/eringen/showcase/views"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		Long: `serve loads posts from the content directory (or the built-in
samples when it is empty) and serves the site. SIGHUP drops the post
cache so edited files show up immediately; SIGINT and SIGTERM shut the
server down gracefully.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts, map[string]*pflag.Flag{
				"addr":        cmd.Flags().Lookup("addr"),
				"content_dir": cmd.Flags().Lookup("content"),
			})
			if err != nil {
				return err
			}
			return serve(cfg)
		},
	}
	cmd.Flags().String("addr", ":3000", "listen address")
	cmd.Flags().String("content", "content/posts", "directory of Markdown posts")
	return cmd
}

func serve(cfg showcase.SiteConfig) error {
	app := showcase.New(cfg, views.Default())
	if err := app.Setup(); err != nil {
		return err
	}
	logger := app.Echo.Logger

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Start()
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sig)

	for {
		select {
		case err := <-errCh:
			app.Close()
			return err
		case s := <-sig:
			if s == syscall.SIGHUP {
				app.Cache.Invalidate()
				logger.Info("showcase: post cache invalidated")
				continue
			}
			logger.Infof("showcase: %s received, shutting down", s)
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			err := app.Shutdown(ctx)
			cancel()
			if err != nil {
				return err
			}
			return <-errCh
		}
	}
}

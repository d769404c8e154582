package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"kindlyrss/internal/config"
	"kindlyrss/internal/handler"
	transport "kindlyrss/internal/http"
	"kindlyrss/internal/logger"
	"kindlyrss/internal/scheduler"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, *cfg)
		},
	}
}

func serve(ctx context.Context, cfg config.Config) error {
	cfg.Print()

	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	syncHandler := handler.NewSyncHandler(a.sync, a.feeds)
	router := transport.NewRouter(
		handler.NewFeedHandler(a.feeds),
		handler.NewArticleHandler(a.articles),
		syncHandler,
		handler.NewOPMLHandler(a.opml),
		transport.Dirs{
			Static:       cfg.StaticDir,
			Images:       cfg.ImagesDir(),
			ImagesPrefix: cfg.ImagePublicPrefix,
		},
	)

	if cfg.BackgroundSyncInterval > 0 {
		sched := scheduler.New(a.sync, cfg.BackgroundSyncInterval)
		sched.Start()
		defer sched.Stop()
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "module", "http", "action", "start", "resource", "http", "result", "ok", "addr", cfg.Addr)
		errCh <- router.Start(cfg.Addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("start server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", "module", "http", "action", "stop", "resource", "http", "result", "ok")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := router.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	// Requested syncs still write to the database closed by a.Close.
	if err := syncHandler.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("wait for background sync: %w", err)
	}
	return nil
}

func newSyncCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Sync every stale feed once and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := newApp(*cfg)
			if err != nil {
				return err
			}
			defer a.Close()
			return a.sync.SyncAll(ctx)
		},
	}
}

func newAddCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "add <url>",
		Short: "Subscribe to a feed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			feed, err := a.feeds.Add(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", feed.ID, feed.Title)
			return nil
		},
	}
}

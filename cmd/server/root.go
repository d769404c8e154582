package main

import (
	"github.com/spf13/cobra"

	"kindlyrss/internal/config"
	"kindlyrss/internal/logger"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var cfg config.Config

	rootCmd := &cobra.Command{
		Use:           "kindlyrss",
		Short:         "Self-hosted RSS/Atom reader for e-ink devices",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configFlag)
			if err != nil {
				return err
			}
			cfg = loaded
			logger.Init(logger.ParseLevel(cfg.LogLevel))
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	serveCmd := newServeCommand(&cfg)
	rootCmd.RunE = serveCmd.RunE
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(newSyncCommand(&cfg))
	rootCmd.AddCommand(newAddCommand(&cfg))

	return rootCmd
}

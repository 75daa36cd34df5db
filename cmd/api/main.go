package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"pet-adoption/internal/platform/config"
	"pet-adoption/internal/platform/logger"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfg config.Config
		log logger.Logger
	)

	root := &cobra.Command{
		Use:           "api",
		Short:         "Pet adoption site: REST API, public page and admin page",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return err
			}
			log = logger.New(logger.Options{
				Level:  logger.ParseLevel(cfg.LogLevel),
				Format: logger.ParseFormat(cfg.LogFormat),
				App:    cfg.AppName,
			})
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if s, ok := log.(interface{ Sync() error }); ok {
				_ = s.Sync()
			}
		},
		// sin subcomando => serve
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), cfg, log)
		},
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), cfg, log)
		},
	}

	var reset bool
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the seed catalog into the store and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context(), cfg, log, reset)
		},
	}
	seedCmd.Flags().BoolVar(&reset, "reset", false, "delete all pets before seeding")

	root.AddCommand(serveCmd, seedCmd)
	return root
}

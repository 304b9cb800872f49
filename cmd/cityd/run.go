package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kittclouds/memcity/internal/config"
	"github.com/kittclouds/memcity/internal/extract"
	"github.com/kittclouds/memcity/internal/hub"
	"github.com/kittclouds/memcity/internal/ingest"
	"github.com/kittclouds/memcity/internal/obs"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "start the watcher and keep publishing decayed snapshots until interrupted",
	RunE:  runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	sup, err := ingest.New(ingest.Config{
		WorkspacePath:   cfg.WorkspacePath,
		DebounceDelay:   cfg.DebounceDuration(),
		RebuildOnDelete: cfg.RebuildOnDelete,
		Lexicons: extract.Lexicons{
			TickerWhitelist: cfg.TickerWhitelist,
			TickerStoplist:  cfg.TickerStoplist,
		},
		Decay: cfg.Decay,
	})
	if err != nil {
		return fmt.Errorf("starting supervisor: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	h := hub.New()
	defer h.Close()

	log := obs.Named("cityd")

	go h.PumpSnapshots(ctx, sup.Snapshots())

	log.Info("starting ingestion supervisor", zap.String("workspace", cfg.WorkspacePath))
	if err := sup.Run(ctx); err != nil && ctx.Err() == nil {
		return fmt.Errorf("supervisor stopped: %w", err)
	}
	log.Info("shutdown complete")
	return nil
}

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kittclouds/memcity/internal/config"
	"github.com/kittclouds/memcity/internal/extract"
	"github.com/kittclouds/memcity/internal/graph"
	"github.com/kittclouds/memcity/internal/ingest"
	"github.com/kittclouds/memcity/internal/layout"
	"github.com/kittclouds/memcity/internal/obs"
	"github.com/kittclouds/memcity/internal/snapshot"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "read the watched workspace once and print the projected buildings, for local debugging without a hub",
	RunE:  runLayout,
}

func runLayout(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	compiled, err := extract.Compile(extract.Lexicons{
		TickerWhitelist: cfg.TickerWhitelist,
		TickerStoplist:  cfg.TickerStoplist,
	})
	if err != nil {
		return fmt.Errorf("compiling lexicons: %w", err)
	}

	paths, err := ingest.DiscoverWatchedSet(cfg.WorkspacePath)
	if err != nil {
		return fmt.Errorf("discovering watched files under %q: %w", cfg.WorkspacePath, err)
	}

	now := time.Now()
	store := graph.New()
	var paragraphsProcessed, occurrencesObserved int
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		groups, err := compiled.Extract(string(content), path)
		if err != nil {
			continue
		}
		docStats, err := store.BuildDocument(path, toStoreGroups(groups), now)
		if err != nil {
			return fmt.Errorf("building %q into graph: %w", path, err)
		}
		paragraphsProcessed += docStats.ParagraphsProcessed
		occurrencesObserved += docStats.OccurrencesObserved
	}

	snap := snapshot.Build(store, cfg.Decay, now, 1)
	result := layout.Project(snap, cfg.Layout)

	runID := uuid.New()
	obs.Named("cityd").Info("layout run complete",
		zap.String("run_id", runID.String()),
		zap.Int("buildings", len(result.Buildings)),
		zap.Int("connections", len(result.Connections)),
		zap.String("active_district", result.ActiveDistrict),
		zap.Int("paragraphs_processed", paragraphsProcessed),
		zap.Int("occurrences_observed", occurrencesObserved),
	)

	fmt.Printf("run %s: %d buildings, %d connections, active district %q (%d paragraphs, %d occurrences)\n",
		runID, len(result.Buildings), len(result.Connections), result.ActiveDistrict,
		paragraphsProcessed, occurrencesObserved)
	for _, b := range result.Buildings {
		fmt.Printf("  %-28s %-14s district=%-15s importance=%.3f x=%6.1f z=%6.1f height=%5.1f\n",
			b.ID, b.Type, b.District, b.Importance, b.X, b.Z, b.Height)
	}

	fmt.Println("top nodes:")
	for _, sn := range store.TopNodes(10) {
		fmt.Printf("  %-28s score=%8.2f mentions=%d\n", sn.Node.ID, sn.Score, sn.Node.MentionCount)
	}

	return nil
}

func toStoreGroups(groups []extract.ParagraphGroup) []graph.ParagraphGroup {
	out := make([]graph.ParagraphGroup, len(groups))
	for i, g := range groups {
		gg := make(graph.ParagraphGroup, len(g))
		for j, occ := range g {
			gg[j] = graph.Occurrence{Label: occ.Label, Type: occ.Type}
		}
		out[i] = gg
	}
	return out
}

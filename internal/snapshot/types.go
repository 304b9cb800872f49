// Package snapshot produces the immutable, JSON-serializable Snapshot frame
// that the Ingestion Supervisor publishes to the hub. It is the
// one place decay (internal/decay) and the raw graph (internal/graph) meet:
// Build applies the decay formulas to a deep-copied view of the graph at a
// single instant, so the result can be handed to slow consumers without a
// lock.
package snapshot

import (
	"time"

	"github.com/kittclouds/memcity/internal/decay"
	"github.com/kittclouds/memcity/internal/graph"
)

// NodeFrame is the wire shape of one node in a Snapshot.
type NodeFrame struct {
	ID            string   `json:"id"`
	Label         string   `json:"label"`
	Type          string   `json:"type"`
	MentionCount  int      `json:"mention_count"`
	FirstSeenMs   int64    `json:"first_seen_ms"`
	LastSeenMs    int64    `json:"last_seen_ms"`
	Sources       []string `json:"sources"`
	DisplayWeight float64  `json:"display_weight"`
	SourceBonus   float64  `json:"source_bonus"`
	DecayFactor   float64  `json:"decay_factor"`
	AgeMs         int64    `json:"age_ms"`
}

// EdgeFrame is the wire shape of one edge in a Snapshot. Endpoints
// are already canonically lexicographically ordered by graph.Store.
type EdgeFrame struct {
	SourceID          string  `json:"source_id"`
	TargetID          string  `json:"target_id"`
	CoOccurrenceCount int     `json:"co_occurrence_count"`
	LastSeenMs        int64   `json:"last_seen_ms"`
	DisplayWeight     float64 `json:"display_weight"`
	DecayFactor       float64 `json:"decay_factor"`
}

// Snapshot is the atomic, deep-copied view of the graph emitted after every
// rebuild. Generation is monotonically increasing;
// consumers detect staleness by comparing it, not by content.
type Snapshot struct {
	Generation   uint64      `json:"generation"`
	ProducedAtMs int64       `json:"produced_at_ms"`
	Nodes        []NodeFrame `json:"nodes"`
	Edges        []EdgeFrame `json:"edges"`
}

// Build decays every node and edge in store as of now and assembles a
// Snapshot tagged with generation. It never mutates store.
func Build(store *graph.Store, cfg decay.Config, now time.Time, generation uint64) *Snapshot {
	nodes, edges := store.All()

	nodeFrames := make([]NodeFrame, 0, len(nodes))
	for _, n := range nodes {
		decayFactor := decay.Freshness(now, n.LastSeen, n.Type, cfg)
		bonus := cfg.MaxSourceWeight(n.Sources)
		weight := float64(n.MentionCount) * decayFactor * bonus

		sources := make([]string, len(n.Sources))
		copy(sources, n.Sources)

		nodeFrames = append(nodeFrames, NodeFrame{
			ID:            n.ID,
			Label:         n.Label,
			Type:          string(n.Type),
			MentionCount:  n.MentionCount,
			FirstSeenMs:   n.FirstSeen.UnixMilli(),
			LastSeenMs:    n.LastSeen.UnixMilli(),
			Sources:       sources,
			DisplayWeight: weight,
			SourceBonus:   bonus,
			DecayFactor:   decayFactor,
			AgeMs:         now.Sub(n.LastSeen).Milliseconds(),
		})
	}

	edgeFrames := make([]EdgeFrame, 0, len(edges))
	for _, e := range edges {
		weight := decay.EdgeDisplayWeight(now, e.LastSeen, e.CoOccurrenceCount, cfg)
		decayFactor := decay.Freshness(now, e.LastSeen, "", cfg)
		edgeFrames = append(edgeFrames, EdgeFrame{
			SourceID:          e.SourceID,
			TargetID:          e.TargetID,
			CoOccurrenceCount: e.CoOccurrenceCount,
			LastSeenMs:        e.LastSeen.UnixMilli(),
			DisplayWeight:     weight,
			DecayFactor:       decayFactor,
		})
	}

	return &Snapshot{
		Generation:   generation,
		ProducedAtMs: now.UnixMilli(),
		Nodes:        nodeFrames,
		Edges:        edgeFrames,
	}
}

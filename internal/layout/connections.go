package layout

import (
	"sort"

	"github.com/kittclouds/memcity/internal/snapshot"
)

// selectConnections prunes the full edge set down to the ones worth
// drawing: count >= 2 or normalized strength > 0.3, capped at the top
// maxConn by strength. Strength is each edge's display weight normalized
// by the maximum display weight in the set, so the cutoff is relative to
// the current snapshot rather than an absolute display-weight value.
func selectConnections(edges []snapshot.EdgeFrame, districtOf map[string]*District, maxConn int) []Connection {
	maxWeight := 0.0
	for _, e := range edges {
		if e.DisplayWeight > maxWeight {
			maxWeight = e.DisplayWeight
		}
	}

	candidates := make([]Connection, 0, len(edges))
	for _, e := range edges {
		var strength float64
		if maxWeight > 0 {
			strength = e.DisplayWeight / maxWeight
		}
		if e.CoOccurrenceCount < 2 && strength <= 0.3 {
			continue
		}

		kind := "bridge"
		da, okA := districtOf[e.SourceID]
		db, okB := districtOf[e.TargetID]
		if okA && okB && da.Name == db.Name {
			kind = "local"
		}

		candidates = append(candidates, Connection{
			From:     e.SourceID,
			To:       e.TargetID,
			Strength: strength,
			Count:    e.CoOccurrenceCount,
			Type:     kind,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Strength > candidates[j].Strength
	})

	if len(candidates) > maxConn {
		candidates = candidates[:maxConn]
	}
	return candidates
}

package layout

import (
	"sort"
	"strings"

	"github.com/kittclouds/memcity/internal/decay"
	"github.com/kittclouds/memcity/internal/snapshot"
)

// activeDistrictHeuristic scores each district against the three
// most-recently-touched source documents and reports the top scorer as
// active_district. A snapshot carries no raw document text, so "keyword
// hit" is evaluated against the lower-cased labels of the nodes each
// document contributed to, the same signal district assignment itself
// uses.
func activeDistrictHeuristic(districts []District, cfg decay.Config, nodes []snapshot.NodeFrame) (string, map[string]float64) {
	lastSeenByDoc := make(map[string]int64)
	for _, n := range nodes {
		for _, src := range n.Sources {
			if n.LastSeenMs > lastSeenByDoc[src] {
				lastSeenByDoc[src] = n.LastSeenMs
			}
		}
	}

	recentDocs := make([]string, 0, len(lastSeenByDoc))
	for doc := range lastSeenByDoc {
		recentDocs = append(recentDocs, doc)
	}
	sort.Slice(recentDocs, func(i, j int) bool {
		return lastSeenByDoc[recentDocs[i]] > lastSeenByDoc[recentDocs[j]]
	})
	if len(recentDocs) > 3 {
		recentDocs = recentDocs[:3]
	}

	recentSet := make(map[string]bool, len(recentDocs))
	weightByDoc := make(map[string]float64, len(recentDocs))
	for _, doc := range recentDocs {
		recentSet[doc] = true
		weightByDoc[doc] = cfg.SourceWeight(doc)
	}

	scores := make(map[string]float64, len(districts))
	for _, n := range nodes {
		var docWeight float64
		var fromRecentDoc bool
		for _, src := range n.Sources {
			if recentSet[src] {
				fromRecentDoc = true
				if w := weightByDoc[src]; w > docWeight {
					docWeight = w
				}
			}
		}
		if !fromRecentDoc {
			continue
		}

		lower := strings.ToLower(n.Label)
		for _, d := range districts {
			for _, kw := range d.Keywords {
				if strings.Contains(lower, kw) {
					scores[d.Name] += 0.1 * docWeight
				}
			}
		}
	}

	activity := make(map[string]float64, len(districts))
	maxScore := 0.0
	for _, d := range districts {
		if scores[d.Name] > maxScore {
			maxScore = scores[d.Name]
		}
	}

	active := fallbackDistrict
	bestSoFar := 0.0
	for _, d := range districts {
		var normalized float64
		if maxScore > 0 {
			normalized = scores[d.Name] / maxScore
		}
		activity[d.Name] = normalized
		if normalized > bestSoFar {
			bestSoFar = normalized
			active = d.Name
		}
	}

	return active, activity
}

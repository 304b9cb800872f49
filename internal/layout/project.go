package layout

import (
	"strings"

	"github.com/kittclouds/memcity/internal/decay"
	"github.com/kittclouds/memcity/internal/snapshot"
)

// Project runs the full pipeline against one snapshot: district
// assignment, importance normalization, force simulation, district
// bounds, building sizing, connection pruning, and the active-district
// heuristic. It is a pure function of (s, cfg): identical inputs produce
// bit-identical output, since placement and initial velocity are derived
// from a hash of each node's id rather than an RNG.
func Project(s *snapshot.Snapshot, cfg Config) Result {
	if cfg.Districts == nil {
		cfg = DefaultConfig()
	}

	districtOf := make(map[string]*District, len(s.Nodes))
	importance := make(map[string]float64, len(s.Nodes))
	maxImportance := 0.0

	for _, nf := range s.Nodes {
		d := assignDistrict(cfg.Districts, nf.Label)
		districtOf[nf.ID] = d

		raw := float64(nf.MentionCount) * (0.5 + nf.DecayFactor) * nf.SourceBonus
		importance[nf.ID] = raw
		if raw > maxImportance {
			maxImportance = raw
		}
	}

	indexOf := make(map[string]int, len(s.Nodes))
	simNodes := make([]simNode, len(s.Nodes))
	for i, nf := range s.Nodes {
		indexOf[nf.ID] = i

		var imp float64
		if maxImportance > 0 {
			imp = importance[nf.ID] / maxImportance
		}
		d := districtOf[nf.ID]

		sn := simNode{
			id:         nf.ID,
			mass:       1 + 2*imp,
			importance: imp,
			pullX:      0.6 * d.BaseX,
			pullZ:      0.6 * d.BaseZ,
		}
		placeInitial(&sn, d.BaseX, d.BaseZ)
		simNodes[i] = sn
	}

	simEdges := make([]simEdge, 0, len(s.Edges))
	for _, ef := range s.Edges {
		a, okA := indexOf[ef.SourceID]
		b, okB := indexOf[ef.TargetID]
		if !okA || !okB {
			continue
		}
		simEdges = append(simEdges, simEdge{a: a, b: b, count: ef.CoOccurrenceCount})
	}

	simulate(simNodes, simEdges, cfg.Iterations, cfg.Bounds)

	topPattern := topWeightedPattern(cfg.Decay)
	buildings := make([]Building, len(s.Nodes))
	freshnessByID := make(map[string]float64, len(s.Nodes))
	countByDistrict := make(map[string]int, len(cfg.Districts))

	for i, nf := range s.Nodes {
		d := districtOf[nf.ID]
		sn := simNodes[i]
		imp := sn.importance
		freshnessByID[nf.ID] = nf.DecayFactor
		countByDistrict[d.Name]++

		height := buildingHeight(imp)
		if containsPattern(nf.Sources, topPattern) {
			height *= 1.4
		}
		if nf.Type == "ticker" && height > 25 {
			height = 25
		}

		footprint := 6 + 10*imp

		buildings[i] = Building{
			ID:           nf.ID,
			Type:         nf.Type,
			Label:        nf.Label,
			District:     d.Name,
			X:            sn.x,
			Z:            sn.z,
			Height:       height,
			Width:        footprint,
			Depth:        footprint,
			Importance:   imp,
			Frequency:    nf.MentionCount,
			RecencyScore: nf.DecayFactor,
			SourceScore:  nf.SourceBonus,
			Sources:      nf.Sources,
		}
	}

	bounds := districtBounds(cfg.Districts, countByDistrict, freshnessByID, districtOf, len(s.Nodes))

	connections := selectConnections(s.Edges, districtOf, cfg.MaxConnections)

	activeDistrict, activity := activeDistrictHeuristic(cfg.Districts, cfg.Decay, s.Nodes)

	return Result{
		Algorithm:        "brain-optimized-v2",
		DistrictBounds:   bounds,
		Buildings:        buildings,
		Connections:      connections,
		ActiveDistrict:   activeDistrict,
		DistrictActivity: activity,
	}
}

// buildingHeight applies the piecewise importance-band height formula.
func buildingHeight(imp float64) float64 {
	switch {
	case imp > 0.8:
		return 40 + 30*imp
	case imp > 0.5:
		return 25 + 30*imp
	case imp > 0.2:
		return 12 + 26*imp
	default:
		return 5 + 20*imp
	}
}

// topWeightedPattern returns the highest-multiplier path pattern in cfg,
// the "top-weighted source" that earns a node's building a height bonus.
func topWeightedPattern(cfg decay.Config) string {
	best := ""
	bestWeight := -1.0
	for _, sw := range cfg.PathPatterns {
		if sw.Multiplier > bestWeight {
			bestWeight = sw.Multiplier
			best = sw.Pattern
		}
	}
	return best
}

func containsPattern(sources []string, pattern string) bool {
	if pattern == "" {
		return false
	}
	for _, s := range sources {
		if strings.Contains(s, pattern) {
			return true
		}
	}
	return false
}

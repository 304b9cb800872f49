package layout

import "strings"

// District is one entry of the closed district set the projector assigns
// nodes to: a keyword list for scoring, a polar base position, a display
// color, and an importance multiplier in [0.9, 1.5].
type District struct {
	Name             string
	Keywords         []string
	BaseX, BaseZ     float64
	Color            string
	ImportanceFactor float64
}

// DefaultDistricts is the built-in district table. Order matters: district
// assignment ties fall through in declaration order, and "memory" is both
// the last entry and the zero-score fallback.
func DefaultDistricts() []District {
	return []District{
		{
			Name:             "core",
			Keywords:         []string{"soul", "identity", "value", "principle", "belief", "mission", "purpose"},
			BaseX:            0, BaseZ: -60,
			Color:            "#c75c9a",
			ImportanceFactor: 1.5,
		},
		{
			Name:             "trading",
			Keywords:         []string{"ticker", "stock", "market", "trade", "trading", "invest", "portfolio", "allocation", "crypto", "coin"},
			BaseX:            60, BaseZ: 0,
			Color:            "#e8a33d",
			ImportanceFactor: 1.2,
		},
		{
			Name:             "infrastructure",
			Keywords:         []string{"docker", "kubernetes", "k8s", "server", "deploy", "pipeline", "infra", "cloud", "aws", "gcp", "azure", "ci", "cd"},
			BaseX:            0, BaseZ: 60,
			Color:            "#4f8fd1",
			ImportanceFactor: 1.1,
		},
		{
			Name:             "projects",
			Keywords:         []string{"project", "feature", "roadmap", "milestone", "repo", "repository", "sprint", "release"},
			BaseX:            -60, BaseZ: 0,
			Color:            "#6fcf6f",
			ImportanceFactor: 1.0,
		},
		{
			Name:             "memory",
			Keywords:         []string{"memory", "note", "journal", "diary", "recall"},
			BaseX:            0, BaseZ: 0,
			Color:            "#9a9a9a",
			ImportanceFactor: 0.9,
		},
	}
}

const fallbackDistrict = "memory"

// assignDistrict lower-cases label and scores it against every district's
// keyword list: one point per contained keyword. The highest score wins;
// ties fall through declaration order. A zero score defaults to "memory".
func assignDistrict(districts []District, label string) *District {
	lower := strings.ToLower(label)

	best := -1
	var winner *District
	for i := range districts {
		d := &districts[i]
		score := 0
		for _, kw := range d.Keywords {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > best {
			best = score
			winner = d
		}
	}

	if best <= 0 {
		return byName(districts, fallbackDistrict)
	}
	return winner
}

func byName(districts []District, name string) *District {
	for i := range districts {
		if districts[i].Name == name {
			return &districts[i]
		}
	}
	return &districts[len(districts)-1]
}

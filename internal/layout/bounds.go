package layout

import "math"

// districtBounds computes each district's post-simulation radius: a base
// term proportional to its share of nodes, plus an expansion bonus driven
// by how many of its nodes are still fresh.
func districtBounds(districts []District, countByDistrict map[string]int, freshnessByID map[string]float64, districtOf map[string]*District, total int) map[string]DistrictBound {
	freshCountByDistrict := make(map[string]int, len(districts))
	for id, d := range districtOf {
		if freshnessByID[id] > 0.5 {
			freshCountByDistrict[d.Name]++
		}
	}

	out := make(map[string]DistrictBound, len(districts))
	for _, d := range districts {
		count := countByDistrict[d.Name]

		var share float64
		if total > 0 {
			share = float64(count) / float64(total)
		}
		radius := 25 + math.Sqrt(share)*40

		fresh := freshCountByDistrict[d.Name]
		switch {
		case fresh > 5:
			radius += 15
		case fresh > 2:
			radius += 8
		}

		out[d.Name] = DistrictBound{
			CenterX:     d.BaseX,
			CenterZ:     d.BaseZ,
			Radius:      radius,
			EntityCount: count,
			Color:       d.Color,
		}
	}
	return out
}

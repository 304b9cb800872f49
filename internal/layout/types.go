// Package layout turns a decayed graph snapshot into a spatial scene: a
// building per node, a pruned connection set, and per-district bounds,
// produced by a deterministic force simulation. Nothing here depends on
// the filesystem or the clock beyond what the caller already decayed into
// the snapshot; project is a pure function of (snapshot, Config).
package layout

import (
	"encoding/json"

	"github.com/kittclouds/memcity/internal/decay"
)

// Config bounds a single layout run: the district table, iteration count,
// bounding square half-width, and connection cap, each overridable from
// the same source that configures decay.
type Config struct {
	Districts      []District
	Iterations     int
	Bounds         float64
	MaxConnections int
	Decay          decay.Config
}

// DefaultConfig returns the built-in layout parameters: 150 iterations, an
// 80-unit bounding square, a 150-connection cap, and the default district
// table.
func DefaultConfig() Config {
	return Config{
		Districts:      DefaultDistricts(),
		Iterations:     150,
		Bounds:         80,
		MaxConnections: 150,
		Decay:          decay.DefaultConfig(),
	}
}

// Building is one node's placement and footprint in the projected scene.
type Building struct {
	ID           string   `json:"id"`
	Type         string   `json:"type"`
	Label        string   `json:"label"`
	District     string   `json:"district"`
	X            float64  `json:"x"`
	Z            float64  `json:"z"`
	Height       float64  `json:"height"`
	Width        float64  `json:"width"`
	Depth        float64  `json:"depth"`
	Importance   float64  `json:"importance"`
	Frequency    int      `json:"frequency"`
	RecencyScore float64  `json:"recency_score"`
	SourceScore  float64  `json:"source_score"`
	Sources      []string `json:"sources"`
}

// Connection is one pruned, classified edge in the projected scene.
type Connection struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Strength float64 `json:"strength"`
	Count    int     `json:"count"`
	Type     string  `json:"type"`
}

// DistrictBound is the computed spatial extent of one district after
// simulation.
type DistrictBound struct {
	CenterX     float64 `json:"-"`
	CenterZ     float64 `json:"-"`
	Radius      float64 `json:"radius"`
	EntityCount int     `json:"entity_count"`
	Color       string  `json:"color"`
}

// districtBoundWire is DistrictBound's JSON shape, with the center folded
// into a nested object to match the published wire format.
type districtBoundWire struct {
	Center      center  `json:"center"`
	Radius      float64 `json:"radius"`
	EntityCount int     `json:"entity_count"`
	Color       string  `json:"color"`
}

type center struct {
	X float64 `json:"x"`
	Z float64 `json:"z"`
}

// Result is the full layout result frame published on demand.
type Result struct {
	Algorithm        string
	DistrictBounds   map[string]DistrictBound
	Buildings        []Building
	Connections      []Connection
	ActiveDistrict   string
	DistrictActivity map[string]float64
}

type resultWire struct {
	Algorithm        string                        `json:"algorithm"`
	DistrictBounds   map[string]districtBoundWire `json:"district_bounds"`
	Buildings        []Building                    `json:"buildings"`
	Connections      []Connection                  `json:"connections"`
	ActiveDistrict   string                        `json:"active_district"`
	DistrictActivity map[string]float64            `json:"district_activity"`
}

// MarshalJSON adapts DistrictBounds to its nested wire shape; Result keeps
// a Go-friendly map[string]DistrictBound internally so callers never juggle
// the wire's nested center object directly.
func (r Result) MarshalJSON() ([]byte, error) {
	wire := resultWire{
		Algorithm:        r.Algorithm,
		Buildings:        r.Buildings,
		Connections:      r.Connections,
		ActiveDistrict:   r.ActiveDistrict,
		DistrictActivity: r.DistrictActivity,
		DistrictBounds:   make(map[string]districtBoundWire, len(r.DistrictBounds)),
	}
	for name, b := range r.DistrictBounds {
		wire.DistrictBounds[name] = districtBoundWire{
			Center:      center{X: b.CenterX, Z: b.CenterZ},
			Radius:      b.Radius,
			EntityCount: b.EntityCount,
			Color:       b.Color,
		}
	}
	return json.Marshal(wire)
}

package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kittclouds/memcity/internal/snapshot"
)

func TestSelectConnections_ShouldDropWeakLowCountEdges(t *testing.T) {
	edges := []snapshot.EdgeFrame{
		{SourceID: "a", TargetID: "b", CoOccurrenceCount: 1, DisplayWeight: 0.5},
		{SourceID: "c", TargetID: "d", CoOccurrenceCount: 5, DisplayWeight: 5.0},
	}

	got := selectConnections(edges, map[string]*District{}, 150)

	assert.Len(t, got, 1)
	assert.Equal(t, "c", got[0].From)
}

func TestSelectConnections_ShouldClassifyLocalVersusBridge(t *testing.T) {
	trading := &District{Name: "trading"}
	memory := &District{Name: "memory"}
	edges := []snapshot.EdgeFrame{
		{SourceID: "a", TargetID: "b", CoOccurrenceCount: 3, DisplayWeight: 3.0},
		{SourceID: "c", TargetID: "d", CoOccurrenceCount: 3, DisplayWeight: 3.0},
	}
	districtOf := map[string]*District{"a": trading, "b": trading, "c": trading, "d": memory}

	got := selectConnections(edges, districtOf, 150)

	byFrom := map[string]string{}
	for _, c := range got {
		byFrom[c.From] = c.Type
	}
	assert.Equal(t, "local", byFrom["a"])
	assert.Equal(t, "bridge", byFrom["c"])
}

func TestSelectConnections_ShouldCapAtMaxConnectionsByStrength(t *testing.T) {
	edges := make([]snapshot.EdgeFrame, 5)
	for i := range edges {
		edges[i] = snapshot.EdgeFrame{
			SourceID:          string(rune('a' + i)),
			TargetID:          string(rune('a' + i + 1)),
			CoOccurrenceCount: 5,
			DisplayWeight:     float64(i + 1),
		}
	}

	got := selectConnections(edges, map[string]*District{}, 2)

	assert.Len(t, got, 2)
	assert.GreaterOrEqual(t, got[0].Strength, got[1].Strength)
}

func TestSelectConnections_ShouldHandleNoEdges(t *testing.T) {
	got := selectConnections(nil, map[string]*District{}, 150)

	assert.Empty(t, got)
}

package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp_ShouldRestrictToTheBound(t *testing.T) {
	assert.Equal(t, 10.0, clamp(15, 10))
	assert.Equal(t, -10.0, clamp(-15, 10))
	assert.Equal(t, 5.0, clamp(5, 10))
}

func TestPlaceInitial_ShouldBeDeterministicForTheSameID(t *testing.T) {
	a := simNode{id: "ticker:nvda", importance: 0.5}
	b := simNode{id: "ticker:nvda", importance: 0.5}

	placeInitial(&a, 60, 0)
	placeInitial(&b, 60, 0)

	assert.Equal(t, a.x, b.x)
	assert.Equal(t, a.z, b.z)
	assert.Equal(t, a.vx, b.vx)
	assert.Equal(t, a.vz, b.vz)
}

func TestPlaceInitial_ShouldDifferAcrossDistinctIDs(t *testing.T) {
	a := simNode{id: "ticker:nvda", importance: 0.5}
	b := simNode{id: "ticker:tsla", importance: 0.5}

	placeInitial(&a, 60, 0)
	placeInitial(&b, 60, 0)

	assert.NotEqual(t, a.x, b.x)
}

func TestSimulate_ShouldBeDeterministicAcrossRuns(t *testing.T) {
	build := func() []simNode {
		nodes := []simNode{
			{id: "a", mass: 1, importance: 0.2, pullX: 30, pullZ: 0},
			{id: "b", mass: 1, importance: 0.4, pullX: -30, pullZ: 0},
		}
		placeInitial(&nodes[0], 30, 0)
		placeInitial(&nodes[1], -30, 0)
		return nodes
	}
	edges := []simEdge{{a: 0, b: 1, count: 3}}

	first := build()
	simulate(first, edges, 150, 80)

	second := build()
	simulate(second, edges, 150, 80)

	assert.Equal(t, first, second)
}

func TestSimulate_ShouldKeepPositionsWithinBounds(t *testing.T) {
	nodes := make([]simNode, 20)
	for i := range nodes {
		n := simNode{id: string(rune('a' + i)), mass: 1, importance: 0.5}
		placeInitial(&n, 60, 0)
		nodes[i] = n
	}

	simulate(nodes, nil, 150, 80)

	for _, n := range nodes {
		assert.LessOrEqual(t, n.x, 80.0)
		assert.GreaterOrEqual(t, n.x, -80.0)
		assert.LessOrEqual(t, n.z, 80.0)
		assert.GreaterOrEqual(t, n.z, -80.0)
	}
}

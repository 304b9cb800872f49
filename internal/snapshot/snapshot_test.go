package snapshot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kittclouds/memcity/internal/decay"
	"github.com/kittclouds/memcity/internal/graph"
)

func buildTestStore(t *testing.T, now time.Time) *graph.Store {
	t.Helper()
	s := graph.New()
	groups := []graph.ParagraphGroup{
		{
			{Label: "Anton", Type: graph.EntityType("person")},
			{Label: "NVDA", Type: graph.EntityType("ticker")},
		},
	}
	_, err := s.BuildDocument("memory/2026-01-15.md", groups, now)
	require.NoError(t, err)
	return s
}

func TestBuild_ShouldProduceOneFramePerNodeAndEdge(t *testing.T) {
	now := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	store := buildTestStore(t, now)

	snap := Build(store, decay.DefaultConfig(), now, 1)

	assert.Len(t, snap.Nodes, 2)
	assert.Len(t, snap.Edges, 1)
	assert.Equal(t, uint64(1), snap.Generation)
	assert.Equal(t, now.UnixMilli(), snap.ProducedAtMs)
}

func TestBuild_ShouldComputeFullFreshnessAndAgeForABrandNewNode(t *testing.T) {
	now := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	store := buildTestStore(t, now)

	snap := Build(store, decay.DefaultConfig(), now, 1)

	for _, nf := range snap.Nodes {
		assert.InDelta(t, 1.0, nf.DecayFactor, 1e-9)
		assert.Equal(t, int64(0), nf.AgeMs)
	}
}

func TestBuild_ShouldNeverMutateTheUnderlyingStore(t *testing.T) {
	now := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	store := buildTestStore(t, now)
	before := store.NodeCount()

	_ = Build(store, decay.DefaultConfig(), now, 1)

	assert.Equal(t, before, store.NodeCount())
}

func TestEncodeDecode_ShouldRoundTrip(t *testing.T) {
	now := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	store := buildTestStore(t, now)
	snap := Build(store, decay.DefaultConfig(), now, 7)

	data, err := snap.Encode()
	require.NoError(t, err)

	back, err := Decode(data)
	require.NoError(t, err)

	assert.Equal(t, snap.Generation, back.Generation)
	assert.Equal(t, snap.ProducedAtMs, back.ProducedAtMs)
	assert.ElementsMatch(t, snap.Nodes, back.Nodes)
	assert.ElementsMatch(t, snap.Edges, back.Edges)
}

func TestEncode_ShouldBeSafeForConcurrentReuseOfThePooledBuffer(t *testing.T) {
	now := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	store := buildTestStore(t, now)
	snap := Build(store, decay.DefaultConfig(), now, 1)

	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			_, err := snap.Encode()
			done <- err
		}()
	}
	for i := 0; i < 8; i++ {
		require.NoError(t, <-done)
	}
}

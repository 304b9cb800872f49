package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentTableUpsert_ShouldReportChangedOnFirstWrite(t *testing.T) {
	table := newDocumentTable()

	changed := table.upsert("memory/a.md", []byte("hello"))

	assert.True(t, changed)
	assert.Equal(t, []string{"memory/a.md"}, table.paths())
}

func TestDocumentTableUpsert_ShouldReportUnchangedForIdenticalContent(t *testing.T) {
	table := newDocumentTable()
	table.upsert("memory/a.md", []byte("hello"))

	changed := table.upsert("memory/a.md", []byte("hello"))

	assert.False(t, changed)
}

func TestDocumentTableUpsert_ShouldReportChangedWhenContentDiffers(t *testing.T) {
	table := newDocumentTable()
	table.upsert("memory/a.md", []byte("hello"))

	changed := table.upsert("memory/a.md", []byte("goodbye"))

	assert.True(t, changed)
}

func TestDocumentTableRemove_ShouldDropTrackedPath(t *testing.T) {
	table := newDocumentTable()
	table.upsert("memory/a.md", []byte("hello"))

	table.remove("memory/a.md")

	assert.Empty(t, table.paths())
}

func TestDocumentTableRemove_ShouldBeANoOpForAnUntrackedPath(t *testing.T) {
	table := newDocumentTable()

	table.remove("memory/never-seen.md")

	assert.Empty(t, table.paths())
}

func TestHash_ShouldBeStableForIdenticalContent(t *testing.T) {
	a := hash([]byte("same bytes"))
	b := hash([]byte("same bytes"))

	assert.Equal(t, a, b)
}

func TestHash_ShouldDifferForDifferentContent(t *testing.T) {
	a := hash([]byte("one"))
	b := hash([]byte("two"))

	assert.NotEqual(t, a, b)
}

package ingest

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kittclouds/memcity/internal/extract"
)

func TestConfigWithDefaults_ShouldFillZeroDurations(t *testing.T) {
	cfg := Config{}.withDefaults()

	assert.Equal(t, 500*time.Millisecond, cfg.DebounceDelay)
	assert.Equal(t, 5*time.Second, cfg.RediscoverInterval)
}

func TestConfigWithDefaults_ShouldPreserveExplicitDurations(t *testing.T) {
	cfg := Config{DebounceDelay: 2 * time.Second, RediscoverInterval: time.Minute}.withDefaults()

	assert.Equal(t, 2*time.Second, cfg.DebounceDelay)
	assert.Equal(t, time.Minute, cfg.RediscoverInterval)
}

func TestNew_ShouldRejectAnEmptyWorkspacePath(t *testing.T) {
	_, err := New(Config{})

	assert.Error(t, err)
}

func TestNew_ShouldRejectAMissingWorkspaceDirectory(t *testing.T) {
	_, err := New(Config{WorkspacePath: "/does/not/exist/anywhere"})

	assert.Error(t, err)
}

func TestNew_ShouldRejectAWorkspacePathThatIsAFile(t *testing.T) {
	f := t.TempDir() + "/not-a-dir"
	require.NoError(t, os.WriteFile(f, []byte("x"), 0o644))

	_, err := New(Config{WorkspacePath: f})

	assert.Error(t, err)
}

func TestNew_ShouldSucceedForAValidDirectory(t *testing.T) {
	s, err := New(Config{WorkspacePath: t.TempDir()})

	require.NoError(t, err)
	assert.NotNil(t, s.Snapshots())
}

func TestToGraphGroups_ShouldPreserveShapeAndOrder(t *testing.T) {
	in := []extract.ParagraphGroup{
		{
			{Label: "Anton", Type: extract.TypePerson},
			{Label: "NVDA", Type: extract.TypeTicker},
		},
	}

	got := toGraphGroups(in)

	require.Len(t, got, 1)
	require.Len(t, got[0], 2)
	assert.Equal(t, "Anton", got[0][0].Label)
	assert.Equal(t, "NVDA", got[0][1].Label)
}

func TestToGraphGroups_ShouldHandleEmptyInput(t *testing.T) {
	got := toGraphGroups(nil)

	assert.Empty(t, got)
}

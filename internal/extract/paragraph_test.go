package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitParagraphs_ShouldSplitOnBlankLines(t *testing.T) {
	got := splitParagraphs("first paragraph text here\n\nsecond paragraph text here")

	assert.Equal(t, []string{"first paragraph text here", "second paragraph text here"}, got)
}

func TestSplitParagraphs_ShouldSplitBeforeAHeading(t *testing.T) {
	got := splitParagraphs("some leading paragraph text\n## A Heading\nmore text under it")

	require.Len(t, got, 2)
	assert.Equal(t, "some leading paragraph text", got[0])
}

func TestSplitParagraphs_ShouldDiscardShortPayloads(t *testing.T) {
	got := splitParagraphs("hi\n\nok")

	assert.Empty(t, got)
}

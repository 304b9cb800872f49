package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kittclouds/memcity/internal/extract/lexicon"
)

func TestExtractHeaders_ShouldCaptureLevelOneToThreeHeadings(t *testing.T) {
	got := extractHeaders("## Quarterly Planning")

	assert.Equal(t, []Occurrence{{Label: "Quarterly Planning", Type: TypeHeader}}, got)
}

func TestExtractHeaders_ShouldRejectListMarkerLines(t *testing.T) {
	got := extractHeaders("# - not really a heading")

	assert.Empty(t, got)
}

func TestExtractHeaders_ShouldRejectOutOfRangeLength(t *testing.T) {
	assert.Empty(t, extractHeaders("# Hi"))
}

func TestExtractBoldConcepts_ShouldCaptureBoldSpans(t *testing.T) {
	got := extractBoldConcepts("We should prioritize **user retention** this quarter.")

	assert.Equal(t, []Occurrence{{Label: "user retention", Type: TypeConcept}}, got)
}

func TestExtractBacktickTools_ShouldCaptureSingleWordCodeSpans(t *testing.T) {
	got := extractBacktickTools("Run the analysis with `yahoo-finance` today.")

	assert.Equal(t, []Occurrence{{Label: "yahoo-finance", Type: TypeTool}}, got)
}

func TestExtractBacktickTools_ShouldRejectMultiWordSpans(t *testing.T) {
	got := extractBacktickTools("See `two words` for details.")

	assert.Empty(t, got)
}

func TestExtractURLs_ShouldTrimTrailingSentencePunctuation(t *testing.T) {
	got := extractURLs("Docs are at https://example.com/path.")

	assert.Equal(t, []Occurrence{{Label: "https://example.com/path", Type: TypeURL}}, got)
}

func TestExtractTickers_ShouldAcceptWhitelistedRun_WithoutDollarPrefix(t *testing.T) {
	whitelist, err := lexicon.Compile([]string{"NVDA"})
	require.NoError(t, err)
	stoplist, err := lexicon.Compile(defaultTickerStoplist)
	require.NoError(t, err)

	got := extractTickers("Increase NVDA allocation.", "Increase NVDA allocation.", whitelist, stoplist)

	assert.Equal(t, []Occurrence{{Label: "NVDA", Type: TypeTicker}}, got)
}

func TestExtractTickers_ShouldRejectStoplistedRun_EvenWithDollarTag(t *testing.T) {
	whitelist, err := lexicon.Compile(defaultTickerWhitelist)
	require.NoError(t, err)
	stoplist, err := lexicon.Compile([]string{"THE"})
	require.NoError(t, err)

	got := extractTickers("$THE is not a ticker.", "$THE is not a ticker.", whitelist, stoplist)

	assert.Empty(t, got)
}

func TestExtractTickers_ShouldAcceptNonWhitelistedRun_WhenDollarTaggedElsewhereInDocument(t *testing.T) {
	whitelist, err := lexicon.Compile(defaultTickerWhitelist)
	require.NoError(t, err)
	stoplist, err := lexicon.Compile(defaultTickerStoplist)
	require.NoError(t, err)
	doc := "We discussed XYZ earlier. Later someone wrote $XYZ in the notes."

	got := extractTickers("We discussed XYZ earlier.", doc, whitelist, stoplist)

	assert.Equal(t, []Occurrence{{Label: "XYZ", Type: TypeTicker}}, got)
}

func TestExtractTickers_ShouldRejectUnknownRun_WithoutDollarTagAnywhere(t *testing.T) {
	whitelist, err := lexicon.Compile(defaultTickerWhitelist)
	require.NoError(t, err)
	stoplist, err := lexicon.Compile(defaultTickerStoplist)
	require.NoError(t, err)

	got := extractTickers("We discussed XYZ earlier.", "We discussed XYZ earlier.", whitelist, stoplist)

	assert.Empty(t, got)
}

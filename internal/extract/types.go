// Package extract maps a Markdown document to an ordered list of
// paragraph-scoped typed entity occurrences. It sits just above decay,
// whose type tags it borrows, and knows nothing about the graph or the
// filesystem, only about turning text into typed spans. The rule/lexicon extractors are authoritative; the NLP proper-noun
// pass is a fuzzy fallback, so lexicon matches always win when the two
// disagree.
package extract

import (
	"errors"

	"github.com/kittclouds/memcity/internal/decay"
)

// EntityType re-exports decay's type alias so callers extracting text don't
// need to import decay directly.
type EntityType = decay.EntityType

const (
	TypeHeader       = decay.TypeHeader
	TypeConcept      = decay.TypeConcept
	TypeTicker       = decay.TypeTicker
	TypeTool         = decay.TypeTool
	TypeProject      EntityType = "project"
	TypeURL          = decay.TypeURL
	TypePerson       = decay.TypePerson
	TypeOrganization = decay.TypeOrganization
	TypeDecision     = decay.TypeDecision
)

// Occurrence is one typed mention of an entity within a single paragraph.
type Occurrence struct {
	Label string
	Type  EntityType
}

// ParagraphGroup is the deduplicated (by type:normalized-label) set of
// occurrences found in one paragraph.
type ParagraphGroup []Occurrence

// ErrEmptyContent is returned by Extract when given empty input; Extract
// never otherwise errors, it simply fails to match unrecognized text.
var ErrEmptyContent = errors.New("extract: empty content")

// Package lexicon provides closed-list, case-insensitive multi-pattern
// matching over a single Aho-Corasick automaton, used by the extractor for
// the tool/technology list, the project-name list, and the ticker
// whitelist/stoplist. Adapted from pkg/implicit-matcher,
// which used the same coregx/ahocorasick automaton as both a dictionary
// and a text scanner; this package keeps that dual-purpose design but
// drops the fantasy-entity-kind machinery (priority ordering, auto-alias
// generation, EntityKind) that package built on top of it, since the
// extractor's lexicons are flat string sets, not typed entities with
// aliases.
package lexicon

import (
	"strings"

	"github.com/coregx/ahocorasick"
)

// Matcher is a compiled, case-insensitive set of literal patterns.
type Matcher struct {
	ac       *ahocorasick.Automaton
	patterns map[string]bool
}

// Compile builds a Matcher from a list of literal surface forms. Patterns
// are lower-cased at compile time; Contains and FindAll lower-case their input
// to match.
func Compile(words []string) (*Matcher, error) {
	m := &Matcher{patterns: make(map[string]bool, len(words))}

	normalized := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" || m.patterns[w] {
			continue
		}
		m.patterns[w] = true
		normalized = append(normalized, w)
	}

	if len(normalized) == 0 {
		return m, nil
	}

	ac, err := ahocorasick.NewBuilder().
		AddStrings(normalized).
		SetMatchKind(ahocorasick.LeftmostLongest).
		SetPrefilter(true).
		Build()
	if err != nil {
		return nil, err
	}
	m.ac = ac
	return m, nil
}

// Contains reports whether word (case-insensitively) is an exact member of
// the compiled set.
func (m *Matcher) Contains(word string) bool {
	if m == nil {
		return false
	}
	return m.patterns[strings.ToLower(word)]
}

// FindAll returns every (possibly overlapping) surface occurrence of a
// pattern within text, scanning case-insensitively over the whole string.
// This is how the tool/technology and project-name lists are recognized
// mid-paragraph rather than as a single whole-field match.
func (m *Matcher) FindAll(text string) []string {
	if m == nil || m.ac == nil {
		return nil
	}
	lower := strings.ToLower(text)
	matches := m.ac.FindAllOverlapping([]byte(lower))

	seen := make(map[string]bool, len(matches))
	out := make([]string, 0, len(matches))
	for _, match := range matches {
		surface := lower[match.Start:match.End]
		if seen[surface] {
			continue
		}
		seen[surface] = true
		out = append(out, surface)
	}
	return out
}

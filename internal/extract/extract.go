package extract

import (
	"strings"
	"sync"

	"github.com/kittclouds/memcity/internal/extract/lexicon"
)

// Lexicons bundles the closed configured lists consulted by the rule
// extractors. A zero-value Lexicons compiles to the package defaults.
type Lexicons struct {
	TickerWhitelist []string
	TickerStoplist  []string
	Tools           []string
	Projects        []string
}

// Compiled is a compiled Lexicons, cheap to reuse across Extract calls.
type Compiled struct {
	whitelist *lexicon.Matcher
	stoplist  *lexicon.Matcher
	tools     *lexicon.Matcher
	projects  *lexicon.Matcher
}

// Compile builds matchers for the given lexicon lists, falling back to the
// package defaults for any list left empty.
func Compile(l Lexicons) (*Compiled, error) {
	whitelistWords := l.TickerWhitelist
	if len(whitelistWords) == 0 {
		whitelistWords = defaultTickerWhitelist
	}
	stoplistWords := l.TickerStoplist
	if len(stoplistWords) == 0 {
		stoplistWords = defaultTickerStoplist
	}
	toolWords := l.Tools
	if len(toolWords) == 0 {
		toolWords = defaultTools
	}
	projectWords := l.Projects
	if len(projectWords) == 0 {
		projectWords = defaultProjectPatterns
	}

	var c Compiled
	var err error
	if c.whitelist, err = lexicon.Compile(whitelistWords); err != nil {
		return nil, err
	}
	if c.stoplist, err = lexicon.Compile(stoplistWords); err != nil {
		return nil, err
	}
	if c.tools, err = lexicon.Compile(toolWords); err != nil {
		return nil, err
	}
	if c.projects, err = lexicon.Compile(projectWords); err != nil {
		return nil, err
	}
	return &c, nil
}

var (
	defaultCompiledOnce sync.Once
	defaultCompiled     *Compiled
)

// defaults lazily compiles the package-default lexicons once, for callers
// that invoke the package-level Extract without a custom Compiled.
func defaults() *Compiled {
	defaultCompiledOnce.Do(func() {
		c, err := Compile(Lexicons{})
		if err != nil {
			// The built-in default lists are static and known-valid; a
			// failure here means the ahocorasick dependency itself is
			// broken, which no caller can recover from.
			panic("extract: failed to compile default lexicons: " + err.Error())
		}
		defaultCompiled = c
	})
	return defaultCompiled
}

// Extract maps a Markdown document to an ordered list of paragraph groups,
// each a deduplicated set of typed occurrences. documentPath is unused by
// extraction itself; callers that need source-weighted behavior apply it
// downstream in the decay package.
func Extract(content, documentPath string) ([]ParagraphGroup, error) {
	return defaults().Extract(content, documentPath)
}

// Extract runs this compiled lexicon set's extractors over content.
// Ticker extraction is not strictly local to a paragraph: a run that is
// not whitelisted is a ticker in one paragraph when its $-prefixed form
// appears anywhere in the document, even in another paragraph.
func (c *Compiled) Extract(content, documentPath string) ([]ParagraphGroup, error) {
	_ = documentPath
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	paragraphs := splitParagraphs(content)
	groups := make([]ParagraphGroup, 0, len(paragraphs))

	for _, p := range paragraphs {
		var all []Occurrence
		all = append(all, extractHeaders(p)...)
		all = append(all, extractBoldConcepts(p)...)
		all = append(all, extractTickers(p, content, c.whitelist, c.stoplist)...)
		all = append(all, extractTools(p, c.tools)...)
		all = append(all, extractProjects(p, c.projects)...)
		all = append(all, extractBacktickTools(p)...)
		all = append(all, extractURLs(p)...)
		all = append(all, extractDecisions(p)...)

		// The rule and lexicon extractors are authoritative: an NLP span
		// whose normalized label one of them already produced is dropped.
		ruleLabels := make(map[string]bool, len(all))
		for _, o := range all {
			ruleLabels[normalizeKey(o.Label)] = true
		}
		for _, o := range extractPeopleOrgs(stripMarkdown(p)) {
			if !ruleLabels[normalizeKey(o.Label)] {
				all = append(all, o)
			}
		}

		group := dedupe(all)
		if len(group) > 0 {
			groups = append(groups, group)
		}
	}

	return groups, nil
}

// dedupe collapses occurrences sharing a type:normalize(label) key within
// one paragraph, keeping the first surface form seen.
func dedupe(occurrences []Occurrence) ParagraphGroup {
	seen := make(map[string]bool, len(occurrences))
	out := make(ParagraphGroup, 0, len(occurrences))
	for _, o := range occurrences {
		key := string(o.Type) + ":" + normalizeKey(o.Label)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, o)
	}
	return out
}

// normalizeKey mirrors the graph package's node-id normalization closely
// enough for paragraph-local dedup (lower-case, collapse whitespace); the
// graph package owns the authoritative byte-for-byte definition used for
// node ids.
func normalizeKey(label string) string {
	return strings.Join(strings.Fields(strings.ToLower(label)), "_")
}

package extract

import (
	"regexp"
	"strings"

	"github.com/kittclouds/memcity/internal/extract/lexicon"
)

var (
	// headerRuleRe matches a Markdown heading of level 1-3 whose text is
	// 3-40 characters and does not itself start with a list marker.
	headerRuleRe = regexp.MustCompile(`(?m)^#{1,3}\s+(.{1,80})$`)

	boldConceptRe = regexp.MustCompile(`\*\*([^*\n]{1,60})\*\*`)
	backtickRe    = regexp.MustCompile("`([^`\\s]{1,50})`")
	urlRuleRe     = regexp.MustCompile(`https?://[^\s<>\]]+`)
	tickerRunRe   = regexp.MustCompile(`\b[A-Z]{2,5}\b`)
	dollarTagRe   = regexp.MustCompile(`\$([A-Z]{2,5})\b`)
	leadingListRe = regexp.MustCompile(`^\s*([-*+]|\d+\.)\s`)
	trailingPunct = regexp.MustCompile(`[).,;:!?'"` + "`" + `\]>]+$`)
)

// extractHeaders finds Markdown headings (levels 1-3) with 3-40 characters
// of text that does not start with a list marker.
func extractHeaders(paragraph string) []Occurrence {
	var out []Occurrence
	for _, m := range headerRuleRe.FindAllStringSubmatch(paragraph, -1) {
		text := strings.TrimSpace(m[1])
		if leadingListRe.MatchString(text) {
			continue
		}
		if l := len(text); l < 3 || l > 40 {
			continue
		}
		out = append(out, Occurrence{Label: text, Type: TypeHeader})
	}
	return out
}

// extractBoldConcepts finds **bold** spans of 3-40 characters.
func extractBoldConcepts(paragraph string) []Occurrence {
	var out []Occurrence
	for _, m := range boldConceptRe.FindAllStringSubmatch(paragraph, -1) {
		text := strings.TrimSpace(m[1])
		if l := len(text); l < 3 || l > 40 {
			continue
		}
		out = append(out, Occurrence{Label: text, Type: TypeConcept})
	}
	return out
}

// extractBacktickTools finds single-word inline-code spans of 1-50 chars,
// classified as tool aliases.
func extractBacktickTools(paragraph string) []Occurrence {
	var out []Occurrence
	for _, m := range backtickRe.FindAllStringSubmatch(paragraph, -1) {
		text := strings.TrimSpace(m[1])
		if text == "" || strings.ContainsAny(text, " \t\n") {
			continue
		}
		if l := len(text); l < 1 || l > 50 {
			continue
		}
		out = append(out, Occurrence{Label: text, Type: TypeTool})
	}
	return out
}

// extractURLs finds http(s) URLs, trimming trailing punctuation that is
// almost certainly sentence punctuation rather than part of the link.
func extractURLs(paragraph string) []Occurrence {
	var out []Occurrence
	for _, raw := range urlRuleRe.FindAllString(paragraph, -1) {
		u := trailingPunct.ReplaceAllString(raw, "")
		if u == "" {
			continue
		}
		out = append(out, Occurrence{Label: u, Type: TypeURL})
	}
	return out
}

// extractTools matches the closed tool/technology lexicon case-insensitively
// anywhere in the paragraph.
func extractTools(paragraph string, tools *lexicon.Matcher) []Occurrence {
	var out []Occurrence
	for _, surface := range tools.FindAll(paragraph) {
		out = append(out, Occurrence{Label: surface, Type: TypeTool})
	}
	return out
}

// extractProjects matches the closed multi-word project-name lexicon.
func extractProjects(paragraph string, projects *lexicon.Matcher) []Occurrence {
	var out []Occurrence
	for _, surface := range projects.FindAll(paragraph) {
		out = append(out, Occurrence{Label: surface, Type: TypeProject})
	}
	return out
}

// extractTickers implements the ticker rule: any 2-5 letter
// uppercase run that is whitelisted, or that is not stop-listed and also
// appears as $RUN anywhere in the containing document.
func extractTickers(paragraph, document string, whitelist, stoplist *lexicon.Matcher) []Occurrence {
	dollarTagged := make(map[string]bool)
	for _, m := range dollarTagRe.FindAllStringSubmatch(document, -1) {
		dollarTagged[m[1]] = true
	}

	seen := make(map[string]bool)
	var out []Occurrence
	for _, run := range tickerRunRe.FindAllString(paragraph, -1) {
		if seen[run] {
			continue
		}
		whitelisted := whitelist.Contains(run)
		if !whitelisted {
			if stoplist.Contains(run) {
				continue
			}
			if !dollarTagged[run] {
				continue
			}
		}
		seen[run] = true
		out = append(out, Occurrence{Label: run, Type: TypeTicker})
	}
	return out
}

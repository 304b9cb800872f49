package extract

import (
	"regexp"
	"strings"
)

// decisionMarkerRe matches a fixed set of decision-marker phrases,
// anchored at a sentence-ish boundary so "I will" and "We decided to" both
// match but mid-word substrings like "skill" do not. The marker itself
// (group 1) is not part of the decision label; only the remainder (group
// 2) is, stopped before a period, newline, or inline-code span so a
// trailing tool reference like "using `yahoo-finance`" is left for the
// backtick-tool extractor instead of folded into the decision text.
var decisionMarkerRe = regexp.MustCompile(
	"(?i)\\b(decided(?: to)?|chose(?: to)?|will|going to|committed to|settled on)\\b\\s*([^`.\n]*)",
)

// usingClauseRe trims a trailing "using X" clause off a decision remainder,
// since the tool it names is already captured separately.
var usingClauseRe = regexp.MustCompile(`(?i)\s+using\b.*$`)

var completedTaskRe = regexp.MustCompile(`(?m)^\s*[-*+]\s+\[[xX]\]\s+(.+)$`)

// extractDecisions finds completed task-list items and decision-marker
// remainders, trimmed to a 6-99 character window.
func extractDecisions(paragraph string) []Occurrence {
	var out []Occurrence

	for _, m := range completedTaskRe.FindAllStringSubmatch(paragraph, -1) {
		if text, ok := clampDecision(m[1]); ok {
			out = append(out, Occurrence{Label: text, Type: TypeDecision})
		}
	}

	for _, line := range strings.Split(paragraph, "\n") {
		if completedTaskRe.MatchString(line) {
			continue
		}
		m := decisionMarkerRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		remainder := usingClauseRe.ReplaceAllString(m[2], "")
		if text, ok := clampDecision(remainder); ok {
			out = append(out, Occurrence{Label: text, Type: TypeDecision})
		}
	}

	return out
}

func clampDecision(text string) (string, bool) {
	text = strings.TrimSpace(text)
	text = strings.Trim(text, "*_`")
	if l := len(text); l < 6 || l > 99 {
		return "", false
	}
	return text, true
}

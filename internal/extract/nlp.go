package extract

import (
	"strings"

	"github.com/jdkato/prose/v2"
	"github.com/orsinium-labs/stopwords"
)

// personOrgStop filters articles and auxiliary verbs that the NER pass
// otherwise surfaces as spurious single-token entities. Grounded on
// GoKitt's pkg/scanner/discovery/registry.go, which used the same library
// as a secondary check behind a custom stopword map.
var personOrgStop = stopwords.MustGet("en")

// extractPeopleOrgs runs prose/v2's statistical NER over Markdown-stripped
// prose and returns PERSON and ORGANIZATION spans.
func extractPeopleOrgs(plainText string) []Occurrence {
	plainText = strings.TrimSpace(plainText)
	if plainText == "" {
		return nil
	}

	doc, err := prose.NewDocument(plainText)
	if err != nil {
		return nil
	}

	var out []Occurrence
	seen := make(map[string]bool)
	for _, ent := range doc.Entities() {
		label := entityType(ent.Label)
		if label == "" {
			continue
		}
		text := strings.TrimSpace(ent.Text)
		if text == "" || isStopSpan(text) {
			continue
		}
		key := string(label) + ":" + strings.ToLower(text)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, Occurrence{Label: text, Type: label})
	}
	return out
}

func entityType(proseLabel string) EntityType {
	switch proseLabel {
	case "PERSON":
		return TypePerson
	case "ORGANIZATION":
		return TypeOrganization
	default:
		return ""
	}
}

// isStopSpan drops spans that are entirely articles/auxiliary verbs, or a
// single stopword token.
func isStopSpan(text string) bool {
	words := strings.Fields(text)
	if len(words) == 0 {
		return true
	}
	allStop := true
	for _, w := range words {
		if !personOrgStop.Contains(w) {
			allStop = false
			break
		}
	}
	return allStop
}

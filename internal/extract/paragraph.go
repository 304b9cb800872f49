package extract

import (
	"regexp"
	"strings"
)

var headingLineRe = regexp.MustCompile(`^#{1,3}\s`)

// splitParagraphs segments a document into paragraphs: split on blank-line
// runs, and on a newline immediately preceding a Markdown heading line
// (levels 1-3). Paragraphs with fewer than 11 characters of payload (after
// trimming) are discarded.
func splitParagraphs(content string) []string {
	lines := strings.Split(content, "\n")

	var paragraphs []string
	var cur []string

	flush := func() {
		if len(cur) == 0 {
			return
		}
		text := strings.TrimSpace(strings.Join(cur, "\n"))
		if len(text) >= 11 {
			paragraphs = append(paragraphs, text)
		}
		cur = cur[:0]
	}

	for _, line := range lines {
		trimmed := strings.TrimRight(line, " \t\r")
		if strings.TrimSpace(trimmed) == "" {
			flush()
			continue
		}
		if headingLineRe.MatchString(trimmed) && len(cur) > 0 {
			flush()
		}
		cur = append(cur, trimmed)
	}
	flush()

	return paragraphs
}

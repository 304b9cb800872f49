package extract

import "regexp"

// The person/organization NLP pass runs after Markdown structure is
// stripped: headers, code fences, code spans, link targets, list markers,
// emphasis, and table glyphs are removed so the NLP tagger sees prose, not
// markup.
var (
	codeFenceRe  = regexp.MustCompile("(?s)```.*?```")
	codeSpanRe   = regexp.MustCompile("`[^`]*`")
	headingRe    = regexp.MustCompile(`(?m)^#{1,6}\s*`)
	linkRe       = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	bareURLRe    = regexp.MustCompile(`https?://\S+`)
	listMarkerRe = regexp.MustCompile(`(?m)^\s*([-*+]|\d+\.)\s+`)
	taskItemRe   = regexp.MustCompile(`(?m)^\s*[-*+]\s+\[[ xX]\]\s+`)
	emphasisRe   = regexp.MustCompile(`\*\*\*|\*\*|\*|___|__|_`)
	tableGlyphRe = regexp.MustCompile(`\|`)
)

// stripMarkdown removes Markdown structure, leaving plain prose suitable
// for the proper-noun NLP pass.
func stripMarkdown(text string) string {
	out := codeFenceRe.ReplaceAllString(text, " ")
	out = codeSpanRe.ReplaceAllString(out, " ")
	out = taskItemRe.ReplaceAllString(out, "")
	out = listMarkerRe.ReplaceAllString(out, "")
	out = headingRe.ReplaceAllString(out, "")
	out = linkRe.ReplaceAllString(out, "$1")
	out = bareURLRe.ReplaceAllString(out, " ")
	out = emphasisRe.ReplaceAllString(out, "")
	out = tableGlyphRe.ReplaceAllString(out, " ")
	return out
}

package directive

import (
	"regexp"
	"strings"
)

var excessNewlines = regexp.MustCompile(`\n([ \t\r]*\n){2,}`)

// Sanitize removes every directive from text, cutting each one where Parse
// stops reading it, so prose after a directive survives. Runs of blank lines
// left behind are collapsed and the result trimmed. Text without markers is
// returned as is.
func Sanitize(text string) string {
	markers := markerPattern.FindAllStringIndex(text, -1)
	if len(markers) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	keep := 0
	for i, m := range markers {
		end := len(text)
		if i+1 < len(markers) {
			end = markers[i+1][0]
		}
		end = m[1] + sectionEnd(text[m[1]:end])
		b.WriteString(text[keep:m[0]])
		keep = end
	}
	b.WriteString(text[keep:])

	return strings.TrimSpace(excessNewlines.ReplaceAllString(b.String(), "\n\n"))
}

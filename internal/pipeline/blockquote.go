package pipeline

import (
	"regexp"
	"strings"
)

// blockquotePattern captures the text after a single leading >.
// Nested >> markers are not special: the inner > stays literal.
var blockquotePattern = regexp.MustCompile(`^>\s*(.*)`)

var blockquoteScanner = blockScanner{
	match: func(line string) (string, bool) {
		m := blockquotePattern.FindStringSubmatch(line)
		if m == nil {
			return "", false
		}
		return m[1], true
	},
	render: func(run []string) string {
		return "<blockquote>" + strings.Join(run, "<br>") + "</blockquote>"
	},
}

// blockquotePass merges runs of > lines into one blockquote each.
func blockquotePass(text string) string {
	if !strings.Contains(text, ">") {
		return text
	}
	return blockquoteScanner.scan(text)
}

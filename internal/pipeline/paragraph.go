package pipeline

import (
	"regexp"
	"strings"
)

var (
	// blankLineRunPattern matches one or more blank lines, including lines
	// that hold only whitespace.
	blankLineRunPattern = regexp.MustCompile(`\n\s*\n`)

	// blockTagPattern matches chunks that already start with a block element.
	// Images count as block-level, so a chunk led by an image is left bare.
	blockTagPattern = regexp.MustCompile(`^<(h[1-6]|ul|ol|li|pre|blockquote|hr|table|img)[\s>]`)
)

// paragraphPass wraps every blank-line-delimited chunk that is not already a
// block element in <p>. Chunks are trimmed and separated by a single newline.
func paragraphPass(text string) string {
	chunks := blankLineRunPattern.Split(text, -1)

	var sb strings.Builder
	for _, chunk := range chunks {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		if isBlockChunk(chunk) {
			sb.WriteString(chunk)
		} else {
			sb.WriteString("<p>" + chunk + "</p>")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// isBlockChunk reports whether chunk must not be wrapped in a paragraph.
func isBlockChunk(chunk string) bool {
	return isBlockPlaceholder(chunk) || blockTagPattern.MatchString(chunk)
}

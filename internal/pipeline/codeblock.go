package pipeline

import (
	"regexp"
	"strings"
)

// fence delimits fenced code blocks.
const fence = "```"

// fenceOpenPattern matches an opening fence at column 0 with an optional language tag.
var fenceOpenPattern = regexp.MustCompile("^```(\\w*)[ \\t]*$")

// fencedCodePass renders every closed fenced block and replaces it with a
// block placeholder. An opening fence without a matching close is left as text.
func fencedCodePass(text string) string {
	if !strings.Contains(text, fence) {
		return text
	}

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))

	for i := 0; i < len(lines); i++ {
		m := fenceOpenPattern.FindStringSubmatch(lines[i])
		if m == nil {
			out = append(out, lines[i])
			continue
		}

		end := closingFence(lines, i+1)
		if end < 0 {
			out = append(out, lines[i])
			continue
		}

		out = append(out, isolate(stashBlock(renderCodeBlock(m[1], lines[i+1:end]))))
		i = end
	}

	return strings.Join(out, "\n")
}

// closingFence returns the index of the first line at or after start whose
// trimmed content is exactly a fence, or -1.
func closingFence(lines []string, start int) int {
	for i := start; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == fence {
			return i
		}
	}
	return -1
}

// renderCodeBlock escapes the block body and wraps it in pre/code.
// Leading and trailing blank lines are dropped.
func renderCodeBlock(language string, body []string) string {
	for len(body) > 0 && strings.TrimSpace(body[0]) == "" {
		body = body[1:]
	}
	for len(body) > 0 && strings.TrimSpace(body[len(body)-1]) == "" {
		body = body[:len(body)-1]
	}

	code := escapeHTML(strings.Join(body, "\n"))
	if language == "" {
		return "<pre><code>" + code + "</code></pre>"
	}
	return `<pre><code class="language-` + language + `">` + code + "</code></pre>"
}

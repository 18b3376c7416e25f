package pipeline

import (
	"regexp"
	"strings"
)

var (
	// annotationParagraphPattern matches a paragraph holding nothing but one
	// annotation tag.
	annotationParagraphPattern = regexp.MustCompile(`<p>(\[(?:FUNCTION_CALL|CODE_SUGGESTION|THOUGHT):[^\]]*\])</p>`)

	functionCallPattern   = regexp.MustCompile(`\[FUNCTION_CALL:\s*(.*?)\]`)
	codeSuggestionPattern = regexp.MustCompile(`\[CODE_SUGGESTION:\s*(.*?)\]`)
	thoughtPattern        = regexp.MustCompile(`(?s)\[THOUGHT:\s*(.*?)\]`)
)

// Annotation output templates.
const (
	functionCallHTML   = `<div class="function-call"><strong>Function Call:</strong> ${1}</div>`
	codeSuggestionHTML = `<div class="code-suggestion"><strong>Code Suggestion:</strong> ${1}</div>`
	thoughtHTML        = `<details class="thought-block"><summary>Thinking Process</summary><p>${1}</p></details>`
)

// ParseLLMSyntax replaces the bracket annotations [FUNCTION_CALL: ...],
// [CODE_SUGGESTION: ...] and [THOUGHT: ...] in html with callout and
// disclosure elements. Tag bodies are inserted unescaped. A THOUGHT body may
// span lines; the other two end at the first ] on the same line.
func ParseLLMSyntax(html string) string {
	if !strings.Contains(html, "[") {
		return html
	}
	html = annotationParagraphPattern.ReplaceAllString(html, "${1}")
	html = functionCallPattern.ReplaceAllString(html, functionCallHTML)
	html = codeSuggestionPattern.ReplaceAllString(html, codeSuggestionHTML)
	html = thoughtPattern.ReplaceAllString(html, thoughtHTML)
	return html
}

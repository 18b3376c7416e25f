package llmmd

import "github.com/alnah/go-llmmd/internal/pipeline"

// Parse converts Markdown to an HTML fragment with the pass pipeline.
// It never fails: malformed constructs render as text. Empty or
// whitespace-only input returns "". Raw HTML in markdown is passed through
// unescaped outside code and tables, so do not feed it untrusted input
// without sanitizing the result.
func Parse(markdown string) string {
	return pipeline.Parse(markdown)
}

// ParseLLMSyntax rewrites [FUNCTION_CALL: ...], [CODE_SUGGESTION: ...] and
// [THOUGHT: ...] annotations in an HTML fragment, usually the output of
// Parse, into callout and disclosure elements.
func ParseLLMSyntax(html string) string {
	return pipeline.ParseLLMSyntax(html)
}

// Passes returns the names of the pass pipeline stages, in execution order.
func Passes() []string {
	return pipeline.NewParser(pipeline.DefaultMaxListDepth).Passes()
}

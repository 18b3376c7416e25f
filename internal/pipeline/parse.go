package pipeline

import "strings"

// Pass is one named text transformation of the pipeline.
type Pass struct {
	Name  string
	Apply func(string) string
}

// Parser converts the Markdown dialect to an HTML fragment by running its
// passes in order. The zero value is not usable; use NewParser.
type Parser struct {
	passes []Pass
}

// NewParser returns a parser whose list pass nests at most maxListDepth
// levels. Values below 1 select DefaultMaxListDepth.
func NewParser(maxListDepth int) *Parser {
	if maxListDepth < 1 {
		maxListDepth = DefaultMaxListDepth
	}
	return &Parser{
		passes: []Pass{
			{Name: "fenced-code", Apply: fencedCodePass},
			{Name: "header", Apply: headerPass},
			{Name: "horizontal-rule", Apply: horizontalRulePass},
			{Name: "inline-code", Apply: inlineCodePass},
			{Name: "emphasis", Apply: emphasisPass},
			{Name: "image", Apply: imagePass},
			{Name: "link", Apply: linkPass},
			{Name: "table", Apply: tablePass},
			{Name: "blockquote", Apply: blockquotePass},
			{Name: "list", Apply: listPass(maxListDepth)},
			{Name: "paragraph", Apply: paragraphPass},
			{Name: "restore", Apply: restorePlaceholders},
		},
	}
}

// Passes returns the pass names in execution order.
func (p *Parser) Passes() []string {
	names := make([]string, len(p.passes))
	for i, pass := range p.passes {
		names[i] = pass.Name
	}
	return names
}

// Parse converts markdown to an HTML fragment. It never fails: syntax that
// does not match any pass is emitted as literal text. Empty or
// whitespace-only input yields "". Private Use characters U+E000 to U+E003
// in markdown are replaced with U+FFFD.
func (p *Parser) Parse(markdown string) string {
	text := neutralizeMarkers(normalizeLineEndings(markdown))
	if strings.TrimSpace(text) == "" {
		return ""
	}
	for _, pass := range p.passes {
		text = pass.Apply(text)
	}
	return text
}

var defaultParser = NewParser(DefaultMaxListDepth)

// Parse converts markdown with the default parser.
func Parse(markdown string) string {
	return defaultParser.Parse(markdown)
}

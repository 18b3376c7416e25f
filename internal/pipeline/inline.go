package pipeline

import (
	"regexp"
	"strings"
)

// Inline patterns. All are non-greedy and never cross a line break.
// Underscore emphasis must start and end on a word boundary so snake_case
// identifiers and tag names such as FUNCTION_CALL are left alone.
var (
	inlineCodePattern       = regexp.MustCompile("`(.*?)`")
	boldStarPattern         = regexp.MustCompile(`\*\*(.*?)\*\*`)
	boldUnderscorePattern   = regexp.MustCompile(`\b__(.*?)__\b`)
	italicStarPattern       = regexp.MustCompile(`\*(.*?)\*`)
	italicUnderscorePattern = regexp.MustCompile(`\b_(.*?)_\b`)
	imagePattern            = regexp.MustCompile(`!\[([^\]]*)\]\(([^)\s]+)(?:\s+"([^"]*)")?\)`)
	linkPattern             = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
)

// inlineCodePass renders `code` spans and protects them from the emphasis,
// image, and link passes. The span body is inserted as-is, not escaped.
func inlineCodePass(text string) string {
	if !strings.Contains(text, "`") {
		return text
	}
	return inlineCodePattern.ReplaceAllStringFunc(text, func(span string) string {
		body := span[1 : len(span)-1]
		return stashInline("<code>" + body + "</code>")
	})
}

// emphasisPass substitutes bold before italic so ** is never read as two *.
func emphasisPass(text string) string {
	if !strings.ContainsAny(text, "*_") {
		return text
	}
	text = boldStarPattern.ReplaceAllString(text, "<strong>${1}</strong>")
	text = boldUnderscorePattern.ReplaceAllString(text, "<strong>${1}</strong>")
	text = italicStarPattern.ReplaceAllString(text, "<em>${1}</em>")
	text = italicUnderscorePattern.ReplaceAllString(text, "<em>${1}</em>")
	return text
}

// imagePass converts ![alt](src "title") to <img>. Attribute values are
// escaped; the title attribute is omitted when absent or empty.
func imagePass(text string) string {
	if !strings.Contains(text, "![") {
		return text
	}
	return imagePattern.ReplaceAllStringFunc(text, func(match string) string {
		m := imagePattern.FindStringSubmatch(match)
		alt, src, title := m[1], m[2], m[3]

		var sb strings.Builder
		sb.WriteString(`<img src="`)
		sb.WriteString(escapeHTML(src))
		sb.WriteString(`" alt="`)
		sb.WriteString(escapeHTML(alt))
		if title != "" {
			sb.WriteString(`" title="`)
			sb.WriteString(escapeHTML(title))
		}
		sb.WriteString(`">`)
		return sb.String()
	})
}

// linkPass converts [text](href) to <a>. Neither text nor href is escaped.
func linkPass(text string) string {
	if !strings.Contains(text, "](") {
		return text
	}
	return linkPattern.ReplaceAllString(text, `<a href="${2}">${1}</a>`)
}

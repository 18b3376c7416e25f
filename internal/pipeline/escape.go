package pipeline

import (
	"encoding/base64"
	"regexp"
	"strings"

	"go4.org/bytereplacer"
)

// htmlEscaper escapes the five HTML special characters.
var htmlEscaper = bytereplacer.New(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// escapeHTML escapes text for use in element bodies and attribute values.
func escapeHTML(s string) string {
	if s == "" {
		return s
	}
	return string(htmlEscaper.Replace([]byte(s)))
}

// Placeholders use Unicode Private Use Area characters around the base64 of
// already-rendered HTML. The base64 alphabet contains none of the Markdown
// markers the passes look for, so placeholders travel through every pass
// unchanged until restorePlaceholders swaps the HTML back in.
const (
	blockOpen   = "\uE000" // U+E000: block placeholder start
	blockClose  = "\uE001" // U+E001: block placeholder end
	inlineOpen  = "\uE002" // U+E002: inline placeholder start
	inlineClose = "\uE003" // U+E003: inline placeholder end
)

// markerNeutralizer replaces placeholder delimiters found in source text with
// U+FFFD so only the passes can create placeholders.
var markerNeutralizer = bytereplacer.New(
	blockOpen, "\uFFFD",
	blockClose, "\uFFFD",
	inlineOpen, "\uFFFD",
	inlineClose, "\uFFFD",
)

// neutralizeMarkers replaces placeholder delimiters in source text.
func neutralizeMarkers(s string) string {
	if !strings.ContainsAny(s, blockOpen+blockClose+inlineOpen+inlineClose) {
		return s
	}
	return string(markerNeutralizer.Replace([]byte(s)))
}

var placeholderPattern = regexp.MustCompile(`[\x{E000}\x{E002}]([A-Za-z0-9+/=]*)[\x{E001}\x{E003}]`)

// stashBlock returns a block-level placeholder for rendered HTML.
func stashBlock(html string) string {
	return blockOpen + base64.StdEncoding.EncodeToString([]byte(html)) + blockClose
}

// stashInline returns an inline placeholder for rendered HTML.
func stashInline(html string) string {
	return inlineOpen + base64.StdEncoding.EncodeToString([]byte(html)) + inlineClose
}

// isBlockPlaceholder reports whether s starts with a block placeholder.
func isBlockPlaceholder(s string) bool {
	return strings.HasPrefix(s, blockOpen)
}

// restorePlaceholders replaces every placeholder with the HTML it carries.
// Malformed placeholders are left as they are.
func restorePlaceholders(text string) string {
	if !strings.ContainsAny(text, blockOpen+inlineOpen) {
		return text
	}
	return placeholderPattern.ReplaceAllStringFunc(text, func(match string) string {
		sub := placeholderPattern.FindStringSubmatch(match)
		decoded, err := base64.StdEncoding.DecodeString(sub[1])
		if err != nil {
			return match
		}
		return string(decoded)
	})
}

// isolate surrounds a rendered block with blank lines so it forms its own
// paragraph chunk.
func isolate(block string) string {
	return "\n" + block + "\n"
}

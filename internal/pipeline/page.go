package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"html/template"
	"path/filepath"
	"regexp"
	"strings"
)

// ErrPageRender indicates the page template could not be parsed or executed.
var ErrPageRender = errors.New("page template rendering failed")

// DefaultTitle is used when no better title can be found.
const DefaultTitle = "Document"

// DefaultLang is the page language when none is configured.
const DefaultLang = "en"

// PageData holds the values the page template renders.
type PageData struct {
	Title string
	Lang  string
	Year  int
	Body  template.HTML
}

// PageRenderer wraps HTML fragments in a complete HTML5 document.
type PageRenderer struct {
	tmpl *template.Template
}

// NewPageRenderer creates a PageRenderer from template content.
// Returns error if the template cannot be parsed.
func NewPageRenderer(tmplContent string) (*PageRenderer, error) {
	tmpl, err := template.New("page").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing page template: %v", ErrPageRender, err)
	}
	return &PageRenderer{tmpl: tmpl}, nil
}

// Render executes the page template with data.
// An empty title or language falls back to DefaultTitle and DefaultLang.
func (r *PageRenderer) Render(ctx context.Context, data PageData) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if data.Title == "" {
		data.Title = DefaultTitle
	}
	if data.Lang == "" {
		data.Lang = DefaultLang
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageRender, err)
	}
	return buf.String(), nil
}

// firstHeadingPattern matches the first level-1 ATX heading.
var firstHeadingPattern = regexp.MustCompile(`(?m)^#[ \t]+(.+?)[ \t#]*$`)

// htmlTagPattern matches HTML tags for stripping from heading text.
var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// ResolveTitle picks the page title: explicit, then the first # heading of
// markdown, then the base name of sourceName without extension, then
// DefaultTitle.
func ResolveTitle(explicit, markdown, sourceName string) string {
	if t := strings.TrimSpace(explicit); t != "" {
		return t
	}
	if t := ExtractTitle(markdown); t != "" {
		return t
	}
	if sourceName != "" && sourceName != "-" {
		base := filepath.Base(sourceName)
		if name := strings.TrimSuffix(base, filepath.Ext(base)); name != "" && name != "." {
			return name
		}
	}
	return DefaultTitle
}

// ExtractTitle returns the plain text of the first # heading in markdown,
// or "" when there is none. Inline tags are stripped and entities decoded.
func ExtractTitle(markdown string) string {
	m := firstHeadingPattern.FindStringSubmatch(normalizeLineEndings(markdown))
	if m == nil {
		return ""
	}
	return stripHTMLTags(m[1])
}

// stripHTMLTags removes HTML tags from a string, decodes HTML entities,
// and trims whitespace.
func stripHTMLTags(s string) string {
	s = htmlTagPattern.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	return strings.TrimSpace(s)
}

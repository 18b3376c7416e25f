package pipeline

import (
	"html"
	"regexp"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultHighlightStyle is the chroma style used when none is configured.
const DefaultHighlightStyle = "github"

// codeBlockPattern matches a rendered fenced block with a language class.
// Captures: 1=language, 2=escaped body
var codeBlockPattern = regexp.MustCompile(`(?s)<pre><code class="language-([\w+#-]+)">(.*?)</code></pre>`)

// Highlighter re-renders language-tagged code blocks with chroma token
// classes. It is safe for concurrent use.
type Highlighter struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// NewHighlighter creates a Highlighter for the named chroma style.
// Unknown style names select chroma's fallback style.
func NewHighlighter(styleName string) *Highlighter {
	if styleName == "" {
		styleName = DefaultHighlightStyle
	}
	return &Highlighter{
		style:     styles.Get(styleName),
		formatter: chromahtml.New(chromahtml.WithClasses(true)),
	}
}

// Highlight replaces every <pre><code class="language-X"> block in fragment
// with chroma output. Blocks whose language has no lexer, or that fail to
// tokenise, are left unchanged.
func (h *Highlighter) Highlight(fragment string) string {
	if !strings.Contains(fragment, `<code class="language-`) {
		return fragment
	}
	return codeBlockPattern.ReplaceAllStringFunc(fragment, func(block string) string {
		m := codeBlockPattern.FindStringSubmatch(block)
		out, ok := h.render(m[1], html.UnescapeString(m[2]))
		if !ok {
			return block
		}
		return out
	})
}

// render tokenises code with the lexer for language.
func (h *Highlighter) render(language, code string) (string, bool) {
	lexer := lexers.Get(language)
	if lexer == nil {
		return "", false
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", false
	}

	var sb strings.Builder
	if err := h.formatter.Format(&sb, h.style, iterator); err != nil {
		return "", false
	}
	return sb.String(), true
}

// CSS returns the stylesheet for the highlighter's token classes.
func (h *Highlighter) CSS() string {
	var sb strings.Builder
	if err := h.formatter.WriteCSS(&sb, h.style); err != nil {
		return ""
	}
	return sb.String()
}

// HighlightCSS returns the token class stylesheet for the named chroma style.
func HighlightCSS(styleName string) string {
	return NewHighlighter(styleName).CSS()
}

package llmmd

import (
	"context"
	"fmt"
	"html/template"
	"os"
	"time"

	"github.com/alnah/go-llmmd/internal/assets"
	"github.com/alnah/go-llmmd/internal/fileutil"
	"github.com/alnah/go-llmmd/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.SourcePreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.PassConverter)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.CSSInjector          = (*pipeline.CSSInjection)(nil)
	_ AssetLoader                   = (*assetLoaderAdapter)(nil)
)

// Converter orchestrates the Markdown to HTML conversion pipeline.
// Create with NewConverter(), use Convert() for conversion. A Converter holds
// no per-call state and is safe for concurrent use.
type Converter struct {
	cfg               converterConfig
	assetLoader       AssetLoader
	publicAssetLoader AssetLoader // from WithAssetLoader
	preprocessor      pipeline.MarkdownPreprocessor
	htmlConverter     pipeline.HTMLConverter
	highlighter       *pipeline.Highlighter // pass engine only
	cssInjector       pipeline.CSSInjector
	pageRenderer      *pipeline.PageRenderer
	resolvedStyle     string
	highlightCSS      string
}

// NewConverter creates a Converter with default configuration: pass engine,
// annotations on, no highlighting, embedded assets.
// Returns error if an option value is invalid or asset loading fails.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			engine:       EnginePasses,
			timeout:      defaultTimeout,
			maxInputSize: defaultMaxInputSize,
			maxListDepth: pipeline.DefaultMaxListDepth,
			annotations:  true,
			lang:         pipeline.DefaultLang,
			now:          time.Now,
		},
		preprocessor: &pipeline.SourcePreprocessor{},
		cssInjector:  &pipeline.CSSInjection{},
	}

	for _, opt := range opts {
		opt(c)
	}

	engine, err := ParseEngine(string(c.cfg.engine))
	if err != nil {
		return nil, err
	}
	c.cfg.engine = engine

	if c.cfg.maxListDepth < 1 || c.cfg.maxListDepth > MaxListDepthLimit {
		return nil, fmt.Errorf("%w: %d (must be between 1 and %d)", ErrInvalidListDepth, c.cfg.maxListDepth, MaxListDepthLimit)
	}

	if c.cfg.highlight && c.cfg.highlightStyle == "" {
		c.cfg.highlightStyle = pipeline.DefaultHighlightStyle
	}

	if err := c.resolveAssetLoader(); err != nil {
		return nil, err
	}

	// Engine, if not injected (e.g., by tests)
	if c.htmlConverter == nil {
		c.htmlConverter = c.newHTMLConverter()
	}
	if c.cfg.highlight {
		if c.cfg.engine == EnginePasses {
			c.highlighter = pipeline.NewHighlighter(c.cfg.highlightStyle)
			c.highlightCSS = c.highlighter.CSS()
		} else {
			c.highlightCSS = pipeline.HighlightCSS(c.cfg.highlightStyle)
		}
	}

	if err := c.resolveStyle(); err != nil {
		return nil, err
	}

	tmpl, err := c.assetLoader.LoadTemplate(assets.PageTemplateName)
	if err != nil {
		return nil, fmt.Errorf("loading page template: %w", err)
	}
	c.pageRenderer, err = pipeline.NewPageRenderer(tmpl)
	if err != nil {
		return nil, fmt.Errorf("initializing page renderer: %w", err)
	}

	return c, nil
}

// resolveAssetLoader picks the loader: WithAssetLoader, then WithAssetPath,
// then embedded assets only.
func (c *Converter) resolveAssetLoader() error {
	if c.publicAssetLoader != nil {
		c.assetLoader = c.publicAssetLoader
		return nil
	}
	loader, err := NewAssetLoader(c.cfg.assetPath)
	if err != nil {
		return err
	}
	c.assetLoader = loader
	return nil
}

// newHTMLConverter builds the converter for the configured engine.
func (c *Converter) newHTMLConverter() pipeline.HTMLConverter {
	if c.cfg.engine == EngineGoldmark {
		var opts []pipeline.GoldmarkOption
		if c.cfg.highlight {
			opts = append(opts, pipeline.WithGoldmarkHighlighting(c.cfg.highlightStyle))
		}
		return pipeline.NewGoldmarkConverter(opts...)
	}
	return pipeline.NewPassConverter(c.cfg.maxListDepth)
}

// resolveStyle resolves the style input (name or path) to CSS content.
// An empty style selects DefaultStyle.
func (c *Converter) resolveStyle() error {
	input := c.cfg.styleName
	if input == "" {
		input = DefaultStyle
	}

	// File path? (contains / or \)
	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		c.resolvedStyle = string(content)
		return nil
	}

	css, err := c.assetLoader.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, err)
	}
	c.resolvedStyle = css
	return nil
}

// Convert runs the pipeline and returns the HTML fragment, or a complete page
// when input.Standalone is set. Empty Markdown yields an empty fragment.
// The context is used for cancellation; the converter timeout bounds the call.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if size := int64(len(input.Markdown)); size > c.cfg.maxInputSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, size, c.cfg.maxInputSize)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.timeout)
	defer cancel()

	mdContent := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	htmlContent, err := c.htmlConverter.ToHTML(ctx, mdContent)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	if c.cfg.annotations {
		htmlContent = pipeline.ParseLLMSyntax(htmlContent)
	}

	if c.highlighter != nil {
		htmlContent = c.highlighter.Highlight(htmlContent)
	}

	if input.BaseURL != "" {
		htmlContent, err = pipeline.RewriteRelativeLinks(htmlContent, input.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("rewriting relative links: %w", err)
		}
	}

	if !input.Standalone {
		return &ConvertResult{HTML: []byte(htmlContent)}, nil
	}

	title := pipeline.ResolveTitle(input.Title, mdContent, input.SourceName)
	page, err := c.pageRenderer.Render(ctx, pipeline.PageData{
		Title: title,
		Lang:  c.cfg.lang,
		Year:  c.cfg.now().Year(),
		Body:  template.HTML(htmlContent), // #nosec G203 -- converter output, raw HTML passthrough is documented
	})
	if err != nil {
		return nil, fmt.Errorf("rendering page: %w", err)
	}

	// Order matters: style first (base), highlight next, caller CSS last (can override)
	css := pipeline.JoinCSS(c.resolvedStyle, c.highlightCSS, input.CSS)
	page = c.cssInjector.InjectCSS(ctx, page, css)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	return &ConvertResult{HTML: []byte(page), Title: title}, nil
}

package llmmd

import (
	"fmt"
	"time"
)

// Engine selects the Markdown to HTML implementation.
type Engine string

// Engine constants.
const (
	// EnginePasses is the ordered regex pass pipeline. Raw HTML in the
	// source passes through untouched.
	EnginePasses Engine = "passes"

	// EngineGoldmark is CommonMark + GFM via goldmark. Raw HTML is dropped.
	EngineGoldmark Engine = "goldmark"
)

// Engines returns the accepted engine names.
func Engines() []string {
	return []string{string(EnginePasses), string(EngineGoldmark)}
}

// ParseEngine maps a name to an Engine. An empty name selects EnginePasses.
func ParseEngine(name string) (Engine, error) {
	switch Engine(name) {
	case "", EnginePasses:
		return EnginePasses, nil
	case EngineGoldmark:
		return EngineGoldmark, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidEngine, name)
	}
}

// Input contains conversion parameters.
type Input struct {
	Markdown   string // Markdown content (may be empty)
	SourceName string // File name for title fallback (optional)
	Standalone bool   // Wrap the fragment in a full HTML page
	Title      string // Page title (optional, auto: H1 → file name)
	CSS        string // Extra CSS appended after the style (standalone only)
	BaseURL    string // Resolve relative links and images against this URL (optional)
}

// ConvertResult contains the output of a successful conversion.
type ConvertResult struct {
	HTML  []byte // HTML fragment, or full page when Input.Standalone is set
	Title string // Resolved page title (empty for fragments)
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	engine         Engine
	timeout        time.Duration
	maxInputSize   int64
	maxListDepth   int
	annotations    bool
	highlight      bool
	highlightStyle string
	assetPath      string
	styleName      string
	lang           string
	now            func() time.Time
}

// Converter defaults.
const (
	defaultTimeout      = 30 * time.Second
	defaultMaxInputSize = 10 << 20 // 10 MiB
)

// MaxListDepthLimit is the largest depth accepted by WithMaxListDepth.
const MaxListDepthLimit = 64

// WithEngine selects the conversion engine. Invalid names are reported by
// NewConverter.
func WithEngine(e Engine) Option {
	return func(c *Converter) {
		c.cfg.engine = e
	}
}

// WithTimeout sets the per-conversion timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("llmmd: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithMaxInputSize sets the largest accepted Markdown input in bytes.
// Panics if n <= 0.
func WithMaxInputSize(n int64) Option {
	if n <= 0 {
		panic("llmmd: WithMaxInputSize must be positive")
	}
	return func(c *Converter) {
		c.cfg.maxInputSize = n
	}
}

// WithMaxListDepth bounds list nesting for the pass engine (1 to
// MaxListDepthLimit). Out-of-range values are reported by NewConverter.
func WithMaxListDepth(depth int) Option {
	return func(c *Converter) {
		c.cfg.maxListDepth = depth
	}
}

// WithHighlighting enables chroma syntax highlighting of fenced code with
// the named style. An empty style selects "github".
func WithHighlighting(style string) Option {
	return func(c *Converter) {
		c.cfg.highlight = true
		c.cfg.highlightStyle = style
	}
}

// WithoutAnnotations disables the [FUNCTION_CALL:], [CODE_SUGGESTION:] and
// [THOUGHT:] annotation pass.
func WithoutAnnotations() Option {
	return func(c *Converter) {
		c.cfg.annotations = false
	}
}

// WithAssetPath sets a directory of custom styles and templates. Files found
// there take precedence over the embedded ones.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}

// WithAssetLoader sets a custom asset loader. Takes precedence over
// WithAssetPath.
func WithAssetLoader(loader AssetLoader) Option {
	return func(c *Converter) {
		c.publicAssetLoader = loader
	}
}

// WithStyle sets the stylesheet used for standalone pages: a style name
// resolved through the asset loader, or a path to a CSS file.
func WithStyle(style string) Option {
	return func(c *Converter) {
		c.cfg.styleName = style
	}
}

// WithLang sets the lang attribute of standalone pages.
func WithLang(lang string) Option {
	return func(c *Converter) {
		c.cfg.lang = lang
	}
}

// WithClock sets the time source for the page footer year.
func WithClock(now func() time.Time) Option {
	return func(c *Converter) {
		if now != nil {
			c.cfg.now = now
		}
	}
}

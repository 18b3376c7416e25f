// Package llmmd converts LLM-flavoured Markdown to HTML.
//
// # Quick Start
//
// For a one-shot fragment, use Parse followed by ParseLLMSyntax:
//
//	html := llmmd.ParseLLMSyntax(llmmd.Parse("# Hello\n\n[THOUGHT: thinking]"))
//
// For pages, limits and alternative engines, create a Converter:
//
//	conv, err := llmmd.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, llmmd.Input{
//	    Markdown:   "# Hello\n\nWorld",
//	    Standalone: true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.html", result.HTML, 0644)
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Markdown preprocessing (byte order mark, line endings)
//  2. Markdown to HTML via the pass pipeline or goldmark
//  3. LLM annotations ([FUNCTION_CALL:], [CODE_SUGGESTION:], [THOUGHT:])
//  4. Syntax highlighting via chroma (optional)
//  5. Relative link rewriting against a base URL (optional)
//  6. Page shell and CSS injection (standalone only)
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := llmmd.NewConverter(
//	    llmmd.WithEngine(llmmd.EngineGoldmark),
//	    llmmd.WithHighlighting("monokai"),
//	    llmmd.WithStyle("dark"),
//	    llmmd.WithAssetPath("/path/to/custom/assets"),
//	)
//
// Per-conversion options are passed via Input:
//
//	result, err := conv.Convert(ctx, llmmd.Input{
//	    Markdown:   content,
//	    SourceName: "notes.md",                   // title fallback
//	    BaseURL:    "https://example.com/docs/",  // for relative links
//	    CSS:        "body { font-size: 14px; }",
//	    Standalone: true,
//	})
//
// # Custom Assets
//
// Override built-in styles and the page template using AssetLoader:
//
//	loader, err := llmmd.NewAssetLoader("/path/to/assets")
//	conv, err := llmmd.NewConverter(llmmd.WithAssetLoader(loader))
//
// Asset directory structure:
//
//	assets/
//	├── styles/
//	│   └── custom.css
//	└── templates/
//	    └── page.html
//
// # Security
//
// The pass engine copies raw HTML and link targets from the source into the
// output, and annotation bodies are not escaped. Use EngineGoldmark, or
// sanitize the result, when rendering untrusted Markdown.
package llmmd

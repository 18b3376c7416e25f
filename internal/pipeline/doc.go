// Package pipeline implements the Markdown-to-HTML conversion pipeline.
//
// The core is an ordered list of text passes, each a pure func(string) string
// whose input is the previous pass's output:
//
//  1. fenced-code: ``` blocks are rendered (escaped, optional language class)
//     and replaced by opaque placeholders so no later pass can touch them
//  2. header: # to ###### lines become h1-h6
//  3. horizontal-rule: ---, ***, ___ lines become <hr>
//  4. inline-code: `spans` are rendered and replaced by inline placeholders
//  5. emphasis: **bold**, __bold__, *italic*, _italic_
//  6. image: ![alt](src "title"), before link (overlapping bracket syntax)
//  7. link: [text](href)
//  8. table: contiguous |...| rows
//  9. blockquote: contiguous > lines
//  10. list: indentation-driven nested lists
//  11. paragraph: blank-line separated chunks wrapped in <p>
//  12. restore: placeholders replaced by their rendered HTML
//
// Block passes surround their output with blank lines so the paragraph pass
// sees every block element as its own chunk.
//
// LLM annotations ([FUNCTION_CALL: ...], [CODE_SUGGESTION: ...], [THOUGHT: ...])
// are substituted by ParseLLMSyntax, which callers run on the HTML fragment.
//
// The package also holds the surrounding stages used by the root converter:
// a goldmark-based alternative engine, chroma syntax highlighting, base URL
// link rewriting, and the standalone page shell with CSS injection.
//
// # Security
//
// Raw HTML in the Markdown source and annotation bodies is passed through
// verbatim. Only fenced code, table cells, and image attributes are escaped.
// Untrusted input must go through the goldmark engine (raw HTML omitted) or an
// HTML sanitizer.
package pipeline

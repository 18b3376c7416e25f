package main

import (
	"fmt"
	"io"
)

// printUsage prints the command usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: llmmd [flags] <input>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert LLM-flavoured Markdown to HTML.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file, directory, or - for stdin")
	fmt.Fprintln(w, "           (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory (default: stdout for one file)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers for directories (0 = auto)")
	fmt.Fprintln(w, "  -t, --timeout <duration>  Conversion timeout (default: 30s)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "      --engine <name>       Rendering engine: passes, goldmark (default: passes)")
	fmt.Fprintln(w, "      --no-llm              Disable LLM annotation rendering")
	fmt.Fprintln(w, "      --max-size <bytes>    Maximum input size (default: 10 MiB)")
	fmt.Fprintln(w, "      --max-list-depth <n>  Maximum list nesting depth (default: 16)")
	fmt.Fprintln(w, "      --base-url <url>      Resolve relative links and images against URL")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Highlighting:")
	fmt.Fprintln(w, "      --highlight           Syntax highlight fenced code")
	fmt.Fprintln(w, "      --highlight-style <s> Chroma style name (default: github)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "      --standalone          Wrap output in a full HTML page")
	fmt.Fprintln(w, "      --title <s>           Page title (default: first H1, then file name)")
	fmt.Fprintln(w, "      --lang <tag>          Page language (default: en)")
	fmt.Fprintln(w, "      --style <name|path>   Page style name or CSS file path")
	fmt.Fprintln(w, "      --css <path>          Extra CSS file appended after the style")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom asset directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Modes:")
	fmt.Fprintln(w, "      --render-errors       Render unreadable sources as an error page")
	fmt.Fprintln(w, "      --demo                Render the built-in welcome document")
	fmt.Fprintln(w, "      --show-config         Print the effective configuration and exit")
	fmt.Fprintln(w, "      --completion <shell>  Print a completion script: bash, zsh, fish, powershell")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  LLMMD_CONFIG, LLMMD_ENGINE, LLMMD_STYLE, LLMMD_HIGHLIGHT_STYLE, LLMMD_LANG,")
	fmt.Fprintln(w, "  LLMMD_BASE_URL, LLMMD_INPUT_DIR, LLMMD_OUTPUT_DIR, LLMMD_TIMEOUT, LLMMD_WORKERS")
	fmt.Fprintln(w, "  Priority: flags > environment > config file > defaults.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  llmmd chat.md > chat.html")
	fmt.Fprintln(w, "  llmmd --standalone --highlight -o site/ docs/")
	fmt.Fprintln(w, "  cat reply.md | llmmd -")
}

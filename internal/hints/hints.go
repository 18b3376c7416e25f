// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strconv"
	"strings"
)

// ForTimeout returns a hint about increasing timeout for slow operations.
func ForTimeout() string {
	return format("for large documents, use --timeout flag")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-llmmd/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-llmmd") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForInputTooLarge returns a hint naming the current limit.
func ForInputTooLarge(limit int64) string {
	if limit <= 0 {
		return format("raise the limit with --max-size")
	}
	return format("limit is " + strconv.FormatInt(limit, 10) + " bytes; raise it with --max-size")
}

// ForInvalidSource returns hints for sources that are missing or not Markdown.
func ForInvalidSource() string {
	return formatHints([]string{
		"sources must be .md or .markdown files",
		"use --render-errors to emit an error page instead",
	})
}

// ForEngine returns a hint listing the accepted engine names.
func ForEngine(engines []string) string {
	if len(engines) == 0 {
		return ""
	}
	return format("use --engine " + strings.Join(engines, " or "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}

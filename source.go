package llmmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-llmmd/internal/fileutil"
)

// WelcomeDocument is the Markdown rendered when no source is given.
const WelcomeDocument = "# Welcome to LLM Markdown Viewer\n\n" +
	"This viewer converts LLM-specific markdown syntax to HTML.\n\n" +
	"## Features\n" +
	"- Standard markdown support\n" +
	"- LLM-specific syntax highlighting\n" +
	"- Code block formatting\n\n" +
	"### Example Code Block\n" +
	"```\n" +
	"function helloWorld() {\n" +
	"  console.log('Hello, world!');\n" +
	"}\n" +
	"```"

// invalidSourceMessage is the error document body for missing or
// non-Markdown sources.
const invalidSourceMessage = "File not found or invalid file type."

// ReadSource reads a Markdown source file. Only regular files with a .md or
// .markdown extension are accepted.
// Returns ErrInvalidSourceType for other extensions and directories, and
// ErrSourceNotFound when the file does not exist.
func ReadSource(path string) (string, error) {
	if !fileutil.IsMarkdownFile(path) {
		return "", fmt.Errorf("%w: %s", ErrInvalidSourceType, path)
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return "", fmt.Errorf("reading source: %w", err)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %s is not a regular file", ErrInvalidSourceType, path)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- source path is user-provided
	if err != nil {
		return "", fmt.Errorf("reading source: %w", err)
	}
	return string(data), nil
}

// ErrorDocument returns a Markdown document describing err, for rendering in
// place of a source that could not be loaded. Missing and non-Markdown
// sources share one generic message.
func ErrorDocument(err error) string {
	msg := invalidSourceMessage
	if err != nil && !errors.Is(err, ErrSourceNotFound) && !errors.Is(err, ErrInvalidSourceType) {
		msg = err.Error()
	}
	return "# Error\n" + msg
}

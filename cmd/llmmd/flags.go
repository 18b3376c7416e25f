package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrInvalidFlag wraps flag parsing failures.
var ErrInvalidFlag = errors.New("invalid flag")

// commonFlags holds flags shared by every mode.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// renderFlags holds parsing flags.
type renderFlags struct {
	engine       string
	noLLM        bool
	maxSize      int64
	maxListDepth int
	baseURL      string
}

// highlightFlags holds syntax highlighting flags.
type highlightFlags struct {
	enabled bool
	style   string
}

// pageFlags holds standalone page flags.
type pageFlags struct {
	standalone bool
	title      string
	lang       string
}

// assetFlags holds asset-related flags (stylesheet, extra CSS, custom asset path).
type assetFlags struct {
	style     string // Name or path of the page stylesheet
	css       string // Extra CSS file appended after the stylesheet
	assetPath string // Override asset directory
}

// modeFlags select an alternative run mode.
type modeFlags struct {
	renderErrors bool
	demo         bool
	showConfig   bool
	completion   string
	version      bool
	help         bool
}

// convertFlags holds all flags of the command.
type convertFlags struct {
	common    commonFlags
	output    string
	workers   int
	timeout   string
	render    renderFlags
	highlight highlightFlags
	page      pageFlags
	assets    assetFlags
	mode      modeFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addRenderFlags adds parsing flags to a FlagSet.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.StringVar(&f.engine, "engine", "", "rendering engine: passes, goldmark")
	fs.BoolVar(&f.noLLM, "no-llm", false, "disable LLM annotation rendering")
	fs.Int64Var(&f.maxSize, "max-size", 0, "maximum input size in bytes (0 = default)")
	fs.IntVar(&f.maxListDepth, "max-list-depth", 0, "maximum list nesting depth (0 = default)")
	fs.StringVar(&f.baseURL, "base-url", "", "resolve relative links against this URL")
}

// addHighlightFlags adds highlighting flags to a FlagSet.
func addHighlightFlags(fs *flag.FlagSet, f *highlightFlags) {
	fs.BoolVar(&f.enabled, "highlight", false, "syntax highlight fenced code")
	fs.StringVar(&f.style, "highlight-style", "", "chroma style name (default: github)")
}

// addPageFlags adds standalone page flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.BoolVar(&f.standalone, "standalone", false, "wrap output in a full HTML page")
	fs.StringVar(&f.title, "title", "", "page title (\"\" = auto from H1)")
	fs.StringVar(&f.lang, "lang", "", "page language (default: en)")
}

// addAssetFlags adds asset-related flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.style, "style", "", "page style name or CSS file path")
	fs.StringVar(&f.css, "css", "", "extra CSS file appended after the style")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
}

// addModeFlags adds run mode flags to a FlagSet.
func addModeFlags(fs *flag.FlagSet, f *modeFlags) {
	fs.BoolVar(&f.renderErrors, "render-errors", false, "render unreadable sources as an error page")
	fs.BoolVar(&f.demo, "demo", false, "render the built-in welcome document")
	fs.BoolVar(&f.showConfig, "show-config", false, "print the effective configuration and exit")
	fs.StringVar(&f.completion, "completion", "", "print a shell completion script: bash, zsh, fish, powershell")
	fs.BoolVar(&f.version, "version", false, "show version information")
	fs.BoolVarP(&f.help, "help", "h", false, "show this help")
}

// newFlagSet registers every flag of the command into f.
// Shared by parseFlags and completion generation.
func newFlagSet(f *convertFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("llmmd", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "conversion timeout (e.g., 30s, 2m)")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addRenderFlags(fs, &f.render)
	addHighlightFlags(fs, &f.highlight)
	addPageFlags(fs, &f.page)
	addAssetFlags(fs, &f.assets)
	addModeFlags(fs, &f.mode)

	return fs
}

// parseFlags parses command flags and returns positional args.
// Nothing is printed; callers report the returned error.
func parseFlags(args []string) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := newFlagSet(f)

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidFlag, err)
	}

	return f, fs.Args(), nil
}

// Package config loads and validates the YAML configuration of the llmmd CLI.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-llmmd/internal/fileutil"
	"github.com/alnah/go-llmmd/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Engine names accepted by render.engine.
const (
	EnginePasses   = "passes"
	EngineGoldmark = "goldmark"
)

// MaxListDepthLimit is the largest accepted render.maxListDepth.
const MaxListDepthLimit = 64

// Field length limits.
const (
	MaxTitleLength = 200  // Page title
	MaxStyleLength = 64   // Style or chroma style name
	MaxLangLength  = 35   // BCP 47 tag
	MaxURLLength   = 2048 // Browser limit
	MaxPathLength  = 4096 // PATH_MAX on Linux
)

// configDirName is the directory searched under the user config dir.
const configDirName = "go-llmmd"

// Config holds all configuration for a conversion run.
type Config struct {
	Input     InputConfig     `yaml:"input"`
	Output    OutputConfig    `yaml:"output"`
	Render    RenderConfig    `yaml:"render"`
	Highlight HighlightConfig `yaml:"highlight"`
	Page      PageConfig      `yaml:"page"`
	Assets    AssetsConfig    `yaml:"assets"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = beside source)
}

// RenderConfig defines parsing options.
type RenderConfig struct {
	Engine       string `yaml:"engine"`       // "passes" or "goldmark" (default: "passes")
	Annotations  *bool  `yaml:"annotations"`  // LLM annotation pass (default: true)
	MaxListDepth int    `yaml:"maxListDepth"` // 1-64, 0 = default
	MaxInputSize int64  `yaml:"maxInputSize"` // bytes, 0 = library default
	BaseURL      string `yaml:"baseURL"`      // Resolve relative links against this URL
}

// HighlightConfig defines syntax highlighting options.
type HighlightConfig struct {
	Enabled bool   `yaml:"enabled"`
	Style   string `yaml:"style"` // chroma style name (default: "github")
}

// PageConfig defines standalone page options.
type PageConfig struct {
	Enabled bool   `yaml:"enabled"` // Wrap fragments in a full HTML document
	Title   string `yaml:"title"`   // Optional - auto: H1 → filename
	Style   string `yaml:"style"`   // Name of embedded or custom stylesheet
	Lang    string `yaml:"lang"`    // html lang attribute (default: "en")
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// AnnotationsEnabled reports whether the annotation pass runs. Unset means on.
func (r RenderConfig) AnnotationsEnabled() bool {
	return r.Annotations == nil || *r.Annotations
}

// Validate checks value ranges and field lengths.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	switch c.Render.Engine {
	case "", EnginePasses, EngineGoldmark:
	default:
		return fmt.Errorf("%w: render.engine %q (must be %s or %s)", ErrInvalidValue, c.Render.Engine, EnginePasses, EngineGoldmark)
	}
	if c.Render.MaxListDepth < 0 || c.Render.MaxListDepth > MaxListDepthLimit {
		return fmt.Errorf("%w: render.maxListDepth must be between 1 and %d, got %d", ErrInvalidValue, MaxListDepthLimit, c.Render.MaxListDepth)
	}
	if c.Render.MaxInputSize < 0 {
		return fmt.Errorf("%w: render.maxInputSize must not be negative, got %d", ErrInvalidValue, c.Render.MaxInputSize)
	}
	if err := validateFieldLength("render.baseURL", c.Render.BaseURL, MaxURLLength); err != nil {
		return err
	}
	if c.Render.BaseURL != "" {
		if err := validateBaseURL(c.Render.BaseURL); err != nil {
			return err
		}
	}

	if err := validateFieldLength("highlight.style", c.Highlight.Style, MaxStyleLength); err != nil {
		return err
	}

	if err := validateFieldLength("page.title", c.Page.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("page.style", c.Page.Style, MaxStyleLength); err != nil {
		return err
	}
	if err := validateFieldLength("page.lang", c.Page.Lang, MaxLangLength); err != nil {
		return err
	}

	if err := validateFieldLength("input.defaultDir", c.Input.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}

	return nil
}

// validateBaseURL requires an absolute http(s) URL with a host.
func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || !fileutil.IsURL(raw) || u.Host == "" {
		return fmt.Errorf("%w: render.baseURL %q (must be an absolute http or https URL)", ErrInvalidValue, raw)
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration: pass engine, annotations on,
// fragment output, embedded assets.
func DefaultConfig() *Config {
	return &Config{
		Input:     InputConfig{DefaultDir: ""},
		Output:    OutputConfig{DefaultDir: ""},
		Render:    RenderConfig{Engine: EnginePasses},
		Highlight: HighlightConfig{Enabled: false},
		Page:      PageConfig{Enabled: false},
		Assets:    AssetsConfig{BasePath: ""},
	}
}

// YAML returns the configuration encoded as YAML.
func (c *Config) YAML() ([]byte, error) {
	return yamlutil.Marshal(c)
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-llmmd/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, configDirName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// SearchedPaths lists the user-config locations tried for name, for hints.
func SearchedPaths(name string) []string {
	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		return nil
	}
	return []string{
		filepath.Join(userConfigDir, configDirName, name+".yaml"),
		filepath.Join(userConfigDir, configDirName, name+".yml"),
	}
}

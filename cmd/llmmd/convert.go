package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	llmmd "github.com/alnah/go-llmmd"
	"github.com/alnah/go-llmmd/internal/config"
	"github.com/alnah/go-llmmd/internal/fileutil"
	"github.com/alnah/go-llmmd/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrReadInput      = errors.New("failed to read standard input")
	ErrReadCSS        = errors.New("failed to read CSS file")
	ErrInvalidTimeout = errors.New("invalid timeout")
)

// defaultTimeout bounds each conversion when neither flag nor env sets one.
const defaultTimeout = 30 * time.Second

// demoSourceName names the welcome document for title and output resolution.
const demoSourceName = "welcome"

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	warnUnknownEnvVars(env.Stderr, env.Environ())
	envCfg := loadEnvConfig(env.Getenv)

	// Validate worker count early
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}
	if err := validateWorkers(envCfg.Workers); err != nil {
		return fmt.Errorf("LLMMD_WORKERS: %w", err)
	}

	cfg, err := loadConfig(flags.common.config, envCfg.ConfigPath)
	if err != nil {
		return err
	}

	// Priority: flags > env > config file > defaults
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	if _, err := llmmd.ParseEngine(cfg.Render.Engine); err != nil {
		return fmt.Errorf("%w%s", err, hints.ForEngine(llmmd.Engines()))
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if flags.mode.showConfig {
		return showConfig(cfg, env)
	}

	timeout, err := resolveTimeout(flags.timeout, envCfg.Timeout)
	if err != nil {
		return err
	}

	css, err := readExtraCSS(flags.assets.css)
	if err != nil {
		return err
	}

	conv, err := newConverter(cfg, timeout, env)
	if err != nil {
		return err
	}

	params := &conversionParams{
		standalone:   cfg.Page.Enabled,
		title:        cfg.Page.Title,
		css:          css,
		baseURL:      cfg.Render.BaseURL,
		renderErrors: flags.mode.renderErrors,
	}
	output := resolveOutputDir(flags.output, cfg)

	if flags.mode.demo {
		err := convertSingle(ctx, conv, demoSourceName, llmmd.WelcomeDocument, output, params, flags.common, env)
		return withRunHints(err, cfg)
	}

	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}

	switch {
	case inputPath == stdinPath:
		content, err := io.ReadAll(env.Stdin)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrReadInput, err)
		}
		err = convertSingle(ctx, conv, stdinPath, string(content), output, params, flags.common, env)
		return withRunHints(err, cfg)

	case fileutil.DirExists(inputPath):
		workers := resolveWorkers(firstPositive(flags.workers, envCfg.Workers))
		if flags.common.verbose {
			fmt.Fprintf(env.Stderr, "Engine: %s, workers: %d\n", cfg.Render.Engine, workers)
		}
		return convertDirectory(ctx, conv, workers, inputPath, output, params, flags.common, env)

	default:
		markdown, err := loadSource(inputPath, params.renderErrors)
		if err != nil {
			return fmt.Errorf("%w%s", err, hints.ForInvalidSource())
		}
		err = convertSingle(ctx, conv, inputPath, markdown, output, params, flags.common, env)
		return withRunHints(err, cfg)
	}
}

// loadConfig loads the config named by the flag, then by LLMMD_CONFIG.
// Without either it returns the defaults.
func loadConfig(flagName, envName string) (*config.Config, error) {
	name := flagName
	if name == "" {
		name = envName
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchedPaths(name)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	// Render flags
	if flags.render.engine != "" {
		cfg.Render.Engine = flags.render.engine
	}
	if flags.render.noLLM {
		disabled := false
		cfg.Render.Annotations = &disabled
	}
	if flags.render.maxSize != 0 {
		cfg.Render.MaxInputSize = flags.render.maxSize
	}
	if flags.render.maxListDepth != 0 {
		cfg.Render.MaxListDepth = flags.render.maxListDepth
	}
	if flags.render.baseURL != "" {
		cfg.Render.BaseURL = flags.render.baseURL
	}

	// Highlight flags (a style implies highlighting)
	if flags.highlight.enabled {
		cfg.Highlight.Enabled = true
	}
	if flags.highlight.style != "" {
		cfg.Highlight.Style = flags.highlight.style
		cfg.Highlight.Enabled = true
	}

	// Page flags
	if flags.page.standalone {
		cfg.Page.Enabled = true
	}
	if flags.page.title != "" {
		cfg.Page.Title = flags.page.title
	}
	if flags.page.lang != "" {
		cfg.Page.Lang = flags.page.lang
	}

	// Asset flags
	if flags.assets.style != "" {
		cfg.Page.Style = flags.assets.style
	}
	if flags.assets.assetPath != "" {
		cfg.Assets.BasePath = flags.assets.assetPath
	}
}

// resolveTimeout determines the conversion timeout.
// Priority: flag > env > default.
func resolveTimeout(flagValue string, envValue time.Duration) (time.Duration, error) {
	if flagValue != "" {
		d, err := time.ParseDuration(flagValue)
		if err != nil {
			return 0, fmt.Errorf("%w %q: %v", ErrInvalidTimeout, flagValue, err)
		}
		if d <= 0 {
			return 0, fmt.Errorf("%w %q: must be positive", ErrInvalidTimeout, flagValue)
		}
		return d, nil
	}
	if envValue > 0 {
		return envValue, nil
	}
	return defaultTimeout, nil
}

// firstPositive returns the first value above zero, or zero.
func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}

// readExtraCSS reads the --css file. An empty path means no extra CSS.
func readExtraCSS(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	content, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadCSS, err)
	}
	return string(content), nil
}

// converterOptions translates the effective configuration into library options.
func converterOptions(cfg *config.Config, timeout time.Duration, now func() time.Time) []llmmd.Option {
	opts := []llmmd.Option{
		llmmd.WithTimeout(timeout),
	}

	if engine, err := llmmd.ParseEngine(cfg.Render.Engine); err == nil {
		opts = append(opts, llmmd.WithEngine(engine))
	}
	if cfg.Render.MaxInputSize > 0 {
		opts = append(opts, llmmd.WithMaxInputSize(cfg.Render.MaxInputSize))
	}
	if cfg.Render.MaxListDepth > 0 {
		opts = append(opts, llmmd.WithMaxListDepth(cfg.Render.MaxListDepth))
	}
	if !cfg.Render.AnnotationsEnabled() {
		opts = append(opts, llmmd.WithoutAnnotations())
	}
	if cfg.Highlight.Enabled {
		opts = append(opts, llmmd.WithHighlighting(cfg.Highlight.Style))
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, llmmd.WithAssetPath(cfg.Assets.BasePath))
	}
	if cfg.Page.Style != "" {
		opts = append(opts, llmmd.WithStyle(cfg.Page.Style))
	}
	if cfg.Page.Lang != "" {
		opts = append(opts, llmmd.WithLang(cfg.Page.Lang))
	}
	if now != nil {
		opts = append(opts, llmmd.WithClock(now))
	}

	return opts
}

// newConverter builds the library converter for cfg.
func newConverter(cfg *config.Config, timeout time.Duration, env *Environment) (*llmmd.Converter, error) {
	conv, err := llmmd.NewConverter(converterOptions(cfg, timeout, env.Now)...)
	if err != nil {
		if errors.Is(err, llmmd.ErrStyleNotFound) {
			return nil, fmt.Errorf("initializing converter: %w%s", err, hints.ForStyleNotFound(llmmd.AvailableStyles()))
		}
		return nil, fmt.Errorf("initializing converter: %w", err)
	}
	return conv, nil
}

// convertSingle converts one in-memory source and writes it to stdout, or
// to the file resolved from output.
func convertSingle(ctx context.Context, conv CLIConverter, sourceName, markdown, output string, params *conversionParams, common commonFlags, env *Environment) error {
	start := time.Now()

	result, err := conv.Convert(ctx, params.input(markdown, sourceName))
	if err != nil {
		return fmt.Errorf("converting %s: %w", sourceName, err)
	}

	outPath := singleOutputPath(sourceName, output)
	if outPath == "" {
		if _, err := env.Stdout.Write(result.HTML); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		return nil
	}

	if err := writeHTML(outPath, result.HTML); err != nil {
		return fmt.Errorf("%w%s", err, hints.ForOutputDirectory())
	}

	printResults([]ConversionResult{{
		InputPath:  sourceName,
		OutputPath: outPath,
		Duration:   time.Since(start),
	}}, common.quiet, common.verbose, env)
	return nil
}

// convertDirectory converts every markdown file under inputDir.
func convertDirectory(ctx context.Context, conv CLIConverter, workers int, inputDir, output string, params *conversionParams, common commonFlags, env *Environment) error {
	files, err := discoverFiles(inputDir, output)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}

	if len(files) == 0 {
		return fmt.Errorf("no markdown files found in %s", inputDir)
	}

	results := convertBatch(ctx, conv, workers, files, params)

	failedCount := printResults(results, common.quiet, common.verbose, env)
	if failedCount > 0 {
		return fmt.Errorf("%d conversion(s) failed", failedCount)
	}

	return nil
}

// showConfig prints the effective configuration as YAML.
func showConfig(cfg *config.Config, env *Environment) error {
	data, err := cfg.YAML()
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = env.Stdout.Write(data)
	return err
}

// withRunHints appends a hint for failures with a known remedy.
func withRunHints(err error, cfg *config.Config) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w%s", err, hints.ForTimeout())
	case errors.Is(err, llmmd.ErrInputTooLarge):
		return fmt.Errorf("%w%s", err, hints.ForInputTooLarge(cfg.Render.MaxInputSize))
	default:
		return err
	}
}

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/alnah/go-llmmd/internal/config"
	"github.com/alnah/go-llmmd/internal/fileutil"
)

// stdinPath selects standard input as the source.
const stdinPath = "-"

// htmlExt is the extension of generated files.
const htmlExt = ".html"

// ErrNoInput is returned when neither an argument nor a default directory
// names the source.
var ErrNoInput = errors.New("no input specified")

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// resolveInputPath determines the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveOutputDir determines the output location from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// discoverFiles finds all markdown files under inputDir.
func discoverFiles(inputDir, outputDir string) ([]FileToConvert, error) {
	var files []FileToConvert
	err := filepath.WalkDir(inputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if !fileutil.IsMarkdownFile(path) {
			return nil
		}
		outPath := resolveOutputPath(path, outputDir, inputDir)
		files = append(files, FileToConvert{InputPath: path, OutputPath: outPath})
		return nil
	})

	return files, err
}

// resolveOutputPath determines the HTML output path for a markdown file
// found under baseInputDir. Relative directories are preserved under outputDir.
func resolveOutputPath(inputPath, outputDir, baseInputDir string) string {
	base := fileutil.ReplaceExtension(filepath.Base(inputPath), htmlExt)

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), base)
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			return filepath.Join(outputDir, filepath.Dir(relPath), base)
		}
	}

	return filepath.Join(outputDir, base)
}

// singleOutputPath determines where a single converted source goes.
// An empty result means standard output.
func singleOutputPath(inputPath, output string) string {
	if output == "" {
		return ""
	}
	ext := strings.ToLower(filepath.Ext(output))
	if ext == htmlExt || ext == ".htm" {
		return output
	}
	name := "stdin" + htmlExt
	if inputPath != stdinPath && inputPath != "" {
		name = fileutil.ReplaceExtension(filepath.Base(inputPath), htmlExt)
	}
	return filepath.Join(output, name)
}

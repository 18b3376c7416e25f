package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-llmmd/internal/config"
)

// envPrefix marks the environment variables read by the CLI.
const envPrefix = "LLMMD_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath     string        // LLMMD_CONFIG: config file name or path
	Engine         string        // LLMMD_ENGINE: passes or goldmark
	Style          string        // LLMMD_STYLE: page style name or path
	HighlightStyle string        // LLMMD_HIGHLIGHT_STYLE: chroma style, enables highlighting
	Lang           string        // LLMMD_LANG: page language
	BaseURL        string        // LLMMD_BASE_URL: link rewriting base
	InputDir       string        // LLMMD_INPUT_DIR: default input directory
	OutputDir      string        // LLMMD_OUTPUT_DIR: default output directory
	Timeout        time.Duration // LLMMD_TIMEOUT: conversion timeout
	Workers        int           // LLMMD_WORKERS: parallel workers
}

// knownEnvVars lists valid LLMMD_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"LLMMD_CONFIG":          true,
	"LLMMD_ENGINE":          true,
	"LLMMD_STYLE":           true,
	"LLMMD_HIGHLIGHT_STYLE": true,
	"LLMMD_LANG":            true,
	"LLMMD_BASE_URL":        true,
	"LLMMD_INPUT_DIR":       true,
	"LLMMD_OUTPUT_DIR":      true,
	"LLMMD_TIMEOUT":         true,
	"LLMMD_WORKERS":         true,
}

// loadEnvConfig reads configuration from environment variables.
// Malformed durations and worker counts are ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath:     getenv("LLMMD_CONFIG"),
		Engine:         getenv("LLMMD_ENGINE"),
		Style:          getenv("LLMMD_STYLE"),
		HighlightStyle: getenv("LLMMD_HIGHLIGHT_STYLE"),
		Lang:           getenv("LLMMD_LANG"),
		BaseURL:        getenv("LLMMD_BASE_URL"),
		InputDir:       getenv("LLMMD_INPUT_DIR"),
		OutputDir:      getenv("LLMMD_OUTPUT_DIR"),
	}

	if timeout := getenv("LLMMD_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	if workers := getenv("LLMMD_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized LLMMD_* variables.
// Helps catch typos like LLMMD_ENGIN instead of LLMMD_ENGINE.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, env := range environ {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name := strings.SplitN(env, "=", 2)[0]
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig applies environment variable values over the config file.
// Priority: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags; timeout and workers are
// resolved separately since the config file has no such fields).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Engine != "" {
		cfg.Render.Engine = env.Engine
	}
	if env.BaseURL != "" {
		cfg.Render.BaseURL = env.BaseURL
	}
	if env.HighlightStyle != "" {
		cfg.Highlight.Style = env.HighlightStyle
		cfg.Highlight.Enabled = true
	}
	if env.Style != "" {
		cfg.Page.Style = env.Style
	}
	if env.Lang != "" {
		cfg.Page.Lang = env.Lang
	}
	if env.InputDir != "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
}

package main

import (
	"errors"
	"testing"
)

func TestParseFlags_Defaults(t *testing.T) {
	t.Parallel()

	flags, args, err := parseFlags([]string{"doc.md"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(args) != 1 || args[0] != "doc.md" {
		t.Errorf("args = %v, want [doc.md]", args)
	}
	if flags.output != "" || flags.workers != 0 || flags.timeout != "" {
		t.Errorf("I/O flags not zero: %+v", flags)
	}
	if flags.render != (renderFlags{}) {
		t.Errorf("render flags = %+v, want zero", flags.render)
	}
	if flags.mode != (modeFlags{}) {
		t.Errorf("mode flags = %+v, want zero", flags.mode)
	}
}

func TestParseFlags_Groups(t *testing.T) {
	t.Parallel()

	flags, args, err := parseFlags([]string{
		"-c", "work", "-qv",
		"-o", "out/", "-w", "4", "-t", "1m",
		"--engine", "goldmark", "--no-llm", "--max-size", "2048", "--max-list-depth", "8",
		"--base-url", "https://example.com/docs/",
		"--highlight", "--highlight-style", "monokai",
		"--standalone", "--title", "Chat", "--lang", "fr",
		"--style", "dark", "--css", "extra.css", "--asset-path", "assets/",
		"--render-errors",
		"docs/",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(args) != 1 || args[0] != "docs/" {
		t.Errorf("args = %v, want [docs/]", args)
	}

	want := commonFlags{config: "work", quiet: true, verbose: true}
	if flags.common != want {
		t.Errorf("common = %+v, want %+v", flags.common, want)
	}
	if flags.output != "out/" || flags.workers != 4 || flags.timeout != "1m" {
		t.Errorf("I/O = %q %d %q", flags.output, flags.workers, flags.timeout)
	}

	wantRender := renderFlags{engine: "goldmark", noLLM: true, maxSize: 2048, maxListDepth: 8, baseURL: "https://example.com/docs/"}
	if flags.render != wantRender {
		t.Errorf("render = %+v, want %+v", flags.render, wantRender)
	}
	if flags.highlight != (highlightFlags{enabled: true, style: "monokai"}) {
		t.Errorf("highlight = %+v", flags.highlight)
	}
	if flags.page != (pageFlags{standalone: true, title: "Chat", lang: "fr"}) {
		t.Errorf("page = %+v", flags.page)
	}
	if flags.assets != (assetFlags{style: "dark", css: "extra.css", assetPath: "assets/"}) {
		t.Errorf("assets = %+v", flags.assets)
	}
	if !flags.mode.renderErrors {
		t.Error("renderErrors = false, want true")
	}
}

func TestParseFlags_Modes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		args  []string
		check func(modeFlags) bool
	}{
		{"help long", []string{"--help"}, func(m modeFlags) bool { return m.help }},
		{"help short", []string{"-h"}, func(m modeFlags) bool { return m.help }},
		{"version", []string{"--version"}, func(m modeFlags) bool { return m.version }},
		{"demo", []string{"--demo"}, func(m modeFlags) bool { return m.demo }},
		{"show config", []string{"--show-config"}, func(m modeFlags) bool { return m.showConfig }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			flags, _, err := parseFlags(tt.args)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.check(flags.mode) {
				t.Errorf("mode = %+v for %v", flags.mode, tt.args)
			}
		})
	}
}

func TestParseFlags_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"--pdf"}},
		{"missing value", []string{"--engine"}},
		{"non-numeric workers", []string{"-w", "many"}},
		{"non-numeric max size", []string{"--max-size", "big"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := parseFlags(tt.args)
			if !errors.Is(err, ErrInvalidFlag) {
				t.Errorf("parseFlags(%v) error = %v, want ErrInvalidFlag", tt.args, err)
			}
		})
	}
}

package main

// Notes:
// - exitCodeFor: we test sentinel errors from the llmmd, config and cli
//   packages, plus wrapped errors to verify errors.Is() chain works correctly.

import (
	"errors"
	"fmt"
	"os"
	"testing"

	llmmd "github.com/alnah/go-llmmd"
	"github.com/alnah/go-llmmd/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		// Success
		{"nil error", nil, ExitSuccess},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"source not found", llmmd.ErrSourceNotFound, ExitIO},
		{"read stdin", ErrReadInput, ExitIO},
		{"read css", ErrReadCSS, ExitIO},
		{"write html", ErrWriteHTML, ExitIO},
		{"no input", ErrNoInput, ExitIO},
		{"wrapped source not found", fmt.Errorf("reading source: %w", llmmd.ErrSourceNotFound), ExitIO},

		// Usage/config/validation errors (exit 2)
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"empty config name", config.ErrEmptyConfigName, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"invalid config value", config.ErrInvalidValue, ExitUsage},
		{"invalid engine", llmmd.ErrInvalidEngine, ExitUsage},
		{"invalid list depth", llmmd.ErrInvalidListDepth, ExitUsage},
		{"invalid base url", llmmd.ErrInvalidBaseURL, ExitUsage},
		{"input too large", llmmd.ErrInputTooLarge, ExitUsage},
		{"invalid source type", llmmd.ErrInvalidSourceType, ExitUsage},
		{"style not found", llmmd.ErrStyleNotFound, ExitUsage},
		{"template not found", llmmd.ErrTemplateNotFound, ExitUsage},
		{"invalid asset path", llmmd.ErrInvalidAssetPath, ExitUsage},
		{"invalid flag", ErrInvalidFlag, ExitUsage},
		{"invalid timeout", ErrInvalidTimeout, ExitUsage},
		{"invalid workers", ErrInvalidWorkerCount, ExitUsage},
		{"wrapped config not found", fmt.Errorf("loading config: %w", config.ErrConfigNotFound), ExitUsage},

		// General errors (exit 1)
		{"unknown error", errors.New("boom"), ExitGeneral},
		{"html conversion", llmmd.ErrHTMLConversion, ExitGeneral},
		{"page render", llmmd.ErrPageRender, ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()

	codes := map[string]int{
		"ExitSuccess": ExitSuccess,
		"ExitGeneral": ExitGeneral,
		"ExitUsage":   ExitUsage,
		"ExitIO":      ExitIO,
	}
	if ExitSuccess != 0 || ExitGeneral != 1 || ExitUsage != 2 {
		t.Errorf("unix convention violated: %v", codes)
	}
	for name, code := range codes {
		if code >= 126 {
			t.Errorf("%s = %d, must be < 126", name, code)
		}
	}
}

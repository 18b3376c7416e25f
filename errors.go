package llmmd

import (
	"errors"

	"github.com/alnah/go-llmmd/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrInputTooLarge  = errors.New("markdown input exceeds maximum size")
	ErrHTMLConversion = pipeline.ErrHTMLConversion
	ErrPageRender     = pipeline.ErrPageRender

	// Option validation errors.
	ErrInvalidEngine    = errors.New("invalid engine")
	ErrInvalidListDepth = errors.New("invalid list depth")
	ErrInvalidBaseURL   = pipeline.ErrInvalidBaseURL

	// Asset loading errors.
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")

	// Source loading errors.
	ErrSourceNotFound    = errors.New("source file not found")
	ErrInvalidSourceType = errors.New("invalid source file type")
)

package pipeline

import (
	"errors"
	"strings"
	"testing"
)

func TestRewriteRelativeLinks(t *testing.T) {
	t.Parallel()

	const base = "https://example.com/docs/"

	tests := []struct {
		name         string
		html         string
		baseURL      string
		wantContains []string
		wantExcludes []string
	}{
		{
			name:         "relative image with dot slash",
			html:         `<img src="./images/logo.png">`,
			baseURL:      base,
			wantContains: []string{`src="https://example.com/docs/images/logo.png"`},
		},
		{
			name:         "relative link",
			html:         `<a href="guide.html">Guide</a>`,
			baseURL:      base,
			wantContains: []string{`href="https://example.com/docs/guide.html"`},
		},
		{
			name:         "parent directory link",
			html:         `<a href="../index.html">Home</a>`,
			baseURL:      base,
			wantContains: []string{`href="https://example.com/index.html"`},
		},
		{
			name:         "root relative path resolves against host",
			html:         `<img src="/abs/logo.png">`,
			baseURL:      base,
			wantContains: []string{`src="https://example.com/abs/logo.png"`},
		},
		{
			name:         "absolute URL unchanged",
			html:         `<a href="https://go.dev/doc">Go</a>`,
			baseURL:      base,
			wantContains: []string{`href="https://go.dev/doc"`},
		},
		{
			name:         "protocol relative unchanged",
			html:         `<img src="//cdn.example.com/a.png">`,
			baseURL:      base,
			wantContains: []string{`src="//cdn.example.com/a.png"`},
		},
		{
			name:         "anchor unchanged",
			html:         `<a href="#section">Jump</a>`,
			baseURL:      base,
			wantContains: []string{`href="#section"`},
		},
		{
			name:         "mailto unchanged",
			html:         `<a href="mailto:team@example.com">Mail</a>`,
			baseURL:      base,
			wantContains: []string{`href="mailto:team@example.com"`},
		},
		{
			name:         "data URI unchanged",
			html:         `<img src="data:image/png;base64,ABC123">`,
			baseURL:      base,
			wantContains: []string{`src="data:image/png;base64,ABC123"`},
		},
		{
			name:         "other elements untouched",
			html:         `<script src="app.js"></script><p>x</p>`,
			baseURL:      base,
			wantContains: []string{`src="app.js"`},
			wantExcludes: []string{"example.com"},
		},
		{
			name:         "empty base returns unchanged",
			html:         `<img src="./logo.png">`,
			baseURL:      "",
			wantContains: []string{`<img src="./logo.png">`},
		},
		{
			name:         "full document keeps structure",
			html:         `<!DOCTYPE html><html><head></head><body><a href="x.md">x</a></body></html>`,
			baseURL:      base,
			wantContains: []string{"<!DOCTYPE html>", `href="https://example.com/docs/x.md"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := RewriteRelativeLinks(tt.html, tt.baseURL)
			if err != nil {
				t.Fatalf("RewriteRelativeLinks() unexpected error: %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("RewriteRelativeLinks() = %q, want to contain %q", got, want)
				}
			}
			for _, exclude := range tt.wantExcludes {
				if strings.Contains(got, exclude) {
					t.Errorf("RewriteRelativeLinks() = %q, should not contain %q", got, exclude)
				}
			}
		})
	}
}

func TestRewriteRelativeLinks_InvalidBase(t *testing.T) {
	t.Parallel()

	for _, baseURL := range []string{"docs/", "/var/www", "http://%zz"} {
		t.Run(baseURL, func(t *testing.T) {
			t.Parallel()

			_, err := RewriteRelativeLinks(`<a href="x">x</a>`, baseURL)
			if !errors.Is(err, ErrInvalidBaseURL) {
				t.Errorf("RewriteRelativeLinks(base=%q) error = %v, want ErrInvalidBaseURL", baseURL, err)
			}
		})
	}
}

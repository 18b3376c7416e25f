package main

import (
	"context"
	"errors"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	llmmd "github.com/alnah/go-llmmd"
)

func TestValidateWorkers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		n       int
		wantErr bool
	}{
		{"auto", 0, false},
		{"one", 1, false},
		{"maximum", MaxWorkers, false},
		{"negative", -1, true},
		{"above maximum", MaxWorkers + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := validateWorkers(tt.n)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidWorkerCount) {
					t.Errorf("validateWorkers(%d) error = %v, want ErrInvalidWorkerCount", tt.n, err)
				}
				return
			}
			if err != nil {
				t.Errorf("validateWorkers(%d) unexpected error: %v", tt.n, err)
			}
		})
	}
}

func TestResolveWorkers(t *testing.T) {
	t.Parallel()

	if got := resolveWorkers(5); got != 5 {
		t.Errorf("resolveWorkers(5) = %d, want 5", got)
	}
	if got := resolveWorkers(1000); got != MaxWorkers {
		t.Errorf("resolveWorkers(1000) = %d, want %d", got, MaxWorkers)
	}

	want := runtime.GOMAXPROCS(0) / 2
	if want < 1 {
		want = 1
	}
	if want > MaxWorkers {
		want = MaxWorkers
	}
	if got := resolveWorkers(0); got != want {
		t.Errorf("resolveWorkers(0) = %d, want %d", got, want)
	}
}

func TestConvertBatch(t *testing.T) {
	t.Parallel()

	t.Run("empty file list", func(t *testing.T) {
		t.Parallel()

		if results := convertBatch(context.Background(), &staticMockConverter{}, 2, nil, &conversionParams{}); results != nil {
			t.Errorf("results = %v, want nil", results)
		}
	})

	t.Run("writes every file in order", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		var files []FileToConvert
		for _, name := range []string{"a", "b", "c", "d", "e"} {
			in := writeFile(t, dir, name+".md", "# "+name)
			files = append(files, FileToConvert{InputPath: in, OutputPath: filepath.Join(dir, "out", name+".html")})
		}

		conv := &staticMockConverter{result: []byte("<p>ok</p>\n")}
		params := &conversionParams{standalone: true, title: "T", css: "p{}", baseURL: "https://example.com/"}
		results := convertBatch(context.Background(), conv, 3, files, params)

		if len(results) != len(files) {
			t.Fatalf("got %d results, want %d", len(results), len(files))
		}
		for i, r := range results {
			if r.Err != nil {
				t.Errorf("result %d: unexpected error: %v", i, r.Err)
			}
			if r.InputPath != files[i].InputPath {
				t.Errorf("result %d InputPath = %q, want %q", i, r.InputPath, files[i].InputPath)
			}
			if got := readFile(t, files[i].OutputPath); got != "<p>ok</p>\n" {
				t.Errorf("output %d = %q", i, got)
			}
		}

		if len(conv.inputs) != len(files) {
			t.Fatalf("converter called %d times, want %d", len(conv.inputs), len(files))
		}
		for _, in := range conv.inputs {
			if !in.Standalone || in.Title != "T" || in.CSS != "p{}" || in.BaseURL != "https://example.com/" {
				t.Errorf("input params not forwarded: %+v", in)
			}
			if !strings.HasPrefix(in.Markdown, "# ") {
				t.Errorf("Markdown = %q, want file content", in.Markdown)
			}
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		files := []FileToConvert{
			{InputPath: writeFile(t, dir, "a.md", "a"), OutputPath: filepath.Join(dir, "a.html")},
			{InputPath: writeFile(t, dir, "b.md", "b"), OutputPath: filepath.Join(dir, "b.html")},
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		results := convertBatch(ctx, &staticMockConverter{result: []byte("x")}, 2, files, &conversionParams{})
		for i, r := range results {
			if !errors.Is(r.Err, context.Canceled) {
				t.Errorf("result %d error = %v, want context.Canceled", i, r.Err)
			}
		}
	})
}

func TestConvertFile(t *testing.T) {
	t.Parallel()

	t.Run("missing source", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		f := FileToConvert{InputPath: filepath.Join(dir, "gone.md"), OutputPath: filepath.Join(dir, "gone.html")}

		r := convertFile(context.Background(), &staticMockConverter{}, f, &conversionParams{})
		if !errors.Is(r.Err, llmmd.ErrSourceNotFound) {
			t.Errorf("error = %v, want ErrSourceNotFound", r.Err)
		}
	})

	t.Run("missing source renders error document", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		f := FileToConvert{InputPath: filepath.Join(dir, "gone.md"), OutputPath: filepath.Join(dir, "gone.html")}
		conv := &staticMockConverter{result: []byte("error page")}

		r := convertFile(context.Background(), conv, f, &conversionParams{renderErrors: true})
		if r.Err != nil {
			t.Fatalf("unexpected error: %v", r.Err)
		}
		if len(conv.inputs) != 1 || !strings.HasPrefix(conv.inputs[0].Markdown, "# Error\n") {
			t.Errorf("inputs = %+v, want error document", conv.inputs)
		}
	})

	t.Run("converter error", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		f := FileToConvert{InputPath: writeFile(t, dir, "a.md", "a"), OutputPath: filepath.Join(dir, "a.html")}
		wantErr := errors.New("boom")

		r := convertFile(context.Background(), &staticMockConverter{err: wantErr}, f, &conversionParams{})
		if !errors.Is(r.Err, wantErr) {
			t.Errorf("error = %v, want %v", r.Err, wantErr)
		}
	})

	t.Run("unwritable output", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		blocker := writeFile(t, dir, "blocker", "file")
		f := FileToConvert{InputPath: writeFile(t, dir, "a.md", "a"), OutputPath: filepath.Join(blocker, "a.html")}

		r := convertFile(context.Background(), &staticMockConverter{result: []byte("x")}, f, &conversionParams{})
		if !errors.Is(r.Err, ErrWriteHTML) {
			t.Errorf("error = %v, want ErrWriteHTML", r.Err)
		}
	})
}

func TestPrintResults(t *testing.T) {
	t.Parallel()

	results := []ConversionResult{
		{InputPath: "a.md", OutputPath: "a.html", Duration: 12 * time.Millisecond},
		{InputPath: "b.md", Err: errors.New("boom")},
	}

	tests := []struct {
		name       string
		quiet      bool
		verbose    bool
		wantStdout []string
		noStdout   bool
	}{
		{"default", false, false, []string{"Created a.html", "1 succeeded, 1 failed"}, false},
		{"verbose", false, true, []string{"a.md -> a.html (12ms)"}, false},
		{"quiet", true, false, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv("", nil)
			failed := printResults(results, tt.quiet, tt.verbose, env)

			if failed != 1 {
				t.Errorf("failed = %d, want 1", failed)
			}
			if !strings.Contains(stderr.String(), "FAILED b.md: boom") {
				t.Errorf("stderr = %q, want failure line", stderr.String())
			}
			for _, want := range tt.wantStdout {
				if !strings.Contains(stdout.String(), want) {
					t.Errorf("stdout = %q, want %q", stdout.String(), want)
				}
			}
			if tt.noStdout && stdout.Len() != 0 {
				t.Errorf("stdout = %q, want empty", stdout.String())
			}
		})
	}
}

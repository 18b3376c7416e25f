package pipeline

import "strings"

// scanState is the state of a line-block scanner.
type scanState int

const (
	stateOutside scanState = iota
	stateAccumulating
)

// blockScanner collects maximal runs of contiguous matching lines and
// replaces each run with its rendering. Table and blockquote passes are
// both expressed with it.
type blockScanner struct {
	// match reports whether a line belongs to a run and returns the part kept.
	match func(line string) (string, bool)
	// render turns a finished run into HTML.
	render func(run []string) string
}

// scan drives the scanner over text with a single forward pass. Leaving the
// accumulating state, either on a non-matching line or at end of input,
// flushes the run.
func (b blockScanner) scan(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))

	state := stateOutside
	var run []string

	flush := func() {
		out = append(out, isolate(b.render(run)))
		run = nil
		state = stateOutside
	}

	for _, line := range lines {
		if kept, ok := b.match(line); ok {
			run = append(run, kept)
			state = stateAccumulating
			continue
		}
		if state == stateAccumulating {
			flush()
		}
		out = append(out, line)
	}

	if state == stateAccumulating {
		flush()
	}

	return strings.Join(out, "\n")
}

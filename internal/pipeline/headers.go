package pipeline

import (
	"regexp"
	"strconv"
	"strings"
)

// headerPattern matches 1-6 leading # followed by whitespace and the heading text.
var headerPattern = regexp.MustCompile(`(?m)^(#{1,6})[ \t]+(.*)$`)

// headerPass converts # lines to h1-h6. The heading text is kept verbatim.
func headerPass(text string) string {
	if !strings.Contains(text, "#") {
		return text
	}
	return headerPattern.ReplaceAllStringFunc(text, func(line string) string {
		m := headerPattern.FindStringSubmatch(line)
		level := strconv.Itoa(len(m[1]))
		return isolate("<h" + level + ">" + m[2] + "</h" + level + ">")
	})
}

// horizontalRulePass replaces rule lines with <hr>, keeping leading indentation.
// It runs before emphasis so *** and ___ are never read as markers.
func horizontalRulePass(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if indent, ok := ruleLine(line); ok {
			lines[i] = isolate(indent + "<hr>")
		}
	}
	return strings.Join(lines, "\n")
}

// ruleLine reports whether line consists solely of three or more of the same
// rule character (-, *, _), optionally separated by spaces or tabs.
// It returns the line's leading whitespace.
func ruleLine(line string) (string, bool) {
	body := strings.TrimLeft(line, " \t")
	compact := strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, body)

	if len(compact) < 3 {
		return "", false
	}
	c := compact[0]
	if c != '-' && c != '*' && c != '_' {
		return "", false
	}
	if strings.Count(compact, compact[:1]) != len(compact) {
		return "", false
	}
	return line[:len(line)-len(body)], true
}

package pipeline

import (
	"regexp"
	"strings"
)

// DefaultMaxListDepth bounds list nesting. Deeper items render at the deepest
// permitted level.
const DefaultMaxListDepth = 16

// indentWidth is the number of leading whitespace characters per nesting
// level. Tabs count as one character.
const indentWidth = 2

var (
	unorderedItemPattern = regexp.MustCompile(`^-\s+(.+)$`)
	orderedItemPattern   = regexp.MustCompile(`^(\d+)\.\s+(.+)$`)
)

// listKind distinguishes unordered from ordered items.
type listKind int

const (
	unorderedList listKind = iota
	orderedList
)

// tag returns the list element name for the kind.
func (k listKind) tag() string {
	if k == orderedList {
		return "ol"
	}
	return "ul"
}

// listItem is one list line of a run.
type listItem struct {
	kind    listKind
	content string
	indent  int    // leading whitespace length / indentWidth
	ordinal string // original numeral for ordered items, empty otherwise
}

// classifyLine parses line as a list item.
func classifyLine(line string) (listItem, bool) {
	body := strings.TrimLeft(line, " \t")
	indent := (len(line) - len(body)) / indentWidth

	if m := unorderedItemPattern.FindStringSubmatch(body); m != nil {
		return listItem{kind: unorderedList, content: m[1], indent: indent}, true
	}
	if m := orderedItemPattern.FindStringSubmatch(body); m != nil {
		return listItem{kind: orderedList, content: m[2], indent: indent, ordinal: m[1]}, true
	}
	return listItem{}, false
}

// listPass groups contiguous list lines into runs and renders each run as a
// nested list. Any other line ends the current run and is kept verbatim.
func listPass(maxDepth int) func(string) string {
	return func(text string) string {
		lines := strings.Split(text, "\n")
		out := make([]string, 0, len(lines))
		var run []listItem

		flush := func() {
			if len(run) > 0 {
				out = append(out, isolate(renderList(run, maxDepth)))
				run = nil
			}
		}

		for _, line := range lines {
			if item, ok := classifyLine(line); ok {
				run = append(run, item)
				continue
			}
			flush()
			out = append(out, line)
		}
		flush()

		return strings.Join(out, "\n")
	}
}

// renderList renders a run of items as nested lists.
func renderList(items []listItem, maxDepth int) string {
	if len(items) == 0 {
		return ""
	}
	levels := nestingLevels(items, maxDepth)

	var sb strings.Builder
	buildList(&sb, items, levels, 0, 0)
	return sb.String()
}

// nestingLevels maps item indents to nesting levels. An item is a child of
// the nearest preceding item with a smaller indent. The first item is level
// 0, an item is never more than one level deeper than its predecessor, and
// no level exceeds maxDepth-1, so any indentation yields a well-formed tree
// without dropping items.
func nestingLevels(items []listItem, maxDepth int) []int {
	if maxDepth < 1 {
		maxDepth = 1
	}

	levels := make([]int, len(items))
	open := []int{items[0].indent} // indents of the open levels, outermost first

	for i := 1; i < len(items); i++ {
		indent := items[i].indent
		for len(open) > 1 && open[len(open)-1] > indent {
			open = open[:len(open)-1]
		}

		switch top := open[len(open)-1]; {
		case indent < top:
			// Shallower than the first item: it becomes the new outer level.
			open[0] = indent
		case indent > top && len(open) < maxDepth:
			open = append(open, indent)
		}
		levels[i] = len(open) - 1
	}
	return levels
}

// buildList renders the list at level starting with items[pos] and returns
// the position of the first item it did not consume. Items deeper than level
// that directly follow an item are rendered as a nested list inside it.
func buildList(sb *strings.Builder, items []listItem, levels []int, pos, level int) int {
	tag := items[pos].kind.tag()
	indent := strings.Repeat("  ", level)
	itemIndent := strings.Repeat("  ", level+1) + "  "

	sb.WriteString(indent + "<" + tag + ">\n")

	for pos < len(items) && levels[pos] == level {
		item := items[pos]
		sb.WriteString(itemIndent)
		if item.kind == orderedList {
			sb.WriteString(`<li value="` + item.ordinal + `">`)
		} else {
			sb.WriteString("<li>")
		}
		sb.WriteString(item.content)
		pos++

		if pos < len(items) && levels[pos] > level {
			sb.WriteString("\n")
			pos = buildList(sb, items, levels, pos, level+1)
		}
		sb.WriteString("</li>\n")
	}

	sb.WriteString(indent + "</" + tag + ">")
	return pos
}

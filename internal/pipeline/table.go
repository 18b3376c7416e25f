package pipeline

import (
	"regexp"
	"strings"
)

var (
	// tableRowPattern matches a trimmed line of the form |...|.
	tableRowPattern = regexp.MustCompile(`^\|.*\|$`)

	// separatorCellPattern matches alignment cells: -, --, :-, -:, :-:, ...
	separatorCellPattern = regexp.MustCompile(`^:?-+:?$`)
)

var tableScanner = blockScanner{
	match: func(line string) (string, bool) {
		trimmed := strings.TrimSpace(line)
		return trimmed, tableRowPattern.MatchString(trimmed)
	},
	render: renderTable,
}

// tablePass converts runs of |...| rows into tables.
func tablePass(text string) string {
	if !strings.Contains(text, "|") {
		return text
	}
	return tableScanner.scan(text)
}

// splitCells splits a row into trimmed cells after dropping outer pipes.
func splitCells(row string) []string {
	cells := strings.Split(strings.Trim(row, "|"), "|")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	return cells
}

// isSeparatorRow reports whether every cell of row is an alignment cell.
func isSeparatorRow(row string) bool {
	cells := splitCells(row)
	for _, cell := range cells {
		if !separatorCellPattern.MatchString(cell) {
			return false
		}
	}
	return len(cells) > 0
}

// renderTable renders row 0 as the header, drops row 1 when it is a
// separator, and renders the rest as body rows. Cells are escaped.
func renderTable(rows []string) string {
	if len(rows) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("<table>\n")

	sb.WriteString("  <thead>\n    <tr>\n")
	for _, cell := range splitCells(rows[0]) {
		sb.WriteString("      <th>" + escapeHTML(cell) + "</th>\n")
	}
	sb.WriteString("    </tr>\n  </thead>\n")

	sb.WriteString("  <tbody>\n")
	for i, row := range rows[1:] {
		if i == 0 && isSeparatorRow(row) {
			continue
		}
		sb.WriteString("    <tr>\n")
		for _, cell := range splitCells(row) {
			sb.WriteString("      <td>" + escapeHTML(cell) + "</td>\n")
		}
		sb.WriteString("    </tr>\n")
	}
	sb.WriteString("  </tbody>\n")

	sb.WriteString("</table>")
	return sb.String()
}

// Package cli provides plain-text table rendering for command output.
package cli

import "strings"

// tableGutter separates columns in rendered output.
const tableGutter = "  "

// Table renders rows of text in aligned columns under a dashed header rule.
// Columns grow to their widest cell unless capped with SetColumnMaxWidth,
// in which case cell text wraps at word boundaries onto extra lines.
type Table struct {
	headers []string
	rows    [][]string
	caps    map[int]int
}

// NewTable creates a table with the given column headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers: headers,
		caps:    make(map[int]int),
	}
}

// SetColumnMaxWidth caps a column's width; longer cells wrap. A width of
// zero or less removes the cap.
func (t *Table) SetColumnMaxWidth(col, width int) {
	if width <= 0 {
		delete(t.caps, col)
		return
	}
	t.caps[col] = width
}

// AddRow appends a row. Rows shorter than the header count are padded with
// empty cells; extra cells are dropped.
func (t *Table) AddRow(cells []string) {
	row := make([]string, len(t.headers))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

// Render formats the table as a string, one trailing newline per line.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	// Wrap every cell up front so width calculation sees the final lines.
	wrapped := make([][][]string, len(t.rows))
	for r, row := range t.rows {
		wrapped[r] = make([][]string, len(row))
		for c, cell := range row {
			wrapped[r][c] = wrapText(cell, t.caps[c])
		}
	}

	widths := make([]int, len(t.headers))
	for c, h := range t.headers {
		widths[c] = len(h)
	}
	for _, row := range wrapped {
		for c, lines := range row {
			for _, line := range lines {
				if len(line) > widths[c] {
					widths[c] = len(line)
				}
			}
		}
	}

	var sb strings.Builder
	writeLine := func(cells []string) {
		for c := range t.headers {
			cell := ""
			if c < len(cells) {
				cell = cells[c]
			}
			if c < len(t.headers)-1 {
				sb.WriteString(padRight(cell, widths[c]))
				sb.WriteString(tableGutter)
			} else {
				sb.WriteString(cell)
			}
		}
		sb.WriteString("\n")
	}

	writeLine(t.headers)

	rule := make([]string, len(t.headers))
	for c, w := range widths {
		rule[c] = strings.Repeat("-", w)
	}
	writeLine(rule)

	for _, row := range wrapped {
		height := 1
		for _, lines := range row {
			if len(lines) > height {
				height = len(lines)
			}
		}
		for i := 0; i < height; i++ {
			line := make([]string, len(row))
			for c, lines := range row {
				if i < len(lines) {
					line[c] = lines[i]
				}
			}
			writeLine(line)
		}
	}

	return sb.String()
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// wrapText breaks text into lines no longer than width, preferring word
// boundaries and splitting words that exceed the width on their own.
// A width of zero or less means no wrapping.
func wrapText(text string, width int) []string {
	if width <= 0 || len(text) <= width {
		return []string{text}
	}

	var lines []string
	current := ""
	for _, word := range strings.Fields(text) {
		for len(word) > width {
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			lines = append(lines, word[:width])
			word = word[width:]
		}
		switch {
		case current == "":
			current = word
		case len(current)+1+len(word) <= width:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

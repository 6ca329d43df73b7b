// Package display prints a preview of a table with aligned columns.
package display

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"fjacquet/currency-csv/internal/table"
)

// DefaultMaxRows bounds the preview when no limit is configured.
const DefaultMaxRows = 5

// Print writes the header, a hyphen rule and at most maxRows rows of t.
func Print(w io.Writer, t *table.Table, maxRows int) error {
	if t == nil || len(t.Columns) == 0 {
		return nil
	}
	if maxRows <= 0 {
		maxRows = DefaultMaxRows
	}
	rows := t.Rows
	if len(rows) > maxRows {
		rows = rows[:maxRows]
	}
	note := fmt.Sprintf("\nNote: the preview shows at most %d rows, see the output file for all of them.\n\n", maxRows)
	return render(w, t, rows, note)
}

// PrintAll writes every row of t without the preview note.
func PrintAll(w io.Writer, t *table.Table) error {
	if t == nil || len(t.Columns) == 0 {
		return nil
	}
	return render(w, t, t.Rows, "")
}

func render(w io.Writer, t *table.Table, rows [][]string, note string) error {
	widths := make([]int, len(t.Columns))
	for i, name := range t.Columns {
		widths[i] = utf8.RuneCountInString(name)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], utf8.RuneCountInString(cell))
			}
		}
	}

	var b strings.Builder
	b.WriteString(note)
	b.WriteString(line(t.Columns, widths))

	rule := len(widths) - 1
	for _, width := range widths {
		rule += width
	}
	b.WriteString(strings.Repeat("-", rule) + "\n")

	for _, row := range rows {
		b.WriteString(line(row, widths))
	}
	if hidden := len(t.Rows) - len(rows); hidden > 0 {
		fmt.Fprintf(&b, "... %d more rows\n", hidden)
	}
	if note != "" {
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func line(cells []string, widths []int) string {
	padded := make([]string, len(widths))
	for i := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		padded[i] = fmt.Sprintf("%-*s", widths[i], cell)
	}
	return strings.TrimRight(strings.Join(padded, "|"), " ") + "\n"
}

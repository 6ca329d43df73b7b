// Package table converts separator-delimited text to a header-plus-rows
// structure and back. There is no quoting: cells must not contain the
// separator or a line terminator.
package table

import (
	"fmt"
	"io"
	"strings"

	"fjacquet/currency-csv/internal/parsererror"
)

// DefaultSeparator delimits cells when nothing else is configured.
const DefaultSeparator = "|"

// Table is an ordered header and ordered rows of cells.
type Table struct {
	Columns []string
	Rows    [][]string
}

// IsEmpty reports whether the header is missing.
func (t *Table) IsEmpty() bool {
	return t == nil || len(t.Columns) == 0 || (len(t.Columns) == 1 && t.Columns[0] == "")
}

// Clone returns a deep copy.
func (t *Table) Clone() *Table {
	if t == nil {
		return nil
	}
	out := &Table{Columns: append([]string(nil), t.Columns...)}
	if t.Rows != nil {
		out.Rows = make([][]string, len(t.Rows))
		for i, row := range t.Rows {
			out.Rows[i] = append([]string(nil), row...)
		}
	}
	return out
}

func checkSeparator(sep string) error {
	if sep == "" {
		return &parsererror.ParseError{Reason: "separator must not be empty"}
	}
	if strings.ContainsAny(sep, "\r\n") {
		return &parsererror.ParseError{Reason: fmt.Sprintf("separator %q must not contain a line terminator", sep)}
	}
	return nil
}

// Parse splits text into a table. The first line is the header and the
// first empty line ends the data. An empty first line gives an empty table.
func Parse(text, sep string) (*Table, error) {
	if err := checkSeparator(sep); err != nil {
		return nil, err
	}

	t := &Table{}
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			break
		}
		cells := strings.Split(line, sep)
		if i == 0 {
			t.Columns = cells
			continue
		}
		t.Rows = append(t.Rows, cells)
	}
	return t, nil
}

// Serialize renders t with one line per row, header first.
func Serialize(t *Table, sep string) string {
	var b strings.Builder
	writeLines(&b, t, sep)
	return b.String()
}

// Write serializes t to w.
func Write(w io.Writer, t *Table, sep string) error {
	if err := checkSeparator(sep); err != nil {
		return err
	}
	_, err := io.WriteString(w, Serialize(t, sep))
	return err
}

func writeLines(b *strings.Builder, t *Table, sep string) {
	if t == nil || len(t.Columns) == 0 {
		return
	}
	b.WriteString(strings.Join(t.Columns, sep))
	b.WriteString("\n")
	for _, row := range t.Rows {
		b.WriteString(strings.Join(row, sep))
		b.WriteString("\n")
	}
}

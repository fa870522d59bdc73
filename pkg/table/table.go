// Package table renders tabular string data as a fixed-width text block
// for terminal output. A Table is a fluent builder: set headers, per-column
// alignments, data rows, and an optional row cap, then render with String.
//
//	out := table.New().
//		Headers("COMMAND", "PID", "USER", "HOST:PORTS").
//		Alignments(table.AlignLeft, table.AlignRight, table.AlignLeft, table.AlignRight).
//		Data(ports).
//		MaxRows(5).
//		String()
//
// Each column is as wide as its widest rendered cell (header included).
// When a row cap is set and exceeded, the body keeps leading and trailing
// rows around a single "..." row. Rendering is a pure function of the
// builder's state: it never mutates the Table and repeated calls yield
// identical output.
package table

import "strings"

// defaultSeparator is printed between columns unless Separator overrides it.
const defaultSeparator = "  "

// Table accumulates configuration for one rendered table. Partial state is
// fine while building; shape mismatches (short rows, missing alignments)
// are normalized at render time, never reported as errors.
type Table struct {
	headers    []string
	hasHeaders bool
	alignments []Alignment
	data       [][]string
	maxRows    int
	separator  string
}

// New returns an empty Table with left alignment, a two-space column
// separator, and no row cap.
func New() *Table {
	return &Table{maxRows: -1, separator: defaultSeparator}
}

// Headers sets the header row. The header count fixes the column count:
// shorter data rows are padded with empty cells and extra cells are
// dropped. When Headers is never called, the column count is taken from
// the first data row and the header line is omitted.
func (t *Table) Headers(headers ...string) *Table {
	t.headers = append([]string(nil), headers...)
	t.hasHeaders = true
	return t
}

// Alignments sets per-column alignments. Missing entries default to
// AlignLeft; entries beyond the column count are ignored.
func (t *Table) Alignments(aligns ...Alignment) *Table {
	t.alignments = append([]Alignment(nil), aligns...)
	return t
}

// Data replaces the data rows.
func (t *Table) Data(rows [][]string) *Table {
	t.data = make([][]string, len(rows))
	for i, row := range rows {
		t.data[i] = append([]string(nil), row...)
	}
	return t
}

// Row appends a single data row.
func (t *Table) Row(cells ...string) *Table {
	t.data = append(t.data, append([]string(nil), cells...))
	return t
}

// MaxRows caps the rendered body at n rows, one of which is the "..." row
// marking elided data. Values below 1 leave the table unbounded.
func (t *Table) MaxRows(n int) *Table {
	if n < 1 {
		n = -1
	}
	t.maxRows = n
	return t
}

// Separator sets the string printed between columns.
func (t *Table) Separator(sep string) *Table {
	t.separator = sep
	return t
}

// String renders the table. Every line, the last included, is terminated
// by a newline. The header line comes first unless every header cell is
// empty; with no data rows only the header line is printed.
func (t *Table) String() string {
	l := t.resolve()

	var b strings.Builder
	if l.showHeader || len(l.rows) == 0 {
		l.writeRow(&b, l.headers)
	}
	for _, row := range l.rows {
		l.writeRow(&b, row)
	}
	return b.String()
}

// writeRow prints one padded, separator-joined line. A left-aligned last
// column is emitted as-is so lines carry no trailing whitespace.
func (l *layout) writeRow(b *strings.Builder, cells []string) {
	last := len(cells) - 1
	for i, cell := range cells {
		if i == last && l.alignments[i] == AlignLeft {
			b.WriteString(cell)
		} else {
			b.WriteString(pad(cell, l.widths[i], l.alignments[i]))
		}
		if i != last {
			b.WriteString(l.separator)
		}
	}
	b.WriteByte('\n')
}

package table

import "strings"

const ellipsis = "..."

// layout is a ready-to-render snapshot of a Table. Where Table tolerates
// partial or mismatched input, layout holds only normalized state: every
// row has exactly one cell per column, every column has an alignment, and
// widths cover every cell that will actually be printed.
type layout struct {
	headers    []string
	alignments []Alignment
	rows       [][]string
	widths     []int
	separator  string
	showHeader bool
}

func (t *Table) resolve() layout {
	cols := t.columnCount()

	headers := make([]string, cols)
	copy(headers, t.headers)

	alignments := make([]Alignment, cols)
	copy(alignments, t.alignments)

	rows := normalizeRows(t.data, cols)
	if t.maxRows >= 1 {
		rows = truncateRows(rows, t.maxRows, cols)
	}

	showHeader := false
	for _, h := range headers {
		if h != "" {
			showHeader = true
			break
		}
	}

	return layout{
		headers:    headers,
		alignments: alignments,
		rows:       rows,
		widths:     columnWidths(headers, rows),
		separator:  t.separator,
		showHeader: showHeader,
	}
}

// columnCount is the header count when headers were set, otherwise the
// width of the first data row. Rows are later padded or trimmed to it.
func (t *Table) columnCount() int {
	if t.hasHeaders {
		return len(t.headers)
	}
	if len(t.data) > 0 {
		return len(t.data[0])
	}
	return 0
}

// normalizeRows pads short rows with empty cells and drops extra cells so
// every row has exactly cols cells.
func normalizeRows(data [][]string, cols int) [][]string {
	rows := make([][]string, len(data))
	for i, row := range data {
		cells := make([]string, cols)
		copy(cells, row)
		rows[i] = cells
	}
	return rows
}

// truncateRows caps the body at maxRows rows by keeping leading and
// trailing rows around a single ellipsis row. The ellipsis row counts
// against the cap, and the split is tail-biased so the most recent rows
// stay visible.
func truncateRows(rows [][]string, maxRows, cols int) [][]string {
	if len(rows) <= maxRows {
		return rows
	}

	head := (maxRows - 1) / 2
	tail := maxRows - 1 - head

	marker := make([]string, cols)
	for i := range marker {
		marker[i] = ellipsis
	}

	out := make([][]string, 0, maxRows)
	out = append(out, rows[:head]...)
	out = append(out, marker)
	out = append(out, rows[len(rows)-tail:]...)
	return out
}

// columnWidths computes each column's width as the widest cell among the
// header and the rows that survived truncation. Elided rows never widen a
// column; the ellipsis row can.
func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = cellWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := cellWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// pad aligns a cell within width columns. Widths are measured on the
// stripped text, so escape sequences pass through without shifting the
// padding.
func pad(cell string, width int, align Alignment) string {
	gap := width - cellWidth(cell)
	if gap <= 0 {
		return cell
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", gap) + cell
	case AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + cell + strings.Repeat(" ", gap-left)
	}
	return cell + strings.Repeat(" ", gap)
}

package table

import (
	"reflect"
	"testing"
)

func TestPad(t *testing.T) {
	tests := []struct {
		cell  string
		width int
		align Alignment
		want  string
	}{
		{"ab", 5, AlignLeft, "ab   "},
		{"ab", 5, AlignRight, "   ab"},
		{"ab", 5, AlignCenter, " ab  "},
		{"ab", 6, AlignCenter, "  ab  "},
		{"ab", 2, AlignLeft, "ab"},
		{"ab", 1, AlignRight, "ab"},
		{"", 3, AlignLeft, "   "},
	}
	for _, tt := range tests {
		if got := pad(tt.cell, tt.width, tt.align); got != tt.want {
			t.Errorf("pad(%q, %d, %s) = %q, want %q", tt.cell, tt.width, tt.align, got, tt.want)
		}
	}
}

func TestTruncateRowsSplit(t *testing.T) {
	rows := [][]string{{"1"}, {"2"}, {"3"}, {"4"}, {"5"}, {"6"}}

	got := truncateRows(rows, 5, 1)
	want := [][]string{{"1"}, {"2"}, {"..."}, {"5"}, {"6"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("truncateRows = %v, want %v", got, want)
	}
}

func TestTruncateRowsNoOp(t *testing.T) {
	rows := [][]string{{"1"}, {"2"}}
	if got := truncateRows(rows, 2, 1); !reflect.DeepEqual(got, rows) {
		t.Errorf("truncateRows = %v, want unchanged rows", got)
	}
}

func TestColumnWidthsIncludeHeader(t *testing.T) {
	widths := columnWidths(
		[]string{"LONG HEADER", "B"},
		[][]string{{"x", "value"}, {"y", "va"}},
	)
	want := []int{11, 5}
	if !reflect.DeepEqual(widths, want) {
		t.Errorf("columnWidths = %v, want %v", widths, want)
	}
}

func TestColumnCount(t *testing.T) {
	if got := New().Headers("a", "b").Row("x").columnCount(); got != 2 {
		t.Errorf("columnCount = %d, want 2", got)
	}
	if got := New().Row("x", "y", "z").columnCount(); got != 3 {
		t.Errorf("columnCount = %d, want 3", got)
	}
	if got := New().columnCount(); got != 0 {
		t.Errorf("columnCount = %d, want 0", got)
	}
}

func TestAlignmentString(t *testing.T) {
	if AlignLeft.String() != "left" || AlignRight.String() != "right" || AlignCenter.String() != "center" {
		t.Error("Alignment.String() mismatch")
	}
	if Alignment(9).String() != "unknown" {
		t.Error("unexpected name for out-of-range alignment")
	}
}

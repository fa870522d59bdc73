package table

// Alignment selects the padding side for cells narrower than their column.
type Alignment uint8

const (
	// AlignLeft pads on the right. It is the zero value and the default
	// for every column whose alignment is left unspecified.
	AlignLeft Alignment = iota
	// AlignRight pads on the left.
	AlignRight
	// AlignCenter splits the padding, with the extra space going to the
	// right when it cannot be split evenly.
	AlignCenter
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	}
	return "unknown"
}

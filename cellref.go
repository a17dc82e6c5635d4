package gridsheet

import (
	"fmt"
	"strconv"
	"strings"
)

// CellRef represents a single cell address in the grid.
type CellRef struct {
	Row int // 0-based row index
	Col int // 0-based column index
}

// NewCellRef creates a CellRef from a 0-based row and column.
func NewCellRef(row, col int) CellRef {
	return CellRef{Row: row, Col: col}
}

// ParseCellRef parses a cell label like "A1" or "ab12" into a CellRef.
func ParseCellRef(s string) (CellRef, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return CellRef{}, fmt.Errorf("empty cell reference")
	}
	tok := ClassifyToken(s)
	if tok.Kind != TokenLabel || tok.Digits == "" {
		return CellRef{}, fmt.Errorf("invalid cell reference: %q", s)
	}
	col, err := NameToCol(tok.Letters)
	if err != nil {
		return CellRef{}, fmt.Errorf("invalid cell reference %q: %w", s, err)
	}
	row, err := strconv.Atoi(tok.Digits)
	if err != nil || row < 1 {
		return CellRef{}, fmt.Errorf("invalid row number in cell reference: %q", s)
	}
	return CellRef{Row: row - 1, Col: col}, nil
}

// String formats the CellRef as a label like "A1".
func (c CellRef) String() string {
	return ColToName(c.Col) + strconv.Itoa(c.Row+1)
}

// ColToName converts a 0-based column index to a column label.
// 0→"A", 25→"Z", 26→"AA", 701→"ZZ", 702→"AAA"
func ColToName(col int) string {
	if col < 0 {
		return ""
	}
	var buf []byte
	for {
		buf = append(buf, byte('A'+col%26))
		if col < 26 {
			break
		}
		// no zero digit: every position above the first is shifted by one
		col = col/26 - 1
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// NameToCol converts a column label to a 0-based column index.
// "A"→0, "Z"→25, "AA"→26. Letters are case-insensitive.
func NameToCol(name string) (int, error) {
	if name == "" {
		return 0, fmt.Errorf("empty column name")
	}
	for i := 0; i < len(name); i++ {
		if !isLetter(name[i]) {
			return 0, fmt.Errorf("invalid column name: %q", name)
		}
	}
	return labelCol(name), nil
}

// AreaRef represents an inclusive rectangle between two corner cells.
// First holds the smaller row and column, Last the larger ones.
type AreaRef struct {
	First CellRef
	Last  CellRef
}

// NewAreaRef creates a normalized AreaRef from any two corners.
func NewAreaRef(a, b CellRef) AreaRef {
	if a.Row > b.Row {
		a.Row, b.Row = b.Row, a.Row
	}
	if a.Col > b.Col {
		a.Col, b.Col = b.Col, a.Col
	}
	return AreaRef{First: a, Last: b}
}

// String formats the AreaRef as "A1:C5".
func (a AreaRef) String() string {
	return a.First.String() + ":" + a.Last.String()
}

// Size returns the dimensions of the area.
func (a AreaRef) Size() Size {
	return Size{
		Width:  a.Last.Col - a.First.Col + 1,
		Height: a.Last.Row - a.First.Row + 1,
	}
}

// Contains returns true if the given cell is within this area.
func (a AreaRef) Contains(ref CellRef) bool {
	return ref.Row >= a.First.Row && ref.Row <= a.Last.Row &&
		ref.Col >= a.First.Col && ref.Col <= a.Last.Col
}

// Size represents width (columns) and height (rows).
type Size struct {
	Width  int
	Height int
}

// String formats the Size as "(WxH)".
func (s Size) String() string {
	return fmt.Sprintf("(%dx%d)", s.Width, s.Height)
}

package gridsheet

import (
	"fmt"
	"sort"
)

// InsertRow inserts an empty row at index before, shifting later rows
// down. before may equal RowCount to append.
func (g *Grid) InsertRow(before int) error {
	if before < 0 || before > len(g.rows) {
		return fmt.Errorf("insert row %d: %w (%d rows)", before, ErrOutOfBounds, len(g.rows))
	}
	g.rows = append(g.rows, nil)
	copy(g.rows[before+1:], g.rows[before:])
	g.rows[before] = make([]string, g.cols)
	g.log.Debugf("inserted row at %d, now %dx%d", before, g.cols, len(g.rows))
	g.notifyStructure()
	return nil
}

// InsertColumn inserts an empty column at index before in every row,
// shifting later columns right. before may equal ColCount to append.
func (g *Grid) InsertColumn(before int) error {
	if before < 0 || before > g.cols {
		return fmt.Errorf("insert column %d: %w (%d columns)", before, ErrOutOfBounds, g.cols)
	}
	for i, row := range g.rows {
		row = append(row, "")
		copy(row[before+1:], row[before:])
		row[before] = ""
		g.rows[i] = row
	}
	g.cols++
	g.log.Debugf("inserted column %s, now %dx%d", ColToName(before), g.cols, len(g.rows))
	g.notifyStructure()
	return nil
}

// InsertRowAbove inserts an empty row above row.
func (g *Grid) InsertRowAbove(row int) error { return g.InsertRow(row) }

// InsertRowBelow inserts an empty row below row.
func (g *Grid) InsertRowBelow(row int) error { return g.InsertRow(row + 1) }

// InsertColumnLeft inserts an empty column left of col.
func (g *Grid) InsertColumnLeft(col int) error { return g.InsertColumn(col) }

// InsertColumnRight inserts an empty column right of col.
func (g *Grid) InsertColumnRight(col int) error { return g.InsertColumn(col + 1) }

// SortByColumn reorders whole rows by their text in column col. Rows with
// an empty cell in that column go last regardless of direction; rows with
// equal text keep their relative order. Text is compared byte-wise.
func (g *Grid) SortByColumn(col int, ascending bool) error {
	if col < 0 || col >= g.cols {
		return fmt.Errorf("sort by column %d: %w (%d columns)", col, ErrOutOfBounds, g.cols)
	}
	sort.SliceStable(g.rows, func(i, j int) bool {
		return lessCell(g.rows[i][col], g.rows[j][col], ascending)
	})
	g.log.Debugf("sorted by column %s (ascending=%t)", ColToName(col), ascending)
	g.notifyStructure()
	return nil
}

func lessCell(a, b string, ascending bool) bool {
	switch {
	case a == b:
		return false
	case a == "":
		return false
	case b == "":
		return true
	case ascending:
		return a < b
	default:
		return a > b
	}
}

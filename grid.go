package gridsheet

import (
	"fmt"

	"github.com/tliron/commonlog"
)

// Sheet is the cell accessor the resolver and evaluator work against.
// Row and column counts are read on every evaluation, so they must reflect
// the sheet's size at that moment.
type Sheet interface {
	Get(row, col int) string
	Set(row, col int, value string)
	RowCount() int
	ColCount() int
}

// Grid is an in-memory sheet of raw cell text. Every row has exactly
// ColCount cells. Rows and columns can be inserted but never removed.
//
// A Grid is not safe for concurrent use.
type Grid struct {
	rows      [][]string
	cols      int
	log       commonlog.Logger
	listeners []GridListener
}

var _ Sheet = (*Grid)(nil)

// NewGrid creates an empty grid, 50 rows by 26 columns unless configured otherwise.
func NewGrid(opts ...Option) *Grid {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	g := &Grid{
		rows:      make([][]string, o.rows),
		cols:      o.cols,
		log:       o.log,
		listeners: o.listeners,
	}
	for i := range g.rows {
		g.rows[i] = make([]string, o.cols)
	}
	return g
}

// NewGridFromRows creates a grid holding a copy of rows. Short rows are
// padded with empty cells so that every row is as long as the longest one.
func NewGridFromRows(rows [][]string, opts ...Option) *Grid {
	width := 0
	for _, r := range rows {
		width = max(width, len(r))
	}
	g := NewGrid(append(opts, WithSize(len(rows), width))...)
	for i, r := range rows {
		copy(g.rows[i], r)
	}
	return g
}

// AddListener registers a listener for subsequent changes.
func (g *Grid) AddListener(l GridListener) {
	g.listeners = append(g.listeners, l)
}

// RowCount returns the current number of rows.
func (g *Grid) RowCount() int { return len(g.rows) }

// ColCount returns the current number of columns.
func (g *Grid) ColCount() int { return g.cols }

// Get returns the raw text at (row, col), or "" outside the grid.
func (g *Grid) Get(row, col int) string {
	if !g.inBounds(row, col) {
		return ""
	}
	return g.rows[row][col]
}

// Set stores raw text at (row, col). Writes outside the grid are ignored;
// use SetCell to get an error instead.
func (g *Grid) Set(row, col int, value string) {
	if g.inBounds(row, col) {
		g.rows[row][col] = value
	}
}

// SetCell stores raw text at ref without formula evaluation.
func (g *Grid) SetCell(ref CellRef, value string) error {
	if !g.inBounds(ref.Row, ref.Col) {
		return fmt.Errorf("set %s: %w (grid is %dx%d)", ref, ErrOutOfBounds, g.cols, len(g.rows))
	}
	g.rows[ref.Row][ref.Col] = value
	g.notifyCell(ref, value)
	return nil
}

// Rows returns a copy of the grid contents.
func (g *Grid) Rows() [][]string {
	out := make([][]string, len(g.rows))
	for i, r := range g.rows {
		out[i] = append([]string(nil), r...)
	}
	return out
}

// Commit stores text typed into (row, col). Formula-shaped text is
// evaluated immediately with (row, col) as the editing cell and replaced by
// its result, a number or an error literal. Commit returns the stored value.
func (g *Grid) Commit(row, col int, text string) (string, error) {
	ref := NewCellRef(row, col)
	if !g.inBounds(row, col) {
		return "", fmt.Errorf("commit %s: %w (grid is %dx%d)", ref, ErrOutOfBounds, g.cols, len(g.rows))
	}
	value := text
	if f, ok := DetectFormula(text); ok {
		g.rows[row][col] = text
		value = Evaluate(g, ref, f)
		g.log.Debugf("%s: %s -> %s", ref, f, value)
	}
	g.rows[row][col] = value
	g.notifyCell(ref, value)
	return value, nil
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < len(g.rows) && col >= 0 && col < g.cols
}

func (g *Grid) notifyCell(ref CellRef, value string) {
	for _, l := range g.listeners {
		l.CellChanged(ref, value)
	}
}

func (g *Grid) notifyStructure() {
	for _, l := range g.listeners {
		l.StructureChanged(len(g.rows), g.cols)
	}
}

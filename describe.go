package gridsheet

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// UsedArea returns the smallest area holding every non-empty cell.
// ok is false when the grid is blank.
func (g *Grid) UsedArea() (area AreaRef, ok bool) {
	for r, row := range g.rows {
		for c, v := range row {
			if v == "" {
				continue
			}
			ref := CellRef{Row: r, Col: c}
			if !ok {
				area, ok = AreaRef{First: ref, Last: ref}, true
				continue
			}
			area = AreaRef{
				First: CellRef{Row: min(area.First.Row, r), Col: min(area.First.Col, c)},
				Last:  CellRef{Row: max(area.Last.Row, r), Col: max(area.Last.Col, c)},
			}
		}
	}
	return area, ok
}

// Describe returns a human-readable dump of the grid: its size followed by
// a table of the used area with column labels and 1-based row numbers.
func Describe(g *Grid) (string, error) {
	var b strings.Builder
	if err := WriteTable(&b, g); err != nil {
		return "", err
	}
	return b.String(), nil
}

// WriteTable writes the Describe dump of g to w.
func WriteTable(w io.Writer, g *Grid) error {
	fmt.Fprintf(w, "Grid: %d rows x %d columns\n", g.RowCount(), g.ColCount())
	area, ok := g.UsedArea()
	if !ok {
		_, err := io.WriteString(w, "(empty)\n")
		return err
	}
	// always start at A1 so that labels line up with what the user typed
	area.First = CellRef{}

	header := []string{""}
	for col := area.First.Col; col <= area.Last.Col; col++ {
		header = append(header, ColToName(col))
	}
	rows := make([][]string, 0, area.Size().Height)
	for row := area.First.Row; row <= area.Last.Row; row++ {
		line := []string{strconv.Itoa(row + 1)}
		for col := area.First.Col; col <= area.Last.Col; col++ {
			line = append(line, g.Get(row, col))
		}
		rows = append(rows, line)
	}

	table := tablewriter.NewWriter(w)
	table.Header(header)
	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("describe grid: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("describe grid: %w", err)
	}
	return nil
}

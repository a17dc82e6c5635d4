// Package tui is a terminal front end for a gridsheet.Grid: a scrolling
// grid with a cursor, in-place cell editing and single-key row/column
// actions.
package tui

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/javajack/gridsheet"
	"github.com/tliron/commonlog"
)

const (
	gutterWidth = 5  // row numbers
	cellWidth   = 10 // including one column of padding
	headerLines = 1  // column labels
	statusLines = 1  // edit line / messages
)

var (
	styleHeader = tcell.StyleDefault.Bold(true).Reverse(true)
	styleCursor = tcell.StyleDefault.Reverse(true)
	styleCell   = tcell.StyleDefault
)

// Key bindings in normal mode.
const helpText = "enter:edit  r/R:row above/below  c/C:col left/right  s/S:sort A-Z/Z-A  x:clear  q:quit"

// App holds the editor state. It is driven one event at a time by Run, or
// directly through HandleKey and Draw.
type App struct {
	grid *gridsheet.Grid
	log  commonlog.Logger

	cur       gridsheet.CellRef
	top, left int // first visible row and column

	editing bool
	input   []rune
	status  string
	quit    bool
}

// New creates an App editing g.
func New(g *gridsheet.Grid) *App {
	a := &App{
		grid:   g,
		log:    commonlog.GetLogger("gridsheet.tui"),
		status: helpText,
	}
	g.AddListener(gridsheet.ListenerFuncs{
		OnStructure: func(rows, cols int) {
			a.cur.Row = min(a.cur.Row, rows-1)
			a.cur.Col = min(a.cur.Col, cols-1)
		},
	})
	return a
}

// Cursor returns the selected cell.
func (a *App) Cursor() gridsheet.CellRef { return a.cur }

// Editing reports whether the edit line is open.
func (a *App) Editing() bool { return a.editing }

// Status returns the current status line text.
func (a *App) Status() string { return a.status }

// Done reports whether the user asked to quit.
func (a *App) Done() bool { return a.quit }

// Run draws and handles events on s until the user quits.
func (a *App) Run(s tcell.Screen) error {
	for !a.quit {
		a.Draw(s)
		switch ev := s.PollEvent().(type) {
		case *tcell.EventKey:
			a.HandleKey(ev)
		case *tcell.EventResize:
			s.Sync()
		case nil:
			return fmt.Errorf("screen closed")
		}
	}
	return nil
}

// HandleKey applies one key press.
func (a *App) HandleKey(ev *tcell.EventKey) {
	if a.editing {
		a.handleEditKey(ev)
		return
	}
	switch ev.Key() {
	case tcell.KeyUp:
		a.move(-1, 0)
	case tcell.KeyDown:
		a.move(1, 0)
	case tcell.KeyLeft:
		a.move(0, -1)
	case tcell.KeyRight, tcell.KeyTab:
		a.move(0, 1)
	case tcell.KeyEnter, tcell.KeyF2:
		a.startEdit([]rune(a.grid.Get(a.cur.Row, a.cur.Col)))
	case tcell.KeyDelete:
		a.commit("")
	case tcell.KeyCtrlC, tcell.KeyEscape:
		a.quit = true
	case tcell.KeyRune:
		a.handleRune(ev.Rune())
	}
}

func (a *App) handleRune(r rune) {
	var err error
	switch r {
	case 'q':
		a.quit = true
	case 'r':
		err = a.grid.InsertRowAbove(a.cur.Row)
	case 'R':
		err = a.grid.InsertRowBelow(a.cur.Row)
	case 'c':
		err = a.grid.InsertColumnLeft(a.cur.Col)
	case 'C':
		err = a.grid.InsertColumnRight(a.cur.Col)
	case 's':
		err = a.grid.SortByColumn(a.cur.Col, true)
	case 'S':
		err = a.grid.SortByColumn(a.cur.Col, false)
	case 'x':
		a.commit("")
	default:
		// numbers and formulas can be typed straight away
		if r == '=' || r == '-' || r == '.' || (r >= '0' && r <= '9') {
			a.startEdit([]rune{r})
		}
		return
	}
	if err != nil {
		a.status = err.Error()
		a.log.Errorf("%s", err)
		return
	}
	a.status = fmt.Sprintf("%d rows x %d columns", a.grid.RowCount(), a.grid.ColCount())
}

func (a *App) handleEditKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		a.editing = false
		a.input = nil
		a.status = helpText
	case tcell.KeyEnter:
		a.editing = false
		a.commit(string(a.input))
		a.input = nil
		a.move(1, 0)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(a.input) > 0 {
			a.input = a.input[:len(a.input)-1]
		}
	case tcell.KeyRune:
		a.input = append(a.input, ev.Rune())
	}
}

func (a *App) startEdit(initial []rune) {
	a.editing = true
	a.input = append([]rune(nil), initial...)
}

func (a *App) commit(text string) {
	value, err := a.grid.Commit(a.cur.Row, a.cur.Col, text)
	if err != nil {
		a.status = err.Error()
		return
	}
	a.status = a.cur.String() + ": " + value
	a.log.Debugf("commit %s = %q", a.cur, value)
}

func (a *App) move(dr, dc int) {
	a.cur.Row = clamp(a.cur.Row+dr, 0, a.grid.RowCount()-1)
	a.cur.Col = clamp(a.cur.Col+dc, 0, a.grid.ColCount()-1)
}

// Draw renders the visible part of the grid and the status line.
func (a *App) Draw(s tcell.Screen) {
	w, h := s.Size()
	visRows := max(h-headerLines-statusLines, 1)
	visCols := max((w-gutterWidth)/cellWidth, 1)
	a.scrollTo(visRows, visCols)

	s.Clear()
	fill(s, 0, 0, gutterWidth, styleHeader)
	for i := 0; i < visCols && a.left+i < a.grid.ColCount(); i++ {
		x := gutterWidth + i*cellWidth
		fill(s, x, 0, cellWidth, styleHeader)
		label := gridsheet.ColToName(a.left + i)
		putStr(s, x+(cellWidth-len(label))/2, 0, cellWidth, label, styleHeader)
	}
	for j := 0; j < visRows && a.top+j < a.grid.RowCount(); j++ {
		row := a.top + j
		y := headerLines + j
		fill(s, 0, y, gutterWidth, styleHeader)
		putStr(s, 0, y, gutterWidth-1, strconv.Itoa(row+1), styleHeader)
		for i := 0; i < visCols && a.left+i < a.grid.ColCount(); i++ {
			col := a.left + i
			style := styleCell
			if row == a.cur.Row && col == a.cur.Col {
				style = styleCursor
			}
			x := gutterWidth + i*cellWidth
			fill(s, x, y, cellWidth-1, style)
			putStr(s, x, y, cellWidth-1, a.grid.Get(row, col), style)
		}
	}

	line := a.status
	if a.editing {
		line = a.cur.String() + "> " + string(a.input)
		s.ShowCursor(min(utf8.RuneCountInString(line), w-1), h-1)
	} else {
		s.HideCursor()
	}
	putStr(s, 0, h-1, w, line, styleCell)
	s.Show()
}

func (a *App) scrollTo(visRows, visCols int) {
	if a.cur.Row < a.top {
		a.top = a.cur.Row
	} else if a.cur.Row >= a.top+visRows {
		a.top = a.cur.Row - visRows + 1
	}
	if a.cur.Col < a.left {
		a.left = a.cur.Col
	} else if a.cur.Col >= a.left+visCols {
		a.left = a.cur.Col - visCols + 1
	}
}

func fill(s tcell.Screen, x, y, width int, style tcell.Style) {
	for i := 0; i < width; i++ {
		s.SetContent(x+i, y, ' ', nil, style)
	}
}

// putStr writes at most width runes of text starting at (x, y).
func putStr(s tcell.Screen, x, y, width int, text string, style tcell.Style) {
	i := 0
	for _, r := range text {
		if i >= width {
			return
		}
		s.SetContent(x+i, y, r, nil, style)
		i++
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

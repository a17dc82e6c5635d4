package gridsheet

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Script drives a Grid with one expression per line, standing in for the
// editor's keyboard and context-menu actions. Available functions:
//
//	setCell("A1", "=SUM(B1:B3)")  commit text into a cell, returns the stored value
//	cell("A1")                    raw text of a cell
//	insertRowAbove(3)             rows are 1-based as displayed
//	insertRowBelow(3)
//	insertColumnLeft("B")
//	insertColumnRight("B")
//	sortColumn("B", true)         true for A to Z, false for Z to A
//	rowCount(), colCount()
//	show()                        write the Describe dump to the script output
//
// Compiled programs are cached by source text.
type Script struct {
	grid  *Grid
	out   io.Writer
	opts  []expr.Option
	cache map[string]*vm.Program
}

// NewScript creates a Script acting on g. show() writes to out; a nil out
// discards the output.
func NewScript(g *Grid, out io.Writer) *Script {
	if out == nil {
		out = io.Discard
	}
	s := &Script{grid: g, out: out, cache: make(map[string]*vm.Program)}
	s.opts = []expr.Option{
		expr.Env(map[string]any{}),
		expr.Function("setCell", s.set),
		expr.Function("cell", s.get),
		expr.Function("insertRowAbove", s.insertRow("insertRowAbove", false)),
		expr.Function("insertRowBelow", s.insertRow("insertRowBelow", true)),
		expr.Function("insertColumnLeft", s.insertColumn("insertColumnLeft", false)),
		expr.Function("insertColumnRight", s.insertColumn("insertColumnRight", true)),
		expr.Function("sortColumn", s.sort),
		expr.Function("rowCount", func(...any) (any, error) { return g.RowCount(), nil }),
		expr.Function("colCount", func(...any) (any, error) { return g.ColCount(), nil }),
		expr.Function("show", s.show),
	}
	return s
}

// Exec compiles (or reuses) and runs a single expression.
func (s *Script) Exec(line string) (any, error) {
	program, err := s.compile(line)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", line, err)
	}
	result, err := expr.Run(program, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("run %q: %w", line, err)
	}
	return result, nil
}

// Run executes r line by line. Blank lines and lines starting with "#" are
// skipped. It stops at the first failing line.
func (s *Script) Run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, err := s.Exec(line); err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	return nil
}

func (s *Script) compile(line string) (*vm.Program, error) {
	if p, ok := s.cache[line]; ok {
		return p, nil
	}
	p, err := expr.Compile(line, s.opts...)
	if err != nil {
		return nil, err
	}
	s.cache[line] = p
	return p, nil
}

func (s *Script) set(params ...any) (any, error) {
	if err := wantArgs("setCell", params, 2); err != nil {
		return nil, err
	}
	ref, err := argRef(params[0])
	if err != nil {
		return nil, err
	}
	text, err := argString(params[1])
	if err != nil {
		return nil, err
	}
	return s.grid.Commit(ref.Row, ref.Col, text)
}

func (s *Script) get(params ...any) (any, error) {
	if err := wantArgs("cell", params, 1); err != nil {
		return nil, err
	}
	ref, err := argRef(params[0])
	if err != nil {
		return nil, err
	}
	return s.grid.Get(ref.Row, ref.Col), nil
}

func (s *Script) insertRow(name string, below bool) func(...any) (any, error) {
	return func(params ...any) (any, error) {
		if err := wantArgs(name, params, 1); err != nil {
			return nil, err
		}
		n, err := argInt(params[0])
		if err != nil {
			return nil, err
		}
		if below {
			err = s.grid.InsertRowBelow(n - 1)
		} else {
			err = s.grid.InsertRowAbove(n - 1)
		}
		if err != nil {
			return nil, err
		}
		return s.grid.RowCount(), nil
	}
}

func (s *Script) insertColumn(name string, right bool) func(...any) (any, error) {
	return func(params ...any) (any, error) {
		if err := wantArgs(name, params, 1); err != nil {
			return nil, err
		}
		col, err := argCol(params[0])
		if err != nil {
			return nil, err
		}
		if right {
			err = s.grid.InsertColumnRight(col)
		} else {
			err = s.grid.InsertColumnLeft(col)
		}
		if err != nil {
			return nil, err
		}
		return s.grid.ColCount(), nil
	}
}

func (s *Script) sort(params ...any) (any, error) {
	if err := wantArgs("sortColumn", params, 2); err != nil {
		return nil, err
	}
	col, err := argCol(params[0])
	if err != nil {
		return nil, err
	}
	asc, ok := params[1].(bool)
	if !ok {
		return nil, fmt.Errorf("sortColumn: direction must be bool, got %T", params[1])
	}
	return nil, s.grid.SortByColumn(col, asc)
}

func (s *Script) show(...any) (any, error) {
	return nil, WriteTable(s.out, s.grid)
}

func wantArgs(name string, params []any, n int) error {
	if len(params) != n {
		return fmt.Errorf("%s: expected %d arguments, got %d", name, n, len(params))
	}
	return nil
}

func argString(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case int, int64, float64:
		return fmt.Sprint(x), nil
	default:
		return "", fmt.Errorf("expected string, got %T", v)
	}
}

func argInt(v any) (int, error) {
	switch x := v.(type) {
	case int:
		return x, nil
	case int64:
		return int(x), nil
	case float64:
		if x != float64(int(x)) {
			return 0, fmt.Errorf("expected integer, got %v", x)
		}
		return int(x), nil
	default:
		return 0, fmt.Errorf("expected integer, got %T", v)
	}
}

func argRef(v any) (CellRef, error) {
	s, err := argString(v)
	if err != nil {
		return CellRef{}, err
	}
	return ParseCellRef(s)
}

// argCol accepts a column label ("B") or a 0-based index.
func argCol(v any) (int, error) {
	if s, ok := v.(string); ok {
		return NameToCol(s)
	}
	return argInt(v)
}

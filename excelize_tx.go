package gridsheet

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// DefaultSheetName is the worksheet used when none is given.
const DefaultSheetName = "Sheet1"

// ExcelizeSheet implements Sheet on top of one worksheet of an excelize
// workbook, so formulas can be evaluated directly against an xlsx file.
// Its bounds are the sheet's used range when opened and grow as cells
// past them are set.
type ExcelizeSheet struct {
	file  *excelize.File
	sheet string
	rows  int
	cols  int
}

var _ Sheet = (*ExcelizeSheet)(nil)

// NewExcelizeSheet wraps the named worksheet of f.
func NewExcelizeSheet(f *excelize.File, sheet string) (*ExcelizeSheet, error) {
	if sheet == "" {
		sheet = DefaultSheetName
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read rows from sheet %q: %w", sheet, err)
	}
	xs := &ExcelizeSheet{file: f, sheet: sheet, rows: len(rows)}
	for _, r := range rows {
		xs.cols = max(xs.cols, len(r))
	}
	return xs, nil
}

func (xs *ExcelizeSheet) RowCount() int { return xs.rows }
func (xs *ExcelizeSheet) ColCount() int { return xs.cols }

// Get returns the formatted text of a cell, or "" if it cannot be read.
func (xs *ExcelizeSheet) Get(row, col int) string {
	if row < 0 || col < 0 {
		return ""
	}
	v, err := xs.file.GetCellValue(xs.sheet, NewCellRef(row, col).String())
	if err != nil {
		return ""
	}
	return v
}

// Set writes value to a cell; numeric text is stored as a number.
func (xs *ExcelizeSheet) Set(row, col int, value string) {
	if row < 0 || col < 0 {
		return
	}
	if err := writeCell(xs.file, xs.sheet, NewCellRef(row, col), value); err != nil {
		return
	}
	xs.rows = max(xs.rows, row+1)
	xs.cols = max(xs.cols, col+1)
}

// File returns the underlying excelize file.
func (xs *ExcelizeSheet) File() *excelize.File {
	return xs.file
}

// writeCell writes text that round-trips as a number as a numeric cell and
// everything else as a string.
func writeCell(f *excelize.File, sheet string, ref CellRef, value string) error {
	if n, ok := ParseNumber(value); ok && value != "" && FormatNumber(n) == value {
		return f.SetCellValue(sheet, ref.String(), n)
	}
	return f.SetCellValue(sheet, ref.String(), value)
}

// ReadXLSX loads a worksheet into a new Grid. The grid is at least as large
// as the configured size (50x26 by default) and grows to fit the sheet.
func ReadXLSX(r io.Reader, sheet string, opts ...Option) (*Grid, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return readFile(f, sheet, opts...)
}

// OpenXLSX loads a worksheet of the workbook at path into a new Grid.
func OpenXLSX(path, sheet string, opts ...Option) (*Grid, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %q: %w", path, err)
	}
	defer f.Close()
	return readFile(f, sheet, opts...)
}

func readFile(f *excelize.File, sheet string, opts ...Option) (*Grid, error) {
	if sheet == "" {
		sheet = f.GetSheetName(f.GetActiveSheetIndex())
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read rows from sheet %q: %w", sheet, err)
	}
	g := NewGrid(opts...)
	for _, r := range rows {
		for g.ColCount() < len(r) {
			if err := g.InsertColumn(g.ColCount()); err != nil {
				return nil, err
			}
		}
	}
	for g.RowCount() < len(rows) {
		if err := g.InsertRow(g.RowCount()); err != nil {
			return nil, err
		}
	}
	for i, r := range rows {
		copy(g.rows[i], r)
	}
	g.log.Infof("loaded sheet %q: %d rows x %d columns", sheet, g.RowCount(), g.ColCount())
	return g, nil
}

// WriteXLSX writes the grid as a single-sheet workbook to w.
func WriteXLSX(w io.Writer, g *Grid, sheet string) error {
	f, err := buildWorkbook(g, sheet)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// SaveXLSX writes the grid as a single-sheet workbook to path.
func SaveXLSX(path string, g *Grid, sheet string) error {
	f, err := buildWorkbook(g, sheet)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %q: %w", path, err)
	}
	return nil
}

func buildWorkbook(g *Grid, sheet string) (*excelize.File, error) {
	if sheet == "" {
		sheet = DefaultSheetName
	}
	f := excelize.NewFile()
	if sheet != DefaultSheetName {
		if err := f.SetSheetName(DefaultSheetName, sheet); err != nil {
			f.Close()
			return nil, fmt.Errorf("rename sheet to %q: %w", sheet, err)
		}
	}
	for r, row := range g.rows {
		for c, v := range row {
			if v == "" {
				continue
			}
			if err := writeCell(f, sheet, CellRef{Row: r, Col: c}, v); err != nil {
				f.Close()
				return nil, fmt.Errorf("write %s: %w", CellRef{Row: r, Col: c}, err)
			}
		}
	}
	return f, nil
}

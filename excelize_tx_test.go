package gridsheet

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestXLSX_RoundTrip(t *testing.T) {
	g := NewGrid(WithSize(4, 3))
	commit(t, g, "A1", "Name")
	commit(t, g, "B1", "Qty")
	commit(t, g, "A2", "apples")
	commit(t, g, "B2", "4")
	commit(t, g, "B3", "2.5")
	commit(t, g, "B4", "=SUM(B2:B3)")
	commit(t, g, "C4", "007")

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, g, ""))

	back, err := ReadXLSX(&buf, "", WithSize(2, 2))
	require.NoError(t, err)
	assert.Equal(t, 4, back.RowCount())
	assert.Equal(t, 3, back.ColCount())
	assert.Equal(t, "apples", back.Get(1, 0))
	assert.Equal(t, "4", back.Get(1, 1))
	assert.Equal(t, "6.5", back.Get(3, 1))
	assert.Equal(t, "007", back.Get(3, 2))
	assertRectangular(t, back)
}

func TestXLSX_NamedSheet(t *testing.T) {
	g := NewGridFromRows([][]string{{"12", "text", "007"}})
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, g, "Data"))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Data"}, f.GetSheetList())
	v, err := f.GetCellValue("Data", "A1")
	require.NoError(t, err)
	assert.Equal(t, "12", v)
	v, err = f.GetCellValue("Data", "C1")
	require.NoError(t, err)
	assert.Equal(t, "007", v)
}

func TestXLSX_GrowsToDefaultSize(t *testing.T) {
	g := NewGridFromRows([][]string{{"1"}})
	path := filepath.Join(t.TempDir(), "small.xlsx")
	require.NoError(t, SaveXLSX(path, g, "Sheet1"))

	back, err := OpenXLSX(path, "Sheet1")
	require.NoError(t, err)
	assert.Equal(t, DefaultRows, back.RowCount())
	assert.Equal(t, DefaultCols, back.ColCount())
	assert.Equal(t, "1", back.Get(0, 0))
}

func TestXLSX_MissingSheet(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, NewGrid(WithSize(1, 1)), ""))
	_, err := ReadXLSX(&buf, "Nope")
	assert.Error(t, err)
}

func TestXLSX_OpenMissingFile(t *testing.T) {
	_, err := OpenXLSX(filepath.Join(t.TempDir(), "missing.xlsx"), "")
	assert.Error(t, err)
}

func TestExcelizeSheet_EvaluatesAgainstWorkbook(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", 3))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", 4))
	require.NoError(t, f.SetCellValue("Sheet1", "B2", "x"))

	xs, err := NewExcelizeSheet(f, "")
	require.NoError(t, err)
	assert.Equal(t, 2, xs.RowCount())
	assert.Equal(t, 2, xs.ColCount())

	v, err := EvaluateSum(xs, NewCellRef(0, 1), "A1", "A2")
	require.NoError(t, err)
	assert.Equal(t, 7.0, v)

	_, err = EvaluateMultiply(xs, NewCellRef(0, 1), "A1", "B2")
	assert.ErrorIs(t, err, ErrNotNumeric)

	xs.Set(3, 2, "9")
	assert.Equal(t, 4, xs.RowCount())
	assert.Equal(t, 3, xs.ColCount())
	assert.Equal(t, "9", xs.Get(3, 2))
	assert.Same(t, f, xs.File())
}

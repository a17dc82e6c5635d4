package gridsheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColToName_KnownValues(t *testing.T) {
	cases := map[int]string{
		0:     "A",
		1:     "B",
		25:    "Z",
		26:    "AA",
		27:    "AB",
		51:    "AZ",
		52:    "BA",
		701:   "ZZ",
		702:   "AAA",
		16383: "XFD",
	}
	for col, want := range cases {
		assert.Equal(t, want, ColToName(col), "col %d", col)
	}
}

func TestColToName_Negative(t *testing.T) {
	assert.Equal(t, "", ColToName(-1))
}

func TestNameToCol_KnownValues(t *testing.T) {
	cases := map[string]int{
		"A":   0,
		"z":   25,
		"AA":  26,
		"aZ":  51,
		"BA":  52,
		"ZZ":  701,
		"AAA": 702,
		"XFD": 16383,
	}
	for name, want := range cases {
		got, err := NameToCol(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
}

func TestNameToCol_Invalid(t *testing.T) {
	for _, name := range []string{"", "A1", "$A", "Ä"} {
		_, err := NameToCol(name)
		assert.Error(t, err, "%q", name)
	}
}

func TestColumnCodec_RoundTrip(t *testing.T) {
	for n := 0; n < 10000; n++ {
		got, err := NameToCol(ColToName(n))
		require.NoError(t, err)
		require.Equal(t, n, got)
	}
}

func TestColumnCodec_OrderPreserving(t *testing.T) {
	prev := ColToName(0)
	for n := 1; n < 2000; n++ {
		cur := ColToName(n)
		if len(cur) == len(prev) {
			assert.Less(t, prev, cur)
		} else {
			assert.Greater(t, len(cur), len(prev))
		}
		prev = cur
	}
}

func TestParseCellRef_Simple(t *testing.T) {
	ref, err := ParseCellRef("A1")
	require.NoError(t, err)
	assert.Equal(t, CellRef{Row: 0, Col: 0}, ref)
}

func TestParseCellRef_LowerCase(t *testing.T) {
	ref, err := ParseCellRef("az10")
	require.NoError(t, err)
	assert.Equal(t, 9, ref.Row)
	assert.Equal(t, 51, ref.Col)
}

func TestParseCellRef_Invalid(t *testing.T) {
	for _, s := range []string{"", "A", "12", "A0", "1A", "A1B", "A-1"} {
		_, err := ParseCellRef(s)
		assert.Error(t, err, "%q", s)
	}
}

func TestCellRef_String(t *testing.T) {
	assert.Equal(t, "B5", NewCellRef(4, 1).String())
	assert.Equal(t, "AA1", NewCellRef(0, 26).String())
}

func TestNewAreaRef_Normalizes(t *testing.T) {
	area := NewAreaRef(NewCellRef(4, 3), NewCellRef(1, 0))
	assert.Equal(t, NewCellRef(1, 0), area.First)
	assert.Equal(t, NewCellRef(4, 3), area.Last)
	assert.Equal(t, "A2:D5", area.String())
	assert.Equal(t, Size{Width: 4, Height: 4}, area.Size())
}

func TestAreaRef_Contains(t *testing.T) {
	area := NewAreaRef(NewCellRef(1, 1), NewCellRef(2, 3))
	assert.True(t, area.Contains(NewCellRef(1, 1)))
	assert.True(t, area.Contains(NewCellRef(2, 3)))
	assert.True(t, area.Contains(NewCellRef(2, 2)))
	assert.False(t, area.Contains(NewCellRef(0, 1)))
	assert.False(t, area.Contains(NewCellRef(1, 4)))
}

func TestSize_String(t *testing.T) {
	assert.Equal(t, "(3x2)", Size{Width: 3, Height: 2}.String())
}

package gridsheet

import "strconv"

// saturation bound for row numbers and column indices parsed from labels
const maxIndex = 1 << 30

// ResolveSum resolves the operands of SUM(start:end) against the sheet's
// current bounds.
//
// Both operands must be cell labels. A missing row means the last row; if
// both rows are missing the whole columns are summed. Rows and columns past
// the edge of the sheet are clamped to the last row or column. The editing
// cell target may not lie inside the resulting area.
func ResolveSum(s Sheet, target CellRef, start, end string) (AreaRef, error) {
	a, b := ClassifyToken(start), ClassifyToken(end)
	if a.Kind != TokenLabel {
		return AreaRef{}, newFormulaError(ErrorCodeName, start)
	}
	if b.Kind != TokenLabel {
		return AreaRef{}, newFormulaError(ErrorCodeName, end)
	}

	rows, cols := s.RowCount(), s.ColCount()
	rowStart, err := sumRow(a, rows)
	if err != nil {
		return AreaRef{}, err
	}
	rowEnd, err := sumRow(b, rows)
	if err != nil {
		return AreaRef{}, err
	}
	if rowStart > rowEnd {
		rowStart, rowEnd = rowEnd, rowStart
	}
	if !a.HasRow() && !b.HasRow() {
		rowStart = 0
	}

	colStart := min(labelCol(a.Letters), cols-1)
	colEnd := min(labelCol(b.Letters), cols-1)
	if colStart > colEnd {
		colStart, colEnd = colEnd, colStart
	}

	area := AreaRef{
		First: CellRef{Row: rowStart, Col: colStart},
		Last:  CellRef{Row: rowEnd, Col: colEnd},
	}
	if area.Contains(target) {
		return AreaRef{}, newFormulaError(ErrorCodeRef, target.String())
	}
	return area, nil
}

// sumRow returns the 0-based row for a SUM endpoint.
func sumRow(tok Token, rows int) (int, error) {
	if !tok.HasRow() {
		return rows - 1, nil
	}
	n := rowNumber(tok.Digits)
	if n == 0 {
		return 0, newFormulaError(ErrorCodeError, tok.Raw)
	}
	if n > rows {
		return rows - 1, nil
	}
	return n - 1, nil
}

// ResolveMultiply resolves the two operands of MULTIPLY(a,b) to numbers.
//
// An operand is either a number literal or a cell label with a row. Labels
// that point past the edge of the sheet count as 0. A label naming the
// editing cell target, or a cell that does not hold a number, is rejected.
func ResolveMultiply(s Sheet, target CellRef, a, b string) (float64, float64, error) {
	ta, tb := ClassifyToken(a), ClassifyToken(b)
	for _, t := range []Token{ta, tb} {
		if t.Kind == TokenMalformed || (t.Kind == TokenLabel && !t.HasRow()) {
			return 0, 0, newFormulaError(ErrorCodeName, t.Raw)
		}
	}
	x, err := multiplyOperand(s, target, ta)
	if err != nil {
		return 0, 0, err
	}
	y, err := multiplyOperand(s, target, tb)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func multiplyOperand(s Sheet, target CellRef, tok Token) (float64, error) {
	if tok.Kind == TokenNumber {
		f, ok := ParseNumber(tok.Digits)
		if !ok {
			return 0, newFormulaError(ErrorCodeName, tok.Raw)
		}
		return f, nil
	}

	n := rowNumber(tok.Digits)
	if n == 0 {
		return 0, newFormulaError(ErrorCodeError, tok.Raw)
	}
	if n > s.RowCount() {
		return 0, nil
	}
	col := labelCol(tok.Letters)
	if col >= s.ColCount() {
		return 0, nil
	}
	ref := CellRef{Row: n - 1, Col: col}
	if ref == target {
		return 0, newFormulaError(ErrorCodeRef, tok.Raw)
	}
	f, ok := ParseNumber(s.Get(ref.Row, ref.Col))
	if !ok {
		return 0, newFormulaError(ErrorCodeValue, tok.Raw)
	}
	return f, nil
}

// rowNumber parses a 1-based row number, saturating at maxIndex.
func rowNumber(digits string) int {
	n, err := strconv.Atoi(digits)
	if err != nil || n > maxIndex {
		return maxIndex
	}
	return n
}

// labelCol maps a letter run to its column index, saturating at maxIndex.
func labelCol(letters string) int {
	col := 0
	for i := 0; i < len(letters); i++ {
		c := letters[i] | 0x20 // lower-case
		if col > (maxIndex-26)/26 {
			return maxIndex
		}
		col = col*26 + int(c-'a') + 1
	}
	return col - 1
}

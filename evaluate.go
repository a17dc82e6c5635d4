package gridsheet

import "fmt"

// Sum adds up every numeric cell of area in row-major order. Cells that do
// not hold a number contribute nothing.
func Sum(s Sheet, area AreaRef) float64 {
	total := 0.0
	for row := area.First.Row; row <= area.Last.Row; row++ {
		for col := area.First.Col; col <= area.Last.Col; col++ {
			if f, ok := ParseNumber(s.Get(row, col)); ok {
				total += f
			}
		}
	}
	return total
}

// EvaluateSum resolves and computes SUM(start:end) for the editing cell target.
func EvaluateSum(s Sheet, target CellRef, start, end string) (float64, error) {
	area, err := ResolveSum(s, target, start, end)
	if err != nil {
		return 0, err
	}
	return Sum(s, area), nil
}

// EvaluateMultiply resolves and computes MULTIPLY(a,b) for the editing cell target.
func EvaluateMultiply(s Sheet, target CellRef, a, b string) (float64, error) {
	x, y, err := ResolveMultiply(s, target, a, b)
	if err != nil {
		return 0, err
	}
	return x * y, nil
}

// EvaluateFormula computes f as if typed into target.
func EvaluateFormula(s Sheet, target CellRef, f Formula) (float64, error) {
	switch f.Kind {
	case FormulaSum:
		return EvaluateSum(s, target, f.Args[0], f.Args[1])
	case FormulaMultiply:
		return EvaluateMultiply(s, target, f.Args[0], f.Args[1])
	default:
		return 0, fmt.Errorf("unknown formula kind %d", int(f.Kind))
	}
}

// Evaluate returns the text that replaces a formula typed into target:
// the formatted result, or the error literal ("#ERROR!", "#NAME!",
// "#VALUE!", "#REF!") when the formula is rejected.
func Evaluate(s Sheet, target CellRef, f Formula) string {
	v, err := EvaluateFormula(s, target, f)
	if err != nil {
		if code := CodeOf(err); code != 0 {
			return code.String()
		}
		return ErrorCodeError.String()
	}
	return FormatNumber(v)
}

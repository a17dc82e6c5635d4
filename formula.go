package gridsheet

import (
	"strings"

	"github.com/xuri/efp"
)

// FormulaKind identifies one of the two recognised formula shapes.
type FormulaKind int

const (
	FormulaSum      FormulaKind = iota + 1 // =SUM(a:b)
	FormulaMultiply                        // =MULTIPLY(a,b)
)

func (k FormulaKind) String() string {
	switch k {
	case FormulaSum:
		return "SUM"
	case FormulaMultiply:
		return "MULTIPLY"
	default:
		return "UNKNOWN"
	}
}

// Formula is a detected formula with its two raw operand tokens.
type Formula struct {
	Kind FormulaKind
	Args [2]string
}

// String renders the formula in canonical form, without the leading "=".
func (f Formula) String() string {
	sep := ","
	if f.Kind == FormulaSum {
		sep = ":"
	}
	return f.Kind.String() + "(" + f.Args[0] + sep + f.Args[1] + ")"
}

// DetectFormula recognises exactly "=SUM(<tok>:<tok>)" and
// "=MULTIPLY(<tok>,<tok>)". The function name is case-insensitive and both
// tokens must consist of letters and digits only. Any other text, including
// text with whitespace, is not a formula.
func DetectFormula(text string) (Formula, bool) {
	if !strings.HasPrefix(text, "=") || strings.IndexFunc(text, isSpace) >= 0 {
		return Formula{}, false
	}
	ps := efp.ExcelParser()
	tokens := ps.Parse(text[1:])
	if len(tokens) < 3 {
		return Formula{}, false
	}
	open, end := tokens[0], tokens[len(tokens)-1]
	if open.TType != efp.TokenTypeFunction || open.TSubType != efp.TokenSubTypeStart ||
		end.TType != efp.TokenTypeFunction || end.TSubType != efp.TokenSubTypeStop {
		return Formula{}, false
	}
	inner := tokens[1 : len(tokens)-1]

	switch {
	case strings.EqualFold(open.TValue, "SUM"):
		var b strings.Builder
		for _, t := range inner {
			switch {
			case t.TType == efp.TokenTypeOperand:
			case t.TType == efp.TokenTypeOperatorInfix && t.TValue == ":":
			default:
				return Formula{}, false
			}
			b.WriteString(t.TValue)
		}
		parts := strings.Split(b.String(), ":")
		if len(parts) != 2 || !isAlnum(parts[0]) || !isAlnum(parts[1]) {
			return Formula{}, false
		}
		return Formula{Kind: FormulaSum, Args: [2]string{parts[0], parts[1]}}, true

	case strings.EqualFold(open.TValue, "MULTIPLY"):
		if len(inner) != 3 ||
			inner[0].TType != efp.TokenTypeOperand ||
			inner[1].TType != efp.TokenTypeArgument ||
			inner[2].TType != efp.TokenTypeOperand ||
			!isAlnum(inner[0].TValue) || !isAlnum(inner[2].TValue) {
			return Formula{}, false
		}
		return Formula{Kind: FormulaMultiply, Args: [2]string{inner[0].TValue, inner[2].TValue}}, true
	}
	return Formula{}, false
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\v' || r == '\f'
}

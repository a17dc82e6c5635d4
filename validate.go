package gridsheet

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Severity indicates the severity of a validation issue.
type Severity int

const (
	SeverityError   Severity = iota // a formula was rejected
	SeverityWarning                 // text that will not behave as a formula
)

// ValidationIssue is a single problem found in a sheet.
type ValidationIssue struct {
	Severity Severity
	CellRef  CellRef
	Message  string
}

// String formats the issue as "[ERROR] A2: message" or "[WARN] ...".
func (v ValidationIssue) String() string {
	sev := "ERROR"
	if v.Severity == SeverityWarning {
		sev = "WARN"
	}
	return fmt.Sprintf("[%s] %s: %s", sev, v.CellRef, v.Message)
}

// Validate scans s in row-major order. Cells holding an error literal are
// reported as errors. Text starting with "=" is reported as a warning when
// it is not a supported formula, or when it is one that was stored without
// being evaluated.
func Validate(s Sheet) []ValidationIssue {
	var issues []ValidationIssue
	for row := 0; row < s.RowCount(); row++ {
		for col := 0; col < s.ColCount(); col++ {
			if issue, ok := checkCell(s, NewCellRef(row, col)); ok {
				issues = append(issues, issue)
			}
		}
	}
	return issues
}

func checkCell(s Sheet, ref CellRef) (ValidationIssue, bool) {
	v := s.Get(ref.Row, ref.Col)
	if code := errorLiteral(v); code != 0 {
		return ValidationIssue{
			Severity: SeverityError,
			CellRef:  ref,
			Message:  fmt.Sprintf("formula rejected: %v", codeSentinel[code]),
		}, true
	}
	if !strings.HasPrefix(v, "=") {
		return ValidationIssue{}, false
	}
	f, ok := DetectFormula(v)
	if !ok {
		return ValidationIssue{
			Severity: SeverityWarning,
			CellRef:  ref,
			Message:  fmt.Sprintf("%q is not a supported formula and is kept as text", v),
		}, true
	}
	return ValidationIssue{
		Severity: SeverityWarning,
		CellRef:  ref,
		Message:  fmt.Sprintf("%s was stored without evaluation, it would give %s", f, Evaluate(s, ref, f)),
	}, true
}

func errorLiteral(v string) ErrorCode {
	for code, text := range errorCodeText {
		if v == text {
			return code
		}
	}
	return 0
}

// ValidateXLSX checks a worksheet of the workbook at path. Besides the
// checks of Validate, formulas stored in the workbook itself are reported
// when they are not SUM or MULTIPLY, since only their cached values load.
func ValidateXLSX(path, sheet string) ([]ValidationIssue, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %q: %w", path, err)
	}
	defer f.Close()
	if sheet == "" {
		sheet = f.GetSheetName(f.GetActiveSheetIndex())
	}
	xs, err := NewExcelizeSheet(f, sheet)
	if err != nil {
		return nil, err
	}

	var issues []ValidationIssue
	for row := 0; row < xs.RowCount(); row++ {
		for col := 0; col < xs.ColCount(); col++ {
			ref := NewCellRef(row, col)
			formula, err := f.GetCellFormula(sheet, ref.String())
			if err != nil {
				return nil, fmt.Errorf("read formula %s: %w", ref, err)
			}
			if formula != "" {
				if _, ok := DetectFormula("=" + formula); !ok {
					issues = append(issues, ValidationIssue{
						Severity: SeverityWarning,
						CellRef:  ref,
						Message:  fmt.Sprintf("workbook formula %q is not supported, only its cached value is loaded", formula),
					})
				}
				continue
			}
			if issue, ok := checkCell(xs, ref); ok {
				issues = append(issues, issue)
			}
		}
	}
	return issues, nil
}

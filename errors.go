package gridsheet

import (
	"errors"
	"fmt"
)

// ErrorCode is the kind of a rejected formula.
type ErrorCode int

const (
	ErrorCodeError ErrorCode = iota + 1 // a row number is explicitly zero
	ErrorCodeName                       // operand syntax is invalid for the formula
	ErrorCodeValue                      // a referenced cell is not numeric
	ErrorCodeRef                        // the formula references its own cell
)

var errorCodeText = map[ErrorCode]string{
	ErrorCodeError: "#ERROR!",
	ErrorCodeName:  "#NAME!",
	ErrorCodeValue: "#VALUE!",
	ErrorCodeRef:   "#REF!",
}

// String returns the literal shown in a cell, e.g. "#REF!".
func (c ErrorCode) String() string {
	if s, ok := errorCodeText[c]; ok {
		return s
	}
	return fmt.Sprintf("ErrorCode(%d)", int(c))
}

var (
	ErrRowZero       = errors.New("row number is zero")
	ErrBadName       = errors.New("invalid operand")
	ErrNotNumeric    = errors.New("referenced cell is not numeric")
	ErrSelfReference = errors.New("formula references its own cell")
	ErrOutOfBounds   = errors.New("index out of bounds")
)

var codeSentinel = map[ErrorCode]error{
	ErrorCodeError: ErrRowZero,
	ErrorCodeName:  ErrBadName,
	ErrorCodeValue: ErrNotNumeric,
	ErrorCodeRef:   ErrSelfReference,
}

// FormulaError is a rejected formula. It is a recoverable outcome: the
// code's literal becomes the cell's value.
type FormulaError struct {
	Code  ErrorCode
	Token string // offending operand, if any
}

func newFormulaError(code ErrorCode, token string) *FormulaError {
	return &FormulaError{Code: code, Token: token}
}

func (e *FormulaError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("%s: %v", e.Code, codeSentinel[e.Code])
	}
	return fmt.Sprintf("%s: %v (%q)", e.Code, codeSentinel[e.Code], e.Token)
}

func (e *FormulaError) Unwrap() error {
	return codeSentinel[e.Code]
}

// CodeOf returns the ErrorCode carried by err, or 0 if err is not a FormulaError.
func CodeOf(err error) ErrorCode {
	var fe *FormulaError
	if errors.As(err, &fe) {
		return fe.Code
	}
	return 0
}

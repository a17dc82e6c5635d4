package gridsheet

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ParseNumber interprets raw cell text as a number. Surrounding whitespace is
// ignored and blank text counts as 0. Besides plain decimals it accepts
// exponents ("1e3"), the integer prefixes 0x, 0o and 0b, and ±Infinity.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1), true
	case "-Infinity":
		return math.Inf(-1), true
	}
	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			if strings.IndexByte(s[2:], '_') >= 0 {
				return 0, false
			}
			n, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil && !errors.Is(err, strconv.ErrRange) {
				return 0, false
			}
			if err != nil {
				return math.Inf(1), true
			}
			return float64(n), true
		}
	}
	for i := 0; i < len(s); i++ {
		if !strings.ContainsRune("0123456789.+-eE", rune(s[i])) {
			return 0, false
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, true
}

// IsNumeric reports whether s would be read as a number.
func IsNumeric(s string) bool {
	_, ok := ParseNumber(s)
	return ok
}

// FormatNumber renders f the way results are stored in cells: the shortest
// decimal that round-trips, switching to exponent form for very large or
// very small magnitudes.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		// 1.5e-07 -> 1.5e-7
		if i := strings.IndexByte(s, 'e'); i >= 0 && len(s) > i+3 && s[i+2] == '0' {
			s = s[:i+2] + s[i+3:]
		}
		return s
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

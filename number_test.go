package gridsheet

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"", 0, true},
		{"   ", 0, true},
		{"42", 42, true},
		{" 42 ", 42, true},
		{"-3.5", -3.5, true},
		{"+7", 7, true},
		{".5", 0.5, true},
		{"5.", 5, true},
		{"1e3", 1000, true},
		{"2E-2", 0.02, true},
		{"0x1F", 31, true},
		{"0o17", 15, true},
		{"0b101", 5, true},
		{"Infinity", math.Inf(1), true},
		{"-Infinity", math.Inf(-1), true},
		{"abc", 0, false},
		{"12abc", 0, false},
		{"1,000", 0, false},
		{".", 0, false},
		{"1e", 0, false},
		{"NaN", 0, false},
		{"inf", 0, false},
		{"0x", 0, false},
		{"0xZZ", 0, false},
		{"1_000", 0, false},
		{"#REF!", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseNumber(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, IsNumeric("12"))
	assert.False(t, IsNumeric("x"))
}

func TestFormatNumber(t *testing.T) {
	a, b := 0.1, 0.2
	tests := []struct {
		in   float64
		want string
	}{
		{4, "4"},
		{-12, "-12"},
		{0.5, "0.5"},
		{a + b, "0.30000000000000004"},
		{math.Copysign(0, -1), "0"},
		{1e20, "100000000000000000000"},
		{1e21, "1e+21"},
		{1.5e-7, "1.5e-7"},
		{0.000001, "0.000001"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
		{math.NaN(), "NaN"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.in))
	}
}

package eval

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Format renders v as a plain decimal without exponent, trailing
// fractional zeros or a dangling point: 6 is "6", 2.5 is "2.5".
// The shortest representation that parses back to v is used.
func Format(v float64) (string, error) {
	return FormatPrecision(v, -1)
}

// FormatPrecision is like Format but rounds to at most digits fractional digits.
// A negative digits means no rounding.
//
// NaN only comes out of 0/0 and is reported as ErrDivisionByZero, ±Inf as ErrOverflow.
func FormatPrecision(v float64, digits int) (string, error) {
	switch {
	case math.IsNaN(v):
		return "", fmt.Errorf("format NaN: %w", ErrDivisionByZero)
	case math.IsInf(v, 0):
		return "", fmt.Errorf("format %v: %w", v, ErrOverflow)
	}
	if digits < 0 {
		digits = -1
	}

	out := strconv.FormatFloat(v, 'f', digits, 64)
	if strings.Contains(out, ".") {
		out = strings.TrimRight(out, "0")
		out = strings.TrimSuffix(out, ".")
	}
	if out == "-0" {
		out = "0"
	}
	return out, nil
}

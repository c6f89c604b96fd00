package token

import (
	"math"
	"strconv"
	"strings"
)

// number returns the length of the number literal at the start of d, or 0 if
// d does not start with one.
func number(d string) int {
	i := 0
	if i < len(d) && d[i] == '-' {
		i++
	}
	digits := asciiDigits(d[i:])
	if digits == 0 {
		return 0
	}
	i += digits
	i += fract(d[i:])
	i += exp(d[i:])
	return i
}

func asciiDigits(d string) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func exp(d string) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch d[1] {
	case '+', '-':
		i++
	default:
	}
	if i == len(d) {
		return 0
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return n + i
}

func fract(d string) int {
	if len(d) < 2 || d[0] != '.' {
		return 0
	}
	n := asciiDigits(d[1:])
	if n == 0 {
		// '.' must be followed by 1 or more digits
		return 0
	}
	return n + 1
}

// FormatNumber renders f in the decimal form used by the encoder. Very large
// and very small magnitudes use an exponent so the text stays short; both
// forms re-parse to the same value.
func FormatNumber(f float64) string {
	abs := math.Abs(f)
	if abs != 0 && (abs >= 1e21 || abs < 1e-6) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// NumberKey renders f the way numeric object keys are canonicalized: the
// double rendering with at least one fractional digit, so 55 becomes "55.0".
func NumberKey(f float64) string {
	v := FormatNumber(f)
	if strings.ContainsAny(v, ".eEIN") {
		return v
	}
	return v + ".0"
}

func parseFloat(v string) (float64, error) {
	return strconv.ParseFloat(v, 64)
}

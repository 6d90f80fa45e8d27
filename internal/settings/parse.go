package settings

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParseFloat converts user input to a number the way a browser number field
// does: leading whitespace is skipped and the longest decimal prefix is
// parsed. Input without a numeric prefix, including "", yields NaN.
func ParseFloat(text string) float64 {
	s := strings.TrimLeftFunc(text, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	if strings.HasPrefix(s[end:], "Infinity") {
		if s[0] == '-' {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}

	intDigits := countDigits(s[end:])
	end += intDigits
	fracDigits := 0
	if end < len(s) && s[end] == '.' {
		fracDigits = countDigits(s[end+1:])
		if intDigits > 0 || fracDigits > 0 {
			end += 1 + fracDigits
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return math.NaN()
	}

	// Exponent counts only when followed by at least one digit.
	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		exp := end + 1
		if exp < len(s) && (s[exp] == '+' || s[exp] == '-') {
			exp++
		}
		if n := countDigits(s[exp:]); n > 0 {
			end = exp + n
		}
	}

	// Out of range values come back as ±Inf or 0 with ErrRange, which is
	// what we want.
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil && !isRangeErr(err) {
		return math.NaN()
	}
	return v
}

func countDigits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}

func isRangeErr(err error) bool {
	numErr, ok := err.(*strconv.NumError)
	return ok && numErr.Err == strconv.ErrRange
}

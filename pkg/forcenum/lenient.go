package forcenum

import (
	"errors"
	"math"
	"strconv"
)

// parseLeadingFloat parses the longest prefix of s that forms a decimal
// literal and ignores the rest, so "32.43.54" yields 32.43.
// Returns NaN when s does not start with a literal. Values out of range
// become ±Inf.
func parseLeadingFloat(s string) float64 {
	end := leadingLiteral(s)
	if end == 0 {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s[:end], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return f
}

// leadingLiteral returns the length of the literal at the start of s,
// matching [+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?, or 0.
func leadingLiteral(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	intEnd := skipDigits(s, i)
	intDigits := intEnd - i
	i = intEnd

	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		fracEnd := skipDigits(s, i+1)
		fracDigits = fracEnd - (i + 1)
		if intDigits > 0 || fracDigits > 0 {
			i = fracEnd
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return 0
	}

	// An exponent only counts when at least one digit follows it.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if expEnd := skipDigits(s, j); expEnd > j {
			i = expEnd
		}
	}
	return i
}

func skipDigits(s string, i int) int {
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}

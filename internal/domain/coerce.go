package domain

import (
	"math"
	"strconv"
	"strings"
)

// Input coming from text fields is never rejected: anything that does not
// parse as a non-negative number becomes 0.

// ParsePrice converts free text into a non-negative price
func ParsePrice(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return CoercePrice(v)
}

// CoercePrice clamps a price to a finite, non-negative value
func CoercePrice(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// ParseQuantity converts free text into a non-negative whole quantity.
// Only the leading integer counts: "2.7" is 2, "5abc" is 5, "1e3" is 1.
func ParseQuantity(s string) int {
	s = strings.TrimSpace(s)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}

	n, err := strconv.ParseInt(s[:end], 10, 32)
	if err != nil {
		// out of range
		if s[0] == '-' {
			return 0
		}
		return math.MaxInt32
	}
	return CoerceQuantity(int(n))
}

// CoerceQuantity clamps a quantity to zero or more
func CoerceQuantity(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// Package numeric holds the single integer coercion policy used by every normalizer
package numeric

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ParseInt converts a loosely typed value into an int.
// Integers pass through and finite floats are truncated toward zero. Strings
// yield their leading integer after an optional sign ("3.7" -> 3,
// "3 turnos" -> 3, "2d6" -> 2) and fail when no digit leads. Everything else,
// including booleans, fails.
func ParseInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return fromInt64(int64(n))
	case int32:
		return int(n), true
	case int64:
		return fromInt64(n)
	case float32:
		return fromFloat(float64(n))
	case float64:
		return fromFloat(n)
	case json.Number:
		return parseNumber(n.String())
	case string:
		return parseLeading(n)
	default:
		return 0, false
	}
}

// parseNumber handles decoded JSON numbers, which may carry an exponent
func parseNumber(s string) (int, bool) {
	if i, err := strconv.ParseInt(s, 10, 32); err == nil {
		return int(i), true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return fromFloat(f)
}

// parseLeading reads an optional sign and the digits that follow it,
// ignoring whatever trails them
func parseLeading(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}
	i, err := strconv.ParseInt(s[:end], 10, 32)
	if err != nil {
		return 0, false
	}
	return int(i), true
}

func fromInt64(n int64) (int, bool) {
	if n > math.MaxInt32 || n < math.MinInt32 {
		return 0, false
	}
	return int(n), true
}

func fromFloat(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}

// IntOr parses v, returning def when parsing fails
func IntOr(v any, def int) int {
	if n, ok := ParseInt(v); ok {
		return n
	}
	return def
}

// NonNegativeOr parses v, returning def when parsing fails or the result is negative
func NonNegativeOr(v any, def int) int {
	if n, ok := ParseInt(v); ok && n >= 0 {
		return n
	}
	return def
}

// Clamp limits v to [lo, hi]. When hi < lo the result is lo.
func Clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

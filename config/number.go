package config

import (
	"math"
	"strconv"
	"strings"
)

// parseNumber parses a decimal number, or a formula when s starts with '('.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	var v float64
	var err error
	if s[0] == '(' {
		v, err = Eval(s)
	} else {
		v, err = strconv.ParseFloat(s, 64)
	}
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ParseFloat parses a number. A value starting with '(' is evaluated as a
// formula. Malformed or non-finite values return def.
func ParseFloat(s string, def float64) float64 {
	if v, ok := parseNumber(s); ok {
		return v
	}
	return def
}

// ParseInt parses a number like ParseFloat and truncates it toward zero.
// Values outside the int32 range return def.
func ParseInt(s string, def int) int {
	v, ok := parseNumber(s)
	if !ok || v > math.MaxInt32 || v < math.MinInt32 {
		return def
	}
	return int(v)
}

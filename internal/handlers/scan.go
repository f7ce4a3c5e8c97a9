package handlers

import (
	"strconv"
	"strings"
)

// scanInt reads a base-10 int32 with an optional sign from the front of s
// and returns the rest. Values outside int32 do not scan.
func scanInt(s string) (int32, string, bool) {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return 0, s, false
	}

	n, err := strconv.ParseInt(s[:i], 10, 32)
	if err != nil {
		return 0, s, false
	}
	return int32(n), s[i:], true
}

// scanLiteral consumes lit from the front of s
func scanLiteral(s, lit string) (string, bool) {
	if !strings.HasPrefix(s, lit) {
		return s, false
	}
	return s[len(lit):], true
}

package input

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParseValue converts text typed by a player into an attack or defense value.
//
// Dots and commas are treated as thousands markers and removed, since either
// may be used depending on locale. The rest is read as a number and
// truncated toward zero; anything unreadable becomes 0. Like the browser
// calculator, results wrap to a signed 32-bit integer.
//
// Pure function: No I/O operations, fully testable with direct inputs.
func ParseValue(raw string) int {
	cleaned := strings.NewReplacer(".", "", ",", "").Replace(raw)
	cleaned = strings.TrimFunc(cleaned, isBlank)
	if cleaned == "" {
		return 0
	}

	value, ok := parseNumber(cleaned)
	if !ok {
		return 0
	}

	return toInt32(value)
}

// isBlank matches what the browser strips around numeric text, which
// includes the byte order mark
func isBlank(r rune) bool {
	return unicode.IsSpace(r) || r == '\ufeff'
}

// parseNumber reads decimal (with optional exponent) or 0x/0o/0b prefixed text
func parseNumber(text string) (float64, bool) {
	lower := strings.ToLower(text)
	for _, prefix := range []string{"0x", "0o", "0b"} {
		if strings.HasPrefix(lower, prefix) {
			n, err := strconv.ParseUint(lower, 0, 64)
			if err != nil {
				return 0, false
			}
			return float64(n), true
		}
	}

	// ParseFloat also accepts words like "inf" and "nan" which the browser rejects
	for _, r := range lower {
		if (r < '0' || r > '9') && r != 'e' && r != '+' && r != '-' {
			return 0, false
		}
	}

	n, err := strconv.ParseFloat(lower, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// toInt32 truncates toward zero and wraps modulo 2^32 into the int32 range
func toInt32(value float64) int {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}

	truncated := math.Trunc(value)
	wrapped := math.Mod(truncated, 1<<32)
	if wrapped < 0 {
		wrapped += 1 << 32
	}

	return int(int32(uint32(wrapped)))
}

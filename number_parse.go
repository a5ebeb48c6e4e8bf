package xlsx

import (
	"math"
	"strconv"
	"strings"
)

// maxSingleDigits is the number of significant digits a float32 holds
// without loss. Shorter numbers are read as Float32.
const maxSingleDigits = 7

// parseNumber reads invariant numeric text, preferring integers, then
// float32 for short mantissas, then float64.
func parseNumber(raw string) (Value, bool) {
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return Int(i), true
	}
	if u, err := strconv.ParseUint(raw, 10, 64); err == nil {
		return Uint(u), true
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, false
	}
	if significantDigits(raw) <= maxSingleDigits && math.Abs(f) <= math.MaxFloat32 {
		return Float(float32(f)), true
	}
	return Float(f), true
}

func parseFloat(raw string) (float64, bool) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func significantDigits(raw string) int {
	if i := strings.IndexAny(raw, "eE"); i >= 0 {
		raw = raw[:i]
	}
	raw = strings.TrimLeft(raw, "+-")
	hasPoint := strings.Contains(raw, ".")
	digits := strings.Replace(raw, ".", "", 1)
	digits = strings.TrimLeft(digits, "0")
	if hasPoint {
		digits = strings.TrimRight(digits, "0")
	}
	return len(digits)
}

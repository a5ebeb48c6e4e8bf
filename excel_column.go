package xlsx

import "fmt"

const (
	MaxColumn = 16383
	MaxRow    = 1048575
)

// ColumnName converts a zero-based column number to its letters: 0 is "A",
// 26 is "AA", 16383 is "XFD".
func ColumnName(n int) (string, error) {
	if n < 0 || n > MaxColumn {
		return "", fmt.Errorf("column number %d: %w", n, ErrRange)
	}
	var buf [3]byte
	pos := len(buf)
	for n++; n > 0; n = (n - 1) / 26 {
		pos--
		buf[pos] = byte('A' + (n-1)%26)
	}
	return string(buf[pos:]), nil
}

// ColumnNumber is the inverse of ColumnName. Letters are case-insensitive.
func ColumnNumber(s string) (int, error) {
	n, ok := columnIndex([]byte(s))
	if !ok {
		return 0, fmt.Errorf("column letters %q: %w", s, ErrFormat)
	}
	if n > MaxColumn {
		return 0, fmt.Errorf("column letters %q: %w", s, ErrRange)
	}
	return n, nil
}

func columnIndex(s []byte) (int, bool) {
	if len(s) == 0 || len(s) > 3 {
		return 0, false
	}
	result := 0
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			result = result*26 + int(r-'A') + 1
		case r >= 'a' && r <= 'z':
			result = result*26 + int(r-'a') + 1
		default:
			return 0, false
		}
	}
	return result - 1, true
}

package xlsx

import (
	"fmt"
	"iter"
	"strings"
)

// ReferenceType tells which parts of an address are fixed with '$'.
type ReferenceType uint8

const (
	RefDefault ReferenceType = iota
	RefFixedRow
	RefFixedColumn
	RefFixedRowAndColumn
)

// Address is a zero-based cell position.
type Address struct {
	Column int
	Row    int
	Ref    ReferenceType
}

// NewAddress validates the bounds and returns a default-referenced address.
func NewAddress(column, row int) (Address, error) {
	if err := checkBounds(column, row); err != nil {
		return Address{}, err
	}
	return Address{Column: column, Row: row}, nil
}

// MustAddress is like ParseAddress but panics on error. Intended for literals.
func MustAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

func checkBounds(column, row int) error {
	if column < 0 || column > MaxColumn {
		return fmt.Errorf("column %d: %w", column, ErrRange)
	}
	if row < 0 || row > MaxRow {
		return fmt.Errorf("row %d: %w", row, ErrRange)
	}
	return nil
}

// ParseAddress parses "C3", "C$3", "$C3" or "$C$3".
func ParseAddress(s string) (Address, error) {
	i := 0
	fixedColumn := i < len(s) && s[i] == '$'
	if fixedColumn {
		i++
	}
	start := i
	for i < len(s) && isLetter(s[i]) {
		i++
	}
	letters := s[start:i]
	fixedRow := i < len(s) && s[i] == '$'
	if fixedRow {
		i++
	}
	digits := s[i:]
	if len(letters) == 0 || len(letters) > 3 || len(digits) == 0 || len(digits) > 7 {
		return Address{}, fmt.Errorf("address %q: %w", s, ErrFormat)
	}
	row := 0
	for j := 0; j < len(digits); j++ {
		if digits[j] < '0' || digits[j] > '9' {
			return Address{}, fmt.Errorf("address %q: %w", s, ErrFormat)
		}
		row = row*10 + int(digits[j]-'0')
	}
	column, _ := columnIndex([]byte(letters))
	if err := checkBounds(column, row-1); err != nil {
		return Address{}, fmt.Errorf("address %q: %w", s, err)
	}

	ref := RefDefault
	switch {
	case fixedColumn && fixedRow:
		ref = RefFixedRowAndColumn
	case fixedColumn:
		ref = RefFixedColumn
	case fixedRow:
		ref = RefFixedRow
	}
	return Address{Column: column, Row: row - 1, Ref: ref}, nil
}

func isLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// FormatAddress is the inverse of ParseAddress.
func FormatAddress(column, row int, ref ReferenceType) (string, error) {
	if err := checkBounds(column, row); err != nil {
		return "", err
	}
	name, _ := ColumnName(column)
	var sb strings.Builder
	if ref == RefFixedColumn || ref == RefFixedRowAndColumn {
		sb.WriteByte('$')
	}
	sb.WriteString(name)
	if ref == RefFixedRow || ref == RefFixedRowAndColumn {
		sb.WriteByte('$')
	}
	fmt.Fprintf(&sb, "%d", row+1)
	return sb.String(), nil
}

// String formats the address. An out of bounds address renders as "#REF!".
func (a Address) String() string {
	s, err := FormatAddress(a.Column, a.Row, a.Ref)
	if err != nil {
		return "#REF!"
	}
	return s
}

func (a Address) ordinal() int {
	return a.Column*(MaxRow+1) + a.Row
}

// Compare orders addresses column-major.
func (a Address) Compare(b Address) int {
	return a.ordinal() - b.ordinal()
}

// key drops the reference type, so "$A$1" and "A1" address the same cell.
func (a Address) key() Address {
	return Address{Column: a.Column, Row: a.Row}
}

// Range is a rectangular block of cells with Start <= End.
type Range struct {
	Start Address
	End   Address
}

// NewRange orders the two corners.
func NewRange(a, b Address) Range {
	if a.Compare(b) > 0 {
		a, b = b, a
	}
	return Range{Start: a, End: b}
}

// ParseRange parses "A1:B2".
func ParseRange(s string) (Range, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return Range{}, fmt.Errorf("range %q: %w", s, ErrFormat)
	}
	start, err := ParseAddress(parts[0])
	if err != nil {
		return Range{}, err
	}
	end, err := ParseAddress(parts[1])
	if err != nil {
		return Range{}, err
	}
	return NewRange(start, end), nil
}

func (r Range) String() string {
	return r.Start.String() + ":" + r.End.String()
}

func (r Range) bounds() (minCol, minRow, maxCol, maxRow int) {
	return min(r.Start.Column, r.End.Column), min(r.Start.Row, r.End.Row),
		max(r.Start.Column, r.End.Column), max(r.Start.Row, r.End.Row)
}

// Addresses yields every address inside the range, column by column.
func (r Range) Addresses() iter.Seq[Address] {
	minCol, minRow, maxCol, maxRow := r.bounds()
	return func(yield func(Address) bool) {
		for c := minCol; c <= maxCol; c++ {
			for row := minRow; row <= maxRow; row++ {
				if !yield(Address{Column: c, Row: row}) {
					return
				}
			}
		}
	}
}

func (r Range) Contains(a Address) bool {
	minCol, minRow, maxCol, maxRow := r.bounds()
	return a.Column >= minCol && a.Column <= maxCol && a.Row >= minRow && a.Row <= maxRow
}

func (r Range) Overlaps(o Range) bool {
	aMinCol, aMinRow, aMaxCol, aMaxRow := r.bounds()
	bMinCol, bMinRow, bMaxCol, bMaxRow := o.bounds()
	return aMinCol <= bMaxCol && bMinCol <= aMaxCol && aMinRow <= bMaxRow && bMinRow <= aMaxRow
}

package xlsx

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAddress(t *testing.T) {
	tests := []struct {
		in   string
		want Address
	}{
		{"A1", Address{0, 0, RefDefault}},
		{"c3", Address{2, 2, RefDefault}},
		{"C$3", Address{2, 2, RefFixedRow}},
		{"$C3", Address{2, 2, RefFixedColumn}},
		{"$C$3", Address{2, 2, RefFixedRowAndColumn}},
		{"XFD1048576", Address{MaxColumn, MaxRow, RefDefault}},
	}
	for _, tt := range tests {
		got, err := ParseAddress(tt.in)
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseAddressErrors(t *testing.T) {
	for _, s := range []string{"", "1", "A", "$", "A-1", "ABCD1", "A12345678", "1A", "A1 ", "$$A1", "A$$1"} {
		_, err := ParseAddress(s)
		require.ErrorIs(t, err, ErrFormat, s)
	}
	for _, s := range []string{"A0", "XFE1", "A1048577", "ZZZ1"} {
		_, err := ParseAddress(s)
		require.ErrorIs(t, err, ErrRange, s)
	}
}

func TestFormatAddress(t *testing.T) {
	for ref, want := range map[ReferenceType]string{
		RefDefault:           "C3",
		RefFixedRow:          "C$3",
		RefFixedColumn:       "$C3",
		RefFixedRowAndColumn: "$C$3",
	} {
		got, err := FormatAddress(2, 2, ref)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := FormatAddress(0, MaxRow+1, RefDefault)
	require.ErrorIs(t, err, ErrRange)
	require.Equal(t, "#REF!", Address{Column: -1}.String())
}

func TestAddressRoundTrip(t *testing.T) {
	for _, col := range []int{0, 1, 25, 26, 700, 16383} {
		for _, row := range []int{0, 9, 65535, MaxRow} {
			s, err := FormatAddress(col, row, RefDefault)
			require.NoError(t, err)
			a, err := ParseAddress(s)
			require.NoError(t, err)
			require.Equal(t, Address{Column: col, Row: row}, a)
		}
	}
}

func TestAddressCompare(t *testing.T) {
	require.Negative(t, MustAddress("A2").Compare(MustAddress("B1")))
	require.Positive(t, MustAddress("B1").Compare(MustAddress("A1048576")))
	require.Zero(t, MustAddress("$B$1").Compare(MustAddress("B1")))
	require.NotEqual(t, MustAddress("$B$1"), MustAddress("B1"))
}

func TestParseRange(t *testing.T) {
	r, err := ParseRange("B2:A1")
	require.NoError(t, err)
	require.Equal(t, "A1:B2", r.String())
	require.Equal(t, NewRange(MustAddress("A1"), MustAddress("B2")), r)

	for _, s := range []string{"A1", "A1:B2:C3", ":", "A1:"} {
		_, err = ParseRange(s)
		require.Error(t, err, s)
	}
	_, err = ParseRange("A1:B2:C3")
	require.ErrorIs(t, err, ErrFormat)
}

func TestRangeNormalization(t *testing.T) {
	start, end := MustAddress("C4"), MustAddress("E9")
	require.Equal(t, NewRange(start, end), NewRange(end, start))
}

func TestRangeAddresses(t *testing.T) {
	r := NewRange(MustAddress("A1"), MustAddress("B2"))
	want := []Address{MustAddress("A1"), MustAddress("A2"), MustAddress("B1"), MustAddress("B2")}
	require.Equal(t, want, slices.Collect(r.Addresses()))
	// restartable
	require.Equal(t, want, slices.Collect(r.Addresses()))

	// corners ordered by ordinal only, the box still uses min/max bounds
	r = NewRange(MustAddress("B1"), MustAddress("A3"))
	require.Len(t, slices.Collect(r.Addresses()), 6)
}

func TestRangeContainsOverlaps(t *testing.T) {
	r := NewRange(MustAddress("B2"), MustAddress("D4"))
	require.True(t, r.Contains(MustAddress("C3")))
	require.False(t, r.Contains(MustAddress("A3")))
	require.True(t, r.Overlaps(NewRange(MustAddress("D4"), MustAddress("F6"))))
	require.False(t, r.Overlaps(NewRange(MustAddress("E1"), MustAddress("F6"))))
}

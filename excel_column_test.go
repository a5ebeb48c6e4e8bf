package xlsx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestColumnName(t *testing.T) {
	for n, name := range map[int]string{0: "A", 1: "B", 25: "Z", 26: "AA", 27: "AB", 701: "ZZ", 702: "AAA", 16383: "XFD"} {
		got, err := ColumnName(n)
		require.NoError(t, err)
		require.Equal(t, name, got)
	}

	_, err := ColumnName(-1)
	require.ErrorIs(t, err, ErrRange)
	_, err = ColumnName(MaxColumn + 1)
	require.ErrorIs(t, err, ErrRange)
}

func TestColumnNumber(t *testing.T) {
	n, err := ColumnNumber("A")
	require.NoError(t, err)
	require.Equal(t, 0, n)
	n, err = ColumnNumber("ab")
	require.NoError(t, err)
	require.Equal(t, 27, n)
	n, err = ColumnNumber("XFD")
	require.NoError(t, err)
	require.Equal(t, 16383, n)

	_, err = ColumnNumber("")
	require.ErrorIs(t, err, ErrFormat)
	_, err = ColumnNumber("A1")
	require.ErrorIs(t, err, ErrFormat)
	_, err = ColumnNumber("ABCD")
	require.ErrorIs(t, err, ErrFormat)
	_, err = ColumnNumber("XFE")
	require.ErrorIs(t, err, ErrRange)
}

func TestColumnBijection(t *testing.T) {
	for n := 0; n <= MaxColumn; n++ {
		name, err := ColumnName(n)
		require.NoError(t, err)
		back, err := ColumnNumber(name)
		require.NoError(t, err)
		require.Equal(t, n, back)
	}
}

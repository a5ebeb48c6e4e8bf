package xlsx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestResolveType(t *testing.T) {
	require.Equal(t, CellTypeBool, resolveType(Bool(true)))
	require.Equal(t, CellTypeNumber, resolveType(Int(42)))
	require.Equal(t, CellTypeEmpty, resolveType(Empty()))
	require.Equal(t, CellTypeString, resolveType(String("x")))
	require.Equal(t, CellTypeDate, resolveType(Date(time.Now())))
	require.Equal(t, CellTypeTime, resolveType(Time(time.Minute)))
	require.Equal(t, CellTypeFormula, resolveType(Formula("A1")))
}

func TestNewCellAttachesDisplayStyle(t *testing.T) {
	addr := MustAddress("A1")

	c := NewCell(time.Date(2020, time.May, 1, 0, 0, 0, 0, time.UTC), CellTypeDefault, addr)
	require.Equal(t, CellTypeDate, c.Type)
	require.NotNil(t, c.Style)
	require.Equal(t, FormatDate, c.Style.NumberFormat.Number)

	c = NewCell(90*time.Minute, CellTypeDefault, addr)
	require.Equal(t, CellTypeTime, c.Type)
	require.Equal(t, FormatTime, c.Style.NumberFormat.Number)

	c = NewCell("x", CellTypeDefault, addr)
	require.Equal(t, CellTypeString, c.Type)
	require.Nil(t, c.Style)
}

func TestNewCellExplicitTypes(t *testing.T) {
	addr := MustAddress("B2")

	c := NewCell("SUM(A1:A3)", CellTypeFormula, addr)
	require.Equal(t, KindFormula, c.Value.Kind())
	require.Equal(t, "SUM(A1:A3)", c.Value.Text())

	c = NewCell("ignored", CellTypeEmpty, addr)
	require.True(t, c.Value.IsEmpty())

	c = NewCell(5, CellTypeNumber, addr)
	require.Equal(t, CellTypeNumber, c.Type)
	require.Equal(t, int64(5), c.Value.Int())
}

func TestCellEqualAndCompare(t *testing.T) {
	bold := BoldStyle()
	a := NewCell("x", CellTypeDefault, MustAddress("B1"))
	b := NewCell("x", CellTypeDefault, MustAddress("B1"))
	require.True(t, a.Equal(b))

	b.Style = &bold
	require.True(t, a.Equal(b), "style is only compared when both cells have one")

	italic := ItalicStyle()
	a.Style = &italic
	require.False(t, a.Equal(b))

	c := NewCell("x", CellTypeDefault, MustAddress("A2"))
	require.Negative(t, a.Compare(c))
	require.Positive(t, c.Compare(a))
	require.Zero(t, a.Compare(b))
}

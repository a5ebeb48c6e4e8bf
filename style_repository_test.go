package xlsx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStyleRepositoryDeduplicates(t *testing.T) {
	r := NewStyleRepository()

	a := BoldStyle()
	b := BoldStyle()
	pa := r.Add(a)
	pb := r.Add(b)
	require.Same(t, pa, pb)
	require.Equal(t, 1, r.Len())

	idsA, ok := r.IDs(pa)
	require.True(t, ok)
	idsB, ok := r.IDs(pb)
	require.True(t, ok)
	require.Equal(t, idsA, idsB)

	pc := r.Add(ItalicStyle())
	require.NotSame(t, pa, pc)
	idsC, _ := r.IDs(pc)
	require.NotEqual(t, idsA, idsC)
	require.Equal(t, 1, idsC.Style)
	require.Equal(t, 1, idsC.Font)
	// only the font differs
	require.Equal(t, idsA.Fill, idsC.Fill)
	require.Equal(t, idsA.Border, idsC.Border)
	require.Len(t, r.Fonts(), 2)
	require.Len(t, r.Fills(), 1)
}

func TestStyleRepositoryMutatedCopy(t *testing.T) {
	r := NewStyleRepository()
	s := DefaultStyle()
	p := r.Add(s)
	s.Font.Size = 14
	require.Equal(t, 11.0, p.Font.Size)
	require.NotSame(t, p, r.Add(s))
}

func TestStyleRepositoryAddComponent(t *testing.T) {
	r := NewStyleRepository()

	id, err := r.AddComponent(Fill{Pattern: PatternSolid, Foreground: RGB("FFFF0000")})
	require.NoError(t, err)
	require.Equal(t, 0, id)
	id, err = r.AddComponent(Fill{Pattern: PatternSolid, Foreground: RGB("FFFF0000")})
	require.NoError(t, err)
	require.Equal(t, 0, id)
	id, err = r.AddComponent(Fill{Pattern: PatternGray125})
	require.NoError(t, err)
	require.Equal(t, 1, id)

	for _, c := range []any{Border{}, Font{}, NumberFormat{Custom: "0.000"}, CellXf{Hidden: true}, DefaultStyle()} {
		id, err = r.AddComponent(c)
		require.NoError(t, err)
		require.Equal(t, 0, id)
	}

	_, err = r.AddComponent("font")
	require.ErrorIs(t, err, ErrStyle)
	require.ErrorIs(t, err, ErrUnknownComponent)
	_, err = r.AddComponent(&Font{})
	require.ErrorIs(t, err, ErrStyle)
}

func TestSaveRepositoryLayout(t *testing.T) {
	r := newSaveRepository()
	require.Equal(t, []Fill{{}, {Pattern: PatternGray125}}, r.Fills())

	p := r.Add(ColorFillStyle("FF00FF00"))
	ids, _ := r.IDs(p)
	require.Equal(t, 2, ids.Fill)
	require.Equal(t, 1, ids.Style)
	require.Equal(t, 0, ids.Font)
}

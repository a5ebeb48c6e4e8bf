package xlsx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const testStyleSheet = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<styleSheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main">
<numFmts count="1"><numFmt numFmtId="164" formatCode="yyyy-mm-dd"/></numFmts>
<fonts count="2">
<font><sz val="11"/><color theme="1"/><name val="Calibri"/><family val="2"/><scheme val="minor"/></font>
<font><b/><i val="0"/><u val="double"/><sz val="14"/><color rgb="FFFF0000"/><name val="Arial"/></font>
</fonts>
<fills count="3">
<fill><patternFill patternType="none"/></fill>
<fill><patternFill patternType="gray125"/></fill>
<fill><patternFill patternType="solid"><fgColor rgb="FF00FF00"/><bgColor indexed="64"/></patternFill></fill>
</fills>
<borders count="2">
<border><left/><right/><top/><bottom/><diagonal/></border>
<border diagonalUp="1"><left style="thin"><color auto="1"/></left><right style="thick"/><top/><bottom style="double"/><diagonal/></border>
</borders>
<cellXfs count="5">
<xf numFmtId="0" fontId="0" fillId="0" borderId="0"/>
<xf numFmtId="14" fontId="0" fillId="0" borderId="0" applyNumberFormat="1"/>
<xf numFmtId="164" fontId="1" fillId="2" borderId="1"/>
<xf numFmtId="21" fontId="0" fillId="0" borderId="0" applyAlignment="1"><alignment horizontal="center" wrapText="1" textRotation="90"/><protection locked="0"/></xf>
<xf numFmtId="0" fontId="0" fillId="0" borderId="0"/>
</cellXfs>
</styleSheet>`

func TestReadStyleSheet(t *testing.T) {
	table, err := readStyleSheet(strings.NewReader(testStyleSheet))
	require.NoError(t, err)
	require.Len(t, table.styles, 5)
	require.Equal(t, 4, table.repo.Len(), "equal cellXfs collapse into one style")
	require.Same(t, table.styles[0], table.styles[4])

	s, class, err := table.style(1)
	require.NoError(t, err)
	require.Equal(t, formatDate, class)
	require.Equal(t, NumberFormat{Number: FormatDate}, s.NumberFormat)
	require.Equal(t, DefaultFont(), s.Font)

	s, class, err = table.style(2)
	require.NoError(t, err)
	require.Equal(t, formatDate, class)
	require.Equal(t, NumberFormat{Custom: "yyyy-mm-dd"}, s.NumberFormat)
	require.Equal(t, Font{Name: "Arial", Size: 14, Bold: true, Underline: UnderlineDouble, Color: RGB("FFFF0000")}, s.Font)
	require.Equal(t, Fill{Pattern: PatternSolid, Foreground: RGB("FF00FF00"), Background: IndexedColor(64)}, s.Fill)
	require.Equal(t, BorderEdge{Style: BorderThin, Color: Color{Kind: ColorAuto}}, s.Border.Left)
	require.Equal(t, BorderThick, s.Border.Right.Style)
	require.Equal(t, BorderDouble, s.Border.Bottom.Style)
	require.True(t, s.Border.DiagonalUp)

	s, class, err = table.style(3)
	require.NoError(t, err)
	require.Equal(t, formatTime, class)
	require.Equal(t, CellXf{
		Horizontal:          HAlignCenter,
		WrapText:            true,
		TextRotation:        90,
		Unlocked:            true,
		ForceApplyAlignment: true,
	}, s.CellXf)

	_, _, err = table.style(5)
	require.ErrorIs(t, err, ErrStyle)

	require.Len(t, table.repo.Fills(), 3)
	require.Equal(t, Fill{Pattern: PatternGray125}, table.repo.Fills()[1])
}

func TestReadStyleSheetMissingComponent(t *testing.T) {
	xml := `<styleSheet><fonts><font/></fonts><cellXfs><xf fontId="3"/></cellXfs></styleSheet>`
	_, err := readStyleSheet(strings.NewReader(xml))
	require.ErrorIs(t, err, ErrStyle)
}

func TestReadStyleSheetNonFiniteNumbers(t *testing.T) {
	xml := `<styleSheet><fonts>` +
		`<font><sz val="NaN"/><color theme="1" tint="NaN"/><name val="Calibri"/></font>` +
		`<font><sz val="+Inf"/><color theme="1" tint="-Inf"/><name val="Calibri"/></font>` +
		`</fonts><cellXfs><xf fontId="0"/><xf fontId="0"/><xf fontId="1"/></cellXfs></styleSheet>`
	table, err := readStyleSheet(strings.NewReader(xml))
	require.NoError(t, err)
	require.Equal(t, Font{Name: "Calibri", Color: ThemeColor(1)}, table.styles[0].Font)
	require.Same(t, table.styles[0], table.styles[1])
	require.Same(t, table.styles[0], table.styles[2])
	require.Equal(t, 1, table.repo.Len())
}

func TestStyleTableWithoutStyles(t *testing.T) {
	var table *styleTable
	s, class, err := table.style(7)
	require.NoError(t, err)
	require.Nil(t, s)
	require.Equal(t, formatNumber, class)
}

func TestWriteStylesReadBack(t *testing.T) {
	repo := newSaveRepository()
	custom := DefaultStyle()
	custom.NumberFormat = NumberFormat{Custom: "0.000"}
	custom.Font.Italic = true
	custom.Border = FrameStyle().Border
	repo.Add(custom)
	merge := MergeCellStyle()
	repo.Add(merge)
	fill := ColorFillStyle("FF112233")
	repo.Add(fill)

	table, err := readStyleSheet(strings.NewReader(string(writeStyles(repo))))
	require.NoError(t, err)
	require.Len(t, table.styles, 4)
	require.Equal(t, DefaultStyle(), *table.styles[0])
	require.Equal(t, custom, *table.styles[1])
	require.Equal(t, merge, *table.styles[2])
	require.Equal(t, fill, *table.styles[3])
	require.Equal(t, repo.Fills(), table.repo.Fills())
}

func TestNumFmtIDs(t *testing.T) {
	ids := numFmtIDs([]NumberFormat{{Number: 0}, {Custom: "0.0"}, {Number: 14}, {Custom: "0.00%"}})
	require.Equal(t, []int{0, 164, 14, 165}, ids)
}

package xlsx

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
)

type xlsxStyleSheet struct {
	XMLName xml.Name     `xml:"styleSheet"`
	NumFmts []xlsxNumFmt `xml:"numFmts>numFmt"`
	Fonts   []xlsxFont   `xml:"fonts>font"`
	Fills   []xlsxFill   `xml:"fills>fill"`
	Borders []xlsxBorder `xml:"borders>border"`
	CellXfs []xlsxXf     `xml:"cellXfs>xf"`
}

type xlsxNumFmt struct {
	ID   int    `xml:"numFmtId,attr"`
	Code string `xml:"formatCode,attr"`
}

type xlsxVal struct {
	Val *string `xml:"val,attr"`
}

// flag treats <b/> as true and <b val="0"/> as false.
func (v *xlsxVal) flag() bool {
	if v == nil {
		return false
	}
	return v.Val == nil || *v.Val == "1" || *v.Val == "true"
}

func (v *xlsxVal) str() string {
	if v == nil || v.Val == nil {
		return ""
	}
	return *v.Val
}

func (v *xlsxVal) number() int {
	n, _ := strconv.Atoi(v.str())
	return n
}

type xlsxColor struct {
	Auto    string `xml:"auto,attr"`
	RGB     string `xml:"rgb,attr"`
	Theme   *int   `xml:"theme,attr"`
	Indexed *int   `xml:"indexed,attr"`
	Tint    string `xml:"tint,attr"`
}

func (c *xlsxColor) color() Color {
	if c == nil {
		return Color{}
	}
	tint, _ := parseFloat(c.Tint)
	switch {
	case c.RGB != "":
		return Color{Kind: ColorRGB, RGB: c.RGB, Tint: tint}
	case c.Theme != nil:
		return Color{Kind: ColorTheme, Theme: *c.Theme, Tint: tint}
	case c.Indexed != nil:
		return Color{Kind: ColorIndexed, Indexed: *c.Indexed, Tint: tint}
	case c.Auto == "1" || c.Auto == "true":
		return Color{Kind: ColorAuto}
	}
	return Color{}
}

type xlsxFont struct {
	B         *xlsxVal   `xml:"b"`
	I         *xlsxVal   `xml:"i"`
	Strike    *xlsxVal   `xml:"strike"`
	Outline   *xlsxVal   `xml:"outline"`
	Shadow    *xlsxVal   `xml:"shadow"`
	U         *xlsxVal   `xml:"u"`
	VertAlign *xlsxVal   `xml:"vertAlign"`
	Sz        *xlsxVal   `xml:"sz"`
	Color     *xlsxColor `xml:"color"`
	Name      *xlsxVal   `xml:"name"`
	Family    *xlsxVal   `xml:"family"`
	Charset   *xlsxVal   `xml:"charset"`
	Scheme    *xlsxVal   `xml:"scheme"`
}

func (f xlsxFont) font() Font {
	font := Font{
		Name:          f.Name.str(),
		Bold:          f.B.flag(),
		Italic:        f.I.flag(),
		Strike:        f.Strike.flag(),
		Outline:       f.Outline.flag(),
		Shadow:        f.Shadow.flag(),
		VerticalAlign: fontAlignNames.value(f.VertAlign.str()),
		Color:         f.Color.color(),
		Family:        f.Family.number(),
		Charset:       f.Charset.number(),
		Scheme:        schemeNames.value(f.Scheme.str()),
	}
	if f.U != nil {
		font.Underline = UnderlineSingle
		if f.U.Val != nil {
			font.Underline = underlineNames.value(*f.U.Val)
		}
	}
	if sz, ok := parseFloat(f.Sz.str()); ok {
		font.Size = sz
	}
	return font
}

type xlsxFill struct {
	PatternFill *struct {
		PatternType string     `xml:"patternType,attr"`
		FgColor     *xlsxColor `xml:"fgColor"`
		BgColor     *xlsxColor `xml:"bgColor"`
	} `xml:"patternFill"`
}

func (f xlsxFill) fill() Fill {
	if f.PatternFill == nil {
		return Fill{}
	}
	return Fill{
		Pattern:    patternNames.value(f.PatternFill.PatternType),
		Foreground: f.PatternFill.FgColor.color(),
		Background: f.PatternFill.BgColor.color(),
	}
}

type xlsxBorderEdge struct {
	Style string     `xml:"style,attr"`
	Color *xlsxColor `xml:"color"`
}

func (e *xlsxBorderEdge) edge() BorderEdge {
	if e == nil {
		return BorderEdge{}
	}
	return BorderEdge{Style: borderStyleNames.value(e.Style), Color: e.Color.color()}
}

type xlsxBorder struct {
	DiagonalUp   string          `xml:"diagonalUp,attr"`
	DiagonalDown string          `xml:"diagonalDown,attr"`
	Left         *xlsxBorderEdge `xml:"left"`
	Right        *xlsxBorderEdge `xml:"right"`
	Top          *xlsxBorderEdge `xml:"top"`
	Bottom       *xlsxBorderEdge `xml:"bottom"`
	Diagonal     *xlsxBorderEdge `xml:"diagonal"`
}

func (b xlsxBorder) border() Border {
	return Border{
		Left:         b.Left.edge(),
		Right:        b.Right.edge(),
		Top:          b.Top.edge(),
		Bottom:       b.Bottom.edge(),
		Diagonal:     b.Diagonal.edge(),
		DiagonalUp:   b.DiagonalUp == "1" || b.DiagonalUp == "true",
		DiagonalDown: b.DiagonalDown == "1" || b.DiagonalDown == "true",
	}
}

type xlsxXf struct {
	NumFmtID       int    `xml:"numFmtId,attr"`
	FontID         int    `xml:"fontId,attr"`
	FillID         int    `xml:"fillId,attr"`
	BorderID       int    `xml:"borderId,attr"`
	ApplyAlignment string `xml:"applyAlignment,attr"`
	Alignment      *struct {
		Horizontal   string `xml:"horizontal,attr"`
		Vertical     string `xml:"vertical,attr"`
		WrapText     string `xml:"wrapText,attr"`
		ShrinkToFit  string `xml:"shrinkToFit,attr"`
		Indent       int    `xml:"indent,attr"`
		TextRotation int    `xml:"textRotation,attr"`
	} `xml:"alignment"`
	Protection *struct {
		Locked string `xml:"locked,attr"`
		Hidden string `xml:"hidden,attr"`
	} `xml:"protection"`
}

func (x xlsxXf) cellXf() CellXf {
	var xf CellXf
	if a := x.Alignment; a != nil {
		xf.Horizontal = hAlignNames.value(a.Horizontal)
		xf.Vertical = vAlignNames.value(a.Vertical)
		xf.WrapText = a.WrapText == "1" || a.WrapText == "true"
		xf.ShrinkToFit = a.ShrinkToFit == "1" || a.ShrinkToFit == "true"
		xf.Indent = a.Indent
		xf.TextRotation = a.TextRotation
		xf.ForceApplyAlignment = x.ApplyAlignment == "1" || x.ApplyAlignment == "true"
	}
	if p := x.Protection; p != nil {
		xf.Unlocked = p.Locked == "0" || p.Locked == "false"
		xf.Hidden = p.Hidden == "1" || p.Hidden == "true"
	}
	return xf
}

// styleTable is the styles part after loading: the interned styles in
// cellXfs order and how each of them wants numbers to be read.
type styleTable struct {
	repo    *StyleRepository
	styles  []*Style
	classes []formatClass
}

func (t *styleTable) style(idx int) (*Style, formatClass, error) {
	if t == nil || len(t.styles) == 0 {
		return nil, formatNumber, nil
	}
	if idx < 0 || idx >= len(t.styles) {
		return nil, formatNumber, fmt.Errorf("cell format %d: %w", idx, ErrStyle)
	}
	return t.styles[idx], t.classes[idx], nil
}

// readStyleSheet builds a fresh repository from the styles part. The
// components are interned in file order first, so cellXfs entries can
// refer to them by position afterwards.
func readStyleSheet(reader io.Reader) (*styleTable, error) {
	var sheet xlsxStyleSheet
	if err := xml.NewDecoder(reader).Decode(&sheet); err != nil {
		return nil, err
	}
	repo := NewStyleRepository()

	customFormats := make(map[int]string, len(sheet.NumFmts))
	for _, nf := range sheet.NumFmts {
		customFormats[nf.ID] = nf.Code
	}
	fonts := make([]Font, len(sheet.Fonts))
	for i, f := range sheet.Fonts {
		fonts[i] = f.font()
		repo.fonts.intern(fonts[i])
	}
	fills := make([]Fill, len(sheet.Fills))
	for i, f := range sheet.Fills {
		fills[i] = f.fill()
		repo.fills.intern(fills[i])
	}
	borders := make([]Border, len(sheet.Borders))
	for i, b := range sheet.Borders {
		borders[i] = b.border()
		repo.borders.intern(borders[i])
	}

	table := &styleTable{
		repo:    repo,
		styles:  make([]*Style, 0, len(sheet.CellXfs)),
		classes: make([]formatClass, 0, len(sheet.CellXfs)),
	}
	for i, xf := range sheet.CellXfs {
		var s Style
		var err error
		if s.Font, err = component(fonts, xf.FontID, "font", i); err != nil {
			return nil, err
		}
		if s.Fill, err = component(fills, xf.FillID, "fill", i); err != nil {
			return nil, err
		}
		if s.Border, err = component(borders, xf.BorderID, "border", i); err != nil {
			return nil, err
		}
		s.NumberFormat = NumberFormat{Number: xf.NumFmtID}
		if code, ok := customFormats[xf.NumFmtID]; ok && xf.NumFmtID >= firstCustomFormat {
			s.NumberFormat = NumberFormat{Custom: code}
		}
		s.CellXf = xf.cellXf()
		table.styles = append(table.styles, repo.Add(s))
		table.classes = append(table.classes, s.NumberFormat.class())
	}
	return table, nil
}

// component resolves a cellXfs reference. Files without a component table
// fall back to the zero component.
func component[T any](items []T, idx int, kind string, xf int) (T, error) {
	var zero T
	if len(items) == 0 && idx == 0 {
		return zero, nil
	}
	if idx < 0 || idx >= len(items) {
		return zero, fmt.Errorf("cellXfs[%d] refers to missing %s %d: %w", xf, kind, idx, ErrStyle)
	}
	return items[idx], nil
}

package xlsx

// Style components are plain comparable values: two components are the same
// component exactly when == says so. StyleRepository relies on that.

// ColorKind selects which field of Color is meaningful.
type ColorKind uint8

const (
	ColorNone ColorKind = iota
	ColorAuto
	ColorRGB
	ColorTheme
	ColorIndexed
)

type Color struct {
	Kind    ColorKind
	RGB     string // ARGB, e.g. "FFFF0000"
	Theme   int
	Indexed int
	Tint    float64
}

func RGB(argb string) Color {
	return Color{Kind: ColorRGB, RGB: argb}
}

func ThemeColor(theme int) Color {
	return Color{Kind: ColorTheme, Theme: theme}
}

func IndexedColor(idx int) Color {
	return Color{Kind: ColorIndexed, Indexed: idx}
}

type BorderStyle uint8

const (
	BorderNone BorderStyle = iota
	BorderThin
	BorderMedium
	BorderDashed
	BorderDotted
	BorderThick
	BorderDouble
	BorderHair
	BorderMediumDashed
	BorderDashDot
	BorderMediumDashDot
	BorderDashDotDot
	BorderMediumDashDotDot
	BorderSlantDashDot
)

type BorderEdge struct {
	Style BorderStyle
	Color Color
}

type Border struct {
	Left         BorderEdge
	Right        BorderEdge
	Top          BorderEdge
	Bottom       BorderEdge
	Diagonal     BorderEdge
	DiagonalUp   bool
	DiagonalDown bool
}

type PatternType uint8

const (
	PatternNone PatternType = iota
	PatternSolid
	PatternDarkGray
	PatternMediumGray
	PatternLightGray
	PatternGray0625
	PatternGray125
)

type Fill struct {
	Pattern    PatternType
	Foreground Color
	Background Color
}

type UnderlineStyle uint8

const (
	UnderlineNone UnderlineStyle = iota
	UnderlineSingle
	UnderlineDouble
	UnderlineSingleAccounting
	UnderlineDoubleAccounting
)

type FontVerticalAlign uint8

const (
	FontAlignNone FontVerticalAlign = iota
	FontAlignBaseline
	FontAlignSuperscript
	FontAlignSubscript
)

type FontScheme uint8

const (
	FontSchemeNone FontScheme = iota
	FontSchemeMinor
	FontSchemeMajor
)

type Font struct {
	Name          string
	Size          float64
	Bold          bool
	Italic        bool
	Strike        bool
	Outline       bool
	Shadow        bool
	Underline     UnderlineStyle
	VerticalAlign FontVerticalAlign
	Color         Color
	Family        int
	Charset       int
	Scheme        FontScheme
}

// NumberFormat is a builtin format id, or a custom format code when Custom is
// set. Custom format ids are assigned when the workbook is written.
type NumberFormat struct {
	Number int
	Custom string
}

func (nf NumberFormat) IsCustom() bool {
	return nf.Custom != ""
}

// Builtin number formats used by the predefined styles.
const (
	FormatGeneral     = 0
	FormatInteger     = 1
	FormatDecimal     = 2
	FormatPercent     = 9
	FormatDate        = 14
	FormatTime        = 21
	FormatDateTime    = 22
	FormatText        = 49
	firstCustomFormat = 164
)

type HorizontalAlign uint8

const (
	HAlignNone HorizontalAlign = iota
	HAlignGeneral
	HAlignLeft
	HAlignCenter
	HAlignRight
	HAlignFill
	HAlignJustify
	HAlignCenterContinuous
	HAlignDistributed
)

type VerticalAlign uint8

const (
	VAlignNone VerticalAlign = iota
	VAlignTop
	VAlignCenter
	VAlignBottom
	VAlignJustify
	VAlignDistributed
)

// VerticalText is the TextRotation value for stacked letters.
const VerticalText = 255

// CellXf holds alignment and protection of a cell format. Excel locks cells
// by default, so the zero value means locked.
type CellXf struct {
	Horizontal          HorizontalAlign
	Vertical            VerticalAlign
	WrapText            bool
	ShrinkToFit         bool
	Indent              int
	TextRotation        int
	Unlocked            bool
	Hidden              bool
	ForceApplyAlignment bool
}

func (x CellXf) hasAlignment() bool {
	return x.Horizontal != HAlignNone || x.Vertical != VAlignNone || x.WrapText || x.ShrinkToFit ||
		x.Indent != 0 || x.TextRotation != 0 || x.ForceApplyAlignment
}

func (x CellXf) hasProtection() bool {
	return x.Unlocked || x.Hidden
}

// Style is a complete cell format.
type Style struct {
	Border       Border
	Fill         Fill
	Font         Font
	NumberFormat NumberFormat
	CellXf       CellXf
}

func DefaultFont() Font {
	return Font{Name: "Calibri", Size: 11, Family: 2, Color: ThemeColor(1), Scheme: FontSchemeMinor}
}

// DefaultStyle is the format of an unstyled cell.
func DefaultStyle() Style {
	return Style{Font: DefaultFont()}
}

func DateStyle() Style {
	s := DefaultStyle()
	s.NumberFormat = NumberFormat{Number: FormatDate}
	return s
}

func TimeStyle() Style {
	s := DefaultStyle()
	s.NumberFormat = NumberFormat{Number: FormatTime}
	return s
}

func BoldStyle() Style {
	s := DefaultStyle()
	s.Font.Bold = true
	return s
}

func ItalicStyle() Style {
	s := DefaultStyle()
	s.Font.Italic = true
	return s
}

func UnderlinedStyle() Style {
	s := DefaultStyle()
	s.Font.Underline = UnderlineSingle
	return s
}

// MergeCellStyle centers the content of a merged block.
func MergeCellStyle() Style {
	s := DefaultStyle()
	s.CellXf.Horizontal = HAlignCenter
	s.CellXf.Vertical = VAlignCenter
	s.CellXf.ForceApplyAlignment = true
	return s
}

// ColorFillStyle fills the cell with a solid ARGB color.
func ColorFillStyle(argb string) Style {
	s := DefaultStyle()
	s.Fill = Fill{Pattern: PatternSolid, Foreground: RGB(argb), Background: IndexedColor(64)}
	return s
}

// FrameStyle draws thin borders around the cell.
func FrameStyle() Style {
	s := DefaultStyle()
	edge := BorderEdge{Style: BorderThin}
	s.Border = Border{Left: edge, Right: edge, Top: edge, Bottom: edge}
	return s
}

package xlsx

// names maps an enum to its SpreadsheetML attribute value and back.
type names[T comparable] struct {
	byValue map[T]string
	byName  map[string]T
}

func newNames[T comparable](m map[T]string) names[T] {
	n := names[T]{byValue: m, byName: make(map[string]T, len(m))}
	for v, name := range m {
		n.byName[name] = v
	}
	return n
}

func (n names[T]) name(v T) string {
	return n.byValue[v]
}

func (n names[T]) value(name string) T {
	return n.byName[name]
}

var (
	borderStyleNames = newNames(map[BorderStyle]string{
		BorderThin:             "thin",
		BorderMedium:           "medium",
		BorderDashed:           "dashed",
		BorderDotted:           "dotted",
		BorderThick:            "thick",
		BorderDouble:           "double",
		BorderHair:             "hair",
		BorderMediumDashed:     "mediumDashed",
		BorderDashDot:          "dashDot",
		BorderMediumDashDot:    "mediumDashDot",
		BorderDashDotDot:       "dashDotDot",
		BorderMediumDashDotDot: "mediumDashDotDot",
		BorderSlantDashDot:     "slantDashDot",
	})
	patternNames = newNames(map[PatternType]string{
		PatternNone:       "none",
		PatternSolid:      "solid",
		PatternDarkGray:   "darkGray",
		PatternMediumGray: "mediumGray",
		PatternLightGray:  "lightGray",
		PatternGray0625:   "gray0625",
		PatternGray125:    "gray125",
	})
	underlineNames = newNames(map[UnderlineStyle]string{
		UnderlineSingle:           "single",
		UnderlineDouble:           "double",
		UnderlineSingleAccounting: "singleAccounting",
		UnderlineDoubleAccounting: "doubleAccounting",
	})
	fontAlignNames = newNames(map[FontVerticalAlign]string{
		FontAlignBaseline:    "baseline",
		FontAlignSuperscript: "superscript",
		FontAlignSubscript:   "subscript",
	})
	schemeNames = newNames(map[FontScheme]string{
		FontSchemeMinor: "minor",
		FontSchemeMajor: "major",
	})
	hAlignNames = newNames(map[HorizontalAlign]string{
		HAlignGeneral:          "general",
		HAlignLeft:             "left",
		HAlignCenter:           "center",
		HAlignRight:            "right",
		HAlignFill:             "fill",
		HAlignJustify:          "justify",
		HAlignCenterContinuous: "centerContinuous",
		HAlignDistributed:      "distributed",
	})
	vAlignNames = newNames(map[VerticalAlign]string{
		VAlignTop:         "top",
		VAlignCenter:      "center",
		VAlignBottom:      "bottom",
		VAlignJustify:     "justify",
		VAlignDistributed: "distributed",
	})
)

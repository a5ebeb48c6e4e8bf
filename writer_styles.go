package xlsx

// numFmtIDs assigns ids to the number formats of a repository. Builtin
// formats keep their id, custom codes are numbered from 164.
func numFmtIDs(formats []NumberFormat) []int {
	ids := make([]int, len(formats))
	next := firstCustomFormat
	for i, nf := range formats {
		if nf.IsCustom() {
			ids[i] = next
			next++
		} else {
			ids[i] = nf.Number
		}
	}
	return ids
}

// writeStyles renders the styles part. Every style of the repository becomes
// one cellXfs entry, in repository order.
func writeStyles(repo *StyleRepository) []byte {
	x := newXMLWriter()
	x.open("styleSheet").attr("xmlns", nsMain).end()

	formats := repo.NumberFormats()
	fmtIDs := numFmtIDs(formats)
	custom := 0
	for _, nf := range formats {
		if nf.IsCustom() {
			custom++
		}
	}
	if custom > 0 {
		x.open("numFmts").attrInt("count", custom).end()
		for i, nf := range formats {
			if nf.IsCustom() {
				x.open("numFmt").attrInt("numFmtId", fmtIDs[i]).attr("formatCode", nf.Custom).empty()
			}
		}
		x.close("numFmts")
	}

	fonts := repo.Fonts()
	x.open("fonts").attrInt("count", len(fonts)).end()
	for _, f := range fonts {
		writeFont(x, f)
	}
	x.close("fonts")

	fills := repo.Fills()
	x.open("fills").attrInt("count", len(fills)).end()
	for _, f := range fills {
		writeFill(x, f)
	}
	x.close("fills")

	borders := repo.Borders()
	x.open("borders").attrInt("count", len(borders)).end()
	for _, b := range borders {
		writeBorder(x, b)
	}
	x.close("borders")

	x.open("cellStyleXfs").attrInt("count", 1).end()
	x.open("xf").attrInt("numFmtId", 0).attrInt("fontId", 0).attrInt("fillId", 0).attrInt("borderId", 0).empty()
	x.close("cellStyleXfs")

	styles := repo.Styles()
	x.open("cellXfs").attrInt("count", len(styles)).end()
	for _, s := range styles {
		ids, _ := repo.IDs(s)
		writeXf(x, s, ids, fmtIDs[ids.NumberFormat])
	}
	x.close("cellXfs")

	x.open("cellStyles").attrInt("count", 1).end()
	x.open("cellStyle").attr("name", "Normal").attrInt("xfId", 0).attrInt("builtinId", 0).empty()
	x.close("cellStyles")

	x.close("styleSheet")
	return x.bytes()
}

func writeColor(x *xmlWriter, name string, c Color) {
	if c.Kind == ColorNone {
		return
	}
	x.open(name)
	switch c.Kind {
	case ColorAuto:
		x.attrBool("auto", true)
	case ColorRGB:
		x.attr("rgb", c.RGB)
	case ColorTheme:
		x.attrInt("theme", c.Theme)
	case ColorIndexed:
		x.attrInt("indexed", c.Indexed)
	}
	if c.Tint != 0 {
		x.attrFloat("tint", c.Tint)
	}
	x.empty()
}

func writeFont(x *xmlWriter, f Font) {
	x.open("font").end()
	flag := func(name string, on bool) {
		if on {
			x.open(name).empty()
		}
	}
	flag("b", f.Bold)
	flag("i", f.Italic)
	flag("strike", f.Strike)
	flag("outline", f.Outline)
	flag("shadow", f.Shadow)
	switch f.Underline {
	case UnderlineNone:
	case UnderlineSingle:
		x.open("u").empty()
	default:
		x.open("u").attr("val", underlineNames.name(f.Underline)).empty()
	}
	if f.VerticalAlign != FontAlignNone {
		x.open("vertAlign").attr("val", fontAlignNames.name(f.VerticalAlign)).empty()
	}
	if f.Size != 0 {
		x.open("sz").attrFloat("val", f.Size).empty()
	}
	writeColor(x, "color", f.Color)
	if f.Name != "" {
		x.open("name").attr("val", f.Name).empty()
	}
	if f.Family != 0 {
		x.open("family").attrInt("val", f.Family).empty()
	}
	if f.Charset != 0 {
		x.open("charset").attrInt("val", f.Charset).empty()
	}
	if f.Scheme != FontSchemeNone {
		x.open("scheme").attr("val", schemeNames.name(f.Scheme)).empty()
	}
	x.close("font")
}

func writeFill(x *xmlWriter, f Fill) {
	x.open("fill").end()
	x.open("patternFill").attr("patternType", patternNames.name(f.Pattern))
	if f.Foreground.Kind == ColorNone && f.Background.Kind == ColorNone {
		x.empty()
	} else {
		x.end()
		writeColor(x, "fgColor", f.Foreground)
		writeColor(x, "bgColor", f.Background)
		x.close("patternFill")
	}
	x.close("fill")
}

func writeBorder(x *xmlWriter, b Border) {
	x.open("border")
	if b.DiagonalUp {
		x.attrBool("diagonalUp", true)
	}
	if b.DiagonalDown {
		x.attrBool("diagonalDown", true)
	}
	x.end()
	writeEdge(x, "left", b.Left)
	writeEdge(x, "right", b.Right)
	writeEdge(x, "top", b.Top)
	writeEdge(x, "bottom", b.Bottom)
	writeEdge(x, "diagonal", b.Diagonal)
	x.close("border")
}

func writeEdge(x *xmlWriter, name string, e BorderEdge) {
	x.open(name)
	if e.Style != BorderNone {
		x.attr("style", borderStyleNames.name(e.Style))
	}
	if e.Color.Kind == ColorNone {
		x.empty()
		return
	}
	x.end()
	writeColor(x, "color", e.Color)
	x.close(name)
}

func writeXf(x *xmlWriter, s *Style, ids StyleIDs, numFmtID int) {
	xf := s.CellXf
	x.open("xf").
		attrInt("numFmtId", numFmtID).
		attrInt("fontId", ids.Font).
		attrInt("fillId", ids.Fill).
		attrInt("borderId", ids.Border).
		attrInt("xfId", 0)
	if numFmtID != 0 {
		x.attrBool("applyNumberFormat", true)
	}
	if ids.Font != 0 {
		x.attrBool("applyFont", true)
	}
	if ids.Fill != 0 {
		x.attrBool("applyFill", true)
	}
	if ids.Border != 0 {
		x.attrBool("applyBorder", true)
	}
	if xf.ForceApplyAlignment {
		x.attrBool("applyAlignment", true)
	}
	if xf.hasProtection() {
		x.attrBool("applyProtection", true)
	}
	if !xf.hasAlignment() && !xf.hasProtection() {
		x.empty()
		return
	}
	x.end()
	if xf.hasAlignment() {
		x.open("alignment")
		if xf.Horizontal != HAlignNone {
			x.attr("horizontal", hAlignNames.name(xf.Horizontal))
		}
		if xf.Vertical != VAlignNone {
			x.attr("vertical", vAlignNames.name(xf.Vertical))
		}
		if xf.TextRotation != 0 {
			x.attrInt("textRotation", xf.TextRotation)
		}
		if xf.WrapText {
			x.attrBool("wrapText", true)
		}
		if xf.Indent != 0 {
			x.attrInt("indent", xf.Indent)
		}
		if xf.ShrinkToFit {
			x.attrBool("shrinkToFit", true)
		}
		x.empty()
	}
	if xf.hasProtection() {
		x.open("protection")
		if xf.Unlocked {
			x.attrBool("locked", false)
		}
		if xf.Hidden {
			x.attrBool("hidden", true)
		}
		x.empty()
	}
	x.close("xf")
}

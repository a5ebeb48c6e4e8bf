package xlsx

import "encoding/xml"

// element identifies the SpreadsheetML elements the reader reacts to.
type element uint8

const (
	elUnknown element = iota
	elSst
	elSi
	elT
	elR
	elRPh
	elWorksheet
	elSheetViews
	elSheetView
	elPane
	elSelection
	elSheetFormatPr
	elCols
	elCol
	elSheetData
	elRow
	elC
	elV
	elF
	elIs
	elSheetProtection
	elAutoFilter
	elMergeCells
	elMergeCell
)

var elementNames = map[string]element{
	"sst":             elSst,
	"si":              elSi,
	"t":               elT,
	"r":               elR,
	"rPh":             elRPh,
	"worksheet":       elWorksheet,
	"sheetViews":      elSheetViews,
	"sheetView":       elSheetView,
	"pane":            elPane,
	"selection":       elSelection,
	"sheetFormatPr":   elSheetFormatPr,
	"cols":            elCols,
	"col":             elCol,
	"sheetData":       elSheetData,
	"row":             elRow,
	"c":               elC,
	"v":               elV,
	"f":               elF,
	"is":              elIs,
	"sheetProtection": elSheetProtection,
	"autoFilter":      elAutoFilter,
	"mergeCells":      elMergeCells,
	"mergeCell":       elMergeCell,
}

func elementOf(name xml.Name) element {
	return elementNames[name.Local]
}

// attrs gives by-name access to the attributes of a start element,
// ignoring namespaces.
type attrs []xml.Attr

func (a attrs) get(name string) (string, bool) {
	for _, attr := range a {
		if attr.Name.Local == name {
			return attr.Value, true
		}
	}
	return "", false
}

func (a attrs) str(name string) string {
	v, _ := a.get(name)
	return v
}

// flag reads an xsd:boolean attribute, falling back to def when absent.
func (a attrs) flag(name string, def bool) bool {
	v, ok := a.get(name)
	if !ok {
		return def
	}
	return v == "1" || v == "true"
}

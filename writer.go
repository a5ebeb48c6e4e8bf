package xlsx

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/anfilat/xlsx-rw/internal/opc"
)

const (
	nsMain          = "http://schemas.openxmlformats.org/spreadsheetml/2006/main"
	nsRelationships = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsPackageRels   = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsContentTypes  = "http://schemas.openxmlformats.org/package/2006/content-types"

	ctRelationships = "application/vnd.openxmlformats-package.relationships+xml"
	ctWorkbook      = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet.main+xml"
	ctWorksheet     = "application/vnd.openxmlformats-officedocument.spreadsheetml.worksheet+xml"
	ctStyles        = "application/vnd.openxmlformats-officedocument.spreadsheetml.styles+xml"
	ctSharedStrings = "application/vnd.openxmlformats-officedocument.spreadsheetml.sharedStrings+xml"
	ctCoreProps     = "application/vnd.openxmlformats-package.core-properties+xml"
	ctAppProps      = "application/vnd.openxmlformats-officedocument.extended-properties+xml"

	w3cDateTime = "2006-01-02T15:04:05Z"
)

// stringTable is the shared string table of one save. Equal strings share
// one entry.
type stringTable struct {
	index map[string]int
	items []string
	refs  int
}

func newStringTable() *stringTable {
	return &stringTable{index: make(map[string]int)}
}

func (t *stringTable) add(s string) int {
	t.refs++
	if i, ok := t.index[s]; ok {
		return i
	}
	i := len(t.items)
	t.index[s] = i
	t.items = append(t.items, s)
	return i
}

// saveContext is the state shared by all parts of one save.
type saveContext struct {
	repo     *StyleRepository
	strings  *stringTable
	date1904 bool
	log      *slog.Logger
}

// styleID is the cellXfs index of a style; nil is the default style.
func (ctx *saveContext) styleID(s *Style) (int, error) {
	if s == nil {
		return 0, nil
	}
	p, ok := ctx.repo.Lookup(*s)
	if !ok {
		return 0, fmt.Errorf("style missing from the save repository: %w", ErrStyle)
	}
	ids, _ := ctx.repo.IDs(p)
	return ids.Style, nil
}

// collectStyles interns the styles in use, columns first, then cells in
// row order, so the ids follow the sheet.
func (ctx *saveContext) collectStyles(ws *Worksheet) {
	for _, c := range ws.Columns() {
		if c.Style != nil {
			ctx.repo.Add(*c.Style)
		}
	}
	for _, c := range ws.Cells() {
		if c.Style != nil {
			ctx.repo.Add(*c.Style)
		}
	}
}

// Save writes the workbook as an xlsx document. The package is built
// completely before anything reaches w.
func (wb *Workbook) Save(w io.Writer) error {
	pkg, err := wb.build()
	if err != nil {
		return err
	}
	if _, err := pkg.WriteTo(w); err != nil {
		return fmt.Errorf("%w: write package: %w", ErrIO, err)
	}
	return nil
}

// SaveAs writes the workbook to a file. The file is not touched when
// building the document fails.
func (wb *Workbook) SaveAs(path string) error {
	pkg, err := wb.build()
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: create %s: %w", ErrIO, path, err)
	}
	if _, err := pkg.WriteTo(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: write %s: %w", ErrIO, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %w", ErrIO, path, err)
	}
	return nil
}

func (wb *Workbook) build() (*opc.Package, error) {
	if err := wb.validate(); err != nil {
		return nil, err
	}
	ctx := &saveContext{
		repo:     newSaveRepository(),
		strings:  newStringTable(),
		date1904: wb.Date1904,
		log:      wb.logger(),
	}
	for _, ws := range wb.sheets {
		prepareColumns(ws, ctx.log)
		ctx.collectStyles(ws)
	}

	active := wb.activeTab()
	sheets := make([][]byte, len(wb.sheets))
	for i, ws := range wb.sheets {
		data, err := writeWorksheet(ws, ctx, i == active)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", ws.name, err)
		}
		sheets[i] = data
	}
	hasStrings := len(ctx.strings.items) > 0

	pkg := opc.New()
	pkg.Put(partContentTypes, wb.contentTypes(hasStrings))
	pkg.Put(partRootRels, rootRels())
	pkg.Put(partAppProps, wb.appProperties())
	pkg.Put(partCoreProps, wb.coreProperties())
	pkg.Put(partWorkbook, wb.workbookXML(active))
	pkg.Put(partWorkbookRels, wb.workbookRels(hasStrings))
	pkg.Put(partStyles, writeStyles(ctx.repo))
	if hasStrings {
		pkg.Put(partSharedStrings, writeSharedStrings(ctx.strings))
	}
	for i, data := range sheets {
		pkg.Put(worksheetPart(i), data)
	}
	ctx.log.Debug("workbook built", slog.Int("sheets", len(sheets)),
		slog.Int("styles", ctx.repo.Len()), slog.Int("strings", len(ctx.strings.items)))
	return pkg, nil
}

func (wb *Workbook) contentTypes(hasStrings bool) []byte {
	x := newXMLWriter()
	x.open("Types").attr("xmlns", nsContentTypes).end()
	x.open("Default").attr("Extension", "rels").attr("ContentType", ctRelationships).empty()
	x.open("Default").attr("Extension", "xml").attr("ContentType", "application/xml").empty()
	override := func(part, contentType string) {
		x.open("Override").attr("PartName", "/"+part).attr("ContentType", contentType).empty()
	}
	override(partWorkbook, ctWorkbook)
	for i := range wb.sheets {
		override(worksheetPart(i), ctWorksheet)
	}
	override(partStyles, ctStyles)
	if hasStrings {
		override(partSharedStrings, ctSharedStrings)
	}
	override(partCoreProps, ctCoreProps)
	override(partAppProps, ctAppProps)
	x.close("Types")
	return x.bytes()
}

func rootRels() []byte {
	var rels relationships
	rels.add(relTypeOfficeDoc, partWorkbook)
	rels.add(relTypeCoreProps, partCoreProps)
	rels.add(relTypeExtendedProps, partAppProps)
	return rels.bytes()
}

// workbookRels lists the sheets first, so sheet i gets id rId{i+1}.
func (wb *Workbook) workbookRels(hasStrings bool) []byte {
	var rels relationships
	for i := range wb.sheets {
		rels.add(relTypeWorksheet, "worksheets/sheet"+strconv.Itoa(i+1)+".xml")
	}
	rels.add(relTypeStyles, "styles.xml")
	if hasStrings {
		rels.add(relTypeSharedStrings, "sharedStrings.xml")
	}
	return rels.bytes()
}

func (wb *Workbook) workbookXML(active int) []byte {
	x := newXMLWriter()
	x.open("workbook").attr("xmlns", nsMain).attr("xmlns:r", nsRelationships).end()
	x.open("workbookPr")
	if wb.Date1904 {
		x.attrBool("date1904", true)
	}
	x.empty()
	if p := wb.Protection; p.enabled() {
		x.open("workbookProtection")
		if p.PasswordHash != "" {
			x.attr("workbookPassword", p.PasswordHash)
		}
		if p.LockStructure {
			x.attrBool("lockStructure", true)
		}
		if p.LockWindows {
			x.attrBool("lockWindows", true)
		}
		x.empty()
	}
	x.open("bookViews").end()
	x.open("workbookView").attrInt("activeTab", active).empty()
	x.close("bookViews")
	x.open("sheets").end()
	for i, ws := range wb.sheets {
		x.open("sheet").attr("name", ws.name).attrInt("sheetId", i+1)
		if ws.hidden {
			x.attr("state", "hidden")
		}
		x.attr("r:id", "rId"+strconv.Itoa(i+1)).empty()
	}
	x.close("sheets")
	x.close("workbook")
	return x.bytes()
}

func writeSharedStrings(t *stringTable) []byte {
	x := newXMLWriter()
	x.open("sst").attr("xmlns", nsMain).attrInt("count", t.refs).attrInt("uniqueCount", len(t.items)).end()
	for _, s := range t.items {
		x.open("si").end()
		x.open("t")
		if needsPreserveSpace(s) {
			x.attr("xml:space", "preserve")
		}
		x.end().text(s).close("t")
		x.close("si")
	}
	x.close("sst")
	return x.bytes()
}

func (wb *Workbook) appProperties() []byte {
	x := newXMLWriter()
	x.open("Properties").
		attr("xmlns", "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties").
		attr("xmlns:vt", "http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes").end()
	x.element("Application", "Microsoft Excel")
	x.element("DocSecurity", "0")
	x.element("ScaleCrop", "false")
	x.open("HeadingPairs").end()
	x.open("vt:vector").attr("size", "2").attr("baseType", "variant").end()
	x.open("vt:variant").end().element("vt:lpstr", "Worksheets").close("vt:variant")
	x.open("vt:variant").end().element("vt:i4", strconv.Itoa(len(wb.sheets))).close("vt:variant")
	x.close("vt:vector").close("HeadingPairs")
	x.open("TitlesOfParts").end()
	x.open("vt:vector").attrInt("size", len(wb.sheets)).attr("baseType", "lpstr").end()
	for _, ws := range wb.sheets {
		x.element("vt:lpstr", ws.name)
	}
	x.close("vt:vector").close("TitlesOfParts")
	x.element("LinksUpToDate", "false")
	x.element("SharedDoc", "false")
	x.element("HyperlinksChanged", "false")
	x.element("AppVersion", "16.0300")
	x.close("Properties")
	return x.bytes()
}

func (wb *Workbook) coreProperties() []byte {
	md := wb.Metadata
	now := time.Now().UTC()
	if md.Created.IsZero() {
		md.Created = now
	}
	if md.Modified.IsZero() {
		md.Modified = now
	}
	x := newXMLWriter()
	x.open("cp:coreProperties").
		attr("xmlns:cp", "http://schemas.openxmlformats.org/package/2006/metadata/core-properties").
		attr("xmlns:dc", "http://purl.org/dc/elements/1.1/").
		attr("xmlns:dcterms", "http://purl.org/dc/terms/").
		attr("xmlns:dcmitype", "http://purl.org/dc/dcmitype/").
		attr("xmlns:xsi", "http://www.w3.org/2001/XMLSchema-instance").end()
	optional := func(name, value string) {
		if value != "" {
			x.element(name, value)
		}
	}
	optional("dc:title", md.Title)
	optional("dc:subject", md.Subject)
	optional("dc:creator", md.Creator)
	optional("cp:keywords", md.Keywords)
	optional("dc:description", md.Description)
	optional("cp:lastModifiedBy", md.LastModifiedBy)
	optional("cp:category", md.Category)
	x.open("dcterms:created").attr("xsi:type", "dcterms:W3CDTF").end().
		text(md.Created.UTC().Format(w3cDateTime)).close("dcterms:created")
	x.open("dcterms:modified").attr("xsi:type", "dcterms:W3CDTF").end().
		text(md.Modified.UTC().Format(w3cDateTime)).close("dcterms:modified")
	x.close("cp:coreProperties")
	return x.bytes()
}

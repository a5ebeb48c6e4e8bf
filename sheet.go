package xlsx

import (
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

type capture uint8

const (
	captureNone capture = iota
	captureValue
	captureFormula
	captureInline
)

// rawCell collects the pieces of one <c> element until it is closed.
type rawCell struct {
	addr    Address
	typ     string
	style   int
	value   []byte
	formula []byte
	inline  []byte
}

// sheetReader is the state of reading one worksheet part.
type sheetReader struct {
	decoder  *xml.Decoder
	ws       *Worksheet
	strings  sharedStrings
	styles   *styleTable
	date1904 bool
	opts     *ImportOptions
	log      *slog.Logger

	row      int
	col      int
	cell     rawCell
	capture  capture
	inInline bool
	viewSeen bool
}

func readWorksheet(rd io.Reader, ws *Worksheet, x *reader) error {
	r := &sheetReader{
		decoder:  xml.NewDecoder(rd),
		ws:       ws,
		strings:  x.sharedStrings,
		styles:   x.styles,
		date1904: x.book.Date1904,
		opts:     x.opts,
		log:      x.log,
		row:      -1,
		col:      -1,
	}
	for {
		t, err := r.decoder.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		switch token := t.(type) {
		case xml.StartElement:
			err = r.start(token)
		case xml.EndElement:
			err = r.end(token)
		case xml.CharData:
			r.text(token)
		}
		if err != nil {
			return err
		}
	}
}

func (r *sheetReader) start(token xml.StartElement) error {
	a := attrs(token.Attr)
	switch elementOf(token.Name) {
	case elWorksheet, elSheetViews, elCols, elSheetData, elMergeCells, elR:
	case elSheetView:
		if r.viewSeen {
			return r.decoder.Skip()
		}
		r.viewSeen = true
		r.sheetView(a)
	case elPane:
		r.pane(a)
	case elSelection:
		r.selection(a)
	case elSheetFormatPr:
		r.formatProperties(a)
	case elCol:
		return r.column(a)
	case elRow:
		return r.startRow(a)
	case elC:
		return r.startCell(a)
	case elV:
		r.capture = captureValue
	case elF:
		r.capture = captureFormula
	case elIs:
		r.inInline = true
	case elT:
		if r.inInline {
			r.capture = captureInline
		}
	case elSheetProtection:
		r.protection(a)
	case elAutoFilter:
		if err := r.autoFilter(a); err != nil {
			return err
		}
		return r.decoder.Skip()
	case elMergeCell:
		return r.mergeCell(a)
	default:
		return r.decoder.Skip()
	}
	return nil
}

func (r *sheetReader) end(token xml.EndElement) error {
	switch elementOf(token.Name) {
	case elV, elF, elT:
		r.capture = captureNone
	case elIs:
		r.inInline = false
	case elC:
		return r.finishCell()
	}
	return nil
}

func (r *sheetReader) text(data xml.CharData) {
	switch r.capture {
	case captureValue:
		r.cell.value = append(r.cell.value, data...)
	case captureFormula:
		r.cell.formula = append(r.cell.formula, data...)
	case captureInline:
		r.cell.inline = append(r.cell.inline, data...)
	}
}

func (r *sheetReader) sheetView(a attrs) {
	view := &r.ws.View
	if zoom, err := strconv.Atoi(a.str("zoomScale")); err == nil && zoom != 100 {
		view.Zoom = zoom
	}
	view.HideGridLines = !a.flag("showGridLines", true)
	view.HideRowColumnHeaders = !a.flag("showRowColHeaders", true)
	view.HideRuler = !a.flag("showRuler", true)
}

func (r *sheetReader) pane(a attrs) {
	pane := Pane{State: PaneSplit, ActivePane: a.str("activePane")}
	switch a.str("state") {
	case "frozen", "frozenSplit":
		pane.State = PaneFrozen
	}
	pane.XSplit, _ = parseFloat(a.str("xSplit"))
	pane.YSplit, _ = parseFloat(a.str("ySplit"))
	if addr, err := ParseAddress(a.str("topLeftCell")); err == nil {
		pane.TopLeftCell = addr
	}
	r.ws.View.Pane = pane
}

// selection keeps the selection of the active pane.
func (r *sheetReader) selection(a attrs) {
	if p := a.str("pane"); p != "" && p != r.ws.View.Pane.ActivePane {
		return
	}
	if ref, _, _ := strings.Cut(a.str("sqref"), " "); ref != "" {
		if rng, err := parseRef(ref); err == nil {
			r.ws.View.Selection = &rng
		}
	}
	if addr, err := ParseAddress(a.str("activeCell")); err == nil {
		r.ws.View.ActiveCell = &addr
	}
}

func (r *sheetReader) formatProperties(a attrs) {
	if h, ok := parseFloat(a.str("defaultRowHeight")); ok {
		r.ws.DefaultRowHeight = h
	}
	if w, ok := parseFloat(a.str("defaultColWidth")); ok {
		r.ws.DefaultColumnWidth = w
	}
}

// column expands a <col> span into one entry per column.
func (r *sheetReader) column(a attrs) error {
	first, err := strconv.Atoi(a.str("min"))
	if err != nil {
		return fmt.Errorf("col min %q: %w", a.str("min"), ErrFormat)
	}
	last, err := strconv.Atoi(a.str("max"))
	if err != nil {
		last = first
	}
	if first < 1 || last < first || last > MaxColumn+1 {
		return fmt.Errorf("col span %d:%d: %w", first, last, ErrRange)
	}
	proto := Column{Hidden: a.flag("hidden", false)}
	if w, ok := parseFloat(a.str("width")); ok && (a.flag("customWidth", false) || w != r.ws.DefaultColumnWidth) {
		proto.Width = w
	}
	if s, err := strconv.Atoi(a.str("style")); err == nil && s > 0 {
		if proto.Style, _, err = r.styles.style(s); err != nil {
			return err
		}
	}
	if proto.isDefault() {
		return nil
	}
	for i := first - 1; i < last; i++ {
		c := proto
		c.Index = i
		r.ws.columns[i] = &c
	}
	return nil
}

func (r *sheetReader) startRow(a attrs) error {
	if v, ok := a.get("r"); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > MaxRow+1 {
			return fmt.Errorf("row number %q: %w", v, ErrFormat)
		}
		r.row = n - 1
	} else {
		r.row++
	}
	r.col = -1

	row := Row{Index: r.row, Hidden: a.flag("hidden", false)}
	if h, ok := parseFloat(a.str("ht")); ok && (a.flag("customHeight", false) || h != r.ws.DefaultRowHeight) {
		row.Height = h
	}
	if !row.isDefault() {
		r.ws.rows[r.row] = &row
	}
	return nil
}

func (r *sheetReader) startCell(a attrs) error {
	r.cell = rawCell{
		value:   r.cell.value[:0],
		formula: r.cell.formula[:0],
		inline:  r.cell.inline[:0],
		typ:     a.str("t"),
	}
	if ref, ok := a.get("r"); ok {
		addr, err := ParseAddress(ref)
		if err != nil {
			return err
		}
		r.cell.addr = addr.key()
		r.row = addr.Row
	} else {
		r.cell.addr = Address{Column: r.col + 1, Row: max(r.row, 0)}
		if err := checkBounds(r.cell.addr.Column, r.cell.addr.Row); err != nil {
			return err
		}
	}
	r.col = r.cell.addr.Column
	if v, ok := a.get("s"); ok {
		s, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("cell %s style %q: %w", r.cell.addr, v, ErrFormat)
		}
		r.cell.style = s
	}
	return nil
}

func (r *sheetReader) finishCell() error {
	style, class, err := r.styles.style(r.cell.style)
	if err != nil {
		return err
	}
	if r.cell.style == 0 {
		style = nil
	}
	value, err := r.resolve(class)
	if err != nil {
		return fmt.Errorf("cell %s: %w", r.cell.addr, err)
	}
	c := &Cell{Value: value, Type: resolveType(value), Address: r.cell.addr, Style: style}
	if r.opts.enforcing() {
		r.opts.enforce(c, r.date1904)
	}
	r.ws.cells[c.Address] = c
	return nil
}

// resolve turns the raw cell into a value. A formula wins over its cached
// result so that it survives a round trip.
func (r *sheetReader) resolve(class formatClass) (Value, error) {
	raw := string(r.cell.value)
	if len(r.cell.formula) > 0 {
		return Formula(string(r.cell.formula)), nil
	}
	switch r.cell.typ {
	case "b":
		switch raw {
		case "1", "true":
			return Bool(true), nil
		case "0", "false":
			return Bool(false), nil
		}
	case "s":
		idx, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return Value{}, fmt.Errorf("%w %q: %w", ErrIncorrectSharedString, raw, ErrFormat)
		}
		s, err := r.strings.get(idx)
		if err != nil {
			return Value{}, fmt.Errorf("%w %d: %w", err, idx, ErrFormat)
		}
		return String(s), nil
	case "str":
		return Formula(raw), nil
	case "inlineStr":
		return String(string(r.cell.inline)), nil
	case "e":
		return String(raw), nil
	case "d":
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return Date(t), nil
		}
	case "", "n":
		switch class {
		case formatDate:
			if f, ok := parseFloat(raw); ok && validOATime(f) {
				return Date(serialToDate(f, r.date1904)), nil
			}
		case formatTime:
			if f, ok := parseFloat(raw); ok && validOATime(f) {
				return Time(OAToTime(f)), nil
			}
		}
	default:
		r.log.Debug("unknown cell type", slog.String("sheet", r.ws.name),
			slog.String("cell", r.cell.addr.String()), slog.String("type", r.cell.typ))
	}
	if v, ok := parseNumber(raw); ok {
		return v, nil
	}
	if raw == "" {
		return Empty(), nil
	}
	return String(raw), nil
}

func (r *sheetReader) protection(a attrs) {
	p := SheetProtection{
		Enabled:      a.flag("sheet", false),
		PasswordHash: a.str("password"),
	}
	for _, pa := range protectionAttrs {
		if !a.flag(pa.name, pa.blocked) {
			p.Allowed |= pa.value
		}
	}
	r.ws.Protection = p
}

func (r *sheetReader) autoFilter(a attrs) error {
	rng, err := parseRef(a.str("ref"))
	if err != nil {
		return err
	}
	r.ws.autoFilter = &rng
	return nil
}

func (r *sheetReader) mergeCell(a attrs) error {
	rng, err := parseRef(a.str("ref"))
	if err != nil {
		return err
	}
	r.ws.merged = append(r.ws.merged, rng)
	return nil
}

// parseRef reads a range, accepting a single cell as a one-cell range.
func parseRef(ref string) (Range, error) {
	if strings.Contains(ref, ":") {
		return ParseRange(ref)
	}
	addr, err := ParseAddress(ref)
	if err != nil {
		return Range{}, err
	}
	return Range{Start: addr, End: addr}, nil
}

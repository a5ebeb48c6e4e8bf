package xlsx

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"
)

// prepareColumns marks the columns under the auto-filter and drops the
// column entries that only hold defaults.
func prepareColumns(ws *Worksheet, log *slog.Logger) {
	for _, c := range ws.columns {
		c.HasAutoFilter = false
	}
	if rng, ok := ws.AutoFilter(); ok {
		minCol, _, maxCol, _ := rng.bounds()
		for i := minCol; i <= maxCol; i++ {
			if c, err := ws.column(i); err == nil {
				c.HasAutoFilter = true
			}
		}
	}
	pruned := 0
	for idx, c := range ws.columns {
		if c.isDefault() {
			delete(ws.columns, idx)
			pruned++
		}
	}
	if pruned > 0 {
		log.Debug("pruned default columns", slog.String("sheet", ws.name), slog.Int("count", pruned))
	}
}

type sheetWriter struct {
	x   *xmlWriter
	ws  *Worksheet
	ctx *saveContext
}

func writeWorksheet(ws *Worksheet, ctx *saveContext, selected bool) ([]byte, error) {
	w := &sheetWriter{x: newXMLWriter(), ws: ws, ctx: ctx}
	cells := ws.Cells()

	w.x.open("worksheet").attr("xmlns", nsMain).attr("xmlns:r", nsRelationships).end()
	w.x.open("dimension").attr("ref", dimension(cells)).empty()
	w.sheetViews(selected)
	w.x.open("sheetFormatPr").attrFloat("defaultRowHeight", ws.DefaultRowHeight)
	if ws.DefaultColumnWidth != DefaultColumnWidth {
		w.x.attrFloat("defaultColWidth", ws.DefaultColumnWidth)
	}
	w.x.empty()
	if err := w.columns(); err != nil {
		return nil, err
	}
	if err := w.sheetData(cells); err != nil {
		return nil, err
	}
	w.protection()
	if rng, ok := ws.AutoFilter(); ok {
		w.x.open("autoFilter").attr("ref", rng.String()).empty()
	}
	if len(ws.merged) > 0 {
		w.x.open("mergeCells").attrInt("count", len(ws.merged)).end()
		for _, m := range ws.merged {
			w.x.open("mergeCell").attr("ref", m.String()).empty()
		}
		w.x.close("mergeCells")
	}
	w.x.close("worksheet")
	return w.x.bytes(), nil
}

// dimension is the used range of the sheet, "A1" for an empty one.
func dimension(cells []*Cell) string {
	if len(cells) == 0 {
		return "A1"
	}
	minCol, maxCol := MaxColumn, 0
	for _, c := range cells {
		minCol = min(minCol, c.Address.Column)
		maxCol = max(maxCol, c.Address.Column)
	}
	first := Address{Column: minCol, Row: cells[0].Address.Row}
	last := Address{Column: maxCol, Row: cells[len(cells)-1].Address.Row}
	if first == last {
		return first.String()
	}
	return first.String() + ":" + last.String()
}

func (w *sheetWriter) sheetViews(selected bool) {
	view := w.ws.View
	x := w.x
	x.open("sheetViews").end()
	x.open("sheetView")
	if selected {
		x.attrBool("tabSelected", true)
	}
	if view.HideGridLines {
		x.attrBool("showGridLines", false)
	}
	if view.HideRowColumnHeaders {
		x.attrBool("showRowColHeaders", false)
	}
	if view.HideRuler {
		x.attrBool("showRuler", false)
	}
	if view.Zoom != 0 && view.Zoom != 100 {
		x.attrInt("zoomScale", view.Zoom)
	}
	x.attrInt("workbookViewId", 0)

	pane := view.Pane
	if pane.State == PaneNone && view.Selection == nil && view.ActiveCell == nil {
		x.empty()
		x.close("sheetViews")
		return
	}
	x.end()
	if pane.State != PaneNone {
		x.open("pane")
		if pane.XSplit > 0 {
			x.attrFloat("xSplit", pane.XSplit)
		}
		if pane.YSplit > 0 {
			x.attrFloat("ySplit", pane.YSplit)
		}
		if pane.State == PaneFrozen || pane.TopLeftCell != (Address{}) {
			x.attr("topLeftCell", pane.TopLeftCell.String())
		}
		if pane.ActivePane != "" {
			x.attr("activePane", pane.ActivePane)
		}
		if pane.State == PaneFrozen {
			x.attr("state", "frozen")
		} else {
			x.attr("state", "split")
		}
		x.empty()
	}
	if view.Selection != nil || view.ActiveCell != nil {
		x.open("selection")
		if pane.State != PaneNone && pane.ActivePane != "" {
			x.attr("pane", pane.ActivePane)
		}
		if view.ActiveCell != nil {
			x.attr("activeCell", view.ActiveCell.String())
		}
		if view.Selection != nil {
			x.attr("sqref", view.Selection.String())
		}
		x.empty()
	}
	x.close("sheetView")
	x.close("sheetViews")
}

func sameColumn(a, b *Column) bool {
	return a.Width == b.Width && a.Hidden == b.Hidden && a.Style == b.Style
}

// columns writes the column entries, joining neighbours with equal settings
// into one span.
func (w *sheetWriter) columns() error {
	cols := w.ws.Columns()
	if len(cols) == 0 {
		return nil
	}
	w.x.open("cols").end()
	for i := 0; i < len(cols); {
		c := cols[i]
		j := i + 1
		for j < len(cols) && cols[j].Index == cols[j-1].Index+1 && sameColumn(c, cols[j]) {
			j++
		}
		style, err := w.ctx.styleID(c.Style)
		if err != nil {
			return err
		}
		width := c.Width
		if width == 0 {
			width = w.ws.DefaultColumnWidth
		}
		w.x.open("col").attrInt("min", c.Index+1).attrInt("max", cols[j-1].Index+1).attrFloat("width", width)
		if style != 0 {
			w.x.attrInt("style", style)
		}
		if c.Hidden {
			w.x.attrBool("hidden", true)
		}
		if c.Width != 0 {
			w.x.attrBool("customWidth", true)
		}
		w.x.empty()
		i = j
	}
	w.x.close("cols")
	return nil
}

// sheetData writes the rows in order. Rows without cells are still written
// when they carry a height or are hidden.
func (w *sheetWriter) sheetData(cells []*Cell) error {
	rowSet := make(map[int]struct{}, len(w.ws.rows))
	for idx, r := range w.ws.rows {
		if !r.isDefault() {
			rowSet[idx] = struct{}{}
		}
	}
	for _, c := range cells {
		rowSet[c.Address.Row] = struct{}{}
	}
	rows := make([]int, 0, len(rowSet))
	for idx := range rowSet {
		rows = append(rows, idx)
	}
	slices.Sort(rows)

	w.x.open("sheetData").end()
	i := 0
	for _, idx := range rows {
		w.x.open("row").attrInt("r", idx+1)
		if meta := w.ws.rows[idx]; meta != nil {
			if meta.Height > 0 {
				w.x.attrFloat("ht", meta.Height).attrBool("customHeight", true)
			}
			if meta.Hidden {
				w.x.attrBool("hidden", true)
			}
		}
		if i >= len(cells) || cells[i].Address.Row != idx {
			w.x.empty()
			continue
		}
		w.x.end()
		for ; i < len(cells) && cells[i].Address.Row == idx; i++ {
			if err := w.cell(cells[i]); err != nil {
				return err
			}
		}
		w.x.close("row")
	}
	w.x.close("sheetData")
	return nil
}

func (w *sheetWriter) cell(c *Cell) error {
	style, err := w.ctx.styleID(c.Style)
	if err != nil {
		return err
	}
	x := w.x
	x.open("c").attr("r", c.Address.key().String())
	if style != 0 {
		x.attrInt("s", style)
	}
	v := c.Value
	switch c.Type {
	case CellTypeEmpty:
		x.empty()
		return nil
	case CellTypeBool:
		x.attr("t", "b").end().element("v", boolDigit(v))
	case CellTypeNumber:
		if !v.Kind().IsNumeric() {
			x.attr("t", "s").end().element("v", strconv.Itoa(w.ctx.strings.add(v.Text())))
			break
		}
		x.end().element("v", v.Text())
	case CellTypeDate, CellTypeTime:
		serial, err := w.serial(c)
		if err != nil {
			return err
		}
		x.end().element("v", formatFloat(serial))
	case CellTypeFormula:
		x.end().element("f", v.Text())
	default:
		x.attr("t", "s").end().element("v", strconv.Itoa(w.ctx.strings.add(v.Text())))
	}
	x.close("c")
	return nil
}

// serial is the number a date or time cell is stored as.
func (w *sheetWriter) serial(c *Cell) (float64, error) {
	switch c.Value.Kind() {
	case KindDate:
		serial, err := dateToSerial(c.Value.Date(), w.ctx.date1904)
		if err != nil {
			return 0, fmt.Errorf("cell %s: %w", c.Address, err)
		}
		return serial, nil
	case KindTime:
		return TimeToOA(c.Value.Time()), nil
	}
	if c.Value.Kind().IsNumeric() {
		return c.Value.Float(), nil
	}
	return 0, fmt.Errorf("cell %s holds %s, not a date: %w", c.Address, c.Value.Kind(), ErrFormat)
}

func boolDigit(v Value) string {
	if v.Kind() == KindBool && v.Bool() || v.Kind().IsNumeric() && v.Float() != 0 {
		return "1"
	}
	return "0"
}

// protection writes sheetProtection. Only attributes that differ from what
// Excel assumes are written.
func (w *sheetWriter) protection() {
	p := w.ws.Protection
	if !p.Enabled {
		return
	}
	w.x.open("sheetProtection")
	if p.PasswordHash != "" {
		w.x.attr("password", p.PasswordHash)
	}
	w.x.attrBool("sheet", true)
	for _, pa := range protectionAttrs {
		if blocked := !p.Allows(pa.value); blocked != pa.blocked {
			w.x.attrBool(pa.name, blocked)
		}
	}
	w.x.empty()
}

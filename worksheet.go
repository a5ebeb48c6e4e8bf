package xlsx

import (
	"fmt"
	"slices"
)

const (
	DefaultColumnWidth = 8.43
	DefaultRowHeight   = 15.0
	maxColumnWidth     = 255.0
	maxRowHeight       = 409.5
	minZoom            = 10
	maxZoom            = 400
)

// Column holds the settings of one column. A zero Width means the sheet
// default.
type Column struct {
	Index         int
	Width         float64
	Hidden        bool
	HasAutoFilter bool
	Style         *Style
}

// isDefault reports whether the column can be left out of the file.
func (c *Column) isDefault() bool {
	return c.Width == 0 && !c.Hidden && !c.HasAutoFilter && c.Style == nil
}

// Row holds the settings of a row. A zero Height means the sheet default.
type Row struct {
	Index  int
	Height float64
	Hidden bool
}

func (r *Row) isDefault() bool {
	return r.Height == 0 && !r.Hidden
}

type PaneState uint8

const (
	PaneNone PaneState = iota
	PaneSplit
	PaneFrozen
)

// Pane splits the window. For frozen panes XSplit and YSplit count columns
// and rows, for split panes they are in twentieths of a point.
type Pane struct {
	State       PaneState
	XSplit      float64
	YSplit      float64
	TopLeftCell Address
	ActivePane  string
}

type SheetView struct {
	// Zoom is a percentage; zero means 100.
	Zoom                 int
	HideGridLines        bool
	HideRowColumnHeaders bool
	HideRuler            bool
	Pane                 Pane
	Selection            *Range
	ActiveCell           *Address
}

// Worksheet is a sheet of cells. Cells are keyed by position; the reference
// type of an address is kept on the cell but ignored for lookups.
type Worksheet struct {
	View       SheetView
	Protection SheetProtection

	DefaultColumnWidth float64
	DefaultRowHeight   float64

	book       *Workbook
	name       string
	hidden     bool
	cells      map[Address]*Cell
	columns    map[int]*Column
	rows       map[int]*Row
	merged     []Range
	autoFilter *Range
}

func newWorksheet(wb *Workbook, name string) *Worksheet {
	return &Worksheet{
		DefaultColumnWidth: DefaultColumnWidth,
		DefaultRowHeight:   DefaultRowHeight,
		book:               wb,
		name:               name,
		cells:              make(map[Address]*Cell),
		columns:            make(map[int]*Column),
		rows:               make(map[int]*Row),
	}
}

func (ws *Worksheet) Name() string {
	return ws.name
}

func (ws *Worksheet) Rename(name string) error {
	return ws.book.renameWorksheet(ws, name)
}

func (ws *Worksheet) Hidden() bool {
	return ws.hidden
}

// SetHidden hides or shows the sheet. A workbook keeps at least one visible
// sheet.
func (ws *Worksheet) SetHidden(hidden bool) error {
	if hidden && !ws.hidden && ws.book.visibleSheets() == 1 {
		return fmt.Errorf("sheet %q is the last visible sheet: %w", ws.name, ErrWorksheet)
	}
	ws.hidden = hidden
	return nil
}

// AddCell stores a value at addr, replacing any cell there. The type is
// derived from the value; a nil style keeps the default style, except for
// dates and times which get a display format.
func (ws *Worksheet) AddCell(value any, addr Address, style *Style) (*Cell, error) {
	if err := checkBounds(addr.Column, addr.Row); err != nil {
		return nil, err
	}
	c := &Cell{Value: ValueOf(value), Address: addr, Style: style}
	c.resolveType()
	ws.put(c)
	return c, nil
}

// AddFormula stores a formula. The leading '=' is optional.
func (ws *Worksheet) AddFormula(formula string, addr Address, style *Style) (*Cell, error) {
	if err := checkBounds(addr.Column, addr.Row); err != nil {
		return nil, err
	}
	if len(formula) > 0 && formula[0] == '=' {
		formula = formula[1:]
	}
	c := &Cell{Value: Formula(formula), Type: CellTypeFormula, Address: addr, Style: style}
	ws.put(c)
	return c, nil
}

// PutCell stores a prepared cell, for example one built by NewCell.
func (ws *Worksheet) PutCell(c *Cell) error {
	if err := checkBounds(c.Address.Column, c.Address.Row); err != nil {
		return err
	}
	ws.put(c)
	return nil
}

func (ws *Worksheet) put(c *Cell) {
	c.Style = ws.book.intern(c.Style)
	ws.cells[c.Address.key()] = c
}

func (ws *Worksheet) GetCell(addr Address) (*Cell, error) {
	c, ok := ws.cells[addr.key()]
	if !ok {
		return nil, fmt.Errorf("cell %s on sheet %q: %w", addr, ws.name, ErrWorksheet)
	}
	return c, nil
}

func (ws *Worksheet) HasCell(addr Address) bool {
	_, ok := ws.cells[addr.key()]
	return ok
}

func (ws *Worksheet) RemoveCell(addr Address) bool {
	key := addr.key()
	_, ok := ws.cells[key]
	delete(ws.cells, key)
	return ok
}

func (ws *Worksheet) CellCount() int {
	return len(ws.cells)
}

// Cells returns the cells ordered row by row.
func (ws *Worksheet) Cells() []*Cell {
	cells := make([]*Cell, 0, len(ws.cells))
	for _, c := range ws.cells {
		cells = append(cells, c)
	}
	slices.SortFunc(cells, (*Cell).Compare)
	return cells
}

// SetCellStyle changes the style of a cell, creating an empty cell when there
// is none.
func (ws *Worksheet) SetCellStyle(addr Address, style *Style) error {
	if err := checkBounds(addr.Column, addr.Row); err != nil {
		return err
	}
	c, ok := ws.cells[addr.key()]
	if !ok {
		c = &Cell{Value: Empty(), Type: CellTypeEmpty, Address: addr}
		ws.cells[addr.key()] = c
	}
	c.Style = ws.book.intern(style)
	return nil
}

// SetRangeStyle styles every cell of r.
func (ws *Worksheet) SetRangeStyle(r Range, style *Style) error {
	for addr := range r.Addresses() {
		if err := ws.SetCellStyle(addr, style); err != nil {
			return err
		}
	}
	return nil
}

func (ws *Worksheet) column(idx int) (*Column, error) {
	if idx < 0 || idx > MaxColumn {
		return nil, fmt.Errorf("column %d: %w", idx, ErrRange)
	}
	c, ok := ws.columns[idx]
	if !ok {
		c = &Column{Index: idx}
		ws.columns[idx] = c
	}
	return c, nil
}

// Column returns the settings of a column, or nil when it has none.
func (ws *Worksheet) Column(idx int) *Column {
	return ws.columns[idx]
}

func (ws *Worksheet) Columns() []*Column {
	cols := make([]*Column, 0, len(ws.columns))
	for _, c := range ws.columns {
		cols = append(cols, c)
	}
	slices.SortFunc(cols, func(a, b *Column) int { return a.Index - b.Index })
	return cols
}

// SetColumnWidth sets the width in characters. Zero restores the default.
func (ws *Worksheet) SetColumnWidth(idx int, width float64) error {
	if width < 0 || width > maxColumnWidth {
		return fmt.Errorf("column width %g: %w", width, ErrRange)
	}
	c, err := ws.column(idx)
	if err != nil {
		return err
	}
	c.Width = width
	return nil
}

func (ws *Worksheet) SetColumnHidden(idx int, hidden bool) error {
	c, err := ws.column(idx)
	if err != nil {
		return err
	}
	c.Hidden = hidden
	return nil
}

func (ws *Worksheet) SetColumnStyle(idx int, style *Style) error {
	c, err := ws.column(idx)
	if err != nil {
		return err
	}
	c.Style = ws.book.intern(style)
	return nil
}

func (ws *Worksheet) row(idx int) (*Row, error) {
	if idx < 0 || idx > MaxRow {
		return nil, fmt.Errorf("row %d: %w", idx, ErrRange)
	}
	r, ok := ws.rows[idx]
	if !ok {
		r = &Row{Index: idx}
		ws.rows[idx] = r
	}
	return r, nil
}

// Row returns the settings of a row, or nil when it has none.
func (ws *Worksheet) Row(idx int) *Row {
	return ws.rows[idx]
}

func (ws *Worksheet) Rows() []*Row {
	rows := make([]*Row, 0, len(ws.rows))
	for _, r := range ws.rows {
		rows = append(rows, r)
	}
	slices.SortFunc(rows, func(a, b *Row) int { return a.Index - b.Index })
	return rows
}

// SetRowHeight sets the height in points. Zero restores the default.
func (ws *Worksheet) SetRowHeight(idx int, height float64) error {
	if height < 0 || height > maxRowHeight {
		return fmt.Errorf("row height %g: %w", height, ErrRange)
	}
	r, err := ws.row(idx)
	if err != nil {
		return err
	}
	r.Height = height
	return nil
}

func (ws *Worksheet) SetRowHidden(idx int, hidden bool) error {
	r, err := ws.row(idx)
	if err != nil {
		return err
	}
	r.Hidden = hidden
	return nil
}

// SetAutoFilter puts filter buttons on the header cells of r.
func (ws *Worksheet) SetAutoFilter(r Range) error {
	if err := checkRange(r); err != nil {
		return err
	}
	ws.autoFilter = &r
	return nil
}

func (ws *Worksheet) RemoveAutoFilter() {
	ws.autoFilter = nil
}

func (ws *Worksheet) AutoFilter() (Range, bool) {
	if ws.autoFilter == nil {
		return Range{}, false
	}
	return *ws.autoFilter, true
}

func checkRange(r Range) error {
	if err := checkBounds(r.Start.Column, r.Start.Row); err != nil {
		return err
	}
	return checkBounds(r.End.Column, r.End.Row)
}

// MergeCells merges r into one cell. Only the value of the top left cell is
// kept; the other cells of the range are removed.
func (ws *Worksheet) MergeCells(r Range) error {
	if err := checkRange(r); err != nil {
		return err
	}
	for _, m := range ws.merged {
		if m.Overlaps(r) {
			return fmt.Errorf("range %s overlaps merged range %s: %w", r, m, ErrRange)
		}
	}
	minCol, minRow, _, _ := r.bounds()
	for addr := range r.Addresses() {
		if addr.Column != minCol || addr.Row != minRow {
			delete(ws.cells, addr)
		}
	}
	ws.merged = append(ws.merged, r)
	return nil
}

func (ws *Worksheet) UnmergeCells(r Range) bool {
	for i, m := range ws.merged {
		if m.Start.key() == r.Start.key() && m.End.key() == r.End.key() {
			ws.merged = append(ws.merged[:i], ws.merged[i+1:]...)
			return true
		}
	}
	return false
}

func (ws *Worksheet) MergedCells() []Range {
	return slices.Clone(ws.merged)
}

// SetZoom sets the zoom percentage, 10 to 400.
func (ws *Worksheet) SetZoom(percent int) error {
	if percent < minZoom || percent > maxZoom {
		return fmt.Errorf("zoom %d: %w", percent, ErrRange)
	}
	ws.View.Zoom = percent
	return nil
}

func (ws *Worksheet) SetSelectedCells(r Range) error {
	if err := checkRange(r); err != nil {
		return err
	}
	ws.View.Selection = &r
	active := r.Start
	ws.View.ActiveCell = &active
	return nil
}

// FreezePanes keeps the first columns and rows in view while scrolling.
// Zero for both removes the pane.
func (ws *Worksheet) FreezePanes(columns, rows int) error {
	if err := checkBounds(columns, rows); err != nil {
		return err
	}
	if columns == 0 && rows == 0 {
		ws.View.Pane = Pane{}
		return nil
	}
	ws.View.Pane = Pane{
		State:       PaneFrozen,
		XSplit:      float64(columns),
		YSplit:      float64(rows),
		TopLeftCell: Address{Column: columns, Row: rows},
		ActivePane:  activePane(columns > 0, rows > 0),
	}
	return nil
}

// SetSplit splits the window at the given offsets in twentieths of a point.
func (ws *Worksheet) SetSplit(x, y float64) error {
	if x < 0 || y < 0 {
		return fmt.Errorf("split %g,%g: %w", x, y, ErrRange)
	}
	if x == 0 && y == 0 {
		ws.View.Pane = Pane{}
		return nil
	}
	ws.View.Pane = Pane{
		State:      PaneSplit,
		XSplit:     x,
		YSplit:     y,
		ActivePane: activePane(x > 0, y > 0),
	}
	return nil
}

func activePane(x, y bool) string {
	switch {
	case x && y:
		return "bottomRight"
	case y:
		return "bottomLeft"
	default:
		return "topRight"
	}
}

// SetSheetProtection protects the sheet, allowing only the given actions.
// An empty password stores no hash.
func (ws *Worksheet) SetSheetProtection(allowed SheetProtectionValue, password string) {
	ws.Protection = SheetProtection{
		Enabled:      true,
		Allowed:      allowed,
		PasswordHash: LegacyPasswordHash(password),
	}
}

func (ws *Worksheet) RemoveSheetProtection() {
	ws.Protection = SheetProtection{}
}

// Cursor starts writing cells at column and row, moving in dir after each
// value.
func (ws *Worksheet) Cursor(dir Direction, column, row int) *Cursor {
	return &Cursor{sheet: ws, Direction: dir, Column: column, Row: row, startColumn: column, startRow: row}
}

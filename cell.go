package xlsx

// CellType is the type a cell is written and read as.
type CellType uint8

const (
	CellTypeString CellType = iota
	CellTypeNumber
	CellTypeDate
	CellTypeTime
	CellTypeBool
	CellTypeFormula
	CellTypeEmpty
	// CellTypeDefault asks NewCell to derive the type from the value.
	CellTypeDefault
)

var cellTypeNames = [...]string{"string", "number", "date", "time", "bool", "formula", "empty", "default"}

func (t CellType) String() string {
	if int(t) < len(cellTypeNames) {
		return cellTypeNames[t]
	}
	return "unknown"
}

// Cell is a value placed at an address. Style points into the style
// repository of the owning workbook once the cell is added to a worksheet.
type Cell struct {
	Value   Value
	Type    CellType
	Address Address
	Style   *Style
}

// NewCell builds a cell. With CellTypeDefault the type is derived from the
// kind of value; date and time values also get a display style if they have
// none. Formula and empty cells must be requested explicitly.
func NewCell(value any, typ CellType, addr Address) *Cell {
	c := &Cell{Value: ValueOf(value), Type: typ, Address: addr}
	if c.Type == CellTypeFormula {
		if c.Value.Kind() != KindFormula {
			c.Value = Formula(c.Value.Text())
		}
		return c
	}
	if c.Type == CellTypeEmpty {
		c.Value = Empty()
		return c
	}
	if c.Type == CellTypeDefault {
		c.resolveType()
	}
	return c
}

func (c *Cell) resolveType() {
	c.Type = resolveType(c.Value)
	switch c.Type {
	case CellTypeDate:
		if c.Style == nil {
			s := DateStyle()
			c.Style = &s
		}
	case CellTypeTime:
		if c.Style == nil {
			s := TimeStyle()
			c.Style = &s
		}
	}
}

func resolveType(v Value) CellType {
	switch v.Kind() {
	case KindBool:
		return CellTypeBool
	case KindInt, KindUint, KindFloat32, KindFloat64, KindDecimal:
		return CellTypeNumber
	case KindDate:
		return CellTypeDate
	case KindTime:
		return CellTypeTime
	case KindEmpty:
		return CellTypeEmpty
	case KindFormula:
		return CellTypeFormula
	default:
		return CellTypeString
	}
}

// Equal compares address, type, value and, when both cells carry one, style.
func (c *Cell) Equal(o *Cell) bool {
	if c == nil || o == nil {
		return c == o
	}
	if c.Address != o.Address || c.Type != o.Type || !c.Value.Equal(o.Value) {
		return false
	}
	if c.Style != nil && o.Style != nil {
		return *c.Style == *o.Style
	}
	return true
}

// Compare orders cells row by row, then by column.
func (c *Cell) Compare(o *Cell) int {
	if c.Address.Row != o.Address.Row {
		return c.Address.Row - o.Address.Row
	}
	return c.Address.Column - o.Address.Column
}

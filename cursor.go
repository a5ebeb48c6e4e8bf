package xlsx

// Direction is where a Cursor moves after writing a cell.
type Direction uint8

const (
	DirectionRight Direction = iota
	DirectionDown
)

// Cursor writes consecutive cells without spelling out every address.
type Cursor struct {
	Direction Direction
	Column    int
	Row       int
	// Style is applied to cells written through the cursor.
	Style *Style

	sheet       *Worksheet
	startColumn int
	startRow    int
}

func (c *Cursor) Address() Address {
	return Address{Column: c.Column, Row: c.Row}
}

// Write stores value at the current position and advances.
func (c *Cursor) Write(value any) (*Cell, error) {
	cell, err := c.sheet.AddCell(value, c.Address(), c.Style)
	if err != nil {
		return nil, err
	}
	c.Skip(1)
	return cell, nil
}

// WriteFormula stores a formula at the current position and advances.
func (c *Cursor) WriteFormula(formula string) (*Cell, error) {
	cell, err := c.sheet.AddFormula(formula, c.Address(), c.Style)
	if err != nil {
		return nil, err
	}
	c.Skip(1)
	return cell, nil
}

// WriteAll writes the values one after another.
func (c *Cursor) WriteAll(values ...any) error {
	for _, v := range values {
		if _, err := c.Write(v); err != nil {
			return err
		}
	}
	return nil
}

// Skip advances n cells without writing.
func (c *Cursor) Skip(n int) {
	if c.Direction == DirectionDown {
		c.Row += n
	} else {
		c.Column += n
	}
}

// NextLine moves to the start of the next row, or the next column when the
// cursor moves down.
func (c *Cursor) NextLine() {
	if c.Direction == DirectionDown {
		c.Row = c.startRow
		c.Column++
	} else {
		c.Column = c.startColumn
		c.Row++
	}
}

// MoveTo repositions the cursor. NextLine returns to the new position's
// row or column.
func (c *Cursor) MoveTo(addr Address) {
	c.Column, c.Row = addr.Column, addr.Row
	c.startColumn, c.startRow = addr.Column, addr.Row
}

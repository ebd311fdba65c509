// Package models defines data structures shared by the template locator,
// the hour calculator and the sheet populator.
package models

import "github.com/xuri/excelize/v2"

// Address is a 1-based (row, column) cell coordinate.
type Address struct {
	// Row is the row index (1-based).
	Row int `json:"row"`
	// Col is the column index (1-based).
	Col int `json:"col"`
}

// String returns the A1-style name of the address, or "" when it is out of range.
func (a Address) String() string {
	name, err := excelize.CoordinatesToCellName(a.Col, a.Row)
	if err != nil {
		return ""
	}
	return name
}

// ParseAddress parses an A1-style cell name such as "B3".
func ParseAddress(name string) (Address, error) {
	col, row, err := excelize.CellNameToCoordinates(name)
	if err != nil {
		return Address{}, err
	}
	return Address{Row: row, Col: col}, nil
}

// Rect is a rectangular block of cells, bounds inclusive.
type Rect struct {
	MinRow int `json:"min_row"`
	MinCol int `json:"min_col"`
	MaxRow int `json:"max_row"`
	MaxCol int `json:"max_col"`
}

// CellRect returns the degenerate 1x1 block at a.
func CellRect(a Address) Rect {
	return Rect{MinRow: a.Row, MinCol: a.Col, MaxRow: a.Row, MaxCol: a.Col}
}

// Contains reports whether a lies inside r.
func (r Rect) Contains(a Address) bool {
	return a.Row >= r.MinRow && a.Row <= r.MaxRow && a.Col >= r.MinCol && a.Col <= r.MaxCol
}

// Overlaps reports whether r and o share at least one cell.
func (r Rect) Overlaps(o Rect) bool {
	return r.MinRow <= o.MaxRow && o.MinRow <= r.MaxRow && r.MinCol <= o.MaxCol && o.MinCol <= r.MaxCol
}

// TopLeft returns the writable address of the block.
func (r Rect) TopLeft() Address {
	return Address{Row: r.MinRow, Col: r.MinCol}
}

// IsCell reports whether r covers exactly one cell.
func (r Rect) IsCell() bool {
	return r.MinRow == r.MaxRow && r.MinCol == r.MaxCol
}

// String returns the range in "A1:B2" notation.
func (r Rect) String() string {
	start := Address{Row: r.MinRow, Col: r.MinCol}.String()
	if r.IsCell() {
		return start
	}
	return start + ":" + Address{Row: r.MaxRow, Col: r.MaxCol}.String()
}

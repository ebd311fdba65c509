package grid

import (
	"strings"

	"github.com/ukaji3/arbeitsnachweis-go/pkg/nachweis/models"
)

// ColumnSpec describes how to recognize one worker-table column header.
type ColumnSpec struct {
	// Key is the logical column name ("name", "start", ...).
	Key string
	// Exact lists header texts that must match the whole cell, ignoring case.
	Exact []string
	// Contains lists fragments that may appear anywhere in the cell, ignoring case.
	Contains []string
	// Optional columns do not count toward detection.
	Optional bool
}

// Matches reports whether a cell value is a header for this column.
func (c ColumnSpec) Matches(value string) bool {
	v := fold(value)
	if v == "" {
		return false
	}
	for _, e := range c.Exact {
		if v == fold(e) {
			return true
		}
	}
	for _, frag := range c.Contains {
		if f := fold(frag); f != "" && strings.Contains(v, f) {
			return true
		}
	}
	return false
}

// TableHeader is the resolved header of the worker table.
type TableHeader struct {
	// Row is the topmost row holding a matched header cell.
	Row int
	// DataRow is the first row below the deepest matched header cell.
	DataRow int
	// Columns maps ColumnSpec.Key to the physical column index.
	Columns map[string]int
}

// Column returns the column index for key.
func (h TableHeader) Column(key string) (int, bool) {
	c, ok := h.Columns[key]
	return c, ok
}

// FindTableHeader looks for the first row r where every required column
// matches a cell within rows r..r+span-1. Headers split over a merged title
// row and a sub-header row are found with span 2.
func (g *Grid) FindTableHeader(cols []ColumnSpec, span int) (TableHeader, bool) {
	if span < 1 {
		span = 1
	}
	required := 0
	for _, c := range cols {
		if !c.Optional {
			required++
		}
	}
	if required == 0 {
		return TableHeader{}, false
	}

	rows := g.rowIndex()
	maxRow, _ := g.Bounds()
	for r := 1; r <= maxRow; r++ {
		if len(rows[r]) == 0 {
			continue
		}
		columns := make(map[string]int)
		firstRow, lastRow := 0, r
		matched := 0
		for rr := r; rr < r+span; rr++ {
			for _, a := range rows[rr] {
				for _, c := range cols {
					if _, done := columns[c.Key]; done {
						continue
					}
					if !c.Matches(g.cells[a]) {
						continue
					}
					block := g.Block(a)
					columns[c.Key] = block.MinCol
					if firstRow == 0 || a.Row < firstRow {
						firstRow = a.Row
					}
					if block.MaxRow > lastRow {
						lastRow = block.MaxRow
					}
					if !c.Optional {
						matched++
					}
					break
				}
			}
		}
		if matched == required {
			return TableHeader{Row: firstRow, DataRow: lastRow + 1, Columns: columns}, true
		}
	}
	return TableHeader{}, false
}

// rowIndex groups the non-empty addresses by row, in column order.
func (g *Grid) rowIndex() map[int][]models.Address {
	rows := make(map[int][]models.Address)
	for _, a := range g.scan() {
		rows[a.Row] = append(rows[a.Row], a)
	}
	return rows
}

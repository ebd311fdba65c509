// Package grid provides a read-only model of a template sheet and the
// merge-aware lookups used to decide where values are written.
package grid

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ukaji3/arbeitsnachweis-go/pkg/nachweis/models"
	"github.com/xuri/excelize/v2"
)

// ErrOverlappingMerge indicates two merged regions share a cell.
var ErrOverlappingMerge = errors.New("overlapping merged regions")

// Grid is a sparse view of cell values plus the sheet's merged regions.
// A cell outside every region is its own 1x1 block.
type Grid struct {
	cells  map[models.Address]string
	order  []models.Address // row-major, rebuilt lazily
	merges []models.Rect
	maxRow int
	maxCol int
}

// New builds a Grid from explicit values and merged regions.
// Empty values are dropped.
func New(cells map[models.Address]string, merges []models.Rect) *Grid {
	g := &Grid{cells: make(map[models.Address]string, len(cells))}
	for a, v := range cells {
		g.Set(a, v)
	}
	g.merges = append(g.merges, merges...)
	for _, m := range merges {
		g.grow(models.Address{Row: m.MaxRow, Col: m.MaxCol})
	}
	return g
}

// Load reads the values and merged regions of a sheet.
func Load(f *excelize.File, sheetName string) (*Grid, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	cells := make(map[models.Address]string)
	for rowIdx, row := range rows {
		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			cells[models.Address{Row: rowIdx + 1, Col: colIdx + 1}] = cellValue
		}
	}

	mergeCells, err := f.GetMergeCells(sheetName)
	if err != nil {
		return nil, err
	}
	merges := make([]models.Rect, 0, len(mergeCells))
	for _, mc := range mergeCells {
		r, err := parseRange(mc.GetStartAxis(), mc.GetEndAxis())
		if err != nil {
			return nil, fmt.Errorf("merged region %s:%s: %w", mc.GetStartAxis(), mc.GetEndAxis(), err)
		}
		merges = append(merges, r)
	}
	if err := checkDisjoint(merges); err != nil {
		return nil, err
	}

	return New(cells, merges), nil
}

// Value returns the raw value at a, or "" when the cell is empty.
func (g *Grid) Value(a models.Address) string {
	return g.cells[a]
}

// Set records a value at a. An empty value clears the cell.
func (g *Grid) Set(a models.Address, value string) {
	if value == "" {
		if _, ok := g.cells[a]; ok {
			delete(g.cells, a)
			g.order = nil
		}
		return
	}
	if _, ok := g.cells[a]; !ok {
		g.order = nil
	}
	g.cells[a] = value
	g.grow(a)
}

// Merges returns the merged regions.
func (g *Grid) Merges() []models.Rect {
	return g.merges
}

// Bounds returns the largest row and column holding a value or a merge.
func (g *Grid) Bounds() (maxRow, maxCol int) {
	return g.maxRow, g.maxCol
}

// DataBounds returns the largest row and column holding a non-empty value.
func (g *Grid) DataBounds() (maxRow, maxCol int) {
	for a := range g.cells {
		if a.Row > maxRow {
			maxRow = a.Row
		}
		if a.Col > maxCol {
			maxCol = a.Col
		}
	}
	return
}

func (g *Grid) grow(a models.Address) {
	if a.Row > g.maxRow {
		g.maxRow = a.Row
	}
	if a.Col > g.maxCol {
		g.maxCol = a.Col
	}
}

// scan returns the non-empty addresses in row-major order.
func (g *Grid) scan() []models.Address {
	if g.order != nil {
		return g.order
	}
	order := make([]models.Address, 0, len(g.cells))
	for a := range g.cells {
		order = append(order, a)
	}
	sort.Slice(order, func(i, j int) bool {
		if order[i].Row != order[j].Row {
			return order[i].Row < order[j].Row
		}
		return order[i].Col < order[j].Col
	})
	g.order = order
	return order
}

// parseRange converts two A1 corners to a normalized Rect.
func parseRange(start, end string) (models.Rect, error) {
	c1, r1, err := excelize.CellNameToCoordinates(start)
	if err != nil {
		return models.Rect{}, err
	}
	c2, r2, err := excelize.CellNameToCoordinates(end)
	if err != nil {
		return models.Rect{}, err
	}
	if r2 < r1 {
		r1, r2 = r2, r1
	}
	if c2 < c1 {
		c1, c2 = c2, c1
	}
	return models.Rect{MinRow: r1, MinCol: c1, MaxRow: r2, MaxCol: c2}, nil
}

func checkDisjoint(merges []models.Rect) error {
	for i := range merges {
		for j := i + 1; j < len(merges); j++ {
			if merges[i].Overlaps(merges[j]) {
				return fmt.Errorf("%w: %s and %s", ErrOverlappingMerge, merges[i], merges[j])
			}
		}
	}
	return nil
}

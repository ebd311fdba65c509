package grid

import (
	"strings"

	"github.com/ukaji3/arbeitsnachweis-go/pkg/nachweis/models"
)

// Block returns the merged region containing a, or the 1x1 block at a.
func (g *Grid) Block(a models.Address) models.Rect {
	for _, m := range g.merges {
		if m.Contains(a) {
			return m
		}
	}
	return models.CellRect(a)
}

// TopLeft returns the writable address of the block containing a.
// Writes to any other cell of a merged region are lost on save.
func (g *Grid) TopLeft(a models.Address) models.Address {
	return g.Block(a).TopLeft()
}

// FindLabel returns the first cell, in row-major order, whose normalized
// value equals the normalized text. Duplicate labels are not disambiguated.
func (g *Grid) FindLabel(text string) (models.Address, bool) {
	want := Normalize(text)
	if want == "" {
		return models.Address{}, false
	}
	for _, a := range g.scan() {
		if Normalize(g.cells[a]) == want {
			return a, true
		}
	}
	return models.Address{}, false
}

// FindLabelContaining returns the first cell whose normalized value
// contains fragment, ignoring case.
func (g *Grid) FindLabelContaining(fragment string) (models.Address, bool) {
	want := fold(fragment)
	if want == "" {
		return models.Address{}, false
	}
	for _, a := range g.scan() {
		if strings.Contains(fold(g.cells[a]), want) {
			return a, true
		}
	}
	return models.Address{}, false
}

// NextBlockRight returns the top-left of the nearest merged region on the
// same row that starts right of the block containing a.
func (g *Grid) NextBlockRight(a models.Address) (models.Address, bool) {
	cur := g.Block(a)
	best := models.Rect{}
	found := false
	for _, m := range g.merges {
		if a.Row < m.MinRow || a.Row > m.MaxRow || m.MinCol <= cur.MaxCol {
			continue
		}
		if !found || m.MinCol < best.MinCol {
			best = m
			found = true
		}
	}
	if !found {
		return models.Address{}, false
	}
	return best.TopLeft(), true
}

// RightOrAdjacent is NextBlockRight with the fallback of the cell directly
// right of the block, resolved to its own top-left.
func (g *Grid) RightOrAdjacent(a models.Address) models.Address {
	if next, ok := g.NextBlockRight(a); ok {
		return next
	}
	cur := g.Block(a)
	return g.TopLeft(models.Address{Row: a.Row, Col: cur.MaxCol + 1})
}

package sheet

import (
	"math"

	"github.com/ukaji3/arbeitsnachweis-go/pkg/nachweis/models"
	"github.com/xuri/excelize/v2"
)

// minBlockPixels is the smallest width or height reported for a block.
const minBlockPixels = 40

// ColumnWidthToPixels converts an Excel column width (characters of the
// default font) to pixels at 96 DPI.
func ColumnWidthToPixels(width float64) int {
	return int(math.Round(7*width + 5))
}

// RowHeightToPixels converts a row height in points to pixels at 96 DPI.
func RowHeightToPixels(height float64) int {
	return int(math.Round(height * 96 / 72))
}

// BlockPixelSize estimates the rendered size of a block, for renderers that
// lay out the same data outside the spreadsheet.
func (s *Sheet) BlockPixelSize(r models.Rect) (w, h int) {
	for c := r.MinCol; c <= r.MaxCol; c++ {
		name, err := excelize.ColumnNumberToName(c)
		if err != nil {
			continue
		}
		width, err := s.f.GetColWidth(s.name, name)
		if err != nil {
			continue
		}
		w += ColumnWidthToPixels(width)
	}
	for row := r.MinRow; row <= r.MaxRow; row++ {
		height, err := s.f.GetRowHeight(s.name, row)
		if err != nil {
			continue
		}
		h += RowHeightToPixels(height)
	}
	return max(minBlockPixels, w), max(minBlockPixels, h)
}

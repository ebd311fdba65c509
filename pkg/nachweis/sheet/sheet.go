// Package sheet writes values into a template sheet through excelize,
// always targeting the top-left cell of the destination block.
package sheet

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/ukaji3/arbeitsnachweis-go/pkg/nachweis/grid"
	"github.com/ukaji3/arbeitsnachweis-go/pkg/nachweis/models"
	"github.com/xuri/excelize/v2"
)

// DefaultRowHeight is the height in points excelize reports for rows
// without an explicit height.
const DefaultRowHeight = 15.0

// Sheet binds one worksheet of an open workbook and its Grid model.
type Sheet struct {
	f      *excelize.File
	name   string
	grid   *grid.Grid
	styles map[styleKey]int
}

type styleKey struct {
	base  int
	style Style
}

// Open opens a template file and binds its active sheet.
func Open(path string) (*Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	s, err := New(f, "")
	if err != nil {
		f.Close()
		return nil, err
	}
	return s, nil
}

// OpenReader reads a template from r and binds its active sheet.
func OpenReader(r io.Reader) (*Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	s, err := New(f, "")
	if err != nil {
		f.Close()
		return nil, err
	}
	return s, nil
}

// New binds the named sheet of f, or the active sheet when name is empty.
func New(f *excelize.File, name string) (*Sheet, error) {
	if name == "" {
		name = f.GetSheetName(f.GetActiveSheetIndex())
	}
	g, err := grid.Load(f, name)
	if err != nil {
		return nil, fmt.Errorf("load sheet %q: %w", name, err)
	}
	return &Sheet{f: f, name: name, grid: g, styles: make(map[styleKey]int)}, nil
}

// Name returns the bound sheet name.
func (s *Sheet) Name() string { return s.name }

// Grid returns the model backing lookups. It reflects every Write.
func (s *Sheet) Grid() *grid.Grid { return s.grid }

// File returns the underlying workbook.
func (s *Sheet) File() *excelize.File { return s.f }

// Write stores value at the top-left cell of the block containing a and
// applies style on top of the cell's existing formatting. It returns the
// address actually written.
func (s *Sheet) Write(a models.Address, value any, style Style) (models.Address, error) {
	target := s.grid.TopLeft(a)
	cell := target.String()
	if cell == "" {
		return target, fmt.Errorf("address out of range: row %d, col %d", a.Row, a.Col)
	}
	if err := s.f.SetCellValue(s.name, cell, value); err != nil {
		return target, err
	}
	if err := s.applyStyle(cell, style); err != nil {
		return target, err
	}
	s.grid.Set(target, displayValue(value))
	return target, nil
}

// EnsureRowHeight sets the height of a row that still has the default height.
func (s *Sheet) EnsureRowHeight(row int, height float64) error {
	h, err := s.f.GetRowHeight(s.name, row)
	if err != nil {
		return err
	}
	if h != s.defaultRowHeight() {
		return nil
	}
	return s.f.SetRowHeight(s.name, row, height)
}

func (s *Sheet) defaultRowHeight() float64 {
	props, err := s.f.GetSheetProps(s.name)
	if err != nil || props.CustomHeight == nil || !*props.CustomHeight || props.DefaultRowHeight == nil {
		return DefaultRowHeight
	}
	return *props.DefaultRowHeight
}

// Bytes serializes the workbook.
func (s *Sheet) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := s.f.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Close releases the workbook.
func (s *Sheet) Close() error {
	return s.f.Close()
}

func displayValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}

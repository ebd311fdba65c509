package sheet

import (
	"bytes"
	"testing"

	"github.com/ukaji3/arbeitsnachweis-go/pkg/nachweis/models"
	"github.com/xuri/excelize/v2"
)

func newTestSheet(t *testing.T) *Sheet {
	t.Helper()
	f := excelize.NewFile()
	f.SetCellValue("Sheet1", "A2", "Datum:")
	if err := f.MergeCell("Sheet1", "B2", "C2"); err != nil {
		t.Fatalf("MergeCell failed: %v", err)
	}
	if err := f.MergeCell("Sheet1", "A6", "G15"); err != nil {
		t.Fatalf("MergeCell failed: %v", err)
	}
	s, err := New(f, "")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestWriteRedirectsToTopLeft(t *testing.T) {
	s := newTestSheet(t)

	got, err := s.Write(models.Address{Row: 2, Col: 3}, "01.05.2024", Left)
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if got.String() != "B2" {
		t.Errorf("Write target = %s, expected B2", got)
	}
	v, _ := s.File().GetCellValue("Sheet1", "B2")
	if v != "01.05.2024" {
		t.Errorf("B2 = %q, expected 01.05.2024", v)
	}
	if s.Grid().Value(got) != "01.05.2024" {
		t.Error("grid not updated after write")
	}
}

func TestWriteAppliesStyle(t *testing.T) {
	s := newTestSheet(t)

	if _, err := s.Write(models.Address{Row: 10, Col: 4}, "Text", WrappedTop); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	id, err := s.File().GetCellStyle("Sheet1", "A6")
	if err != nil {
		t.Fatalf("GetCellStyle failed: %v", err)
	}
	style, err := s.File().GetStyle(id)
	if err != nil {
		t.Fatalf("GetStyle failed: %v", err)
	}
	if style.Alignment == nil {
		t.Fatal("expected alignment on A6")
	}
	if style.Alignment.Horizontal != "left" || style.Alignment.Vertical != "top" || !style.Alignment.WrapText {
		t.Errorf("unexpected alignment: %+v", *style.Alignment)
	}
}

func TestWriteNumber(t *testing.T) {
	s := newTestSheet(t)

	a := models.Address{Row: 17, Col: 7}
	if _, err := s.Write(a, 6.5, Left); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if s.Grid().Value(a) != "6.5" {
		t.Errorf("grid value = %q, expected 6.5", s.Grid().Value(a))
	}
}

func TestWriteOutOfRange(t *testing.T) {
	s := newTestSheet(t)
	if _, err := s.Write(models.Address{Row: 0, Col: 1}, "x", Left); err == nil {
		t.Error("expected error for row 0")
	}
}

func TestEnsureRowHeight(t *testing.T) {
	s := newTestSheet(t)
	if err := s.File().SetRowHeight("Sheet1", 7, 30); err != nil {
		t.Fatalf("SetRowHeight failed: %v", err)
	}

	for _, row := range []int{6, 7} {
		if err := s.EnsureRowHeight(row, 22); err != nil {
			t.Fatalf("EnsureRowHeight(%d) failed: %v", row, err)
		}
	}

	if h, _ := s.File().GetRowHeight("Sheet1", 6); h != 22 {
		t.Errorf("row 6 height = %v, expected 22", h)
	}
	if h, _ := s.File().GetRowHeight("Sheet1", 7); h != 30 {
		t.Errorf("row 7 height = %v, expected 30 (unchanged)", h)
	}
}

func TestApplyPrintDefaults(t *testing.T) {
	s := newTestSheet(t)
	if _, err := s.Write(models.Address{Row: 20, Col: 7}, 8.0, Left); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if err := s.ApplyPrintDefaults(); err != nil {
		t.Fatalf("ApplyPrintDefaults failed: %v", err)
	}
	// applying twice replaces the area instead of failing on a duplicate
	if err := s.ApplyPrintDefaults(); err != nil {
		t.Fatalf("second ApplyPrintDefaults failed: %v", err)
	}

	area, ok := s.PrintArea()
	if !ok {
		t.Fatal("print area not found")
	}
	expected := models.PrintArea{R1: 1, C1: 1, R2: 20, C2: 7}
	if area != expected {
		t.Errorf("PrintArea() = %+v, expected %+v", area, expected)
	}

	layout, err := s.File().GetPageLayout("Sheet1")
	if err != nil {
		t.Fatalf("GetPageLayout failed: %v", err)
	}
	if layout.Orientation == nil || *layout.Orientation != "landscape" {
		t.Errorf("expected landscape orientation, got %v", layout.Orientation)
	}
}

func TestFirstPrintArea(t *testing.T) {
	tests := []struct {
		ref   string
		sheet string
		want  models.PrintArea
		ok    bool
	}{
		{"Sheet1!$A$1:$D$10", "Sheet1", models.PrintArea{R1: 1, C1: 1, R2: 10, C2: 4}, true},
		{"'My Sheet'!$F$1:$G$2,'My Sheet'!$A$1:$D$10", "My Sheet", models.PrintArea{R1: 1, C1: 6, R2: 2, C2: 7}, true},
		{"Other!$A$1:$B$2, 'My Sheet'!$C$3:$D$4", "My Sheet", models.PrintArea{R1: 3, C1: 3, R2: 4, C2: 4}, true},
		{"'O''Brien'!$A$1:$B$2", "O'Brien", models.PrintArea{R1: 1, C1: 1, R2: 2, C2: 2}, true},
		{"Sheet1!$D$10:$A$1", "Sheet1", models.PrintArea{R1: 1, C1: 1, R2: 10, C2: 4}, true},
		{"$A$1:$D$10", "Sheet1", models.PrintArea{}, false},
		{"Sheet1!A1", "Sheet1", models.PrintArea{}, false},
		{"Sheet2!$A$1:$D$10", "Sheet1", models.PrintArea{}, false},
	}

	for _, tt := range tests {
		got, ok := firstPrintArea(tt.ref, tt.sheet)
		if ok != tt.ok || got != tt.want {
			t.Errorf("firstPrintArea(%q, %q) = %+v, %v; expected %+v, %v", tt.ref, tt.sheet, got, ok, tt.want, tt.ok)
		}
	}
}

func TestBlockPixelSize(t *testing.T) {
	s := newTestSheet(t)
	f := s.File()
	if err := f.SetColWidth("Sheet1", "A", "B", 10); err != nil {
		t.Fatalf("SetColWidth failed: %v", err)
	}
	for _, row := range []int{1, 2} {
		if err := f.SetRowHeight("Sheet1", row, 30); err != nil {
			t.Fatalf("SetRowHeight failed: %v", err)
		}
	}

	w, h := s.BlockPixelSize(models.Rect{MinRow: 1, MinCol: 1, MaxRow: 2, MaxCol: 2})
	if w != 150 || h != 80 {
		t.Errorf("BlockPixelSize = %dx%d, expected 150x80", w, h)
	}

	if err := f.SetColWidth("Sheet1", "C", "C", 1); err != nil {
		t.Fatalf("SetColWidth failed: %v", err)
	}
	if err := f.SetRowHeight("Sheet1", 3, 10); err != nil {
		t.Fatalf("SetRowHeight failed: %v", err)
	}
	w, h = s.BlockPixelSize(models.Rect{MinRow: 3, MinCol: 3, MaxRow: 3, MaxCol: 3})
	if w != minBlockPixels || h != minBlockPixels {
		t.Errorf("small block = %dx%d, expected minimum %d", w, h, minBlockPixels)
	}
}

func TestBytesRoundTrip(t *testing.T) {
	s := newTestSheet(t)
	if _, err := s.Write(models.Address{Row: 2, Col: 2}, "Plant A", Left); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	data, err := s.Bytes()
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}

	s2, err := OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("OpenReader failed: %v", err)
	}
	defer s2.Close()
	if v := s2.Grid().Value(models.Address{Row: 2, Col: 2}); v != "Plant A" {
		t.Errorf("B2 after reload = %q, expected Plant A", v)
	}
	if len(s2.Grid().Merges()) != 2 {
		t.Errorf("expected 2 merges after reload, got %d", len(s2.Grid().Merges()))
	}
}

func TestConversions(t *testing.T) {
	if got := ColumnWidthToPixels(8.43); got != 64 {
		t.Errorf("ColumnWidthToPixels(8.43) = %d, expected 64", got)
	}
	if got := RowHeightToPixels(15); got != 20 {
		t.Errorf("RowHeightToPixels(15) = %d, expected 20", got)
	}
}

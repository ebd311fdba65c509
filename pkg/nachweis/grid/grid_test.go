package grid

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/ukaji3/arbeitsnachweis-go/pkg/nachweis/models"
	"github.com/xuri/excelize/v2"
)

func addr(t *testing.T, name string) models.Address {
	t.Helper()
	a, err := models.ParseAddress(name)
	if err != nil {
		t.Fatalf("bad address %q: %v", name, err)
	}
	return a
}

func rect(t *testing.T, start, end string) models.Rect {
	t.Helper()
	r, err := parseRange(start, end)
	if err != nil {
		t.Fatalf("bad range %s:%s: %v", start, end, err)
	}
	return r
}

func TestLoad(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Datum:")
	f.SetCellValue(sheetName, "A2", "Bau:")
	f.SetCellValue(sheetName, "C4", 42)
	if err := f.MergeCell(sheetName, "B1", "D1"); err != nil {
		t.Fatalf("MergeCell failed: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "template.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	g, err := Load(f2, sheetName)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if g.Value(addr(t, "A2")) != "Bau:" {
		t.Errorf("A2 = %q, expected 'Bau:'", g.Value(addr(t, "A2")))
	}
	if g.Value(addr(t, "C4")) != "42" {
		t.Errorf("C4 = %q, expected '42'", g.Value(addr(t, "C4")))
	}
	if len(g.Merges()) != 1 {
		t.Fatalf("expected 1 merge, got %d", len(g.Merges()))
	}
	if got := g.Merges()[0].String(); got != "B1:D1" {
		t.Errorf("merge = %s, expected B1:D1", got)
	}
	maxRow, maxCol := g.Bounds()
	if maxRow != 4 || maxCol != 4 {
		t.Errorf("Bounds() = (%d, %d), expected (4, 4)", maxRow, maxCol)
	}
}

func TestLoadUnknownSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := Load(f, "Missing"); err == nil {
		t.Error("expected error for missing sheet")
	}
}

func TestCheckDisjoint(t *testing.T) {
	ok := []models.Rect{rect(t, "A1", "B2"), rect(t, "C1", "D2")}
	if err := checkDisjoint(ok); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	bad := []models.Rect{rect(t, "A1", "B2"), rect(t, "B2", "C3")}
	if err := checkDisjoint(bad); !errors.Is(err, ErrOverlappingMerge) {
		t.Errorf("expected ErrOverlappingMerge, got %v", err)
	}
}

func TestSetAndDataBounds(t *testing.T) {
	g := New(nil, []models.Rect{rect(t, "A10", "G12")})
	g.Set(addr(t, "B3"), "x")
	g.Set(addr(t, "C5"), "y")
	g.Set(addr(t, "C5"), "")

	if g.Value(addr(t, "C5")) != "" {
		t.Error("expected C5 cleared")
	}
	maxRow, maxCol := g.DataBounds()
	if maxRow != 3 || maxCol != 2 {
		t.Errorf("DataBounds() = (%d, %d), expected (3, 2)", maxRow, maxCol)
	}
	maxRow, maxCol = g.Bounds()
	if maxRow != 12 || maxCol != 7 {
		t.Errorf("Bounds() = (%d, %d), expected (12, 7)", maxRow, maxCol)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"  Datum:  ", "Datum:"},
		{"Was wurde\r\ngemacht?", "Was wurde gemacht?"},
		{"Anzahl\rStunden", "Anzahl Stunden"},
		{"Ausweis-Nr. /\n  Kennzeichen", "Ausweis-Nr. / Kennzeichen"},
		{"Gerät", "Gerät"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Normalize(tt.input); got != tt.expected {
			t.Errorf("Normalize(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

package grid

import (
	"testing"

	"github.com/ukaji3/arbeitsnachweis-go/pkg/nachweis/models"
)

func workerColumns() []ColumnSpec {
	return []ColumnSpec{
		{Key: "name", Exact: []string{"Name"}},
		{Key: "first_name", Exact: []string{"Vorname"}},
		{Key: "id", Contains: []string{"Ausweis", "Kennzeichen"}},
		{Key: "start", Exact: []string{"Beginn"}},
		{Key: "end", Exact: []string{"Ende"}},
		{Key: "hours", Exact: []string{"Stunden"}, Contains: []string{"Anzahl Stunden", "Hours"}},
		{Key: "equipment", Contains: []string{"Vorhaltung", "beauftragtes Gerät"}, Optional: true},
	}
}

func TestColumnSpecMatches(t *testing.T) {
	id := ColumnSpec{Key: "id", Contains: []string{"Ausweis", "Kennzeichen"}}
	name := ColumnSpec{Key: "name", Exact: []string{"Name"}}

	tests := []struct {
		spec     ColumnSpec
		value    string
		expected bool
	}{
		{id, "Ausweis-Nr.", true},
		{id, "Kennzeichen", true},
		{id, "ausweis-nr. /\nkennzeichen", true},
		{id, "Name", false},
		{name, " name ", true},
		{name, "Vorname", false},
		{name, "", false},
	}

	for _, tt := range tests {
		if got := tt.spec.Matches(tt.value); got != tt.expected {
			t.Errorf("%s.Matches(%q) = %v, expected %v", tt.spec.Key, tt.value, got, tt.expected)
		}
	}
}

func TestFindTableHeaderFlat(t *testing.T) {
	cells := map[models.Address]string{
		addr(t, "A1"):  "Arbeitsnachweis",
		addr(t, "A16"): "Name",
		addr(t, "B16"): "Vorname",
		addr(t, "C16"): "Ausweis",
		addr(t, "E16"): "Beginn",
		addr(t, "F16"): "Ende",
		addr(t, "G16"): "Stunden",
	}
	g := New(cells, []models.Rect{rect(t, "C16", "D16")})

	h, ok := g.FindTableHeader(workerColumns(), 2)
	if !ok {
		t.Fatal("header not found")
	}
	if h.Row != 16 || h.DataRow != 17 {
		t.Errorf("Row/DataRow = %d/%d, expected 16/17", h.Row, h.DataRow)
	}
	expected := map[string]int{"name": 1, "first_name": 2, "id": 3, "start": 5, "end": 6, "hours": 7}
	for k, v := range expected {
		if got, _ := h.Column(k); got != v {
			t.Errorf("column %s = %d, expected %d", k, got, v)
		}
	}
	if _, ok := h.Column("equipment"); ok {
		t.Error("equipment column should be absent")
	}
}

func TestFindTableHeaderWithSubHeader(t *testing.T) {
	cells := map[models.Address]string{
		addr(t, "A10"): "Name",
		addr(t, "B10"): "Vorname",
		addr(t, "C10"): "Ausweis-Nr. / Kennzeichen",
		addr(t, "E10"): "Arbeitszeit",
		addr(t, "E11"): "Beginn",
		addr(t, "F11"): "Ende",
		addr(t, "G10"): "Anzahl Stunden",
		addr(t, "H10"): "Vorhaltung / beauftragtes Gerät",
	}
	merges := []models.Rect{
		rect(t, "A10", "A11"),
		rect(t, "B10", "B11"),
		rect(t, "C10", "D11"),
		rect(t, "E10", "F10"),
		rect(t, "G10", "G11"),
		rect(t, "H10", "H11"),
	}
	g := New(cells, merges)

	h, ok := g.FindTableHeader(workerColumns(), 2)
	if !ok {
		t.Fatal("header not found")
	}
	if h.Row != 10 || h.DataRow != 12 {
		t.Errorf("Row/DataRow = %d/%d, expected 10/12", h.Row, h.DataRow)
	}
	if c, _ := h.Column("equipment"); c != 8 {
		t.Errorf("equipment column = %d, expected 8", c)
	}
	if c, _ := h.Column("start"); c != 5 {
		t.Errorf("start column = %d, expected 5", c)
	}

	// with span 1 the split header never qualifies
	if _, ok := g.FindTableHeader(workerColumns(), 1); ok {
		t.Error("expected no header with span 1")
	}
}

func TestFindTableHeaderMissing(t *testing.T) {
	g := New(map[models.Address]string{
		addr(t, "A1"): "Name",
		addr(t, "B1"): "Vorname",
	}, nil)

	if _, ok := g.FindTableHeader(workerColumns(), 2); ok {
		t.Error("expected header not found")
	}
	if _, ok := g.FindTableHeader(nil, 2); ok {
		t.Error("expected no header for empty column list")
	}
}

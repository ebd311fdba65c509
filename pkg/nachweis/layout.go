package nachweis

import (
	"github.com/ukaji3/arbeitsnachweis-go/pkg/nachweis/grid"
	"github.com/ukaji3/arbeitsnachweis-go/pkg/nachweis/models"
)

// Header field keys.
const (
	FieldDate       = "date"
	FieldSite       = "site"
	FieldSupervisor = "supervisor"
	FieldEquipment  = "equipment"
)

// Worker table column keys.
const (
	ColLastName  = "name"
	ColFirstName = "first_name"
	ColID        = "id"
	ColStart     = "start"
	ColEnd       = "end"
	ColHours     = "hours"
	ColEquipment = "equipment"
)

// HeaderField anchors one header value to a template label.
type HeaderField struct {
	// Key is one of the Field* constants.
	Key string
	// Labels are tried in order; the first one present wins.
	Labels []string
	// Fallback is used when no label is present. Nil skips the field.
	Fallback *models.Address
}

// DescriptionSpec locates the free-text block.
type DescriptionSpec struct {
	// Labels caption the block; the block directly below the label is used.
	Labels []string
	// Block is used when no label is present.
	Block models.Rect
	// AnchorCol is the column of Block the text is written to. Zero means
	// the second column of Block.
	AnchorCol int
	// MinRowHeight is applied to rows of the block still at default height.
	MinRowHeight float64
}

// Layout is the template contract: labels and fallbacks for every field.
type Layout struct {
	HeaderFields []HeaderField
	Description  DescriptionSpec
	Table        []grid.ColumnSpec
	// HeaderSpan is how many rows a split table header may cover.
	HeaderSpan int
	// TotalLabels caption the total-hours cell. Exact matches are tried
	// first, then substring matches.
	TotalLabels []string
	// MaxWorkers is the number of worker rows the template provides.
	MaxWorkers int
}

func (d DescriptionSpec) anchorCol() int {
	if d.AnchorCol > 0 {
		return d.AnchorCol
	}
	return d.Block.MinCol + 1
}

// DefaultLayout returns the layout of the GP-t.xlsx Arbeitsnachweis template.
func DefaultLayout() Layout {
	return Layout{
		HeaderFields: []HeaderField{
			{Key: FieldDate, Labels: []string{"Datum:", "Datum", "Date:"}, Fallback: &models.Address{Row: 2, Col: 2}},
			{Key: FieldSite, Labels: []string{"Bau:", "Bauort:", "Projekt:", "Site:"}, Fallback: &models.Address{Row: 3, Col: 2}},
			{Key: FieldSupervisor, Labels: []string{"BASF Beauftragter:", "BASF-Beauftragter:", "Beauftragter:", "Supervisor:"}, Fallback: &models.Address{Row: 3, Col: 5}},
			{Key: FieldEquipment, Labels: []string{"Gerät:", "Beauftragtes Gerät:"}},
		},
		Description: DescriptionSpec{
			Labels:       []string{"Was wurde gemacht?", "Beschreibung:", "Tätigkeit:"},
			Block:        models.Rect{MinRow: 6, MinCol: 1, MaxRow: 15, MaxCol: 7},
			MinRowHeight: 22,
		},
		Table: []grid.ColumnSpec{
			{Key: ColLastName, Exact: []string{"Name", "Nachname"}},
			{Key: ColFirstName, Exact: []string{"Vorname"}},
			{Key: ColID, Contains: []string{"Ausweis", "Kennzeichen"}},
			{Key: ColStart, Exact: []string{"Beginn"}},
			{Key: ColEnd, Exact: []string{"Ende"}},
			{Key: ColHours, Exact: []string{"Stunden", "Hours"}, Contains: []string{"Anzahl Stunden"}},
			{Key: ColEquipment, Contains: []string{"Vorhaltung", "beauftragtes Gerät"}, Optional: true},
		},
		HeaderSpan:  2,
		TotalLabels: []string{"Gesamtstunden:", "Gesamtstunden", "Total hours:", "Total hours"},
		MaxWorkers:  models.MaxWorkers,
	}
}

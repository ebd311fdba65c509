package sheet

import (
	"fmt"
	"strings"

	"github.com/ukaji3/arbeitsnachweis-go/pkg/nachweis/models"
	"github.com/xuri/excelize/v2"
)

const printAreaName = "_xlnm.Print_Area"

// PrintArea returns the print area defined for the bound sheet.
func (s *Sheet) PrintArea() (models.PrintArea, bool) {
	for _, dn := range s.f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, printAreaName) {
			continue
		}
		if area, ok := firstPrintArea(dn.RefersTo, s.name); ok {
			return area, true
		}
	}
	return models.PrintArea{}, false
}

// ApplyPrintDefaults sets landscape A4 with narrow margins and a print area
// ending at the last cell holding data.
func (s *Sheet) ApplyPrintDefaults() error {
	orientation := "landscape"
	size := 9 // A4
	if err := s.f.SetPageLayout(s.name, &excelize.PageLayoutOptions{
		Size:        &size,
		Orientation: &orientation,
	}); err != nil {
		return fmt.Errorf("page layout: %w", err)
	}

	margin, zero := 0.2, 0.0
	centered := false
	if err := s.f.SetPageMargins(s.name, &excelize.PageLayoutMarginsOptions{
		Left:         &margin,
		Right:        &margin,
		Top:          &margin,
		Bottom:       &margin,
		Header:       &zero,
		Footer:       &zero,
		Horizontally: &centered,
		Vertically:   &centered,
	}); err != nil {
		return fmt.Errorf("page margins: %w", err)
	}

	maxRow, maxCol := s.grid.DataBounds()
	if maxRow == 0 {
		maxRow, maxCol = 1, 1
	}
	ref := printAreaReference(s.name, models.PrintArea{R1: 1, C1: 1, R2: maxRow, C2: maxCol})
	dn := &excelize.DefinedName{Name: printAreaName, RefersTo: ref, Scope: s.name}
	// SetDefinedName refuses duplicates, so drop any existing area first.
	_ = s.f.DeleteDefinedName(&excelize.DefinedName{Name: printAreaName, Scope: s.name})
	if err := s.f.SetDefinedName(dn); err != nil {
		return fmt.Errorf("print area: %w", err)
	}
	return nil
}

// printAreaReference formats 'Sheet'!$A$1:$G$20.
func printAreaReference(sheetName string, area models.PrintArea) string {
	start, _ := excelize.CoordinatesToCellName(area.C1, area.R1, true)
	end, _ := excelize.CoordinatesToCellName(area.C2, area.R2, true)
	return fmt.Sprintf("'%s'!%s:%s", strings.ReplaceAll(sheetName, "'", "''"), start, end)
}

// firstPrintArea returns the first range of a defined-name reference that
// belongs to sheetName. References without a sheet prefix never match.
func firstPrintArea(ref, sheetName string) (models.PrintArea, bool) {
	for _, part := range strings.Split(ref, ",") {
		idx := strings.LastIndex(part, "!")
		if idx < 0 {
			continue
		}
		name := strings.TrimSpace(part[:idx])
		if unquoted, ok := strings.CutPrefix(name, "'"); ok {
			name = strings.ReplaceAll(strings.TrimSuffix(unquoted, "'"), "''", "'")
		}
		if name != sheetName {
			continue
		}
		if area, ok := parseArea(part[idx+1:]); ok {
			return area, true
		}
	}
	return models.PrintArea{}, false
}

// parseArea reads $A$1:$D$10 in either corner order. Single cells are rejected.
func parseArea(rng string) (models.PrintArea, bool) {
	from, to, ok := strings.Cut(strings.ReplaceAll(strings.TrimSpace(rng), "$", ""), ":")
	if !ok {
		return models.PrintArea{}, false
	}
	c1, r1, err := excelize.CellNameToCoordinates(from)
	if err != nil {
		return models.PrintArea{}, false
	}
	c2, r2, err := excelize.CellNameToCoordinates(to)
	if err != nil {
		return models.PrintArea{}, false
	}
	return models.PrintArea{R1: min(r1, r2), C1: min(c1, c2), R2: max(r1, r2), C2: max(c1, c2)}, true
}

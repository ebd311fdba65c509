package nachweis

import (
	"path/filepath"

	"github.com/ukaji3/arbeitsnachweis-go/pkg/nachweis/models"
)

// Inspect reports how layout resolves against the template at path without
// writing anything.
func Inspect(path string, layout Layout) (*models.TemplateInfo, error) {
	s, err := openTemplate(path)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	g := s.Grid()
	info := &models.TemplateInfo{
		BookName:  filepath.Base(path),
		SheetName: s.Name(),
		Merges:    len(g.Merges()),
	}

	for _, hf := range layout.HeaderFields {
		m := models.LabelMatch{Field: hf.Key}
		for _, l := range hf.Labels {
			if a, ok := g.FindLabel(l); ok {
				m.Label = l
				m.LabelCell = a.String()
				m.ValueCell = g.RightOrAdjacent(a).String()
				break
			}
		}
		if m.LabelCell == "" {
			if a, ok := headerTarget(g, hf); ok {
				m.ValueCell = a.String()
				m.Fallback = true
			}
		}
		info.Labels = append(info.Labels, m)
	}

	if h, ok := g.FindTableHeader(layout.Table, layout.HeaderSpan); ok {
		t := &models.TableInfo{HeaderRow: h.Row, DataRow: h.DataRow, Columns: make(map[string]string)}
		for k, c := range h.Columns {
			t.Columns[k] = models.Address{Row: h.DataRow, Col: c}.String()
		}
		info.Table = t
	}

	if a, ok := findTotalLabel(g, layout.TotalLabels); ok {
		info.Total = &models.LabelMatch{
			Field:     "total",
			Label:     g.Value(a),
			LabelCell: a.String(),
			ValueCell: g.RightOrAdjacent(a).String(),
		}
	}

	_, area := descriptionArea(g, layout.Description)
	w, h := s.BlockPixelSize(area)
	info.Description = models.BlockInfo{Range: area.String(), W: w, H: h}

	if area, ok := s.PrintArea(); ok {
		info.PrintArea = &area
	}
	return info, nil
}

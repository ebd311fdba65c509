// Package output serializes fill reports and template diagnostics to JSON.
package output

import (
	"encoding/json"

	"github.com/ukaji3/arbeitsnachweis-go/pkg/nachweis/models"
)

// ReportView is the JSON shape of a models.Report.
type ReportView struct {
	File       string               `json:"file,omitempty"`
	Placements []models.Placement   `json:"placements"`
	Workers    []models.WorkerHours `json:"workers,omitempty"`
	TotalHours float64              `json:"total_hours"`
	Problems   []string             `json:"problems,omitempty"`
}

// NewReportView flattens r; file is the name of the generated document.
func NewReportView(file string, r models.Report) ReportView {
	v := ReportView{
		File:       file,
		Placements: r.Placements,
		Workers:    r.Workers,
		TotalHours: r.TotalHours,
	}
	if len(r.Problems) > 0 {
		v.Problems = r.Messages()
	}
	if v.Placements == nil {
		v.Placements = []models.Placement{}
	}
	return v
}

// ToJSON serializes any value to JSON.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// ReportToJSON serializes a fill report. Problems are rendered as messages.
func ReportToJSON(file string, r models.Report, pretty bool) ([]byte, error) {
	return ToJSON(NewReportView(file, r), pretty)
}

// TemplateInfoToJSON serializes an inspection result.
func TemplateInfoToJSON(info *models.TemplateInfo, pretty bool) ([]byte, error) {
	return ToJSON(info, pretty)
}

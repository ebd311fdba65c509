package models

// Placement records one value written into the sheet.
type Placement struct {
	// Field is the logical field name (e.g. "date", "worker[1].hours").
	Field string `json:"field"`
	// Cell is the top-left address that received the value.
	Cell string `json:"cell"`
}

// WorkerHours is the computed result for one written worker row.
type WorkerHours struct {
	// Row is the sheet row the worker was written to.
	Row int `json:"row"`
	// Name is "LastName, FirstName" for display.
	Name string `json:"name"`
	// Hours is the net worked hours after break deduction.
	Hours float64 `json:"hours"`
}

// Report summarizes what the populator wrote and what it skipped.
type Report struct {
	// Placements lists every value written, in write order.
	Placements []Placement `json:"placements"`
	// Workers lists the worker rows written.
	Workers []WorkerHours `json:"workers,omitempty"`
	// TotalHours is the sum of all worker net hours, rounded to 2 decimals.
	TotalHours float64 `json:"total_hours"`
	// Problems holds the best-effort failures; none of them aborted population.
	Problems []error `json:"-"`
}

// Messages returns the problem texts.
func (r Report) Messages() []string {
	out := make([]string, 0, len(r.Problems))
	for _, p := range r.Problems {
		out = append(out, p.Error())
	}
	return out
}

// Cell returns the address a field was written to, or "" if it was not written.
func (r Report) Cell(field string) string {
	for _, p := range r.Placements {
		if p.Field == field {
			return p.Cell
		}
	}
	return ""
}

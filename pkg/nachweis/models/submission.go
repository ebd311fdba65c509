package models

import (
	"fmt"
	"net/url"
	"strings"
)

// MaxWorkers is the number of worker rows the Arbeitsnachweis template provides.
const MaxWorkers = 5

// Submission is the complete set of form inputs for one generated document.
type Submission struct {
	// Date is the work date, usually ISO YYYY-MM-DD.
	Date string `json:"date"`
	// Site is the construction site or project ("Bau").
	Site string `json:"site"`
	// Supervisor is the client's responsible person ("BASF Beauftragter").
	Supervisor string `json:"supervisor,omitempty"`
	// Equipment is the header-level equipment note ("Gerät").
	Equipment string `json:"equipment,omitempty"`
	// Description is the free text of what was done ("Was wurde gemacht?").
	Description string `json:"description,omitempty"`
	// Workers lists the worker rows in submission order.
	Workers []Worker `json:"workers"`
}

// ActiveWorkers returns the non-empty worker slots, keeping order.
func (s Submission) ActiveWorkers() []Worker {
	var out []Worker
	for _, w := range s.Workers {
		if !w.IsEmpty() {
			out = append(out, w)
		}
	}
	return out
}

// SubmissionFromForm builds a Submission from posted form fields.
// Worker fields are read from numbered keys (vorname1..vornameN) up to
// maxWorkers; empty slots are skipped.
func SubmissionFromForm(values url.Values, maxWorkers int) Submission {
	if maxWorkers <= 0 {
		maxWorkers = MaxWorkers
	}
	sub := Submission{
		Date:        formValue(values, "datum"),
		Site:        formValue(values, "bau", "bauort", "projekt"),
		Supervisor:  formValue(values, "basf_beauftragter", "bf", "basf"),
		Equipment:   formValue(values, "geraet"),
		Description: formValue(values, "beschreibung", "was_gemacht"),
	}
	for i := 1; i <= maxWorkers; i++ {
		key := func(name string) string { return fmt.Sprintf("%s%d", name, i) }
		w := Worker{
			FirstName: formValue(values, key("vorname")),
			LastName:  formValue(values, key("nachname"), key("name")),
			IDNumber:  formValue(values, key("ausweis")),
			Start:     formValue(values, key("beginn")),
			End:       formValue(values, key("ende")),
			Equipment: formValue(values, key("vorhaltung")),
		}
		if w.IsEmpty() {
			continue
		}
		sub.Workers = append(sub.Workers, w)
	}
	return sub
}

// formValue returns the first non-blank value among keys.
func formValue(values url.Values, keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(values.Get(k)); v != "" {
			return v
		}
	}
	return ""
}

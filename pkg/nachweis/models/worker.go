package models

import "strings"

// Worker is one timesheet row for a single person on one day.
type Worker struct {
	// FirstName is the worker's given name ("Vorname").
	FirstName string `json:"first_name"`
	// LastName is the worker's family name ("Name").
	LastName string `json:"last_name"`
	// IDNumber is the badge or vehicle identifier ("Ausweis-Nr. / Kennzeichen").
	IDNumber string `json:"id_number"`
	// Start is the shift start as HH:MM.
	Start string `json:"start"`
	// End is the shift end as HH:MM.
	End string `json:"end"`
	// Equipment is the optional per-row note ("Vorhaltung / beauftragtes Gerät").
	Equipment string `json:"equipment,omitempty"`
}

// IsEmpty reports whether every field of the slot is blank.
func (w Worker) IsEmpty() bool {
	for _, v := range []string{w.FirstName, w.LastName, w.IDNumber, w.Start, w.End, w.Equipment} {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

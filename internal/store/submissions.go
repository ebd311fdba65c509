package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ukaji3/arbeitsnachweis-go/pkg/nachweis/models"
)

// ErrNotFound is returned by Get for an unknown id.
var ErrNotFound = errors.New("submission not found")

type payload struct {
	models.Submission
	TotalHours  float64 `json:"total_hours"`
	DriveFileID string  `json:"drive_file_id,omitempty"`
}

// Record stores a generated document. Worker hours are taken from the
// fill report in the order the workers were written; workers beyond
// models.MaxWorkers are not stored.
func (s *Store) Record(sub models.Submission, report models.Report, excelFilename, driveFileID string) (*Submission, error) {
	raw, err := json.Marshal(payload{Submission: sub, TotalHours: report.TotalHours, DriveFileID: driveFileID})
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339)
	res, err := tx.Exec(
		`INSERT INTO submissions (created_at, datum, bau, basf_beauftragter, geraet, beschreibung,
			total_hours, excel_filename, drive_file_id, payload_json)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		now, sub.Date, sub.Site, sub.Supervisor, sub.Equipment, sub.Description,
		report.TotalHours, excelFilename, driveFileID, string(raw),
	)
	if err != nil {
		return nil, fmt.Errorf("insert submission: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert submission id: %w", err)
	}

	workers := sub.ActiveWorkers()
	if len(workers) > models.MaxWorkers {
		workers = workers[:models.MaxWorkers]
	}
	for i, w := range workers {
		var h float64
		if i < len(report.Workers) {
			h = report.Workers[i].Hours
		}
		if _, err := tx.Exec(
			`INSERT INTO submission_workers (submission_id, slot, vorname, nachname, ausweis, beginn, ende, vorhaltung, hours)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			id, i+1, w.FirstName, w.LastName, w.IDNumber, w.Start, w.End, w.Equipment, h,
		); err != nil {
			return nil, fmt.Errorf("insert worker %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return s.Get(id)
}

// Get loads one submission with its workers.
func (s *Store) Get(id int64) (*Submission, error) {
	sub := &Submission{ID: id}
	var createdAt string
	err := s.db.QueryRow(
		`SELECT created_at, datum, bau, basf_beauftragter, geraet, beschreibung,
			total_hours, excel_filename, drive_file_id, payload_json
		 FROM submissions WHERE id = ?`, id,
	).Scan(&createdAt, &sub.Input.Date, &sub.Input.Site, &sub.Input.Supervisor, &sub.Input.Equipment,
		&sub.Input.Description, &sub.TotalHours, &sub.ExcelFilename, &sub.DriveFileID, &sub.PayloadJSON)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("get submission %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get submission %d: %w", id, err)
	}
	sub.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)

	rows, err := s.db.Query(
		`SELECT vorname, nachname, ausweis, beginn, ende, vorhaltung, hours
		 FROM submission_workers WHERE submission_id = ? ORDER BY slot`, id,
	)
	if err != nil {
		return nil, fmt.Errorf("get workers %d: %w", id, err)
	}
	defer rows.Close()
	for rows.Next() {
		var w models.Worker
		var h float64
		if err := rows.Scan(&w.FirstName, &w.LastName, &w.IDNumber, &w.Start, &w.End, &w.Equipment, &h); err != nil {
			return nil, err
		}
		sub.Input.Workers = append(sub.Input.Workers, w)
		sub.Hours = append(sub.Hours, h)
	}
	return sub, rows.Err()
}

// List returns the newest submissions first.
func (s *Store) List(f Filter) ([]Summary, error) {
	query := `SELECT id, created_at, datum, bau, basf_beauftragter, total_hours, excel_filename FROM submissions`
	var clauses []string
	var args []any
	if site := strings.TrimSpace(f.Site); site != "" {
		clauses = append(clauses, "bau LIKE ?")
		args = append(args, "%"+site+"%")
	}
	if date := strings.TrimSpace(f.Date); date != "" {
		clauses = append(clauses, "datum LIKE ?")
		args = append(args, "%"+date+"%")
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	limit := f.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	query += " ORDER BY created_at DESC, id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var sm Summary
		var createdAt string
		if err := rows.Scan(&sm.ID, &createdAt, &sm.Date, &sm.Site, &sm.Supervisor, &sm.TotalHours, &sm.ExcelFilename); err != nil {
			return nil, err
		}
		sm.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		out = append(out, sm)
	}
	return out, rows.Err()
}

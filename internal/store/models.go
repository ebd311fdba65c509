package store

import (
	"time"

	"github.com/ukaji3/arbeitsnachweis-go/pkg/nachweis/models"
)

// Submission is a stored audit record.
type Submission struct {
	ID            int64
	CreatedAt     time.Time
	Input         models.Submission
	Hours         []float64 // per entry of Input.Workers
	TotalHours    float64
	ExcelFilename string
	DriveFileID   string
	PayloadJSON   string
}

// Summary is one line of the history listing.
type Summary struct {
	ID            int64     `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	Date          string    `json:"datum"`
	Site          string    `json:"bau"`
	Supervisor    string    `json:"basf_beauftragter"`
	TotalHours    float64   `json:"total_hours"`
	ExcelFilename string    `json:"excel_filename"`
}

// Filter narrows List. Site and Date are substring matches.
type Filter struct {
	Site  string
	Date  string
	Limit int
}

// DefaultLimit caps List when Filter.Limit is zero.
const DefaultLimit = 200

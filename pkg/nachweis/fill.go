package nachweis

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ukaji3/arbeitsnachweis-go/pkg/nachweis/models"
	"github.com/ukaji3/arbeitsnachweis-go/pkg/nachweis/sheet"
)

// Result is a filled document and the report of how it was filled.
type Result struct {
	// Data is the serialized xlsx workbook.
	Data []byte
	// Report lists placements, computed hours and skipped fields.
	Report models.Report
}

// Fill loads the template at path, populates it with sub and serializes it.
// Only an unreadable template is an error; field problems are in the report.
func Fill(path string, sub models.Submission, opts Options) (*Result, error) {
	s, err := openTemplate(path)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	return fill(s, sub, opts)
}

// FillReader is Fill for a template held in memory.
func FillReader(r io.Reader, sub models.Submission, opts Options) (*Result, error) {
	s, err := sheet.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer s.Close()
	return fill(s, sub, opts)
}

func fill(s *sheet.Sheet, sub models.Submission, opts Options) (*Result, error) {
	report := Populate(s, sub, opts.Layout, opts.Policy)

	if opts.ShouldApplyPrintDefaults() {
		if err := s.ApplyPrintDefaults(); err != nil {
			report.Problems = append(report.Problems, NewFieldError("print", err))
		}
	}

	data, err := s.Bytes()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return &Result{Data: data, Report: report}, nil
}

func openTemplate(path string) (*sheet.Sheet, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	s, err := sheet.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return s, nil
}

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/ukaji3/arbeitsnachweis-go/internal/config"
	"github.com/ukaji3/arbeitsnachweis-go/internal/store"
	"github.com/xuri/excelize/v2"
)

func writeTemplate(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for cell, v := range map[string]string{
		"A2": "Datum:", "A3": "Bau:",
		"A10": "Name", "B10": "Vorname", "C10": "Ausweis", "D10": "Beginn", "E10": "Ende", "F10": "Stunden",
		"A16": "Gesamtstunden:",
	} {
		f.SetCellValue("Sheet1", cell, v)
	}
	f.MergeCell("Sheet1", "B2", "D2")
	f.MergeCell("Sheet1", "B3", "D3")
	path := filepath.Join(t.TempDir(), "GP-t.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}
	return path
}

func TestExcelName(t *testing.T) {
	re := regexp.MustCompile(`^leistungsnachweis_[0-9a-f]{8}\.xlsx$`)
	a, b := excelName(), excelName()
	if !re.MatchString(a) {
		t.Errorf("excelName() = %q", a)
	}
	if a == b {
		t.Errorf("expected distinct names, got %q twice", a)
	}
}

func TestLoadSubmission(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "sub.json")
	os.WriteFile(jsonPath, []byte(`{"date":"2024-05-01","site":"Plant A","workers":[{"last_name":"Horvat","start":"07:00","end":"15:30"}]}`), 0o644)
	formPath := filepath.Join(dir, "sub.txt")
	os.WriteFile(formPath, []byte("datum=2024-05-01&bau=Plant+B&nachname1=Kova%C4%8D&beginn1=08:00&ende1=16:00\n"), 0o644)

	tests := []struct {
		name    string
		input   string
		form    string
		stdin   string
		site    string
		workers int
		wantErr bool
	}{
		{"json file", jsonPath, "", "", "Plant A", 1, false},
		{"json stdin", "-", "", `{"site":"Stdin"}`, "Stdin", 0, false},
		{"form string", "", "bau=Werk&vorname2=Ana&ende2=12:00", "", "Werk", 1, false},
		{"form file", "", "@" + formPath, "", "Plant B", 1, false},
		{"missing file", filepath.Join(dir, "nope.json"), "", "", "", 0, true},
		{"bad json", "-", "", "{", "", 0, true},
		{"nothing", "", "", "", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub, err := loadSubmission(tt.input, tt.form, strings.NewReader(tt.stdin))
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if sub.Site != tt.site || len(sub.ActiveWorkers()) != tt.workers {
				t.Errorf("sub = %+v", sub)
			}
		})
	}
}

func TestRunFill(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		TemplatePath: writeTemplate(t),
		DBPath:       filepath.Join(dir, "data", "app.db"),
		OutputDir:    filepath.Join(dir, "generated"),
	}
	fl := fillFlags{
		template: cfg.TemplatePath,
		form:     "datum=2024-05-01&bau=Plant+A&nachname1=Horvat&vorname1=Ivan&beginn1=07:00&ende1=15:30",
		record:   true,
		report:   true,
	}

	var out bytes.Buffer
	if err := runFill(context.Background(), cfg, fl, &out); err != nil {
		t.Fatalf("runFill: %v", err)
	}

	var rep struct {
		File       string  `json:"file"`
		TotalHours float64 `json:"total_hours"`
	}
	if err := json.Unmarshal(out.Bytes(), &rep); err != nil {
		t.Fatalf("report is not JSON: %v (%s)", err, out.String())
	}
	if rep.TotalHours != 7.5 {
		t.Errorf("total_hours = %v, expected 7.5", rep.TotalHours)
	}

	xlsx := filepath.Join(cfg.OutputDir, rep.File)
	f, err := excelize.OpenFile(xlsx)
	if err != nil {
		t.Fatalf("generated file: %v", err)
	}
	defer f.Close()
	if v, _ := f.GetCellValue("Sheet1", "B2"); v != "01.05.2024" {
		t.Errorf("B2 = %q", v)
	}
	if v, _ := f.GetCellValue("Sheet1", "B16"); v != "7.5" {
		t.Errorf("B16 = %q, expected total", v)
	}

	st, err := store.New(cfg.DBPath)
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()
	list, err := st.List(store.Filter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].ExcelFilename != rep.File || list[0].Site != "Plant A" {
		t.Errorf("audit log = %+v", list)
	}
}

func TestRunFillOutputPath(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{TemplatePath: writeTemplate(t), OutputDir: dir}
	path := filepath.Join(dir, "out", "nachweis.xlsx")
	fl := fillFlags{template: cfg.TemplatePath, form: "bau=X", outputPath: path}

	var out bytes.Buffer
	if err := runFill(context.Background(), cfg, fl, &out); err != nil {
		t.Fatalf("runFill: %v", err)
	}
	if strings.TrimSpace(out.String()) != path {
		t.Errorf("stdout = %q, expected output path", out.String())
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("output not written: %v", err)
	}
}

func TestRunFillMissingTemplate(t *testing.T) {
	cfg := &config.Config{OutputDir: t.TempDir()}
	fl := fillFlags{template: filepath.Join(t.TempDir(), "missing.xlsx"), form: "bau=X"}
	if err := runFill(context.Background(), cfg, fl, &bytes.Buffer{}); err == nil {
		t.Error("expected error for missing template")
	}
}

func TestHoursCmd(t *testing.T) {
	cmd := newHoursCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"07:00", "15:30"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if out.String() != "7.50\n" {
		t.Errorf("output = %q", out.String())
	}

	cmd = newHoursCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"7 Uhr", "15:30"})
	if err := cmd.Execute(); err == nil {
		t.Error("expected malformed time error")
	}
}

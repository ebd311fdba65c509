package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/ukaji3/arbeitsnachweis-go/internal/config"
	"github.com/ukaji3/arbeitsnachweis-go/internal/drive"
	"github.com/ukaji3/arbeitsnachweis-go/internal/store"
	"github.com/ukaji3/arbeitsnachweis-go/internal/translate"
	"github.com/ukaji3/arbeitsnachweis-go/pkg/nachweis"
	"github.com/ukaji3/arbeitsnachweis-go/pkg/nachweis/models"
	"github.com/ukaji3/arbeitsnachweis-go/pkg/nachweis/output"
)

// dbDriveName is the name of the audit database in the Drive folder.
const dbDriveName = "app.db"

type fillFlags struct {
	template        string
	input           string
	form            string
	outputPath      string
	noPrintDefaults bool
	record          bool
	upload          bool
	translateFrom   string
	translateTo     string
	report          bool
	pretty          bool
}

func newFillCmd(cfg *config.Config) *cobra.Command {
	var fl fillFlags
	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Fill the template from a submission",
		Long: `fill reads a submission as JSON (--input) or as urlencoded form fields
(--form, "@file" reads a file) and writes the filled workbook.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFill(cmd.Context(), cfg, fl, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&fl.template, "template", cfg.TemplatePath, "Template xlsx path")
	cmd.Flags().StringVar(&fl.input, "input", "", `Submission JSON file ("-" for stdin)`)
	cmd.Flags().StringVar(&fl.form, "form", "", "Submission as urlencoded form fields")
	cmd.Flags().StringVarP(&fl.outputPath, "output", "o", "", "Output file path (default: generated name in NACHWEIS_OUTPUT_DIR)")
	cmd.Flags().BoolVar(&fl.noPrintDefaults, "no-print-defaults", false, "Keep the template's page setup")
	cmd.Flags().BoolVar(&fl.record, "record", false, "Record the submission in the audit database")
	cmd.Flags().BoolVar(&fl.upload, "upload", false, "Upload the workbook to Google Drive")
	cmd.Flags().StringVar(&fl.translateFrom, "translate-from", translate.DefaultSource, "Source language of the description")
	cmd.Flags().StringVar(&fl.translateTo, "translate-to", "", "Translate the description into this language before filling")
	cmd.Flags().BoolVar(&fl.report, "report", false, "Print the fill report as JSON")
	cmd.Flags().BoolVar(&fl.pretty, "pretty", false, "Pretty-print the report")
	cmd.MarkFlagsMutuallyExclusive("input", "form")

	return cmd
}

func runFill(ctx context.Context, cfg *config.Config, fl fillFlags, stdout io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	sub, err := loadSubmission(fl.input, fl.form, os.Stdin)
	if err != nil {
		return err
	}

	if fl.translateTo != "" && strings.TrimSpace(sub.Description) != "" {
		res, err := translate.New(cfg).Translate(ctx, sub.Description, fl.translateFrom, fl.translateTo)
		if err != nil {
			log.Printf("warning: description not translated: %v", err)
		} else {
			log.Printf("description translated by %s", res.Engine)
			sub.Description = res.Text
		}
	}

	opts := nachweis.DefaultOptions()
	if fl.noPrintDefaults {
		off := false
		opts.PrintDefaults = &off
	}

	res, err := nachweis.Fill(fl.template, sub, opts)
	if err != nil {
		return fmt.Errorf("fill failed: %w", err)
	}
	for _, msg := range res.Report.Messages() {
		log.Printf("warning: %s", msg)
	}

	path := fl.outputPath
	if path == "" {
		path = filepath.Join(cfg.OutputDir, excelName())
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, res.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	name := filepath.Base(path)

	var dc *drive.Client
	if (fl.upload || fl.record) && cfg.DriveEnabled() {
		if dc, err = drive.New(ctx, cfg.DriveServiceAccountJSON, cfg.DriveFolderID); err != nil {
			log.Printf("warning: drive disabled: %v", err)
		}
	} else if fl.upload {
		log.Printf("warning: upload skipped: GDRIVE_SERVICE_ACCOUNT_JSON and GDRIVE_FOLDER_ID are required")
	}

	var driveID string
	if fl.upload && dc != nil {
		if driveID, err = dc.Upload(ctx, name, res.Data, drive.XLSXMime); err != nil {
			log.Printf("warning: %v", err)
		} else {
			log.Printf("uploaded %s (id=%s)", name, driveID)
		}
	}

	if fl.record {
		if err := recordSubmission(ctx, cfg.DBPath, dc, sub, res.Report, name, driveID); err != nil {
			return err
		}
	}

	if fl.report {
		data, err := output.ReportToJSON(name, res.Report, fl.pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		fmt.Fprintln(stdout, string(data))
		return nil
	}
	fmt.Fprintln(stdout, path)
	return nil
}

// recordSubmission appends to the audit database. With a Drive client the
// database is pulled before and pushed after the write; Drive failures are
// logged and do not fail the command.
func recordSubmission(ctx context.Context, dbPath string, dc *drive.Client, sub models.Submission, report models.Report, name, driveID string) error {
	var mirror *drive.Mirror
	if dc != nil {
		mirror = dc.NewMirror(dbDriveName, dbPath)
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return fmt.Errorf("create db directory: %w", err)
		}
		if ok, err := mirror.Pull(ctx); err != nil {
			log.Printf("warning: drive db sync (download) failed: %v", err)
		} else if !ok {
			log.Printf("drive db sync: no remote %s yet", dbDriveName)
		}
	}

	st, err := store.New(dbPath)
	if err != nil {
		return err
	}
	rec, err := st.Record(sub, report, name, driveID)
	if cerr := st.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("record submission: %w", err)
	}
	log.Printf("recorded submission %d", rec.ID)

	if mirror != nil {
		if err := mirror.Push(ctx); err != nil {
			log.Printf("warning: drive db sync (upload) failed: %v", err)
		}
	}
	return nil
}

// loadSubmission reads the submission from a JSON file or form fields.
func loadSubmission(inputPath, form string, stdin io.Reader) (models.Submission, error) {
	var sub models.Submission
	switch {
	case inputPath != "":
		var r io.Reader = stdin
		if inputPath != "-" {
			f, err := os.Open(inputPath)
			if err != nil {
				return sub, fmt.Errorf("open input: %w", err)
			}
			defer f.Close()
			r = f
		}
		if err := json.NewDecoder(r).Decode(&sub); err != nil {
			return sub, fmt.Errorf("decode input: %w", err)
		}
		return sub, nil
	case form != "":
		if strings.HasPrefix(form, "@") {
			data, err := os.ReadFile(form[1:])
			if err != nil {
				return sub, fmt.Errorf("read form: %w", err)
			}
			form = string(data)
		}
		values, err := url.ParseQuery(strings.TrimSpace(form))
		if err != nil {
			return sub, fmt.Errorf("parse form: %w", err)
		}
		return models.SubmissionFromForm(values, models.MaxWorkers), nil
	default:
		return sub, fmt.Errorf("one of --input or --form is required")
	}
}

// excelName returns leistungsnachweis_<8 hex>.xlsx.
func excelName() string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "leistungsnachweis_" + id[:8] + ".xlsx"
}

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/ukaji3/arbeitsnachweis-go/internal/config"
	"github.com/ukaji3/arbeitsnachweis-go/internal/store"
	"github.com/ukaji3/arbeitsnachweis-go/pkg/nachweis/output"
)

func newHistoryCmd(cfg *config.Config) *cobra.Command {
	var (
		f      store.Filter
		asJSON bool
		pretty bool
	)
	cmd := &cobra.Command{
		Use:   "history [ID]",
		Short: "List recorded submissions, or show one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(cfg.DBPath); os.IsNotExist(err) {
				return fmt.Errorf("no audit database at %s", cfg.DBPath)
			}
			st, err := store.New(cfg.DBPath)
			if err != nil {
				return err
			}
			defer st.Close()

			out := cmd.OutOrStdout()
			if len(args) == 1 {
				id, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid id %q", args[0])
				}
				rec, err := st.Get(id)
				if err != nil {
					return err
				}
				if asJSON {
					fmt.Fprintln(out, rec.PayloadJSON)
					return nil
				}
				printSubmission(out, rec)
				return nil
			}

			list, err := st.List(f)
			if err != nil {
				return err
			}
			if asJSON {
				data, err := output.ToJSON(list, pretty)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
				return nil
			}
			printSummaries(out, list)
			return nil
		},
	}
	cmd.Flags().StringVar(&f.Site, "site", "", "Filter by site (substring)")
	cmd.Flags().StringVar(&f.Date, "date", "", "Filter by date (substring)")
	cmd.Flags().IntVar(&f.Limit, "limit", store.DefaultLimit, "Maximum number of rows")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func printSummaries(w io.Writer, list []store.Summary) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCREATED\tDATUM\tBAU\tBEAUFTRAGTER\tSTUNDEN\tDATEI")
	for _, s := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%.2f\t%s\n",
			s.ID, s.CreatedAt.Local().Format(time.DateTime), s.Date, s.Site, s.Supervisor, s.TotalHours, s.ExcelFilename)
	}
	tw.Flush()
}

func printSubmission(w io.Writer, rec *store.Submission) {
	fmt.Fprintf(w, "ID:           %d\n", rec.ID)
	fmt.Fprintf(w, "Erstellt:     %s\n", rec.CreatedAt.Local().Format(time.DateTime))
	fmt.Fprintf(w, "Datum:        %s\n", rec.Input.Date)
	fmt.Fprintf(w, "Bau:          %s\n", rec.Input.Site)
	fmt.Fprintf(w, "Beauftragter: %s\n", rec.Input.Supervisor)
	if rec.Input.Equipment != "" {
		fmt.Fprintf(w, "Gerät:        %s\n", rec.Input.Equipment)
	}
	if rec.Input.Description != "" {
		fmt.Fprintf(w, "Beschreibung: %s\n", rec.Input.Description)
	}
	fmt.Fprintf(w, "Datei:        %s\n", rec.ExcelFilename)
	if rec.DriveFileID != "" {
		fmt.Fprintf(w, "Drive:        %s\n", rec.DriveFileID)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "\nNAME\tVORNAME\tAUSWEIS\tBEGINN\tENDE\tSTUNDEN\tVORHALTUNG")
	for i, wk := range rec.Input.Workers {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%.2f\t%s\n",
			wk.LastName, wk.FirstName, wk.IDNumber, wk.Start, wk.End, rec.Hours[i], wk.Equipment)
	}
	fmt.Fprintf(tw, "\t\t\t\tGesamt\t%.2f\t\n", rec.TotalHours)
	tw.Flush()
}

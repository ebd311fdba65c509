// Package main provides the arbeitsnachweis CLI: it fills the work record
// template and keeps the audit log.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/arbeitsnachweis-go/internal/config"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("arbeitsnachweis: ")

	cfg := config.Load()

	rootCmd := &cobra.Command{
		Use:   "arbeitsnachweis",
		Short: "Fill Arbeitsnachweis work record templates",
		Long: `arbeitsnachweis fills the Arbeitsnachweis xlsx template from a submission
(date, site, supervisor, description and up to five workers), computes net
hours after the fixed breaks and records every generated document.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newFillCmd(cfg),
		newHoursCmd(),
		newInspectCmd(cfg),
		newHistoryCmd(cfg),
		newTranslateCmd(cfg),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ukaji3/arbeitsnachweis-go/internal/config"
	"github.com/ukaji3/arbeitsnachweis-go/pkg/nachweis"
	"github.com/ukaji3/arbeitsnachweis-go/pkg/nachweis/output"
)

func newInspectCmd(cfg *config.Config) *cobra.Command {
	var (
		templatePath string
		pretty       bool
	)
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show where fields resolve in the template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := nachweis.Inspect(templatePath, nachweis.DefaultLayout())
			if err != nil {
				return fmt.Errorf("inspection failed: %w", err)
			}
			data, err := output.TemplateInfoToJSON(info, pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
	cmd.Flags().StringVar(&templatePath, "template", cfg.TemplatePath, "Template xlsx path")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/arbeitsnachweis-go/internal/config"
	"github.com/ukaji3/arbeitsnachweis-go/internal/translate"
)

func newTranslateCmd(cfg *config.Config) *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "translate TEXT...",
		Short: "Translate text with Azure Translator, falling back to LibreTranslate",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := translate.New(cfg).Translate(cmd.Context(), strings.Join(args, " "), from, to)
			if err != nil {
				return fmt.Errorf("translation failed: %w", err)
			}
			for _, e := range res.Errors {
				log.Printf("warning: %s", e)
			}
			if res.Engine != "" {
				log.Printf("engine: %s", res.Engine)
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Text)
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", translate.DefaultSource, "Source language")
	cmd.Flags().StringVar(&to, "to", translate.DefaultTarget, "Target language")
	return cmd
}

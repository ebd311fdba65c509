package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ukaji3/arbeitsnachweis-go/pkg/nachweis/hours"
)

func newHoursCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "hours START END",
		Short: "Print net hours for a shift after break deduction",
		Example: `  arbeitsnachweis hours 07:00 15:30
  arbeitsnachweis hours 8.00 16.00 -v`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := hours.Parse(args[0])
			if err != nil {
				return err
			}
			end, err := hours.Parse(args[1])
			if err != nil {
				return err
			}
			p := hours.DefaultPolicy()
			out := cmd.OutOrStdout()
			if verbose {
				gross := 0
				if end > start {
					gross = int(end - start)
				}
				fmt.Fprintf(out, "shift:  %s-%s (%d min)\n", start, end, gross)
				for _, w := range p.Windows {
					fmt.Fprintf(out, "break:  %s-%s overlaps %d min\n", w.Start, w.End, hours.Overlap(start, end, w.Start, w.End))
				}
			}
			fmt.Fprintf(out, "%.2f\n", p.Net(start, end))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show the break deduction")
	return cmd
}

// Package nachweis fills the Arbeitsnachweis (work record) template from a
// submission: header fields, description, worker rows and total hours.
package nachweis

import "github.com/ukaji3/arbeitsnachweis-go/pkg/nachweis/hours"

// Options configures a Fill run.
type Options struct {
	// Layout describes where fields live in the template.
	Layout Layout
	// Policy is the break policy applied to every worker row.
	Policy hours.Policy
	// PrintDefaults applies landscape A4 page setup and a print area.
	// If nil, defaults to true.
	PrintDefaults *bool
}

// DefaultOptions returns options for the standard Arbeitsnachweis template.
func DefaultOptions() Options {
	return Options{
		Layout: DefaultLayout(),
		Policy: hours.DefaultPolicy(),
	}
}

// ShouldApplyPrintDefaults returns whether to apply page setup after filling.
func (o Options) ShouldApplyPrintDefaults() bool {
	if o.PrintDefaults != nil {
		return *o.PrintDefaults
	}
	return true
}

package hours

// Window is a fixed daily break interval.
type Window struct {
	// Start is the first minute of the break.
	Start Clock
	// End is the minute the break is over.
	End Clock
	// Nominal is the full length of the break in hours.
	Nominal float64
}

var (
	// MorningBreak is the 15 minute breakfast break.
	MorningBreak = Window{Start: At(9, 0), End: At(9, 15), Nominal: 0.25}
	// LunchBreak is the 45 minute lunch break.
	LunchBreak = Window{Start: At(12, 0), End: At(12, 45), Nominal: 0.75}
)

// Policy is the set of break windows deducted from every shift.
type Policy struct {
	Windows []Window
}

// DefaultPolicy returns the Arbeitsnachweis break policy.
func DefaultPolicy() Policy {
	return Policy{Windows: []Window{MorningBreak, LunchBreak}}
}

// Deduction returns the break minutes that fall inside [start, end).
func (p Policy) Deduction(start, end Clock) int {
	total := 0
	for _, w := range p.Windows {
		total += Overlap(start, end, w.Start, w.End)
	}
	return total
}

// Net returns the worked hours between start and end minus the overlapping
// break minutes, rounded to two decimals. Shifts that end at or before they
// start yield 0; overnight shifts are not supported.
func (p Policy) Net(start, end Clock) float64 {
	if end <= start {
		return 0
	}
	gross := int(end - start)
	net := max(0, gross-p.Deduction(start, end))
	return Round2(float64(net) / 60.0)
}

// NetString parses both clock strings and returns Net.
func (p Policy) NetString(start, end string) (float64, error) {
	s, err := Parse(start)
	if err != nil {
		return 0, err
	}
	e, err := Parse(end)
	if err != nil {
		return 0, err
	}
	return p.Net(s, e), nil
}

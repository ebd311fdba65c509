// Package hours computes net worked hours from a start/end clock pair,
// deducting the portions of fixed break windows that fall inside the shift.
package hours

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrMalformedTime indicates a clock string that is not H:MM, HH:MM or HH.MM.
var ErrMalformedTime = errors.New("malformed time")

// Clock is a time of day in minutes since midnight.
type Clock int

// At returns the Clock for hour:minute.
func At(hour, minute int) Clock {
	return Clock(hour*60 + minute)
}

// String formats the clock as HH:MM.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// Parse reads a clock time. The hour is 0-23 with one or two digits, the
// minute exactly two digits; ':' and '.' are accepted as separators.
func Parse(s string) (Clock, error) {
	t := strings.TrimSpace(s)
	idx := strings.IndexAny(t, ":.")
	if idx < 1 || idx > 2 || len(t)-idx-1 != 2 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}
	h, err := parseDigits(t[:idx])
	if err != nil || h > 23 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}
	m, err := parseDigits(t[idx+1:])
	if err != nil || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}
	return At(h, m), nil
}

// parseDigits accepts ASCII digits only (no sign, no spaces).
func parseDigits(s string) (int, error) {
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.Atoi(s)
}

// Overlap returns the length in minutes of the intersection of [aStart, aEnd)
// and [bStart, bEnd), never negative.
func Overlap(aStart, aEnd, bStart, bEnd Clock) int {
	start := max(aStart, bStart)
	end := min(aEnd, bEnd)
	if end <= start {
		return 0
	}
	return int(end - start)
}

// Round2 rounds to two decimals, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

package nachweis

import (
	"strings"
	"time"
)

// FormatDate renders an ISO date (YYYY-MM-DD) as DD.MM.YYYY. Any other
// input is returned trimmed but otherwise unchanged.
func FormatDate(s string) string {
	t := strings.TrimSpace(s)
	d, err := time.Parse(time.DateOnly, t)
	if err != nil {
		return t
	}
	return d.Format("02.01.2006")
}

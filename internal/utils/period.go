package utils

import (
	"fmt"
	"time"
)

// PeriodKey formats a year and month as the report period string, e.g. "2025-03".
func PeriodKey(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// PeriodBounds returns the inclusive date range covered by a reporting period:
// the first day of the month through the last day of the month, both at UTC
// midnight. Month length is derived by normalizing day zero of the following
// month, so leap Februaries come out right.
func PeriodBounds(year, month int) (start, end time.Time) {
	start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end = time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
	return start, end
}

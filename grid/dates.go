package grid

import "time"

// DateLayout is the calendar-date format used throughout the grid.
// ISO dates compare correctly as strings, which the occupancy checks
// rely on.
const DateLayout = "2006-01-02"

// DateRange returns days consecutive dates starting at start. The
// caller guarantees days >= 1; start must be a DateLayout date.
func DateRange(start string, days int) []string {
	t, err := time.Parse(DateLayout, start)
	if err != nil {
		t = time.Now()
	}
	dates := make([]string, 0, days)
	for i := 0; i < days; i++ {
		dates = append(dates, t.AddDate(0, 0, i).Format(DateLayout))
	}
	return dates
}

// DateOnly truncates an upstream timestamp ("2006-01-02 15:04:05" or
// already a bare date) to its date part. Returns "" for unparseable
// input so callers can skip the record.
func DateOnly(ts string) string {
	if len(ts) >= len(DateLayout) {
		if _, err := time.Parse(DateLayout, ts[:len(DateLayout)]); err == nil {
			return ts[:len(DateLayout)]
		}
	}
	return ""
}

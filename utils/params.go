package utils

import (
	"net/http"
	"strconv"
	"time"
)

// GridQuery holds the sanitized request parameters for a grid build.
type GridQuery struct {
	StartDate string
	Days      int
	Refresh   bool
}

// DefaultWindowDays is the grid window length when the request does
// not specify one.
const DefaultWindowDays = 14

// ParseGridQuery reads start_date/days/refresh from the query string,
// defaulting to a 14-day window starting today. Days is clamped to at
// least 1 so the date range builder never sees an empty window.
func ParseGridQuery(r *http.Request) GridQuery {
	q := r.URL.Query()

	start := q.Get("start_date")
	if _, err := time.Parse("2006-01-02", start); err != nil {
		start = time.Now().Format("2006-01-02")
	}

	days, _ := strconv.Atoi(q.Get("days"))
	if days < 1 {
		days = DefaultWindowDays
	}

	return GridQuery{
		StartDate: start,
		Days:      days,
		Refresh:   q.Get("refresh") == "1",
	}
}

package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/devboost/leaderboard/domain/activity"
	"github.com/devboost/leaderboard/ports"
)

// ErrInvalidDate marks a date parameter that is not a valid YYYY-MM-DD
// string. The HTTP layer maps it to 400.
var ErrInvalidDate = errors.New("invalid date")

const dateLayout = "2006-01-02"

// ParseWindow validates the optional start/end date parameters and
// produces the reporting window. An omitted end defaults to now; an
// omitted start defaults to 24 hours before the end. An explicit end
// date covers the whole day (23:59:59); an explicit start date begins
// at midnight. All times are UTC.
func ParseWindow(startDate, endDate string, clock ports.Clock) (activity.Window, error) {
	var end time.Time
	if endDate == "" {
		end = clock.Now().UTC()
	} else {
		d, err := time.Parse(dateLayout, endDate)
		if err != nil {
			return activity.Window{}, fmt.Errorf("%w: end_date %q, expected YYYY-MM-DD", ErrInvalidDate, endDate)
		}
		end = time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 0, time.UTC)
	}

	var start time.Time
	if startDate == "" {
		start = end.Add(-24 * time.Hour)
	} else {
		d, err := time.Parse(dateLayout, startDate)
		if err != nil {
			return activity.Window{}, fmt.Errorf("%w: start_date %q, expected YYYY-MM-DD", ErrInvalidDate, startDate)
		}
		start = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	}

	return activity.Window{Start: start, End: end}, nil
}

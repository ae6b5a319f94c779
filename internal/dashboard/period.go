package dashboard

import (
	"errors"
	"time"
)

// Period selects how many months of spending the dashboard totals cover.
type Period string

const (
	PeriodThisMonth   Period = "this-month"
	PeriodLast3Months Period = "last-3-months"
	PeriodLast6Months Period = "last-6-months"
	PeriodThisYear    Period = "this-year"
)

// ErrPeriodInvalid is returned when a period string is not one of the
// supported values.
var ErrPeriodInvalid = errors.New("the period is invalid, allowed values are: this-month, last-3-months, last-6-months, this-year")

// ParsePeriod parses a period string. The empty string defaults to the
// current month.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case "":
		return PeriodThisMonth, nil
	case PeriodThisMonth, PeriodLast3Months, PeriodLast6Months, PeriodThisYear:
		return Period(s), nil
	default:
		return "", ErrPeriodInvalid
	}
}

// Months returns the number of calendar months the period covers at the
// reference time. For the year to date this is the one-based index of the
// current month, so a request in March covers three months.
func (p Period) Months(now time.Time) int {
	switch p {
	case PeriodLast3Months:
		return 3
	case PeriodLast6Months:
		return 6
	case PeriodThisYear:
		return int(now.Month())
	default:
		return 1
	}
}

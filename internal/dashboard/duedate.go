package dashboard

import (
	"time"

	"github.com/pulso-app/backend/internal/types"
)

// NextDueDate returns the next calendar date on or after ref whose day of
// month matches day. When the resolved month has fewer days, the date
// clamps to the month's last day, so a commitment due on the 31st falls
// due on February 28th.
func NextDueDate(day int, ref time.Time) time.Time {
	month := types.MonthOf(ref)
	if day >= ref.Day() {
		return month.Day(day)
	}

	return month.AddDate(0, 1).Day(day)
}

// DueDateForMonth resolves the due date of a commitment within a specific
// month, clamping to the month's last day.
func DueDateForMonth(day int, month types.Month) time.Time {
	return month.Day(day)
}

// DaysUntil returns the number of whole days from ref to t, ignoring the
// time of day on both sides.
func DaysUntil(t, ref time.Time) int {
	a := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)

	return int(a.Sub(b).Hours() / 24)
}

// Urgency is the due date proximity tier of a commitment.
type Urgency string

const (
	UrgencyUrgent  Urgency = "urgent"
	UrgencyWarning Urgency = "warning"
	UrgencyNormal  Urgency = "normal"
)

// UrgencyFor classifies how soon a due date is. Commitments due within one
// day are urgent, within two to three days a warning, anything later normal.
func UrgencyFor(daysUntil int) Urgency {
	switch {
	case daysUntil <= 1:
		return UrgencyUrgent
	case daysUntil <= 3:
		return UrgencyWarning
	default:
		return UrgencyNormal
	}
}

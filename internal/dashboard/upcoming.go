package dashboard

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CommitmentType distinguishes the two kinds of commitments in mixed lists.
type CommitmentType string

const (
	CommitmentInstallment  CommitmentType = "installment"
	CommitmentSubscription CommitmentType = "subscription"
)

const (
	// UpcomingHorizonDays is the look-ahead window of the upcoming list.
	UpcomingHorizonDays = 7

	// notificationWindowDays is the wider window feeding the notification
	// badge rather than the per-item urgency flag.
	notificationWindowDays = 3
)

// DueItem is one commitment together with its next due date.
type DueItem struct {
	ID   uuid.UUID      `json:"id" example:"5985d439-0e19-4f8b-b561-9b9a7e2de836"`
	Type CommitmentType `json:"type" example:"subscription"`
	Name string         `json:"name" example:"Streaming"`

	// Amount is the amount actually charged on the due date. For
	// subscriptions this is the nominal amount of the billing cycle, not
	// the monthly equivalent.
	Amount decimal.Decimal `json:"amount" example:"39.90"`

	DueDate   time.Time `json:"dueDate" example:"2026-08-31T00:00:00Z"`
	DaysUntil int       `json:"daysUntil" example:"2"`
	Urgent    bool      `json:"urgent" example:"false"`
}

// dueItems lists every active commitment with its next due date, soonest
// first.
func (s Snapshot) dueItems(f Filter) []DueItem {
	var items []DueItem

	for _, i := range s.activeInstallments(f) {
		due := NextDueDate(i.DueDay, s.Now)
		days := DaysUntil(due, s.Now)

		items = append(items, DueItem{
			ID:        i.ID,
			Type:      CommitmentInstallment,
			Name:      i.Description,
			Amount:    i.InstallmentAmount,
			DueDate:   due,
			DaysUntil: days,
			Urgent:    days >= 0 && days <= 1,
		})
	}

	for _, sub := range s.activeSubscriptions(f) {
		due := NextDueDate(sub.BillingDay, s.Now)
		days := DaysUntil(due, s.Now)

		items = append(items, DueItem{
			ID:        sub.ID,
			Type:      CommitmentSubscription,
			Name:      sub.Name,
			Amount:    sub.Amount,
			DueDate:   due,
			DaysUntil: days,
			Urgent:    days >= 0 && days <= 1,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].DueDate.Equal(items[j].DueDate) {
			return items[i].DueDate.Before(items[j].DueDate)
		}

		return items[i].Name < items[j].Name
	})

	return items
}

// Upcoming returns the commitments due within the next seven days, soonest
// first.
func (s Snapshot) Upcoming(f Filter) []DueItem {
	items := make([]DueItem, 0)
	for _, item := range s.dueItems(f) {
		if item.DaysUntil <= UpcomingHorizonDays {
			items = append(items, item)
		}
	}

	return items
}

// NextDue returns the soonest due commitment, or nil when there are no
// active commitments at all.
func (s Snapshot) NextDue(f Filter) *DueItem {
	items := s.dueItems(f)
	if len(items) == 0 {
		return nil
	}

	return &items[0]
}

// NotificationCount counts the commitments due within the next three days.
func (s Snapshot) NotificationCount(f Filter) int {
	var count int
	for _, item := range s.dueItems(f) {
		if item.DaysUntil <= notificationWindowDays {
			count++
		}
	}

	return count
}

// Package dashboard derives the aggregated dashboard figures from the raw
// commitment collections. Every function is pure: a snapshot of the
// collections and a filter go in, derived values come out. Persistence and
// HTTP concerns stay in the controllers.
package dashboard

import (
	"time"

	"github.com/google/uuid"
	"github.com/pulso-app/backend/internal/models"
)

// Snapshot is the full set of commitments the aggregations run over,
// together with the reference time all date math is relative to.
type Snapshot struct {
	Installments  []models.Installment
	Subscriptions []models.Subscription
	Categories    []models.Category
	Now           time.Time
}

// Filter narrows a snapshot to a period and an optional category selection.
// An empty CategoryIDs slice selects everything, including uncategorized
// commitments. A non-empty one selects only commitments assigned to one of
// the listed categories, which excludes uncategorized ones.
type Filter struct {
	Period      Period
	CategoryIDs []uuid.UUID
}

func (f Filter) matches(categoryID *uuid.UUID) bool {
	if len(f.CategoryIDs) == 0 {
		return true
	}

	if categoryID == nil {
		return false
	}

	for _, id := range f.CategoryIDs {
		if id == *categoryID {
			return true
		}
	}

	return false
}

// activeInstallments returns the active installment plans passing the
// category filter.
func (s Snapshot) activeInstallments(f Filter) []models.Installment {
	var out []models.Installment
	for _, i := range s.Installments {
		if i.Status == models.InstallmentStatusActive && f.matches(i.CategoryID) {
			out = append(out, i)
		}
	}

	return out
}

// activeSubscriptions returns the active subscriptions passing the category
// filter. Paused and cancelled subscriptions never contribute to aggregates.
func (s Snapshot) activeSubscriptions(f Filter) []models.Subscription {
	var out []models.Subscription
	for _, sub := range s.Subscriptions {
		if sub.Status == models.SubscriptionStatusActive && f.matches(sub.CategoryID) {
			out = append(out, sub)
		}
	}

	return out
}

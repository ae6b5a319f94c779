package v1

import (
	"strings"

	"github.com/google/uuid"
	"github.com/pulso-app/backend/internal/dashboard"
	"gorm.io/gorm"
)

// Dashboard is the complete aggregated view the app's home screen renders.
type Dashboard struct {
	Period        dashboard.Period              `json:"period" example:"this-month"`
	Totals        dashboard.Totals              `json:"totals"`        // Spend over the selected period
	MonthlyTotals dashboard.Totals              `json:"monthlyTotals"` // Monthly-equivalent spend
	Installments  dashboard.InstallmentSummary  `json:"installments"`
	Subscriptions dashboard.SubscriptionSummary `json:"subscriptions"`
	Comparison    dashboard.Comparison          `json:"comparison"` // Current vs previous month
	History       []dashboard.SeriesPoint       `json:"history"`    // Trailing six months, oldest first
	Projection    []dashboard.SeriesPoint       `json:"projection"` // Next three months
	Distribution  []dashboard.CategoryShare     `json:"distribution"`
	Upcoming      []dashboard.DueItem           `json:"upcoming"` // Due within the next seven days
	NextDue       *dashboard.DueItem            `json:"nextDue"`  // Soonest due commitment, null when there is none
	Notifications int                           `json:"notifications" example:"2"` // Commitments due within the next three days
	Insights      []dashboard.Insight           `json:"insights"`
}

type DashboardResponse struct {
	Data  *Dashboard `json:"data"`                                  // The aggregated dashboard
	Error *string    `json:"error" example:"the period is invalid"` // The error, if any occurred
}

type DashboardQueryFilter struct {
	Period     string   `form:"period"`     // The period the totals cover. Defaults to this-month.
	Categories []string `form:"categories"` // Category IDs to restrict the dashboard to. Repeatable, values may be comma separated.
}

// filter parses the query parameters into a dashboard filter.
func (f DashboardQueryFilter) filter() (dashboard.Filter, error) {
	period, err := dashboard.ParsePeriod(f.Period)
	if err != nil {
		return dashboard.Filter{}, err
	}

	var ids []uuid.UUID
	for _, raw := range f.Categories {
		for _, value := range strings.Split(raw, ",") {
			value = strings.TrimSpace(value)
			if value == "" {
				continue
			}

			id, err := uuid.Parse(value)
			if err != nil {
				return dashboard.Filter{}, errCategoriesInvalid
			}

			ids = append(ids, id)
		}
	}

	return dashboard.Filter{Period: period, CategoryIDs: ids}, nil
}

// loadSnapshot reads all commitments and categories for aggregation.
func loadSnapshot(db *gorm.DB) (dashboard.Snapshot, error) {
	var snapshot dashboard.Snapshot

	if err := db.Find(&snapshot.Installments).Error; err != nil {
		return dashboard.Snapshot{}, err
	}

	if err := db.Find(&snapshot.Subscriptions).Error; err != nil {
		return dashboard.Snapshot{}, err
	}

	if err := db.Find(&snapshot.Categories).Error; err != nil {
		return dashboard.Snapshot{}, err
	}

	return snapshot, nil
}

func newDashboard(snapshot dashboard.Snapshot, filter dashboard.Filter) Dashboard {
	return Dashboard{
		Period:        filter.Period,
		Totals:        snapshot.PeriodTotals(filter),
		MonthlyTotals: snapshot.MonthlyTotals(filter),
		Installments:  snapshot.SummarizeInstallments(filter),
		Subscriptions: snapshot.SummarizeSubscriptions(filter),
		Comparison:    snapshot.MonthOverMonth(filter),
		History:       snapshot.History(filter),
		Projection:    snapshot.Projection(filter),
		Distribution:  snapshot.Distribution(filter),
		Upcoming:      snapshot.Upcoming(filter),
		NextDue:       snapshot.NextDue(filter),
		Notifications: snapshot.NotificationCount(filter),
		Insights:      snapshot.Insights(filter),
	}
}

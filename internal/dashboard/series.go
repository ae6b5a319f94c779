package dashboard

import (
	"github.com/pulso-app/backend/internal/types"
	"github.com/shopspring/decimal"
)

// SeriesPoint is one month of a spending time series.
type SeriesPoint struct {
	Month         types.Month     `json:"month" example:"2026-07"`
	Installments  decimal.Decimal `json:"installments" example:"350.00"`
	Subscriptions decimal.Decimal `json:"subscriptions" example:"89.90"`
	Total         decimal.Decimal `json:"total" example:"439.90"`
}

// History builds the trailing six month spending series ending at the
// current month, oldest first. There is no historical ledger to replay, so
// every point applies today's active commitment set uniformly and the
// series is an approximation of the past.
func (s Snapshot) History(f Filter) []SeriesPoint {
	totals := s.MonthlyTotals(f)
	current := types.MonthOf(s.Now)

	points := make([]SeriesPoint, 0, 6)
	for i := 5; i >= 0; i-- {
		points = append(points, SeriesPoint{
			Month:         current.AddDate(0, -i),
			Installments:  totals.Installments,
			Subscriptions: totals.Subscriptions,
			Total:         totals.Total,
		})
	}

	return points
}

// Projection builds the three month forward spending series starting with
// next month. An installment plan only contributes to a future month when
// it still has an unpaid installment due then. Subscriptions are assumed
// to continue indefinitely.
func (s Snapshot) Projection(f Filter) []SeriesPoint {
	installments := s.activeInstallments(f)

	var subs decimal.Decimal
	for _, sub := range s.activeSubscriptions(f) {
		subs = subs.Add(MonthlyEquivalent(sub.Amount, sub.Frequency))
	}

	current := types.MonthOf(s.Now)

	points := make([]SeriesPoint, 0, 3)
	for offset := 1; offset <= 3; offset++ {
		var inst decimal.Decimal
		for _, i := range installments {
			if i.Remaining() >= offset {
				inst = inst.Add(i.InstallmentAmount)
			}
		}

		points = append(points, SeriesPoint{
			Month:         current.AddDate(0, offset),
			Installments:  inst,
			Subscriptions: subs,
			Total:         inst.Add(subs),
		})
	}

	return points
}

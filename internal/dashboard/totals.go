package dashboard

import (
	"github.com/shopspring/decimal"
)

// Totals is the monthly-equivalent spend split by commitment type.
type Totals struct {
	Installments  decimal.Decimal `json:"installments" example:"350.00"`
	Subscriptions decimal.Decimal `json:"subscriptions" example:"89.90"`
	Total         decimal.Decimal `json:"total" example:"439.90"`
}

// MonthlyTotals sums the monthly-equivalent cost of all active commitments
// passing the filter over a single month.
func (s Snapshot) MonthlyTotals(f Filter) Totals {
	var inst, subs decimal.Decimal

	for _, i := range s.activeInstallments(f) {
		inst = inst.Add(i.InstallmentAmount)
	}

	for _, sub := range s.activeSubscriptions(f) {
		subs = subs.Add(MonthlyEquivalent(sub.Amount, sub.Frequency))
	}

	return Totals{
		Installments:  inst,
		Subscriptions: subs,
		Total:         inst.Add(subs),
	}
}

// PeriodTotals scales the monthly-equivalent totals by the number of months
// the filter's period covers.
func (s Snapshot) PeriodTotals(f Filter) Totals {
	monthly := s.MonthlyTotals(f)
	months := decimal.NewFromInt(int64(f.Period.Months(s.Now)))

	return Totals{
		Installments:  monthly.Installments.Mul(months),
		Subscriptions: monthly.Subscriptions.Mul(months),
		Total:         monthly.Total.Mul(months),
	}
}

// InstallmentSummary counts the active installment plans and the amount
// still owed across them.
type InstallmentSummary struct {
	Count           int             `json:"count" example:"3"`
	RemainingAmount decimal.Decimal `json:"remainingAmount" example:"1200.00"`
}

// SubscriptionSummary counts the active subscriptions and their combined
// monthly-equivalent cost.
type SubscriptionSummary struct {
	Count       int             `json:"count" example:"5"`
	MonthlyCost decimal.Decimal `json:"monthlyCost" example:"89.90"`
}

// SummarizeInstallments aggregates the active installment plans passing the
// filter.
func (s Snapshot) SummarizeInstallments(f Filter) InstallmentSummary {
	var summary InstallmentSummary
	summary.RemainingAmount = decimal.Zero

	for _, i := range s.activeInstallments(f) {
		summary.Count++
		summary.RemainingAmount = summary.RemainingAmount.Add(i.RemainingAmount())
	}

	return summary
}

// SummarizeSubscriptions aggregates the active subscriptions passing the
// filter.
func (s Snapshot) SummarizeSubscriptions(f Filter) SubscriptionSummary {
	var summary SubscriptionSummary
	summary.MonthlyCost = decimal.Zero

	for _, sub := range s.activeSubscriptions(f) {
		summary.Count++
		summary.MonthlyCost = summary.MonthlyCost.Add(MonthlyEquivalent(sub.Amount, sub.Frequency))
	}

	return summary
}

// Comparison relates the current month's spend to the previous one.
type Comparison struct {
	Amount   decimal.Decimal `json:"amount" example:"50.00"`
	Percent  decimal.Decimal `json:"percent" example:"12.5"`
	Increase bool            `json:"increase" example:"false"`
}

// MonthOverMonth compares the two most recent points of the spending
// history.
func (s Snapshot) MonthOverMonth(f Filter) Comparison {
	history := s.History(f)
	previous := history[len(history)-2].Total
	current := history[len(history)-1].Total

	delta := current.Sub(previous)
	percent := decimal.Zero
	if previous.IsPositive() {
		percent = delta.Div(previous).Mul(decimal.NewFromInt(100))
	}

	return Comparison{
		Amount:   delta,
		Percent:  percent,
		Increase: delta.IsPositive(),
	}
}

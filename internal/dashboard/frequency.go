package dashboard

import (
	"github.com/pulso-app/backend/internal/models"
	"github.com/shopspring/decimal"
)

var frequencyMonths = map[models.Frequency]int64{
	models.FrequencyMonthly:    1,
	models.FrequencyQuarterly:  3,
	models.FrequencySemiannual: 6,
	models.FrequencyAnnual:     12,
}

// MonthsIn returns the number of months between two charges at the given
// cadence. Unknown frequencies are treated as monthly.
func MonthsIn(f models.Frequency) int64 {
	if months, ok := frequencyMonths[f]; ok {
		return months
	}

	return 1
}

// MonthlyEquivalent normalizes a nominal amount billed at the given cadence
// to a per-month cost.
func MonthlyEquivalent(amount decimal.Decimal, f models.Frequency) decimal.Decimal {
	months := MonthsIn(f)
	if months == 1 {
		return amount
	}

	return amount.Div(decimal.NewFromInt(months))
}

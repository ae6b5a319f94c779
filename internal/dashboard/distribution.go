package dashboard

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Names and color of the bucket collecting commitments without a category.
const (
	UncategorizedName  = "Sem categoria"
	UncategorizedColor = "#6b7280"
)

// CategoryShare is one slice of the spending distribution.
type CategoryShare struct {
	// CategoryID is nil for the uncategorized bucket.
	CategoryID *uuid.UUID      `json:"categoryId" example:"d180542c-2711-4bca-a327-c14097a5298c"`
	Name       string          `json:"name" example:"Moradia"`
	Color      string          `json:"color" example:"#ef4444"`
	Total      decimal.Decimal `json:"total" example:"439.90"`
}

// Distribution buckets the monthly-equivalent cost of all active
// commitments by category, descending by total. Commitments without a
// category, including ones referencing a deleted category, fold into the
// uncategorized bucket. Buckets without any spend are dropped.
func (s Snapshot) Distribution(f Filter) []CategoryShare {
	byID := make(map[uuid.UUID]*CategoryShare, len(s.Categories))
	for _, c := range s.Categories {
		id := c.ID
		byID[id] = &CategoryShare{
			CategoryID: &id,
			Name:       c.Name,
			Color:      c.Color,
			Total:      decimal.Zero,
		}
	}

	uncategorized := &CategoryShare{
		Name:  UncategorizedName,
		Color: UncategorizedColor,
		Total: decimal.Zero,
	}

	add := func(categoryID *uuid.UUID, amount decimal.Decimal) {
		if categoryID != nil {
			if share, ok := byID[*categoryID]; ok {
				share.Total = share.Total.Add(amount)
				return
			}
		}

		uncategorized.Total = uncategorized.Total.Add(amount)
	}

	for _, i := range s.activeInstallments(f) {
		add(i.CategoryID, i.InstallmentAmount)
	}

	for _, sub := range s.activeSubscriptions(f) {
		add(sub.CategoryID, MonthlyEquivalent(sub.Amount, sub.Frequency))
	}

	shares := make([]CategoryShare, 0, len(byID)+1)
	for _, share := range byID {
		if share.Total.IsPositive() {
			shares = append(shares, *share)
		}
	}

	if uncategorized.Total.IsPositive() {
		shares = append(shares, *uncategorized)
	}

	sort.Slice(shares, func(i, j int) bool {
		if !shares[i].Total.Equal(shares[j].Total) {
			return shares[i].Total.GreaterThan(shares[j].Total)
		}

		return shares[i].Name < shares[j].Name
	})

	return shares
}

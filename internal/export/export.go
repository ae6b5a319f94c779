// Package export renders the commitment collections into downloadable
// files. All user-facing labels are pt-BR, matching the rest of the app.
package export

import (
	"github.com/google/uuid"
	"github.com/pulso-app/backend/internal/dashboard"
	"github.com/pulso-app/backend/internal/models"
)

var frequencyLabels = map[models.Frequency]string{
	models.FrequencyMonthly:    "Mensal",
	models.FrequencyQuarterly:  "Trimestral",
	models.FrequencySemiannual: "Semestral",
	models.FrequencyAnnual:     "Anual",
}

var installmentStatusLabels = map[models.InstallmentStatus]string{
	models.InstallmentStatusActive:    "Ativo",
	models.InstallmentStatusPaidOff:   "Quitado",
	models.InstallmentStatusCancelled: "Cancelado",
}

var subscriptionStatusLabels = map[models.SubscriptionStatus]string{
	models.SubscriptionStatusActive:    "Ativa",
	models.SubscriptionStatusPaused:    "Pausada",
	models.SubscriptionStatusCancelled: "Cancelada",
}

func frequencyLabel(f models.Frequency) string {
	if label, ok := frequencyLabels[f]; ok {
		return label
	}

	return string(f)
}

func installmentStatusLabel(s models.InstallmentStatus) string {
	if label, ok := installmentStatusLabels[s]; ok {
		return label
	}

	return string(s)
}

func subscriptionStatusLabel(s models.SubscriptionStatus) string {
	if label, ok := subscriptionStatusLabels[s]; ok {
		return label
	}

	return string(s)
}

// categoryNames indexes category names by ID for row rendering.
func categoryNames(categories []models.Category) map[uuid.UUID]string {
	names := make(map[uuid.UUID]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	return names
}

func categoryName(names map[uuid.UUID]string, id *uuid.UUID) string {
	if id != nil {
		if name, ok := names[*id]; ok {
			return name
		}
	}

	return dashboard.UncategorizedName
}

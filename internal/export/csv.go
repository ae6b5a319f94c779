package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pulso-app/backend/internal/l10n"
	"github.com/pulso-app/backend/internal/models"
)

// utf8BOM keeps Excel from misreading the accented headers.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var installmentCSVHeader = []string{
	"Descrição",
	"Valor Total",
	"Valor Parcela",
	"Parcelas Pagas",
	"Total Parcelas",
	"Dia Vencimento",
	"Data Início",
	"Categoria",
	"Status",
}

var subscriptionCSVHeader = []string{
	"Nome",
	"Valor",
	"Frequência",
	"Dia Cobrança",
	"Data Início",
	"Categoria",
	"Status",
}

// InstallmentsCSV writes all installment plans as CSV.
func InstallmentsCSV(w io.Writer, installments []models.Installment, categories []models.Category) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return err
	}

	names := categoryNames(categories)

	writer := csv.NewWriter(w)
	if err := writer.Write(installmentCSVHeader); err != nil {
		return err
	}

	for _, i := range installments {
		err := writer.Write([]string{
			i.Description,
			l10n.Currency(i.TotalAmount),
			l10n.Currency(i.InstallmentAmount),
			strconv.FormatUint(uint64(i.Paid), 10),
			strconv.FormatUint(uint64(i.Count), 10),
			strconv.Itoa(i.DueDay),
			l10n.Date(i.StartDate),
			categoryName(names, i.CategoryID),
			installmentStatusLabel(i.Status),
		})
		if err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// SubscriptionsCSV writes all subscriptions as CSV.
func SubscriptionsCSV(w io.Writer, subscriptions []models.Subscription, categories []models.Category) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return err
	}

	names := categoryNames(categories)

	writer := csv.NewWriter(w)
	if err := writer.Write(subscriptionCSVHeader); err != nil {
		return err
	}

	for _, s := range subscriptions {
		err := writer.Write([]string{
			s.Name,
			l10n.Currency(s.Amount),
			frequencyLabel(s.Frequency),
			strconv.Itoa(s.BillingDay),
			l10n.Date(s.StartDate),
			categoryName(names, s.CategoryID),
			subscriptionStatusLabel(s.Status),
		})
		if err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

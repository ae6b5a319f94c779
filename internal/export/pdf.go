package export

import (
	"io"
	"strconv"

	"github.com/go-pdf/fpdf"
	"github.com/pulso-app/backend/internal/dashboard"
	"github.com/pulso-app/backend/internal/l10n"
	"github.com/pulso-app/backend/internal/models"
)

// Report writes the monthly report as a PDF. It contains the
// monthly-equivalent summary followed by one table per commitment type,
// active commitments only.
func Report(w io.Writer, snapshot dashboard.Snapshot, filter dashboard.Filter) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr("Relatório Mensal"))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 8, tr("Data: "+l10n.Date(snapshot.Now)))
	pdf.Ln(12)

	totals := snapshot.MonthlyTotals(filter)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, tr("Resumo"))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	summary := [][2]string{
		{"Total em Parcelas (mês)", l10n.Currency(totals.Installments)},
		{"Total em Assinaturas (mês)", l10n.Currency(totals.Subscriptions)},
		{"Total Geral (mês)", l10n.Currency(totals.Total)},
	}
	for _, row := range summary {
		pdf.CellFormat(70, 6, tr(row[0]), "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, tr(row[1]), "", 1, "R", false, 0, "")
	}
	pdf.Ln(6)

	names := categoryNames(snapshot.Categories)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, tr("Parcelamentos"))
	pdf.Ln(8)

	installmentWidths := []float64{60, 30, 25, 25, 50}
	tableHeader(pdf, tr, installmentWidths, []string{"Descrição", "Parcela", "Pagas", "Total", "Categoria"})

	pdf.SetFont("Helvetica", "", 9)
	for _, i := range snapshot.Installments {
		if i.Status != models.InstallmentStatusActive {
			continue
		}

		tableRow(pdf, tr, installmentWidths, []string{
			i.Description,
			l10n.Currency(i.InstallmentAmount),
			strconv.FormatUint(uint64(i.Paid), 10),
			strconv.FormatUint(uint64(i.Count), 10),
			categoryName(names, i.CategoryID),
		})
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, tr("Assinaturas"))
	pdf.Ln(8)

	subscriptionWidths := []float64{60, 30, 30, 70}
	tableHeader(pdf, tr, subscriptionWidths, []string{"Nome", "Valor", "Frequência", "Categoria"})

	pdf.SetFont("Helvetica", "", 9)
	for _, s := range snapshot.Subscriptions {
		if s.Status != models.SubscriptionStatusActive {
			continue
		}

		tableRow(pdf, tr, subscriptionWidths, []string{
			s.Name,
			l10n.Currency(s.Amount),
			frequencyLabel(s.Frequency),
			categoryName(names, s.CategoryID),
		})
	}

	return pdf.Output(w)
}

func tableHeader(pdf *fpdf.Fpdf, tr func(string) string, widths []float64, labels []string) {
	pdf.SetFont("Helvetica", "B", 9)
	for i, label := range labels {
		pdf.CellFormat(widths[i], 6, tr(label), "B", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}

func tableRow(pdf *fpdf.Fpdf, tr func(string) string, widths []float64, cells []string) {
	for i, cell := range cells {
		pdf.CellFormat(widths[i], 6, tr(cell), "", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}

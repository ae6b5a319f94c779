package dashboard

import (
	"fmt"
	"sort"

	"github.com/pulso-app/backend/internal/l10n"
	"github.com/shopspring/decimal"
)

// InsightKind is the tone of an insight.
type InsightKind string

const (
	InsightAlert    InsightKind = "alert"
	InsightTip      InsightKind = "tip"
	InsightPositive InsightKind = "positive"
	InsightInfo     InsightKind = "info"
)

// Insight is one advisory message derived from the aggregated figures.
type Insight struct {
	Code        string      `json:"code" example:"high-spending"`
	Kind        InsightKind `json:"kind" example:"alert"`
	Title       string      `json:"title" example:"Gastos mensais elevados"`
	Description string      `json:"description" example:"Seus compromissos somam R$ 5.200,00 por mês."`

	// Priority orders insights, lower is more urgent.
	Priority int `json:"priority" example:"1"`
}

// Rule thresholds of the insight engine.
var (
	highSpendingThreshold    = decimal.NewFromInt(5000)
	lowSpendingThreshold     = decimal.NewFromInt(1000)
	subscriptionShareCeiling = decimal.NewFromFloat(0.4)
	increaseAlertPercent     = decimal.NewFromInt(20)
	decreasePraisePercent    = decimal.NewFromInt(-10)
)

const (
	manyCommitments = 5
	dueSoonDays     = 3
	maxInsights     = 4
)

// InsightInput is the aggregated material the insight rules evaluate. It
// deliberately contains no raw commitments so the rule table stays
// decoupled from the collections.
type InsightInput struct {
	// Totals is the monthly-equivalent spend.
	Totals Totals

	ActiveInstallments  int
	ActiveSubscriptions int

	// DaysUntilNextDue is nil when no commitment is due.
	DaysUntilNextDue *int

	// History is the trailing spending series, oldest first. The trend
	// rules compare its last two points.
	History []SeriesPoint
}

// BuildInsights evaluates the rule table over the aggregated figures and
// returns at most four insights sorted by priority. Ties keep the rule
// table's order. When no rule fires, a single neutral insight is returned
// so the list is never empty.
func BuildInsights(in InsightInput) []Insight {
	var insights []Insight

	if in.Totals.Total.GreaterThan(highSpendingThreshold) {
		insights = append(insights, Insight{
			Code:        "high-spending",
			Kind:        InsightAlert,
			Title:       "Gastos mensais elevados",
			Description: fmt.Sprintf("Seus compromissos somam %s por mês. Considere revisar quais são essenciais.", l10n.Currency(in.Totals.Total)),
			Priority:    1,
		})
	}

	if in.DaysUntilNextDue != nil && *in.DaysUntilNextDue >= 0 && *in.DaysUntilNextDue <= dueSoonDays {
		days := *in.DaysUntilNextDue

		title := fmt.Sprintf("Vencimento em %d dias", days)
		if days == 0 {
			title = "Vencimento hoje!"
		} else if days == 1 {
			title = "Vencimento em 1 dia"
		}

		insights = append(insights, Insight{
			Code:        "due-soon",
			Kind:        InsightAlert,
			Title:       title,
			Description: "Você tem um compromisso vencendo em breve. Verifique se o pagamento está em dia.",
			Priority:    1,
		})
	}

	if in.Totals.Installments.IsPositive() && in.Totals.Subscriptions.IsPositive() {
		share := in.Totals.Subscriptions.Div(in.Totals.Total)
		if share.GreaterThan(subscriptionShareCeiling) {
			percent := share.Mul(decimal.NewFromInt(100)).Round(0)
			insights = append(insights, Insight{
				Code:        "subscription-ratio",
				Kind:        InsightTip,
				Title:       "Assinaturas dominam seus gastos",
				Description: fmt.Sprintf("%s%% dos seus gastos mensais são assinaturas recorrentes. Vale conferir quais você realmente usa.", percent),
				Priority:    2,
			})
		}
	}

	if variation, ok := trendVariation(in.History); ok {
		if variation.GreaterThan(increaseAlertPercent) {
			insights = append(insights, Insight{
				Code:        "spending-increase",
				Kind:        InsightAlert,
				Title:       fmt.Sprintf("Gastos subiram %s%%", variation.Round(0)),
				Description: "Seus gastos mensais cresceram bastante em relação ao mês anterior.",
				Priority:    2,
			})
		}
	}

	if in.ActiveInstallments > manyCommitments {
		insights = append(insights, Insight{
			Code:        "many-installments",
			Kind:        InsightTip,
			Title:       fmt.Sprintf("%d parcelamentos ativos", in.ActiveInstallments),
			Description: "Muitos parcelamentos ao mesmo tempo dificultam o controle. Tente quitar os menores primeiro.",
			Priority:    3,
		})
	}

	if in.ActiveSubscriptions > manyCommitments {
		insights = append(insights, Insight{
			Code:        "many-subscriptions",
			Kind:        InsightTip,
			Title:       fmt.Sprintf("%d assinaturas ativas", in.ActiveSubscriptions),
			Description: "Pequenas assinaturas somadas pesam no orçamento. Cancele as que você não usa.",
			Priority:    3,
		})
	}

	if variation, ok := trendVariation(in.History); ok {
		if variation.LessThan(decreasePraisePercent) {
			insights = append(insights, Insight{
				Code:        "spending-decrease",
				Kind:        InsightPositive,
				Title:       fmt.Sprintf("Gastos reduziram %s%%", variation.Abs().Round(0)),
				Description: "Seus gastos mensais caíram em relação ao mês anterior. Continue assim!",
				Priority:    4,
			})
		}
	}

	if in.ActiveInstallments == 0 && in.ActiveSubscriptions >= 1 {
		insights = append(insights, Insight{
			Code:        "no-installments",
			Kind:        InsightPositive,
			Title:       "Zero parcelamentos ativos!",
			Description: "Você não tem nenhuma compra parcelada em aberto. Ótimo sinal de controle financeiro.",
			Priority:    5,
		})
	}

	if in.Totals.Total.IsPositive() && in.Totals.Total.LessThanOrEqual(lowSpendingThreshold) {
		insights = append(insights, Insight{
			Code:        "low-spending",
			Kind:        InsightPositive,
			Title:       "Gastos sob controle",
			Description: fmt.Sprintf("Seus compromissos mensais somam %s. Um patamar saudável.", l10n.Currency(in.Totals.Total)),
			Priority:    5,
		})
	}

	if len(insights) == 0 {
		insights = append(insights, Insight{
			Code:        "all-clear",
			Kind:        InsightInfo,
			Title:       "Tudo certo por aqui!",
			Description: "Cadastre seus parcelamentos e assinaturas para receber insights personalizados.",
			Priority:    10,
		})
	}

	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].Priority < insights[j].Priority
	})

	if len(insights) > maxInsights {
		insights = insights[:maxInsights]
	}

	return insights
}

// trendVariation returns the percent change between the last two points of
// the history. The second return value is false when there are fewer than
// two points or the previous total is zero.
func trendVariation(history []SeriesPoint) (decimal.Decimal, bool) {
	if len(history) < 2 {
		return decimal.Zero, false
	}

	previous := history[len(history)-2].Total
	current := history[len(history)-1].Total
	if !previous.IsPositive() {
		return decimal.Zero, false
	}

	return current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100)), true
}

// Insights evaluates the insight rules for a snapshot.
func (s Snapshot) Insights(f Filter) []Insight {
	in := InsightInput{
		Totals:              s.MonthlyTotals(f),
		ActiveInstallments:  len(s.activeInstallments(f)),
		ActiveSubscriptions: len(s.activeSubscriptions(f)),
		History:             s.History(f),
	}

	if next := s.NextDue(f); next != nil {
		days := next.DaysUntil
		in.DaysUntilNextDue = &days
	}

	return BuildInsights(in)
}

package insighting

import (
	"fmt"
	"time"

	"github.com/vfg2006/finance-insights-api/internal/domain"
)

const (
	// chartMonths é o número de meses exibidos no gráfico
	chartMonths = 12
	// recentInsightWindow define quais insights contam como recentes no resumo
	recentInsightWindow = 30 * 24 * time.Hour
	// highRiskLossShare é a fração de meses com prejuízo acima da qual o risco é alto
	highRiskLossShare = 0.3
)

// ProfitView calcula lucro atual, médio, tendência e posição contra o benchmark
func (e *Engine) ProfitView(entries []domain.RevenueEntry) domain.ProfitAnalysis {
	if len(entries) == 0 {
		return domain.ProfitAnalysis{Status: domain.StatusNoData}
	}

	var total float64
	for _, entry := range entries {
		total += entry.NetIncome()
	}

	latest := entries[len(entries)-1]
	first := entries[0].NetIncome()
	current := latest.NetIncome()

	var trend float64
	if len(entries) > 1 && first != 0 {
		trend = (current - first) * 100 / first
	}

	position := domain.PositionUnknown
	if benchmark, ok := e.rules.BenchmarkFor(latest.BusinessType); ok {
		if expected := benchmark.ExpectedProfit(); expected != 0 {
			position = fmt.Sprintf("%+.1f%% vs industry average", (current-expected)*100/expected)
		}
	}

	var margin float64
	if latest.Revenue > 0 {
		margin = current / latest.Revenue * 100
	}

	return domain.ProfitAnalysis{
		CurrentProfit:       current,
		AverageProfit:       total / float64(len(entries)),
		ProfitTrend:         trend,
		CompetitivePosition: position,
		MonthsData:          len(entries),
		ProfitMargin:        margin,
	}
}

// LossView agrega os meses em que as despesas superaram a receita
func LossView(entries []domain.RevenueEntry) domain.LossAnalysis {
	if len(entries) == 0 {
		return domain.LossAnalysis{Status: domain.StatusNoData}
	}

	var (
		total      float64
		biggest    float64
		lossMonths int
	)
	for _, entry := range entries {
		loss := entry.Loss()
		total += loss
		biggest = max(biggest, loss)
		if loss > 0 {
			lossMonths++
		}
	}

	trend := domain.LossTrendStable
	if len(entries) > 1 && entries[len(entries)-1].Loss() < entries[0].Loss() {
		trend = domain.LossTrendImproving
	}

	risk := domain.RiskLow
	if float64(lossMonths) > float64(len(entries))*highRiskLossShare {
		risk = domain.RiskHigh
	}

	return domain.LossAnalysis{
		TotalLosses:     total,
		LossMonthsCount: lossMonths,
		BiggestLoss:     biggest,
		LossTrend:       trend,
		RiskLevel:       risk,
	}
}

// TaxView recalcula o imposto de cada registro com regra aplicável.
// Registros sem regra ficam fora dos totais.
func (e *Engine) TaxView(entries []domain.RevenueEntry) domain.TaxAnalysis {
	if len(entries) == 0 {
		return domain.TaxAnalysis{Status: domain.StatusNoData}
	}

	breakdown := make([]domain.TaxBreakdownItem, 0, len(entries))
	var (
		totalTax   float64
		totalRates float64
		split      domain.ServiceVsProduct
	)
	for _, entry := range entries {
		assessment, ok := e.AssessTax(entry)
		if !ok {
			continue
		}

		item := domain.TaxBreakdownItem{
			Month:     entry.Month,
			TaxAmount: assessment.Tax,
			TaxRate:   assessment.Rule.Rate * 100,
			TaxType:   entry.TaxType,
		}
		breakdown = append(breakdown, item)
		totalTax += item.TaxAmount
		totalRates += item.TaxRate

		switch entry.TaxType {
		case domain.TaxTypeService:
			split.ServiceMonths++
		case domain.TaxTypeProduct:
			split.ProductMonths++
		}
	}

	var avgRate float64
	if len(breakdown) > 0 {
		avgRate = totalRates / float64(len(breakdown))
	}

	efficiency := domain.PositionUnknown
	latest := entries[len(entries)-1]
	if benchmark, ok := e.rules.BenchmarkFor(latest.BusinessType); ok && len(breakdown) > 0 {
		if breakdown[len(breakdown)-1].TaxRate < benchmark.AvgTaxRate*100 {
			efficiency = domain.TaxEfficiencyBetter
		} else {
			efficiency = domain.TaxEfficiencyNeedsImprovement
		}
	}

	return domain.TaxAnalysis{
		TotalTaxPaid:     totalTax,
		AverageTaxRate:   avgRate,
		TaxEfficiency:    efficiency,
		MonthlyBreakdown: breakdown,
		ServiceVsProduct: split,
	}
}

// SummaryView soma receitas e despesas e conta os insights dos últimos 30 dias
func SummaryView(entries []domain.RevenueEntry, insights []domain.Insight, now time.Time) domain.FinancialSummary {
	if len(entries) == 0 {
		return domain.FinancialSummary{Status: domain.StatusNoData}
	}

	var revenue, expenses float64
	for _, entry := range entries {
		revenue += entry.Revenue
		expenses += entry.Expenses
	}

	cutoff := now.Add(-recentInsightWindow)
	recent := 0
	for _, insight := range insights {
		if insight.CreatedAt.After(cutoff) {
			recent++
		}
	}

	latest := entries[len(entries)-1]
	return domain.FinancialSummary{
		LatestMonth:    latest.Month,
		LatestRevenue:  latest.Revenue,
		LatestExpenses: latest.Expenses,
		TotalRevenue:   revenue,
		TotalExpenses:  expenses,
		NetProfit:      revenue - expenses,
		MonthsTracked:  len(entries),
		RecentInsights: recent,
	}
}

// ChartView retorna as séries dos últimos 12 registros
func ChartView(entries []domain.RevenueEntry) domain.ChartData {
	start := max(len(entries)-chartMonths, 0)
	window := entries[start:]

	data := domain.ChartData{
		Months:   make([]string, 0, len(window)),
		Revenue:  make([]float64, 0, len(window)),
		Expenses: make([]float64, 0, len(window)),
	}
	for _, entry := range window {
		data.Months = append(data.Months, entry.Month)
		data.Revenue = append(data.Revenue, entry.Revenue)
		data.Expenses = append(data.Expenses, entry.Expenses)
	}
	return data
}

package insighting

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/finance-insights-api/internal/domain"
	"github.com/vfg2006/finance-insights-api/internal/rules"
)

// strugglingBusiness reproduz o dataset de varejo com um mês de prejuízo
func strugglingBusiness() []domain.RevenueEntry {
	entry := func(month string, revenue, expenses, service, product float64) domain.RevenueEntry {
		return domain.RevenueEntry{
			Month:          month,
			Revenue:        revenue,
			Expenses:       expenses,
			BusinessType:   domain.BusinessTypeRetail,
			TaxType:        domain.TaxTypeProduct,
			ServiceRevenue: service,
			ProductRevenue: product,
		}
	}
	return []domain.RevenueEntry{
		entry("2024-01", 35000, 32000, 5000, 30000),
		entry("2024-02", 28000, 35000, 3000, 25000),
		entry("2024-03", 32000, 30000, 4000, 28000),
		entry("2024-04", 38000, 33000, 6000, 32000),
	}
}

func TestViews_NoData(t *testing.T) {
	engine := newTestEngine()

	assert.Equal(t, domain.StatusNoData, engine.ProfitView(nil).Status)
	assert.Equal(t, domain.StatusNoData, LossView(nil).Status)
	assert.Equal(t, domain.StatusNoData, engine.TaxView(nil).Status)
	assert.Equal(t, domain.StatusNoData, SummaryView(nil, nil, testNow).Status)
	assert.Empty(t, ChartView(nil).Months)
}

func TestProfitView(t *testing.T) {
	engine := newTestEngine()

	got := engine.ProfitView(strugglingBusiness())

	assert.Empty(t, got.Status)
	assert.Equal(t, 5000.0, got.CurrentProfit)
	assert.Equal(t, 750.0, got.AverageProfit)
	assert.InDelta(t, (5000.0-3000.0)*100/3000.0, got.ProfitTrend, 1e-9)
	assert.Equal(t, "-7.4% vs industry average", got.CompetitivePosition)
	assert.Equal(t, 4, got.MonthsData)
	assert.InDelta(t, 5000.0/38000.0*100, got.ProfitMargin, 1e-9)
}

func TestProfitView_Guards(t *testing.T) {
	engine := newTestEngine()

	single := engine.ProfitView([]domain.RevenueEntry{retailEntry("2024-01", 0, 0)})
	assert.Equal(t, 0.0, single.ProfitTrend, "menos de dois meses")
	assert.Equal(t, 0.0, single.ProfitMargin, "receita zero")

	zeroFirst := engine.ProfitView([]domain.RevenueEntry{
		retailEntry("2024-01", 30000, 30000),
		retailEntry("2024-02", 40000, 30000),
	})
	assert.Equal(t, 0.0, zeroFirst.ProfitTrend, "primeiro lucro zero")

	got := NewEngine(rules.New(rules.DefaultTaxRules(), nil), "₹").ProfitView(strugglingBusiness())
	assert.Equal(t, domain.PositionUnknown, got.CompetitivePosition)
}

func TestLossView(t *testing.T) {
	got := LossView(strugglingBusiness())

	assert.Equal(t, 7000.0, got.TotalLosses)
	assert.Equal(t, 1, got.LossMonthsCount)
	assert.Equal(t, 7000.0, got.BiggestLoss)
	assert.Equal(t, domain.LossTrendStable, got.LossTrend)
	assert.Equal(t, domain.RiskLow, got.RiskLevel)
}

func TestLossView_ImprovingAndHighRisk(t *testing.T) {
	got := LossView([]domain.RevenueEntry{
		retailEntry("2024-01", 20000, 30000),
		retailEntry("2024-02", 25000, 28000),
		retailEntry("2024-03", 30000, 31000),
	})

	assert.Equal(t, 14000.0, got.TotalLosses)
	assert.Equal(t, 3, got.LossMonthsCount)
	assert.Equal(t, 10000.0, got.BiggestLoss)
	assert.Equal(t, domain.LossTrendImproving, got.LossTrend)
	assert.Equal(t, domain.RiskHigh, got.RiskLevel)

	single := LossView([]domain.RevenueEntry{retailEntry("2024-01", 20000, 30000)})
	assert.Equal(t, domain.LossTrendStable, single.LossTrend)
}

func TestTaxView(t *testing.T) {
	engine := newTestEngine()
	entries := strugglingBusiness()

	got := engine.TaxView(entries)

	require.Len(t, got.MonthlyBreakdown, 3, "o mês com prejuízo não tem faixa")
	assert.Equal(t, []string{"2024-01", "2024-03", "2024-04"}, []string{
		got.MonthlyBreakdown[0].Month, got.MonthlyBreakdown[1].Month, got.MonthlyBreakdown[2].Month,
	})

	var want float64
	for _, entry := range entries {
		if a, ok := engine.AssessTax(entry); ok {
			want += a.Tax
		}
	}
	assert.InDelta(t, want, got.TotalTaxPaid, 1e-9)
	assert.InDelta(t, -600.0, got.TotalTaxPaid, 1e-6)
	assert.InDelta(t, 12.0, got.AverageTaxRate, 1e-9)
	assert.Equal(t, domain.TaxEfficiencyBetter, got.TaxEfficiency)
	assert.Equal(t, domain.ServiceVsProduct{ServiceMonths: 0, ProductMonths: 3}, got.ServiceVsProduct)
}

func TestTaxView_EfficiencyLabels(t *testing.T) {
	engine := newTestEngine()

	// serviços: 28% contra média do setor de 22%
	needs := engine.TaxView([]domain.RevenueEntry{servicesEntry("2024-01", 150000, 0)})
	assert.Equal(t, domain.TaxEfficiencyNeedsImprovement, needs.TaxEfficiency)
	assert.Equal(t, 1, needs.ServiceVsProduct.ServiceMonths)

	unknown := engine.TaxView([]domain.RevenueEntry{retailEntry("2024-02", 28000, 35000)})
	assert.Equal(t, domain.PositionUnknown, unknown.TaxEfficiency)
	assert.Empty(t, unknown.MonthlyBreakdown)
	assert.Equal(t, 0.0, unknown.AverageTaxRate)
}

func TestSummaryView(t *testing.T) {
	insights := []domain.Insight{
		{Type: domain.InsightTypeTax, CreatedAt: testNow.Add(-40 * 24 * time.Hour)},
		{Type: domain.InsightTypeTrend, CreatedAt: testNow.Add(-time.Hour)},
		{Type: domain.InsightTypeCompetitive, CreatedAt: testNow},
	}

	got := SummaryView(strugglingBusiness(), insights, testNow)

	assert.Equal(t, "2024-04", got.LatestMonth)
	assert.Equal(t, 38000.0, got.LatestRevenue)
	assert.Equal(t, 33000.0, got.LatestExpenses)
	assert.Equal(t, 133000.0, got.TotalRevenue)
	assert.Equal(t, 130000.0, got.TotalExpenses)
	assert.Equal(t, 3000.0, got.NetProfit)
	assert.Equal(t, 4, got.MonthsTracked)
	assert.Equal(t, 2, got.RecentInsights)
}

func TestChartView_LastTwelve(t *testing.T) {
	entries := make([]domain.RevenueEntry, 0, 14)
	for i := 1; i <= 14; i++ {
		entries = append(entries, retailEntry(fmt.Sprintf("m%02d", i), float64(i*1000), float64(i*500)))
	}

	got := ChartView(entries)

	require.Len(t, got.Months, 12)
	assert.Equal(t, "m03", got.Months[0])
	assert.Equal(t, "m14", got.Months[11])
	assert.Equal(t, 14000.0, got.Revenue[11])
	assert.Equal(t, 7000.0, got.Expenses[11])
}

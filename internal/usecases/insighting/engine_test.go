package insighting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/finance-insights-api/internal/domain"
	"github.com/vfg2006/finance-insights-api/internal/rules"
)

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestEngine() *Engine {
	return NewEngine(rules.Default(), "₹")
}

func servicesEntry(month string, revenue, expenses float64) domain.RevenueEntry {
	return domain.RevenueEntry{
		Month:          month,
		Revenue:        revenue,
		Expenses:       expenses,
		BusinessType:   domain.BusinessTypeServices,
		TaxType:        domain.TaxTypeService,
		ServiceRevenue: revenue,
	}
}

func retailEntry(month string, revenue, expenses float64) domain.RevenueEntry {
	return domain.RevenueEntry{
		Month:        month,
		Revenue:      revenue,
		Expenses:     expenses,
		BusinessType: domain.BusinessTypeRetail,
		TaxType:      domain.TaxTypeProduct,
	}
}

func TestAnalyzeTaxImpact(t *testing.T) {
	engine := newTestEngine()

	insight := engine.AnalyzeTaxImpact(servicesEntry("2024-02", 45000, 29000), testNow)
	require.NotNil(t, insight)

	assert.Equal(t, domain.InsightTypeTax, insight.Type)
	assert.Equal(t, "Service Tax: ₹2,880.00", insight.Title)
	assert.Equal(t, "Based on service tax rate of 18.0%, you'll pay ₹2,880.00 (6.4% of revenue)", insight.Description)
	assert.Equal(t, "Tax burden represents 6.4% of total revenue", insight.Impact)
	assert.Equal(t, recommendTaxOptimal, insight.Recommendation)
	assert.Equal(t, 0.9, insight.Confidence)
	assert.Equal(t, testNow, insight.CreatedAt)
}

func TestAssessTax(t *testing.T) {
	engine := newTestEngine()

	tests := []struct {
		name    string
		entry   domain.RevenueEntry
		wantOK  bool
		wantTax float64
		wantPct float64
	}{
		{
			name:    "base de produto informada",
			entry:   domain.RevenueEntry{Month: "2023-08", Revenue: 38000, Expenses: 28000, BusinessType: domain.BusinessTypeRetail, TaxType: domain.TaxTypeProduct, ServiceRevenue: 5000, ProductRevenue: 33000},
			wantOK:  true,
			wantTax: (33000 - 28000) * 0.12,
			wantPct: (33000 - 28000) * 0.12 / 38000 * 100,
		},
		{
			name:    "sub-receita zerada usa receita total",
			entry:   retailEntry("2024-01", 42000, 28000),
			wantOK:  true,
			wantTax: (42000 - 28000) * 0.12,
			wantPct: (42000 - 28000) * 0.12 / 42000 * 100,
		},
		{
			name:    "receita zero usa percentual sentinela",
			entry:   retailEntry("2024-01", 0, 0),
			wantOK:  true,
			wantTax: 0,
			wantPct: 0,
		},
		{
			name:   "prejuízo não casa com nenhuma faixa",
			entry:  retailEntry("2024-02", 28000, 35000),
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := engine.AssessTax(tt.entry)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				assert.Nil(t, engine.AnalyzeTaxImpact(tt.entry, testNow))
				return
			}
			assert.InDelta(t, tt.wantTax, got.Tax, 1e-6)
			assert.InDelta(t, tt.wantPct, got.Percentage, 1e-6)
		})
	}
}

func TestAnalyzeTaxImpact_HighBurden(t *testing.T) {
	engine := newTestEngine()

	// lucro de 150000 cai na faixa de 28%
	insight := engine.AnalyzeTaxImpact(servicesEntry("2024-05", 150000, 0), testNow)
	require.NotNil(t, insight)

	assert.Equal(t, "Service Tax: ₹42,000.00", insight.Title)
	assert.Equal(t, "Tax burden represents 28.0% of total revenue", insight.Impact)
	assert.Equal(t, recommendTaxOptimization, insight.Recommendation)
}

func TestAssessTrend(t *testing.T) {
	engine := newTestEngine()

	tests := []struct {
		name       string
		revenues   []float64
		wantOK     bool
		wantGrowth float64
		wantTrend  string
	}{
		{name: "crescimento forte", revenues: []float64{25000, 32000, 45000}, wantOK: true, wantGrowth: 80, wantTrend: TrendStrongGrowth},
		{name: "queda com dois meses", revenues: []float64{35000, 28000}, wantOK: true, wantGrowth: -20, wantTrend: TrendDeclining},
		{name: "janela usa só os três últimos", revenues: []float64{1, 32000, 45000, 58000}, wantOK: true, wantGrowth: 81.25, wantTrend: TrendStrongGrowth},
		{name: "moderado", revenues: []float64{50000, 52000}, wantOK: true, wantGrowth: 4, wantTrend: TrendModerateGrowth},
		{name: "exatamente 10 é moderado", revenues: []float64{50000, 55000}, wantOK: true, wantGrowth: 10, wantTrend: TrendModerateGrowth},
		{name: "estável é queda", revenues: []float64{40000, 40000}, wantOK: true, wantGrowth: 0, wantTrend: TrendDeclining},
		{name: "um único mês", revenues: []float64{40000}, wantOK: false},
		{name: "base zero", revenues: []float64{0, 10000, 20000}, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			history := make([]domain.RevenueEntry, 0, len(tt.revenues))
			for _, r := range tt.revenues {
				history = append(history, servicesEntry("m", r, 0))
			}

			got, ok := engine.AssessTrend(history)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				assert.Nil(t, engine.AnalyzeTrend(history, testNow))
				return
			}
			assert.InDelta(t, tt.wantGrowth, got.GrowthRate, 1e-9)
			assert.Equal(t, tt.wantTrend, got.Trend)
			assert.LessOrEqual(t, len(got.Window), 3)
		})
	}
}

func TestAnalyzeTrend_Texts(t *testing.T) {
	engine := newTestEngine()

	history := []domain.RevenueEntry{
		servicesEntry("2024-01", 25000, 20000),
		servicesEntry("2024-02", 32000, 22000),
		servicesEntry("2024-03", 45000, 28000),
	}

	insight := engine.AnalyzeTrend(history, testNow)
	require.NotNil(t, insight)
	assert.Equal(t, domain.InsightTypeTrend, insight.Type)
	assert.Equal(t, "Revenue Trend: +80.0%", insight.Title)
	assert.Equal(t, "Revenue shows strong growth with +80.0% change over recent periods", insight.Description)
	assert.Equal(t, "Current trajectory suggests strong growth business performance", insight.Impact)
	assert.Equal(t, recommendScale, insight.Recommendation)
	assert.Equal(t, 0.8, insight.Confidence)
}

func TestCompareWithBenchmark_Boundaries(t *testing.T) {
	engine := newTestEngine()

	tests := []struct {
		name        string
		revenue     float64
		wantDelta   float64
		performance string
	}{
		{name: "igual à média", revenue: 45000, wantDelta: 0, performance: PerformanceUnderperforming},
		{name: "logo acima da média", revenue: 45000.01, wantDelta: 0.01 * 100 / 45000, performance: PerformanceOutperforming},
		{name: "exatamente +20", revenue: 54000, wantDelta: 20, performance: PerformanceOutperforming},
		{name: "acima de +20", revenue: 54001, wantDelta: 9001.0 * 100 / 45000, performance: PerformanceSignificantlyOutperforming},
		{name: "exatamente -20", revenue: 36000, wantDelta: -20, performance: PerformanceSignificantlyUnderperforming},
		{name: "logo acima de -20", revenue: 36001, wantDelta: -8999.0 * 100 / 45000, performance: PerformanceUnderperforming},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := engine.CompareWithBenchmark(retailEntry("2024-01", tt.revenue, 0))
			require.True(t, ok)
			assert.InDelta(t, tt.wantDelta, got.Delta, 1e-9)
			assert.Equal(t, tt.performance, got.Performance)
		})
	}
}

func TestAnalyzeCompetition(t *testing.T) {
	engine := newTestEngine()

	insight := engine.AnalyzeCompetition(retailEntry("2024-01", 45000, 30000), testNow)
	require.NotNil(t, insight)

	assert.Equal(t, domain.InsightTypeCompetitive, insight.Type)
	assert.Equal(t, "vs Competitors: +0.0%", insight.Title)
	assert.Equal(t, "Your revenue of ₹45,000.00 is underperforming compared to industry average of ₹45,000.00", insight.Description)
	assert.Equal(t, "Market position: underperforming by 0.0%", insight.Impact)
	assert.Equal(t, recommendOptimize, insight.Recommendation)
	assert.Equal(t, 0.75, insight.Confidence)
}

func TestAnalyzeCompetition_Skips(t *testing.T) {
	noBenchmarks := NewEngine(rules.New(rules.DefaultTaxRules(), nil), "₹")
	assert.Nil(t, noBenchmarks.AnalyzeCompetition(retailEntry("2024-01", 45000, 0), testNow))

	zeroAverage := NewEngine(rules.New(nil, []domain.CompetitorBenchmark{
		{BusinessType: domain.BusinessTypeRetail, AvgMonthlyRevenue: 0},
	}), "₹")
	assert.Nil(t, zeroAverage.AnalyzeCompetition(retailEntry("2024-01", 45000, 0), testNow))
}

func TestAnalyze_Order(t *testing.T) {
	engine := newTestEngine()

	single := []domain.RevenueEntry{servicesEntry("2024-01", 25000, 20000)}
	insights := engine.Analyze(single, testNow)
	require.Len(t, insights, 2)
	assert.Equal(t, domain.InsightTypeTax, insights[0].Type)
	assert.Equal(t, domain.InsightTypeCompetitive, insights[1].Type)

	two := append(single, servicesEntry("2024-02", 32000, 22000))
	insights = engine.Analyze(two, testNow)
	require.Len(t, insights, 3)
	assert.Equal(t, domain.InsightTypeTax, insights[0].Type)
	assert.Equal(t, domain.InsightTypeTrend, insights[1].Type)
	assert.Equal(t, domain.InsightTypeCompetitive, insights[2].Type)

	// mês com prejuízo não tem faixa de imposto
	loss := []domain.RevenueEntry{retailEntry("2024-02", 28000, 35000)}
	insights = engine.Analyze(loss, testNow)
	require.Len(t, insights, 1)
	assert.Equal(t, domain.InsightTypeCompetitive, insights[0].Type)

	assert.Empty(t, engine.Analyze(nil, testNow))
}

func TestEngine_CurrencySymbol(t *testing.T) {
	engine := NewEngine(nil, "$")
	insight := engine.AnalyzeCompetition(retailEntry("2024-01", 1234567.891, 0), testNow)
	require.NotNil(t, insight)
	assert.Contains(t, insight.Description, "$1,234,567.89")
}

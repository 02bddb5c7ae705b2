package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/finance-insights-api/internal/domain"
)

func TestMatchTaxRule(t *testing.T) {
	tables := Default()

	tests := []struct {
		name     string
		entry    domain.RevenueEntry
		wantRate float64
		wantOK   bool
	}{
		{
			name:     "serviços pequeno porte",
			entry:    domain.RevenueEntry{Revenue: 45000, Expenses: 29000, BusinessType: domain.BusinessTypeServices, TaxType: domain.TaxTypeService},
			wantRate: 0.18,
			wantOK:   true,
		},
		{
			name:     "serviços médio porte",
			entry:    domain.RevenueEntry{Revenue: 130000, Expenses: 20000, BusinessType: domain.BusinessTypeServices, TaxType: domain.TaxTypeService},
			wantRate: 0.28,
			wantOK:   true,
		},
		{
			name:     "fronteira 50000 fica com a primeira faixa",
			entry:    domain.RevenueEntry{Revenue: 80000, Expenses: 30000, BusinessType: domain.BusinessTypeRetail, TaxType: domain.TaxTypeProduct},
			wantRate: 0.12,
			wantOK:   true,
		},
		{
			name:   "lucro negativo fica fora das faixas",
			entry:  domain.RevenueEntry{Revenue: 28000, Expenses: 35000, BusinessType: domain.BusinessTypeRetail, TaxType: domain.TaxTypeProduct},
			wantOK: false,
		},
		{
			name:   "combinação sem regra",
			entry:  domain.RevenueEntry{Revenue: 50000, Expenses: 10000, BusinessType: domain.BusinessTypeRetail, TaxType: domain.TaxTypeService},
			wantOK: false,
		},
		{
			name:   "acima da maior faixa",
			entry:  domain.RevenueEntry{Revenue: 500000, Expenses: 10000, BusinessType: domain.BusinessTypeTechnology, TaxType: domain.TaxTypeService},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, ok := tables.MatchTaxRule(tt.entry)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantRate, rule.Rate)
				assert.True(t, rule.Matches(tt.entry))
			}
		})
	}
}

func TestMatchTaxRule_FirstMatchWins(t *testing.T) {
	tables := New([]domain.TaxRule{
		{BusinessType: domain.BusinessTypeRetail, TaxType: domain.TaxTypeProduct, BracketMin: 0, BracketMax: 100, Rate: 0.1, Description: "primeira"},
		{BusinessType: domain.BusinessTypeServices, TaxType: domain.TaxTypeService, BracketMin: 0, BracketMax: 100, Rate: 0.3, Description: "outro segmento"},
		{BusinessType: domain.BusinessTypeRetail, TaxType: domain.TaxTypeProduct, BracketMin: 50, BracketMax: 200, Rate: 0.2, Description: "sobreposta"},
	}, nil)

	entry := domain.RevenueEntry{Revenue: 100, Expenses: 25, BusinessType: domain.BusinessTypeRetail, TaxType: domain.TaxTypeProduct}
	rule, ok := tables.MatchTaxRule(entry)
	require.True(t, ok)
	assert.Equal(t, "primeira", rule.Description)

	// a busca indexada deve concordar com a varredura linear
	for _, r := range tables.TaxRules() {
		if r.Matches(entry) {
			assert.Equal(t, r, rule)
			break
		}
	}

	entry.Expenses = 0
	rule, ok = tables.MatchTaxRule(entry)
	require.True(t, ok)
	assert.Equal(t, "primeira", rule.Description, "fronteira inclusiva em 100")

	entry.Revenue = 150
	rule, ok = tables.MatchTaxRule(entry)
	require.True(t, ok)
	assert.Equal(t, "sobreposta", rule.Description)
}

func TestBenchmarkFor(t *testing.T) {
	tables := Default()

	b, ok := tables.BenchmarkFor(domain.BusinessTypeRetail)
	require.True(t, ok)
	assert.Equal(t, 45000.0, b.AvgMonthlyRevenue)
	assert.InDelta(t, 5400.0, b.ExpectedProfit(), 1e-9)

	_, ok = New(nil, nil).BenchmarkFor(domain.BusinessTypeRetail)
	assert.False(t, ok)
}

func TestTables_ReturnCopies(t *testing.T) {
	tables := Default()

	list := tables.TaxRules()
	list[0].Rate = 0.99

	assert.Equal(t, 0.18, tables.TaxRules()[0].Rate)
	assert.Len(t, tables.Benchmarks(), 4)
}

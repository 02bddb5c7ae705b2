package dataset

import (
	"slices"

	"github.com/vfg2006/finance-insights-api/internal/domain"
)

const (
	SampleComprehensive      = "comprehensive"
	SampleGrowthStory        = "growth_story"
	SampleStrugglingBusiness = "struggling_business"
	SampleDemo               = "demo"
)

type sampleRow struct {
	month          string
	revenue        float64
	expenses       float64
	businessType   domain.BusinessType
	taxType        domain.TaxType
	serviceRevenue float64
	productRevenue float64
}

var samples = map[string][]sampleRow{
	SampleComprehensive: {
		{"2023-08", 38000, 28000, domain.BusinessTypeRetail, domain.TaxTypeProduct, 5000, 33000},
		{"2023-09", 42000, 30000, domain.BusinessTypeRetail, domain.TaxTypeProduct, 6000, 36000},
		{"2023-10", 45000, 32000, domain.BusinessTypeServices, domain.TaxTypeService, 45000, 0},
		{"2023-11", 48000, 33000, domain.BusinessTypeServices, domain.TaxTypeService, 48000, 0},
		{"2023-12", 52000, 35000, domain.BusinessTypeTechnology, domain.TaxTypeService, 52000, 0},
		{"2024-01", 55000, 36000, domain.BusinessTypeTechnology, domain.TaxTypeService, 55000, 0},
		{"2024-02", 58000, 38000, domain.BusinessTypeRetail, domain.TaxTypeProduct, 8000, 50000},
		{"2024-03", 62000, 40000, domain.BusinessTypeRetail, domain.TaxTypeProduct, 10000, 52000},
	},
	SampleGrowthStory: {
		{"2024-01", 25000, 20000, domain.BusinessTypeServices, domain.TaxTypeService, 25000, 0},
		{"2024-02", 32000, 22000, domain.BusinessTypeServices, domain.TaxTypeService, 32000, 0},
		{"2024-03", 45000, 28000, domain.BusinessTypeServices, domain.TaxTypeService, 45000, 0},
		{"2024-04", 58000, 35000, domain.BusinessTypeServices, domain.TaxTypeService, 58000, 0},
	},
	SampleStrugglingBusiness: {
		{"2024-01", 35000, 32000, domain.BusinessTypeRetail, domain.TaxTypeProduct, 5000, 30000},
		{"2024-02", 28000, 35000, domain.BusinessTypeRetail, domain.TaxTypeProduct, 3000, 25000}, // mês com prejuízo
		{"2024-03", 32000, 30000, domain.BusinessTypeRetail, domain.TaxTypeProduct, 4000, 28000},
		{"2024-04", 38000, 33000, domain.BusinessTypeRetail, domain.TaxTypeProduct, 6000, 32000},
	},
	SampleDemo: {
		{"2024-01", 42000, 28000, domain.BusinessTypeRetail, domain.TaxTypeProduct, 0, 42000},
		{"2024-02", 45000, 29000, domain.BusinessTypeServices, domain.TaxTypeService, 45000, 0},
		{"2024-03", 48000, 30000, domain.BusinessTypeRetail, domain.TaxTypeProduct, 0, 48000},
		{"2024-04", 52000, 31000, domain.BusinessTypeServices, domain.TaxTypeService, 52000, 0},
	},
}

// SampleNames lista os datasets de exemplo em ordem alfabética
func SampleNames() []string {
	names := make([]string, 0, len(samples))
	for name := range samples {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Sample retorna uma cópia dos registros do dataset de exemplo
func Sample(name string) ([]domain.RevenueEntry, bool) {
	rows, ok := samples[name]
	if !ok {
		return nil, false
	}

	entries := make([]domain.RevenueEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, domain.RevenueEntry{
			Month:          r.month,
			Revenue:        r.revenue,
			Expenses:       r.expenses,
			BusinessType:   r.businessType,
			TaxType:        r.taxType,
			ServiceRevenue: r.serviceRevenue,
			ProductRevenue: r.productRevenue,
		})
	}
	return entries, true
}

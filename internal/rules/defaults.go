package rules

import "github.com/vfg2006/finance-insights-api/internal/domain"

// DefaultTaxRules é a tabela de faixas padrão. A ordem importa: a primeira regra que casa vence.
func DefaultTaxRules() []domain.TaxRule {
	return []domain.TaxRule{
		// Imposto sobre serviços
		{BusinessType: domain.BusinessTypeServices, TaxType: domain.TaxTypeService, BracketMin: 0, BracketMax: 50000, Rate: 0.18, Description: "Service tax - Small business"},
		{BusinessType: domain.BusinessTypeServices, TaxType: domain.TaxTypeService, BracketMin: 50000, BracketMax: 200000, Rate: 0.28, Description: "Service tax - Medium business"},
		{BusinessType: domain.BusinessTypeTechnology, TaxType: domain.TaxTypeService, BracketMin: 0, BracketMax: 100000, Rate: 0.20, Description: "Tech service tax"},

		// Imposto sobre produtos
		{BusinessType: domain.BusinessTypeRetail, TaxType: domain.TaxTypeProduct, BracketMin: 0, BracketMax: 50000, Rate: 0.12, Description: "Product tax - Small retail"},
		{BusinessType: domain.BusinessTypeRetail, TaxType: domain.TaxTypeProduct, BracketMin: 50000, BracketMax: 200000, Rate: 0.18, Description: "Product tax - Medium retail"},
		{BusinessType: domain.BusinessTypeManufacturing, TaxType: domain.TaxTypeProduct, BracketMin: 0, BracketMax: 100000, Rate: 0.15, Description: "Manufacturing product tax"},
	}
}

// DefaultBenchmarks tem um benchmark por segmento
func DefaultBenchmarks() []domain.CompetitorBenchmark {
	return []domain.CompetitorBenchmark{
		{BusinessType: domain.BusinessTypeRetail, AvgMonthlyRevenue: 45000, AvgProfitMargin: 0.12, AvgTaxRate: 0.15, MarketSegment: "local", DataSource: "industry_report"},
		{BusinessType: domain.BusinessTypeServices, AvgMonthlyRevenue: 65000, AvgProfitMargin: 0.25, AvgTaxRate: 0.22, MarketSegment: "regional", DataSource: "market_analysis"},
		{BusinessType: domain.BusinessTypeTechnology, AvgMonthlyRevenue: 120000, AvgProfitMargin: 0.35, AvgTaxRate: 0.20, MarketSegment: "startup", DataSource: "tech_survey"},
		{BusinessType: domain.BusinessTypeManufacturing, AvgMonthlyRevenue: 85000, AvgProfitMargin: 0.18, AvgTaxRate: 0.15, MarketSegment: "industrial", DataSource: "manufacturing_report"},
	}
}

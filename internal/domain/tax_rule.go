package domain

// TaxRule aplica uma alíquota a uma faixa de lucro líquido, inclusiva nas duas pontas
type TaxRule struct {
	BusinessType BusinessType `json:"business_type" yaml:"business_type"`
	TaxType      TaxType      `json:"tax_type" yaml:"tax_type"`
	BracketMin   float64      `json:"income_bracket_min" yaml:"income_bracket_min"`
	BracketMax   float64      `json:"income_bracket_max" yaml:"income_bracket_max"`
	Rate         float64      `json:"tax_rate" yaml:"tax_rate"`
	Description  string       `json:"description" yaml:"description"`
}

// Contains indica se o lucro líquido está dentro da faixa
func (r TaxRule) Contains(netIncome float64) bool {
	return r.BracketMin <= netIncome && netIncome <= r.BracketMax
}

// Matches indica se a regra se aplica ao registro
func (r TaxRule) Matches(entry RevenueEntry) bool {
	return r.BusinessType == entry.BusinessType &&
		r.TaxType == entry.TaxType &&
		r.Contains(entry.NetIncome())
}

// CompetitorBenchmark guarda as médias do setor para um segmento
type CompetitorBenchmark struct {
	BusinessType      BusinessType `json:"business_type" yaml:"business_type"`
	AvgMonthlyRevenue float64      `json:"avg_monthly_revenue" yaml:"avg_monthly_revenue"`
	AvgProfitMargin   float64      `json:"avg_profit_margin" yaml:"avg_profit_margin"`
	AvgTaxRate        float64      `json:"avg_tax_rate" yaml:"avg_tax_rate"`
	MarketSegment     string       `json:"market_segment" yaml:"market_segment"`
	DataSource        string       `json:"data_source" yaml:"data_source"`
}

// ExpectedProfit é o lucro mensal esperado para o segmento
func (b CompetitorBenchmark) ExpectedProfit() float64 {
	return b.AvgMonthlyRevenue * b.AvgProfitMargin
}

package domain

import "time"

// StatusNoData é retornado pelas análises quando não há histórico
const StatusNoData = "No data"

const (
	PositionUnknown = "Unknown"

	LossTrendImproving = "Improving"
	LossTrendStable    = "Stable"

	RiskHigh = "High"
	RiskLow  = "Low"

	TaxEfficiencyBetter           = "Better"
	TaxEfficiencyNeedsImprovement = "Needs Improvement"
)

type ProfitAnalysis struct {
	Status              string  `json:"status,omitempty"`
	CurrentProfit       float64 `json:"current_profit"`
	AverageProfit       float64 `json:"average_profit"`
	ProfitTrend         float64 `json:"profit_trend"`
	CompetitivePosition string  `json:"competitive_position"`
	MonthsData          int     `json:"months_data"`
	ProfitMargin        float64 `json:"profit_margin"`
}

type LossAnalysis struct {
	Status          string  `json:"status,omitempty"`
	TotalLosses     float64 `json:"total_losses"`
	LossMonthsCount int     `json:"loss_months_count"`
	BiggestLoss     float64 `json:"biggest_loss"`
	LossTrend       string  `json:"loss_trend"`
	RiskLevel       string  `json:"risk_level"`
}

type TaxBreakdownItem struct {
	Month     string  `json:"month"`
	TaxAmount float64 `json:"tax_amount"`
	TaxRate   float64 `json:"tax_rate"`
	TaxType   TaxType `json:"tax_type"`
}

type ServiceVsProduct struct {
	ServiceMonths int `json:"service_months"`
	ProductMonths int `json:"product_months"`
}

type TaxAnalysis struct {
	Status           string             `json:"status,omitempty"`
	TotalTaxPaid     float64            `json:"total_tax_paid"`
	AverageTaxRate   float64            `json:"average_tax_rate"`
	TaxEfficiency    string             `json:"tax_efficiency"`
	MonthlyBreakdown []TaxBreakdownItem `json:"monthly_breakdown"`
	ServiceVsProduct ServiceVsProduct   `json:"service_vs_product"`
}

type FinancialSummary struct {
	Status         string  `json:"status,omitempty"`
	LatestMonth    string  `json:"latest_month"`
	LatestRevenue  float64 `json:"latest_revenue"`
	LatestExpenses float64 `json:"latest_expenses"`
	TotalRevenue   float64 `json:"total_revenue"`
	TotalExpenses  float64 `json:"total_expenses"`
	NetProfit      float64 `json:"net_profit"`
	MonthsTracked  int     `json:"months_tracked"`
	RecentInsights int     `json:"recent_insights"`
}

type ChartData struct {
	Months   []string  `json:"months"`
	Revenue  []float64 `json:"revenue"`
	Expenses []float64 `json:"expenses"`
}

// FinancialReport agrega todas as visões para exportação
type FinancialReport struct {
	GeneratedAt time.Time        `json:"generated_at"`
	Summary     FinancialSummary `json:"summary"`
	Profit      ProfitAnalysis   `json:"profit"`
	Loss        LossAnalysis     `json:"loss"`
	Tax         TaxAnalysis      `json:"tax"`
	Insights    []Insight        `json:"insights"`
}

package insighting

import (
	"context"

	"github.com/vfg2006/finance-insights-api/internal/domain"
)

// Store é o repositório durável do histórico
type Store interface {
	// SaveRevenueEntry persiste o registro com o rótulo de origem
	SaveRevenueEntry(ctx context.Context, entry domain.RevenueEntry, source string) error

	// LoadAllRevenueEntries retorna os registros em ordem de inserção
	LoadAllRevenueEntries(ctx context.Context) ([]domain.RevenueEntry, error)

	SaveInsight(ctx context.Context, insight domain.Insight) error

	// LoadRecentInsights retorna até limit insights, do mais recente para o mais antigo
	LoadRecentInsights(ctx context.Context, limit int) ([]domain.Insight, error)

	ClearAll(ctx context.Context) error

	// DeleteLossEntries remove os registros com despesas maiores que a receita
	DeleteLossEntries(ctx context.Context) (int64, error)

	DeleteInsightsByType(ctx context.Context, types []domain.InsightType) (int64, error)
}

// Insighter é o contrato consumido pela camada HTTP e pelo CLI
type Insighter interface {
	Ingest(ctx context.Context, entry domain.RevenueEntry, source string) ([]domain.Insight, error)
	LatestInsights(limit int) []domain.Insight

	ProfitAnalysis() domain.ProfitAnalysis
	LossAnalysis() domain.LossAnalysis
	TaxAnalysis() domain.TaxAnalysis
	Summary() domain.FinancialSummary
	ChartData() domain.ChartData
	FinancialReport(insightLimit int) domain.FinancialReport

	Reload(ctx context.Context) error
	ClearAll(ctx context.Context) error
	ClearLossData(ctx context.Context) (int, error)
	ClearInsights(ctx context.Context, types []domain.InsightType) (int, error)
	Stats() Stats

	TaxRules() []domain.TaxRule
	Benchmarks() []domain.CompetitorBenchmark
}

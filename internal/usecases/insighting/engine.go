package insighting

import (
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vfg2006/finance-insights-api/internal/domain"
	"github.com/vfg2006/finance-insights-api/internal/rules"
)

const (
	taxConfidence         = 0.9
	trendConfidence       = 0.8
	competitiveConfidence = 0.75

	// taxBurdenThreshold é a porcentagem da receita acima da qual sugerimos otimização
	taxBurdenThreshold = 20.0
	// trendWindow é o número máximo de meses considerados na tendência
	trendWindow = 3
	// strongGrowthThreshold separa crescimento forte de moderado
	strongGrowthThreshold = 10.0
	// performanceBand separa as faixas "significantly" das demais
	performanceBand = 20.0
)

const (
	TrendStrongGrowth   = "strong growth"
	TrendModerateGrowth = "moderate growth"
	TrendDeclining      = "declining"

	PerformanceSignificantlyOutperforming   = "significantly outperforming"
	PerformanceOutperforming                = "outperforming"
	PerformanceUnderperforming              = "underperforming"
	PerformanceSignificantlyUnderperforming = "significantly underperforming"
)

const (
	recommendTaxOptimization = "Consider tax optimization if burden exceeds 20%"
	recommendTaxOptimal      = "Tax burden is within optimal range"

	recommendScale      = "Maintain current strategies and consider scaling operations"
	recommendAccelerate = "Look for opportunities to accelerate growth"
	recommendReview     = "Urgent: Review operations and market positioning"

	recommendExpand   = "Excellent performance! Consider expanding market share"
	recommendAmplify  = "Good performance, identify key success factors to amplify"
	recommendOptimize = "Analyze competitor strategies and optimize operations"
	recommendCritical = "Critical: Immediate strategic review required"
)

// Engine executa as três análises de insight sobre o histórico.
// Não guarda estado além das tabelas de regras, que são somente leitura.
type Engine struct {
	rules    *rules.Tables
	printer  *message.Printer
	currency string
}

func NewEngine(tables *rules.Tables, currencySymbol string) *Engine {
	if tables == nil {
		tables = rules.Default()
	}
	return &Engine{
		rules:    tables,
		printer:  message.NewPrinter(language.English),
		currency: currencySymbol,
	}
}

func (e *Engine) Rules() *rules.Tables {
	return e.rules
}

// money formata um valor com separador de milhar e duas casas decimais
func (e *Engine) money(amount float64) string {
	return e.currency + e.printer.Sprintf("%.2f", amount)
}

// TaxAssessment é o resultado do cálculo de imposto de um registro
type TaxAssessment struct {
	Rule        domain.TaxRule
	TaxableBase float64
	Tax         float64
	// Percentage é o imposto sobre a receita total; 0 quando a receita é 0
	Percentage float64
}

// AssessTax aplica a primeira regra de imposto que casa com o registro
func (e *Engine) AssessTax(entry domain.RevenueEntry) (TaxAssessment, bool) {
	rule, ok := e.rules.MatchTaxRule(entry)
	if !ok {
		return TaxAssessment{}, false
	}

	base := entry.TaxableBase()
	tax := (base - entry.Expenses) * rule.Rate

	var pct float64
	if entry.Revenue != 0 {
		pct = tax / entry.Revenue * 100
	}

	return TaxAssessment{
		Rule:        rule,
		TaxableBase: base,
		Tax:         tax,
		Percentage:  pct,
	}, true
}

// AnalyzeTaxImpact retorna nil quando nenhuma regra se aplica ao registro
func (e *Engine) AnalyzeTaxImpact(entry domain.RevenueEntry, now time.Time) *domain.Insight {
	assessment, ok := e.AssessTax(entry)
	if !ok {
		return nil
	}

	label := entry.TaxType.Label()
	recommendation := recommendTaxOptimal
	if assessment.Percentage > taxBurdenThreshold {
		recommendation = recommendTaxOptimization
	}

	return &domain.Insight{
		Type:  domain.InsightTypeTax,
		Title: fmt.Sprintf("%s: %s", label, e.money(assessment.Tax)),
		Description: fmt.Sprintf("Based on %s rate of %.1f%%, you'll pay %s (%.1f%% of revenue)",
			strings.ToLower(label), assessment.Rule.Rate*100, e.money(assessment.Tax), assessment.Percentage),
		Impact:         fmt.Sprintf("Tax burden represents %.1f%% of total revenue", assessment.Percentage),
		Recommendation: recommendation,
		Confidence:     taxConfidence,
		CreatedAt:      now,
	}
}

// TrendAssessment descreve o crescimento da receita na janela recente
type TrendAssessment struct {
	Window         []float64
	GrowthRate     float64
	Trend          string
	Recommendation string
}

// AssessTrend compara a receita mais recente com a mais antiga das últimas três.
// Retorna false com menos de dois registros ou quando a base da janela é zero.
func (e *Engine) AssessTrend(history []domain.RevenueEntry) (TrendAssessment, bool) {
	if len(history) < 2 {
		return TrendAssessment{}, false
	}

	start := max(len(history)-trendWindow, 0)
	window := make([]float64, 0, trendWindow)
	for _, entry := range history[start:] {
		window = append(window, entry.Revenue)
	}

	first, last := window[0], window[len(window)-1]
	if first == 0 {
		return TrendAssessment{}, false
	}

	growth := (last - first) * 100 / first
	assessment := TrendAssessment{Window: window, GrowthRate: growth}

	switch {
	case growth > strongGrowthThreshold:
		assessment.Trend, assessment.Recommendation = TrendStrongGrowth, recommendScale
	case growth > 0:
		assessment.Trend, assessment.Recommendation = TrendModerateGrowth, recommendAccelerate
	default:
		assessment.Trend, assessment.Recommendation = TrendDeclining, recommendReview
	}

	return assessment, true
}

func (e *Engine) AnalyzeTrend(history []domain.RevenueEntry, now time.Time) *domain.Insight {
	assessment, ok := e.AssessTrend(history)
	if !ok {
		return nil
	}

	return &domain.Insight{
		Type:           domain.InsightTypeTrend,
		Title:          fmt.Sprintf("Revenue Trend: %+.1f%%", assessment.GrowthRate),
		Description:    fmt.Sprintf("Revenue shows %s with %+.1f%% change over recent periods", assessment.Trend, assessment.GrowthRate),
		Impact:         fmt.Sprintf("Current trajectory suggests %s business performance", assessment.Trend),
		Recommendation: assessment.Recommendation,
		Confidence:     trendConfidence,
		CreatedAt:      now,
	}
}

// BenchmarkComparison compara a receita do registro com a média do segmento
type BenchmarkComparison struct {
	Benchmark      domain.CompetitorBenchmark
	Delta          float64
	Performance    string
	Recommendation string
}

// CompareWithBenchmark retorna false sem benchmark para o segmento ou com média zero
func (e *Engine) CompareWithBenchmark(entry domain.RevenueEntry) (BenchmarkComparison, bool) {
	benchmark, ok := e.rules.BenchmarkFor(entry.BusinessType)
	if !ok || benchmark.AvgMonthlyRevenue == 0 {
		return BenchmarkComparison{}, false
	}

	delta := (entry.Revenue - benchmark.AvgMonthlyRevenue) * 100 / benchmark.AvgMonthlyRevenue
	comparison := BenchmarkComparison{Benchmark: benchmark, Delta: delta}

	switch {
	case delta > performanceBand:
		comparison.Performance, comparison.Recommendation = PerformanceSignificantlyOutperforming, recommendExpand
	case delta > 0:
		comparison.Performance, comparison.Recommendation = PerformanceOutperforming, recommendAmplify
	case delta > -performanceBand:
		comparison.Performance, comparison.Recommendation = PerformanceUnderperforming, recommendOptimize
	default:
		comparison.Performance, comparison.Recommendation = PerformanceSignificantlyUnderperforming, recommendCritical
	}

	return comparison, true
}

func (e *Engine) AnalyzeCompetition(entry domain.RevenueEntry, now time.Time) *domain.Insight {
	comparison, ok := e.CompareWithBenchmark(entry)
	if !ok {
		return nil
	}

	return &domain.Insight{
		Type:  domain.InsightTypeCompetitive,
		Title: fmt.Sprintf("vs Competitors: %+.1f%%", comparison.Delta),
		Description: fmt.Sprintf("Your revenue of %s is %s compared to industry average of %s",
			e.money(entry.Revenue), comparison.Performance, e.money(comparison.Benchmark.AvgMonthlyRevenue)),
		Impact:         fmt.Sprintf("Market position: %s by %.1f%%", comparison.Performance, math.Abs(comparison.Delta)),
		Recommendation: comparison.Recommendation,
		Confidence:     competitiveConfidence,
		CreatedAt:      now,
	}
}

// Analyze roda imposto, tendência e concorrência, nessa ordem, sobre o último
// registro do histórico. A tendência só roda com mais de um registro.
func (e *Engine) Analyze(history []domain.RevenueEntry, now time.Time) []domain.Insight {
	if len(history) == 0 {
		return nil
	}

	latest := history[len(history)-1]
	insights := make([]domain.Insight, 0, 3)

	if insight := e.AnalyzeTaxImpact(latest, now); insight != nil {
		insights = append(insights, *insight)
	}
	if len(history) > 1 {
		if insight := e.AnalyzeTrend(history, now); insight != nil {
			insights = append(insights, *insight)
		}
	}
	if insight := e.AnalyzeCompetition(latest, now); insight != nil {
		insights = append(insights, *insight)
	}

	return insights
}

// Package rules mantém as tabelas estáticas de faixas de imposto e benchmarks do setor.
// As tabelas são montadas na inicialização e apenas lidas depois disso, podendo
// ser compartilhadas entre goroutines sem lock.
package rules

import "github.com/vfg2006/finance-insights-api/internal/domain"

type bracketKey struct {
	businessType domain.BusinessType
	taxType      domain.TaxType
}

type Tables struct {
	taxRules   []domain.TaxRule
	benchmarks []domain.CompetitorBenchmark
	brackets   map[bracketKey][]domain.TaxRule
}

// New copia as regras e monta o índice por (segmento, imposto), preservando a ordem da lista
func New(taxRules []domain.TaxRule, benchmarks []domain.CompetitorBenchmark) *Tables {
	t := &Tables{
		taxRules:   append([]domain.TaxRule(nil), taxRules...),
		benchmarks: append([]domain.CompetitorBenchmark(nil), benchmarks...),
		brackets:   make(map[bracketKey][]domain.TaxRule),
	}

	for _, rule := range t.taxRules {
		key := bracketKey{businessType: rule.BusinessType, taxType: rule.TaxType}
		t.brackets[key] = append(t.brackets[key], rule)
	}

	return t
}

// Default retorna as tabelas padrão
func Default() *Tables {
	return New(DefaultTaxRules(), DefaultBenchmarks())
}

// MatchTaxRule retorna a primeira regra, na ordem da tabela, que se aplica ao registro
func (t *Tables) MatchTaxRule(entry domain.RevenueEntry) (domain.TaxRule, bool) {
	netIncome := entry.NetIncome()
	for _, rule := range t.brackets[bracketKey{businessType: entry.BusinessType, taxType: entry.TaxType}] {
		if rule.Contains(netIncome) {
			return rule, true
		}
	}
	return domain.TaxRule{}, false
}

// BenchmarkFor retorna o primeiro benchmark do segmento
func (t *Tables) BenchmarkFor(businessType domain.BusinessType) (domain.CompetitorBenchmark, bool) {
	for _, b := range t.benchmarks {
		if b.BusinessType == businessType {
			return b, true
		}
	}
	return domain.CompetitorBenchmark{}, false
}

func (t *Tables) TaxRules() []domain.TaxRule {
	return append([]domain.TaxRule(nil), t.taxRules...)
}

func (t *Tables) Benchmarks() []domain.CompetitorBenchmark {
	return append([]domain.CompetitorBenchmark(nil), t.benchmarks...)
}

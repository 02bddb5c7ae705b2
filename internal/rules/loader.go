package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vfg2006/finance-insights-api/internal/domain"
)

// File é o formato YAML das tabelas. Seções omitidas usam os valores padrão.
type File struct {
	TaxRules   []domain.TaxRule             `yaml:"tax_rules"`
	Benchmarks []domain.CompetitorBenchmark `yaml:"benchmarks"`
}

// Load retorna as tabelas padrão quando path é vazio, ou as lidas do arquivo YAML
func Load(path string) (*Tables, error) {
	if path == "" {
		return Default(), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rules: read %s: %w", path, err)
	}

	return Parse(b)
}

// Parse decodifica e valida um documento YAML de regras
func Parse(b []byte) (*Tables, error) {
	var f File
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("rules: decode yaml: %w", err)
	}

	taxRules := f.TaxRules
	if len(taxRules) == 0 {
		taxRules = DefaultTaxRules()
	}
	benchmarks := f.Benchmarks
	if len(benchmarks) == 0 {
		benchmarks = DefaultBenchmarks()
	}

	for i, rule := range taxRules {
		if err := validateRule(rule); err != nil {
			return nil, fmt.Errorf("rules: tax_rules[%d]: %w", i, err)
		}
	}
	for i, b := range benchmarks {
		if !b.BusinessType.IsValid() {
			return nil, fmt.Errorf("rules: benchmarks[%d]: unknown business type %q", i, b.BusinessType)
		}
		if b.AvgMonthlyRevenue < 0 {
			return nil, fmt.Errorf("rules: benchmarks[%d]: negative average revenue", i)
		}
	}

	return New(taxRules, benchmarks), nil
}

func validateRule(rule domain.TaxRule) error {
	if !rule.BusinessType.IsValid() {
		return fmt.Errorf("unknown business type %q", rule.BusinessType)
	}
	if !rule.TaxType.IsValid() {
		return fmt.Errorf("unknown tax type %q", rule.TaxType)
	}
	if rule.BracketMin > rule.BracketMax {
		return fmt.Errorf("bracket min %v greater than max %v", rule.BracketMin, rule.BracketMax)
	}
	if rule.Rate < 0 || rule.Rate > 1 {
		return fmt.Errorf("rate %v outside [0, 1]", rule.Rate)
	}
	return nil
}

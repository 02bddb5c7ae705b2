package handler

import (
	"net/http"

	"github.com/vfg2006/finance-insights-api/internal/usecases/insighting"
)

func GetTaxRules(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, map[string]any{
			"tax_rules": service.TaxRules(),
		})
	})
}

func GetBenchmarks(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, map[string]any{
			"benchmarks": service.Benchmarks(),
		})
	})
}

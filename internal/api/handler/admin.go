package handler

import (
	"net/http"

	"github.com/vfg2006/finance-insights-api/internal/domain"
	"github.com/vfg2006/finance-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/finance-insights-api/pkg/log"
)

var (
	profitInsightTypes = []domain.InsightType{domain.InsightTypeCompetitive, domain.InsightTypeTrend}
	taxInsightTypes    = []domain.InsightType{domain.InsightTypeTax}
)

// ClearAllData apaga o histórico de receitas e insights, mantendo o histórico de uploads
func ClearAllData(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := service.ClearAll(r.Context()); err != nil {
			writeServiceError(w, r, "admin", err)
			return
		}

		log.ForContext(r.Context()).Warn("admin: todos os dados foram apagados")

		writeJSON(w, r, http.StatusOK, map[string]any{
			"status":  "success",
			"message": "All data cleared",
		})
	})
}

// ClearLossData remove os meses com prejuízo
func ClearLossData(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		removed, err := service.ClearLossData(r.Context())
		if err != nil {
			writeServiceError(w, r, "admin", err)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{
			"status":          "success",
			"message":         "Loss data cleared",
			"revenue_removed": removed,
		})
	})
}

// ClearProfitData remove os insights de tendência e concorrência
func ClearProfitData(service insighting.Insighter) http.Handler {
	return clearInsights(service, profitInsightTypes, "Profit data cleared")
}

// ClearTaxData remove os insights de impostos
func ClearTaxData(service insighting.Insighter) http.Handler {
	return clearInsights(service, taxInsightTypes, "Tax data cleared")
}

func clearInsights(service insighting.Insighter, types []domain.InsightType, message string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		removed, err := service.ClearInsights(r.Context(), types)
		if err != nil {
			writeServiceError(w, r, "admin", err)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{
			"status":           "success",
			"message":          message,
			"insights_removed": removed,
		})
	})
}

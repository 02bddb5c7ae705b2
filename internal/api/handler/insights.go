package handler

import (
	"net/http"

	"github.com/vfg2006/finance-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/finance-insights-api/pkg/apiErrors"
)

// DefaultHTTPInsightLimit é o limite de GET /v1/insights sem ?limit=
const DefaultHTTPInsightLimit = 10

func GetInsights(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit, err := queryLimit(r, DefaultHTTPInsightLimit)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{
			"insights": service.LatestInsights(limit),
		})
	})
}

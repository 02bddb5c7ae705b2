package handler

import (
	"fmt"
	"net/http"

	"github.com/vfg2006/finance-insights-api/internal/domain"
	"github.com/vfg2006/finance-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/finance-insights-api/pkg/apiErrors"
	"github.com/vfg2006/finance-insights-api/pkg/log"
)

// RevenueRequest é o corpo aceito por POST /v1/revenue
type RevenueRequest struct {
	Month          string  `json:"month"`
	Revenue        float64 `json:"revenue"`
	Expenses       float64 `json:"expenses"`
	BusinessType   string  `json:"business_type"`
	TaxType        string  `json:"tax_type"`
	ServiceRevenue float64 `json:"service_revenue"`
	ProductRevenue float64 `json:"product_revenue"`
	Source         string  `json:"source,omitempty"`
}

func (req RevenueRequest) toEntry() (domain.RevenueEntry, error) {
	businessType, err := domain.ParseBusinessType(req.BusinessType)
	if err != nil {
		return domain.RevenueEntry{}, err
	}
	taxType, err := domain.ParseTaxType(req.TaxType)
	if err != nil {
		return domain.RevenueEntry{}, err
	}

	return domain.RevenueEntry{
		Month:          req.Month,
		Revenue:        req.Revenue,
		Expenses:       req.Expenses,
		BusinessType:   businessType,
		TaxType:        taxType,
		ServiceRevenue: req.ServiceRevenue,
		ProductRevenue: req.ProductRevenue,
	}, nil
}

// AddRevenue ingere um registro e devolve os insights gerados por ele
func AddRevenue(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req RevenueRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", err.Error())
			return
		}

		entry, err := req.toEntry()
		if err != nil {
			writeServiceError(w, r, "revenue", err)
			return
		}

		insights, err := service.Ingest(r.Context(), entry, req.Source)
		if err != nil {
			writeServiceError(w, r, "revenue", err)
			return
		}

		logger.WithFields(log.Fields{
			"month":    entry.Month,
			"insights": len(insights),
		}).Info("revenue: registro processado")

		writeJSON(w, r, http.StatusCreated, map[string]any{
			"status":       "success",
			"message":      fmt.Sprintf("Revenue data for %s processed", entry.Month),
			"new_insights": len(insights),
			"insights":     insights,
		})
	})
}

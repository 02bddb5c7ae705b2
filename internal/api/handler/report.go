package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/vfg2006/finance-insights-api/internal/domain"
	"github.com/vfg2006/finance-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/finance-insights-api/pkg/apiErrors"
	"github.com/vfg2006/finance-insights-api/pkg/log"
)

// reportInsightLimit é a quantidade de insights incluídos no PDF
const reportInsightLimit = 10

// ReportRenderer converte o relatório financeiro em um documento
type ReportRenderer interface {
	Render(ctx context.Context, report domain.FinancialReport) ([]byte, error)
}

func GetFinancialReportPDF(service insighting.Insighter, renderer ReportRenderer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		report := service.FinancialReport(reportInsightLimit)

		doc, err := renderer.Render(r.Context(), report)
		if err != nil {
			logger.WithError(err).Error("report: erro ao gerar pdf")
			apiErrors.WriteError(w, apiErrors.ErrReportGeneration, "Erro ao gerar relatório", nil)
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="financial-report.pdf"`)
		w.Header().Set("Content-Length", strconv.Itoa(len(doc)))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(doc); err != nil {
			logger.WithError(err).Warn("report: erro ao enviar pdf")
		}
	})
}

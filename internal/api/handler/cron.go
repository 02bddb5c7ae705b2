package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/finance-insights-api/internal/scheduler"
	"github.com/vfg2006/finance-insights-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeHistoryResync = "history-resync"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	HistoryResyncService *scheduler.HistoryResyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		switch cronType {
		case CronJobTypeHistoryResync:
			if services.HistoryResyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de ressincronização não disponível", nil)
				return
			}
			if !services.HistoryResyncService.TriggerManualSync() {
				apiErrors.WriteError(w, apiErrors.ErrSchedulerBusy, "Ressincronização já em andamento", nil)
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: history-resync", nil)
			return
		}

		logrus.WithField("type", cronType).Info("cron: job iniciada manualmente")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.HistoryResyncService != nil {
			status[CronJobTypeHistoryResync] = services.HistoryResyncService.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	})
}

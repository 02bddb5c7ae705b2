package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/finance-insights-api/internal/domain"
	"github.com/vfg2006/finance-insights-api/pkg/apiErrors"
	"github.com/vfg2006/finance-insights-api/pkg/log"
)

// DatabaseInspector expõe o tamanho e a contagem de registros do banco
type DatabaseInspector interface {
	DatabaseInfo(ctx context.Context) (domain.DatabaseInfo, error)
}

func GetDatabaseInfo(inspector DatabaseInspector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info, err := inspector.DatabaseInfo(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("database-info: erro ao consultar o banco")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar o banco de dados", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, info)
	})
}

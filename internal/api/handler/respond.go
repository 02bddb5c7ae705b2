package handler

import (
	"errors"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/finance-insights-api/internal/domain"
	"github.com/vfg2006/finance-insights-api/internal/usecases/dataset"
	"github.com/vfg2006/finance-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/finance-insights-api/pkg/apiErrors"
	"github.com/vfg2006/finance-insights-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("erro ao codificar resposta")
	}
}

// writeServiceError traduz os erros dos casos de uso para o formato padronizado
func writeServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	var validation *domain.ValidationError
	switch {
	case errors.As(err, &validation):
		logger.Warnf("%s: registro inválido", op)
		apiErrors.WriteError(w, apiErrors.ErrInvalidEntry, err.Error(), map[string]string{
			"field":  validation.Field,
			"reason": validation.Reason,
		})
	case errors.Is(err, dataset.ErrUnsupportedFormat):
		apiErrors.WriteError(w, apiErrors.ErrUnsupportedFile, err.Error(), nil)
	case errors.Is(err, dataset.ErrUnknownSample):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, err.Error(), map[string]any{
			"available": dataset.SampleNames(),
		})
	case errors.Is(err, dataset.ErrInvalidDataset), errors.Is(err, insighting.ErrInvalidEntry):
		logger.Warnf("%s: dados inválidos", op)
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	case errors.Is(err, insighting.ErrStorage):
		logger.Errorf("%s: erro de armazenamento", op)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acessar o banco de dados", nil)
	default:
		logger.Errorf("%s: erro inesperado", op)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
	}
}

// queryLimit lê ?limit=, aplicando o padrão quando ausente
func queryLimit(r *http.Request, fallback int) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return fallback, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return 0, errors.New("limit deve ser um inteiro positivo")
	}
	return limit, nil
}

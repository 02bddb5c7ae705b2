package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/finance-insights-api/internal/usecases/dataset"
	"github.com/vfg2006/finance-insights-api/pkg/apiErrors"
	"github.com/vfg2006/finance-insights-api/pkg/log"
)

// UploadDataset recebe um arquivo JSON ou CSV no campo multipart "file"
func UploadDataset(service dataset.Loader, maxBytes int64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
		if err := r.ParseMultipartForm(maxBytes); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, fmt.Sprintf("Arquivo excede o limite de %d bytes", maxBytes), nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formulário multipart inválido", err.Error())
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo 'file' é obrigatório", nil)
			return
		}
		defer file.Close()

		content, err := io.ReadAll(file)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao ler o arquivo", err.Error())
			return
		}

		result, err := service.Upload(r.Context(), header.Filename, content)
		if err != nil {
			writeServiceError(w, r, "datasets", err)
			return
		}

		logger.WithFields(log.Fields{
			"filename": header.Filename,
			"insights": result.TotalInsightsGenerated,
		}).Info("datasets: arquivo carregado")

		writeJSON(w, r, http.StatusCreated, map[string]any{
			"status":                   "success",
			"message":                  fmt.Sprintf("Loaded %d records from %s", result.RecordsLoaded, header.Filename),
			"records_loaded":           result.RecordsLoaded,
			"total_insights_generated": result.TotalInsightsGenerated,
		})
	})
}

func LoadSampleDataset(service dataset.Loader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := httprouter.ParamsFromContext(r.Context()).ByName("name")

		result, err := service.LoadSample(r.Context(), name)
		if err != nil {
			writeServiceError(w, r, "datasets", err)
			return
		}

		writeJSON(w, r, http.StatusCreated, map[string]any{
			"status":                   "success",
			"message":                  fmt.Sprintf("Loaded %d months of %s data", result.RecordsLoaded, name),
			"records_loaded":           result.RecordsLoaded,
			"total_insights_generated": result.TotalInsightsGenerated,
		})
	})
}

func ListSampleDatasets() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, map[string]any{
			"samples": dataset.SampleNames(),
		})
	})
}

func ListUploads(service dataset.Loader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uploads, err := service.ListUploads(r.Context())
		if err != nil {
			writeServiceError(w, r, "datasets", err)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{
			"uploads": uploads,
		})
	})
}

func GetUploadRecords(service dataset.Loader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filename := httprouter.ParamsFromContext(r.Context()).ByName("filename")

		records, err := service.RecordsBySource(r.Context(), filename)
		if err != nil {
			writeServiceError(w, r, "datasets", err)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{
			"filename": filename,
			"records":  records,
		})
	})
}

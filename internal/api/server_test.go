package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/finance-insights-api/internal/config"
	"github.com/vfg2006/finance-insights-api/internal/domain"
	datasetmocks "github.com/vfg2006/finance-insights-api/internal/usecases/dataset/mocks"
	"github.com/vfg2006/finance-insights-api/internal/usecases/insighting/mocks"
	"github.com/vfg2006/finance-insights-api/pkg/log"
)

func TestNewHandler(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	insights := mocks.NewMockInsighter(ctrl)
	insights.EXPECT().Summary().Return(domain.FinancialSummary{Status: domain.StatusNoData})

	cfg := &config.Config{
		Server: config.Server{Host: "localhost", Port: "0"},
		App:    config.App{UploadMaxBytes: 1 << 20, CORSOrigins: []string{"*"}},
	}

	h := NewHandler(cfg, Dependencies{
		Insights: insights,
		Datasets: datasetmocks.NewMockLoader(ctrl),
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/summary", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
	assert.Contains(t, rec.Body.String(), domain.StatusNoData)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/unknown", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNew(t *testing.T) {
	cfg := &config.Config{Server: config.Server{Host: "127.0.0.1", Port: "8000"}}

	srv, err := New(cfg, Dependencies{})
	assert.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8000", srv.httpServer.Addr)
}

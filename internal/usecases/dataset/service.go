package dataset

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/vfg2006/finance-insights-api/internal/domain"
	"github.com/vfg2006/finance-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/finance-insights-api/pkg/log"
	"github.com/vfg2006/finance-insights-api/pkg/utils"
)

const (
	FileTypeJSON = "json"
	FileTypeCSV  = "csv"

	// samplePrefix identifica a origem dos registros carregados de um dataset de exemplo
	samplePrefix = "sample:"
)

// Ingester é o ponto de entrada que persiste e analisa cada registro
type Ingester interface {
	Ingest(ctx context.Context, entry domain.RevenueEntry, source string) ([]domain.Insight, error)
}

// UploadStore guarda o histórico de arquivos processados
type UploadStore interface {
	SaveFileUpload(ctx context.Context, upload domain.FileUpload) error
	ListFileUploads(ctx context.Context) ([]domain.FileUpload, error)
	ListRevenueEntriesBySource(ctx context.Context, source string) ([]domain.StoredRevenueEntry, error)
}

// Loader é o contrato consumido pela camada HTTP e pelo CLI
type Loader interface {
	Upload(ctx context.Context, filename string, content []byte) (domain.UploadResult, error)
	LoadSample(ctx context.Context, name string) (domain.UploadResult, error)
	ListUploads(ctx context.Context) ([]domain.FileUpload, error)
	RecordsBySource(ctx context.Context, filename string) ([]domain.StoredRevenueEntry, error)
}

type Service struct {
	ingester Ingester
	store    UploadStore
	now      func() time.Time
	newID    func() (string, error)
}

func NewService(ingester Ingester, store UploadStore) *Service {
	return &Service{
		ingester: ingester,
		store:    store,
		now:      time.Now,
		newID:    utils.GenerateID,
	}
}

// DetectFileType retorna "json" ou "csv" a partir da extensão do arquivo
func DetectFileType(filename string) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return FileTypeJSON, nil
	case ".csv":
		return FileTypeCSV, nil
	}
	return "", ErrUnsupportedFormat
}

// Upload valida o arquivo inteiro antes de ingerir qualquer registro
func (s *Service) Upload(ctx context.Context, filename string, content []byte) (domain.UploadResult, error) {
	fileType, err := DetectFileType(filename)
	if err != nil {
		return domain.UploadResult{}, err
	}

	entries, err := Parse(fileType, content)
	if err != nil {
		return domain.UploadResult{}, err
	}

	result, err := s.ingestAll(ctx, entries, filename)
	if err != nil {
		return result, err
	}

	id, err := s.newID()
	if err != nil {
		return result, fmt.Errorf("erro ao gerar id do upload: %w", err)
	}

	upload := domain.FileUpload{
		ID:                id,
		Filename:          filename,
		FileType:          fileType,
		RecordsCount:      result.RecordsLoaded,
		InsightsGenerated: result.TotalInsightsGenerated,
		UploadedAt:        s.now(),
	}
	if err := s.store.SaveFileUpload(ctx, upload); err != nil {
		return result, &insighting.StorageError{Op: "save file upload", Err: err}
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"filename": filename,
		"records":  result.RecordsLoaded,
		"insights": result.TotalInsightsGenerated,
	}).Info("dataset: upload processado")

	return result, nil
}

// LoadSample ingere um dos datasets de exemplo
func (s *Service) LoadSample(ctx context.Context, name string) (domain.UploadResult, error) {
	entries, ok := Sample(name)
	if !ok {
		return domain.UploadResult{}, fmt.Errorf("%w: %q (available: %s)", ErrUnknownSample, name, strings.Join(SampleNames(), ", "))
	}

	return s.ingestAll(ctx, entries, samplePrefix+name)
}

func (s *Service) ingestAll(ctx context.Context, entries []domain.RevenueEntry, source string) (domain.UploadResult, error) {
	result := domain.UploadResult{Source: source}

	for i, entry := range entries {
		insights, err := s.ingester.Ingest(ctx, entry, source)
		result.TotalInsightsGenerated += len(insights)
		if err != nil {
			return result, fmt.Errorf("record %d: %w", i+1, err)
		}
		result.RecordsLoaded++
	}

	return result, nil
}

// ListUploads retorna os uploads do mais recente para o mais antigo
func (s *Service) ListUploads(ctx context.Context) ([]domain.FileUpload, error) {
	uploads, err := s.store.ListFileUploads(ctx)
	if err != nil {
		return nil, &insighting.StorageError{Op: "list file uploads", Err: err}
	}
	return uploads, nil
}

// RecordsBySource retorna os registros de um arquivo na ordem de inserção
func (s *Service) RecordsBySource(ctx context.Context, filename string) ([]domain.StoredRevenueEntry, error) {
	records, err := s.store.ListRevenueEntriesBySource(ctx, filename)
	if err != nil {
		return nil, &insighting.StorageError{Op: "list revenue entries by source", Err: err}
	}
	return records, nil
}

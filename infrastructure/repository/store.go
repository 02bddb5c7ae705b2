package repository

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vfg2006/finance-insights-api/infrastructure/database"
	"github.com/vfg2006/finance-insights-api/internal/config"
	"github.com/vfg2006/finance-insights-api/internal/domain"
)

// Store junta os repositórios no contrato usado pelos casos de uso
type Store struct {
	conn     *database.Connection
	path     string
	revenues RevenueRepository
	insights InsightRepository
	uploads  FileUploadRepository
}

// NewStore recebe o caminho do arquivo apenas para o SQLite, usado no DatabaseInfo
func NewStore(conn *database.Connection, path string) *Store {
	return &Store{
		conn:     conn,
		path:     path,
		revenues: NewRevenueRepository(conn),
		insights: NewInsightRepository(conn),
		uploads:  NewFileUploadRepository(conn),
	}
}

func (s *Store) SaveRevenueEntry(ctx context.Context, entry domain.RevenueEntry, source string) error {
	_, err := s.revenues.Save(ctx, entry, source)
	return err
}

func (s *Store) LoadAllRevenueEntries(ctx context.Context) ([]domain.RevenueEntry, error) {
	stored, err := s.revenues.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.RevenueEntry, 0, len(stored))
	for _, e := range stored {
		entries = append(entries, e.RevenueEntry)
	}
	return entries, nil
}

func (s *Store) SaveInsight(ctx context.Context, insight domain.Insight) error {
	_, err := s.insights.Save(ctx, insight)
	return err
}

func (s *Store) LoadRecentInsights(ctx context.Context, limit int) ([]domain.Insight, error) {
	return s.insights.ListRecent(ctx, limit)
}

// ClearAll apaga receitas e insights na mesma transação; o histórico de uploads é mantido
func (s *Store) ClearAll(ctx context.Context) error {
	return s.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, table := range []string{revenueTable, insightsTable} {
			query, args, err := s.conn.Builder().Delete(table).ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("erro ao limpar %s: %w", table, err)
			}
		}
		return nil
	})
}

func (s *Store) DeleteLossEntries(ctx context.Context) (int64, error) {
	return s.revenues.DeleteLosses(ctx)
}

func (s *Store) DeleteInsightsByType(ctx context.Context, types []domain.InsightType) (int64, error) {
	return s.insights.DeleteByType(ctx, types)
}

func (s *Store) SaveFileUpload(ctx context.Context, upload domain.FileUpload) error {
	return s.uploads.Save(ctx, upload)
}

func (s *Store) ListFileUploads(ctx context.Context) ([]domain.FileUpload, error) {
	return s.uploads.List(ctx)
}

func (s *Store) ListRevenueEntriesBySource(ctx context.Context, source string) ([]domain.StoredRevenueEntry, error) {
	return s.revenues.ListBySource(ctx, source)
}

func (s *Store) DatabaseInfo(ctx context.Context) (domain.DatabaseInfo, error) {
	info := domain.DatabaseInfo{Driver: s.conn.Dialect()}

	var err error
	if info.RevenueRecords, err = s.revenues.Count(ctx); err != nil {
		return info, err
	}
	if info.InsightRecords, err = s.insights.Count(ctx); err != nil {
		return info, err
	}
	if info.FileUploads, err = s.uploads.Count(ctx); err != nil {
		return info, err
	}

	if s.conn.Dialect() == config.DriverSQLite && s.path != "" && s.path != ":memory:" {
		if abs, err := filepath.Abs(s.path); err == nil {
			info.Path = abs
		}
		if stat, err := os.Stat(s.path); err == nil {
			info.FileSizeBytes = stat.Size()
		}
	}

	return info, nil
}

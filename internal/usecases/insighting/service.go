package insighting

import (
	"context"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/vfg2006/finance-insights-api/internal/domain"
	"github.com/vfg2006/finance-insights-api/pkg/log"
)

const (
	// DefaultSource é a origem atribuída a registros enviados sem rótulo
	DefaultSource = "manual"

	DefaultInsightLimit        = 5
	DefaultInsightHistoryLimit = 50
)

// Stats resume o conteúdo do histórico em memória
type Stats struct {
	RevenueRecords int `json:"revenue_records"`
	InsightRecords int `json:"insight_records"`
}

// Service mantém o histórico em memória espelhando o Store e dispara as análises
// a cada registro ingerido. Todas as escritas são serializadas por mu.
type Service struct {
	mu       sync.RWMutex
	store    Store
	engine   *Engine
	entries  []domain.RevenueEntry
	insights []domain.Insight

	now                 func() time.Time
	insightHistoryLimit int
}

type Option func(*Service)

// WithClock substitui o relógio usado nos timestamps
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithInsightHistoryLimit define quantos insights são recarregados do Store
func WithInsightHistoryLimit(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.insightHistoryLimit = limit
		}
	}
}

func NewService(store Store, engine *Engine, opts ...Option) *Service {
	s := &Service{
		store:               store,
		engine:              engine,
		now:                 time.Now,
		insightHistoryLimit: DefaultInsightHistoryLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ Insighter = (*Service)(nil)

// Reload reconstrói o histórico em memória a partir do Store.
// O lock fica retido durante a leitura para que nenhum Ingest seja sobrescrito.
// Apenas os insightHistoryLimit insights mais recentes voltam para a memória, então
// Stats pode contar menos insights do que o Store. Em caso de falha o histórico atual é mantido.
func (s *Service) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.store.LoadAllRevenueEntries(ctx)
	if err != nil {
		return newStorageError("load revenue entries", err)
	}

	recent, err := s.store.LoadRecentInsights(ctx, s.insightHistoryLimit)
	if err != nil {
		return newStorageError("load insights", err)
	}

	// o Store devolve do mais recente para o mais antigo
	insights := slices.Clone(recent)
	slices.Reverse(insights)

	s.entries = entries
	s.insights = insights

	log.ForContext(ctx).WithFields(log.Fields{
		"revenue_records": len(entries),
		"insight_records": len(insights),
	}).Info("insighting: histórico carregado")

	return nil
}

// Ingest valida, persiste e adiciona o registro ao histórico e retorna os insights gerados.
// Nada é adicionado à memória sem ter sido persistido antes.
func (s *Service) Ingest(ctx context.Context, entry domain.RevenueEntry, source string) ([]domain.Insight, error) {
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	if strings.TrimSpace(source) == "" {
		source = DefaultSource
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = now
	}

	if err := s.store.SaveRevenueEntry(ctx, entry, source); err != nil {
		return nil, newStorageError("save revenue entry", err)
	}
	s.entries = append(s.entries, entry)

	generated := s.engine.Analyze(s.entries, now)
	saved := make([]domain.Insight, 0, len(generated))
	for _, insight := range generated {
		if err := s.store.SaveInsight(ctx, insight); err != nil {
			log.ForContext(ctx).WithError(err).Errorf("insighting: falha ao salvar insight %s", insight.Type)
			return saved, newStorageError("save insight", err)
		}
		s.insights = append(s.insights, insight)
		saved = append(saved, insight)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"month":    entry.Month,
		"source":   source,
		"insights": len(saved),
	}).Debug("insighting: registro ingerido")

	return saved, nil
}

// LatestInsights retorna os insights mais recentes primeiro; empates mantêm a ordem de inserção
func (s *Service) LatestInsights(limit int) []domain.Insight {
	if limit <= 0 {
		limit = DefaultInsightLimit
	}

	s.mu.RLock()
	insights := slices.Clone(s.insights)
	s.mu.RUnlock()

	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].CreatedAt.After(insights[j].CreatedAt)
	})

	if len(insights) > limit {
		insights = insights[:limit]
	}
	return insights
}

// History retorna uma cópia dos registros em ordem de inserção
func (s *Service) History() []domain.RevenueEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.entries)
}

func (s *Service) snapshot() ([]domain.RevenueEntry, []domain.Insight) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.entries), slices.Clone(s.insights)
}

// ClearAll apaga o Store e só então esvazia a memória
func (s *Service) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.ClearAll(ctx); err != nil {
		return newStorageError("clear all", err)
	}

	s.entries = nil
	s.insights = nil

	log.ForContext(ctx).Info("insighting: histórico apagado")
	return nil
}

// ClearLossData remove os meses com prejuízo e retorna quantos saíram da memória
func (s *Service) ClearLossData(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deleted, err := s.store.DeleteLossEntries(ctx)
	if err != nil {
		return 0, newStorageError("delete loss entries", err)
	}

	before := len(s.entries)
	s.entries = slices.DeleteFunc(s.entries, func(e domain.RevenueEntry) bool {
		return e.IsLoss()
	})
	removed := before - len(s.entries)

	log.ForContext(ctx).WithFields(log.Fields{
		"store_deleted":  deleted,
		"memory_removed": removed,
	}).Info("insighting: meses com prejuízo removidos")

	return removed, nil
}

// ClearInsights remove os insights dos tipos informados
func (s *Service) ClearInsights(ctx context.Context, types []domain.InsightType) (int, error) {
	if len(types) == 0 {
		return 0, errors.Wrap(ErrInvalidEntry, "at least one insight type is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.store.DeleteInsightsByType(ctx, types); err != nil {
		return 0, newStorageError("delete insights", err)
	}

	before := len(s.insights)
	s.insights = slices.DeleteFunc(s.insights, func(i domain.Insight) bool {
		return slices.Contains(types, i.Type)
	})

	return before - len(s.insights), nil
}

func (s *Service) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Stats{
		RevenueRecords: len(s.entries),
		InsightRecords: len(s.insights),
	}
}

func (s *Service) TaxRules() []domain.TaxRule {
	return s.engine.Rules().TaxRules()
}

func (s *Service) Benchmarks() []domain.CompetitorBenchmark {
	return s.engine.Rules().Benchmarks()
}

func (s *Service) ProfitAnalysis() domain.ProfitAnalysis {
	entries, _ := s.snapshot()
	return s.engine.ProfitView(entries)
}

func (s *Service) LossAnalysis() domain.LossAnalysis {
	entries, _ := s.snapshot()
	return LossView(entries)
}

func (s *Service) TaxAnalysis() domain.TaxAnalysis {
	entries, _ := s.snapshot()
	return s.engine.TaxView(entries)
}

func (s *Service) Summary() domain.FinancialSummary {
	entries, insights := s.snapshot()
	return SummaryView(entries, insights, s.now())
}

func (s *Service) ChartData() domain.ChartData {
	entries, _ := s.snapshot()
	return ChartView(entries)
}

// FinancialReport monta todas as visões a partir de um único snapshot
func (s *Service) FinancialReport(insightLimit int) domain.FinancialReport {
	entries, insights := s.snapshot()
	now := s.now()

	return domain.FinancialReport{
		GeneratedAt: now,
		Summary:     SummaryView(entries, insights, now),
		Profit:      s.engine.ProfitView(entries),
		Loss:        LossView(entries),
		Tax:         s.engine.TaxView(entries),
		Insights:    s.LatestInsights(insightLimit),
	}
}

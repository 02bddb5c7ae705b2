package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/finance-insights-api/internal/config"
	"github.com/vfg2006/finance-insights-api/internal/usecases/insighting"
)

// Reloader reconstrói o histórico em memória a partir do armazenamento
type Reloader interface {
	Reload(ctx context.Context) error
	Stats() insighting.Stats
}

// HistoryResyncConfig representa a configuração do agendador de ressincronização
type HistoryResyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// HistoryResyncService recarrega periodicamente o histórico do banco.
// Nunca reexecuta as análises: apenas realinha a memória com o que foi persistido.
type HistoryResyncService struct {
	scheduler *gocron.Scheduler
	config    HistoryResyncConfig
	reloader  Reloader

	syncMutex           sync.Mutex
	syncRunning         bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
	lastRevenueRecords  int
}

func NewHistoryResyncService(reloader Reloader, appConfig *config.Config) *HistoryResyncService {
	resyncConfig := HistoryResyncConfig{
		CronSchedule: appConfig.HistoryResync.CronSchedule,
		SyncEnabled:  appConfig.HistoryResync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": resyncConfig.CronSchedule,
		"sync_enabled":  resyncConfig.SyncEnabled,
	}).Info("Configuração do agendador de ressincronização do histórico carregada")

	return &HistoryResyncService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    resyncConfig,
		reloader:  reloader,
	}
}

// Start inicia o agendador
func (s *HistoryResyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Ressincronização do histórico desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de ressincronização do histórico")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.ResyncHistory(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar ressincronização do histórico: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de ressincronização do histórico")
		s.scheduler.Stop()
	}()

	return nil
}

// ResyncHistory executa uma ressincronização; retorna false se já havia uma em andamento
func (s *HistoryResyncService) ResyncHistory(ctx context.Context) bool {
	if !s.begin() {
		logrus.Info("Ressincronização do histórico já em andamento, ignorando")
		return false
	}

	s.run(ctx)
	return true
}

// run executa o reload; begin precisa ter reservado a execução
func (s *HistoryResyncService) run(ctx context.Context) {
	startTime := time.Now()
	err := s.reloader.Reload(ctx)
	stats := s.reloader.Stats()

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastSyncError = ""
	if err != nil {
		s.lastSyncError = err.Error()
	} else {
		s.lastRevenueRecords = stats.RevenueRecords
	}
	s.syncMutex.Unlock()

	if err != nil {
		logrus.WithError(err).Error("Erro ao ressincronizar o histórico")
		return
	}

	logrus.WithFields(logrus.Fields{
		"duration":        time.Since(startTime).String(),
		"revenue_records": stats.RevenueRecords,
		"insight_records": stats.InsightRecords,
	}).Info("Ressincronização do histórico concluída")
}

func (s *HistoryResyncService) begin() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	return true
}

// TriggerManualSync inicia manualmente uma ressincronização em background.
// Retorna false quando já existe uma em andamento.
func (s *HistoryResyncService) TriggerManualSync() bool {
	if !s.begin() {
		logrus.Info("Ressincronização do histórico já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando ressincronização manual do histórico")
	go s.run(context.Background())
	return true
}

// GetStatus retorna o status atual da ressincronização
func (s *HistoryResyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
		"last_revenue_records":   s.lastRevenueRecords,
	}
}

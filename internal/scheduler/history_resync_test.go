package scheduler

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/finance-insights-api/internal/config"
	"github.com/vfg2006/finance-insights-api/internal/domain"
	"github.com/vfg2006/finance-insights-api/internal/rules"
	"github.com/vfg2006/finance-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/finance-insights-api/internal/usecases/insighting/mocks"
)

func newTestConfig(enabled bool) *config.Config {
	return &config.Config{
		HistoryResync: config.HistoryResync{
			CronSchedule: "*/30 * * * *",
			Enabled:      enabled,
		},
	}
}

func TestHistoryResyncService_ResyncHistory(t *testing.T) {
	t.Run("success updates status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reloader := mocks.NewMockInsighter(ctrl)
		reloader.EXPECT().Reload(gomock.Any()).Return(nil)
		reloader.EXPECT().Stats().Return(insighting.Stats{RevenueRecords: 4, InsightRecords: 9})

		svc := NewHistoryResyncService(reloader, newTestConfig(true))
		require.True(t, svc.ResyncHistory(context.Background()))

		status := svc.GetStatus()
		assert.Equal(t, false, status["sync_running"])
		assert.Equal(t, 4, status["last_revenue_records"])
		assert.Equal(t, "", status["last_sync_error"])
		assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
	})

	t.Run("reload failure is recorded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reloader := mocks.NewMockInsighter(ctrl)
		reloader.EXPECT().Reload(gomock.Any()).Return(errors.New("database is locked"))
		reloader.EXPECT().Stats().Return(insighting.Stats{})

		svc := NewHistoryResyncService(reloader, newTestConfig(true))
		require.True(t, svc.ResyncHistory(context.Background()))

		status := svc.GetStatus()
		assert.Equal(t, "database is locked", status["last_sync_error"])
		assert.Equal(t, 0, status["last_revenue_records"])
	})

	t.Run("skips while another run is in progress", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reloader := mocks.NewMockInsighter(ctrl)

		svc := NewHistoryResyncService(reloader, newTestConfig(true))
		require.True(t, svc.begin())

		assert.False(t, svc.ResyncHistory(context.Background()))
		assert.False(t, svc.TriggerManualSync())
		assert.Equal(t, true, svc.GetStatus()["sync_running"])
	})
}

func TestHistoryResyncService_TriggerManualSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	reloader := mocks.NewMockInsighter(ctrl)

	done := make(chan struct{})
	reloader.EXPECT().Reload(gomock.Any()).Return(nil)
	reloader.EXPECT().Stats().DoAndReturn(func() insighting.Stats {
		close(done)
		return insighting.Stats{RevenueRecords: 2}
	})

	svc := NewHistoryResyncService(reloader, newTestConfig(false))
	require.True(t, svc.TriggerManualSync())

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("ressincronização manual não executou")
	}

	assert.Eventually(t, func() bool {
		return svc.GetStatus()["sync_running"] == false
	}, time.Second, 10*time.Millisecond)
}

func TestHistoryResyncService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewHistoryResyncService(mocks.NewMockInsighter(ctrl), newTestConfig(false))

	require.NoError(t, svc.Start(context.Background()))
	assert.Equal(t, false, svc.GetStatus()["sync_enabled"])
}

func TestHistoryResyncService_StartInvalidCron(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := newTestConfig(true)
	cfg.HistoryResync.CronSchedule = "not a cron"

	svc := NewHistoryResyncService(mocks.NewMockInsighter(ctrl), cfg)
	assert.Error(t, svc.Start(context.Background()))
}

func TestHistoryResyncService_ResyncKeepsConcurrentIngest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var (
		mu      sync.Mutex
		rows    []domain.RevenueEntry
		loading = make(chan struct{})
		release = make(chan struct{})
	)

	store := mocks.NewMockStore(ctrl)
	store.EXPECT().LoadAllRevenueEntries(gomock.Any()).DoAndReturn(func(context.Context) ([]domain.RevenueEntry, error) {
		close(loading)
		<-release
		mu.Lock()
		defer mu.Unlock()
		return slices.Clone(rows), nil
	})
	store.EXPECT().LoadRecentInsights(gomock.Any(), gomock.Any()).Return(nil, nil)
	store.EXPECT().SaveRevenueEntry(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, entry domain.RevenueEntry, _ string) error {
			mu.Lock()
			defer mu.Unlock()
			rows = append(rows, entry)
			return nil
		})
	store.EXPECT().SaveInsight(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	service := insighting.NewService(store, insighting.NewEngine(rules.Default(), "₹"))
	resync := NewHistoryResyncService(service, newTestConfig(true))
	ctx := context.Background()

	done := make(chan bool, 1)
	go func() { done <- resync.ResyncHistory(ctx) }()
	<-loading

	ingested := make(chan error, 1)
	go func() {
		_, err := service.Ingest(ctx, domain.RevenueEntry{
			Month:        "2024-01",
			Revenue:      42000,
			Expenses:     28000,
			BusinessType: domain.BusinessTypeRetail,
			TaxType:      domain.TaxTypeProduct,
		}, "")
		ingested <- err
	}()

	time.Sleep(50 * time.Millisecond)
	close(release)

	require.True(t, <-done)
	require.NoError(t, <-ingested)

	assert.Len(t, service.History(), 1)
	assert.Equal(t, service.Stats().RevenueRecords, 1)
	assert.Equal(t, "", resync.GetStatus()["last_sync_error"])
}

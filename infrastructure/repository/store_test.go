package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/finance-insights-api/infrastructure/database"
	"github.com/vfg2006/finance-insights-api/internal/domain"
	"github.com/vfg2006/finance-insights-api/internal/rules"
	"github.com/vfg2006/finance-insights-api/internal/usecases/dataset"
	"github.com/vfg2006/finance-insights-api/internal/usecases/insighting"
)

var (
	_ insighting.Store    = (*Store)(nil)
	_ dataset.UploadStore = (*Store)(nil)
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	conn, err := database.NewSQLite(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return NewStore(conn, ":memory:")
}

func entry(month string, revenue, expenses float64, createdAt time.Time) domain.RevenueEntry {
	return domain.RevenueEntry{
		Month:          month,
		Revenue:        revenue,
		Expenses:       expenses,
		BusinessType:   domain.BusinessTypeRetail,
		TaxType:        domain.TaxTypeProduct,
		ServiceRevenue: 1000,
		ProductRevenue: revenue - 1000,
		CreatedAt:      createdAt,
	}
}

func TestStore_RevenueEntriesKeepInsertionOrder(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2024, 1, 10, 8, 30, 0, 0, time.UTC)

	// meses fora de ordem: o reload deve seguir a inserção, não o rótulo
	inserted := []domain.RevenueEntry{
		entry("2024-03", 48000, 30000, base),
		entry("2024-01", 42000, 28000, base.Add(time.Minute)),
		entry("2024-02", 28000, 35000, base.Add(2*time.Minute)),
	}
	for _, e := range inserted {
		require.NoError(t, store.SaveRevenueEntry(ctx, e, "manual"))
	}

	loaded, err := store.LoadAllRevenueEntries(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 3)
	for i := range inserted {
		assert.Equal(t, inserted[i].Month, loaded[i].Month)
		assert.Equal(t, inserted[i].Revenue, loaded[i].Revenue)
		assert.Equal(t, inserted[i].ProductRevenue, loaded[i].ProductRevenue)
		assert.Equal(t, inserted[i].TaxType, loaded[i].TaxType)
		assert.True(t, inserted[i].CreatedAt.Equal(loaded[i].CreatedAt))
	}
}

func TestStore_InsightsNewestFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, insightType := range []domain.InsightType{domain.InsightTypeTax, domain.InsightTypeTrend, domain.InsightTypeCompetitive} {
		require.NoError(t, store.SaveInsight(ctx, domain.Insight{
			Type:           insightType,
			Title:          string(insightType),
			Description:    "d",
			Impact:         "i",
			Recommendation: "r",
			Confidence:     0.8,
			CreatedAt:      base.Add(time.Duration(i) * time.Second),
		}))
	}

	recent, err := store.LoadRecentInsights(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, domain.InsightTypeCompetitive, recent[0].Type)
	assert.Equal(t, domain.InsightTypeTrend, recent[1].Type)
	assert.Equal(t, 0.8, recent[0].Confidence)
	assert.True(t, recent[0].CreatedAt.Equal(base.Add(2*time.Second)))

	deleted, err := store.DeleteInsightsByType(ctx, []domain.InsightType{domain.InsightTypeTrend, domain.InsightTypeCompetitive})
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	recent, err = store.LoadRecentInsights(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, domain.InsightTypeTax, recent[0].Type)
}

func TestStore_DeleteLossEntriesAndClearAll(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, store.SaveRevenueEntry(ctx, entry("2024-01", 42000, 28000, now), "a.csv"))
	require.NoError(t, store.SaveRevenueEntry(ctx, entry("2024-02", 28000, 35000, now), "a.csv"))
	require.NoError(t, store.SaveInsight(ctx, domain.Insight{Type: domain.InsightTypeTax, CreatedAt: now}))
	require.NoError(t, store.SaveFileUpload(ctx, domain.FileUpload{ID: "abc", Filename: "a.csv", FileType: "csv", RecordsCount: 2, UploadedAt: now}))

	deleted, err := store.DeleteLossEntries(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	info, err := store.DatabaseInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DatabaseInfo{Driver: "sqlite", RevenueRecords: 1, InsightRecords: 1, FileUploads: 1}, info)

	require.NoError(t, store.ClearAll(ctx))

	entries, err := store.LoadAllRevenueEntries(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	insights, err := store.LoadRecentInsights(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, insights)

	uploads, err := store.ListFileUploads(ctx)
	require.NoError(t, err)
	assert.Len(t, uploads, 1, "uploads sobrevivem ao ClearAll")
}

func TestStore_FileUploadsAndRecordsBySource(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, store.SaveFileUpload(ctx, domain.FileUpload{ID: "old", Filename: "a.json", FileType: "json", RecordsCount: 1, InsightsGenerated: 2, UploadedAt: base}))
	require.NoError(t, store.SaveFileUpload(ctx, domain.FileUpload{ID: "new", Filename: "b.csv", FileType: "csv", RecordsCount: 2, InsightsGenerated: 5, UploadedAt: base.Add(time.Hour)}))

	uploads, err := store.ListFileUploads(ctx)
	require.NoError(t, err)
	require.Len(t, uploads, 2)
	assert.Equal(t, "new", uploads[0].ID)
	assert.Equal(t, 5, uploads[0].InsightsGenerated)
	assert.True(t, uploads[1].UploadedAt.Equal(base))

	require.NoError(t, store.SaveRevenueEntry(ctx, entry("2024-01", 1000, 10, base), "a.json"))
	require.NoError(t, store.SaveRevenueEntry(ctx, entry("2024-02", 2000, 20, base), "b.csv"))
	require.NoError(t, store.SaveRevenueEntry(ctx, entry("2024-03", 3000, 30, base), "b.csv"))

	records, err := store.ListRevenueEntriesBySource(ctx, "b.csv")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "2024-02", records[0].Month)
	assert.Equal(t, "b.csv", records[0].Source)
	assert.Less(t, records[0].ID, records[1].ID)
}

func TestStore_BacksInsightingService(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	clock := func() time.Time { return time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC) }

	engine := insighting.NewEngine(rules.Default(), "₹")
	service := insighting.NewService(store, engine, insighting.WithClock(clock))

	for _, month := range []string{"2024-01", "2024-02"} {
		_, err := service.Ingest(ctx, entry(month, 42000, 28000, time.Time{}), "")
		require.NoError(t, err)
	}

	reloaded := insighting.NewService(store, engine, insighting.WithClock(clock))
	require.NoError(t, reloaded.Reload(ctx))

	assert.Equal(t, service.History(), reloaded.History())
	assert.Equal(t, service.Stats(), reloaded.Stats())
	assert.Equal(t, service.LatestInsights(10), reloaded.LatestInsights(10))
}

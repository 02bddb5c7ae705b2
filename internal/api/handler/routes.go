package handler

import (
	"net/http"

	"github.com/vfg2006/finance-insights-api/internal/api/handler/router"
	"github.com/vfg2006/finance-insights-api/internal/usecases/dataset"
	"github.com/vfg2006/finance-insights-api/internal/usecases/insighting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Revenue(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/revenue",
			Method:  http.MethodPost,
			Handler: AddRevenue(service),
		},
	}
}

func Insights(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/insights",
			Method:  http.MethodGet,
			Handler: GetInsights(service),
		},
		{
			Path:    "/v1/summary",
			Method:  http.MethodGet,
			Handler: GetSummary(service),
		},
		{
			Path:    "/v1/chart-data",
			Method:  http.MethodGet,
			Handler: GetChartData(service),
		},
	}
}

func Analysis(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/analysis/profit",
			Method:  http.MethodGet,
			Handler: GetProfitAnalysis(service),
		},
		{
			Path:    "/v1/analysis/loss",
			Method:  http.MethodGet,
			Handler: GetLossAnalysis(service),
		},
		{
			Path:    "/v1/analysis/tax",
			Method:  http.MethodGet,
			Handler: GetTaxAnalysis(service),
		},
	}
}

func Datasets(service dataset.Loader, uploadMaxBytes int64) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/datasets/upload",
			Method:  http.MethodPost,
			Handler: UploadDataset(service, uploadMaxBytes),
		},
		{
			Path:    "/v1/datasets/samples",
			Method:  http.MethodGet,
			Handler: ListSampleDatasets(),
		},
		{
			Path:    "/v1/datasets/samples/:name",
			Method:  http.MethodPost,
			Handler: LoadSampleDataset(service),
		},
		{
			Path:    "/v1/datasets/uploads",
			Method:  http.MethodGet,
			Handler: ListUploads(service),
		},
		{
			Path:    "/v1/datasets/uploads/:filename/records",
			Method:  http.MethodGet,
			Handler: GetUploadRecords(service),
		},
	}
}

func Admin(service insighting.Insighter, inspector DatabaseInspector) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/database-info",
			Method:  http.MethodGet,
			Handler: GetDatabaseInfo(inspector),
		},
		{
			Path:    "/v1/admin/clear",
			Method:  http.MethodPost,
			Handler: ClearAllData(service),
		},
		{
			Path:    "/v1/admin/clear-loss-data",
			Method:  http.MethodPost,
			Handler: ClearLossData(service),
		},
		{
			Path:    "/v1/admin/clear-profit-data",
			Method:  http.MethodPost,
			Handler: ClearProfitData(service),
		},
		{
			Path:    "/v1/admin/clear-tax-data",
			Method:  http.MethodPost,
			Handler: ClearTaxData(service),
		},
	}
}

func Rules(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/rules/tax",
			Method:  http.MethodGet,
			Handler: GetTaxRules(service),
		},
		{
			Path:    "/v1/rules/benchmarks",
			Method:  http.MethodGet,
			Handler: GetBenchmarks(service),
		},
	}
}

func Reports(service insighting.Insighter, renderer ReportRenderer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/financial.pdf",
			Method:  http.MethodGet,
			Handler: GetFinancialReportPDF(service, renderer),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}

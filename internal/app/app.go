// Package app monta o grafo de dependências compartilhado pela API e pelo CLI.
package app

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/finance-insights-api/infrastructure/database"
	"github.com/vfg2006/finance-insights-api/infrastructure/report"
	"github.com/vfg2006/finance-insights-api/infrastructure/repository"
	"github.com/vfg2006/finance-insights-api/internal/config"
	"github.com/vfg2006/finance-insights-api/internal/rules"
	"github.com/vfg2006/finance-insights-api/internal/usecases/dataset"
	"github.com/vfg2006/finance-insights-api/internal/usecases/insighting"
)

type App struct {
	Config   *config.Config
	Conn     *database.Connection
	Store    *repository.Store
	Insights *insighting.Service
	Datasets *dataset.Service
	Reports  *report.PDFGenerator
}

// Build conecta ao banco, aplica o schema e carrega o histórico.
// Com ClearOnStartup o banco é limpo em vez de recarregado.
func Build(ctx context.Context, cfg *config.Config) (*App, error) {
	tables, err := rules.Load(cfg.Rules.File)
	if err != nil {
		return nil, err
	}

	conn, err := database.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar ao banco (%s): %w", cfg.Database.Driver, err)
	}

	if err := database.Migrate(ctx, conn); err != nil {
		_ = conn.Close()
		return nil, err
	}

	path := ""
	if cfg.Database.Driver == config.DriverSQLite {
		path = cfg.Database.Path
	}
	store := repository.NewStore(conn, path)

	engine := insighting.NewEngine(tables, cfg.App.CurrencySymbol)
	insights := insighting.NewService(store, engine,
		insighting.WithInsightHistoryLimit(cfg.App.InsightHistoryLimit),
	)

	if cfg.App.ClearOnStartup {
		logrus.Warn("CLEAR_ON_STARTUP habilitado: apagando dados existentes")
		err = insights.ClearAll(ctx)
	} else {
		err = insights.Reload(ctx)
	}
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	return &App{
		Config:   cfg,
		Conn:     conn,
		Store:    store,
		Insights: insights,
		Datasets: dataset.NewService(insights, store),
		Reports:  report.NewPDFGenerator(cfg.App.CurrencySymbol),
	}, nil
}

func (a *App) Close() error {
	return a.Conn.Close()
}

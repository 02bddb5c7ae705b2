package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/finance-insights-api/internal/api"
	"github.com/vfg2006/finance-insights-api/internal/app"
	"github.com/vfg2006/finance-insights-api/internal/config"
	"github.com/vfg2006/finance-insights-api/internal/scheduler"
	"github.com/vfg2006/finance-insights-api/pkg/log"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	if err := log.Setup(cfg.App.LogLevel); err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		_ = log.Setup(logrus.InfoLevel.String())
	}
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application, err := app.Build(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar a aplicação")
	}
	defer application.Close()

	logrus.WithFields(logrus.Fields{
		"driver":          cfg.Database.Driver,
		"revenue_records": application.Insights.Stats().RevenueRecords,
	}).Info("Conexão com o banco estabelecida e histórico carregado")

	historyResyncService := scheduler.NewHistoryResyncService(application.Insights, cfg)
	if err := historyResyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de ressincronização do histórico")
	}

	server, err := api.New(cfg, api.Dependencies{
		Insights:      application.Insights,
		Datasets:      application.Datasets,
		Database:      application.Store,
		Reports:       application.Reports,
		HistoryResync: historyResyncService,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	_ = os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

package main

import (
	"context"
	"time"

	"github.com/mannersmaketh/ga-audit-v2/infrastructure/integrator/ga4"
	"github.com/mannersmaketh/ga-audit-v2/infrastructure/integrator/ga4/ga4client"
	"github.com/mannersmaketh/ga-audit-v2/infrastructure/integrator/sheets"
	"github.com/mannersmaketh/ga-audit-v2/infrastructure/integrator/sheets/sheetsclient"
	"github.com/mannersmaketh/ga-audit-v2/internal/api"
	"github.com/mannersmaketh/ga-audit-v2/internal/config"
	"github.com/mannersmaketh/ga-audit-v2/internal/scheduler"
	"github.com/mannersmaketh/ga-audit-v2/internal/usecases/auditing"
	"github.com/mannersmaketh/ga-audit-v2/internal/usecases/authorizing"
	"github.com/mannersmaketh/ga-audit-v2/internal/usecases/exporting"
	"github.com/mannersmaketh/ga-audit-v2/internal/usecases/insighting"
	"github.com/sirupsen/logrus"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	authorizer := authorizing.NewService(cfg)

	// O serviço de autorização é a fonte de tokens de acesso dos dois clients
	ga4Client := ga4client.NewClient(cfg, authorizer)
	ga4Integrator := ga4.New(cfg, ga4Client)

	sheetsClient := sheetsclient.NewClient(cfg, authorizer)
	sheetsIntegrator := sheets.New(cfg, sheetsClient)

	auditor := auditing.NewService(cfg, ga4Integrator)
	evaluator := insighting.NewEvaluator()
	exporter := exporting.NewService(sheetsIntegrator)

	// Inicializa o agendador de limpeza de sessões em background
	sessionCleanupService := scheduler.NewSessionCleanupService(authorizer, cfg)
	if err := sessionCleanupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de sessões")
	} else {
		logrus.Info("Agendador de limpeza de sessões iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authorizer,
		auditor,
		evaluator,
		exporter,
		sessionCleanupService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

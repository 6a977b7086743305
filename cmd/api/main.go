package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/fluxweave-api/internal/api"
	"github.com/vfg2006/fluxweave-api/internal/bootstrap"
	"github.com/vfg2006/fluxweave-api/internal/config"
	"github.com/vfg2006/fluxweave-api/internal/scheduler"
	"github.com/vfg2006/fluxweave-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o formato e o nível de log com base na configuração
	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	providers, err := bootstrap.NewProviders(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar os provedores de IA")
	}

	services := bootstrap.NewServices(cfg, providers)

	// Agendador de limpeza das sessões ociosas
	sessionSweepService := scheduler.NewSessionSweepService(services.Collector, cfg)
	if err := sessionSweepService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de sessões")
	} else {
		logrus.Info("Agendador de limpeza de sessões iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Generator:    services.Generator,
		Varier:       services.Varier,
		Copywriter:   services.Copywriter,
		Analyzer:     services.Analyzer,
		Collector:    services.Collector,
		SessionSweep: sessionSweepService,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/fluxweave-api/internal/api/handler"
	"github.com/vfg2006/fluxweave-api/internal/api/handler/router"
	"github.com/vfg2006/fluxweave-api/internal/config"
	"github.com/vfg2006/fluxweave-api/internal/scheduler"
	"github.com/vfg2006/fluxweave-api/internal/usecases/branding"
	"github.com/vfg2006/fluxweave-api/internal/usecases/collecting"
	"github.com/vfg2006/fluxweave-api/internal/usecases/copywriting"
	"github.com/vfg2006/fluxweave-api/internal/usecases/generating"
	"github.com/vfg2006/fluxweave-api/internal/usecases/varying"
	"github.com/vfg2006/fluxweave-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

// Services agrupa os casos de uso expostos pela API
type Services struct {
	Generator    generating.Generator
	Varier       varying.Varier
	Copywriter   copywriting.Copywriter
	Analyzer     branding.Analyzer
	Collector    collecting.Collector
	SessionSweep *scheduler.SessionSweepService
}

func New(config *config.Config, services Services) (*Server, error) {
	cronServices := handler.CronJobServices{}
	if services.SessionSweep != nil {
		cronServices[handler.CronJobTypeSessionSweep] = services.SessionSweep
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Ads(services.Generator)...),
		router.WithRoutes(handler.Variations(services.Varier)...),
		router.WithRoutes(handler.Copywriting(services.Copywriter)...),
		router.WithRoutes(handler.Branding(services.Analyzer)...),
		router.WithRoutes(handler.Sessions(services.Collector)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
	}
	if config.Server.EnableGzip {
		middlewares = append(middlewares, gziphandler.GzipHandler)
	}

	handler := alice.New(middlewares...).Then(rt)

	// Um kit completo encadeia várias chamadas aos provedores; a escrita precisa acompanhar
	timeoutSeconds := config.Generation.RequestTimeoutSeconds
	if timeoutSeconds <= 0 {
		timeoutSeconds = config.App.HTTPTimeoutSeconds
	}
	writeTimeout := time.Duration(timeoutSeconds+30) * time.Second

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      writeTimeout,
			IdleTimeout:       120 * time.Second,
		},
	}

	return srv, nil
}

// Handler expõe a cadeia HTTP completa, usada nos testes de integração
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Log de início do desligamento
	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	// Aqui você pode adicionar operações de limpeza adicionais
	// como fechar conexões com bancos de dados, limpar recursos, etc.

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}

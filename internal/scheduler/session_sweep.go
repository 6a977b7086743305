// Package scheduler contém os serviços agendados da API
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/fluxweave-api/internal/config"
	"github.com/vfg2006/fluxweave-api/internal/usecases/collecting"
)

type SessionSweepConfig struct {
	CronSchedule string
	TTL          time.Duration
	SyncEnabled  bool
}

// SessionSweepService remove periodicamente as sessões de coleção ociosas
type SessionSweepService struct {
	scheduler    *gocron.Scheduler
	collector    collecting.Collector
	config       SessionSweepConfig
	sweepRunning bool
	sweepMutex   sync.Mutex
	lastSweepAt  time.Time
	lastExpired  int
	totalExpired int
}

func NewSessionSweepService(collector collecting.Collector, cfg *config.Config) *SessionSweepService {
	sweepConfig := SessionSweepConfig{
		CronSchedule: cfg.SessionSweep.CronSchedule, // Default: a cada 10 minutos
		TTL:          time.Duration(cfg.SessionSweep.TTLMinutes) * time.Minute,
		SyncEnabled:  cfg.SessionSweep.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": sweepConfig.CronSchedule,
		"ttl":           sweepConfig.TTL.String(),
	}).Info("Configuração da limpeza de sessões carregada")

	return &SessionSweepService{
		scheduler: scheduler,
		collector: collector,
		config:    sweepConfig,
	}
}

func (s *SessionSweepService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled || s.config.TTL <= 0 {
		logrus.Info("Limpeza de sessões desabilitada pela configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(s.Sweep)
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de sessões: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando a limpeza de sessões")
		s.scheduler.Stop()
	}()

	return nil
}

// Sweep expira as sessões ociosas; execuções sobrepostas são ignoradas
func (s *SessionSweepService) Sweep() {
	s.sweepMutex.Lock()
	if s.sweepRunning {
		s.sweepMutex.Unlock()
		logrus.Warn("Limpeza de sessões já está em execução")
		return
	}
	s.sweepRunning = true
	s.sweepMutex.Unlock()

	expired := s.collector.ExpireIdle(s.config.TTL)

	s.sweepMutex.Lock()
	s.sweepRunning = false
	s.lastSweepAt = time.Now()
	s.lastExpired = expired
	s.totalExpired += expired
	s.sweepMutex.Unlock()

	if expired > 0 {
		logrus.WithField("expired", expired).Info("Sessões ociosas expiradas")
	}
}

// TriggerManualSync dispara uma limpeza fora do agendamento
func (s *SessionSweepService) TriggerManualSync() {
	s.sweepMutex.Lock()
	running := s.sweepRunning
	s.sweepMutex.Unlock()

	if running {
		logrus.Info("Limpeza de sessões em andamento, ignorando disparo manual")
		return
	}

	go s.Sweep()
}

func (s *SessionSweepService) GetStatus() map[string]any {
	s.sweepMutex.Lock()
	defer s.sweepMutex.Unlock()

	return map[string]any{
		"sweep_enabled": s.config.SyncEnabled,
		"sweep_cron":    s.config.CronSchedule,
		"session_ttl":   s.config.TTL.String(),
		"sweep_running": s.sweepRunning,
		"last_sweep_at": s.lastSweepAt,
		"last_expired":  s.lastExpired,
		"total_expired": s.totalExpired,
	}
}

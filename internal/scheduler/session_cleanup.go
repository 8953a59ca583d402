package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/mannersmaketh/ga-audit-v2/internal/config"
	"github.com/mannersmaketh/ga-audit-v2/internal/usecases/authorizing"
	"github.com/sirupsen/logrus"
)

// SessionCleanupConfig representa a configuração do agendador de limpeza de sessões
type SessionCleanupConfig struct {
	CronSchedule   string
	CleanupEnabled bool
}

// SessionCleanupService gerencia o agendamento e execução da limpeza de
// sessões OAuth expiradas que não podem mais ser renovadas
type SessionCleanupService struct {
	scheduler            *gocron.Scheduler
	config               SessionCleanupConfig
	authorizer           authorizing.Authorizer
	cleanupRunning       bool
	cleanupMutex         sync.Mutex
	lastCleanupStartedAt time.Time
	lastCleanupFinished  time.Time
	lastRemovedCount     int
}

// NewSessionCleanupService cria uma nova instância do serviço de limpeza de sessões
func NewSessionCleanupService(authorizer authorizing.Authorizer, appConfig *config.Config) *SessionCleanupService {
	cleanupConfig := SessionCleanupConfig{
		CronSchedule:   appConfig.SessionJanitor.CronSchedule,
		CleanupEnabled: appConfig.SessionJanitor.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   cleanupConfig.CronSchedule,
		"cleanup_enabled": cleanupConfig.CleanupEnabled,
	}).Info("Configuração do agendador de limpeza de sessões carregada")

	return &SessionCleanupService{
		scheduler:      scheduler,
		config:         cleanupConfig,
		authorizer:     authorizer,
		cleanupRunning: false,
	}
}

// Start inicia o agendador
func (s *SessionCleanupService) Start(ctx context.Context) error {
	if !s.config.CleanupEnabled {
		logrus.Info("Limpeza de sessões desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de limpeza de sessões")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.cleanupSessions()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de sessões: %w", err)
	}

	s.scheduler.StartAsync()

	// Parar o agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de limpeza de sessões")
		s.scheduler.Stop()
	}()

	return nil
}

// cleanupSessions remove sessões expiradas sem refresh token e nonces de
// estado vencidos. Chamadas em andamento que já obtiveram o ponteiro da
// sessão não são afetadas.
func (s *SessionCleanupService) cleanupSessions() {
	s.cleanupMutex.Lock()
	if s.cleanupRunning {
		s.cleanupMutex.Unlock()
		logrus.Info("Limpeza de sessões já em andamento, ignorando")
		return
	}
	s.cleanupRunning = true
	s.cleanupMutex.Unlock()

	startTime := time.Now()
	s.lastCleanupStartedAt = startTime

	defer func() {
		s.cleanupMutex.Lock()
		s.cleanupRunning = false
		s.cleanupMutex.Unlock()
	}()

	removed := s.authorizer.CleanupExpired()

	s.lastRemovedCount = removed
	s.lastCleanupFinished = time.Now()

	logrus.WithFields(logrus.Fields{
		"removed_sessions": removed,
		"duration":         time.Since(startTime).String(),
	}).Info("Limpeza de sessões concluída")
}

// TriggerManualCleanup inicia manualmente uma limpeza de sessões
func (s *SessionCleanupService) TriggerManualCleanup() {
	s.cleanupMutex.Lock()
	if s.cleanupRunning {
		s.cleanupMutex.Unlock()
		logrus.Info("Limpeza de sessões já em andamento, ignorando solicitação manual")
		return
	}
	s.cleanupMutex.Unlock()

	logrus.Info("Iniciando limpeza manual de sessões")
	go s.cleanupSessions()
}

// GetStatus retorna o status atual do agendador
func (s *SessionCleanupService) GetStatus() map[string]any {
	return map[string]any{
		"cleanup_enabled":         s.config.CleanupEnabled,
		"cleanup_cron":            s.config.CronSchedule,
		"last_cleanup_started_at": s.lastCleanupStartedAt,
		"last_cleanup_ended_at":   s.lastCleanupFinished,
		"last_removed_sessions":   s.lastRemovedCount,
	}
}

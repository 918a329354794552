// Package scheduler contém os serviços de agendamento para sincronização de dados
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/mesafacil/pricing-api/internal/config"
	"github.com/mesafacil/pricing-api/internal/usecases/pricing"
	"github.com/sirupsen/logrus"
)

// HolidaySyncService recarrega periodicamente o cache de feriados
// customizados do calendário de precificação
type HolidaySyncService struct {
	scheduler *gocron.Scheduler
	calendar  *pricing.Calendar
	config    config.HolidaySync

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

func NewHolidaySyncService(calendar *pricing.Calendar, cfg *config.Config) *HolidaySyncService {
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": cfg.HolidaySync.CronSchedule,
	}).Info("Configuração do agendador de feriados carregada")

	return &HolidaySyncService{
		scheduler: scheduler,
		calendar:  calendar,
		config:    cfg.HolidaySync,
	}
}

func (s *HolidaySyncService) Start(ctx context.Context) error {
	// Carga inicial mesmo com o cron desabilitado; sem ela o calendário só
	// conhece as datas embutidas
	if err := s.SyncNow(); err != nil {
		logrus.WithError(err).Warn("Falha na carga inicial de feriados customizados")
	}

	if !s.config.Enabled {
		logrus.Info("Cron de sincronização de feriados desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de sincronização de feriados")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.SyncNow(); err != nil {
			logrus.WithError(err).Error("Erro na sincronização de feriados customizados")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de feriados: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de sincronização de feriados")
		s.scheduler.Stop()
	}()

	return nil
}

// SyncNow executa uma sincronização imediata, também acionável via API
func (s *HolidaySyncService) SyncNow() error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Sincronização de feriados já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	err := s.calendar.Refresh()
	if err != nil {
		s.lastSyncError = err.Error()
		return err
	}

	s.lastSyncError = ""
	return nil
}

// Status reporta o estado da última sincronização para o endpoint de cron
func (s *HolidaySyncService) Status() map[string]interface{} {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]interface{}{
		"enabled":       s.config.Enabled,
		"cron_schedule": s.config.CronSchedule,
		"running":       s.syncRunning,
	}

	if !s.lastSyncStartedAt.IsZero() {
		status["last_sync_started_at"] = s.lastSyncStartedAt.Format(time.RFC3339)
	}
	if !s.lastSyncCompletedAt.IsZero() {
		status["last_sync_completed_at"] = s.lastSyncCompletedAt.Format(time.RFC3339)
	}
	if s.lastSyncError != "" {
		status["last_sync_error"] = s.lastSyncError
	}

	return status
}

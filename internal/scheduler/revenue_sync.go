package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/kpi-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/kpi-dashboard-api/internal/config"
	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
	"github.com/vfg2006/kpi-dashboard-api/pkg/metrics"
	"github.com/vfg2006/kpi-dashboard-api/pkg/utils"
)

const recentUpdatesLimit = 10

var ErrSyncInProgress = errors.New("sincronização já em andamento")

// RevenueSyncConfig representa a configuração do agendador de faturamento
type RevenueSyncConfig struct {
	IntervalMinutes int
	SyncEnabled     bool
}

// SyncStatus é o estado exposto em /api/sync/status
type SyncStatus struct {
	SyncEnabled         bool                     `json:"sync_enabled"`
	IntervalMinutes     int                      `json:"interval_minutes"`
	Mode                string                   `json:"mode"`
	Running             bool                     `json:"running"`
	LastSyncStartedAt   *time.Time               `json:"last_sync_started_at"`
	LastSyncCompletedAt *time.Time               `json:"last_sync_completed_at"`
	LastError           string                   `json:"last_error,omitempty"`
	RecentUpdates       []*domain.UpdateLogEntry `json:"recent_updates"`
}

// RevenueSyncService agenda e executa o ciclo fetch → KPI → upsert dos CDPs → log
type RevenueSyncService struct {
	scheduler     *gocron.Scheduler
	config        RevenueSyncConfig
	source        RevenueSource
	kpiRepo       repository.KpiRepository
	chefRepo      repository.ChefProjetRepository
	updateLogRepo repository.UpdateLogRepository

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   *time.Time
	lastSyncCompletedAt *time.Time
	lastError           string
}

func NewRevenueSyncService(
	source RevenueSource,
	kpiRepo repository.KpiRepository,
	chefRepo repository.ChefProjetRepository,
	updateLogRepo repository.UpdateLogRepository,
	appConfig *config.Config,
) *RevenueSyncService {
	syncConfig := RevenueSyncConfig{
		IntervalMinutes: appConfig.RevenueSync.IntervalMinutes,
		SyncEnabled:     appConfig.RevenueSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"interval_minutes": syncConfig.IntervalMinutes,
		"sync_enabled":     syncConfig.SyncEnabled,
		"mode":             source.Mode(),
	}).Info("Configuração do agendador de faturamento carregada")

	return &RevenueSyncService{
		scheduler:     gocron.NewScheduler(time.Local),
		config:        syncConfig,
		source:        source,
		kpiRepo:       kpiRepo,
		chefRepo:      chefRepo,
		updateLogRepo: updateLogRepo,
	}
}

// Start agenda a sincronização periódica, com uma primeira execução imediata
func (s *RevenueSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de faturamento desabilitada por configuração")
		return nil
	}

	logrus.WithField("interval_minutes", s.config.IntervalMinutes).Info("Iniciando agendador de sincronização de faturamento")

	_, err := s.scheduler.Every(s.config.IntervalMinutes).Minutes().StartImmediately().Do(func() {
		s.runScheduled(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de faturamento: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de faturamento")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *RevenueSyncService) runScheduled(ctx context.Context) {
	if err := s.RunSync(ctx); errors.Is(err, ErrSyncInProgress) {
		logrus.Info("Sincronização de faturamento já em andamento, ignorando execução agendada")
	}
}

// RunSync executa um ciclo completo. Toda falha já fica registrada no update_log;
// o erro retornado serve apenas para o disparo manual.
func (s *RevenueSyncService) RunSync(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		return ErrSyncInProgress
	}
	s.syncRunning = true
	startTime := time.Now()
	s.lastSyncStartedAt = &startTime
	s.syncMutex.Unlock()

	mode := s.source.Mode()
	logger := logrus.WithFields(logrus.Fields{
		"run_id": utils.GenerateRunID(),
		"mode":   mode,
	})

	logger.Info("Iniciando sincronização de faturamento")

	data, err := s.safeSync(ctx, logger)

	duration := time.Since(startTime)
	metrics.SyncDuration.WithLabelValues(mode).Observe(duration.Seconds())

	s.syncMutex.Lock()
	completedAt := time.Now()
	s.lastSyncCompletedAt = &completedAt
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	}
	s.syncRunning = false
	s.syncMutex.Unlock()

	if err != nil {
		metrics.SyncRunsTotal.WithLabelValues(mode, string(domain.UpdateStatusError)).Inc()
		logger.WithError(err).Error("Falha na sincronização de faturamento")

		if logErr := s.updateLogRepo.Append(context.WithoutCancel(ctx), domain.UpdateStatusError, err.Error()); logErr != nil {
			logger.WithError(logErr).Error("Erro ao registrar falha da sincronização no update_log")
		}
		return err
	}

	metrics.SyncRunsTotal.WithLabelValues(mode, string(domain.UpdateStatusSuccess)).Inc()
	metrics.SyncChefsProjet.Set(float64(len(data.ChefsProjet)))
	metrics.SyncTotalRevenue.Set(data.Total)

	logger.WithFields(logrus.Fields{
		"duration": duration.String(),
		"cdps":     len(data.ChefsProjet),
		"total":    data.Total,
	}).Info("Sincronização de faturamento concluída")

	return nil
}

// safeSync isola panics do ciclo para que o agendador continue rodando
func (s *RevenueSyncService) safeSync(ctx context.Context, logger *logrus.Entry) (data *domain.SourceData, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic durante a sincronização: %v", r)
		}
	}()

	return s.sync(ctx, logger)
}

func (s *RevenueSyncService) sync(ctx context.Context, logger *logrus.Entry) (*domain.SourceData, error) {
	mode := s.source.Mode()

	data, err := s.source.Fetch(ctx)
	if err != nil {
		return nil, domain.NewSyncError(domain.SyncStageFetch, err)
	}

	if data.SkippedRows > 0 {
		metrics.SourceRowsSkippedTotal.WithLabelValues(mode).Add(float64(data.SkippedRows))
		logger.WithField("skipped_rows", data.SkippedRows).Warn("Linhas mal formatadas ignoradas")
	}

	snapshot := &domain.KpiSnapshot{
		ChiffreAffaire:   data.Total,
		ObjectifAnnuel:   data.ObjectifAnnuel,
		ObjectifDecembre: data.ObjectifDecembre,
		WinRate:          data.WinRate,
	}
	if err := s.kpiRepo.Save(ctx, snapshot); err != nil {
		return nil, domain.NewSyncError(domain.SyncStageKpi, fmt.Errorf("%w: %s", domain.ErrStore, err.Error()))
	}

	for _, chef := range data.ChefsProjet {
		if err := s.chefRepo.Upsert(ctx, chef.ToChefProjet()); err != nil {
			return nil, domain.NewSyncError(domain.SyncStageUpsert,
				fmt.Errorf("%w: CDP %s %s: %s", domain.ErrStore, chef.Nom, chef.Prenom, err.Error()))
		}
	}

	message := fmt.Sprintf("[%s] Synced %d CDPs, total: %s€", mode, len(data.ChefsProjet), utils.FormatAmount(data.Total))
	if err := s.updateLogRepo.Append(ctx, domain.UpdateStatusSuccess, message); err != nil {
		return nil, fmt.Errorf("%w: erro ao registrar sucesso: %s", domain.ErrStore, err.Error())
	}

	return data, nil
}

// GetStatus retorna o status atual do agendador e as últimas entradas do update_log
func (s *RevenueSyncService) GetStatus(ctx context.Context) SyncStatus {
	s.syncMutex.Lock()
	status := SyncStatus{
		SyncEnabled:         s.config.SyncEnabled,
		IntervalMinutes:     s.config.IntervalMinutes,
		Mode:                s.source.Mode(),
		Running:             s.syncRunning,
		LastSyncStartedAt:   s.lastSyncStartedAt,
		LastSyncCompletedAt: s.lastSyncCompletedAt,
		LastError:           s.lastError,
	}
	s.syncMutex.Unlock()

	recent, err := s.updateLogRepo.ListRecent(ctx, recentUpdatesLimit)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao buscar últimas atualizações")
		recent = []*domain.UpdateLogEntry{}
	}
	status.RecentUpdates = recent

	return status
}

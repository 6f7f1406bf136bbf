package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/kpi-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/kpi-dashboard-api/internal/config"
	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
)

// Querier atende os endpoints de leitura do dashboard; só lê do banco
type Querier interface {
	GetLatestKPI(ctx context.Context) (*domain.KpiSnapshot, error)
	ListChefsProjet(ctx context.Context) ([]*domain.ChefProjet, error)
	GetLastUpdate(ctx context.Context) (*time.Time, error)
	GetObjectifAnnuel(ctx context.Context) (float64, error)
	GetLastModified(ctx context.Context) (float64, error)
}

// ModificationSource informa quando o arquivo local foi alterado pela última vez
type ModificationSource interface {
	LastModified() (time.Time, error)
}

type Service struct {
	kpiRepo       repository.KpiRepository
	chefRepo      repository.ChefProjetRepository
	updateLogRepo repository.UpdateLogRepository
	configFile    ModificationSource
	cfg           *config.Config
}

func NewService(
	kpiRepo repository.KpiRepository,
	chefRepo repository.ChefProjetRepository,
	updateLogRepo repository.UpdateLogRepository,
	configFile ModificationSource,
	cfg *config.Config,
) Querier {
	return &Service{
		kpiRepo:       kpiRepo,
		chefRepo:      chefRepo,
		updateLogRepo: updateLogRepo,
		configFile:    configFile,
		cfg:           cfg,
	}
}

// GetLatestKPI retorna o último snapshot ou zeros com timestamp nulo antes da primeira sincronização
func (s *Service) GetLatestKPI(ctx context.Context) (*domain.KpiSnapshot, error) {
	snapshot, err := s.kpiRepo.GetLatest(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar KPI: %w", err)
	}

	if snapshot == nil {
		return domain.EmptyKpiSnapshot(), nil
	}

	return snapshot, nil
}

func (s *Service) ListChefsProjet(ctx context.Context) ([]*domain.ChefProjet, error) {
	chefs, err := s.chefRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar CDPs: %w", err)
	}

	if chefs == nil {
		return []*domain.ChefProjet{}, nil
	}

	return chefs, nil
}

func (s *Service) GetLastUpdate(ctx context.Context) (*time.Time, error) {
	lastUpdate, err := s.updateLogRepo.LastSuccessAt(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar última atualização: %w", err)
	}
	return lastUpdate, nil
}

func (s *Service) GetObjectifAnnuel(ctx context.Context) (float64, error) {
	snapshot, err := s.kpiRepo.GetLatest(ctx)
	if err != nil {
		return 0, fmt.Errorf("erro ao buscar objectif annuel: %w", err)
	}

	if snapshot == nil {
		return s.cfg.Source.DefaultObjectifAnnuel, nil
	}

	return snapshot.ObjectifAnnuel, nil
}

// GetLastModified retorna, em segundos unix, a data de modificação do arquivo local (offline)
// ou da última sincronização bem-sucedida (online); 0 quando não houver nenhuma.
func (s *Service) GetLastModified(ctx context.Context) (float64, error) {
	if s.cfg.Source.OfflineMode && s.configFile != nil {
		mtime, err := s.configFile.LastModified()
		if err != nil {
			return 0, err
		}
		return unixSeconds(mtime), nil
	}

	lastUpdate, err := s.GetLastUpdate(ctx)
	if err != nil {
		return 0, err
	}

	if lastUpdate == nil {
		return 0, nil
	}

	return unixSeconds(*lastUpdate), nil
}

func unixSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}

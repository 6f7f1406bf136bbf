package dashboard

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/kpi-dashboard-api/infrastructure/database/databasetest"
	"github.com/vfg2006/kpi-dashboard-api/infrastructure/integrator/configfile"
	"github.com/vfg2006/kpi-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/kpi-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/kpi-dashboard-api/internal/config"
	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	service       Querier
	kpiRepo       repository.KpiRepository
	chefRepo      repository.ChefProjetRepository
	updateLogRepo repository.UpdateLogRepository
}

func newFixture(t *testing.T, cfg *config.Config) fixture {
	conn := databasetest.NewSQLite(t)
	f := fixture{
		kpiRepo:       repository.NewKpiRepository(conn),
		chefRepo:      repository.NewChefProjetRepository(conn),
		updateLogRepo: repository.NewUpdateLogRepository(conn),
	}
	f.service = NewService(f.kpiRepo, f.chefRepo, f.updateLogRepo, configfile.New(cfg), cfg)
	return f
}

func onlineConfig() *config.Config {
	return &config.Config{Source: config.Source{DefaultObjectifAnnuel: 100000}}
}

func TestService_GetLatestKPI(t *testing.T) {
	ctx := context.Background()

	t.Run("antes da primeira sincronização retorna zeros e timestamp nulo", func(t *testing.T) {
		f := newFixture(t, onlineConfig())

		kpi, err := f.service.GetLatestKPI(ctx)

		require.NoError(t, err)
		assert.Zero(t, kpi.ChiffreAffaire)
		assert.Zero(t, kpi.ObjectifAnnuel)
		assert.Zero(t, kpi.ObjectifDecembre)
		assert.Zero(t, kpi.WinRate)
		assert.Nil(t, kpi.CreatedAt)
	})

	t.Run("retorna o snapshot mais recente", func(t *testing.T) {
		f := newFixture(t, onlineConfig())
		require.NoError(t, f.kpiRepo.Save(ctx, &domain.KpiSnapshot{ChiffreAffaire: 10, ObjectifAnnuel: 100}))
		require.NoError(t, f.kpiRepo.Save(ctx, &domain.KpiSnapshot{ChiffreAffaire: 20, ObjectifAnnuel: 200, WinRate: 0.5}))

		kpi, err := f.service.GetLatestKPI(ctx)

		require.NoError(t, err)
		assert.Equal(t, 20.0, kpi.ChiffreAffaire)
		assert.Equal(t, 0.5, kpi.WinRate)
		assert.NotNil(t, kpi.CreatedAt)
	})

	t.Run("erro do banco", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		kpiRepo := mocks.NewMockKpiRepository(ctrl)
		kpiRepo.EXPECT().GetLatest(gomock.Any()).Return(nil, errors.New("no such table"))

		service := NewService(kpiRepo, nil, nil, nil, onlineConfig())

		_, err := service.GetLatestKPI(ctx)
		assert.Error(t, err)
	})
}

func TestService_ListChefsProjet(t *testing.T) {
	ctx := context.Background()

	t.Run("sem CDPs retorna lista vazia", func(t *testing.T) {
		f := newFixture(t, onlineConfig())

		chefs, err := f.service.ListChefsProjet(ctx)

		require.NoError(t, err)
		assert.NotNil(t, chefs)
		assert.Empty(t, chefs)
	})

	t.Run("ordenados por faturamento decrescente", func(t *testing.T) {
		f := newFixture(t, onlineConfig())
		require.NoError(t, f.chefRepo.Upsert(ctx, &domain.ChefProjet{Nom: "A", Prenom: "a", ChiffreAffaire: 5}))
		require.NoError(t, f.chefRepo.Upsert(ctx, &domain.ChefProjet{Nom: "B", Prenom: "b", ChiffreAffaire: 50}))

		chefs, err := f.service.ListChefsProjet(ctx)

		require.NoError(t, err)
		require.Len(t, chefs, 2)
		assert.Equal(t, "B", chefs[0].Nom)
	})
}

func TestService_GetLastUpdate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, onlineConfig())

	lastUpdate, err := f.service.GetLastUpdate(ctx)
	require.NoError(t, err)
	assert.Nil(t, lastUpdate)

	require.NoError(t, f.updateLogRepo.Append(ctx, domain.UpdateStatusError, "falhou"))
	lastUpdate, err = f.service.GetLastUpdate(ctx)
	require.NoError(t, err)
	assert.Nil(t, lastUpdate, "entradas de erro não contam como atualização")

	require.NoError(t, f.updateLogRepo.Append(ctx, domain.UpdateStatusSuccess, "ok"))
	lastUpdate, err = f.service.GetLastUpdate(ctx)
	require.NoError(t, err)
	assert.NotNil(t, lastUpdate)
}

func TestService_GetObjectifAnnuel(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, onlineConfig())

	objectif, err := f.service.GetObjectifAnnuel(ctx)
	require.NoError(t, err)
	assert.Equal(t, 100000.0, objectif)

	require.NoError(t, f.kpiRepo.Save(ctx, &domain.KpiSnapshot{ObjectifAnnuel: 250000}))
	objectif, err = f.service.GetObjectifAnnuel(ctx)
	require.NoError(t, err)
	assert.Equal(t, 250000.0, objectif)
}

func TestService_GetLastModified(t *testing.T) {
	ctx := context.Background()

	t.Run("offline usa a data de modificação do arquivo", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))
		mtime := time.Unix(1714564800, 0)
		require.NoError(t, os.Chtimes(path, mtime, mtime))

		cfg := onlineConfig()
		cfg.Source.OfflineMode = true
		cfg.Source.ConfigFilePath = path
		f := newFixture(t, cfg)

		lastModified, err := f.service.GetLastModified(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1714564800.0, lastModified)
	})

	t.Run("offline com arquivo ausente", func(t *testing.T) {
		cfg := onlineConfig()
		cfg.Source.OfflineMode = true
		cfg.Source.ConfigFilePath = filepath.Join(t.TempDir(), "missing.json")
		f := newFixture(t, cfg)

		_, err := f.service.GetLastModified(ctx)
		assert.Error(t, err)
	})

	t.Run("online sem sincronização retorna zero", func(t *testing.T) {
		f := newFixture(t, onlineConfig())

		lastModified, err := f.service.GetLastModified(ctx)

		require.NoError(t, err)
		assert.Zero(t, lastModified)
	})

	t.Run("online usa a última sincronização", func(t *testing.T) {
		f := newFixture(t, onlineConfig())
		require.NoError(t, f.updateLogRepo.Append(ctx, domain.UpdateStatusSuccess, "ok"))

		lastModified, err := f.service.GetLastModified(ctx)

		require.NoError(t, err)
		assert.InDelta(t, float64(time.Now().Unix()), lastModified, 60)
	})
}

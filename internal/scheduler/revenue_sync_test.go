package scheduler

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/kpi-dashboard-api/infrastructure/database/databasetest"
	"github.com/vfg2006/kpi-dashboard-api/infrastructure/integrator/sheets"
	sheetsmocks "github.com/vfg2006/kpi-dashboard-api/infrastructure/integrator/sheets/sheetsclient/mocks"
	"github.com/vfg2006/kpi-dashboard-api/infrastructure/repository"
	repomocks "github.com/vfg2006/kpi-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/kpi-dashboard-api/internal/config"
	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
	"github.com/vfg2006/kpi-dashboard-api/internal/scheduler/mocks"
	"go.uber.org/mock/gomock"
)

type storeFixture struct {
	kpiRepo       repository.KpiRepository
	chefRepo      repository.ChefProjetRepository
	updateLogRepo repository.UpdateLogRepository
}

func newStoreFixture(t *testing.T) storeFixture {
	conn := databasetest.NewSQLite(t)
	return storeFixture{
		kpiRepo:       repository.NewKpiRepository(conn),
		chefRepo:      repository.NewChefProjetRepository(conn),
		updateLogRepo: repository.NewUpdateLogRepository(conn),
	}
}

func newTestConfig() *config.Config {
	return &config.Config{
		RevenueSync: config.RevenueSync{IntervalMinutes: 15, Enabled: true},
	}
}

func newMockSource(ctrl *gomock.Controller, mode string) *mocks.MockRevenueSource {
	source := mocks.NewMockRevenueSource(ctrl)
	source.EXPECT().Mode().Return(mode).AnyTimes()
	return source
}

func sampleData() *domain.SourceData {
	return &domain.SourceData{
		Total:          50000,
		ObjectifAnnuel: 100000,
		ChefsProjet: []domain.SourceChefProjet{
			{Nom: "Dupont", Prenom: "Jean", ChiffreAffaire: 1234.5},
			{Nom: "Martin", Prenom: "Alice", ChiffreAffaire: 3000},
			{Nom: "Durand", Prenom: "Paul", ChiffreAffaire: 800},
		},
		SkippedRows: 1,
	}
}

func TestRevenueSyncService_RunSync(t *testing.T) {
	ctx := context.Background()

	t.Run("linha mal formatada descartada: grava N CDPs e registra sucesso", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := newStoreFixture(t)
		source := newMockSource(ctrl, "ONLINE")
		source.EXPECT().Fetch(gomock.Any()).Return(sampleData(), nil)

		service := NewRevenueSyncService(source, store.kpiRepo, store.chefRepo, store.updateLogRepo, newTestConfig())

		require.NoError(t, service.RunSync(ctx))

		chefs, err := store.chefRepo.List(ctx)
		require.NoError(t, err)
		require.Len(t, chefs, 3)
		assert.Equal(t, "Martin", chefs[0].Nom)

		kpi, err := store.kpiRepo.GetLatest(ctx)
		require.NoError(t, err)
		require.NotNil(t, kpi)
		assert.Equal(t, 50000.0, kpi.ChiffreAffaire)
		assert.Equal(t, 100000.0, kpi.ObjectifAnnuel)

		entries, err := store.updateLogRepo.ListRecent(ctx, 10)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, domain.UpdateStatusSuccess, entries[0].Status)
		assert.Equal(t, "[ONLINE] Synced 3 CDPs, total: 50000€", entries[0].Message)
	})

	t.Run("falha no fetch mantém os dados e registra exatamente um erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := newStoreFixture(t)
		source := newMockSource(ctrl, "OFFLINE")

		gomock.InOrder(
			source.EXPECT().Fetch(gomock.Any()).Return(sampleData(), nil),
			source.EXPECT().Fetch(gomock.Any()).Return(nil, domain.ErrSourceUnavailable),
		)

		service := NewRevenueSyncService(source, store.kpiRepo, store.chefRepo, store.updateLogRepo, newTestConfig())
		require.NoError(t, service.RunSync(ctx))

		kpiBefore, err := store.kpiRepo.GetLatest(ctx)
		require.NoError(t, err)
		chefsBefore, err := store.chefRepo.List(ctx)
		require.NoError(t, err)

		err = service.RunSync(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrSourceUnavailable)

		var syncErr *domain.SyncError
		require.True(t, errors.As(err, &syncErr))
		assert.Equal(t, domain.SyncStageFetch, syncErr.Stage)

		kpiAfter, err := store.kpiRepo.GetLatest(ctx)
		require.NoError(t, err)
		assert.Equal(t, kpiBefore.ID, kpiAfter.ID)

		chefsAfter, err := store.chefRepo.List(ctx)
		require.NoError(t, err)
		require.Len(t, chefsAfter, len(chefsBefore))
		for i := range chefsBefore {
			assert.Equal(t, chefsBefore[i].ID, chefsAfter[i].ID)
			assert.Equal(t, chefsBefore[i].ChiffreAffaire, chefsAfter[i].ChiffreAffaire)
		}

		entries, err := store.updateLogRepo.ListRecent(ctx, 10)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, domain.UpdateStatusError, entries[0].Status)
		assert.Contains(t, entries[0].Message, "source unavailable")
		assert.Equal(t, domain.UpdateStatusSuccess, entries[1].Status)

		status := service.GetStatus(ctx)
		assert.NotEmpty(t, status.LastError)
		assert.False(t, status.Running)
	})

	t.Run("falha no upsert interrompe o restante do ciclo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := newMockSource(ctrl, "ONLINE")
		kpiRepo := repomocks.NewMockKpiRepository(ctrl)
		chefRepo := repomocks.NewMockChefProjetRepository(ctrl)
		updateLogRepo := repomocks.NewMockUpdateLogRepository(ctrl)

		source.EXPECT().Fetch(gomock.Any()).Return(sampleData(), nil)
		kpiRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		gomock.InOrder(
			chefRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil),
			chefRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(errors.New("disk I/O error")),
		)
		updateLogRepo.EXPECT().
			Append(gomock.Any(), domain.UpdateStatusError, gomock.Any()).
			Return(nil).
			Times(1)

		service := NewRevenueSyncService(source, kpiRepo, chefRepo, updateLogRepo, newTestConfig())

		err := service.RunSync(ctx)

		assert.ErrorIs(t, err, domain.ErrStore)
		var syncErr *domain.SyncError
		require.True(t, errors.As(err, &syncErr))
		assert.Equal(t, domain.SyncStageUpsert, syncErr.Stage)
		assert.Contains(t, err.Error(), "Martin Alice")
	})

	t.Run("falha ao gravar KPI não grava CDPs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := newMockSource(ctrl, "ONLINE")
		kpiRepo := repomocks.NewMockKpiRepository(ctrl)
		chefRepo := repomocks.NewMockChefProjetRepository(ctrl)
		updateLogRepo := repomocks.NewMockUpdateLogRepository(ctrl)

		source.EXPECT().Fetch(gomock.Any()).Return(sampleData(), nil)
		kpiRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("database is locked"))
		updateLogRepo.EXPECT().Append(gomock.Any(), domain.UpdateStatusError, gomock.Any()).Return(nil)

		service := NewRevenueSyncService(source, kpiRepo, chefRepo, updateLogRepo, newTestConfig())

		err := service.RunSync(ctx)

		assert.ErrorIs(t, err, domain.ErrStore)
	})

	t.Run("panic na fonte é contido e registrado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := newStoreFixture(t)
		source := newMockSource(ctrl, "ONLINE")
		source.EXPECT().Fetch(gomock.Any()).DoAndReturn(func(context.Context) (*domain.SourceData, error) {
			panic("boom")
		})

		service := NewRevenueSyncService(source, store.kpiRepo, store.chefRepo, store.updateLogRepo, newTestConfig())

		err := service.RunSync(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "boom")

		entries, err := store.updateLogRepo.ListRecent(ctx, 10)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, domain.UpdateStatusError, entries[0].Status)
	})

	t.Run("contexto cancelado ainda registra exatamente um erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := newStoreFixture(t)
		source := newMockSource(ctrl, "ONLINE")
		source.EXPECT().Fetch(gomock.Any()).Return(sampleData(), nil)

		service := NewRevenueSyncService(source, store.kpiRepo, store.chefRepo, store.updateLogRepo, newTestConfig())

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		err := service.RunSync(cancelled)
		require.Error(t, err)

		entries, err := store.updateLogRepo.ListRecent(ctx, 10)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, domain.UpdateStatusError, entries[0].Status)
		assert.False(t, service.GetStatus(ctx).Running)
	})

	t.Run("sincronização em andamento não é enfileirada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := newStoreFixture(t)
		source := newMockSource(ctrl, "ONLINE")

		service := NewRevenueSyncService(source, store.kpiRepo, store.chefRepo, store.updateLogRepo, newTestConfig())
		service.syncRunning = true

		err := service.RunSync(ctx)

		assert.ErrorIs(t, err, ErrSyncInProgress)

		entries, err := store.updateLogRepo.ListRecent(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestRevenueSyncService_GetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := newStoreFixture(t)
	source := newMockSource(ctrl, "OFFLINE")
	source.EXPECT().Fetch(gomock.Any()).Return(sampleData(), nil)

	service := NewRevenueSyncService(source, store.kpiRepo, store.chefRepo, store.updateLogRepo, newTestConfig())

	status := service.GetStatus(context.Background())
	assert.True(t, status.SyncEnabled)
	assert.Equal(t, 15, status.IntervalMinutes)
	assert.Equal(t, "OFFLINE", status.Mode)
	assert.Nil(t, status.LastSyncStartedAt)
	assert.Empty(t, status.RecentUpdates)

	require.NoError(t, service.RunSync(context.Background()))

	status = service.GetStatus(context.Background())
	require.NotNil(t, status.LastSyncStartedAt)
	require.NotNil(t, status.LastSyncCompletedAt)
	assert.Empty(t, status.LastError)
	require.Len(t, status.RecentUpdates, 1)
}

func TestRevenueSyncService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := newStoreFixture(t)
	source := newMockSource(ctrl, "ONLINE")

	cfg := newTestConfig()
	cfg.RevenueSync.Enabled = false

	service := NewRevenueSyncService(source, store.kpiRepo, store.chefRepo, store.updateLogRepo, cfg)

	require.NoError(t, service.Start(context.Background()))
	assert.False(t, service.scheduler.IsRunning())
}

func TestRevenueSyncService_RunSyncFromSheets(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := newStoreFixture(t)

	credentials := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(credentials, []byte("{}"), 0o600))

	cfg := newTestConfig()
	cfg.Source.DefaultObjectifAnnuel = 100000
	cfg.GoogleSheet = config.GoogleSheet{
		CredentialsPath: credentials,
		SpreadsheetID:   "sheet-id",
		Range:           "Sheet1!A1:C100",
		TotalRowLabels:  []string{"TOTAL", "JEECE"},
	}

	client := sheetsmocks.NewMockClient(ctrl)
	client.EXPECT().GetValues(gomock.Any(), "sheet-id", "Sheet1!A1:C100").Return([][]interface{}{
		{"Nom", "Prenom", "CA"},
		{"Dupont", "Jean", "1 234,50€"},
		{"Martin", "Alice", "pas un nombre"},
		{"Durand", "Paul", "2 000"},
		{"TOTAL", "", "50000"},
	}, nil)

	service := NewRevenueSyncService(sheets.New(cfg, client), store.kpiRepo, store.chefRepo, store.updateLogRepo, cfg)

	require.NoError(t, service.RunSync(ctx))

	chefs, err := store.chefRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, chefs, 2)
	assert.Equal(t, "Durand", chefs[0].Nom)
	assert.Equal(t, 2000.0, chefs[0].ChiffreAffaire)
	assert.Equal(t, "Dupont", chefs[1].Nom)
	assert.Equal(t, 1234.5, chefs[1].ChiffreAffaire)

	kpi, err := store.kpiRepo.GetLatest(ctx)
	require.NoError(t, err)
	require.NotNil(t, kpi)
	assert.Equal(t, 50000.0, kpi.ChiffreAffaire)

	entries, err := store.updateLogRepo.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.UpdateStatusSuccess, entries[0].Status)
	assert.Equal(t, "[ONLINE] Synced 2 CDPs, total: 50000€", entries[0].Message)
}

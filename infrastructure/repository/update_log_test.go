package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/kpi-dashboard-api/infrastructure/database/databasetest"
	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
)

func TestUpdateLogRepository_LastSuccessAt(t *testing.T) {
	ctx := context.Background()
	repo := NewUpdateLogRepository(databasetest.NewSQLite(t)).(*updateLogRepository)

	lastUpdate, err := repo.LastSuccessAt(ctx)
	require.NoError(t, err)
	assert.Nil(t, lastUpdate)

	base := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	repo.now = func() time.Time { return base }
	require.NoError(t, repo.Append(ctx, domain.UpdateStatusSuccess, "[ONLINE] Synced 2 CDPs, total: 100.00€"))

	repo.now = func() time.Time { return base.Add(15 * time.Minute) }
	require.NoError(t, repo.Append(ctx, domain.UpdateStatusError, "source unavailable"))

	lastUpdate, err = repo.LastSuccessAt(ctx)
	require.NoError(t, err)
	require.NotNil(t, lastUpdate)
	assert.True(t, lastUpdate.Equal(base), "erro não deve contar como atualização")
}

func TestUpdateLogRepository_ListRecent(t *testing.T) {
	ctx := context.Background()
	repo := NewUpdateLogRepository(databasetest.NewSQLite(t))

	require.NoError(t, repo.Append(ctx, domain.UpdateStatusSuccess, "primeiro"))
	require.NoError(t, repo.Append(ctx, domain.UpdateStatusError, "segundo"))
	require.NoError(t, repo.Append(ctx, domain.UpdateStatusSuccess, "terceiro"))

	entries, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "terceiro", entries[0].Message)
	assert.Equal(t, domain.UpdateStatusSuccess, entries[0].Status)
	assert.Equal(t, "segundo", entries[1].Message)
	assert.Equal(t, domain.UpdateStatusError, entries[1].Status)
}

// Package databasetest abre bancos SQLite temporários para os testes dos pacotes
// que dependem do banco.
package databasetest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vfg2006/kpi-dashboard-api/infrastructure/database"
	"github.com/vfg2006/kpi-dashboard-api/internal/config"
)

// NewSQLite cria um banco em arquivo temporário com o schema já aplicado
func NewSQLite(t *testing.T) *database.Connection {
	t.Helper()

	cfg := config.Database{
		Driver: config.DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "dashboard_test.db"),
	}

	conn, err := database.NewConnection(context.Background(), cfg)
	require.NoError(t, err)

	t.Cleanup(func() {
		conn.Close()
	})

	return conn
}

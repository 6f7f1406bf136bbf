package sheets

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/kpi-dashboard-api/infrastructure/integrator/sheets/sheetsclient/mocks"
	"github.com/vfg2006/kpi-dashboard-api/internal/config"
	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

var defaultLabels = []string{"TOTAL", "JEECE"}

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()

	credentials := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(credentials, []byte("{}"), 0o600))

	return &config.Config{
		Source: config.Source{DefaultObjectifAnnuel: 100000},
		GoogleSheet: config.GoogleSheet{
			CredentialsPath: credentials,
			SpreadsheetID:   "sheet-id",
			Range:           "Sheet1!A1:C100",
			TotalRowLabels:  defaultLabels,
		},
	}
}

func TestParseRows(t *testing.T) {
	t.Run("exemplo com total e um CDP", func(t *testing.T) {
		values := [][]interface{}{
			{"Nom", "Prenom", "CA"},
			{"Dupont", "Jean", "1 234,50€"},
			{"TOTAL", "", "50000"},
		}

		data := ParseRows(values, defaultLabels)

		assert.Equal(t, 50000.0, data.Total)
		require.Len(t, data.ChefsProjet, 1)
		assert.Equal(t, "Dupont", data.ChefsProjet[0].Nom)
		assert.Equal(t, "Jean", data.ChefsProjet[0].Prenom)
		assert.Equal(t, 1234.50, data.ChefsProjet[0].ChiffreAffaire)
		assert.Nil(t, data.ChefsProjet[0].PhotoFilename)
		assert.Zero(t, data.SkippedRows)
	})

	t.Run("grade vazia", func(t *testing.T) {
		data := ParseRows(nil, defaultLabels)

		assert.Zero(t, data.Total)
		assert.Empty(t, data.ChefsProjet)
	})

	t.Run("apenas cabeçalho", func(t *testing.T) {
		data := ParseRows([][]interface{}{{"Nom", "Prenom", "CA"}}, defaultLabels)

		assert.Zero(t, data.Total)
		assert.Empty(t, data.ChefsProjet)
	})

	t.Run("linhas mal formatadas são ignoradas sem abortar", func(t *testing.T) {
		values := [][]interface{}{
			{"Nom", "Prenom", "CA"},
			{"Dupont", "Jean", "1000"},
			{"Curta", "Linha"},
			{"Martin", "Alice", "n/a"},
			{" Durand ", " Paul ", 2500.5},
			{"jeece", "", "3500"},
		}

		data := ParseRows(values, defaultLabels)

		assert.Equal(t, 3500.0, data.Total)
		assert.Equal(t, 2, data.SkippedRows)
		require.Len(t, data.ChefsProjet, 2)
		assert.Equal(t, "Dupont", data.ChefsProjet[0].Nom)
		assert.Equal(t, "Durand", data.ChefsProjet[1].Nom)
		assert.Equal(t, "Paul", data.ChefsProjet[1].Prenom)
		assert.Equal(t, 2500.5, data.ChefsProjet[1].ChiffreAffaire)
	})

	t.Run("rótulos de total configuráveis", func(t *testing.T) {
		values := [][]interface{}{
			{"Nom", "Prenom", "CA"},
			{"Somme", "", "42"},
			{"TOTAL", "X", "7"},
		}

		data := ParseRows(values, []string{"somme"})

		assert.Equal(t, 42.0, data.Total)
		require.Len(t, data.ChefsProjet, 1)
		assert.Equal(t, "TOTAL", data.ChefsProjet[0].Nom)
	})
}

func TestSheetsIntegrator_Fetch(t *testing.T) {
	ctx := context.Background()

	t.Run("sucesso aplica objectif padrão", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockClient(ctrl)
		cfg := newTestConfig(t)

		client.EXPECT().
			GetValues(gomock.Any(), "sheet-id", "Sheet1!A1:C100").
			Return([][]any{
				{"Nom", "Prenom", "CA"},
				{"Dupont", "Jean", "1 234,50€"},
				{"TOTAL", "", "50000"},
			}, nil)

		data, err := New(cfg, client).Fetch(ctx)

		require.NoError(t, err)
		assert.Equal(t, 50000.0, data.Total)
		assert.Equal(t, 100000.0, data.ObjectifAnnuel)
		assert.Zero(t, data.ObjectifDecembre)
		assert.Zero(t, data.WinRate)
		require.Len(t, data.ChefsProjet, 1)
	})

	t.Run("sem planilha configurada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockClient(ctrl)
		cfg := newTestConfig(t)
		cfg.GoogleSheet.SpreadsheetID = " "

		_, err := New(cfg, client).Fetch(ctx)

		assert.ErrorIs(t, err, domain.ErrConfiguration)
	})

	t.Run("arquivo de credenciais ausente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockClient(ctrl)
		cfg := newTestConfig(t)
		cfg.GoogleSheet.CredentialsPath = filepath.Join(t.TempDir(), "missing.json")

		_, err := New(cfg, client).Fetch(ctx)

		assert.ErrorIs(t, err, domain.ErrConfiguration)
	})

	t.Run("falha do cliente vira fonte indisponível", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockClient(ctrl)
		cfg := newTestConfig(t)

		client.EXPECT().
			GetValues(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("googleapi: Error 503"))

		_, err := New(cfg, client).Fetch(ctx)

		assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
		assert.Contains(t, err.Error(), "503")
	})

	t.Run("modo", func(t *testing.T) {
		assert.Equal(t, "ONLINE", New(newTestConfig(t), nil).Mode())
	})
}

package sheets

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/kpi-dashboard-api/infrastructure/integrator/sheets/sheetsclient"
	"github.com/vfg2006/kpi-dashboard-api/internal/config"
	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
)

const (
	Mode = "ONLINE"

	minRowCells = 3
)

type SheetsIntegrator struct {
	cfg    *config.Config
	Client sheetsclient.Client
}

func New(cfg *config.Config, client sheetsclient.Client) *SheetsIntegrator {
	return &SheetsIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *SheetsIntegrator) Mode() string {
	return Mode
}

// Fetch lê a planilha configurada e devolve o faturamento normalizado
func (s *SheetsIntegrator) Fetch(ctx context.Context) (*domain.SourceData, error) {
	sheetCfg := s.cfg.GoogleSheet

	if !sheetCfg.SpreadsheetConfigured() {
		return nil, fmt.Errorf("%w: GOOGLE_SPREADSHEET_ID não configurado", domain.ErrConfiguration)
	}

	if _, err := os.Stat(sheetCfg.CredentialsPath); err != nil {
		return nil, fmt.Errorf("%w: arquivo de credenciais não encontrado em %s", domain.ErrConfiguration, sheetCfg.CredentialsPath)
	}

	values, err := s.Client.GetValues(ctx, sheetCfg.SpreadsheetID, sheetCfg.Range)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"spreadsheet_id": sheetCfg.SpreadsheetID,
			"range":          sheetCfg.Range,
			"error":          err.Error(),
		}).Error("sheets: falha ao ler a planilha")
		return nil, fmt.Errorf("%w: %s", domain.ErrSourceUnavailable, err.Error())
	}

	data := ParseRows(values, sheetCfg.TotalRowLabels)
	data.ObjectifAnnuel = s.cfg.Source.DefaultObjectifAnnuel

	logrus.WithFields(logrus.Fields{
		"rows":    len(values),
		"cdps":    len(data.ChefsProjet),
		"skipped": data.SkippedRows,
	}).Debug("sheets: planilha lida com sucesso")

	return data, nil
}

// ParseRows interpreta a grade de valores: a primeira linha é cabeçalho, linhas cujo
// primeiro campo é um dos rótulos de total trazem o total geral na coluna C, as demais
// são CDPs (nom, prenom, chiffre d'affaire). Linhas inválidas são descartadas.
func ParseRows(values [][]interface{}, totalLabels []string) *domain.SourceData {
	data := &domain.SourceData{
		ChefsProjet: []domain.SourceChefProjet{},
	}

	if len(values) == 0 {
		return data
	}

	for i, row := range values[1:] {
		rowNumber := i + 2

		if len(row) < minRowCells {
			logrus.WithField("row", rowNumber).Warn("sheets: linha ignorada, menos de 3 colunas")
			data.SkippedRows++
			continue
		}

		first := cellString(row[0])

		amount, err := ParseAmount(cellString(row[2]))
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"row":   rowNumber,
				"error": err.Error(),
			}).Warn("sheets: linha ignorada, valor inválido")
			data.SkippedRows++
			continue
		}

		if isTotalLabel(first, totalLabels) {
			data.Total = amount
			continue
		}

		data.ChefsProjet = append(data.ChefsProjet, domain.SourceChefProjet{
			Nom:            first,
			Prenom:         cellString(row[1]),
			ChiffreAffaire: amount,
		})
	}

	return data
}

func isTotalLabel(value string, labels []string) bool {
	for _, label := range labels {
		if strings.EqualFold(value, label) {
			return true
		}
	}
	return false
}

func cellString(cell interface{}) string {
	if cell == nil {
		return ""
	}
	if s, ok := cell.(string); ok {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(fmt.Sprint(cell))
}

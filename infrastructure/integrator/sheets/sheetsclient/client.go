package sheetsclient

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/vfg2006/kpi-dashboard-api/internal/config"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

type Client interface {
	GetValues(ctx context.Context, spreadsheetID, readRange string) ([][]interface{}, error)
}

// SheetsClient lê intervalos de uma planilha usando uma service account em modo somente leitura
type SheetsClient struct {
	credentialsPath string

	mu      sync.Mutex
	service *sheets.Service
}

func NewClient(cfg *config.Config) Client {
	return &SheetsClient{
		credentialsPath: cfg.GoogleSheet.CredentialsPath,
	}
}

func (c *SheetsClient) getService(ctx context.Context) (*sheets.Service, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.service != nil {
		return c.service, nil
	}

	service, err := sheets.NewService(ctx,
		option.WithCredentialsFile(c.credentialsPath),
		option.WithScopes(sheets.SpreadsheetsReadonlyScope),
	)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar cliente do Google Sheets")
	}

	c.service = service
	return service, nil
}

func (c *SheetsClient) GetValues(ctx context.Context, spreadsheetID, readRange string) ([][]interface{}, error) {
	service, err := c.getService(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := service.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler intervalo %s", readRange)
	}

	return resp.Values, nil
}

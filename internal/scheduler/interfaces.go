package scheduler

import (
	"context"

	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
)

// RevenueSource é a fonte de faturamento (planilha no modo online, arquivo local no offline)
type RevenueSource interface {
	Fetch(ctx context.Context) (*domain.SourceData, error)
	Mode() string
}

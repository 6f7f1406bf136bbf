package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
	"github.com/vfg2006/kpi-dashboard-api/internal/scheduler"
	"github.com/vfg2006/kpi-dashboard-api/pkg/apiErrors"
)

type Syncer interface {
	RunSync(ctx context.Context) error
	GetStatus(ctx context.Context) scheduler.SyncStatus
}

// TriggerSync executa um ciclo de sincronização de forma síncrona
func TriggerSync(service Syncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("Sincronização manual solicitada")

		// o ciclo não é abortado se o cliente desconectar
		err := service.RunSync(context.WithoutCancel(r.Context()))
		switch {
		case errors.Is(err, scheduler.ErrSyncInProgress):
			apiErrors.WriteJSON(w, apiErrors.StatusFor(apiErrors.ErrSyncInProgress), domain.StatusResponse{
				Status:  "error",
				Message: err.Error(),
			})
		case err != nil:
			apiErrors.WriteJSON(w, http.StatusInternalServerError, domain.StatusResponse{
				Status:  "error",
				Message: err.Error(),
			})
		default:
			apiErrors.WriteJSON(w, http.StatusOK, domain.StatusResponse{
				Status:  "success",
				Message: "Data synced successfully",
			})
		}
	}
}

func GetSyncStatus(service Syncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteJSON(w, http.StatusOK, service.GetStatus(r.Context()))
	}
}

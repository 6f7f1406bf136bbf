package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/kpi-dashboard-api/internal/config"
	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
	"github.com/vfg2006/kpi-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/kpi-dashboard-api/pkg/apiErrors"
)

// PublicConfigResponse expõe apenas configurações não sensíveis para o frontend
type PublicConfigResponse struct {
	OfflineMode           bool   `json:"offline_mode"`
	SpreadsheetConfigured bool   `json:"spreadsheet_configured"`
	UpdateIntervalMinutes int    `json:"update_interval_minutes"`
	SheetRange            string `json:"sheet_range"`
}

func GetKPI(service dashboard.Querier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kpi, err := service.GetLatestKPI(r.Context())
		if err != nil {
			logrus.WithError(err).Error("Erro ao buscar KPI")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error())
			return
		}

		apiErrors.WriteJSON(w, http.StatusOK, kpi)
	}
}

func ListChefsProjet(service dashboard.Querier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		chefs, err := service.ListChefsProjet(r.Context())
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar CDPs")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error())
			return
		}

		apiErrors.WriteJSON(w, http.StatusOK, chefs)
	}
}

func GetLastUpdate(service dashboard.Querier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lastUpdate, err := service.GetLastUpdate(r.Context())
		if err != nil {
			logrus.WithError(err).Error("Erro ao buscar última atualização")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error())
			return
		}

		apiErrors.WriteJSON(w, http.StatusOK, domain.LastUpdateResponse{LastUpdate: lastUpdate})
	}
}

func GetLastModified(service dashboard.Querier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lastModified, err := service.GetLastModified(r.Context())
		if err != nil {
			logrus.WithError(err).Error("Erro ao buscar data de modificação")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error())
			return
		}

		apiErrors.WriteJSON(w, http.StatusOK, domain.LastModifiedResponse{LastModified: lastModified})
	}
}

func GetObjectif(service dashboard.Querier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		objectif, err := service.GetObjectifAnnuel(r.Context())
		if err != nil {
			logrus.WithError(err).Error("Erro ao buscar objectif annuel")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error())
			return
		}

		apiErrors.WriteJSON(w, http.StatusOK, domain.ObjectifResponse{ObjectifAnnuel: objectif})
	}
}

func GetPublicConfig(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteJSON(w, http.StatusOK, PublicConfigResponse{
			OfflineMode:           cfg.Source.OfflineMode,
			SpreadsheetConfigured: cfg.GoogleSheet.SpreadsheetConfigured(),
			UpdateIntervalMinutes: cfg.RevenueSync.IntervalMinutes,
			SheetRange:            cfg.GoogleSheet.Range,
		})
	}
}

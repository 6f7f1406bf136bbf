package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/kpi-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/kpi-dashboard-api/internal/config"
	"github.com/vfg2006/kpi-dashboard-api/internal/usecases/admin"
	"github.com/vfg2006/kpi-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/kpi-dashboard-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/api/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Dashboard(service dashboard.Querier, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/api/kpi",
			Method:  http.MethodGet,
			Handler: GetKPI(service),
		},
		{
			Path:    "/api/cdp",
			Method:  http.MethodGet,
			Handler: ListChefsProjet(service),
		},
		{
			Path:    "/api/last-update",
			Method:  http.MethodGet,
			Handler: GetLastUpdate(service),
		},
		{
			Path:    "/api/last-modified",
			Method:  http.MethodGet,
			Handler: GetLastModified(service),
		},
		{
			Path:    "/api/objectif",
			Method:  http.MethodGet,
			Handler: GetObjectif(service),
		},
		{
			Path:    "/api/config",
			Method:  http.MethodGet,
			Handler: GetPublicConfig(cfg),
		},
	}
}

func Sync(service Syncer) []router.Route {
	return []router.Route{
		{
			Path:    "/api/sync",
			Method:  http.MethodPost,
			Handler: TriggerSync(service),
		},
		{
			Path:    "/api/sync/status",
			Method:  http.MethodGet,
			Handler: GetSyncStatus(service),
		},
	}
}

// Admin retorna as rotas de administração; exceto o login, todas passam por AdminOnly
func Admin(service admin.Administrator, cfg *config.Config) []router.Route {
	adminOnly := []func(http.Handler) http.Handler{middleware.AdminOnly(service)}

	return []router.Route{
		{
			Path:    "/api/admin/login",
			Method:  http.MethodPost,
			Handler: AdminLogin(service),
		},
		{
			Path:        "/api/admin/config",
			Method:      http.MethodGet,
			Handler:     GetAdminConfig(service),
			Middlewares: adminOnly,
		},
		{
			Path:        "/api/admin/config",
			Method:      http.MethodPut,
			Handler:     UpdateAdminConfig(service),
			Middlewares: adminOnly,
		},
		{
			Path:        "/api/admin/upload-photo",
			Method:      http.MethodPost,
			Handler:     UploadPhoto(service, cfg.Upload.MaxSizeMB),
			Middlewares: adminOnly,
		},
	}
}

package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/kpi-dashboard-api/infrastructure/database"
	"github.com/vfg2006/kpi-dashboard-api/infrastructure/integrator/configfile"
	"github.com/vfg2006/kpi-dashboard-api/infrastructure/integrator/sheets"
	"github.com/vfg2006/kpi-dashboard-api/infrastructure/integrator/sheets/sheetsclient"
	"github.com/vfg2006/kpi-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/kpi-dashboard-api/internal/api"
	"github.com/vfg2006/kpi-dashboard-api/internal/config"
	"github.com/vfg2006/kpi-dashboard-api/internal/scheduler"
	"github.com/vfg2006/kpi-dashboard-api/internal/usecases/admin"
	"github.com/vfg2006/kpi-dashboard-api/internal/usecases/dashboard"
	"github.com/vfg2006/kpi-dashboard-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel, cfg.App.Env)
	logrus.WithFields(logrus.Fields{
		"level": cfg.App.LogLevel,
		"env":   cfg.App.Env,
		"mode":  cfg.Source.Mode(),
	}).Info("Configuração carregada")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn := dbconn(ctx, cfg.Database)
	defer conn.Close()

	kpiRepo := repository.NewKpiRepository(conn)
	chefRepo := repository.NewChefProjetRepository(conn)
	updateLogRepo := repository.NewUpdateLogRepository(conn)

	configFile := configfile.New(cfg)

	var source scheduler.RevenueSource = configFile
	if !cfg.Source.OfflineMode {
		source = sheets.New(cfg, sheetsclient.NewClient(cfg))
	}

	revenueSyncService := scheduler.NewRevenueSyncService(source, kpiRepo, chefRepo, updateLogRepo, cfg)
	dashboardService := dashboard.NewService(kpiRepo, chefRepo, updateLogRepo, configFile, cfg)
	adminService := admin.NewService(configFile, updateLogRepo, cfg)

	if adminService.AuthEnabled() {
		logrus.Info("Rotas de administração protegidas por token")
	} else {
		logrus.Warn("ADMIN_PASSWORD_HASH não configurado, rotas de administração sem autenticação")
	}

	if err := revenueSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de faturamento")
	} else {
		logrus.Info("Agendador de sincronização de faturamento iniciado com sucesso")
	}

	server, err := api.New(cfg, dashboardService, revenueSyncService, adminService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// dbconn abre o banco configurado e garante o schema
func dbconn(ctx context.Context, dbConfig config.Database) *database.Connection {
	conn, err := database.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).WithField("driver", dbConfig.Driver).Fatal("Erro ao conectar ao banco de dados")
	}

	logrus.WithField("driver", conn.Driver()).Info("Conexão com o banco de dados estabelecida com sucesso")
	return conn
}

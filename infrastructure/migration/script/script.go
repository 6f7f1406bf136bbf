// Ferramenta de manutenção: aplica o schema no banco configurado e imprime um resumo
// do conteúdo (último KPI, quantidade de registros e últimas entradas do update_log).
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/kpi-dashboard-api/infrastructure/database"
	"github.com/vfg2006/kpi-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/kpi-dashboard-api/internal/config"
)

const recentEntries = 5

var tables = []string{"kpi_global", "chef_projet", "update_log"}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	startTime := time.Now()
	conn, err := database.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar e migrar o banco")
	}
	defer conn.Close()

	logrus.WithFields(logrus.Fields{
		"driver":   conn.Driver(),
		"duration": time.Since(startTime).String(),
	}).Info("Schema aplicado com sucesso")

	if err := report(ctx, conn); err != nil {
		logrus.WithError(err).Error("Erro ao gerar resumo do banco")
		os.Exit(1)
	}
}

func report(ctx context.Context, conn *database.Connection) error {
	fmt.Println("\n=== REGISTROS POR TABELA ===")
	for _, table := range tables {
		count, err := countRows(ctx, conn, table)
		if err != nil {
			return err
		}
		fmt.Printf("  %-20s %d\n", table, count)
	}

	fmt.Println("\n=== ÚLTIMO KPI ===")
	kpi, err := repository.NewKpiRepository(conn).GetLatest(ctx)
	if err != nil {
		return err
	}
	if kpi == nil {
		fmt.Println("  Nenhum registro")
	} else {
		fmt.Printf("  %-20s %.2f\n", "chiffre_affaire", kpi.ChiffreAffaire)
		fmt.Printf("  %-20s %.2f\n", "objectif_annuel", kpi.ObjectifAnnuel)
		fmt.Printf("  %-20s %.2f\n", "objectif_decembre", kpi.ObjectifDecembre)
		fmt.Printf("  %-20s %.2f\n", "wr", kpi.WinRate)
		fmt.Printf("  %-20s %s\n", "created_at", kpi.CreatedAt.Format(time.RFC3339))
	}

	fmt.Println("\n=== ÚLTIMAS ATUALIZAÇÕES ===")
	entries, err := repository.NewUpdateLogRepository(conn).ListRecent(ctx, recentEntries)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		fmt.Printf("  %s  %-7s  %s\n", entry.CreatedAt.Format(time.RFC3339), entry.Status, entry.Message)
	}

	return nil
}

func countRows(ctx context.Context, conn *database.Connection, table string) (int64, error) {
	query, args, err := conn.Builder().Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir contagem de %s: %w", table, err)
	}

	var count int64
	if err := conn.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar registros de %s: %w", table, err)
	}

	return count, nil
}

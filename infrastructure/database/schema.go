package database

import (
	"context"
	"database/sql"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/kpi-dashboard-api/internal/config"
)

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS kpi_global (
		id SERIAL PRIMARY KEY,
		chiffre_affaire DOUBLE PRECISION NOT NULL,
		objectif_annuel DOUBLE PRECISION NOT NULL DEFAULT 100000,
		objectif_decembre DOUBLE PRECISION NOT NULL DEFAULT 0,
		wr DOUBLE PRECISION NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_kpi_global_created_at ON kpi_global (created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS chef_projet (
		id SERIAL PRIMARY KEY,
		nom TEXT NOT NULL,
		prenom TEXT NOT NULL,
		chiffre_affaire DOUBLE PRECISION NOT NULL,
		photo_filename TEXT,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (nom, prenom)
	)`,
	`CREATE TABLE IF NOT EXISTS update_log (
		id SERIAL PRIMARY KEY,
		status TEXT NOT NULL,
		message TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_update_log_status_created_at ON update_log (status, created_at DESC)`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS kpi_global (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		chiffre_affaire REAL NOT NULL,
		objectif_annuel REAL NOT NULL DEFAULT 100000,
		objectif_decembre REAL NOT NULL DEFAULT 0,
		wr REAL NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_kpi_global_created_at ON kpi_global (created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS chef_projet (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		nom TEXT NOT NULL,
		prenom TEXT NOT NULL,
		chiffre_affaire REAL NOT NULL,
		photo_filename TEXT,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE (nom, prenom)
	)`,
	`CREATE TABLE IF NOT EXISTS update_log (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		status TEXT NOT NULL,
		message TEXT,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_update_log_status_created_at ON update_log (status, created_at DESC)`,
}

// Migrate cria as tabelas caso ainda não existam, dentro de uma única transação
func (c *Connection) Migrate(ctx context.Context) error {
	statements := postgresSchema
	if c.driver == config.DriverSQLite {
		statements = sqliteSchema
	}

	err := c.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, stmt := range statements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithField("driver", c.driver).Debug("Schema do banco verificado")
	return nil
}

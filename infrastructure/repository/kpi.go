// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vfg2006/kpi-dashboard-api/infrastructure/database"
	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
)

const (
	kpiGlobalTable = "kpi_global"
)

type KpiRepository interface {
	Save(ctx context.Context, snapshot *domain.KpiSnapshot) error
	GetLatest(ctx context.Context) (*domain.KpiSnapshot, error)
}

type kpiRepository struct {
	conn database.Conn
	now  func() time.Time
}

func NewKpiRepository(conn database.Conn) KpiRepository {
	return &kpiRepository{
		conn: conn,
		now:  time.Now,
	}
}

// Save insere um novo snapshot; snapshots nunca são atualizados
func (r *kpiRepository) Save(ctx context.Context, snapshot *domain.KpiSnapshot) error {
	createdAt := r.now().UTC()

	query, args, err := r.conn.Builder().
		Insert(kpiGlobalTable).
		Columns("chiffre_affaire", "objectif_annuel", "objectif_decembre", "wr", "created_at").
		Values(snapshot.ChiffreAffaire, snapshot.ObjectifAnnuel, snapshot.ObjectifDecembre, snapshot.WinRate, createdAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção do kpi: %w", err)
	}

	if err := r.conn.QueryRow(ctx, query, args...).Scan(&snapshot.ID); err != nil {
		return fmt.Errorf("erro ao inserir kpi: %w", err)
	}

	snapshot.CreatedAt = &createdAt
	return nil
}

// GetLatest retorna o snapshot mais recente ou nil se nenhuma sincronização ocorreu
func (r *kpiRepository) GetLatest(ctx context.Context) (*domain.KpiSnapshot, error) {
	query, args, err := r.conn.Builder().
		Select("id", "chiffre_affaire", "objectif_annuel", "objectif_decembre", "wr", "created_at").
		From(kpiGlobalTable).
		OrderBy("created_at DESC", "id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	snapshot := &domain.KpiSnapshot{}
	var createdAt time.Time

	err = r.conn.QueryRow(ctx, query, args...).Scan(
		&snapshot.ID,
		&snapshot.ChiffreAffaire,
		&snapshot.ObjectifAnnuel,
		&snapshot.ObjectifDecembre,
		&snapshot.WinRate,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar último kpi: %w", err)
	}

	snapshot.CreatedAt = &createdAt
	return snapshot, nil
}

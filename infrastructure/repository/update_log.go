package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/kpi-dashboard-api/infrastructure/database"
	"github.com/vfg2006/kpi-dashboard-api/internal/domain"
)

const (
	updateLogTable = "update_log"
)

type UpdateLogRepository interface {
	Append(ctx context.Context, status domain.UpdateStatus, message string) error
	LastSuccessAt(ctx context.Context) (*time.Time, error)
	ListRecent(ctx context.Context, limit uint64) ([]*domain.UpdateLogEntry, error)
}

type updateLogRepository struct {
	conn database.Conn
	now  func() time.Time
}

func NewUpdateLogRepository(conn database.Conn) UpdateLogRepository {
	return &updateLogRepository{
		conn: conn,
		now:  time.Now,
	}
}

func (r *updateLogRepository) Append(ctx context.Context, status domain.UpdateStatus, message string) error {
	query, args, err := r.conn.Builder().
		Insert(updateLogTable).
		Columns("status", "message", "created_at").
		Values(string(status), message, r.now().UTC()).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção do log: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir log de atualização: %w", err)
	}

	return nil
}

// LastSuccessAt retorna a data da última sincronização bem-sucedida ou nil
func (r *updateLogRepository) LastSuccessAt(ctx context.Context) (*time.Time, error) {
	query, args, err := r.conn.Builder().
		Select("created_at").
		From(updateLogTable).
		Where(squirrel.Eq{"status": string(domain.UpdateStatusSuccess)}).
		OrderBy("created_at DESC", "id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var lastUpdate time.Time
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&lastUpdate); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar última atualização: %w", err)
	}

	return &lastUpdate, nil
}

func (r *updateLogRepository) ListRecent(ctx context.Context, limit uint64) ([]*domain.UpdateLogEntry, error) {
	query, args, err := r.conn.Builder().
		Select("id", "status", "message", "created_at").
		From(updateLogTable).
		OrderBy("created_at DESC", "id DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.UpdateLogEntry, 0)
	for rows.Next() {
		entry := &domain.UpdateLogEntry{}
		var status string
		var message sql.NullString

		if err := rows.Scan(&entry.ID, &status, &message, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear log de atualização: %w", err)
		}

		entry.Status = domain.UpdateStatus(status)
		entry.Message = message.String
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

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
	chefProjetTable = "chef_projet"
)

var chefProjetColumns = []string{"id", "nom", "prenom", "chiffre_affaire", "photo_filename", "updated_at"}

type ChefProjetRepository interface {
	Upsert(ctx context.Context, chef *domain.ChefProjet) error
	List(ctx context.Context) ([]*domain.ChefProjet, error)
	GetByName(ctx context.Context, nom, prenom string) (*domain.ChefProjet, error)
}

type chefProjetRepository struct {
	conn database.Conn
	now  func() time.Time
}

func NewChefProjetRepository(conn database.Conn) ChefProjetRepository {
	return &chefProjetRepository{
		conn: conn,
		now:  time.Now,
	}
}

// Upsert insere o CDP ou, se o par (nom, prenom) já existir, sobrescreve o faturamento e a
// data. A foto só é trocada quando uma nova é informada.
func (r *chefProjetRepository) Upsert(ctx context.Context, chef *domain.ChefProjet) error {
	updatedAt := r.now().UTC()

	query, args, err := r.conn.Builder().
		Insert(chefProjetTable).
		Columns("nom", "prenom", "chiffre_affaire", "photo_filename", "updated_at").
		Values(chef.Nom, chef.Prenom, chef.ChiffreAffaire, domain.NormalizePhoto(chef.PhotoFilename), updatedAt).
		Suffix(`
		ON CONFLICT (nom, prenom) DO UPDATE SET
			chiffre_affaire = EXCLUDED.chiffre_affaire,
			photo_filename = COALESCE(EXCLUDED.photo_filename, chef_projet.photo_filename),
			updated_at = EXCLUDED.updated_at
	`).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de upsert do cdp: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao gravar cdp %s %s: %w", chef.Prenom, chef.Nom, err)
	}

	chef.UpdatedAt = updatedAt
	return nil
}

// List retorna todos os CDPs ordenados pelo faturamento (maior primeiro)
func (r *chefProjetRepository) List(ctx context.Context) ([]*domain.ChefProjet, error) {
	query, args, err := r.conn.Builder().
		Select(chefProjetColumns...).
		From(chefProjetTable).
		OrderBy("chiffre_affaire DESC", "nom ASC", "prenom ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	chefs := make([]*domain.ChefProjet, 0)
	for rows.Next() {
		chef, err := scanChefProjet(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear cdp: %w", err)
		}
		chefs = append(chefs, chef)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return chefs, nil
}

func (r *chefProjetRepository) GetByName(ctx context.Context, nom, prenom string) (*domain.ChefProjet, error) {
	query, args, err := r.conn.Builder().
		Select(chefProjetColumns...).
		From(chefProjetTable).
		Where(squirrel.Eq{"nom": nom, "prenom": prenom}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	chef, err := scanChefProjet(r.conn.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar cdp: %w", err)
	}

	return chef, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanChefProjet(row scanner) (*domain.ChefProjet, error) {
	chef := &domain.ChefProjet{}
	var photo sql.NullString

	err := row.Scan(
		&chef.ID,
		&chef.Nom,
		&chef.Prenom,
		&chef.ChiffreAffaire,
		&photo,
		&chef.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if photo.Valid {
		chef.PhotoFilename = &photo.String
	}

	return chef, nil
}

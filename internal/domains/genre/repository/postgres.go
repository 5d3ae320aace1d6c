package repository

import (
	"context"
	"errors"
	"fmt"

	"locallibrary/internal/domains/genre/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func (r *postgresRepository) Create(ctx context.Context, g *model.Genre) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO genres (id, name) VALUES ($1, $2)`, g.ID, g.Name)
	if isUniqueViolation(err) {
		return model.ErrGenreDuplicate
	}
	if err != nil {
		return fmt.Errorf("failed to create genre: %w", err)
	}
	return nil
}

func (r *postgresRepository) getOne(ctx context.Context, query string, arg interface{}) (*model.Genre, error) {
	var g model.Genre
	err := r.pool.QueryRow(ctx, query, arg).Scan(&g.ID, &g.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrGenreNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get genre: %w", err)
	}
	return &g, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Genre, error) {
	return r.getOne(ctx, `SELECT id, name FROM genres WHERE id = $1`, id)
}

func (r *postgresRepository) FindByNameFold(ctx context.Context, name string) (*model.Genre, error) {
	return r.getOne(ctx, `SELECT id, name FROM genres WHERE lower(name) = lower($1)`, name)
}

func (r *postgresRepository) query(ctx context.Context, query string, args ...interface{}) ([]model.Genre, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list genres: %w", err)
	}
	defer rows.Close()

	genres := make([]model.Genre, 0)
	for rows.Next() {
		var g model.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, fmt.Errorf("failed to scan genre: %w", err)
		}
		genres = append(genres, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return genres, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]model.Genre, error) {
	return r.query(ctx, `SELECT id, name FROM genres ORDER BY created_at ASC`)
}

func (r *postgresRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Genre, error) {
	if len(ids) == 0 {
		return []model.Genre{}, nil
	}
	return r.query(ctx, `SELECT id, name FROM genres WHERE id = ANY($1) ORDER BY name ASC`, ids)
}

func (r *postgresRepository) Update(ctx context.Context, g *model.Genre) error {
	tag, err := r.pool.Exec(ctx, `UPDATE genres SET name = $2 WHERE id = $1`, g.ID, g.Name)
	if isUniqueViolation(err) {
		return model.ErrGenreDuplicate
	}
	if err != nil {
		return fmt.Errorf("failed to update genre: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrGenreNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM genres WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete genre: %w", err)
	}
	return nil
}

func (r *postgresRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM genres`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count genres: %w", err)
	}
	return n, nil
}

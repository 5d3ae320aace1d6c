package repository

import (
	"context"
	"errors"
	"fmt"

	"locallibrary/internal/domains/bookinstance/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

const instanceColumns = `bi.id, bi.book_id, bi.imprint, bi.status, bi.due_back`

func scanInstance(row pgx.Row, extra ...interface{}) (*model.BookInstance, error) {
	var (
		bi     model.BookInstance
		status string
	)
	dest := append([]interface{}{&bi.ID, &bi.BookID, &bi.Imprint, &status, &bi.DueBack}, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	bi.Status = model.Status(status)
	return &bi, nil
}

func (r *postgresRepository) Create(ctx context.Context, bi *model.BookInstance) error {
	query := `
		INSERT INTO bookinstances (id, book_id, imprint, status, due_back)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := r.pool.Exec(ctx, query, bi.ID, bi.BookID, bi.Imprint, string(bi.Status), bi.DueBack); err != nil {
		return fmt.Errorf("failed to create book instance: %w", err)
	}
	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.BookInstance, error) {
	query := `SELECT ` + instanceColumns + ` FROM bookinstances bi WHERE bi.id = $1`

	bi, err := scanInstance(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrBookInstanceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get book instance: %w", err)
	}
	return bi, nil
}

func (r *postgresRepository) List(ctx context.Context) ([]model.Listing, error) {
	query := `
		SELECT ` + instanceColumns + `, COALESCE(b.title, '') AS book_title
		FROM bookinstances bi
		LEFT JOIN books b ON b.id = bi.book_id
		ORDER BY bi.created_at ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list book instances: %w", err)
	}
	defer rows.Close()

	listings := make([]model.Listing, 0)
	for rows.Next() {
		var title string
		bi, err := scanInstance(rows, &title)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book instance: %w", err)
		}
		listings = append(listings, model.Listing{BookInstance: *bi, BookTitle: title})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return listings, nil
}

func (r *postgresRepository) ListByBook(ctx context.Context, bookID uuid.UUID) ([]model.BookInstance, error) {
	query := `SELECT ` + instanceColumns + ` FROM bookinstances bi WHERE bi.book_id = $1 ORDER BY bi.created_at ASC`

	rows, err := r.pool.Query(ctx, query, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to list book instances: %w", err)
	}
	defer rows.Close()

	instances := make([]model.BookInstance, 0)
	for rows.Next() {
		bi, err := scanInstance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book instance: %w", err)
		}
		instances = append(instances, *bi)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return instances, nil
}

func (r *postgresRepository) Update(ctx context.Context, bi *model.BookInstance) error {
	query := `
		UPDATE bookinstances
		SET book_id = $2, imprint = $3, status = $4, due_back = $5
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query, bi.ID, bi.BookID, bi.Imprint, string(bi.Status), bi.DueBack)
	if err != nil {
		return fmt.Errorf("failed to update book instance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrBookInstanceNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM bookinstances WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete book instance: %w", err)
	}
	return nil
}

func (r *postgresRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM bookinstances`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count book instances: %w", err)
	}
	return n, nil
}

func (r *postgresRepository) CountByStatus(ctx context.Context, status model.Status) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM bookinstances WHERE status = $1`, string(status)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count book instances by status: %w", err)
	}
	return n, nil
}

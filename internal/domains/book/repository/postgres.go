package repository

import (
	"context"
	"errors"
	"fmt"

	"locallibrary/internal/domains/book/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// PostgresRepository - raw SQL with pgxpool. Genre ids live in a TEXT[]
// column handled through pq.Array.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

const bookColumns = `b.id, b.title, b.author_id, b.summary, b.isbn, b.genre_ids`

// textArrays must lead the arguments of every query selecting genre_ids:
// pgx asks for arrays in binary, pq.Array only parses the text form.
var textArrays = pgx.QueryResultFormatsByOID{pgtype.TextArrayOID: pgtype.TextFormatCode}

// ============================================
// HELPER METHODS
// ============================================

func genreIDStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}

func parseGenreIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("invalid genre id %q: %w", s, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// scanBook reads bookColumns followed by any extra destinations.
func scanBook(row pgx.Row, extra ...interface{}) (*model.Book, error) {
	var (
		b        model.Book
		genreIDs []string
	)
	dest := append([]interface{}{&b.ID, &b.Title, &b.AuthorID, &b.Summary, &b.ISBN, pq.Array(&genreIDs)}, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	ids, err := parseGenreIDs(genreIDs)
	if err != nil {
		return nil, err
	}
	b.GenreIDs = ids
	return &b, nil
}

func (r *postgresRepository) queryBooks(ctx context.Context, query string, args ...interface{}) ([]model.Book, error) {
	rows, err := r.pool.Query(ctx, query, append([]interface{}{textArrays}, args...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	books := make([]model.Book, 0)
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return books, nil
}

// ============================================
// CRUD
// ============================================

func (r *postgresRepository) Create(ctx context.Context, b *model.Book) error {
	query := `
		INSERT INTO books (id, title, author_id, summary, isbn, genre_ids)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query, b.ID, b.Title, b.AuthorID, b.Summary, b.ISBN, pq.Array(genreIDStrings(b.GenreIDs)))
	if err != nil {
		return fmt.Errorf("failed to create book: %w", err)
	}
	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books b WHERE b.id = $1`

	b, err := scanBook(r.pool.QueryRow(ctx, query, textArrays, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrBookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get book: %w", err)
	}
	return b, nil
}

// List joins authors without a foreign key; a dangling author yields an
// empty name.
func (r *postgresRepository) List(ctx context.Context) ([]model.Listing, error) {
	query := `
		SELECT ` + bookColumns + `,
		       CASE WHEN COALESCE(a.first_name, '') = '' OR COALESCE(a.family_name, '') = ''
		            THEN ''
		            ELSE a.family_name || ', ' || a.first_name
		       END AS author_name
		FROM books b
		LEFT JOIN authors a ON a.id = b.author_id
		ORDER BY b.title ASC, b.created_at ASC
	`

	rows, err := r.pool.Query(ctx, query, textArrays)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	listings := make([]model.Listing, 0)
	for rows.Next() {
		var authorName string
		b, err := scanBook(rows, &authorName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		listings = append(listings, model.Listing{Book: *b, AuthorName: authorName})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return listings, nil
}

func (r *postgresRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]model.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books b WHERE b.author_id = $1 ORDER BY b.title ASC`
	return r.queryBooks(ctx, query, authorID)
}

func (r *postgresRepository) ListByGenre(ctx context.Context, genreID uuid.UUID) ([]model.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books b WHERE $1 = ANY(b.genre_ids) ORDER BY b.title ASC`
	return r.queryBooks(ctx, query, genreID.String())
}

func (r *postgresRepository) Update(ctx context.Context, b *model.Book) error {
	query := `
		UPDATE books
		SET title = $2, author_id = $3, summary = $4, isbn = $5, genre_ids = $6
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query, b.ID, b.Title, b.AuthorID, b.Summary, b.ISBN, pq.Array(genreIDStrings(b.GenreIDs)))
	if err != nil {
		return fmt.Errorf("failed to update book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrBookNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	return nil
}

func (r *postgresRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM books`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count books: %w", err)
	}
	return n, nil
}

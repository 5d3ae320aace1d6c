package memstore

import (
	"context"
	"sort"

	authorModel "locallibrary/internal/domains/author/model"
	"locallibrary/internal/domains/book/model"
	"locallibrary/internal/domains/book/repository"

	"github.com/google/uuid"
)

type bookRepository struct {
	s *Store
}

func NewBookRepository(s *Store) repository.RepositoryInterface {
	return &bookRepository{s: s}
}

func cloneBook(b model.Book) model.Book {
	b.GenreIDs = cloneIDs(b.GenreIDs)
	return b
}

func sortBooks(books []model.Book) {
	sort.SliceStable(books, func(i, j int) bool {
		return books[i].Title < books[j].Title
	})
}

// filter must be called with the read lock held.
func (r *bookRepository) filter(keep func(model.Book) bool) []model.Book {
	out := make([]model.Book, 0)
	for _, b := range r.s.books.all() {
		if keep(b) {
			out = append(out, cloneBook(b))
		}
	}
	sortBooks(out)
	return out
}

func (r *bookRepository) Create(ctx context.Context, b *model.Book) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.books.put(b.ID, cloneBook(*b))
	return nil
}

func (r *bookRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	b, ok := r.s.books.get(id)
	if !ok {
		return nil, model.ErrBookNotFound
	}
	out := cloneBook(b)
	return &out, nil
}

func (r *bookRepository) List(ctx context.Context) ([]model.Listing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	books := r.filter(func(model.Book) bool { return true })
	listings := make([]model.Listing, 0, len(books))
	for _, b := range books {
		l := model.Listing{Book: b}
		if a, ok := r.s.authors.get(b.AuthorID); ok {
			l.AuthorName = authorModel.FullName(a.FirstName, a.FamilyName)
		}
		listings = append(listings, l)
	}
	return listings, nil
}

func (r *bookRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]model.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.filter(func(b model.Book) bool { return b.AuthorID == authorID }), nil
}

func (r *bookRepository) ListByGenre(ctx context.Context, genreID uuid.UUID) ([]model.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.filter(func(b model.Book) bool { return b.HasGenre(genreID) }), nil
}

func (r *bookRepository) Update(ctx context.Context, b *model.Book) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.books.get(b.ID); !ok {
		return model.ErrBookNotFound
	}
	r.s.books.put(b.ID, cloneBook(*b))
	return nil
}

func (r *bookRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.books.remove(id)
	return nil
}

func (r *bookRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.s.books.len(), nil
}

package memstore

import (
	"context"

	"locallibrary/internal/domains/bookinstance/model"
	"locallibrary/internal/domains/bookinstance/repository"

	"github.com/google/uuid"
)

type bookInstanceRepository struct {
	s *Store
}

func NewBookInstanceRepository(s *Store) repository.RepositoryInterface {
	return &bookInstanceRepository{s: s}
}

func cloneInstance(bi model.BookInstance) model.BookInstance {
	bi.DueBack = cloneTime(bi.DueBack)
	return bi
}

func (r *bookInstanceRepository) Create(ctx context.Context, bi *model.BookInstance) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.bookinstances.put(bi.ID, cloneInstance(*bi))
	return nil
}

func (r *bookInstanceRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.BookInstance, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	bi, ok := r.s.bookinstances.get(id)
	if !ok {
		return nil, model.ErrBookInstanceNotFound
	}
	out := cloneInstance(bi)
	return &out, nil
}

func (r *bookInstanceRepository) List(ctx context.Context) ([]model.Listing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	all := r.s.bookinstances.all()
	listings := make([]model.Listing, 0, len(all))
	for _, bi := range all {
		l := model.Listing{BookInstance: cloneInstance(bi)}
		if b, ok := r.s.books.get(bi.BookID); ok {
			l.BookTitle = b.Title
		}
		listings = append(listings, l)
	}
	return listings, nil
}

func (r *bookInstanceRepository) ListByBook(ctx context.Context, bookID uuid.UUID) ([]model.BookInstance, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]model.BookInstance, 0)
	for _, bi := range r.s.bookinstances.all() {
		if bi.BookID == bookID {
			out = append(out, cloneInstance(bi))
		}
	}
	return out, nil
}

func (r *bookInstanceRepository) Update(ctx context.Context, bi *model.BookInstance) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.bookinstances.get(bi.ID); !ok {
		return model.ErrBookInstanceNotFound
	}
	r.s.bookinstances.put(bi.ID, cloneInstance(*bi))
	return nil
}

func (r *bookInstanceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.bookinstances.remove(id)
	return nil
}

func (r *bookInstanceRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.s.bookinstances.len(), nil
}

func (r *bookInstanceRepository) CountByStatus(ctx context.Context, status model.Status) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	n := 0
	for _, bi := range r.s.bookinstances.all() {
		if bi.Status == status {
			n++
		}
	}
	return n, nil
}

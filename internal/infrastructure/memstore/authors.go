package memstore

import (
	"context"
	"sort"

	"locallibrary/internal/domains/author/model"
	"locallibrary/internal/domains/author/repository"

	"github.com/google/uuid"
)

type authorRepository struct {
	s *Store
}

func NewAuthorRepository(s *Store) repository.RepositoryInterface {
	return &authorRepository{s: s}
}

func cloneAuthor(a model.Author) model.Author {
	a.DateOfBirth = cloneTime(a.DateOfBirth)
	a.DateOfDeath = cloneTime(a.DateOfDeath)
	return a
}

func (r *authorRepository) Create(ctx context.Context, a *model.Author) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.authors.put(a.ID, cloneAuthor(*a))
	return nil
}

func (r *authorRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.authors.get(id)
	if !ok {
		return nil, model.ErrAuthorNotFound
	}
	out := cloneAuthor(a)
	return &out, nil
}

func (r *authorRepository) List(ctx context.Context) ([]model.Author, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	all := r.s.authors.all()
	r.s.mu.RUnlock()

	for i := range all {
		all[i] = cloneAuthor(all[i])
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].FamilyName < all[j].FamilyName
	})
	return all, nil
}

func (r *authorRepository) Update(ctx context.Context, a *model.Author) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.authors.get(a.ID); !ok {
		return model.ErrAuthorNotFound
	}
	r.s.authors.put(a.ID, cloneAuthor(*a))
	return nil
}

func (r *authorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.authors.remove(id)
	return nil
}

func (r *authorRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.s.authors.len(), nil
}

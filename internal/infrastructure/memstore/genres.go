package memstore

import (
	"context"
	"sort"

	"locallibrary/internal/domains/genre/model"
	"locallibrary/internal/domains/genre/repository"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
)

type genreRepository struct {
	s *Store
}

func NewGenreRepository(s *Store) repository.RepositoryInterface {
	return &genreRepository{s: s}
}

// fold returns the case-folded form of name. A Caser is stateful, so each
// call gets its own.
func fold(name string) string {
	return cases.Fold().String(name)
}

// findByFold must be called with the lock held. except is skipped.
func (r *genreRepository) findByFold(name string, except uuid.UUID) (model.Genre, bool) {
	key := fold(name)
	for _, g := range r.s.genres.all() {
		if g.ID != except && fold(g.Name) == key {
			return g, true
		}
	}
	return model.Genre{}, false
}

func (r *genreRepository) Create(ctx context.Context, g *model.Genre) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, taken := r.findByFold(g.Name, g.ID); taken {
		return model.ErrGenreDuplicate
	}
	r.s.genres.put(g.ID, *g)
	return nil
}

func (r *genreRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Genre, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	g, ok := r.s.genres.get(id)
	if !ok {
		return nil, model.ErrGenreNotFound
	}
	return &g, nil
}

func (r *genreRepository) FindByNameFold(ctx context.Context, name string) (*model.Genre, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	g, ok := r.findByFold(name, uuid.Nil)
	if !ok {
		return nil, model.ErrGenreNotFound
	}
	return &g, nil
}

func sortGenres(genres []model.Genre) {
	sort.SliceStable(genres, func(i, j int) bool {
		return genres[i].Name < genres[j].Name
	})
}

func (r *genreRepository) List(ctx context.Context) ([]model.Genre, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	all := r.s.genres.all()
	r.s.mu.RUnlock()

	return all, nil
}

func (r *genreRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Genre, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	out := make([]model.Genre, 0, len(ids))
	seen := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if g, ok := r.s.genres.get(id); ok {
			out = append(out, g)
		}
	}
	r.s.mu.RUnlock()

	sortGenres(out)
	return out, nil
}

func (r *genreRepository) Update(ctx context.Context, g *model.Genre) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.genres.get(g.ID); !ok {
		return model.ErrGenreNotFound
	}
	if _, taken := r.findByFold(g.Name, g.ID); taken {
		return model.ErrGenreDuplicate
	}
	r.s.genres.put(g.ID, *g)
	return nil
}

func (r *genreRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.genres.remove(id)
	return nil
}

func (r *genreRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.s.genres.len(), nil
}

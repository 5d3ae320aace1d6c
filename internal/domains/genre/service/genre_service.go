package service

import (
	"context"
	"errors"
	"fmt"

	bookModel "locallibrary/internal/domains/book/model"
	bookRepo "locallibrary/internal/domains/book/repository"
	"locallibrary/internal/domains/genre/model"
	"locallibrary/internal/domains/genre/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type GenreService struct {
	repo     repository.RepositoryInterface
	bookRepo bookRepo.RepositoryInterface
}

func NewService(repo repository.RepositoryInterface, bookRepo bookRepo.RepositoryInterface) ServiceInterface {
	return &GenreService{
		repo:     repo,
		bookRepo: bookRepo,
	}
}

func (s *GenreService) List(ctx context.Context) ([]model.Genre, error) {
	genres, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}
	return genres, nil
}

func (s *GenreService) Get(ctx context.Context, id uuid.UUID) (*model.Genre, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *GenreService) Detail(ctx context.Context, id uuid.UUID) (*model.Detail, error) {
	var (
		genre *model.Genre
		books []bookModel.Book
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		genre, err = s.repo.GetByID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		books, err = s.bookRepo.ListByGenre(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	detail := &model.Detail{
		Genre: *genre,
		Books: make([]bookModel.Summary, 0, len(books)),
	}
	for _, b := range books {
		detail.Books = append(detail.Books, bookModel.ToSummary(b))
	}
	return detail, nil
}

// Create looks the name up first. When a concurrent insert wins the race the
// store reports a duplicate, and the winner is looked up again.
func (s *GenreService) Create(ctx context.Context, in model.GenreInput) (*model.Genre, bool, error) {
	existing, err := s.repo.FindByNameFold(ctx, in.Name)
	switch {
	case err == nil:
		log.Info().Str("genre_id", existing.ID.String()).Msg("genre already exists")
		return existing, true, nil
	case !errors.Is(err, model.ErrGenreNotFound):
		return nil, false, err
	}

	genre := in.ToEntity(uuid.New())
	err = s.repo.Create(ctx, genre)
	if errors.Is(err, model.ErrGenreDuplicate) {
		existing, err = s.repo.FindByNameFold(ctx, in.Name)
		if err != nil {
			return nil, false, err
		}
		return existing, true, nil
	}
	if err != nil {
		return nil, false, err
	}

	log.Info().Str("genre_id", genre.ID.String()).Msg("genre created")
	return genre, false, nil
}

func (s *GenreService) Update(ctx context.Context, id uuid.UUID, in model.GenreInput) (*model.Genre, error) {
	genre := in.ToEntity(id)
	if err := s.repo.Update(ctx, genre); err != nil {
		return nil, err
	}

	log.Info().Str("genre_id", id.String()).Msg("genre updated")
	return genre, nil
}

func (s *GenreService) Delete(ctx context.Context, id uuid.UUID) (*model.Detail, error) {
	detail, err := s.Detail(ctx, id)
	if err != nil {
		return nil, err
	}

	if len(detail.Books) > 0 {
		log.Info().
			Str("genre_id", id.String()).
			Int("books", len(detail.Books)).
			Msg("genre delete blocked")
		return detail, model.ErrGenreHasBooks
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}

	log.Info().Str("genre_id", id.String()).Msg("genre deleted")
	return detail, nil
}

package service

import (
	"context"
	"fmt"

	"locallibrary/internal/domains/author/model"
	"locallibrary/internal/domains/author/repository"
	bookModel "locallibrary/internal/domains/book/model"
	bookRepo "locallibrary/internal/domains/book/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type AuthorService struct {
	repo     repository.RepositoryInterface
	bookRepo bookRepo.RepositoryInterface
}

func NewService(repo repository.RepositoryInterface, bookRepo bookRepo.RepositoryInterface) ServiceInterface {
	return &AuthorService{
		repo:     repo,
		bookRepo: bookRepo,
	}
}

func (s *AuthorService) List(ctx context.Context) ([]model.Author, error) {
	authors, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	return authors, nil
}

func (s *AuthorService) Get(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *AuthorService) Detail(ctx context.Context, id uuid.UUID) (*model.Detail, error) {
	var (
		author *model.Author
		books  []bookModel.Book
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		author, err = s.repo.GetByID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		books, err = s.bookRepo.ListByAuthor(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	detail := &model.Detail{
		Author: *author,
		Books:  make([]bookModel.Summary, 0, len(books)),
	}
	for _, b := range books {
		detail.Books = append(detail.Books, bookModel.ToSummary(b))
	}
	return detail, nil
}

func (s *AuthorService) Create(ctx context.Context, in model.AuthorInput) (*model.Author, error) {
	author := in.ToEntity(uuid.New())
	if err := s.repo.Create(ctx, author); err != nil {
		return nil, err
	}

	log.Info().Str("author_id", author.ID.String()).Msg("author created")
	return author, nil
}

func (s *AuthorService) Update(ctx context.Context, id uuid.UUID, in model.AuthorInput) (*model.Author, error) {
	author := in.ToEntity(id)
	if err := s.repo.Update(ctx, author); err != nil {
		return nil, err
	}

	log.Info().Str("author_id", id.String()).Msg("author updated")
	return author, nil
}

func (s *AuthorService) Delete(ctx context.Context, id uuid.UUID) (*model.Detail, error) {
	detail, err := s.Detail(ctx, id)
	if err != nil {
		return nil, err
	}

	if len(detail.Books) > 0 {
		log.Info().
			Str("author_id", id.String()).
			Int("books", len(detail.Books)).
			Msg("author delete blocked")
		return detail, model.ErrAuthorHasBooks
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}

	log.Info().Str("author_id", id.String()).Msg("author deleted")
	return detail, nil
}

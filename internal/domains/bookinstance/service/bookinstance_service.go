package service

import (
	"context"
	"errors"
	"fmt"

	bookModel "locallibrary/internal/domains/book/model"
	bookRepo "locallibrary/internal/domains/book/repository"
	"locallibrary/internal/domains/bookinstance/model"
	"locallibrary/internal/domains/bookinstance/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type BookInstanceService struct {
	repo     repository.RepositoryInterface
	bookRepo bookRepo.RepositoryInterface
}

func NewService(repo repository.RepositoryInterface, bookRepo bookRepo.RepositoryInterface) ServiceInterface {
	return &BookInstanceService{
		repo:     repo,
		bookRepo: bookRepo,
	}
}

func (s *BookInstanceService) List(ctx context.Context) ([]model.Listing, error) {
	instances, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list book instances: %w", err)
	}
	return instances, nil
}

func (s *BookInstanceService) Get(ctx context.Context, id uuid.UUID) (*model.BookInstance, error) {
	return s.repo.GetByID(ctx, id)
}

// Detail resolves the copy's book; a dangling book reference leaves the
// book title empty.
func (s *BookInstanceService) Detail(ctx context.Context, id uuid.UUID) (*model.Detail, error) {
	instance, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &model.Detail{
		BookInstance: *instance,
		Book:         model.BookRef{ID: instance.BookID, URL: bookModel.URL(instance.BookID)},
	}

	book, err := s.bookRepo.GetByID(ctx, instance.BookID)
	switch {
	case err == nil:
		detail.Book.Title = book.Title
	case !errors.Is(err, bookModel.ErrBookNotFound):
		return nil, err
	}
	return detail, nil
}

func (s *BookInstanceService) FormBooks(ctx context.Context) ([]bookModel.Summary, error) {
	books, err := s.formBooks(ctx)
	if err != nil {
		return nil, fmt.Errorf("load book instance form options: %w", err)
	}
	return books, nil
}

func (s *BookInstanceService) formBooks(ctx context.Context) ([]bookModel.Summary, error) {
	listings, err := s.bookRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	books := make([]bookModel.Summary, 0, len(listings))
	for _, l := range listings {
		books = append(books, bookModel.ToSummary(l.Book))
	}
	return books, nil
}

// UpdateForm loads the stored copy and the book choices concurrently.
func (s *BookInstanceService) UpdateForm(ctx context.Context, id uuid.UUID) (*model.FormData, error) {
	var data model.FormData

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		instance, err := s.repo.GetByID(gctx, id)
		if err != nil {
			return err
		}
		data.Instance = instance
		return nil
	})
	g.Go(func() error {
		books, err := s.formBooks(gctx)
		if err != nil {
			return err
		}
		data.Books = books
		return nil
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, model.ErrBookInstanceNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("load book instance update form: %w", err)
	}
	return &data, nil
}

func (s *BookInstanceService) Create(ctx context.Context, in model.BookInstanceInput) (*model.BookInstance, error) {
	instance := in.ToEntity(uuid.New())
	if err := s.repo.Create(ctx, instance); err != nil {
		return nil, err
	}

	log.Info().
		Str("bookinstance_id", instance.ID.String()).
		Str("book_id", instance.BookID.String()).
		Msg("book instance created")
	return instance, nil
}

func (s *BookInstanceService) Update(ctx context.Context, id uuid.UUID, in model.BookInstanceInput) (*model.BookInstance, error) {
	instance := in.ToEntity(id)
	if err := s.repo.Update(ctx, instance); err != nil {
		return nil, err
	}

	log.Info().Str("bookinstance_id", id.String()).Msg("book instance updated")
	return instance, nil
}

func (s *BookInstanceService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	log.Info().Str("bookinstance_id", id.String()).Msg("book instance deleted")
	return nil
}

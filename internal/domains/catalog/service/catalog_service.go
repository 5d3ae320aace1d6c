package service

import (
	"context"
	"fmt"

	authorRepo "locallibrary/internal/domains/author/repository"
	bookRepo "locallibrary/internal/domains/book/repository"
	bookinstanceModel "locallibrary/internal/domains/bookinstance/model"
	bookinstanceRepo "locallibrary/internal/domains/bookinstance/repository"
	"locallibrary/internal/domains/catalog/model"
	genreRepo "locallibrary/internal/domains/genre/repository"

	"golang.org/x/sync/errgroup"
)

// ServiceInterface - catalog home page
type ServiceInterface interface {
	Counts(ctx context.Context) (*model.Counts, error)
}

type CatalogService struct {
	authors   authorRepo.RepositoryInterface
	genres    genreRepo.RepositoryInterface
	books     bookRepo.RepositoryInterface
	instances bookinstanceRepo.RepositoryInterface
}

func NewService(
	authors authorRepo.RepositoryInterface,
	genres genreRepo.RepositoryInterface,
	books bookRepo.RepositoryInterface,
	instances bookinstanceRepo.RepositoryInterface,
) ServiceInterface {
	return &CatalogService{
		authors:   authors,
		genres:    genres,
		books:     books,
		instances: instances,
	}
}

// Counts runs the five totals concurrently.
func (s *CatalogService) Counts(ctx context.Context) (*model.Counts, error) {
	var counts model.Counts

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		counts.Books, err = s.books.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		counts.BookInstances, err = s.instances.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		counts.AvailableInstances, err = s.instances.CountByStatus(gctx, bookinstanceModel.StatusAvailable)
		return err
	})
	g.Go(func() (err error) {
		counts.Authors, err = s.authors.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		counts.Genres, err = s.genres.Count(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("count catalog: %w", err)
	}
	return &counts, nil
}

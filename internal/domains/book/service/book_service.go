package service

import (
	"context"
	"errors"
	"fmt"

	authorModel "locallibrary/internal/domains/author/model"
	authorRepo "locallibrary/internal/domains/author/repository"
	"locallibrary/internal/domains/book/model"
	"locallibrary/internal/domains/book/repository"
	bookinstanceModel "locallibrary/internal/domains/bookinstance/model"
	bookinstanceRepo "locallibrary/internal/domains/bookinstance/repository"
	genreModel "locallibrary/internal/domains/genre/model"
	genreRepo "locallibrary/internal/domains/genre/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type BookService struct {
	repo         repository.RepositoryInterface
	authorRepo   authorRepo.RepositoryInterface
	genreRepo    genreRepo.RepositoryInterface
	instanceRepo bookinstanceRepo.RepositoryInterface
}

func NewService(
	repo repository.RepositoryInterface,
	authorRepo authorRepo.RepositoryInterface,
	genreRepo genreRepo.RepositoryInterface,
	instanceRepo bookinstanceRepo.RepositoryInterface,
) ServiceInterface {
	return &BookService{
		repo:         repo,
		authorRepo:   authorRepo,
		genreRepo:    genreRepo,
		instanceRepo: instanceRepo,
	}
}

// ========== MAPPERS ==========

func toAuthorRef(a authorModel.Author) model.AuthorRef {
	return model.AuthorRef{
		ID:   a.ID,
		Name: authorModel.FullName(a.FirstName, a.FamilyName),
		URL:  authorModel.URL(a.ID),
	}
}

func toGenreRefs(genres []genreModel.Genre) []model.GenreRef {
	refs := make([]model.GenreRef, 0, len(genres))
	for _, g := range genres {
		refs = append(refs, model.GenreRef{ID: g.ID, Name: g.Name, URL: genreModel.URL(g.ID)})
	}
	return refs
}

func toCopyRefs(instances []bookinstanceModel.BookInstance) []model.CopyRef {
	refs := make([]model.CopyRef, 0, len(instances))
	for _, bi := range instances {
		refs = append(refs, model.CopyRef{
			ID:      bi.ID,
			Imprint: bi.Imprint,
			Status:  bi.Status.String(),
			DueBack: bookinstanceModel.DueBackFormatted(bi.DueBack),
			URL:     bookinstanceModel.URL(bi.ID),
		})
	}
	return refs
}

// ========== QUERIES ==========

func (s *BookService) List(ctx context.Context) ([]model.Listing, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

func (s *BookService) Get(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *BookService) Detail(ctx context.Context, id uuid.UUID) (*model.Detail, error) {
	var (
		book   *model.Book
		copies []bookinstanceModel.BookInstance
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		book, err = s.repo.GetByID(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		copies, err = s.instanceRepo.ListByBook(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// references are only known once the book is loaded
	var (
		author *authorModel.Author
		genres []genreModel.Genre
	)
	g, gctx = errgroup.WithContext(ctx)
	g.Go(func() error {
		a, err := s.authorRepo.GetByID(gctx, book.AuthorID)
		if errors.Is(err, authorModel.ErrAuthorNotFound) {
			return nil
		}
		author = a
		return err
	})
	g.Go(func() error {
		var err error
		genres, err = s.genreRepo.ListByIDs(gctx, book.GenreIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	detail := &model.Detail{
		Book:   *book,
		Genres: toGenreRefs(genres),
		Copies: toCopyRefs(copies),
	}
	if author != nil {
		detail.Author = toAuthorRef(*author)
	}
	return detail, nil
}

// goFormOptions loads every author and genre into data on g.
func (s *BookService) goFormOptions(ctx context.Context, g *errgroup.Group, data *model.FormData) {
	g.Go(func() error {
		authors, err := s.authorRepo.List(ctx)
		if err != nil {
			return err
		}
		data.Authors = make([]model.AuthorRef, 0, len(authors))
		for _, a := range authors {
			data.Authors = append(data.Authors, toAuthorRef(a))
		}
		return nil
	})
	g.Go(func() error {
		genres, err := s.genreRepo.List(ctx)
		if err != nil {
			return err
		}
		data.Genres = toGenreRefs(genres)
		return nil
	})
}

func (s *BookService) FormOptions(ctx context.Context) ([]model.AuthorRef, []model.GenreRef, error) {
	var data model.FormData

	g, gctx := errgroup.WithContext(ctx)
	s.goFormOptions(gctx, g, &data)
	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("load book form options: %w", err)
	}
	return data.Authors, data.Genres, nil
}

// UpdateForm loads the stored book and the form choices concurrently.
func (s *BookService) UpdateForm(ctx context.Context, id uuid.UUID) (*model.FormData, error) {
	var data model.FormData

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		book, err := s.repo.GetByID(gctx, id)
		if err != nil {
			return err
		}
		data.Book = book
		return nil
	})
	s.goFormOptions(gctx, g, &data)
	if err := g.Wait(); err != nil {
		if errors.Is(err, model.ErrBookNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("load book update form: %w", err)
	}
	return &data, nil
}

// ========== COMMANDS ==========

func (s *BookService) Create(ctx context.Context, in model.BookInput) (*model.Book, error) {
	book := in.ToEntity(uuid.New())
	if err := s.repo.Create(ctx, book); err != nil {
		return nil, err
	}

	log.Info().Str("book_id", book.ID.String()).Msg("book created")
	return book, nil
}

func (s *BookService) Update(ctx context.Context, id uuid.UUID, in model.BookInput) (*model.Book, error) {
	book := in.ToEntity(id)
	if err := s.repo.Update(ctx, book); err != nil {
		return nil, err
	}

	log.Info().Str("book_id", id.String()).Msg("book updated")
	return book, nil
}

func (s *BookService) Delete(ctx context.Context, id uuid.UUID) (*model.Detail, error) {
	detail, err := s.Detail(ctx, id)
	if err != nil {
		return nil, err
	}

	if len(detail.Copies) > 0 {
		log.Info().
			Str("book_id", id.String()).
			Int("copies", len(detail.Copies)).
			Msg("book delete blocked")
		return detail, model.ErrBookHasInstances
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}

	log.Info().Str("book_id", id.String()).Msg("book deleted")
	return detail, nil
}

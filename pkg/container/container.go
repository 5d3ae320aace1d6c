package container

import (
	"context"
	"fmt"
	"time"

	"locallibrary/internal/config"
	"locallibrary/internal/infrastructure/database"
	"locallibrary/internal/infrastructure/memstore"

	authorHandler "locallibrary/internal/domains/author/handler"
	authorRepo "locallibrary/internal/domains/author/repository"
	authorService "locallibrary/internal/domains/author/service"
	bookHandler "locallibrary/internal/domains/book/handler"
	bookRepo "locallibrary/internal/domains/book/repository"
	bookService "locallibrary/internal/domains/book/service"
	bookinstanceHandler "locallibrary/internal/domains/bookinstance/handler"
	bookinstanceRepo "locallibrary/internal/domains/bookinstance/repository"
	bookinstanceService "locallibrary/internal/domains/bookinstance/service"
	catalogHandler "locallibrary/internal/domains/catalog/handler"
	catalogService "locallibrary/internal/domains/catalog/service"
	genreHandler "locallibrary/internal/domains/genre/handler"
	genreRepo "locallibrary/internal/domains/genre/repository"
	genreService "locallibrary/internal/domains/genre/service"

	"github.com/rs/zerolog/log"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container is the root of the dependency graph.
type Container struct {
	// ========== INFRASTRUCTURE ==========
	Config *config.Config
	DB     *database.PostgresDB // nil with STORE_DRIVER=memory
	Store  *memstore.Store      // nil with STORE_DRIVER=postgres

	// ========== REPOSITORIES ==========
	AuthorRepo       authorRepo.RepositoryInterface
	GenreRepo        genreRepo.RepositoryInterface
	BookRepo         bookRepo.RepositoryInterface
	BookInstanceRepo bookinstanceRepo.RepositoryInterface

	// ========== SERVICES ==========
	AuthorService       authorService.ServiceInterface
	GenreService        genreService.ServiceInterface
	BookService         bookService.ServiceInterface
	BookInstanceService bookinstanceService.ServiceInterface
	CatalogService      catalogService.ServiceInterface

	// ========== HANDLERS ==========
	AuthorHandler       *authorHandler.Handler
	GenreHandler        *genreHandler.Handler
	BookHandler         *bookHandler.Handler
	BookInstanceHandler *bookinstanceHandler.Handler
	CatalogHandler      *catalogHandler.Handler
}

// ========================================
// CONSTRUCTORS
// ========================================

// NewContainer builds the graph in order:
// config -> store -> repositories -> services -> handlers.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		c.Store = memstore.New()
		log.Info().Msg("using in-memory store")

	default:
		dbConfig, err := config.LoadDatabaseConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to load database config: %w", err)
		}

		db := database.NewPostgresDB(dbConfig)

		connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()

		if err := db.Connect(connectCtx); err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		if cfg.Store.Migrate {
			if err := db.Migrate(ctx); err != nil {
				db.Close()
				return nil, fmt.Errorf("failed to migrate database: %w", err)
			}
		}

		c.DB = db
		log.Info().Str("host", dbConfig.Host).Str("db", dbConfig.DBName).Msg("database connected")
	}

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Info().Str("driver", cfg.Store.Driver).Msg("container initialized")
	return c, nil
}

// NewMemoryContainer wires everything over store. Used by tests and seeding.
func NewMemoryContainer(cfg *config.Config, store *memstore.Store) *Container {
	c := &Container{Config: cfg, Store: store}
	c.initRepositories()
	c.initServices()
	c.initHandlers()
	return c
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initRepositories() {
	if c.Store != nil {
		c.AuthorRepo = memstore.NewAuthorRepository(c.Store)
		c.GenreRepo = memstore.NewGenreRepository(c.Store)
		c.BookRepo = memstore.NewBookRepository(c.Store)
		c.BookInstanceRepo = memstore.NewBookInstanceRepository(c.Store)
		return
	}

	pool := c.DB.Pool
	c.AuthorRepo = authorRepo.NewPostgresRepository(pool)
	c.GenreRepo = genreRepo.NewPostgresRepository(pool)
	c.BookRepo = bookRepo.NewPostgresRepository(pool)
	c.BookInstanceRepo = bookinstanceRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.AuthorService = authorService.NewService(c.AuthorRepo, c.BookRepo)
	c.GenreService = genreService.NewService(c.GenreRepo, c.BookRepo)
	c.BookService = bookService.NewService(c.BookRepo, c.AuthorRepo, c.GenreRepo, c.BookInstanceRepo)
	c.BookInstanceService = bookinstanceService.NewService(c.BookInstanceRepo, c.BookRepo)
	c.CatalogService = catalogService.NewService(c.AuthorRepo, c.GenreRepo, c.BookRepo, c.BookInstanceRepo)
}

func (c *Container) initHandlers() {
	c.AuthorHandler = authorHandler.NewHandler(c.AuthorService)
	c.GenreHandler = genreHandler.NewHandler(c.GenreService)
	c.BookHandler = bookHandler.NewHandler(c.BookService)
	c.BookInstanceHandler = bookinstanceHandler.NewHandler(c.BookInstanceService)
	c.CatalogHandler = catalogHandler.NewHandler(c.CatalogService)
}

// ========================================
// HELPER METHODS
// ========================================

// HealthCheck pings whichever store is in use.
func (c *Container) HealthCheck(ctx context.Context) error {
	if c.DB != nil {
		return c.DB.HealthCheck(ctx)
	}
	if c.Store != nil {
		return c.Store.Ping()
	}
	return fmt.Errorf("no store configured")
}

// Cleanup releases the store on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close database")
		}
	}
	log.Info().Msg("container cleanup completed")
}

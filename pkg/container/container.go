// Package container wires the dependency graph:
// config → store → cache → repositories → services → handlers.
package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"book-store-service/internal/config"
	infraCache "book-store-service/internal/infrastructure/cache"
	"book-store-service/internal/infrastructure/database"
	"book-store-service/internal/infrastructure/memstore"
	"book-store-service/internal/shared/middleware"
	"book-store-service/pkg/cache"
	txdb "book-store-service/pkg/database"

	appUserHandler "book-store-service/internal/domains/appuser/handler"
	appUserRepo "book-store-service/internal/domains/appuser/repository"
	appUserService "book-store-service/internal/domains/appuser/service"
	authorHandler "book-store-service/internal/domains/author/handler"
	authorRepo "book-store-service/internal/domains/author/repository"
	authorService "book-store-service/internal/domains/author/service"
	bookHandler "book-store-service/internal/domains/book/handler"
	bookRepo "book-store-service/internal/domains/book/repository"
	bookService "book-store-service/internal/domains/book/service"
	customerHandler "book-store-service/internal/domains/customer/handler"
	customerRepo "book-store-service/internal/domains/customer/repository"
	customerService "book-store-service/internal/domains/customer/service"
	purchaseHandler "book-store-service/internal/domains/purchase/handler"
	purchaseRepo "book-store-service/internal/domains/purchase/repository"
	purchaseService "book-store-service/internal/domains/purchase/service"
)

// Pinger reports store health.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Container struct {
	Config *config.Config

	// Infrastructure. DB and Redis are nil with the memory driver.
	DB          *database.PostgresDB
	Redis       *infraCache.RedisCache
	Memory      *memstore.Store
	Store       Pinger
	Transactor  txdb.Transactor
	RateLimiter *middleware.IPRateLimiter

	// Repositories
	AuthorRepo     authorRepo.RepositoryInterface
	BookRepo       bookRepo.RepositoryInterface
	BookAuthorRepo bookRepo.AuthorLinkRepository
	CustomerRepo   customerRepo.RepositoryInterface
	PurchaseRepo   purchaseRepo.RepositoryInterface
	AppUserRepo    appUserRepo.RepositoryInterface

	// Services
	AuthorService   authorService.ServiceInterface
	BookService     bookService.ServiceInterface
	CustomerService customerService.ServiceInterface
	PurchaseService purchaseService.ServiceInterface
	AppUserService  appUserService.ServiceInterface

	// Handlers
	AuthorHandler   *authorHandler.AuthorHandler
	BookHandler     *bookHandler.BookHandler
	CustomerHandler *customerHandler.CustomerHandler
	PurchaseHandler *purchaseHandler.PurchaseHandler
	AppUserHandler  *appUserHandler.AppUserHandler

	done chan struct{}
}

// NewContainer loads configuration from the environment and builds the graph.
func NewContainer(ctx context.Context) (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return New(ctx, cfg)
}

func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg, done: make(chan struct{})}
	log.Info().Str("environment", cfg.App.Environment).Str("store", cfg.Store.Driver).Msg("initializing container")

	var err error
	switch cfg.Store.Driver {
	case config.DriverMemory:
		c.initMemory()
	default:
		err = c.initPostgres(ctx)
	}
	if err != nil {
		c.Cleanup()
		return nil, err
	}

	c.initServices()
	c.initHandlers()

	if cfg.RateLimit.Enabled {
		c.RateLimiter = middleware.NewIPRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		go c.RateLimiter.Run(c.done)
	}

	log.Info().Msg("container initialized")
	return c, nil
}

func (c *Container) initMemory() {
	store := memstore.New()
	c.Memory = store
	c.Store = store
	c.Transactor = store

	c.AuthorRepo = authorRepo.NewMemoryRepository(store)
	c.BookRepo = bookRepo.NewMemoryRepository(store)
	c.BookAuthorRepo = bookRepo.NewMemoryAuthorLinkRepository(store)
	c.CustomerRepo = customerRepo.NewMemoryRepository(store)
	c.PurchaseRepo = purchaseRepo.NewMemoryRepository(store)
	c.AppUserRepo = appUserRepo.NewMemoryRepository(store)
}

func (c *Container) initPostgres(ctx context.Context) error {
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)
	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := db.Connect(connectCtx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(ctx); err != nil {
		db.Close()
		return fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db
	c.Store = db
	c.Transactor = txdb.NewPgxTransactor(db.Pool)

	var readCache cache.Cache
	if c.Config.Redis.Enabled {
		rc := infraCache.NewRedisCache(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)
		if err := rc.Connect(ctx); err != nil {
			log.Warn().Err(err).Msg("redis unavailable, continuing without cache")
			_ = rc.Close()
		} else {
			c.Redis = rc
			readCache = rc
		}
	}

	pool := db.Pool
	ttl := c.Config.Redis.TTL
	c.AuthorRepo = authorRepo.NewPostgresRepository(pool, readCache, ttl)
	c.BookRepo = bookRepo.NewPostgresRepository(pool, readCache, ttl)
	c.BookAuthorRepo = bookRepo.NewPostgresAuthorLinkRepository(pool)
	c.CustomerRepo = customerRepo.NewPostgresRepository(pool)
	c.PurchaseRepo = purchaseRepo.NewPostgresRepository(pool)
	c.AppUserRepo = appUserRepo.NewPostgresRepository(pool)
	return nil
}

func (c *Container) initServices() {
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo, c.BookRepo, c.BookAuthorRepo, c.Transactor)
	c.BookService = bookService.NewBookService(c.BookRepo, c.BookAuthorRepo, c.AuthorRepo, c.AuthorService, c.Transactor)
	c.CustomerService = customerService.NewCustomerService(c.CustomerRepo)
	c.PurchaseService = purchaseService.NewPurchaseService(c.PurchaseRepo, c.CustomerRepo, c.BookRepo, nil)
	c.AppUserService = appUserService.NewAppUserService(c.AppUserRepo, c.Config.Security.BcryptCost)
}

func (c *Container) initHandlers() {
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
	c.CustomerHandler = customerHandler.NewCustomerHandler(c.CustomerService)
	c.PurchaseHandler = purchaseHandler.NewPurchaseHandler(c.PurchaseService)
	c.AppUserHandler = appUserHandler.NewAppUserHandler(c.AppUserService)
}

// Cleanup releases connections and stops background workers. Safe to call twice.
func (c *Container) Cleanup() {
	select {
	case <-c.done:
	default:
		close(c.done)
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close redis")
		}
	}
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close database")
		}
	}
	log.Info().Msg("container cleanup completed")
}

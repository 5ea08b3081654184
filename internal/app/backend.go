// Package app assembles the service from configuration.
package app

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	clientdomain "github.com/tair/favorites-service/internal/client/domain"
	clientrepo "github.com/tair/favorites-service/internal/client/repository"
	favoritedomain "github.com/tair/favorites-service/internal/favorite/domain"
	favoriterepo "github.com/tair/favorites-service/internal/favorite/repository"
	productdomain "github.com/tair/favorites-service/internal/product/domain"
	productrepo "github.com/tair/favorites-service/internal/product/repository"
	"github.com/tair/favorites-service/internal/storage/dynamo"
	"github.com/tair/favorites-service/internal/storage/memory"
	"github.com/tair/favorites-service/pkg/config"
	"github.com/tair/favorites-service/pkg/database"
	"github.com/tair/favorites-service/pkg/logger"
)

// Backend is an opened store: the three repositories plus its health probe.
type Backend struct {
	Clients   clientdomain.ClientRepository
	Products  productdomain.ProductRepository
	Favorites favoritedomain.FavoriteRepository

	ping  func(ctx context.Context) error
	close func() error
}

// Ping reports whether the store is reachable.
func (b *Backend) Ping(ctx context.Context) error {
	return b.ping(ctx)
}

// Close releases the store's connections.
func (b *Backend) Close() error {
	if b.close == nil {
		return nil
	}
	return b.close()
}

// Reset removes every favorite, product and client, in that order.
func (b *Backend) Reset(ctx context.Context) error {
	if err := b.Favorites.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to reset favorites: %w", err)
	}
	if err := b.Products.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to reset products: %w", err)
	}
	if err := b.Clients.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to reset clients: %w", err)
	}
	return nil
}

// OpenBackend connects to the store selected by STORE_BACKEND. Repositories
// are wrapped with tracing.
func OpenBackend(ctx context.Context, cfg *config.Config) (*Backend, error) {
	var (
		b   *Backend
		err error
	)
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		b, err = openPostgres(cfg.Database)
	case config.BackendDynamoDB:
		b, err = openDynamo(ctx, cfg.DynamoDB)
	case config.BackendMemory:
		b = NewMemoryBackend()
	default:
		err = fmt.Errorf("unsupported store backend %q", cfg.StoreBackend)
	}
	if err != nil {
		return nil, err
	}

	logger.Logger.Info().Str("backend", cfg.StoreBackend).Msg("Store opened")
	return withTracing(b), nil
}

// NewMemoryBackend returns an empty in-process store.
func NewMemoryBackend() *Backend {
	store := memory.NewStore()
	return &Backend{
		Clients:   store.Clients(),
		Products:  store.Products(),
		Favorites: store.Favorites(),
		ping:      store.Ping,
	}
}

func withTracing(b *Backend) *Backend {
	b.Clients = clientrepo.NewClientRepositoryWithTracing(b.Clients)
	b.Products = productrepo.NewProductRepositoryWithTracing(b.Products)
	b.Favorites = favoriterepo.NewFavoriteRepositoryWithTracing(b.Favorites)
	return b
}

func openPostgres(cfg config.DatabaseConfig) (*Backend, error) {
	db, err := database.NewGormConnection(database.Config{
		Host:     cfg.Host,
		Port:     cfg.Port,
		User:     cfg.User,
		Password: cfg.Password,
		DBName:   cfg.Name,
		SSLMode:  cfg.SSLMode,
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	b, err := NewGormBackend(db)
	if err != nil {
		sqlDB.Close()
		return nil, err
	}
	b.close = sqlDB.Close
	return b, nil
}

// NewGormBackend migrates the schema and builds the GORM repositories.
func NewGormBackend(db *gorm.DB) (*Backend, error) {
	clients := clientrepo.NewGormClientRepository(db)
	products := productrepo.NewGormProductRepository(db)
	favorites := favoriterepo.NewGormFavoriteRepository(db)

	if err := errors.Join(clients.AutoMigrate(), products.AutoMigrate(), favorites.AutoMigrate()); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Backend{
		Clients:   clients,
		Products:  products,
		Favorites: favorites,
		ping: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}, nil
}

func openDynamo(ctx context.Context, cfg config.DynamoDBConfig) (*Backend, error) {
	client, err := dynamo.NewClient(ctx, dynamo.ClientConfig{Endpoint: cfg.Endpoint, Region: cfg.Region})
	if err != nil {
		return nil, err
	}

	store := dynamo.NewStore(client, dynamo.TablesWithPrefix(cfg.TablePrefix))
	if err := store.EnsureTables(ctx); err != nil {
		return nil, err
	}
	return &Backend{
		Clients:   store.Clients(),
		Products:  store.Products(),
		Favorites: store.Favorites(),
		ping:      store.Ping,
	}, nil
}

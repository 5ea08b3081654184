//go:build integration

package app

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	clientdomain "github.com/tair/favorites-service/internal/client/domain"
	favoritedomain "github.com/tair/favorites-service/internal/favorite/domain"
	productdomain "github.com/tair/favorites-service/internal/product/domain"
	"github.com/tair/favorites-service/pkg/config"
)

func startPostgres(t *testing.T) config.DatabaseConfig {
	t.Helper()
	ctx := context.Background()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "postgres",
				"POSTGRES_DB":       "favoritesdb",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Terminate(ctx) })

	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, "5432")
	require.NoError(t, err)

	return config.DatabaseConfig{
		Host:     host,
		Port:     port.Port(),
		User:     "postgres",
		Password: "postgres",
		Name:     "favoritesdb",
		SSLMode:  "disable",
	}
}

func TestPostgresBackend(t *testing.T) {
	cfg := testConfig()
	cfg.StoreBackend = config.BackendPostgres
	cfg.Database = startPostgres(t)

	ctx := context.Background()
	b, err := OpenBackend(ctx, cfg)
	require.NoError(t, err)
	defer b.Close()
	require.NoError(t, b.Ping(ctx))

	require.NoError(t, b.Clients.Create(ctx, &clientdomain.Client{ID: 1, Name: "A", Email: "a@x.com"}))
	assert.ErrorIs(t, b.Clients.Create(ctx, &clientdomain.Client{ID: 1, Name: "B", Email: "b@x.com"}), clientdomain.ErrDuplicate)

	require.NoError(t, b.Products.Create(ctx, &productdomain.Product{ID: 1, Title: "T", Price: 10}))
	require.NoError(t, b.Favorites.Create(ctx, favoritedomain.NewFavorite(1, 1)))
	assert.ErrorIs(t, b.Favorites.Create(ctx, favoritedomain.NewFavorite(1, 1)), favoritedomain.ErrDuplicate)

	require.NoError(t, b.Products.Update(ctx, 1, &productdomain.Product{ID: 9, Title: "T", Price: 10}))
	_, err = b.Products.FindByID(ctx, 1)
	assert.ErrorIs(t, err, productdomain.ErrNotFound)

	require.NoError(t, b.Reset(ctx))
	res, err := Populate(ctx, b, rand.New(rand.NewPCG(3, 4)))
	require.NoError(t, err)
	assert.Equal(t, 300, res.Favorites)

	page, err := b.Products.FindPage(ctx, 10, 90)
	require.NoError(t, err)
	assert.Len(t, page, 10)
}

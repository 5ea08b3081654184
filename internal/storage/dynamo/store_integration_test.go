//go:build integration

package dynamo

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	clientdomain "github.com/tair/favorites-service/internal/client/domain"
	favoritedomain "github.com/tair/favorites-service/internal/favorite/domain"
	productdomain "github.com/tair/favorites-service/internal/product/domain"
)

func startDynamoLocal(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "amazon/dynamodb-local:2.5.2",
			ExposedPorts: []string{"8000/tcp"},
			WaitingFor:   wait.ForListeningPort("8000/tcp"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Terminate(ctx) })

	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, "8000")
	require.NoError(t, err)

	client, err := NewClient(ctx, ClientConfig{
		Endpoint: fmt.Sprintf("http://%s:%s", host, port.Port()),
		Region:   "us-east-1",
	})
	require.NoError(t, err)

	store := NewStore(client, TablesWithPrefix("it_"))
	require.NoError(t, store.EnsureTables(ctx))
	require.NoError(t, store.EnsureTables(ctx))
	require.NoError(t, store.Ping(ctx))
	return store
}

func TestDynamoStore(t *testing.T) {
	store := startDynamoLocal(t)
	ctx := context.Background()

	clients := store.Clients()
	require.NoError(t, clients.Create(ctx, &clientdomain.Client{ID: 2, Name: "Bo", Email: "bo@example.com"}))
	require.NoError(t, clients.Create(ctx, &clientdomain.Client{ID: 1, Name: "Ana", Email: "ana@example.com"}))
	assert.ErrorIs(t, clients.Create(ctx, &clientdomain.Client{ID: 1}), clientdomain.ErrDuplicate)

	found, err := clients.FindByEmail(ctx, "bo@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(2), found.ID)

	all, err := clients.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, int64(1), all[0].ID)

	products := store.Products()
	for i := int64(1); i <= 3; i++ {
		require.NoError(t, products.Create(ctx, &productdomain.Product{ID: i, Title: "P", Price: 1}))
	}
	page, err := products.FindPage(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, int64(3), page[0].ID)

	moved := &productdomain.Product{ID: 10, Title: "Moved", Price: 2}
	require.NoError(t, products.Update(ctx, 1, moved))
	_, err = products.FindByID(ctx, 1)
	assert.ErrorIs(t, err, productdomain.ErrNotFound)
	assert.ErrorIs(t, products.Update(ctx, 2, &productdomain.Product{ID: 3}), productdomain.ErrDuplicate)

	favorites := store.Favorites()
	require.NoError(t, favorites.Create(ctx, favoritedomain.NewFavorite(1, 10)))
	require.NoError(t, favorites.Create(ctx, favoritedomain.NewFavorite(2, 10)))
	assert.ErrorIs(t, favorites.Create(ctx, favoritedomain.NewFavorite(1, 10)), favoritedomain.ErrDuplicate)

	byProduct, err := favorites.FindByProduct(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, byProduct, 2)

	fav, err := favorites.Find(ctx, 1, 10)
	require.NoError(t, err)
	require.NoError(t, favorites.Delete(ctx, fav))
	assert.ErrorIs(t, favorites.Delete(ctx, fav), favoritedomain.ErrNotFound)

	count, err := favorites.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, favorites.DeleteAll(ctx))
	require.NoError(t, products.DeleteAll(ctx))
	require.NoError(t, clients.DeleteAll(ctx))
	count, err = clients.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientdomain "github.com/tair/favorites-service/internal/client/domain"
	favoritedomain "github.com/tair/favorites-service/internal/favorite/domain"
	productdomain "github.com/tair/favorites-service/internal/product/domain"
)

func TestClientKeyConstraint(t *testing.T) {
	ctx := context.Background()
	clients := NewStore().Clients()

	require.NoError(t, clients.Create(ctx, &clientdomain.Client{ID: 1, Name: "A", Email: "a@x.com"}))
	err := clients.Create(ctx, &clientdomain.Client{ID: 1, Name: "B", Email: "b@x.com"})
	assert.ErrorIs(t, err, clientdomain.ErrDuplicate)

	c, err := clients.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), c.ID)

	assert.ErrorIs(t, clients.Delete(ctx, 2), clientdomain.ErrNotFound)
}

func TestProductPagingKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	products := NewStore().Products()
	for _, id := range []int64{5, 3, 9, 1} {
		require.NoError(t, products.Create(ctx, &productdomain.Product{ID: id, Title: "p"}))
	}

	page, err := products.FindPage(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, int64(9), page[0].ID)
	assert.Equal(t, int64(1), page[1].ID)

	page, err = products.FindPage(ctx, 2, 10)
	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestProductRekey(t *testing.T) {
	ctx := context.Background()
	products := NewStore().Products()
	require.NoError(t, products.Create(ctx, &productdomain.Product{ID: 1, Title: "a"}))
	require.NoError(t, products.Create(ctx, &productdomain.Product{ID: 2, Title: "b"}))

	err := products.Update(ctx, 1, &productdomain.Product{ID: 2, Title: "a"})
	assert.ErrorIs(t, err, productdomain.ErrDuplicate)

	require.NoError(t, products.Update(ctx, 1, &productdomain.Product{ID: 7, Title: "a"}))
	_, err = products.FindByID(ctx, 1)
	assert.ErrorIs(t, err, productdomain.ErrNotFound)

	page, err := products.FindPage(ctx, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(7), page[0].ID)
}

func TestFavoritePairIsUniqueUnderConcurrency(t *testing.T) {
	ctx := context.Background()
	favorites := NewStore().Favorites()

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- favorites.Create(ctx, favoritedomain.NewFavorite(1, 1))
		}()
	}
	wg.Wait()
	close(errs)

	created := 0
	for err := range errs {
		if err == nil {
			created++
			continue
		}
		assert.ErrorIs(t, err, favoritedomain.ErrDuplicate)
	}
	assert.Equal(t, 1, created)

	n, err := favorites.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

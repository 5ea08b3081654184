package query_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/favorites-service/internal/product/domain"
	"github.com/tair/favorites-service/internal/product/usecase/query"
	"github.com/tair/favorites-service/internal/storage/memory"
	"github.com/tair/favorites-service/pkg/apperror"
	"github.com/tair/favorites-service/pkg/catalog"
)

func seed(t *testing.T, repo domain.ProductRepository, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		require.NoError(t, repo.Create(context.Background(), &domain.Product{
			ID: int64(i), Title: fmt.Sprintf("Product %d", i), Price: float64(i),
		}))
	}
}

func TestGetProduct(t *testing.T) {
	store := memory.NewStore()
	seed(t, store.Products(), 1)
	h := query.NewGetProductHandler(store.Products())

	p, err := h.Handle(context.Background(), query.GetProductQuery{ID: 1})
	require.NoError(t, err)
	assert.Equal(t, "Product 1", p.Title)

	_, err = h.Handle(context.Background(), query.GetProductQuery{ID: 2})
	assert.Equal(t, catalog.ProductNotFound, apperror.KindOf(err))
	assert.Equal(t, "Product with id 2 not found", apperror.From(err).Message())
}

func TestListProductsPages(t *testing.T) {
	store := memory.NewStore()
	seed(t, store.Products(), 23)
	h := query.NewListProductsHandler(store.Products())
	ctx := context.Background()

	first, err := h.Handle(ctx, query.ListProductsQuery{Page: 1, PageSize: domain.DefaultPageSize})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPageSize, first.PageSize)
	assert.Equal(t, int64(23), first.TotalItems)
	assert.Equal(t, 3, first.TotalPages)
	require.Len(t, first.Products, 10)
	assert.Equal(t, int64(1), first.Products[0].ID)

	last, err := h.Handle(ctx, query.ListProductsQuery{Page: 3, PageSize: domain.DefaultPageSize})
	require.NoError(t, err)
	assert.Len(t, last.Products, 3)
	assert.Equal(t, int64(21), last.Products[0].ID)

	_, err = h.Handle(ctx, query.ListProductsQuery{Page: 4, PageSize: domain.DefaultPageSize})
	assert.Equal(t, catalog.OutOfPages, apperror.KindOf(err))
	assert.Equal(t, "Page 4 is out of range, there are 3 pages", apperror.From(err).Message())

	sized, err := h.Handle(ctx, query.ListProductsQuery{Page: 2, PageSize: 20})
	require.NoError(t, err)
	assert.Len(t, sized.Products, 3)
	assert.Equal(t, 2, sized.TotalPages)
}

func TestListProductsRejectsBadInput(t *testing.T) {
	store := memory.NewStore()
	seed(t, store.Products(), 3)
	h := query.NewListProductsHandler(store.Products())

	for _, q := range []query.ListProductsQuery{
		{Page: 0},
		{Page: -1},
		{Page: 1},
		{Page: 1, PageSize: -5},
		{Page: 1, PageSize: domain.MaxPageSize + 1},
	} {
		_, err := h.Handle(context.Background(), q)
		assert.Equal(t, catalog.ValidationFailure, apperror.KindOf(err), "%+v", q)
	}
}

func TestListProductsEmptyStore(t *testing.T) {
	h := query.NewListProductsHandler(memory.NewStore().Products())

	_, err := h.Handle(context.Background(), query.ListProductsQuery{Page: 1, PageSize: domain.DefaultPageSize})
	assert.Equal(t, catalog.OutOfPages, apperror.KindOf(err))
}

package command_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	favoritedomain "github.com/tair/favorites-service/internal/favorite/domain"
	favoritecommand "github.com/tair/favorites-service/internal/favorite/usecase/command"
	"github.com/tair/favorites-service/internal/product/domain"
	"github.com/tair/favorites-service/internal/product/usecase/command"
	"github.com/tair/favorites-service/internal/storage/memory"
	"github.com/tair/favorites-service/pkg/apperror"
	"github.com/tair/favorites-service/pkg/catalog"
)

func ptr[T any](v T) *T { return &v }

func seedProduct(t *testing.T, repo domain.ProductRepository, id int64) {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), &domain.Product{
		ID: id, Title: "Chair", Price: 10, Image: "https://example.com/chair.jpg", Brand: "Acme",
	}))
}

func TestCreateProduct(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	h := command.NewCreateProductHandler(store.Products())

	p, err := h.Handle(ctx, command.CreateProductCommand{ID: 1, Title: "Chair", Price: 10, ReviewScore: ptr(4.5)})
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)
	require.NotNil(t, p.ReviewScore)
	assert.InDelta(t, 4.5, *p.ReviewScore, 1e-9)

	_, err = h.Handle(ctx, command.CreateProductCommand{ID: 1, Title: "Table", Price: 20})
	assert.Equal(t, catalog.ProductAlreadyExists, apperror.KindOf(err))
	assert.Equal(t, 409, apperror.From(err).Status)

	_, err = h.Handle(ctx, command.CreateProductCommand{ID: 2, Title: "Broken", Price: -1})
	assert.Equal(t, catalog.ValidationFailure, apperror.KindOf(err))
}

func TestUpdateProduct(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repo := store.Products()
	seedProduct(t, repo, 1)
	seedProduct(t, repo, 2)
	h := command.NewUpdateProductHandler(repo)

	t.Run("missing target", func(t *testing.T) {
		_, err := h.Handle(ctx, command.UpdateProductCommand{ID: 99, Patch: domain.ProductPatch{ID: ptr(int64(2))}})
		assert.Equal(t, catalog.ProductNotFound, apperror.KindOf(err))
	})

	t.Run("id taken", func(t *testing.T) {
		_, err := h.Handle(ctx, command.UpdateProductCommand{
			ID:    1,
			Patch: domain.ProductPatch{ID: ptr(int64(2)), Title: ptr("Renamed")},
		})
		assert.Equal(t, catalog.ProductIDAlreadyExists, apperror.KindOf(err))

		unchanged, err := repo.FindByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Chair", unchanged.Title)
	})

	t.Run("partial fields", func(t *testing.T) {
		p, err := h.Handle(ctx, command.UpdateProductCommand{
			ID:    1,
			Patch: domain.ProductPatch{Price: ptr(12.5), ReviewScore: ptr(3.0)},
		})
		require.NoError(t, err)
		assert.Equal(t, "Chair", p.Title)
		assert.InDelta(t, 12.5, p.Price, 1e-9)
	})

	t.Run("same id is not a conflict", func(t *testing.T) {
		_, err := h.Handle(ctx, command.UpdateProductCommand{ID: 1, Patch: domain.ProductPatch{ID: ptr(int64(1))}})
		assert.NoError(t, err)
	})

	t.Run("rekey", func(t *testing.T) {
		p, err := h.Handle(ctx, command.UpdateProductCommand{ID: 1, Patch: domain.ProductPatch{ID: ptr(int64(7))}})
		require.NoError(t, err)
		assert.Equal(t, int64(7), p.ID)

		_, err = repo.FindByID(ctx, 1)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		moved, err := repo.FindByID(ctx, 7)
		require.NoError(t, err)
		assert.InDelta(t, 12.5, moved.Price, 1e-9)
	})
}

type failingRemover struct{}

func (failingRemover) RemoveForProduct(context.Context, int64) (int, error) {
	return 0, apperror.Internal(errors.New("store unavailable"))
}

func TestDeleteProductCascades(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repo := store.Products()
	favorites := store.Favorites()
	seedProduct(t, repo, 1)
	seedProduct(t, repo, 2)
	for _, f := range []*favoritedomain.Favorite{
		favoritedomain.NewFavorite(10, 1),
		favoritedomain.NewFavorite(11, 1),
		favoritedomain.NewFavorite(10, 2),
	} {
		require.NoError(t, favorites.Create(ctx, f))
	}

	h := command.NewDeleteProductHandler(repo, favoritecommand.NewRemoveAllFavoritesHandler(favorites))

	res, err := h.Handle(ctx, command.DeleteProductCommand{ID: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, res.FavoritesRemoved)

	left, err := favorites.FindByProduct(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, left)
	other, err := favorites.FindByProduct(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, other, 1)

	_, err = h.Handle(ctx, command.DeleteProductCommand{ID: 1})
	assert.Equal(t, catalog.ProductNotFound, apperror.KindOf(err))
}

func TestDeleteProductKeepsProductWhenCascadeFails(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repo := store.Products()
	seedProduct(t, repo, 1)

	h := command.NewDeleteProductHandler(repo, failingRemover{})

	_, err := h.Handle(ctx, command.DeleteProductCommand{ID: 1})
	assert.Equal(t, catalog.InternalError, apperror.KindOf(err))

	_, err = repo.FindByID(ctx, 1)
	assert.NoError(t, err)
}

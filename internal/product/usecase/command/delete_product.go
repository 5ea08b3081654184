package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/tair/favorites-service/internal/product/domain"
	"github.com/tair/favorites-service/pkg/apperror"
	"github.com/tair/favorites-service/pkg/catalog"
)

// FavoritesRemover deletes every favorite that references a product.
type FavoritesRemover interface {
	RemoveForProduct(ctx context.Context, productID int64) (int, error)
}

// DeleteProductCommand represents the command to delete a product
type DeleteProductCommand struct {
	ID int64
}

// DeleteProductResult reports what the cascade removed.
type DeleteProductResult struct {
	FavoritesRemoved int
}

// DeleteProductHandler handles product deletion command
type DeleteProductHandler struct {
	repo      domain.ProductRepository
	favorites FavoritesRemover
}

// NewDeleteProductHandler creates a new delete product handler
func NewDeleteProductHandler(repo domain.ProductRepository, favorites FavoritesRemover) *DeleteProductHandler {
	return &DeleteProductHandler{repo: repo, favorites: favorites}
}

// Handle removes the product's favorites first; if that fails the product
// is kept.
func (h *DeleteProductHandler) Handle(ctx context.Context, cmd DeleteProductCommand) (*DeleteProductResult, error) {
	if _, err := h.repo.FindByID(ctx, cmd.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound(catalog.ProductNotFound, cmd.ID)
		}
		return nil, apperror.Internal(fmt.Errorf("failed to load product: %w", err))
	}

	removed, err := h.favorites.RemoveForProduct(ctx, cmd.ID)
	if err != nil {
		return nil, apperror.From(fmt.Errorf("failed to remove product favorites: %w", err))
	}

	if err := h.repo.Delete(ctx, cmd.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound(catalog.ProductNotFound, cmd.ID)
		}
		return nil, apperror.Internal(fmt.Errorf("failed to delete product: %w", err))
	}

	return &DeleteProductResult{FavoritesRemoved: removed}, nil
}

package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/tair/favorites-service/internal/product/domain"
	"github.com/tair/favorites-service/pkg/apperror"
	"github.com/tair/favorites-service/pkg/catalog"
)

// UpdateProductCommand represents a partial update of a product
type UpdateProductCommand struct {
	ID    int64
	Patch domain.ProductPatch
}

// UpdateProductHandler handles product update command
type UpdateProductHandler struct {
	repo domain.ProductRepository
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(repo domain.ProductRepository) *UpdateProductHandler {
	return &UpdateProductHandler{repo: repo}
}

// Handle loads the product, rejects an id change onto a taken id before any
// field is applied, then writes the patched product. Favorites keep pointing
// at the old id when the id changes.
func (h *UpdateProductHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*domain.Product, error) {
	if cmd.Patch.Price != nil && *cmd.Patch.Price < 0 {
		return nil, apperror.Validation("price cannot be negative")
	}

	product, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound(catalog.ProductNotFound, cmd.ID)
		}
		return nil, apperror.Internal(fmt.Errorf("failed to load product: %w", err))
	}

	if cmd.Patch.ChangesID(cmd.ID) {
		newID := *cmd.Patch.ID
		taken, err := h.repo.FindByID(ctx, newID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Internal(fmt.Errorf("failed to look up product: %w", err))
		}
		if taken != nil {
			return nil, apperror.Conflict(catalog.ProductIDAlreadyExists, newID)
		}
	}

	cmd.Patch.Apply(product)

	if err := h.repo.Update(ctx, cmd.ID, product); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return nil, apperror.NotFound(catalog.ProductNotFound, cmd.ID)
		case errors.Is(err, domain.ErrDuplicate):
			return nil, apperror.Conflict(catalog.ProductIDAlreadyExists, product.ID).WithCause(err)
		}
		return nil, apperror.Internal(fmt.Errorf("failed to update product: %w", err))
	}

	return product, nil
}

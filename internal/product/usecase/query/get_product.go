package query

import (
	"context"
	"errors"
	"fmt"

	"github.com/tair/favorites-service/internal/product/domain"
	"github.com/tair/favorites-service/pkg/apperror"
	"github.com/tair/favorites-service/pkg/catalog"
)

// GetProductQuery represents the query to get a product by ID
type GetProductQuery struct {
	ID int64
}

// GetProductHandler handles get product query
type GetProductHandler struct {
	repo domain.ProductRepository
}

// NewGetProductHandler creates a new get product handler
func NewGetProductHandler(repo domain.ProductRepository) *GetProductHandler {
	return &GetProductHandler{repo: repo}
}

// Handle executes the get product query
func (h *GetProductHandler) Handle(ctx context.Context, query GetProductQuery) (*domain.Product, error) {
	product, err := h.repo.FindByID(ctx, query.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound(catalog.ProductNotFound, query.ID)
		}
		return nil, apperror.Internal(fmt.Errorf("failed to get product: %w", err))
	}
	return product, nil
}

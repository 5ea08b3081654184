package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/tair/favorites-service/internal/product/domain"
	"github.com/tair/favorites-service/pkg/apperror"
	"github.com/tair/favorites-service/pkg/catalog"
)

// CreateProductCommand represents the command to create a new product
type CreateProductCommand struct {
	ID          int64
	Title       string
	Price       float64
	Image       string
	Brand       string
	ReviewScore *float64
}

// CreateProductHandler handles product creation command
type CreateProductHandler struct {
	repo domain.ProductRepository
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(repo domain.ProductRepository) *CreateProductHandler {
	return &CreateProductHandler{repo: repo}
}

// Handle executes the create product command
func (h *CreateProductHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*domain.Product, error) {
	if cmd.Price < 0 {
		return nil, apperror.Validation("price cannot be negative")
	}

	existing, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(fmt.Errorf("failed to look up product: %w", err))
	}
	if existing != nil {
		return nil, apperror.Conflict(catalog.ProductAlreadyExists)
	}

	product := &domain.Product{
		ID:          cmd.ID,
		Title:       cmd.Title,
		Price:       cmd.Price,
		Image:       cmd.Image,
		Brand:       cmd.Brand,
		ReviewScore: cmd.ReviewScore,
	}
	if err := h.repo.Create(ctx, product); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.Conflict(catalog.ProductAlreadyExists).WithCause(err)
		}
		return nil, apperror.Internal(fmt.Errorf("failed to create product: %w", err))
	}

	return product, nil
}

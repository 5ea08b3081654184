package query

import (
	"context"
	"fmt"

	"github.com/tair/favorites-service/internal/product/domain"
	"github.com/tair/favorites-service/pkg/apperror"
	"github.com/tair/favorites-service/pkg/catalog"
)

// ListProductsQuery represents the query to list one page of products
type ListProductsQuery struct {
	Page     int
	PageSize int // 1..domain.MaxPageSize
}

// ListProductsHandler handles list products query
type ListProductsHandler struct {
	repo domain.ProductRepository
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(repo domain.ProductRepository) *ListProductsHandler {
	return &ListProductsHandler{repo: repo}
}

// Handle returns the requested page. A page past the last one, including
// page 1 of an empty catalog, is reported as OutOfPages.
func (h *ListProductsHandler) Handle(ctx context.Context, query ListProductsQuery) (*domain.Page, error) {
	if query.Page < 1 {
		return nil, apperror.Validation("page must be greater than or equal to 1")
	}
	if query.PageSize < 1 || query.PageSize > domain.MaxPageSize {
		return nil, apperror.Validation(fmt.Sprintf("page_size must be between 1 and %d", domain.MaxPageSize))
	}

	total, err := h.repo.Count(ctx)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("failed to count products: %w", err))
	}

	totalPages := domain.TotalPages(total, query.PageSize)
	if query.Page > totalPages {
		return nil, apperror.NotFound(catalog.OutOfPages, query.Page, totalPages)
	}

	products, err := h.repo.FindPage(ctx, query.PageSize, (query.Page-1)*query.PageSize)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("failed to list products: %w", err))
	}
	if products == nil {
		products = []domain.Product{}
	}

	return &domain.Page{
		CurrentPage: query.Page,
		PageSize:    query.PageSize,
		TotalItems:  total,
		TotalPages:  totalPages,
		Products:    products,
	}, nil
}

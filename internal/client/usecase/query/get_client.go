package query

import (
	"context"
	"errors"
	"fmt"

	"github.com/tair/favorites-service/internal/client/domain"
	"github.com/tair/favorites-service/pkg/apperror"
	"github.com/tair/favorites-service/pkg/catalog"
)

// GetClientQuery represents the query to get a client by ID
type GetClientQuery struct {
	ID int64
}

// GetClientHandler handles get client query
type GetClientHandler struct {
	repo domain.ClientRepository
}

// NewGetClientHandler creates a new get client handler
func NewGetClientHandler(repo domain.ClientRepository) *GetClientHandler {
	return &GetClientHandler{repo: repo}
}

// Handle executes the get client query
func (h *GetClientHandler) Handle(ctx context.Context, query GetClientQuery) (*domain.Client, error) {
	client, err := h.repo.FindByID(ctx, query.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound(catalog.ClientNotFound, query.ID)
		}
		return nil, apperror.Internal(fmt.Errorf("failed to get client: %w", err))
	}
	return client, nil
}

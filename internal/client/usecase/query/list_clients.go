package query

import (
	"context"
	"fmt"

	"github.com/tair/favorites-service/internal/client/domain"
	"github.com/tair/favorites-service/pkg/apperror"
)

// ListClientsQuery lists every client; there is no pagination.
type ListClientsQuery struct{}

// ListClientsHandler handles list clients query
type ListClientsHandler struct {
	repo domain.ClientRepository
}

// NewListClientsHandler creates a new list clients handler
func NewListClientsHandler(repo domain.ClientRepository) *ListClientsHandler {
	return &ListClientsHandler{repo: repo}
}

func (h *ListClientsHandler) Handle(ctx context.Context, _ ListClientsQuery) ([]domain.Client, error) {
	clients, err := h.repo.FindAll(ctx)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("failed to list clients: %w", err))
	}
	if clients == nil {
		clients = []domain.Client{}
	}
	return clients, nil
}

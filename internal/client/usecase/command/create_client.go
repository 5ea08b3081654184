package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/tair/favorites-service/internal/client/domain"
	"github.com/tair/favorites-service/pkg/apperror"
	"github.com/tair/favorites-service/pkg/catalog"
)

// CreateClientCommand represents the command to create a new client
type CreateClientCommand struct {
	ID    int64
	Name  string
	Email string
}

// CreateClientHandler handles client creation command
type CreateClientHandler struct {
	repo domain.ClientRepository
}

// NewCreateClientHandler creates a new create client handler
func NewCreateClientHandler(repo domain.ClientRepository) *CreateClientHandler {
	return &CreateClientHandler{repo: repo}
}

// Handle rejects a duplicate email first, then relies on the store to
// reject a duplicate id.
func (h *CreateClientHandler) Handle(ctx context.Context, cmd CreateClientCommand) (*domain.Client, error) {
	existing, err := h.repo.FindByEmail(ctx, cmd.Email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(fmt.Errorf("failed to look up client email: %w", err))
	}
	if existing != nil {
		return nil, apperror.Conflict(catalog.ClientAlreadyExists)
	}

	client := &domain.Client{
		ID:    cmd.ID,
		Name:  cmd.Name,
		Email: cmd.Email,
	}
	if err := h.repo.Create(ctx, client); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.Conflict(catalog.ClientAlreadyExists).WithCause(err)
		}
		return nil, apperror.Internal(fmt.Errorf("failed to create client: %w", err))
	}

	return client, nil
}

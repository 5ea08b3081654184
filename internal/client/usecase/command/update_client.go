package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/tair/favorites-service/internal/client/domain"
	"github.com/tair/favorites-service/pkg/apperror"
	"github.com/tair/favorites-service/pkg/catalog"
)

// UpdateClientCommand represents a partial update of a client
type UpdateClientCommand struct {
	ID    int64
	Patch domain.ClientPatch
}

// UpdateClientHandler handles client update command
type UpdateClientHandler struct {
	repo domain.ClientRepository
}

// NewUpdateClientHandler creates a new update client handler
func NewUpdateClientHandler(repo domain.ClientRepository) *UpdateClientHandler {
	return &UpdateClientHandler{repo: repo}
}

// Handle applies the present fields of the patch.
// TODO: reject an email already used by another client once existing data has been deduplicated.
func (h *UpdateClientHandler) Handle(ctx context.Context, cmd UpdateClientCommand) (*domain.Client, error) {
	client, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound(catalog.ClientNotFound, cmd.ID)
		}
		return nil, apperror.Internal(fmt.Errorf("failed to load client: %w", err))
	}

	if cmd.Patch.IsEmpty() {
		return client, nil
	}
	cmd.Patch.Apply(client)

	if err := h.repo.Update(ctx, client); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound(catalog.ClientNotFound, cmd.ID)
		}
		return nil, apperror.Internal(fmt.Errorf("failed to update client: %w", err))
	}

	return client, nil
}

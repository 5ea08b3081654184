package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/tair/favorites-service/internal/client/domain"
	"github.com/tair/favorites-service/pkg/apperror"
	"github.com/tair/favorites-service/pkg/catalog"
)

// FavoritesRemover deletes every favorite that references a client.
type FavoritesRemover interface {
	RemoveForClient(ctx context.Context, clientID int64) (int, error)
}

// DeleteClientCommand represents the command to delete a client
type DeleteClientCommand struct {
	ID int64
}

// DeleteClientResult reports what the cascade removed.
type DeleteClientResult struct {
	FavoritesRemoved int
}

// DeleteClientHandler handles client deletion command
type DeleteClientHandler struct {
	repo      domain.ClientRepository
	favorites FavoritesRemover
}

// NewDeleteClientHandler creates a new delete client handler
func NewDeleteClientHandler(repo domain.ClientRepository, favorites FavoritesRemover) *DeleteClientHandler {
	return &DeleteClientHandler{repo: repo, favorites: favorites}
}

// Handle removes the client's favorites one by one, then the client. A
// failure in the cascade leaves the client in place.
func (h *DeleteClientHandler) Handle(ctx context.Context, cmd DeleteClientCommand) (*DeleteClientResult, error) {
	if _, err := h.repo.FindByID(ctx, cmd.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound(catalog.ClientNotFound, cmd.ID)
		}
		return nil, apperror.Internal(fmt.Errorf("failed to load client: %w", err))
	}

	removed, err := h.favorites.RemoveForClient(ctx, cmd.ID)
	if err != nil {
		return nil, apperror.From(fmt.Errorf("failed to remove client favorites: %w", err))
	}

	if err := h.repo.Delete(ctx, cmd.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound(catalog.ClientNotFound, cmd.ID)
		}
		return nil, apperror.Internal(fmt.Errorf("failed to delete client: %w", err))
	}

	return &DeleteClientResult{FavoritesRemoved: removed}, nil
}

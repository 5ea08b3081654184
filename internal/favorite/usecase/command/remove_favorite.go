package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/tair/favorites-service/internal/favorite/domain"
	"github.com/tair/favorites-service/pkg/apperror"
	"github.com/tair/favorites-service/pkg/catalog"
)

// RemoveFavoriteCommand removes one (client, product) favorite
type RemoveFavoriteCommand struct {
	ClientID  int64
	ProductID int64
}

type RemoveFavoriteHandler struct {
	favorites domain.FavoriteRepository
}

func NewRemoveFavoriteHandler(favorites domain.FavoriteRepository) *RemoveFavoriteHandler {
	return &RemoveFavoriteHandler{favorites: favorites}
}

func (h *RemoveFavoriteHandler) Handle(ctx context.Context, cmd RemoveFavoriteCommand) (*domain.Favorite, error) {
	favorite, err := h.favorites.Find(ctx, cmd.ClientID, cmd.ProductID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound(catalog.FavoriteNotFound, cmd.ProductID)
		}
		return nil, apperror.Internal(fmt.Errorf("failed to look up favorite: %w", err))
	}

	if err := h.favorites.Delete(ctx, favorite); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound(catalog.FavoriteNotFound, cmd.ProductID)
		}
		return nil, apperror.Internal(fmt.Errorf("failed to remove favorite: %w", err))
	}

	return favorite, nil
}

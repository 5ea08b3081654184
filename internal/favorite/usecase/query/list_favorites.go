package query

import (
	"context"
	"errors"
	"fmt"

	clientdomain "github.com/tair/favorites-service/internal/client/domain"
	"github.com/tair/favorites-service/internal/favorite/domain"
	"github.com/tair/favorites-service/pkg/apperror"
	"github.com/tair/favorites-service/pkg/catalog"
)

// ListFavoritesQuery lists the favorites of one client
type ListFavoritesQuery struct {
	ClientID int64
}

type ListFavoritesHandler struct {
	favorites domain.FavoriteRepository
	clients   clientdomain.ClientRepository
}

func NewListFavoritesHandler(favorites domain.FavoriteRepository, clients clientdomain.ClientRepository) *ListFavoritesHandler {
	return &ListFavoritesHandler{favorites: favorites, clients: clients}
}

func (h *ListFavoritesHandler) Handle(ctx context.Context, query ListFavoritesQuery) ([]domain.Favorite, error) {
	if _, err := h.clients.FindByID(ctx, query.ClientID); err != nil {
		if errors.Is(err, clientdomain.ErrNotFound) {
			return nil, apperror.NotFound(catalog.ClientNotFound, query.ClientID)
		}
		return nil, apperror.Internal(fmt.Errorf("failed to load client: %w", err))
	}

	favorites, err := h.favorites.FindByClient(ctx, query.ClientID)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("failed to list favorites: %w", err))
	}
	if favorites == nil {
		favorites = []domain.Favorite{}
	}
	return favorites, nil
}

package command

import (
	"context"
	"errors"
	"fmt"

	clientdomain "github.com/tair/favorites-service/internal/client/domain"
	"github.com/tair/favorites-service/internal/favorite/domain"
	productdomain "github.com/tair/favorites-service/internal/product/domain"
	"github.com/tair/favorites-service/pkg/apperror"
	"github.com/tair/favorites-service/pkg/catalog"
)

// AddFavoriteCommand represents the command to mark a product as a client favorite
type AddFavoriteCommand struct {
	ClientID  int64
	ProductID int64
}

// AddFavoriteHandler handles favorite creation command
type AddFavoriteHandler struct {
	favorites domain.FavoriteRepository
	clients   clientdomain.ClientRepository
	products  productdomain.ProductRepository
}

// NewAddFavoriteHandler creates a new add favorite handler
func NewAddFavoriteHandler(
	favorites domain.FavoriteRepository,
	clients clientdomain.ClientRepository,
	products productdomain.ProductRepository,
) *AddFavoriteHandler {
	return &AddFavoriteHandler{favorites: favorites, clients: clients, products: products}
}

// Handle checks, in order, that the client exists, that the product exists
// and that the pair is not already a favorite. The store's unique pair
// constraint catches a concurrent insert that slips past the check.
func (h *AddFavoriteHandler) Handle(ctx context.Context, cmd AddFavoriteCommand) (*domain.Favorite, error) {
	if _, err := h.clients.FindByID(ctx, cmd.ClientID); err != nil {
		if errors.Is(err, clientdomain.ErrNotFound) {
			return nil, apperror.NotFound(catalog.ClientNotFound, cmd.ClientID)
		}
		return nil, apperror.Internal(fmt.Errorf("failed to load client: %w", err))
	}

	if _, err := h.products.FindByID(ctx, cmd.ProductID); err != nil {
		if errors.Is(err, productdomain.ErrNotFound) {
			return nil, apperror.NotFound(catalog.ProductNotFound, cmd.ProductID)
		}
		return nil, apperror.Internal(fmt.Errorf("failed to load product: %w", err))
	}

	existing, err := h.favorites.Find(ctx, cmd.ClientID, cmd.ProductID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(fmt.Errorf("failed to look up favorite: %w", err))
	}
	if existing != nil {
		return nil, apperror.Conflict(catalog.FavoriteAlreadyExists, cmd.ProductID)
	}

	favorite := domain.NewFavorite(cmd.ClientID, cmd.ProductID)
	if err := h.favorites.Create(ctx, favorite); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.Conflict(catalog.FavoriteAlreadyExists, cmd.ProductID).WithCause(err)
		}
		return nil, apperror.Internal(fmt.Errorf("failed to add favorite: %w", err))
	}

	return favorite, nil
}
